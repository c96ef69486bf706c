package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"slices"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/jsvensson/pgfplot/internal/scene"
	"github.com/jsvensson/pgfplot/internal/tex"
)

// ErrImageFormat is returned for an image_format that cannot be written.
var ErrImageFormat = errors.New("unsupported image format")

// Settings control where documents are written and how they are compiled
// and shown.
type Settings struct {
	// TmpDir receives the generated documents.
	TmpDir string
	// Compiler and Viewer are command templates. {dir} expands to TmpDir
	// and {file} to the document being processed.
	Compiler string
	Viewer   string
	Preamble string
	// ImageFolder is the folder images are written to and referenced from.
	ImageFolder string
	ImageFormat string
	// ImageMaxSize bounds the longer side of images in pixels. Larger
	// images are scaled down before they are drawn. 0 means no bound.
	ImageMaxSize int
}

// Overrides holds the settings given in an HCL file. Unset attributes keep
// their current value.
type Overrides struct {
	TmpDir      *string `hcl:"tmp_dir,optional"`
	Compiler    *string `hcl:"compiler,optional"`
	Viewer      *string `hcl:"viewer,optional"`
	Preamble    *string `hcl:"preamble,optional"`
	ImageFolder *string `hcl:"image_folder,optional"`
	ImageFormat *string `hcl:"image_format,optional"`

	ImageMaxSize *int `hcl:"image_max_size,optional"`
}

// Default returns the settings used when nothing is configured.
func Default() Settings {
	tmp := os.TempDir()
	return Settings{
		TmpDir:      tmp,
		Compiler:    "pdflatex -halt-on-error -interaction batchmode -output-directory {dir} {file}",
		Viewer:      defaultViewer(),
		Preamble:    tex.DefaultPreamble,
		ImageFolder: tmp,
		ImageFormat: "png",
	}
}

func defaultViewer() string {
	switch runtime.GOOS {
	case "darwin":
		return "open {file}"
	case "windows":
		return `cmd /c start "" {file}`
	}
	return "xdg-open {file}"
}

// Apply returns s with every set override applied.
func (s Settings) Apply(o Overrides) Settings {
	set := func(dst *string, v *string) {
		if v != nil {
			*dst = *v
		}
	}
	set(&s.TmpDir, o.TmpDir)
	set(&s.Compiler, o.Compiler)
	set(&s.Viewer, o.Viewer)
	set(&s.Preamble, o.Preamble)
	set(&s.ImageFolder, o.ImageFolder)
	set(&s.ImageFormat, o.ImageFormat)
	if o.ImageMaxSize != nil {
		s.ImageMaxSize = *o.ImageMaxSize
	}
	return s
}

// Validate checks the values that cannot be checked by LaTeX.
func (s Settings) Validate() error {
	if !slices.Contains(scene.Formats, strings.ToLower(s.ImageFormat)) {
		return fmt.Errorf("%q (valid: %s): %w", s.ImageFormat, strings.Join(scene.Formats, ", "), ErrImageFormat)
	}
	if strings.TrimSpace(s.Compiler) == "" {
		return fmt.Errorf("compiler command is empty")
	}
	if s.ImageMaxSize < 0 {
		return fmt.Errorf("image_max_size %d is negative", s.ImageMaxSize)
	}
	return nil
}

// Load reads a settings file and applies it to the defaults.
func Load(path string) (Settings, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("reading settings file: %w", err)
	}
	return Parse(src, path)
}

// Parse decodes settings from HCL source.
func Parse(src []byte, filename string) (Settings, error) {
	file, diags := hclsyntax.ParseConfig(src, filename, hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return Settings{}, fmt.Errorf("parsing HCL: %s", diags.Error())
	}

	var o Overrides
	if diags := gohcl.DecodeBody(file.Body, nil, &o); diags.HasErrors() {
		return Settings{}, fmt.Errorf("decoding settings: %s", diags.Error())
	}

	s := Default().Apply(o)
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}
