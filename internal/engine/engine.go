package engine

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/jsvensson/pgfplot/internal/config"
	"github.com/jsvensson/pgfplot/internal/scene"
	"github.com/kballard/go-shellquote"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("pgfplot.engine")

var (
	// ErrProcess is matched by every *ProcessError.
	ErrProcess = errors.New("external process failed")
	// ErrOutputFormat is returned by Save for extensions it cannot produce.
	ErrOutputFormat = errors.New("unsupported output format")
)

// ProcessError reports a compiler or viewer that exited with an error.
type ProcessError struct {
	Op      string
	Command string
	Output  string
	Err     error
}

func (e *ProcessError) Error() string {
	msg := fmt.Sprintf("%s: %s: %v", e.Op, e.Command, e.Err)
	if out := strings.TrimSpace(e.Output); out != "" {
		msg += "\n" + out
	}
	return msg
}

func (e *ProcessError) Unwrap() []error { return []error{ErrProcess, e.Err} }

// RunFunc runs a command and returns its combined output.
type RunFunc func(name string, args ...string) ([]byte, error)

func execRun(name string, args ...string) ([]byte, error) {
	return exec.Command(name, args...).CombinedOutput()
}

// Runner writes figures to disk and drives the external compiler and
// viewer.
type Runner struct {
	Settings config.Settings
	// Run executes commands. It defaults to os/exec.
	Run RunFunc
}

// New returns a runner using settings.
func New(settings config.Settings) *Runner {
	return &Runner{Settings: settings, Run: execRun}
}

// TexPath returns where the document of f is written for drawing.
func (r *Runner) TexPath(f *scene.Figure) string {
	return filepath.Join(r.Settings.TmpDir, fmt.Sprintf("pgf_%s_%d.tex", f.Session(), f.Index()))
}

// SaveImages writes every image of f to the figure's image folder.
func (r *Runner) SaveImages(f *scene.Figure) ([]string, error) {
	imgs := f.Images()
	if len(imgs) == 0 {
		return nil, nil
	}

	dir := f.ImageFolder
	if dir == "" {
		dir = r.Settings.ImageFolder
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating image folder: %w", err)
	}

	paths := make([]string, 0, len(imgs))
	for _, img := range imgs {
		p := filepath.Join(dir, img.FileName())
		if err := writeImage(p, img); err != nil {
			return nil, err
		}
		log.Debugf("wrote image %s", p)
		paths = append(paths, p)
	}
	return paths, nil
}

func writeImage(path string, img *scene.Image) error {
	format := strings.TrimPrefix(filepath.Ext(path), ".")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating image file %s: %w", path, err)
	}
	if err := img.Encode(f, format); err != nil {
		f.Close()
		return fmt.Errorf("encoding image %s: %w", path, err)
	}
	return f.Close()
}

// WriteTeX writes the document of f, and its images, to path.
func (r *Runner) WriteTeX(f *scene.Figure, path string) error {
	if _, err := r.SaveImages(f); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(f.Render()), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	log.Infof("wrote %s", path)
	return nil
}

// Compile turns a document into a PDF next to it and returns the PDF path.
func (r *Runner) Compile(texPath string) (string, error) {
	dir := filepath.Dir(texPath)
	if err := r.runCommand("compiling", r.Settings.Compiler, dir, texPath); err != nil {
		return "", err
	}
	return strings.TrimSuffix(texPath, filepath.Ext(texPath)) + ".pdf", nil
}

// View opens a file in the configured viewer.
func (r *Runner) View(path string) error {
	return r.runCommand("viewing", r.Settings.Viewer, filepath.Dir(path), path)
}

// Draw writes, compiles and shows f.
func (r *Runner) Draw(f *scene.Figure) error {
	texPath := r.TexPath(f)
	if err := r.WriteTeX(f, texPath); err != nil {
		return err
	}
	pdf, err := r.Compile(texPath)
	if err != nil {
		return err
	}
	return r.View(pdf)
}

// Save writes f to filename. The format is taken from format, or from the
// extension when format is empty: "tex" writes the document, "pdf"
// compiles it in the temp dir and copies the result.
func (r *Runner) Save(f *scene.Figure, filename, format string) error {
	if format == "" {
		format = strings.TrimPrefix(filepath.Ext(filename), ".")
	}
	switch strings.ToLower(format) {
	case "tex":
		return r.WriteTeX(f, filename)
	case "pdf":
		texPath := r.TexPath(f)
		if err := r.WriteTeX(f, texPath); err != nil {
			return err
		}
		pdf, err := r.Compile(texPath)
		if err != nil {
			return err
		}
		return copyFile(pdf, filename)
	}
	return fmt.Errorf("%q: %w", format, ErrOutputFormat)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("creating %s: %w", dst, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copying %s: %w", src, err)
	}
	return out.Close()
}

// Command expands a command template. The template is split like a shell
// would, then {dir} and {file} are replaced in every argument, so paths
// with spaces stay one argument.
func Command(template, dir, file string) ([]string, error) {
	args, err := shellquote.Split(template)
	if err != nil {
		return nil, fmt.Errorf("splitting command %q: %w", template, err)
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("empty command")
	}
	rep := strings.NewReplacer("{dir}", dir, "{file}", file)
	for i, a := range args {
		args[i] = rep.Replace(a)
	}
	return args, nil
}

func (r *Runner) runCommand(op, template, dir, file string) error {
	args, err := Command(template, dir, file)
	if err != nil {
		return err
	}
	cmdline := shellquote.Join(args...)
	log.Debugf("%s: %s", op, cmdline)

	run := r.Run
	if run == nil {
		run = execRun
	}
	out, err := run(args[0], args[1:]...)
	if err != nil {
		log.Errorf("%s failed: %s", op, err)
		return &ProcessError{Op: op, Command: cmdline, Output: string(out), Err: err}
	}
	return nil
}
