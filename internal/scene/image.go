package scene

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"path"
	"path/filepath"
	"strings"

	"github.com/aclements/go-moremath/stats"
	"github.com/jsvensson/pgfplot/internal/color"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
)

// ErrFormat is returned for image formats that cannot be written.
var ErrFormat = errors.New("unsupported image format")

// Formats lists the image formats Encode can write.
var Formats = []string{"png", "jpeg", "bmp", "tiff"}

// Image is a raster drawn into the axes with \addplot graphics. The raster
// is written next to the document when the figure is saved.
type Image struct {
	// Name is the file name used in the markup. Figures assign one when
	// it is empty.
	Name string
	// Folder is where the document expects the file.
	Folder string

	img  *image.RGBA
	axes *Axes
}

// NewImage copies src into a new image.
func NewImage(src image.Image) *Image {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return &Image{img: dst}
}

// MatrixOptions control how scalar values become colors.
type MatrixOptions struct {
	// VMin and VMax default to the smallest and largest value.
	VMin, VMax *float64
	// Colormap defaults to gray.
	Colormap *color.Colormap
}

// NewImageFromMatrix maps every value of m through a colormap. Row 0 is
// the top of the image.
func NewImageFromMatrix(m [][]float64, opts MatrixOptions) (*Image, error) {
	if len(m) == 0 || len(m[0]) == 0 {
		return nil, fmt.Errorf("image has no pixels: %w", ErrShape)
	}
	if err := rectangular("image", m); err != nil {
		return nil, err
	}

	cm := opts.Colormap
	if cm == nil {
		cm, _ = color.LookupColormap("gray")
	}

	flat := make([]float64, 0, len(m)*len(m[0]))
	for _, row := range m {
		flat = append(flat, row...)
	}
	vmin, vmax := stats.Bounds(flat)
	if opts.VMin != nil {
		vmin = *opts.VMin
	}
	if opts.VMax != nil {
		vmax = *opts.VMax
	}

	dst := image.NewRGBA(image.Rect(0, 0, len(m[0]), len(m)))
	for y, row := range m {
		for x, v := range row {
			t := 0.0
			if vmax > vmin {
				t = (v - vmin) / (vmax - vmin)
			}
			c := cm.Map(t)
			i := dst.PixOffset(x, y)
			dst.Pix[i+0] = c.R
			dst.Pix[i+1] = c.G
			dst.Pix[i+2] = c.B
			dst.Pix[i+3] = 0xff
		}
	}
	return &Image{img: dst}, nil
}

// Width returns the width in pixels.
func (i *Image) Width() int { return i.img.Bounds().Dx() }

// Height returns the height in pixels.
func (i *Image) Height() int { return i.img.Bounds().Dy() }

// Raster returns the pixels.
func (i *Image) Raster() image.Image { return i.img }

// Fit scales the image down so that neither side exceeds maxSize pixels.
// Smaller images are left alone.
func (i *Image) Fit(maxSize int) {
	w, h := i.Width(), i.Height()
	if maxSize <= 0 || (w <= maxSize && h <= maxSize) {
		return
	}
	scale := float64(maxSize) / float64(max(w, h))
	nw := max(1, int(float64(w)*scale))
	nh := max(1, int(float64(h)*scale))
	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.BiLinear.Scale(dst, dst.Bounds(), i.img, i.img.Bounds(), draw.Src, nil)
	i.img = dst
}

// Axes returns the axes holding the image, or nil.
func (i *Image) Axes() *Axes { return i.axes }

func (i *Image) attach(a *Axes) { i.axes = a }

// Limits spans the image in pixel coordinates.
func (i *Image) Limits() Box {
	return Box{0, float64(i.Width()), 0, float64(i.Height())}
}

// FileName returns Name, or "image.png" when no name was assigned.
func (i *Image) FileName() string {
	if i.Name == "" {
		return "image.png"
	}
	return i.Name
}

// Render returns the \addplot graphics command for the image file.
func (i *Image) Render() string {
	return fmt.Sprintf("\\addplot graphics\n\t[xmin=0,xmax=%d,ymin=0,ymax=%d]\n\t{%s};\n",
		i.Width(), i.Height(), path.Join(filepath.ToSlash(i.Folder), i.FileName()))
}

// Encode writes the image in the given format.
func (i *Image) Encode(w io.Writer, format string) error {
	switch strings.ToLower(format) {
	case "png":
		return png.Encode(w, i.img)
	case "jpeg", "jpg":
		return jpeg.Encode(w, i.img, nil)
	case "bmp":
		return bmp.Encode(w, i.img)
	case "tiff", "tif":
		return tiff.Encode(w, i.img, nil)
	}
	return fmt.Errorf("%q: %w", format, ErrFormat)
}
