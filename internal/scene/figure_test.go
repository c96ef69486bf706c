package scene

import (
	"bytes"
	"errors"
	"image"
	stdcolor "image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/jsvensson/pgfplot/internal/color"
)

func TestFigureEmpty(t *testing.T) {
	f := NewFigure("s", 0)
	if w, h := f.Size(); w != 5 || h != 5 {
		t.Errorf("Size() = %v, %v, want 5, 5", w, h)
	}
	got := f.Render()
	for _, want := range []string{
		"\\documentclass{article}\n",
		"\\usepackage{pgfplots}\n",
		"\tpaperwidth=5cm,\n",
		"\tpaperheight=5cm]{geometry}\n",
		"\t\\mbox{}\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Render() missing %q:\n%s", want, got)
		}
	}
	if !strings.HasSuffix(got, "\\end{document}") {
		t.Errorf("Render() does not end the document:\n%s", got)
	}
	if strings.Contains(got, "tikzpicture") {
		t.Error("empty figure should not open a tikzpicture")
	}
}

func TestFigureSize(t *testing.T) {
	f := NewFigure("s", 0)
	a := NewAxes()
	a.At = [2]float64{1, 2}
	f.AddAxes(a)
	if w, h := f.Size(); w != 13 || h != 13 {
		t.Errorf("Size() = %v, %v, want 13, 13", w, h)
	}

	f.Width = ptr(20)
	if w, _ := f.Size(); w != 20 {
		t.Errorf("Size() width = %v, want 20", w)
	}
}

func TestFigureRenderPanels(t *testing.T) {
	f := NewFigure("s", 0)
	f.Axes()
	got := f.Render()
	for _, want := range []string{
		"\t\t\\begin{tikzpicture}\n\t\t\t\\begin{axis}[\n",
		"\t\t\t\\end{axis}\n\t\t\\end{tikzpicture}\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Render() missing %q:\n%s", want, got)
		}
	}
}

func TestFigureAxesCurrent(t *testing.T) {
	f := NewFigure("s", 0)
	a := f.Axes()
	if f.Axes() != a {
		t.Error("Axes() created a second axes")
	}
	if a.Figure() != f {
		t.Error("axes not attached to figure")
	}
	b := NewAxes()
	f.AddAxes(b)
	if f.Axes() != b {
		t.Error("AddAxes() did not make the axes current")
	}
	if len(f.Panels()) != 2 {
		t.Errorf("Panels() = %d, want 2", len(f.Panels()))
	}
}

func TestFigureSubplot(t *testing.T) {
	f := NewFigure("s", 0)
	f.Axes()

	a := f.Subplot(0, 0)
	if f.Subplot(0, 0) != a {
		t.Error("Subplot() returned a new axes for an existing cell")
	}
	b := f.Subplot(1, 1)
	if f.CurrentAxes() != b {
		t.Error("Subplot() did not make the cell current")
	}
	if _, ok := f.Grid(); !ok || len(f.Panels()) != 1 {
		t.Fatal("Subplot() did not replace the panels with a grid")
	}
	if len(f.AllAxes()) != 2 {
		t.Errorf("AllAxes() = %d, want 2", len(f.AllAxes()))
	}

	// Axes added to a grid figure stay out of the panel list.
	f.AddAxes(NewAxes())
	if len(f.Panels()) != 1 {
		t.Error("AddAxes() added a panel next to the grid")
	}
}

func TestAxesGridLayout(t *testing.T) {
	g := NewAxesGrid()
	tl, tr, bl := NewAxes(), NewAxes(), NewAxes()
	tr.Width = 4
	bl.Height = 3
	g.Set(0, 0, tl)
	g.Set(0, 1, tr)
	g.Set(1, 0, bl)
	g.Layout()

	tests := []struct {
		name string
		axes *Axes
		want [2]float64
	}{
		{"bottom left", bl, [2]float64{0, 0}},
		{"top left", tl, [2]float64{0, 5}},
		{"top right", tr, [2]float64{10, 5}},
	}
	for _, tt := range tests {
		if tt.axes.At != tt.want {
			t.Errorf("%s At = %v, want %v", tt.name, tt.axes.At, tt.want)
		}
	}

	if x, y := g.Extent(); x != 14 || y != 12 {
		t.Errorf("Extent() = %v, %v, want 14, 12", x, y)
	}

	cells := g.Cells()
	if len(cells) != 3 || cells[0] != (Cell{0, 0}) || cells[1] != (Cell{0, 1}) || cells[2] != (Cell{1, 0}) {
		t.Errorf("Cells() = %v", cells)
	}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry("s", nil)

	f := r.Current()
	if r.Current() != f {
		t.Error("Current() twice returned different figures")
	}
	if f.Index() != 0 {
		t.Errorf("first figure index = %d, want 0", f.Index())
	}

	five := r.Figure(5)
	if r.Figure(5) != five {
		t.Error("Figure(5) twice returned different figures")
	}
	if five.Index() != 5 {
		t.Errorf("Figure(5).Index() = %d", five.Index())
	}
	if r.Current() != five {
		t.Error("Figure(5) did not become current")
	}

	if got := r.NewFigure().Index(); got != 1 {
		t.Errorf("NewFigure() index = %d, want 1", got)
	}
	if r.Figure(0) != f {
		t.Error("Figure(0) did not return the first figure")
	}

	var idx []int
	for _, fig := range r.Figures() {
		idx = append(idx, fig.Index())
	}
	if len(idx) != 3 || idx[0] != 0 || idx[1] != 1 || idx[2] != 5 {
		t.Errorf("Figures() indices = %v", idx)
	}
}

func TestRegistryNegativeIndex(t *testing.T) {
	r := NewRegistry("s", nil)
	r.Figure(0)

	f := r.Figure(-3)
	if f.Index() != 1 {
		t.Errorf("Figure(-3).Index() = %d, want 1", f.Index())
	}
	if r.Current() != f {
		t.Error("Figure(-3) did not become current")
	}
	for _, fig := range r.Figures() {
		if fig.Index() < 0 {
			t.Errorf("negative index %d registered", fig.Index())
		}
	}
}

func TestRegistryInit(t *testing.T) {
	r := NewRegistry("s", func(f *Figure) { f.ImageFormat = "bmp" })
	if got := r.CurrentAxes().Figure().ImageFormat; got != "bmp" {
		t.Errorf("ImageFormat = %q, want bmp", got)
	}
}

func TestAnnotations(t *testing.T) {
	tests := []struct {
		name   string
		child  Child
		render string
		limits Box
	}{
		{
			name:   "text",
			child:  &Text{X: 1, Y: 2, Text: "50%", Anchor: "west"},
			render: "\\node[anchor=west] at (axis cs:1,2) {50\\%};\n",
			limits: Box{1, 1, 2, 2},
		},
		{
			name:   "arrow",
			child:  &Arrow{X: 1, Y: 1, DX: -1, DY: 2, Stroke: Stroke{Color: color.Red}},
			render: "\\draw[->, red] (axis cs:1,1) -- (axis cs:0,3);\n",
			limits: Box{0, 1, 1, 3},
		},
		{
			name:   "rectangle",
			child:  &Rectangle{X: 0, Y: 0, DX: 2, DY: 1, Stroke: Stroke{LineStyle: "dashed"}},
			render: "\\draw[dashed] (axis cs:0,0) rectangle (axis cs:2,1);\n",
			limits: Box{0, 2, 0, 1},
		},
		{
			name:   "circle",
			child:  &Circle{X: 1, Y: 1, R: 0.5},
			render: "\\draw[] (axis cs:1,1) ellipse [x radius=0.5, y radius=0.5];\n",
			limits: Box{0.5, 1.5, 0.5, 1.5},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.child.Render(); got != tt.render {
				t.Errorf("Render() = %q, want %q", got, tt.render)
			}
			if got := tt.child.Limits(); got != tt.limits {
				t.Errorf("Limits() = %v, want %v", got, tt.limits)
			}
		})
	}
}

func TestSurface(t *testing.T) {
	s, err := NewSurface([][]float64{{1, 2, 3}, {4, 5, 6}})
	if err != nil {
		t.Fatal(err)
	}
	s.Shading = "interp"

	a := NewAxes()
	a.XLabel = "x"
	a.Add(s)
	if a.LabelsNearTicks == nil || *a.LabelsNearTicks {
		t.Error("surface should turn off labels near ticks")
	}
	if hasOption(t, a, "xlabel near ticks") {
		t.Error("xlabel near ticks rendered for a surface")
	}

	got := s.Render()
	if !strings.HasPrefix(got, "\\addplot3[surf, mesh/rows=2, shader=interp] coordinates {\n") {
		t.Errorf("Render() =\n%s", got)
	}
	if !strings.Contains(got, "\t(2, 1, 6)\n") {
		t.Errorf("Render() missing last point:\n%s", got)
	}
	if got, want := s.Limits(), (Box{0, 2, 0, 1}); got != want {
		t.Errorf("Limits() = %v, want %v", got, want)
	}

	if _, err := NewSurface([][]float64{{1, 2}, {3}}); !errors.Is(err, ErrShape) {
		t.Errorf("ragged NewSurface() error = %v, want ErrShape", err)
	}
	if _, err := NewSurfaceXYZ([][]float64{{1}}, [][]float64{{1}}, [][]float64{{1}, {2}}); !errors.Is(err, ErrShape) {
		t.Errorf("NewSurfaceXYZ() error = %v, want ErrShape", err)
	}
}

func TestImageFromMatrix(t *testing.T) {
	img, err := NewImageFromMatrix([][]float64{{0, 1}, {2, 4}}, MatrixOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if img.Width() != 2 || img.Height() != 2 {
		t.Fatalf("size = %dx%d, want 2x2", img.Width(), img.Height())
	}
	rgba := img.Raster().(*image.RGBA)
	if c := rgba.RGBAAt(0, 0); c.R != 0 {
		t.Errorf("min pixel = %v, want black", c)
	}
	if c := rgba.RGBAAt(1, 1); c.R != 255 || c.G != 255 || c.B != 255 {
		t.Errorf("max pixel = %v, want white", c)
	}
	if got, want := img.Limits(), (Box{0, 2, 0, 2}); got != want {
		t.Errorf("Limits() = %v, want %v", got, want)
	}

	if _, err := NewImageFromMatrix(nil, MatrixOptions{}); !errors.Is(err, ErrShape) {
		t.Errorf("empty matrix error = %v, want ErrShape", err)
	}
}

func TestImageFitAndEncode(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 40, 20))
	for i := range src.Pix {
		src.Pix[i] = 0xff
	}
	img := NewImage(src)
	img.Fit(10)
	if img.Width() != 10 || img.Height() != 5 {
		t.Errorf("Fit(10) size = %dx%d, want 10x5", img.Width(), img.Height())
	}

	var buf bytes.Buffer
	if err := img.Encode(&buf, "png"); err != nil {
		t.Fatal(err)
	}
	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if got := stdcolor.RGBAModel.Convert(decoded.At(0, 0)).(stdcolor.RGBA); got.R != 0xff {
		t.Errorf("decoded pixel = %v", got)
	}

	for _, format := range Formats {
		if err := img.Encode(&bytes.Buffer{}, format); err != nil {
			t.Errorf("Encode(%s) error: %v", format, err)
		}
	}
	if err := img.Encode(&bytes.Buffer{}, "gif"); !errors.Is(err, ErrFormat) {
		t.Errorf("Encode(gif) error = %v, want ErrFormat", err)
	}
}

func TestFigureImages(t *testing.T) {
	f := NewFigure("abc", 3)
	f.ImageFolder = "/tmp/imgs"
	a := f.Axes()
	img := NewImage(image.NewRGBA(image.Rect(0, 0, 4, 3)))
	a.Add(img)

	imgs := f.Images()
	if len(imgs) != 1 || imgs[0] != img {
		t.Fatalf("Images() = %v", imgs)
	}
	if img.Name != "abc_3_0.png" {
		t.Errorf("Name = %q, want abc_3_0.png", img.Name)
	}
	want := "\\addplot graphics\n\t[xmin=0,xmax=4,ymin=0,ymax=3]\n\t{/tmp/imgs/abc_3_0.png};\n"
	if got := img.Render(); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}
