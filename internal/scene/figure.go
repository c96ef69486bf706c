package scene

import (
	"fmt"
	"strings"

	"github.com/jsvensson/pgfplot/internal/tex"
)

// Figure is one standalone document. It holds axes, or a single grid of
// axes once Subplot has been called.
type Figure struct {
	// Width and Height override the computed paper size, in centimeters.
	Width, Height *float64
	// Margin is the space around the panels, in centimeters.
	Margin float64

	Preamble    string
	ImageFolder string
	ImageFormat string

	idx     int
	session string
	panels  []Panel
	ca      *Axes
}

// NewFigure returns an empty figure. The session and index name the files
// written for it.
func NewFigure(session string, idx int) *Figure {
	return &Figure{
		Margin:      2,
		Preamble:    tex.DefaultPreamble,
		ImageFormat: "png",
		idx:         idx,
		session:     session,
	}
}

// Index returns the figure's identity within its session.
func (f *Figure) Index() int { return f.idx }

// Session returns the id of the owning session, used in file names.
func (f *Figure) Session() string { return f.session }

// Panels returns the top level panels in drawing order.
func (f *Figure) Panels() []Panel {
	return append([]Panel(nil), f.panels...)
}

// Grid returns the figure's axes grid, if it has one.
func (f *Figure) Grid() (*AxesGrid, bool) {
	if len(f.panels) == 0 {
		return nil, false
	}
	g, ok := f.panels[0].(*AxesGrid)
	return g, ok
}

// AddAxes adds a to the figure and makes it current. Figures laid out as
// a grid only track a as current; use Subplot to place axes in the grid.
func (f *Figure) AddAxes(a *Axes) {
	a.figure = f
	if _, ok := f.Grid(); !ok {
		f.panels = append(f.panels, a)
	}
	f.ca = a
}

// Axes returns the current axes, creating default axes when there are none.
func (f *Figure) Axes() *Axes {
	if f.ca == nil {
		f.AddAxes(NewAxes())
	}
	return f.ca
}

// CurrentAxes returns the current axes without creating any.
func (f *Figure) CurrentAxes() *Axes { return f.ca }

// SetCurrentAxes makes a current.
func (f *Figure) SetCurrentAxes(a *Axes) { f.ca = a }

// Subplot makes the axes at row, col of the figure's grid current. The
// first call replaces every panel with an empty grid. Missing cells are
// filled with default axes.
func (f *Figure) Subplot(row, col int) *Axes {
	g, ok := f.Grid()
	if !ok {
		g = NewAxesGrid()
		f.panels = []Panel{g}
	}
	a, ok := g.Get(row, col)
	if !ok {
		a = NewAxes()
		a.figure = f
		g.Set(row, col, a)
	}
	f.ca = a
	return a
}

// AllAxes returns every axes of the figure in drawing order.
func (f *Figure) AllAxes() []*Axes {
	var out []*Axes
	for _, p := range f.panels {
		switch p := p.(type) {
		case *Axes:
			out = append(out, p)
		case *AxesGrid:
			for _, c := range p.Cells() {
				a, _ := p.Get(c.Row, c.Col)
				out = append(out, a)
			}
		}
	}
	return out
}

// Images returns every image of the figure in drawing order. Images
// without a name are named <session>_<figure>_<n>.<format>, and every
// image is pointed at the figure's image folder.
func (f *Figure) Images() []*Image {
	var out []*Image
	for _, a := range f.AllAxes() {
		for _, c := range a.children {
			img, ok := c.(*Image)
			if !ok {
				continue
			}
			if img.Name == "" {
				img.Name = fmt.Sprintf("%s_%d_%d.%s", f.session, f.idx, len(out), strings.ToLower(f.ImageFormat))
			}
			img.Folder = f.ImageFolder
			out = append(out, img)
		}
	}
	return out
}

// Size returns the paper size in centimeters.
func (f *Figure) Size() (width, height float64) {
	width, height = 2*f.Margin+1, 2*f.Margin+1
	if len(f.panels) > 0 {
		var x, y float64
		for _, p := range f.panels {
			px, py := p.Extent()
			x, y = max(x, px), max(y, py)
		}
		width, height = 2*f.Margin+x, 2*f.Margin+y
	}
	if f.Width != nil {
		width = *f.Width
	}
	if f.Height != nil {
		height = *f.Height
	}
	return width, height
}

// Render returns the complete LaTeX document.
func (f *Figure) Render() string {
	f.Images()
	width, height := f.Size()

	var b strings.Builder
	b.WriteString("\\documentclass{article}\n\n")
	b.WriteString(f.Preamble)
	b.WriteString("\n")
	b.WriteString("\\usepackage[\n")
	b.WriteString("\tmargin=0cm,\n")
	fmt.Fprintf(&b, "\tpaperwidth=%s,\n", tex.Length(width))
	fmt.Fprintf(&b, "\tpaperheight=%s]{geometry}\n\n", tex.Length(height))
	b.WriteString("\\begin{document}\n")
	b.WriteString("\t\\thispagestyle{empty}\n\n")

	if len(f.panels) > 0 {
		b.WriteString("\t\\begin{figure}\n")
		b.WriteString("\t\t\\centering\n")
		b.WriteString("\t\t\\begin{tikzpicture}\n")
		for _, p := range f.panels {
			b.WriteString(tex.Indent(p.Render(), 3))
		}
		b.WriteString("\t\t\\end{tikzpicture}\n")
		b.WriteString("\t\\end{figure}\n")
	} else {
		b.WriteString("\t\\mbox{}\n")
	}
	b.WriteString("\\end{document}")
	return b.String()
}
