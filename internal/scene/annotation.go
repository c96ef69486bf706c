package scene

import (
	"fmt"
	"math"

	"github.com/jsvensson/pgfplot/internal/color"
	"github.com/jsvensson/pgfplot/internal/tex"
)

// Stroke is the drawing style shared by the annotation shapes.
type Stroke struct {
	Color     color.Spec
	LineStyle string
	LineWidth *float64 // points
	Fill      color.Spec
	Opacity   *float64
	Options   []string
}

func (s Stroke) options() []string {
	var opts []string
	if s.LineStyle != "" {
		opts = append(opts, s.LineStyle)
	}
	if s.LineWidth != nil {
		opts = append(opts, "line width="+tex.Num(*s.LineWidth)+"pt")
	}
	if s.Color != nil {
		opts = append(opts, color.Bare(s.Color))
	}
	if s.Fill != nil {
		opts = append(opts, color.Option("fill", s.Fill))
	}
	if s.Opacity != nil {
		opts = append(opts, "opacity="+tex.Num(*s.Opacity))
	}
	return append(opts, s.Options...)
}

func point(x, y float64) string {
	return fmt.Sprintf("(axis cs:%s,%s)", tex.Num(x), tex.Num(y))
}

func span(x0, x1, y0, y1 float64) Box {
	return Box{math.Min(x0, x1), math.Max(x0, x1), math.Min(y0, y1), math.Max(y0, y1)}
}

// Text places a label at a data position.
type Text struct {
	X, Y float64
	Text string

	Color  color.Spec
	Anchor string
	// Rotation is in degrees.
	Rotation *float64
	Options  []string
}

func (t *Text) Render() string {
	var opts []string
	if t.Color != nil {
		opts = append(opts, color.Bare(t.Color))
	}
	if t.Anchor != "" {
		opts = append(opts, "anchor="+t.Anchor)
	}
	if t.Rotation != nil {
		opts = append(opts, "rotate="+tex.Num(*t.Rotation))
	}
	opts = append(opts, t.Options...)
	return fmt.Sprintf("\\node[%s] at %s {%s};\n", tex.InlineOptions(opts), point(t.X, t.Y), tex.Escape(t.Text))
}

func (t *Text) Limits() Box { return Box{t.X, t.X, t.Y, t.Y} }

// Arrow points from (X, Y) to (X+DX, Y+DY).
type Arrow struct {
	X, Y   float64
	DX, DY float64
	Stroke

	// Head is the TikZ arrow tip, "->" when empty.
	Head string
}

func (a *Arrow) Render() string {
	head := a.Head
	if head == "" {
		head = "->"
	}
	opts := append([]string{head}, a.options()...)
	return fmt.Sprintf("\\draw[%s] %s -- %s;\n",
		tex.InlineOptions(opts), point(a.X, a.Y), point(a.X+a.DX, a.Y+a.DY))
}

func (a *Arrow) Limits() Box { return span(a.X, a.X+a.DX, a.Y, a.Y+a.DY) }

// Rectangle spans from (X, Y) to (X+DX, Y+DY).
type Rectangle struct {
	X, Y   float64
	DX, DY float64
	Stroke
}

func (r *Rectangle) Render() string {
	return fmt.Sprintf("\\draw[%s] %s rectangle %s;\n",
		tex.InlineOptions(r.options()), point(r.X, r.Y), point(r.X+r.DX, r.Y+r.DY))
}

func (r *Rectangle) Limits() Box { return span(r.X, r.X+r.DX, r.Y, r.Y+r.DY) }

// Circle is centered on (X, Y) with radius R in data units.
type Circle struct {
	X, Y float64
	R    float64
	Stroke
}

func (c *Circle) Render() string {
	return fmt.Sprintf("\\draw[%s] %s ellipse [x radius=%s, y radius=%s];\n",
		tex.InlineOptions(c.options()), point(c.X, c.Y), tex.Num(c.R), tex.Num(c.R))
}

func (c *Circle) Limits() Box { return Box{c.X - c.R, c.X + c.R, c.Y - c.R, c.Y + c.R} }
