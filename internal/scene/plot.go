package scene

import (
	"fmt"
	"strings"

	"github.com/aclements/go-moremath/stats"
	"github.com/jsvensson/pgfplot/internal/color"
	"github.com/jsvensson/pgfplot/internal/style"
	"github.com/jsvensson/pgfplot/internal/tex"
)

// Plot is one data series drawn with \addplot. Nil and zero style fields
// are left to the axes' cycle list.
type Plot struct {
	X, Y []float64

	// Error bar half-widths. Empty means no error bars in that direction.
	XErr, YErr []float64

	Color     color.Spec
	LineStyle string
	LineWidth *float64 // points
	Opacity   *float64

	// Fill closes the area with the plot's own color; FillColor picks one.
	Fill      bool
	FillColor color.Spec

	Marker          string
	MarkerSize      *float64
	MarkerEdgeColor color.Spec
	MarkerFaceColor color.Spec
	MarkerOpacity   *float64

	ErrorMarker string
	ErrorColor  color.Spec
	ErrorStyle  string
	ErrorWidth  *float64

	YComb     bool
	XComb     bool
	ConstPlot bool
	Closed    bool

	// Options are appended verbatim after every modeled option.
	Options []string

	axes *Axes
}

// NewPlot returns a plot of y against x. A nil x defaults to 1..len(y).
func NewPlot(x, y []float64) (*Plot, error) {
	if x == nil {
		x = make([]float64, len(y))
		for i := range x {
			x[i] = float64(i + 1)
		}
	}
	if len(x) != len(y) {
		return nil, fmt.Errorf("x has %d values, y has %d: %w", len(x), len(y), ErrShape)
	}
	return &Plot{X: x, Y: y}, nil
}

// SetErrors sets the error bars. Each sequence must be empty, hold a single
// value that applies to every point, or match the number of points.
func (p *Plot) SetErrors(xerr, yerr []float64) error {
	xe, err := broadcast("x error", xerr, len(p.X))
	if err != nil {
		return err
	}
	ye, err := broadcast("y error", yerr, len(p.Y))
	if err != nil {
		return err
	}
	p.XErr, p.YErr = xe, ye
	return nil
}

func broadcast(name string, v []float64, n int) ([]float64, error) {
	switch len(v) {
	case 0, n:
		return v, nil
	case 1:
		out := make([]float64, n)
		for i := range out {
			out[i] = v[0]
		}
		return out, nil
	}
	return nil, fmt.Errorf("%s has %d values, data has %d: %w", name, len(v), n, ErrShape)
}

// Axes returns the axes holding the plot, or nil.
func (p *Plot) Axes() *Axes { return p.axes }

func (p *Plot) attach(a *Axes) { p.axes = a }

// Limits returns the extent of the data, ignoring error bars. A plot
// without data returns EmptyBox.
func (p *Plot) Limits() Box {
	if len(p.X) == 0 || len(p.Y) == 0 {
		return EmptyBox()
	}
	xmin, xmax := stats.Bounds(p.X)
	ymin, ymax := stats.Bounds(p.Y)
	return Box{xmin, xmax, ymin, ymax}
}

func (p *Plot) options() []string {
	var opts []string

	st := style.Style{Marker: p.Marker, LineStyle: p.LineStyle}
	lineStyle := st.EffectiveLineStyle()
	if lineStyle != "" {
		opts = append(opts, lineStyle)
	}
	if p.LineWidth != nil {
		opts = append(opts, "line width="+tex.Num(*p.LineWidth)+"pt")
	}
	if p.Color != nil {
		opts = append(opts, color.Bare(p.Color))
	}
	if p.FillColor != nil {
		opts = append(opts, color.Option("fill", p.FillColor))
	} else if p.Fill {
		opts = append(opts, "fill")
	}
	if p.Opacity != nil {
		opts = append(opts, "opacity="+tex.Num(*p.Opacity))
	}

	if style.HasMarker(p.Marker) {
		opts = append(opts, "mark="+style.NormalizeMarker(p.Marker))
		if mo := p.markOptions(lineStyle); len(mo) > 0 {
			opts = append(opts, "mark options={"+strings.Join(mo, ", ")+"}")
		}
	} else {
		opts = append(opts, "no marks")
	}

	opts = append(opts, p.errorBarOptions()...)

	switch {
	case p.YComb:
		opts = append(opts, "ycomb")
	case p.XComb:
		opts = append(opts, "xcomb")
	}
	if p.ConstPlot {
		opts = append(opts, "const plot")
	}

	return append(opts, p.Options...)
}

func (p *Plot) markOptions(lineStyle string) []string {
	var mo []string
	if p.MarkerSize != nil {
		mo = append(mo, "scale="+tex.Num(*p.MarkerSize))
	}
	// Marks inherit the dash pattern of the line otherwise.
	switch lineStyle {
	case "", style.Solid, style.OnlyMarks:
	default:
		mo = append(mo, style.Solid)
	}
	if p.MarkerEdgeColor != nil {
		mo = append(mo, color.Option("draw", p.MarkerEdgeColor))
	}
	if p.MarkerFaceColor != nil {
		mo = append(mo, color.Option("fill", p.MarkerFaceColor))
	}
	if p.MarkerOpacity != nil {
		mo = append(mo, "fill opacity="+tex.Num(*p.MarkerOpacity))
	} else if p.Opacity != nil {
		mo = append(mo, "fill opacity="+tex.Num(*p.Opacity))
	}
	return mo
}

func (p *Plot) errorBarOptions() []string {
	if len(p.XErr) == 0 && len(p.YErr) == 0 {
		return nil
	}

	var opts []string
	if len(p.XErr) > 0 {
		opts = append(opts, "error bars/x dir=both", "error bars/x explicit")
	}
	if len(p.YErr) > 0 {
		opts = append(opts, "error bars/y dir=both", "error bars/y explicit")
	}
	if p.ErrorMarker != "" {
		opts = append(opts, "error bars/error mark="+style.NormalizeMarker(p.ErrorMarker))
	}

	var barStyle []string
	if p.ErrorColor != nil {
		barStyle = append(barStyle, color.Bare(p.ErrorColor))
	}
	if p.ErrorStyle != "" {
		barStyle = append(barStyle, p.ErrorStyle)
	}
	if p.ErrorWidth != nil {
		barStyle = append(barStyle, "line width="+tex.Num(*p.ErrorWidth)+"pt")
	}
	if len(barStyle) > 0 {
		opts = append(opts, "error bars/error bar style={"+strings.Join(barStyle, ", ")+"}")
	}
	return opts
}

// Render returns the \addplot directive with its coordinates.
func (p *Plot) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "\\addplot+[%s] coordinates {\n", tex.InlineOptions(p.options()))

	if len(p.XErr) > 0 || len(p.YErr) > 0 {
		xerr, yerr := p.XErr, p.YErr
		if len(xerr) == 0 {
			xerr = make([]float64, len(yerr))
		}
		if len(yerr) == 0 {
			yerr = make([]float64, len(xerr))
		}
		for i := range p.X {
			fmt.Fprintf(&b, "\t(%s, %s) +- (%s, %s)\n",
				tex.Num(p.X[i]), tex.Num(p.Y[i]), tex.Num(xerr[i]), tex.Num(yerr[i]))
		}
	} else {
		for i := range p.X {
			fmt.Fprintf(&b, "\t(%s, %s)\n", tex.Num(p.X[i]), tex.Num(p.Y[i]))
		}
	}

	if p.Closed {
		b.WriteString("} \\closedcycle;\n")
	} else {
		b.WriteString("};\n")
	}
	return b.String()
}
