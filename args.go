package pgfplot

import (
	"fmt"

	"github.com/jsvensson/pgfplot/internal/color"
	"github.com/jsvensson/pgfplot/internal/scene"
	"github.com/jsvensson/pgfplot/internal/style"
)

// Arg is one argument of the plotting functions: a Vec, a Mat, a Fmt or
// a *PlotOptions.
type Arg interface{ isArg() }

// Vec is a single row of data.
type Vec []float64

// Mat is data with one row per plot.
type Mat [][]float64

// Fmt is a format code such as "r--.". Several codes are concatenated.
type Fmt string

func (Vec) isArg()          {}
func (Mat) isArg()          {}
func (Fmt) isArg()          {}
func (*PlotOptions) isArg() {}

// PlotOptions sets plot attributes explicitly. Set fields win over what a
// format code implies. When several are passed, the last one is used.
type PlotOptions struct {
	Color     ColorSpec
	LineStyle string
	LineWidth *float64
	Opacity   *float64

	Fill      bool
	FillColor ColorSpec

	Marker          string
	MarkerSize      *float64
	MarkerEdgeColor ColorSpec
	MarkerFaceColor ColorSpec
	MarkerOpacity   *float64

	// XErr and YErr hold one row of error values per plot, or a single
	// row used for every plot.
	XErr, YErr  [][]float64
	ErrorMarker string
	ErrorColor  ColorSpec
	ErrorStyle  string
	ErrorWidth  *float64

	YComb     bool
	XComb     bool
	ConstPlot bool
	Closed    bool

	// BarWidth (cm) and Stacked are applied to the axes by Bar and Barh.
	BarWidth *float64
	Stacked  bool

	// Options are appended verbatim to the plot options.
	Options []string
}

// call is a plot call with its arguments sorted by kind.
type call struct {
	data []Mat
	opts PlotOptions
}

func splitArgs(args []Arg) call {
	var c call
	var code string
	for _, a := range args {
		switch a := a.(type) {
		case Vec:
			c.data = append(c.data, Mat{a})
		case Mat:
			c.data = append(c.data, a)
		case Fmt:
			code += string(a)
		case *PlotOptions:
			if a != nil {
				c.opts = *a
			}
		}
	}

	st := style.Style{
		Color:     c.opts.Color,
		Marker:    c.opts.Marker,
		LineStyle: c.opts.LineStyle,
	}.Merge(style.Parse(code))
	c.opts.Color, c.opts.Marker, c.opts.LineStyle = st.Color, st.Marker, st.LineStyle
	return c
}

// plotOn builds the plots of c and adds them to a. Nothing is added when
// any of them fails.
func plotOn(a *scene.Axes, c call) ([]*Plot, error) {
	plots, err := buildPlots(c)
	if err != nil {
		return nil, err
	}
	for _, p := range plots {
		a.Add(p)
	}
	return plots, nil
}

// buildPlots creates plots from x, y and up to two trailing error
// arguments: (x, y, yerr) or (x, y, xerr, yerr).
func buildPlots(c call) ([]*Plot, error) {
	switch len(c.data) {
	case 0:
		return nil, nil
	case 1:
		return fanOut(nil, c.data[0], c.opts)
	case 2:
		return fanOut(c.data[0], c.data[1], c.opts)
	case 3, 4:
		if err := sameRows(c.data); err != nil {
			return nil, err
		}
		if len(c.data) == 4 {
			c.opts.XErr = c.data[2]
		}
		c.opts.YErr = c.data[len(c.data)-1]
		return fanOut(c.data[0], c.data[1], c.opts)
	}
	return nil, fmt.Errorf("%d data arguments: %w", len(c.data), ErrArgs)
}

func sameRows(data []Mat) error {
	n := 1
	for _, m := range data {
		switch {
		case len(m) == 1:
		case n == 1:
			n = len(m)
		case len(m) != n:
			return fmt.Errorf("%d rows and %d rows: %w", n, len(m), ErrRowMismatch)
		}
	}
	return nil
}

// fanOut builds one plot per row. The argument with fewer rows is
// repeated, and a single column is repeated to the width of the other
// argument. A nil x defaults to 1..n.
func fanOut(x, y Mat, opts PlotOptions) ([]*Plot, error) {
	if len(y) == 0 {
		return nil, nil
	}
	rows := len(y)
	if x != nil {
		if len(x) == 0 {
			return nil, nil
		}
		rows = max(rows, len(x))
	}

	var plots []*Plot
	for i := range rows {
		yi := y[i%len(y)]
		var xi []float64
		if x != nil {
			xi = x[i%len(x)]
			switch {
			case len(xi) == 1 && len(yi) > 1:
				xi = repeat(xi[0], len(yi))
			case len(yi) == 1 && len(xi) > 1:
				yi = repeat(yi[0], len(xi))
			}
		}

		p, err := scene.NewPlot(xi, yi)
		if err != nil {
			return nil, fmt.Errorf("plot %d: %w", i, err)
		}
		if err := opts.apply(p, i); err != nil {
			return nil, fmt.Errorf("plot %d: %w", i, err)
		}
		plots = append(plots, p)
	}
	return plots, nil
}

func repeat(v float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

// errorRow picks the error values of plot i.
func errorRow(m [][]float64, i int) []float64 {
	switch len(m) {
	case 0:
		return nil
	case 1:
		return m[0]
	}
	return m[i%len(m)]
}

func (o *PlotOptions) apply(p *Plot, i int) error {
	p.Color = o.Color
	p.LineStyle = o.LineStyle
	p.LineWidth = o.LineWidth
	p.Opacity = o.Opacity
	p.Fill = o.Fill
	p.FillColor = o.FillColor
	p.Marker = o.Marker
	p.MarkerSize = o.MarkerSize
	p.MarkerEdgeColor = o.MarkerEdgeColor
	p.MarkerFaceColor = o.MarkerFaceColor
	p.MarkerOpacity = o.MarkerOpacity
	p.ErrorMarker = o.ErrorMarker
	p.ErrorColor = o.ErrorColor
	p.ErrorStyle = o.ErrorStyle
	p.ErrorWidth = o.ErrorWidth
	p.YComb = o.YComb
	p.XComb = o.XComb
	p.ConstPlot = o.ConstPlot
	p.Closed = o.Closed
	p.Options = append([]string(nil), o.Options...)
	return p.SetErrors(errorRow(o.XErr, i), errorRow(o.YErr, i))
}

// strokeFrom turns a format code into the stroke of an annotation.
func strokeFrom(code string) scene.Stroke {
	st := style.Parse(code)
	return scene.Stroke{Color: st.Color, LineStyle: st.LineStyle}
}

// colorSpec is color.ParseSpec for optional values.
func colorSpec(s string) ColorSpec {
	if s == "" {
		return nil
	}
	return color.ParseSpec(s)
}
