package pgfplot

import (
	"fmt"

	"github.com/jsvensson/pgfplot/internal/cycle"
	"github.com/jsvensson/pgfplot/internal/parser"
	"github.com/jsvensson/pgfplot/internal/scene"
)

var variants = map[string]string{
	"":         scene.Linear,
	"linear":   scene.Linear,
	"semilogx": scene.SemilogX,
	"semilogy": scene.SemilogY,
	"loglog":   scene.LogLog,
}

// Load reads an HCL figure script and adds its figures to the session.
// A settings block in the script replaces the session settings. The
// figures are returned in script order; the last one is current.
func (s *Session) Load(path string) ([]*Figure, error) {
	script, err := parser.Parse(path)
	if err != nil {
		return nil, fmt.Errorf("loading script: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.apply(script)
}

func (s *Session) apply(script *parser.Script) ([]*Figure, error) {
	if script.Settings != nil {
		next := s.settings.Apply(*script.Settings)
		if err := next.Validate(); err != nil {
			return nil, fmt.Errorf("settings: %w", err)
		}
		s.settings = next
		s.runner.Settings = next
	}

	for _, cl := range script.CycleLists {
		l, err := cycleList(cl)
		if err != nil {
			return nil, fmt.Errorf("cycle list %q: %w", cl.Name, err)
		}
		s.cycleLists[cl.Name] = l
	}

	var figures []*Figure
	for i, fb := range script.Figures {
		f, err := s.loadFigure(fb)
		if err != nil {
			return nil, fmt.Errorf("figure %d: %w", i, err)
		}
		figures = append(figures, f)
	}
	return figures, nil
}

func cycleList(cl parser.CycleListBlock) (*cycle.List, error) {
	l := &cycle.List{}
	for i, e := range cl.Entries {
		style := make([]fmt.Stringer, len(e.Style))
		for j, w := range e.Style {
			style[j] = cycle.Word(w)
		}
		var opts []cycle.Option
		for _, k := range e.OptionKeys() {
			opts = append(opts, cycle.Option{Key: k, Value: cycle.Word(e.Options[k])})
		}
		if err := l.Append(style, opts); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
	}
	return l, nil
}

func (s *Session) loadFigure(fb parser.FigureBlock) (*Figure, error) {
	var f *Figure
	if fb.Index != nil {
		if *fb.Index < 0 {
			return nil, fmt.Errorf("index %d: %w", *fb.Index, ErrFigureIndex)
		}
		f = s.registry.Figure(*fb.Index)
	} else {
		f = s.registry.NewFigure()
	}
	f.Width, f.Height = fb.Width, fb.Height
	if fb.Margin != nil {
		f.Margin = *fb.Margin
	}

	for i, ab := range fb.Axes {
		if err := s.loadAxes(f, ab); err != nil {
			return nil, fmt.Errorf("axes %d: %w", i, err)
		}
	}
	return f, nil
}

func (s *Session) loadAxes(f *Figure, ab parser.AxesBlock) error {
	var a *scene.Axes
	if ab.Row != nil || ab.Col != nil {
		var row, col int
		if ab.Row != nil {
			row = *ab.Row
		}
		if ab.Col != nil {
			col = *ab.Col
		}
		a = f.Subplot(row, col)
	} else {
		a = scene.NewAxes()
		f.AddAxes(a)
	}

	variant, ok := variants[ab.Variant]
	if !ok {
		return fmt.Errorf("unknown variant %q", ab.Variant)
	}
	a.Variant = variant

	if ab.Width != nil {
		a.Width = *ab.Width
	}
	if ab.Height != nil {
		a.Height = *ab.Height
	}
	a.Title, a.XLabel, a.YLabel, a.ZLabel = ab.Title, ab.XLabel, ab.YLabel, ab.ZLabel
	a.XMin, a.XMax, a.YMin, a.YMax = ab.XMin, ab.XMax, ab.YMin, ab.YMax

	var err error
	if a.XTick, err = parser.Vector(ab.XTick); err != nil {
		return fmt.Errorf("xtick: %w", err)
	}
	if a.YTick, err = parser.Vector(ab.YTick); err != nil {
		return fmt.Errorf("ytick: %w", err)
	}
	a.XTickLabels, a.YTickLabels = ab.XTickLabels, ab.YTickLabels

	a.Grid = ab.Grid
	if ab.Box != nil {
		setBox(a, *ab.Box)
	}
	a.Colormap = ab.Colormap
	a.Colorbar = ab.Colorbar
	if ab.CycleList != "" {
		setCycleList(a, ab.CycleList, s.cycleLists)
	}
	if ab.Legend != nil {
		a.Legend = &scene.Legend{
			Entries:  ab.Legend.Entries,
			Location: ab.Legend.Location,
			Box:      ab.Legend.Box,
			Align:    ab.Legend.Align,
		}
	}
	a.Options = append(a.Options, ab.Options...)

	for _, pb := range ab.Plots {
		if err := loadPlot(a, pb); err != nil {
			return fmt.Errorf("%s: %w", pb.Range, err)
		}
	}
	for i, hb := range ab.Hists {
		if err := loadHist(a, hb); err != nil {
			return fmt.Errorf("hist %d: %w", i, err)
		}
	}
	for _, tb := range ab.Texts {
		a.Add(&scene.Text{
			X:      tb.X,
			Y:      tb.Y,
			Text:   tb.Text,
			Color:  colorSpec(tb.Color),
			Anchor: tb.Anchor,
		})
	}

	if ab.Axis != "" {
		return axisMode(a, ab.Axis)
	}
	return nil
}

func loadPlot(a *scene.Axes, pb parser.PlotBlock) error {
	x, err := parser.Matrix(pb.X)
	if err != nil {
		return fmt.Errorf("x: %w", err)
	}
	y, err := parser.Matrix(pb.Y)
	if err != nil {
		return fmt.Errorf("y: %w", err)
	}

	if pb.Kind == "surf" {
		return loadSurface(a, pb, x, y)
	}

	opts := &PlotOptions{
		Color:           colorSpec(pb.Color),
		LineStyle:       pb.LineStyle,
		LineWidth:       pb.LineWidth,
		Opacity:         pb.Opacity,
		Marker:          pb.Marker,
		MarkerSize:      pb.MarkerSize,
		MarkerEdgeColor: colorSpec(pb.MarkerEdgeColor),
		MarkerFaceColor: colorSpec(pb.MarkerFaceColor),
		Options:         pb.Options,
	}
	switch pb.Fill {
	case "":
	case "auto":
		opts.Fill = true
	default:
		opts.FillColor = colorSpec(pb.Fill)
	}
	if opts.XErr, err = parser.Matrix(pb.XErr); err != nil {
		return fmt.Errorf("xerr: %w", err)
	}
	if opts.YErr, err = parser.Matrix(pb.YErr); err != nil {
		return fmt.Errorf("yerr: %w", err)
	}

	var data []Mat
	if x != nil {
		data = append(data, x)
	}
	c := splitArgs([]Arg{Fmt(pb.Format), opts})
	c.data = append(data, y)

	switch pb.Kind {
	case "stem":
		_, err = stemOn(a, c)
	case "bar":
		_, err = barOn(a, c)
	case "barh":
		_, err = barhOn(a, c)
	default:
		_, err = plotOn(a, c)
	}
	return err
}

func loadSurface(a *scene.Axes, pb parser.PlotBlock, x, y [][]float64) error {
	z, err := parser.Matrix(pb.Z)
	if err != nil {
		return fmt.Errorf("z: %w", err)
	}
	var sf *scene.Surface
	if x != nil && y != nil {
		sf, err = scene.NewSurfaceXYZ(x, y, z)
	} else {
		sf, err = scene.NewSurface(z)
	}
	if err != nil {
		return err
	}
	sf.Shading = pb.Shading
	sf.Options = pb.Options
	a.Add(sf)
	return nil
}

func loadHist(a *scene.Axes, hb parser.HistBlock) error {
	opts := HistOptions{
		Density: hb.Density,
		Normed:  hb.Normed,
		Format:  Fmt(hb.Format),
		Plot: &PlotOptions{
			Color:   colorSpec(hb.Color),
			Options: hb.Options,
		},
	}
	if hb.Bins != nil {
		opts.Bins = *hb.Bins
	}
	switch len(hb.Range) {
	case 0:
	case 2:
		opts.Range = &[2]float64{hb.Range[0], hb.Range[1]}
	default:
		return fmt.Errorf("range needs 2 values, got %d: %w", len(hb.Range), ErrArgs)
	}
	_, err := histOn(a, hb.Values, opts)
	return err
}
