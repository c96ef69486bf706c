package pgfplot

import (
	"fmt"
	"image"

	"github.com/aclements/go-moremath/stats"
	"github.com/jsvensson/pgfplot/internal/scene"
)

// Plot draws lines or markers on the current axes:
//
//	s.Plot(y)               // y against 1..len(y)
//	s.Plot(x, y)
//	s.Plot(x, y, Fmt("r.")) // red markers
//
// A Mat with several rows draws one plot per row. Without data nothing is
// drawn and Plot returns nil, nil.
func (s *Session) Plot(args ...Arg) ([]*Plot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return plotOn(s.registry.CurrentAxes(), splitArgs(args))
}

// Errorbar draws plots with error bars. The data arguments are (y, yerr),
// (x, y, yerr) or (x, y, xerr, yerr).
func (s *Session) Errorbar(args ...Arg) ([]*Plot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return errorbarOn(s.registry.CurrentAxes(), splitArgs(args))
}

func errorbarOn(a *scene.Axes, c call) ([]*Plot, error) {
	switch len(c.data) {
	case 0:
		return nil, nil
	case 1:
		return nil, fmt.Errorf("errorbar without error values: %w", ErrArgs)
	case 2:
		c.opts.YErr = c.data[1]
		c.data = c.data[:1]
	}
	return plotOn(a, c)
}

// Stem draws the data as stems from the x axis, with circle markers unless
// another marker is given.
func (s *Session) Stem(args ...Arg) ([]*Plot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return stemOn(s.registry.CurrentAxes(), splitArgs(args))
}

func stemOn(a *scene.Axes, c call) ([]*Plot, error) {
	c.opts.YComb = true
	if c.opts.Marker == "" {
		c.opts.Marker = "o"
	}
	return plotOn(a, c)
}

// Semilogx plots with a logarithmic x axis.
func (s *Session) Semilogx(args ...Arg) ([]*Plot, error) {
	return s.logPlot(scene.SemilogX, args)
}

// Semilogy plots with a logarithmic y axis.
func (s *Session) Semilogy(args ...Arg) ([]*Plot, error) {
	return s.logPlot(scene.SemilogY, args)
}

// Loglog plots with logarithmic x and y axes.
func (s *Session) Loglog(args ...Arg) ([]*Plot, error) {
	return s.logPlot(scene.LogLog, args)
}

func (s *Session) logPlot(variant string, args []Arg) ([]*Plot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a := s.registry.CurrentAxes()
	plots, err := plotOn(a, splitArgs(args))
	if err != nil {
		return nil, err
	}
	a.Variant = variant
	return plots, nil
}

// Bar draws vertical bars.
func (s *Session) Bar(args ...Arg) ([]*Plot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return barOn(s.registry.CurrentAxes(), splitArgs(args))
}

func barOn(a *scene.Axes, c call) ([]*Plot, error) {
	plots, err := plotOn(a, c)
	if err != nil {
		return nil, err
	}
	a.YBar = true
	if c.opts.BarWidth != nil {
		a.BarWidth = c.opts.BarWidth
	}
	if c.opts.Stacked {
		a.Stacked = true
	}
	return plots, nil
}

// Barh draws horizontal bars. With a single data argument the values are
// placed at y = 1..n.
func (s *Session) Barh(args ...Arg) ([]*Plot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return barhOn(s.registry.CurrentAxes(), splitArgs(args))
}

func barhOn(a *scene.Axes, c call) ([]*Plot, error) {
	if len(c.data) == 1 {
		values := c.data[0]
		width := 0
		if len(values) > 0 {
			width = len(values[0])
		}
		pos := make([]float64, width)
		for i := range pos {
			pos[i] = float64(i + 1)
		}
		c.data = []Mat{values, {pos}}
	}
	plots, err := plotOn(a, c)
	if err != nil {
		return nil, err
	}
	a.XBar = true
	a.Stacked = c.opts.Stacked
	if c.opts.BarWidth != nil {
		a.BarWidth = c.opts.BarWidth
	}
	return plots, nil
}

// HistOptions control Hist.
type HistOptions struct {
	// Bins defaults to 10.
	Bins int
	// Range limits the bins. It defaults to the smallest and largest
	// value; values outside it are not counted.
	Range *[2]float64
	// Density scales the counts so the area under the histogram is 1.
	Density bool
	// Normed scales the counts so they sum to 1.
	Normed bool
	// Unfilled draws the outline only.
	Unfilled bool

	Format Fmt
	Plot   *PlotOptions
}

// Hist computes a histogram of values and draws it as a closed, filled
// step plot.
func (s *Session) Hist(values []float64, opts HistOptions) (*Plot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return histOn(s.registry.CurrentAxes(), values, opts)
}

func histOn(a *scene.Axes, values []float64, opts HistOptions) (*Plot, error) {
	edges, counts, err := histogram(values, opts)
	if err != nil {
		return nil, err
	}

	c := splitArgs([]Arg{opts.Format, opts.Plot})
	c.opts.ConstPlot = true
	c.opts.Closed = true
	c.opts.Fill = !opts.Unfilled
	c.data = []Mat{{edges}, {counts}}
	plots, err := plotOn(a, c)
	if err != nil {
		return nil, err
	}
	return plots[0], nil
}

// histogram returns bins+1 edges and bins+1 heights; the last height
// repeats the one before so the final step is drawn.
func histogram(values []float64, opts HistOptions) (edges, counts []float64, err error) {
	if len(values) == 0 {
		return nil, nil, fmt.Errorf("histogram: %w", ErrNoData)
	}
	bins := opts.Bins
	if bins == 0 {
		bins = 10
	}
	if bins < 0 {
		return nil, nil, fmt.Errorf("histogram with %d bins: %w", bins, ErrArgs)
	}

	var lo, hi float64
	if opts.Range != nil {
		lo, hi = opts.Range[0], opts.Range[1]
	} else {
		lo, hi = stats.Bounds(values)
	}
	if lo > hi {
		return nil, nil, fmt.Errorf("histogram range [%g, %g]: %w", lo, hi, ErrArgs)
	}
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}

	// LinearHist counts the upper bound as overflow; the last bin is
	// closed on both ends here.
	h := stats.NewLinearHist(lo, hi, bins)
	var top uint
	for _, v := range values {
		switch {
		case v < lo || v > hi:
		case v == hi:
			top++
		default:
			h.Add(v)
		}
	}
	_, raw, high := h.Counts()
	top += high

	counts = make([]float64, bins+1)
	var total float64
	for i, n := range raw {
		counts[i] = float64(n)
	}
	counts[bins-1] += float64(top)
	for _, n := range counts[:bins] {
		total += n
	}

	width := (hi - lo) / float64(bins)
	edges = make([]float64, bins+1)
	for i := range edges {
		edges[i] = lo + float64(i)*width
	}
	edges[bins] = hi

	if total > 0 && opts.Density {
		for i := range counts[:bins] {
			counts[i] /= total * width
		}
	}
	if opts.Normed {
		var sum float64
		for _, n := range counts[:bins] {
			sum += n
		}
		if sum > 0 {
			for i := range counts[:bins] {
				counts[i] /= sum
			}
		}
	}
	counts[bins] = counts[bins-1]
	return edges, counts, nil
}

// Surf draws z as a surface over its row and column indices.
func (s *Session) Surf(z [][]float64) (*Surface, error) {
	sf, err := scene.NewSurface(z)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.registry.CurrentAxes().Add(sf)
	return sf, nil
}

// SurfXYZ draws a surface through explicit grid coordinates.
func (s *Session) SurfXYZ(x, y, z [][]float64) (*Surface, error) {
	sf, err := scene.NewSurfaceXYZ(x, y, z)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.registry.CurrentAxes().Add(sf)
	return sf, nil
}

// imageDPI sets the printed size of images.
const imageDPI = 150.0

// Imshow draws img into the current axes, sized at 150 dpi with the axis
// fit to the image. Images larger than the image_max_size setting are
// scaled down first.
func (s *Session) Imshow(img image.Image) *Image {
	s.mu.Lock()
	defer s.mu.Unlock()
	im := scene.NewImage(img)
	im.Fit(s.settings.ImageMaxSize)
	imshowOn(s.registry.CurrentAxes(), im)
	return im
}

// ImshowMatrix draws a matrix of values through a colormap.
func (s *Session) ImshowMatrix(m [][]float64, opts MatrixOptions) (*Image, error) {
	im, err := scene.NewImageFromMatrix(m, opts)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	im.Fit(s.settings.ImageMaxSize)
	imshowOn(s.registry.CurrentAxes(), im)
	return im, nil
}

func imshowOn(a *scene.Axes, im *Image) {
	a.Add(im)
	a.Width = 2.54 / imageDPI * float64(im.Width())
	a.Height = 2.54 / imageDPI * float64(im.Height())
	a.XTickAlign = "outside"
	a.YTickAlign = "outside"
	a.Tight()
}
