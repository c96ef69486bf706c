package pgfplot

import (
	"fmt"

	"github.com/jsvensson/pgfplot/internal/cycle"
	"github.com/jsvensson/pgfplot/internal/scene"
)

// with runs fn on the current axes with the session locked.
func (s *Session) with(fn func(a *scene.Axes)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.registry.CurrentAxes())
}

// Title sets the title of the current axes.
func (s *Session) Title(title string) { s.with(func(a *scene.Axes) { a.Title = title }) }

// XLabel sets the x axis label of the current axes.
func (s *Session) XLabel(label string) { s.with(func(a *scene.Axes) { a.XLabel = label }) }

// YLabel sets the y axis label of the current axes.
func (s *Session) YLabel(label string) { s.with(func(a *scene.Axes) { a.YLabel = label }) }

// ZLabel sets the z axis label, used by surfaces.
func (s *Session) ZLabel(label string) { s.with(func(a *scene.Axes) { a.ZLabel = label }) }

// XTick places the x ticks. An empty, non-nil slice removes them and nil
// leaves them to PGFPlots. Labels, when given, replace the tick values.
func (s *Session) XTick(ticks []float64, labels ...string) {
	s.with(func(a *scene.Axes) {
		a.XTick = ticks
		if labels != nil {
			a.XTickLabels = labels
		}
	})
}

// YTick places the y ticks, like XTick.
func (s *Session) YTick(ticks []float64, labels ...string) {
	s.with(func(a *scene.Axes) {
		a.YTick = ticks
		if labels != nil {
			a.YTickLabels = labels
		}
	})
}

// XTickLabels labels the x ticks. When no ticks are set they are placed
// at 1..len(labels).
func (s *Session) XTickLabels(labels ...string) {
	s.with(func(a *scene.Axes) {
		a.XTickLabels = labels
		if a.XTick == nil {
			a.XTick = positions(len(labels))
		}
	})
}

// YTickLabels labels the y ticks, like XTickLabels.
func (s *Session) YTickLabels(labels ...string) {
	s.with(func(a *scene.Axes) {
		a.YTickLabels = labels
		if a.YTick == nil {
			a.YTick = positions(len(labels))
		}
	})
}

// XTickRotation rotates the x tick labels by deg degrees.
func (s *Session) XTickRotation(deg float64) {
	s.with(func(a *scene.Axes) { a.XTickLabelRotation = &deg })
}

// YTickRotation rotates the y tick labels by deg degrees.
func (s *Session) YTickRotation(deg float64) {
	s.with(func(a *scene.Axes) { a.YTickLabelRotation = &deg })
}

func positions(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i + 1)
	}
	return out
}

// Axis changes the look of the current axes:
//
//	off, on         hide or show the axis
//	equal           use the same scale on both axes
//	square          make the axes square
//	auto            let PGFPlots pick the limits
//	tight           fit the limits to the data
//	center, origin  draw the axis lines through the origin
//
// "tight" fails with ErrNoData on axes without children.
func (s *Session) Axis(mode string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return axisMode(s.registry.CurrentAxes(), mode)
}

func axisMode(a *scene.Axes, mode string) error {
	switch mode {
	case "off":
		a.HideAxis = true
	case "on":
		a.HideAxis = false
	case "equal":
		t := true
		a.Equal = &t
	case "square":
		a.Square()
	case "auto":
		a.Auto()
	case "tight":
		if !a.Tight() {
			return fmt.Errorf("tight axis: %w", ErrNoData)
		}
	case "center", "origin":
		a.AxisXLine = "center"
		a.AxisYLine = "middle"
	default:
		return fmt.Errorf("%q: %w", mode, ErrAxisMode)
	}
	return nil
}

// AxisLimits sets all four axis bounds.
func (s *Session) AxisLimits(xmin, xmax, ymin, ymax float64) {
	s.with(func(a *scene.Axes) {
		a.XMin, a.XMax = &xmin, &xmax
		a.YMin, a.YMax = &ymin, &ymax
	})
}

// XLim sets the x bounds.
func (s *Session) XLim(lo, hi float64) {
	s.with(func(a *scene.Axes) { a.XMin, a.XMax = &lo, &hi })
}

// YLim sets the y bounds.
func (s *Session) YLim(lo, hi float64) {
	s.with(func(a *scene.Axes) { a.YMin, a.YMax = &lo, &hi })
}

// Grid turns the major grid on or off.
func (s *Session) Grid(on bool) { s.with(func(a *scene.Axes) { a.Grid = &on }) }

// ToggleGrid flips the major grid.
func (s *Session) ToggleGrid() {
	s.with(func(a *scene.Axes) {
		on := a.Grid == nil || !*a.Grid
		a.Grid = &on
	})
}

// Box draws the full frame around the axes, or only the bottom and left
// axis lines when off.
func (s *Session) Box(on bool) { s.with(func(a *scene.Axes) { setBox(a, on) }) }

// ToggleBox flips the frame.
func (s *Session) ToggleBox() {
	s.with(func(a *scene.Axes) { setBox(a, a.AxisXLine != "" || a.AxisYLine != "") })
}

func setBox(a *scene.Axes, on bool) {
	if on {
		a.AxisXLine, a.AxisYLine = "", ""
		return
	}
	a.AxisXLine, a.AxisYLine = "bottom", "left"
}

// Legend sets the legend entries of the current axes and returns the
// legend for further styling.
func (s *Session) Legend(entries ...string) *Legend {
	s.mu.Lock()
	defer s.mu.Unlock()
	a := s.registry.CurrentAxes()
	if a.Legend == nil {
		a.Legend = &scene.Legend{}
	}
	a.Legend.Entries = entries
	return a.Legend
}

// Colormap names the PGFPlots colormap of the current axes.
func (s *Session) Colormap(name string) { s.with(func(a *scene.Axes) { a.Colormap = name }) }

// Colorbar shows or hides the colorbar.
func (s *Session) Colorbar(on bool) { s.with(func(a *scene.Axes) { a.Colorbar = on }) }

// ToggleColorbar flips the colorbar.
func (s *Session) ToggleColorbar() { s.with(func(a *scene.Axes) { a.Colorbar = !a.Colorbar }) }

// CycleList selects the cycle list of the current axes by name. Lists
// loaded from scripts and the predefined lists are embedded; other names
// are passed to PGFPlots.
func (s *Session) CycleList(name string) {
	s.with(func(a *scene.Axes) { setCycleList(a, name, s.cycleLists) })
}

// UseCycleList embeds l as the cycle list of the current axes.
func (s *Session) UseCycleList(l *CycleList) {
	s.with(func(a *scene.Axes) { a.CycleList = l })
}

// setCycleList looks name up in local first, then among the predefined
// lists.
func setCycleList(a *scene.Axes, name string, local map[string]*cycle.List) {
	if l, ok := local[name]; ok {
		a.CycleList = l.Clone()
		return
	}
	if l, ok := cycle.Lookup(name); ok {
		a.CycleList = l
		return
	}
	a.CycleList = nil
	a.CycleListName = name
}
