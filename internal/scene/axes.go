package scene

import (
	"fmt"
	"math"
	"strings"

	"github.com/jsvensson/pgfplot/internal/cycle"
	"github.com/jsvensson/pgfplot/internal/tex"
)

// Axis environments.
const (
	Linear   = "axis"
	SemilogX = "semilogxaxis"
	SemilogY = "semilogyaxis"
	LogLog   = "loglogaxis"
)

// Axes is one coordinate system inside a figure. Pointer fields and nil
// slices mean "not set" and are left out of the markup.
type Axes struct {
	// At is the lower left corner within the figure, in centimeters.
	At     [2]float64
	Width  float64
	Height float64

	// Variant is the environment name, one of Linear, SemilogX, SemilogY
	// or LogLog.
	Variant string

	Title  string
	XLabel string
	YLabel string
	ZLabel string

	XMin, XMax *float64
	YMin, YMax *float64

	EnlargeLimits *bool

	// A nil tick slice leaves the ticks to PGFPlots, an empty one removes
	// them.
	XTick, YTick             []float64
	XTickLabels, YTickLabels []string

	XTickLabelRotation *float64
	YTickLabelRotation *float64
	XTickAlign         string
	YTickAlign         string

	AxisXLine string
	AxisYLine string

	// LabelsNearTicks defaults to true.
	LabelsNearTicks *bool
	HideAxis        bool
	Equal           *bool
	Grid            *bool

	YBar     bool
	XBar     bool
	Stacked  bool
	Interval bool
	BarWidth *float64 // cm

	Colormap string
	Colorbar bool

	// CycleList is embedded in the markup and wins over CycleListName,
	// which refers to a list PGFPlots already knows.
	CycleList     *cycle.List
	CycleListName string

	Legend *Legend

	Options []string

	figure   *Figure
	children []Child
}

// NewAxes returns axes with the default 8cm by 7cm size at the origin.
func NewAxes() *Axes {
	return &Axes{
		Width:   8,
		Height:  7,
		Variant: Linear,
	}
}

// Figure returns the figure holding the axes, or nil.
func (a *Axes) Figure() *Figure { return a.figure }

// Add appends children in drawing order.
func (a *Axes) Add(children ...Child) {
	for _, c := range children {
		if at, ok := c.(attacher); ok {
			at.attach(a)
		}
		a.children = append(a.children, c)
	}
}

// Children returns the children in drawing order.
func (a *Axes) Children() []Child {
	return append([]Child(nil), a.children...)
}

// Limits folds the limits of every child.
func (a *Axes) Limits() Box {
	box := EmptyBox()
	for _, c := range a.children {
		box = box.Union(c.Limits())
	}
	return box
}

// Tight sets the axis bounds to the data limits. It reports false and
// leaves the bounds alone when there is no data.
func (a *Axes) Tight() bool {
	if len(a.children) == 0 {
		return false
	}
	box := a.Limits()
	if box.Empty() {
		return false
	}
	a.XMin, a.XMax = float(box[0]), float(box[1])
	a.YMin, a.YMax = float(box[2]), float(box[3])
	return true
}

// Auto clears the axis bounds.
func (a *Axes) Auto() {
	a.XMin, a.XMax, a.YMin, a.YMax = nil, nil, nil, nil
}

// Square makes the axes as wide as they are tall, using the smaller side.
func (a *Axes) Square() {
	side := math.Min(a.Width, a.Height)
	a.Width, a.Height = side, side
}

// Extent returns the upper right corner of the axes.
func (a *Axes) Extent() (x, y float64) {
	return a.At[0] + a.Width, a.At[1] + a.Height
}

func (a *Axes) variant() string {
	if a.Variant == "" {
		return Linear
	}
	return a.Variant
}

func (a *Axes) options() []string {
	opts := []string{
		"scale only axis",
		"width=" + tex.Length(a.Width),
		"height=" + tex.Length(a.Height),
		fmt.Sprintf("at={(%s, %s)}", tex.Length(a.At[0]), tex.Length(a.At[1])),
	}

	text := func(key, value string) {
		if value != "" {
			opts = append(opts, key+"={"+tex.Escape(value)+"}")
		}
	}
	num := func(key string, value *float64) {
		if value != nil {
			opts = append(opts, key+"={"+tex.Num(*value)+"}")
		}
	}
	text("title", a.Title)
	num("xmin", a.XMin)
	num("xmax", a.XMax)
	num("ymin", a.YMin)
	num("ymax", a.YMax)
	text("xlabel", a.XLabel)
	text("ylabel", a.YLabel)
	text("zlabel", a.ZLabel)

	if a.EnlargeLimits != nil {
		opts = append(opts, "enlargelimits="+tex.Bool(*a.EnlargeLimits))
	}
	if a.Legend != nil {
		opts = append(opts, a.Legend.options()...)
	}

	nearTicks := a.LabelsNearTicks == nil || *a.LabelsNearTicks
	if nearTicks && a.XLabel != "" {
		opts = append(opts, "xlabel near ticks")
	}
	if nearTicks && a.YLabel != "" {
		opts = append(opts, "ylabel near ticks")
	}
	if a.Equal != nil && *a.Equal {
		opts = append(opts, "axis equal=true")
	}
	if a.Grid != nil && *a.Grid {
		opts = append(opts, "grid=major")
	}
	if a.HideAxis {
		opts = append(opts, "hide axis")
	}

	opts = append(opts, ticks("x", a.XTick, a.XTickLabels)...)
	opts = append(opts, ticks("y", a.YTick, a.YTickLabels)...)
	if a.XTickLabels != nil {
		opts = append(opts, "xticklabels={"+strings.Join(tex.EscapeAll(a.XTickLabels), ",")+"}")
	}
	if a.YTickLabels != nil {
		opts = append(opts, "yticklabels={"+strings.Join(tex.EscapeAll(a.YTickLabels), ",")+"}")
	}
	if a.XTickLabelRotation != nil {
		opts = append(opts, "xticklabel style={rotate="+tex.Num(*a.XTickLabelRotation)+"}")
	}
	if a.YTickLabelRotation != nil {
		opts = append(opts, "yticklabel style={rotate="+tex.Num(*a.YTickLabelRotation)+"}")
	}
	if a.XTickAlign != "" {
		opts = append(opts, "xtick align={"+a.XTickAlign+"}")
	}
	if a.YTickAlign != "" {
		opts = append(opts, "ytick align={"+a.YTickAlign+"}")
	}

	if a.AxisXLine != "" {
		opts = append(opts, "axis x line="+a.AxisXLine)
	}
	if a.AxisYLine != "" {
		opts = append(opts, "axis y line="+a.AxisYLine)
	}

	opts = append(opts, a.barOptions()...)

	if a.Colormap != "" {
		opts = append(opts, "colormap/"+a.Colormap)
	}
	if a.Colorbar {
		opts = append(opts, "colorbar")
	}
	if a.CycleList != nil {
		opts = append(opts, a.CycleList.Render())
	} else if a.CycleListName != "" {
		opts = append(opts, "cycle list name="+a.CycleListName)
	}

	return append(opts, a.Options...)
}

func ticks(axis string, positions []float64, labels []string) []string {
	switch {
	case positions == nil:
		return nil
	case len(positions) == 0:
		return []string{
			axis + `tick=\empty`,
			axis + "tick scale label code/.code={}",
		}
	}
	opts := []string{axis + "tick={" + tex.Nums(positions) + "}"}
	if len(labels) > 0 {
		opts = append(opts, axis+"tick scale label code/.code={}")
	}
	return opts
}

func (a *Axes) barOptions() []string {
	var opts []string
	for _, dir := range []struct {
		on   bool
		name string
	}{{a.YBar, "ybar"}, {a.XBar, "xbar"}} {
		if !dir.on {
			continue
		}
		switch {
		case a.Interval:
			opts = append(opts, dir.name+" interval")
			if a.Grid == nil || !*a.Grid {
				opts = append(opts, "grid=none")
			}
		case a.Stacked:
			opts = append(opts, dir.name+" stacked")
		default:
			opts = append(opts, dir.name)
		}
		break
	}
	if a.XBar || a.YBar {
		opts = append(opts, "area legend")
	}
	if a.BarWidth != nil {
		opts = append(opts, "bar width="+tex.Length(*a.BarWidth))
	}
	return opts
}

// Render returns the axis environment with every child inside it.
func (a *Axes) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "\\begin{%s}[\n", a.variant())
	b.WriteString(tex.Indent(strings.Join(a.options(), ",\n"), 1))
	b.WriteString("]\n")
	for _, c := range a.children {
		b.WriteString(tex.Indent(c.Render(), 1))
	}
	fmt.Fprintf(&b, "\\end{%s}\n", a.variant())
	return b.String()
}
