package pgfplot

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jsvensson/pgfplot/internal/color"
	"github.com/jsvensson/pgfplot/internal/cycle"
)

func TestLabels(t *testing.T) {
	s := testSession(t)
	s.Title("t")
	s.XLabel("x")
	s.YLabel("y")
	s.ZLabel("z")
	a := s.Gca()
	if a.Title != "t" || a.XLabel != "x" || a.YLabel != "y" || a.ZLabel != "z" {
		t.Errorf("labels = %q %q %q %q", a.Title, a.XLabel, a.YLabel, a.ZLabel)
	}
}

func TestTicks(t *testing.T) {
	s := testSession(t)
	s.XTick([]float64{0, 5}, "low", "high")
	s.YTick([]float64{})
	a := s.Gca()
	if diff := cmp.Diff([]string{"low", "high"}, a.XTickLabels); diff != "" {
		t.Errorf("labels mismatch (-want +got):\n%s", diff)
	}
	if a.YTick == nil || len(a.YTick) != 0 {
		t.Errorf("YTick = %v, want empty", a.YTick)
	}
	if !strings.Contains(s.Render(), "ytick=\\empty") {
		t.Error("empty ticks not rendered as \\empty")
	}
}

func TestTickLabelsPlaceTicks(t *testing.T) {
	s := testSession(t)
	s.XTickLabels("a", "b", "c")
	if diff := cmp.Diff([]float64{1, 2, 3}, s.Gca().XTick); diff != "" {
		t.Errorf("xtick mismatch (-want +got):\n%s", diff)
	}

	s.YTick([]float64{10, 20})
	s.YTickLabels("a", "b")
	if diff := cmp.Diff([]float64{10, 20}, s.Gca().YTick); diff != "" {
		t.Errorf("ytick mismatch (-want +got):\n%s", diff)
	}
}

func TestAxisModes(t *testing.T) {
	s := testSession(t)
	s.Plot(Vec{0, 1}, Vec{2, 4})
	a := s.Gca()

	for _, mode := range []string{"off", "equal", "center"} {
		if err := s.Axis(mode); err != nil {
			t.Fatalf("Axis(%q) error: %v", mode, err)
		}
	}
	if !a.HideAxis || a.Equal == nil || !*a.Equal {
		t.Errorf("hide %v, equal %v", a.HideAxis, a.Equal)
	}
	if a.AxisXLine != "center" || a.AxisYLine != "middle" {
		t.Errorf("axis lines = %q, %q", a.AxisXLine, a.AxisYLine)
	}

	if err := s.Axis("tight"); err != nil {
		t.Fatal(err)
	}
	if *a.XMin != 0 || *a.XMax != 1 || *a.YMin != 2 || *a.YMax != 4 {
		t.Errorf("tight limits = %v %v %v %v", *a.XMin, *a.XMax, *a.YMin, *a.YMax)
	}
	if err := s.Axis("auto"); err != nil {
		t.Fatal(err)
	}
	if a.XMin != nil {
		t.Error("auto left limits set")
	}
	s.Axis("on")
	if a.HideAxis {
		t.Error("axis still hidden")
	}
}

func TestAxisTightWithoutData(t *testing.T) {
	s := testSession(t)
	if err := s.Axis("tight"); !errors.Is(err, ErrNoData) {
		t.Errorf("Axis(tight) error = %v, want ErrNoData", err)
	}
	if s.Gca().XMin != nil {
		t.Error("tight changed limits of empty axes")
	}
}

func TestAxisUnknown(t *testing.T) {
	s := testSession(t)
	if err := s.Axis("sideways"); !errors.Is(err, ErrAxisMode) {
		t.Errorf("Axis() error = %v, want ErrAxisMode", err)
	}
}

func TestLimits(t *testing.T) {
	s := testSession(t)
	s.AxisLimits(0, 1, 2, 3)
	s.XLim(-1, 1)
	a := s.Gca()
	got := []float64{*a.XMin, *a.XMax, *a.YMin, *a.YMax}
	if diff := cmp.Diff([]float64{-1, 1, 2, 3}, got); diff != "" {
		t.Errorf("limits mismatch (-want +got):\n%s", diff)
	}
	s.YLim(5, 6)
	if *a.YMin != 5 || *a.YMax != 6 {
		t.Errorf("ylim = %v, %v", *a.YMin, *a.YMax)
	}
}

func TestGridAndBox(t *testing.T) {
	s := testSession(t)
	a := s.Gca()

	s.ToggleGrid()
	if a.Grid == nil || !*a.Grid {
		t.Error("ToggleGrid did not enable the grid")
	}
	s.Grid(false)
	if *a.Grid {
		t.Error("Grid(false) left the grid on")
	}

	s.Box(false)
	if a.AxisXLine != "bottom" || a.AxisYLine != "left" {
		t.Errorf("box off = %q, %q", a.AxisXLine, a.AxisYLine)
	}
	s.ToggleBox()
	if a.AxisXLine != "" || a.AxisYLine != "" {
		t.Errorf("box on = %q, %q", a.AxisXLine, a.AxisYLine)
	}
	s.ToggleBox()
	if a.AxisXLine != "bottom" {
		t.Error("ToggleBox did not turn the box off")
	}
}

func TestLegend(t *testing.T) {
	s := testSession(t)
	l := s.Legend("a", "b")
	l.Location = "upper left"
	if s.Gca().Legend != l {
		t.Fatal("legend not attached")
	}
	if s.Legend("c") != l || len(l.Entries) != 1 {
		t.Errorf("Legend() replaced the legend: %+v", l)
	}
	if !strings.Contains(s.Render(), "north west") {
		t.Error("legend position not rendered")
	}
}

func TestColormapAndColorbar(t *testing.T) {
	s := testSession(t)
	s.Colormap("hot")
	s.Colorbar(true)
	s.ToggleColorbar()
	a := s.Gca()
	if a.Colormap != "hot" || a.Colorbar {
		t.Errorf("colormap %q, colorbar %v", a.Colormap, a.Colorbar)
	}
}

func TestCycleList(t *testing.T) {
	s := testSession(t)

	s.CycleList("fancy")
	if s.Gca().CycleList == nil {
		t.Error("predefined list not embedded")
	}

	s.CycleList("exotic")
	a := s.Gca()
	if a.CycleList != nil || a.CycleListName != "exotic" {
		t.Errorf("CycleList = %v, name %q", a.CycleList, a.CycleListName)
	}

	l, err := cycle.New(cycle.Entry{Style: []fmt.Stringer{color.Red}})
	if err != nil {
		t.Fatal(err)
	}
	s.UseCycleList(l)
	if a.CycleList != l {
		t.Error("UseCycleList did not embed the list")
	}
}

func TestCycleListIsolation(t *testing.T) {
	first := testSession(t)
	first.CycleList("fancy")
	if err := first.Gca().CycleList.Append([]fmt.Stringer{cycle.Word("dotted")}, nil); err != nil {
		t.Fatal(err)
	}

	first.NewFigure()
	first.CycleList("fancy")
	if got := first.Gca().CycleList.Len(); got != 5 {
		t.Errorf("other axes Len() = %d, want 5", got)
	}

	second := testSession(t)
	second.CycleList("fancy")
	if got := second.Gca().CycleList.Len(); got != 5 {
		t.Errorf("other session Len() = %d, want 5", got)
	}
}

func TestAnnotations(t *testing.T) {
	s := testSession(t)
	txt := s.Text(1, 2, "peak")
	ar := s.Arrow(0, 0, 1, 1, "r--")
	r := s.Rectangle(0, 0, 2, 1, "")
	c := s.Circle(5, 5, 1, "b")

	if ar.Color != color.Red || ar.LineStyle != "dashed" {
		t.Errorf("arrow stroke = %+v", ar.Stroke)
	}
	if r.Color != nil {
		t.Errorf("rectangle color = %v, want none", r.Color)
	}
	if c.Color != color.Blue {
		t.Errorf("circle color = %v", c.Color)
	}
	if got := len(s.Gca().Children()); got != 4 {
		t.Errorf("children = %d, want 4", got)
	}
	if txt.Text != "peak" {
		t.Errorf("Text = %q", txt.Text)
	}
	if got := s.Gca().Limits(); got != (Box{0, 6, 0, 6}) {
		t.Errorf("Limits() = %v", got)
	}
}
