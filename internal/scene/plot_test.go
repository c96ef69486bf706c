package scene

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jsvensson/pgfplot/internal/color"
	"github.com/jsvensson/pgfplot/internal/style"
)

func ptr(f float64) *float64 { return &f }

func mustPlot(t *testing.T, x, y []float64) *Plot {
	t.Helper()
	p, err := NewPlot(x, y)
	if err != nil {
		t.Fatalf("NewPlot() error: %v", err)
	}
	return p
}

func TestNewPlotDefaultsX(t *testing.T) {
	p := mustPlot(t, nil, []float64{4, 5, 6})
	if diff := cmp.Diff([]float64{1, 2, 3}, p.X); diff != "" {
		t.Errorf("X mismatch (-want +got):\n%s", diff)
	}
}

func TestNewPlotShape(t *testing.T) {
	_, err := NewPlot([]float64{1, 2}, []float64{1, 2, 3})
	if !errors.Is(err, ErrShape) {
		t.Fatalf("NewPlot() error = %v, want ErrShape", err)
	}
}

func TestPlotLimits(t *testing.T) {
	p := mustPlot(t, []float64{1, 2, 3}, []float64{4, 5, 6})
	if got, want := p.Limits(), (Box{1, 3, 4, 6}); got != want {
		t.Errorf("Limits() = %v, want %v", got, want)
	}

	empty := mustPlot(t, nil, nil)
	if got := empty.Limits(); got != EmptyBox() {
		t.Errorf("empty Limits() = %v, want %v", got, EmptyBox())
	}
}

func TestPlotRenderCoordinates(t *testing.T) {
	p := mustPlot(t, []float64{1, 2, 3}, []float64{4, 5.5, 6})
	want := "\\addplot+[no marks] coordinates {\n" +
		"\t(1, 4)\n" +
		"\t(2, 5.5)\n" +
		"\t(3, 6)\n" +
		"};\n"
	if got := p.Render(); got != want {
		t.Errorf("Render() =\n%s\nwant\n%s", got, want)
	}
}

func TestPlotRenderOneLinePerPoint(t *testing.T) {
	for _, n := range []int{0, 1, 7} {
		y := make([]float64, n)
		p := mustPlot(t, nil, y)
		lines := strings.Count(p.Render(), "\t(")
		if lines != n {
			t.Errorf("%d points rendered %d coordinate lines", n, lines)
		}
	}
}

func TestPlotRenderOptions(t *testing.T) {
	tests := []struct {
		name string
		plot func(p *Plot)
		want string
	}{
		{
			name: "format code",
			plot: func(p *Plot) {
				st := style.Parse("r--.")
				p.Color, p.Marker, p.LineStyle = st.Color, st.Marker, st.LineStyle
			},
			want: "dashed, red, mark=*, mark options={solid}",
		},
		{
			name: "marker only",
			plot: func(p *Plot) { p.Marker = "o" },
			want: "only marks, mark=o",
		},
		{
			name: "rgb color",
			plot: func(p *Plot) { p.Color = color.Color{R: 1, G: 2, B: 3} },
			want: "color={rgb:red,1;green,2;blue,3}, no marks",
		},
		{
			name: "width and opacity",
			plot: func(p *Plot) {
				p.LineWidth = ptr(2)
				p.Opacity = ptr(0.5)
			},
			want: "line width=2pt, opacity=0.5, no marks",
		},
		{
			name: "automatic fill",
			plot: func(p *Plot) { p.Fill = true },
			want: "fill, no marks",
		},
		{
			name: "marker opacity falls back",
			plot: func(p *Plot) {
				p.Marker = "."
				p.Opacity = ptr(0.3)
			},
			want: "only marks, opacity=0.3, mark=*, mark options={fill opacity=0.3}",
		},
		{
			name: "ycomb wins",
			plot: func(p *Plot) {
				p.YComb = true
				p.XComb = true
			},
			want: "no marks, ycomb",
		},
		{
			name: "passthrough last",
			plot: func(p *Plot) {
				p.ConstPlot = true
				p.Options = []string{"smooth"}
			},
			want: "no marks, const plot, smooth",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := mustPlot(t, []float64{1}, []float64{2})
			tt.plot(p)
			first, _, _ := strings.Cut(p.Render(), "\n")
			want := "\\addplot+[" + tt.want + "] coordinates {"
			if first != want {
				t.Errorf("first line = %q, want %q", first, want)
			}
		})
	}
}

func TestPlotRenderLongOptions(t *testing.T) {
	p := mustPlot(t, []float64{1}, []float64{2})
	p.Color = color.Color{R: 10, G: 80, B: 230}
	p.LineStyle = style.DenselyDashed
	p.LineWidth = ptr(2)
	p.Marker = "o"

	got := p.Render()
	if !strings.HasPrefix(got, "\\addplot+[\n\tdensely dashed,\n\tline width=2pt,\n") {
		t.Errorf("long option list not broken into lines:\n%s", got)
	}
}

func TestPlotErrors(t *testing.T) {
	p := mustPlot(t, []float64{1, 2}, []float64{3, 4})
	if err := p.SetErrors(nil, []float64{0.5}); err != nil {
		t.Fatalf("SetErrors() error: %v", err)
	}
	got := p.Render()
	for _, want := range []string{
		"error bars/y dir=both",
		"error bars/y explicit",
		"\t(1, 3) +- (0, 0.5)\n",
		"\t(2, 4) +- (0, 0.5)\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Render() missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "error bars/x") {
		t.Errorf("Render() has x error bars:\n%s", got)
	}

	if err := p.SetErrors([]float64{1, 2, 3}, nil); !errors.Is(err, ErrShape) {
		t.Errorf("SetErrors() with 3 values for 2 points error = %v, want ErrShape", err)
	}
}

func TestPlotErrorBarStyle(t *testing.T) {
	p := mustPlot(t, []float64{1}, []float64{2})
	if err := p.SetErrors([]float64{1}, []float64{1}); err != nil {
		t.Fatal(err)
	}
	p.ErrorMarker = "."
	p.ErrorColor = color.Gray
	p.ErrorWidth = ptr(1)

	got := p.Render()
	for _, want := range []string{
		"error bars/x dir=both",
		"error bars/error mark=*",
		"error bars/error bar style={gray, line width=1pt}",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Render() missing %q:\n%s", want, got)
		}
	}
}

func TestPlotClosed(t *testing.T) {
	p := mustPlot(t, []float64{1}, []float64{2})
	p.Closed = true
	if got := p.Render(); !strings.HasSuffix(got, "} \\closedcycle;\n") {
		t.Errorf("Render() = %q, want closed cycle", got)
	}
}
