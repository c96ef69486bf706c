package scene

import (
	"fmt"
	"strings"

	"github.com/aclements/go-moremath/stats"
	"github.com/jsvensson/pgfplot/internal/tex"
)

// Surface is a 3D surface over a grid. X, Y and Z have the same shape.
type Surface struct {
	X, Y, Z [][]float64

	// Shading is a PGFPlots shader such as "flat", "interp" or "faceted".
	Shading string
	Options []string

	axes *Axes
}

// NewSurface returns a surface over the grid of row and column indices
// of z.
func NewSurface(z [][]float64) (*Surface, error) {
	if err := rectangular("z", z); err != nil {
		return nil, err
	}
	x := make([][]float64, len(z))
	y := make([][]float64, len(z))
	for i, row := range z {
		x[i] = make([]float64, len(row))
		y[i] = make([]float64, len(row))
		for j := range row {
			x[i][j] = float64(j)
			y[i][j] = float64(i)
		}
	}
	return &Surface{X: x, Y: y, Z: z}, nil
}

// NewSurfaceXYZ returns a surface through explicit grid coordinates.
func NewSurfaceXYZ(x, y, z [][]float64) (*Surface, error) {
	for _, m := range []struct {
		name string
		v    [][]float64
	}{{"x", x}, {"y", y}, {"z", z}} {
		if err := rectangular(m.name, m.v); err != nil {
			return nil, err
		}
	}
	if len(x) != len(z) || len(y) != len(z) {
		return nil, fmt.Errorf("surface grids have %d, %d and %d rows: %w", len(x), len(y), len(z), ErrShape)
	}
	if len(z) > 0 && (len(x[0]) != len(z[0]) || len(y[0]) != len(z[0])) {
		return nil, fmt.Errorf("surface grids differ in width: %w", ErrShape)
	}
	return &Surface{X: x, Y: y, Z: z}, nil
}

func rectangular(name string, m [][]float64) error {
	for i, row := range m {
		if len(row) != len(m[0]) {
			return fmt.Errorf("%s row %d has %d values, row 0 has %d: %w", name, i, len(row), len(m[0]), ErrShape)
		}
	}
	return nil
}

// Surfaces look wrong with labels pinned to the ticks.
func (s *Surface) attach(a *Axes) {
	s.axes = a
	off := false
	a.LabelsNearTicks = &off
}

func (s *Surface) Limits() Box {
	if len(s.Z) == 0 || len(s.Z[0]) == 0 {
		return EmptyBox()
	}
	box := EmptyBox()
	for i := range s.Z {
		xmin, xmax := stats.Bounds(s.X[i])
		ymin, ymax := stats.Bounds(s.Y[i])
		box = box.Union(Box{xmin, xmax, ymin, ymax})
	}
	return box
}

// Render returns the \addplot3 command of the surface.
func (s *Surface) Render() string {
	opts := []string{"surf", fmt.Sprintf("mesh/rows=%d", len(s.Z))}
	if s.Shading != "" {
		opts = append(opts, "shader="+s.Shading)
	}
	opts = append(opts, s.Options...)

	var b strings.Builder
	fmt.Fprintf(&b, "\\addplot3[%s] coordinates {\n", tex.InlineOptions(opts))
	for i := range s.Z {
		for j := range s.Z[i] {
			fmt.Fprintf(&b, "\t(%s, %s, %s)\n", tex.Num(s.X[i][j]), tex.Num(s.Y[i][j]), tex.Num(s.Z[i][j]))
		}
	}
	b.WriteString("};\n")
	return b.String()
}
