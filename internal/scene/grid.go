package scene

import (
	"maps"
	"slices"
	"strings"
)

// Cell addresses an axes in a grid. Row 0 is the top row.
type Cell struct {
	Row, Col int
}

// AxesGrid lays out axes in rows and columns. Every column is as wide as
// its widest axes and every row as tall as its tallest.
type AxesGrid struct {
	// Spacing is the gap between rows and columns, in centimeters.
	Spacing float64

	cells map[Cell]*Axes
}

// NewAxesGrid returns an empty grid with 2cm spacing.
func NewAxesGrid() *AxesGrid {
	return &AxesGrid{Spacing: 2, cells: make(map[Cell]*Axes)}
}

// Get returns the axes at row, col.
func (g *AxesGrid) Get(row, col int) (*Axes, bool) {
	a, ok := g.cells[Cell{row, col}]
	return a, ok
}

// Set places a at row, col, replacing what was there.
func (g *AxesGrid) Set(row, col int, a *Axes) {
	g.cells[Cell{row, col}] = a
}

// Cells returns the occupied cells in row-major order.
func (g *AxesGrid) Cells() []Cell {
	return slices.SortedFunc(maps.Keys(g.cells), func(a, b Cell) int {
		if a.Row != b.Row {
			return a.Row - b.Row
		}
		return a.Col - b.Col
	})
}

// Layout sets At on every axes.
func (g *AxesGrid) Layout() {
	widths := make(map[int]float64)
	heights := make(map[int]float64)
	for c, a := range g.cells {
		widths[c.Col] = max(widths[c.Col], a.Width)
		heights[c.Row] = max(heights[c.Row], a.Height)
	}

	left := make(map[int]float64)
	x := 0.0
	for _, col := range slices.Sorted(maps.Keys(widths)) {
		left[col] = x
		x += widths[col] + g.Spacing
	}

	// Rows stack downwards from the top, so the last row sits at y=0.
	bottom := make(map[int]float64)
	y := 0.0
	rows := slices.Sorted(maps.Keys(heights))
	for _, row := range slices.Backward(rows) {
		bottom[row] = y
		y += heights[row] + g.Spacing
	}

	for c, a := range g.cells {
		a.At = [2]float64{left[c.Col], bottom[c.Row]}
	}
}

// Extent returns the upper right corner of the laid out grid.
func (g *AxesGrid) Extent() (x, y float64) {
	g.Layout()
	for _, a := range g.cells {
		ax, ay := a.Extent()
		x, y = max(x, ax), max(y, ay)
	}
	return x, y
}

// Render lays out the grid and returns the markup of every cell.
func (g *AxesGrid) Render() string {
	g.Layout()
	var b strings.Builder
	for _, c := range g.Cells() {
		b.WriteString(g.cells[c].Render())
	}
	return b.String()
}
