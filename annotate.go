package pgfplot

import "github.com/jsvensson/pgfplot/internal/scene"

// Text places text at a data position of the current axes.
func (s *Session) Text(x, y float64, text string) *Text {
	t := &scene.Text{X: x, Y: y, Text: text}
	s.with(func(a *scene.Axes) { a.Add(t) })
	return t
}

// Arrow draws an arrow from (x, y) to (x+dx, y+dy). The format code sets
// color and line style.
func (s *Session) Arrow(x, y, dx, dy float64, format Fmt) *Arrow {
	ar := &scene.Arrow{X: x, Y: y, DX: dx, DY: dy, Stroke: strokeFrom(string(format))}
	s.with(func(a *scene.Axes) { a.Add(ar) })
	return ar
}

// Rectangle draws a rectangle with its lower left corner at (x, y).
func (s *Session) Rectangle(x, y, width, height float64, format Fmt) *Rectangle {
	r := &scene.Rectangle{X: x, Y: y, DX: width, DY: height, Stroke: strokeFrom(string(format))}
	s.with(func(a *scene.Axes) { a.Add(r) })
	return r
}

// Circle draws a circle of radius r around (x, y).
func (s *Session) Circle(x, y, r float64, format Fmt) *Circle {
	c := &scene.Circle{X: x, Y: y, R: r, Stroke: strokeFrom(string(format))}
	s.with(func(a *scene.Axes) { a.Add(c) })
	return c
}
