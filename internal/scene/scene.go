// Package scene is the figure/axes/plot object graph and its translation
// into PGFPlots markup.
//
// Ownership is a tree: a Figure owns its panels (Axes or a single
// AxesGrid), an Axes owns its children (plots, images, annotations).
// Children keep a plain pointer back to their parent for lookups only.
package scene

import (
	"errors"
	"math"
)

// ErrShape is returned when data sequences do not have compatible lengths.
var ErrShape = errors.New("incompatible data shape")

// Box is a data extent: xmin, xmax, ymin, ymax.
type Box [4]float64

// EmptyBox returns the identity for Union: +Inf, -Inf, +Inf, -Inf.
func EmptyBox() Box {
	return Box{math.Inf(1), math.Inf(-1), math.Inf(1), math.Inf(-1)}
}

// Union returns the smallest box containing b and o.
func (b Box) Union(o Box) Box {
	return Box{
		math.Min(b[0], o[0]),
		math.Max(b[1], o[1]),
		math.Min(b[2], o[2]),
		math.Max(b[3], o[3]),
	}
}

// Empty reports whether the box contains no data.
func (b Box) Empty() bool {
	return b[0] > b[1] || b[2] > b[3]
}

// Child is anything an Axes can hold.
type Child interface {
	Render() string
	Limits() Box
}

// Panel is anything a Figure can hold.
type Panel interface {
	Render() string
	// Extent returns offset plus size along x and y, in centimeters.
	Extent() (x, y float64)
}

// attacher is implemented by children that want a reference to their axes.
type attacher interface {
	attach(a *Axes)
}

func float(f float64) *float64 { return &f }
