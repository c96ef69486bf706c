package scene

import (
	"maps"
	"slices"
)

// Registry tracks the figures of one session and which of them is current.
type Registry struct {
	session string
	figures map[int]*Figure
	current *Figure

	// init is applied to every figure the registry creates.
	init func(*Figure)
}

// NewRegistry returns an empty registry. init, if not nil, configures
// every new figure.
func NewRegistry(session string, init func(*Figure)) *Registry {
	return &Registry{
		session: session,
		figures: make(map[int]*Figure),
		init:    init,
	}
}

// Session returns the session id used in file names.
func (r *Registry) Session() string { return r.session }

// Figure makes the figure with index idx current, creating it at that
// index when it does not exist yet. A negative idx creates a figure at
// the lowest unused index, like NewFigure.
func (r *Registry) Figure(idx int) *Figure {
	if idx < 0 {
		return r.NewFigure()
	}
	f, ok := r.figures[idx]
	if !ok {
		f = r.create(idx)
	}
	r.current = f
	return f
}

// NewFigure creates a figure at the lowest unused index and makes it
// current.
func (r *Registry) NewFigure() *Figure {
	f := r.create(r.freeIndex())
	r.current = f
	return f
}

// Current returns the current figure, creating one when there is none.
func (r *Registry) Current() *Figure {
	if r.current == nil {
		return r.NewFigure()
	}
	return r.current
}

// CurrentAxes returns the current axes of the current figure, creating
// either when missing.
func (r *Registry) CurrentAxes() *Axes {
	return r.Current().Axes()
}

// Figures returns every figure ordered by index.
func (r *Registry) Figures() []*Figure {
	out := make([]*Figure, 0, len(r.figures))
	for _, idx := range slices.Sorted(maps.Keys(r.figures)) {
		out = append(out, r.figures[idx])
	}
	return out
}

func (r *Registry) create(idx int) *Figure {
	f := NewFigure(r.session, idx)
	if r.init != nil {
		r.init(f)
	}
	r.figures[idx] = f
	return f
}

func (r *Registry) freeIndex() int {
	idx := 0
	for {
		if _, ok := r.figures[idx]; !ok {
			return idx
		}
		idx++
	}
}
