package color

import (
	"errors"
	"sort"
)

// ColormapSize is the number of entries in every Colormap.
const ColormapSize = 256

// Interpolation selects how a Colormap fills the gaps between its anchors.
type Interpolation int

const (
	Linear Interpolation = iota
	Nearest
)

// Colormap is a lookup table of 256 colors.
type Colormap struct {
	colors [ColormapSize]Color
}

// NewColormap builds a Colormap from anchor colors spread evenly over the
// table. With 256 or more anchors the first 256 are used as is.
func NewColormap(anchors []Color, interp Interpolation) (*Colormap, error) {
	if len(anchors) == 0 {
		return nil, errors.New("colormap needs at least one color")
	}

	cm := &Colormap{}
	if len(anchors) >= ColormapSize {
		copy(cm.colors[:], anchors)
		return cm, nil
	}

	last := len(anchors) - 1
	for i := range cm.colors {
		j := float64(last) / float64(ColormapSize-1) * float64(i)
		k := int(j)
		w := j - float64(k)

		switch {
		case k >= last:
			cm.colors[i] = anchors[last]
		case interp == Nearest:
			if w > 0.5 {
				cm.colors[i] = anchors[k+1]
			} else {
				cm.colors[i] = anchors[k]
			}
		default:
			cm.colors[i] = Mix(anchors[k], anchors[k+1], w)
		}
	}
	return cm, nil
}

// At returns the i-th entry of the table.
func (cm *Colormap) At(i uint8) Color {
	return cm.colors[i]
}

// Map returns the color for v in [0, 1]; values outside are clamped.
func (cm *Colormap) Map(v float64) Color {
	switch {
	case v != v || v <= 0:
		return cm.colors[0]
	case v >= 1:
		return cm.colors[ColormapSize-1]
	}
	return cm.colors[int(v*ColormapSize)]
}

type colormapDef struct {
	anchors [][3]uint8
	interp  Interpolation
}

var colormapDefs = map[string]colormapDef{
	"gray": {anchors: [][3]uint8{{0, 0, 0}, {255, 255, 255}}},
	"jet": {anchors: [][3]uint8{
		{0, 0, 144}, {0, 0, 255}, {0, 255, 255},
		{255, 255, 0}, {255, 0, 0}, {128, 0, 0},
	}},
	"hsv": {anchors: [][3]uint8{
		{255, 0, 0}, {255, 255, 0}, {0, 255, 0}, {0, 255, 255},
		{0, 0, 255}, {255, 0, 255}, {255, 0, 0},
	}},
	"winter": {anchors: [][3]uint8{{0, 0, 255}, {0, 255, 128}}},
	"cool":   {anchors: [][3]uint8{{0, 255, 255}, {255, 0, 255}}},
	"hot": {anchors: [][3]uint8{
		{0, 0, 0}, {255, 0, 0}, {255, 255, 0}, {255, 255, 255},
	}},
	"cold": {anchors: [][3]uint8{
		{0, 0, 0}, {0, 0, 255}, {0, 255, 255}, {255, 255, 255},
	}},
	"cartoon": {interp: Nearest, anchors: [][3]uint8{
		{255, 255, 255}, {0, 0, 255}, {0, 42, 255}, {28, 174, 255},
		{58, 255, 213}, {138, 255, 69}, {240, 255, 0}, {252, 164, 0},
		{209, 0, 0},
	}},
	"shadows": {interp: Nearest, anchors: [][3]uint8{
		{255, 255, 255}, {223, 223, 223}, {191, 191, 191},
		{159, 159, 159}, {127, 127, 127}, {95, 95, 95},
		{63, 63, 63}, {31, 31, 31}, {0, 0, 0},
	}},
	"fruity": {anchors: [][3]uint8{
		{255, 255, 255}, {50, 50, 230}, {100, 230, 50},
		{230, 230, 50}, {255, 50, 50},
	}},
}

var colormaps = func() map[string]*Colormap {
	m := make(map[string]*Colormap, len(colormapDefs))
	for name, def := range colormapDefs {
		anchors := make([]Color, len(def.anchors))
		for i, a := range def.anchors {
			anchors[i] = Color{R: a[0], G: a[1], B: a[2]}
		}
		cm, err := NewColormap(anchors, def.interp)
		if err != nil {
			panic(err)
		}
		m[name] = cm
	}
	return m
}()

// LookupColormap returns a predefined colormap by name.
func LookupColormap(name string) (*Colormap, bool) {
	cm, ok := colormaps[name]
	return cm, ok
}

// ColormapNames returns the names of the predefined colormaps, sorted.
func ColormapNames() []string {
	names := make([]string, 0, len(colormaps))
	for name := range colormaps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
