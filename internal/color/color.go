package color

import (
	"errors"
	"fmt"
	"strings"
)

// ErrChannel is returned when a channel value falls outside [0, 255].
var ErrChannel = errors.New("color channels must be between 0 and 255")

// Color represents an RGB color. The R, G, B uint8 fields are the source of truth;
// all output formats are derived from them.
type Color struct {
	R, G, B uint8
}

// Spec is a color as accepted by style options: either a named color
// understood by xcolor (Name) or an explicit RGB value (Color).
type Spec interface {
	fmt.Stringer
	isSpec()
}

// Name is a color keyword passed through to the markup verbatim, e.g. "red"
// or "blue!50!black".
type Name string

const (
	Red     Name = "red"
	Green   Name = "green"
	Blue    Name = "blue"
	Cyan    Name = "cyan"
	Magenta Name = "magenta"
	Yellow  Name = "yellow"
	Black   Name = "black"
	White   Name = "white"
	Gray    Name = "gray"
)

func (n Name) String() string { return string(n) }
func (Name) isSpec()          {}
func (Color) isSpec()         {}

// New validates the channel values and returns the corresponding Color.
func New(r, g, b int) (Color, error) {
	for _, v := range []int{r, g, b} {
		if v < 0 || v > 255 {
			return Color{}, fmt.Errorf("rgb(%d, %d, %d): %w", r, g, b, ErrChannel)
		}
	}
	return Color{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}

// String returns the xcolor expression for the color, e.g.
// "{rgb:red,10;green,80;blue,230}".
func (c Color) String() string {
	return fmt.Sprintf("{rgb:red,%d;green,%d;blue,%d}", c.R, c.G, c.B)
}

// Parse parses the textual form produced by Color.String.
func Parse(s string) (Color, error) {
	var r, g, b int
	n, err := fmt.Sscanf(strings.TrimSpace(s), "{rgb:red,%d;green,%d;blue,%d}", &r, &g, &b)
	if err != nil || n != 3 {
		return Color{}, fmt.Errorf("invalid color %q: expected {rgb:red,R;green,G;blue,B}", s)
	}
	return New(r, g, b)
}

// ParseSpec interprets s as an RGB value when it is in canonical or hex
// form, and as a color name otherwise.
func ParseSpec(s string) Spec {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "{rgb:") {
		if c, err := Parse(s); err == nil {
			return c
		}
	}
	if strings.HasPrefix(s, "#") {
		if c, err := ParseHex(s); err == nil {
			return c
		}
	}
	return Name(s)
}

// Option renders spec as the value of key, e.g. "fill=red" or
// "fill={rgb:red,1;green,2;blue,3}".
func Option(key string, spec Spec) string {
	return key + "=" + spec.String()
}

// Bare renders spec as a standalone option: names stay bare so TikZ treats
// them as a color, RGB values get an explicit color= key.
func Bare(spec Spec) string {
	if n, ok := spec.(Name); ok {
		return string(n)
	}
	return Option("color", spec)
}

// ParseHex parses a hex color string like "#eb6f92" into a Color.
func ParseHex(s string) (Color, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return Color{}, fmt.Errorf("invalid hex color %q: must be 6 hex digits", s)
	}
	var r, g, b uint8
	_, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return Color{R: r, G: g, B: b}, nil
}

// Hex returns the color as a hex string with leading #, e.g. "#eb6f92".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
