// Package style parses compact format codes such as "r--." into color,
// marker and line style attributes.
package style

import (
	"strings"

	"github.com/jsvensson/pgfplot/internal/color"
)

// Marker names understood by PGFPlots.
const (
	MarkerDot      = "*"
	MarkerCircle   = "o"
	MarkerPlus     = "+"
	MarkerBar      = "|"
	MarkerAsterisk = "asterisk"
	MarkerX        = "x"
	MarkerDiamond  = "diamond"
	MarkerTriangle = "triangle"
	MarkerPentagon = "pentagon"
	MarkerNone     = "none"
)

// Line styles understood by TikZ.
const (
	Solid         = "solid"
	Dashed        = "dashed"
	DenselyDashed = "densely dashed"
	Dotted        = "dotted"
	DenselyDotted = "densely dotted"
	OnlyMarks     = "only marks"
)

// Style holds the attributes extracted from a format code. Zero values mean
// the code did not mention the attribute.
type Style struct {
	Color     color.Spec
	Marker    string
	LineStyle string
}

type token struct {
	code  string
	value string
}

// Checked in order; the first match wins.
var (
	colorCodes = []struct {
		code  string
		value color.Name
	}{
		{"r", color.Red},
		{"g", color.Green},
		{"b", color.Blue},
		{"c", color.Cyan},
		{"m", color.Magenta},
		{"y", color.Yellow},
		{"k", color.Black},
		{"w", color.White},
	}
	markerCodes = []token{
		{".", MarkerDot},
		{"o", MarkerCircle},
		{"+", MarkerPlus},
		{"|", MarkerBar},
		{"*", MarkerAsterisk},
		{"x", MarkerX},
		{"d", MarkerDiamond},
		{"^", MarkerTriangle},
		{"p", MarkerPentagon},
	}
	// Longer dash runs must come before their prefixes.
	lineCodes = []token{
		{"---", DenselyDashed},
		{"--", Dashed},
		{"-", Solid},
		{":", DenselyDotted},
	}
)

// Parse extracts color, marker and line style from code.
func Parse(code string) Style {
	var s Style
	for _, c := range colorCodes {
		if strings.Contains(code, c.code) {
			s.Color = c.value
			break
		}
	}
	s.Marker = first(code, markerCodes)
	s.LineStyle = first(code, lineCodes)
	return s
}

// Merge fills the zero fields of s with the values of inferred.
func (s Style) Merge(inferred Style) Style {
	if s.Color == nil {
		s.Color = inferred.Color
	}
	if s.Marker == "" {
		s.Marker = inferred.Marker
	}
	if s.LineStyle == "" {
		s.LineStyle = inferred.LineStyle
	}
	return s
}

// EffectiveLineStyle is the line style a plot is drawn with: a marker
// without a line style means no connecting line.
func (s Style) EffectiveLineStyle() string {
	if s.LineStyle != "" {
		return s.LineStyle
	}
	if HasMarker(s.Marker) {
		return OnlyMarks
	}
	return ""
}

// HasMarker reports whether marker draws anything.
func HasMarker(marker string) bool {
	return marker != "" && marker != MarkerNone
}

// NormalizeMarker maps marker aliases to PGFPlots mark names.
func NormalizeMarker(marker string) string {
	if marker == "." {
		return MarkerDot
	}
	return marker
}

func first(code string, tokens []token) string {
	for _, t := range tokens {
		if strings.Contains(code, t.code) {
			return t.value
		}
	}
	return ""
}
