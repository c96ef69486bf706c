package color

import "math"

// Brighten returns the color with its HSL lightness raised by percentage.
func Brighten(c Color, percentage float64) Color {
	h, s, l := toHSL(c)
	return fromHSL(h, s, math.Min(1.0, l+percentage))
}

// Darken returns the color with its HSL lightness lowered by percentage.
func Darken(c Color, percentage float64) Color {
	h, s, l := toHSL(c)
	return fromHSL(h, s, math.Max(0.0, l-percentage))
}

// Mix blends a and b in RGB space. w is the weight of b and is clamped to
// [0, 1]; channels are rounded to the nearest integer.
func Mix(a, b Color, w float64) Color {
	w = math.Max(0, math.Min(1, w))
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x)*(1-w) + float64(y)*w + 0.5)
	}
	return Color{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B)}
}

func toHSL(c Color) (h, s, l float64) {
	r, g, b := float64(c.R)/255.0, float64(c.G)/255.0, float64(c.B)/255.0

	lo := math.Min(math.Min(r, g), b)
	hi := math.Max(math.Max(r, g), b)
	l = (hi + lo) / 2.0

	if hi == lo {
		return 0, 0, l
	}

	d := hi - lo
	if l > 0.5 {
		s = d / (2.0 - hi - lo)
	} else {
		s = d / (hi + lo)
	}

	switch hi {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6.0
		}
		h /= 6.0
	case g:
		h = ((b-r)/d + 2.0) / 6.0
	default:
		h = ((r-g)/d + 4.0) / 6.0
	}
	return h, s, l
}

func fromHSL(h, s, l float64) Color {
	if s == 0 {
		v := uint8(l * 255)
		return Color{R: v, G: v, B: v}
	}

	var q float64
	if l < 0.5 {
		q = l * (1.0 + s)
	} else {
		q = l + s - l*s
	}
	p := 2.0*l - q

	return Color{
		R: uint8(hueToRGB(p, q, h+1.0/3.0) * 255),
		G: uint8(hueToRGB(p, q, h) * 255),
		B: uint8(hueToRGB(p, q, h-1.0/3.0) * 255),
	}
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t += 1.0
	}
	if t > 1 {
		t -= 1.0
	}
	switch {
	case t < 1.0/6.0:
		return p + (q-p)*6.0*t
	case t < 1.0/2.0:
		return q
	case t < 2.0/3.0:
		return p + (q-p)*(2.0/3.0-t)*6.0
	}
	return p
}
