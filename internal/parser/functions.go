package parser

import (
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/jsvensson/pgfplot/internal/color"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
)

// ParseColor accepts the canonical {rgb:...} form or #rrggbb.
func ParseColor(s string) (color.Color, error) {
	if strings.HasPrefix(s, "#") {
		return color.ParseHex(s)
	}
	return color.Parse(s)
}

func channel(v cty.Value) (int, error) {
	bf := v.AsBigFloat()
	if !bf.IsInt() {
		return 0, fmt.Errorf("%s is not an integer: %w", bf.Text('g', -1), color.ErrChannel)
	}
	i, _ := bf.Int64()
	return int(i), nil
}

// makeRGBFunc creates an HCL function that builds a color from channels.
// Usage: rgb(10, 80, 230)
func makeRGBFunc() function.Function {
	return function.New(&function.Spec{
		Description: "Builds a color from red, green and blue channels (0 to 255)",
		Params: []function.Parameter{
			{Name: "red", Type: cty.Number},
			{Name: "green", Type: cty.Number},
			{Name: "blue", Type: cty.Number},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			var ch [3]int
			for i, a := range args {
				v, err := channel(a)
				if err != nil {
					return cty.NilVal, function.NewArgError(i, err)
				}
				ch[i] = v
			}
			c, err := color.New(ch[0], ch[1], ch[2])
			if err != nil {
				return cty.NilVal, err
			}
			return cty.StringVal(c.String()), nil
		},
	})
}

// makeHexFunc creates an HCL function that converts #rrggbb to a color.
// Usage: hex("#0a50e6")
func makeHexFunc() function.Function {
	return function.New(&function.Spec{
		Description: "Converts a #rrggbb string to a color",
		Params: []function.Parameter{
			{Name: "hex", Type: cty.String},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			c, err := color.ParseHex(args[0].AsString())
			if err != nil {
				return cty.NilVal, err
			}
			return cty.StringVal(c.String()), nil
		},
	})
}

// makeShadeFunc creates brighten and darken.
// Usage: brighten(palette.accent, 0.1) or darken("#0a50e6", 0.2)
func makeShadeFunc(description string, shade func(color.Color, float64) color.Color) function.Function {
	return function.New(&function.Spec{
		Description: description,
		Params: []function.Parameter{
			{Name: "color", Type: cty.String},
			{Name: "percentage", Type: cty.Number},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			c, err := ParseColor(args[0].AsString())
			if err != nil {
				return cty.NilVal, err
			}
			pct, _ := args[1].AsBigFloat().Float64()
			return cty.StringVal(shade(c, pct).String()), nil
		},
	})
}

// makeMixFunc creates an HCL function that blends two colors.
// Usage: mix(palette.a, palette.b, 0.25)
func makeMixFunc() function.Function {
	return function.New(&function.Spec{
		Description: "Blends two colors; weight 0 gives the first, 1 the second",
		Params: []function.Parameter{
			{Name: "a", Type: cty.String},
			{Name: "b", Type: cty.String},
			{Name: "weight", Type: cty.Number},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			a, err := ParseColor(args[0].AsString())
			if err != nil {
				return cty.NilVal, function.NewArgError(0, err)
			}
			b, err := ParseColor(args[1].AsString())
			if err != nil {
				return cty.NilVal, function.NewArgError(1, err)
			}
			w, _ := args[2].AsBigFloat().Float64()
			return cty.StringVal(color.Mix(a, b, w).String()), nil
		},
	})
}

// Functions returns the functions available in figure scripts.
func Functions() map[string]function.Function {
	return map[string]function.Function{
		"rgb":      makeRGBFunc(),
		"hex":      makeHexFunc(),
		"brighten": makeShadeFunc("Brightens a color by the given percentage (-1.0 to 1.0)", color.Brighten),
		"darken":   makeShadeFunc("Darkens a color by the given percentage (0.0 to 1.0)", color.Darken),
		"mix":      makeMixFunc(),
	}
}

// EvalContext exposes the palette as palette.<name> next to the
// color functions.
func EvalContext(palette map[string]color.Color) *hcl.EvalContext {
	vals := make(map[string]cty.Value, len(palette))
	for name, c := range palette {
		vals[name] = cty.StringVal(c.String())
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"palette": cty.ObjectVal(vals),
		},
		Functions: Functions(),
	}
}
