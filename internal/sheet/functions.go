package sheet

import (
	"fmt"
	"math/big"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/jsvensson/viewstyle/internal/color"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
)

// FunctionNames lists the functions available in HCL sheets.
var FunctionNames = []string{"brighten", "darken", "mix", "rgba"}

// paletteToCty converts the palette to a cty object for the evaluation context.
func paletteToCty(palette map[string]color.Color) cty.Value {
	if len(palette) == 0 {
		return cty.EmptyObjectVal
	}

	// Sort keys for deterministic output
	keys := make([]string, 0, len(palette))
	for k := range palette {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	vals := make(map[string]cty.Value, len(keys))
	for _, k := range keys {
		vals[k] = cty.StringVal(palette[k].Text())
	}
	return cty.ObjectVal(vals)
}

// makeAdjustFunc creates an HCL function that shifts a color's lightness.
// Usage: brighten("#hex", 0.1) or darken(palette.brand, 0.1)
func makeAdjustFunc(description string, adjust func(color.Color, float64) color.Color) function.Function {
	return function.New(&function.Spec{
		Description: description,
		Params: []function.Parameter{
			{Name: "color", Type: cty.String},
			{Name: "percentage", Type: cty.Number},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			c, err := color.ParseString(args[0].AsString())
			if err != nil {
				return cty.NilVal, function.NewArgError(0, err)
			}
			pct, _ := args[1].AsBigFloat().Float64()
			return cty.StringVal(adjust(c, pct).Text()), nil
		},
	})
}

// makeMixFunc creates an HCL function that blends two colors.
// Usage: mix(palette.brand, "#ffffffff", 0.25)
func makeMixFunc() function.Function {
	return function.New(&function.Spec{
		Description: "Blends the first color towards the second by the given amount (0.0 to 1.0)",
		Params: []function.Parameter{
			{Name: "a", Type: cty.String},
			{Name: "b", Type: cty.String},
			{Name: "amount", Type: cty.Number},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			a, err := color.ParseString(args[0].AsString())
			if err != nil {
				return cty.NilVal, function.NewArgError(0, err)
			}
			b, err := color.ParseString(args[1].AsString())
			if err != nil {
				return cty.NilVal, function.NewArgError(1, err)
			}
			t, _ := args[2].AsBigFloat().Float64()
			return cty.StringVal(color.Mix(a, b, t).Text()), nil
		},
	})
}

// makeRGBAFunc creates an HCL function that builds a color from channels.
// Usage: rgba(168, 33, 22, 0.5)
func makeRGBAFunc() function.Function {
	return function.New(&function.Spec{
		Description: "Builds a color from red, green, blue (0 to 255) and alpha (0.0 to 1.0)",
		Params: []function.Parameter{
			{Name: "red", Type: cty.Number},
			{Name: "green", Type: cty.Number},
			{Name: "blue", Type: cty.Number},
			{Name: "alpha", Type: cty.Number},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			var ch [3]uint8
			for i := range ch {
				v, err := channel(args[i].AsBigFloat())
				if err != nil {
					return cty.NilVal, function.NewArgError(i, err)
				}
				ch[i] = v
			}
			a, _ := args[3].AsBigFloat().Float64()
			return cty.StringVal(color.NewAlpha(ch[0], ch[1], ch[2], a).Text()), nil
		},
	})
}

func channel(f *big.Float) (uint8, error) {
	if !f.IsInt() {
		return 0, fmt.Errorf("channel must be a whole number")
	}
	n, _ := f.Int64()
	if n < 0 || n > 255 {
		return 0, fmt.Errorf("channel %d out of range 0-255", n)
	}
	return uint8(n), nil
}

// buildEvalContext creates an HCL evaluation context with palette variables
// and the color functions.
func buildEvalContext(palette map[string]color.Color) *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"palette": paletteToCty(palette),
		},
		Functions: map[string]function.Function{
			"brighten": makeAdjustFunc("Brightens a color by the given percentage (0.0 to 1.0)", color.Brighten),
			"darken":   makeAdjustFunc("Darkens a color by the given percentage (0.0 to 1.0)", color.Darken),
			"mix":      makeMixFunc(),
			"rgba":     makeRGBAFunc(),
		},
	}
}
