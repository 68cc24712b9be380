package color

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

func (c Color) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// withChannels returns a copy of c with its RGB channels taken from cf.
// The alpha channel is kept.
func (c Color) withChannels(cf colorful.Color) Color {
	r, g, b := cf.Clamped().RGB255()
	out := Color{R: r, G: g, B: b}
	if c.Alpha != nil {
		a := *c.Alpha
		out.Alpha = &a
	}
	return out
}

// Brighten returns a brighter version of the given color by raising its HSL
// lightness by percentage (0.0 to 1.0).
func Brighten(c Color, percentage float64) Color {
	h, s, l := c.colorful().Hsl()
	l = math.Min(1.0, l+percentage)
	return c.withChannels(colorful.Hsl(h, s, l))
}

// Darken returns a darker version of the given color by lowering its HSL
// lightness by percentage (0.0 to 1.0).
func Darken(c Color, percentage float64) Color {
	h, s, l := c.colorful().Hsl()
	l = math.Max(0.0, l-percentage)
	return c.withChannels(colorful.Hsl(h, s, l))
}

// Mix blends a towards b in Lab space. t=0 returns a's channels, t=1 b's.
// The alpha channel of a is kept.
func Mix(a, b Color, t float64) Color {
	t = math.Max(0, math.Min(1, t))
	return a.withChannels(a.colorful().BlendLab(b.colorful(), t))
}
