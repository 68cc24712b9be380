package color

import (
	"math"
	"strconv"
	"strings"
)

// Component is a single channel value parsed from a "key:value" token.
// It is one of Red, Green, Blue or Alpha.
type Component interface {
	component()
}

type (
	Red   uint8
	Green uint8
	Blue  uint8
	Alpha float64
)

func (Red) component()   {}
func (Green) component() {}
func (Blue) component()  {}
func (Alpha) component() {}

// ParseComponent parses a token such as "r:168" or "alpha:0.5".
// Keys may be abbreviated (r, g, b, a) or spelled out (red, green, blue, alpha).
// It reports false for anything it does not recognize.
func ParseComponent(token string) (Component, bool) {
	parts := strings.Split(token, ":")
	if len(parts) != 2 {
		return nil, false
	}
	key, value := parts[0], parts[1]

	switch key {
	case "r", "red", "g", "green", "b", "blue":
		n, err := strconv.ParseUint(value, 10, 8)
		if err != nil {
			return nil, false
		}
		switch key[0] {
		case 'r':
			return Red(n), true
		case 'g':
			return Green(n), true
		default:
			return Blue(n), true
		}
	case "a", "alpha":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, false
		}
		return Alpha(f), true
	}
	return nil, false
}

// Update overwrites the channel named by comp.
func (c *Color) Update(comp Component) {
	switch v := comp.(type) {
	case Red:
		c.R = uint8(v)
	case Green:
		c.G = uint8(v)
	case Blue:
		c.B = uint8(v)
	case Alpha:
		a := float64(v)
		c.Alpha = &a
	}
}
