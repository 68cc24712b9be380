package color

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrNotHex is returned when a string is not of the form "#RRGGBBAA".
	ErrNotHex = errors.New("not a hex color")

	// ErrUnrecognized is returned by ParseString when neither the hex form nor
	// any component token could be read from the input.
	ErrUnrecognized = errors.New("unrecognized color")
)

// Color represents an RGB color with an optional alpha channel.
// A nil Alpha means the alpha channel is absent; consumers treat it as opaque.
type Color struct {
	R, G, B uint8
	Alpha   *float64
}

// New returns an opaque color.
func New(r, g, b uint8) Color {
	return NewAlpha(r, g, b, 1)
}

// NewAlpha returns a color with the given alpha. The alpha value is stored
// as-is; use Opacity to read a clamped value.
func NewAlpha(r, g, b uint8, alpha float64) Color {
	return Color{R: r, G: g, B: b, Alpha: &alpha}
}

// ParseHex parses a hex color string like "#a82116ff" into a Color.
// The string must be a "#" followed by exactly eight hex digits.
func ParseHex(s string) (Color, error) {
	digits, ok := strings.CutPrefix(s, "#")
	if !ok {
		return Color{}, fmt.Errorf("%w: %q is missing the leading #", ErrNotHex, s)
	}
	if len(digits) != 8 {
		return Color{}, fmt.Errorf("%w: %q must have 8 hex digits", ErrNotHex, s)
	}
	n, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q: invalid hex digits", ErrNotHex, s)
	}
	return NewAlpha(
		uint8(n>>24),
		uint8(n>>16),
		uint8(n>>8),
		float64(uint8(n))/255,
	), nil
}

// ParseComponents parses a comma-separated component list such as
// "r:168,g:33,b:22,a:0.5". Parsing is best-effort: tokens that cannot be read
// are skipped and channels that were never set keep their defaults
// (black, opaque).
func ParseComponents(s string) Color {
	c, _ := parseComponents(s)
	return c
}

// ParseString parses either a hex color or a component list. Unlike
// ParseComponents it fails when no component token was recognized.
func ParseString(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		return ParseHex(s)
	}
	c, n := parseComponents(s)
	if n == 0 {
		return Color{}, fmt.Errorf("%w: %q", ErrUnrecognized, s)
	}
	return c, nil
}

func parseComponents(s string) (Color, int) {
	c := New(0, 0, 0)
	n := 0
	for _, token := range strings.Split(s, ",") {
		comp, ok := ParseComponent(strings.TrimSpace(token))
		if !ok {
			continue
		}
		c.Update(comp)
		n++
	}
	return c, n
}

// Opacity returns the alpha channel clamped to [0, 1]. An absent alpha is 1.
func (c Color) Opacity() float64 {
	if c.Alpha == nil || math.IsNaN(*c.Alpha) {
		return 1
	}
	return math.Max(0, math.Min(1, *c.Alpha))
}

// Equal reports whether two colors have the same channels. Absent alpha only
// equals absent alpha.
func (c Color) Equal(other Color) bool {
	if c.R != other.R || c.G != other.G || c.B != other.B {
		return false
	}
	if c.Alpha == nil || other.Alpha == nil {
		return c.Alpha == nil && other.Alpha == nil
	}
	return *c.Alpha == *other.Alpha
}

// alphaByte returns the alpha channel scaled to a byte.
func (c Color) alphaByte() uint8 {
	return uint8(math.Round(c.Opacity() * 255))
}

// Hex returns the color as "#rrggbbaa".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.alphaByte())
}

// HexRGB returns the color as "#rrggbb", dropping the alpha channel.
func (c Color) HexRGB() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// RGBA returns the color in rgba() function format, e.g. "rgba(168, 33, 22, 0.5)".
func (c Color) RGBA() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B,
		strconv.FormatFloat(c.Opacity(), 'f', -1, 64))
}

func (c Color) String() string {
	return c.Hex()
}
