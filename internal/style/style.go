package style

import "github.com/jsvensson/viewstyle/internal/color"

// Style is a set of optional visual attributes for a widget. A nil field is
// absent: it inherits from a parent style, or leaves the widget untouched.
type Style struct {
	// Inherited names parent styles in a Table, applied in order before
	// the style's own attributes.
	Inherited []string `json:"inherited,omitempty" yaml:"inherited,omitempty"`

	Padding         *Padding       `json:"padding,omitempty" yaml:"padding,omitempty"`
	TextAlignment   *TextAlignment `json:"textAlignment,omitempty" yaml:"textAlignment,omitempty"`
	TextColor       *color.Color   `json:"textColor,omitempty" yaml:"textColor,omitempty"`
	FontSize        *float64       `json:"fontSize,omitempty" yaml:"fontSize,omitempty"`
	FontStyle       *FontStyle     `json:"fontStyle,omitempty" yaml:"fontStyle,omitempty"`
	FontTrait       *FontTrait     `json:"fontTrait,omitempty" yaml:"fontTrait,omitempty"`
	BackgroundColor *color.Color   `json:"backgroundColor,omitempty" yaml:"backgroundColor,omitempty"`
	CornerRadius    *float64       `json:"cornerRadius,omitempty" yaml:"cornerRadius,omitempty"`
	BorderWidth     *float64       `json:"borderWidth,omitempty" yaml:"borderWidth,omitempty"`
	BorderColor     *color.Color   `json:"borderColor,omitempty" yaml:"borderColor,omitempty"`
	IsHidden        *bool          `json:"isHidden,omitempty" yaml:"isHidden,omitempty"`
	ClipsToBounds   *bool          `json:"clipsToBounds,omitempty" yaml:"clipsToBounds,omitempty"`
	NumberOfLines   *int           `json:"numberOfLines,omitempty" yaml:"numberOfLines,omitempty"`
	ShadowColor     *color.Color   `json:"shadowColor,omitempty" yaml:"shadowColor,omitempty"`
	ShadowOpacity   *float64       `json:"shadowOpacity,omitempty" yaml:"shadowOpacity,omitempty"`
	ShadowOffset    *Point         `json:"shadowOffset,omitempty" yaml:"shadowOffset,omitempty"`
	ShadowRadius    *float64       `json:"shadowRadius,omitempty" yaml:"shadowRadius,omitempty"`
}

// Padding holds four independently optional edge offsets. An absent edge is
// left alone when the padding is applied to a widget.
type Padding struct {
	Left   *float64 `json:"left,omitempty" yaml:"left,omitempty"`
	Right  *float64 `json:"right,omitempty" yaml:"right,omitempty"`
	Top    *float64 `json:"top,omitempty" yaml:"top,omitempty"`
	Bottom *float64 `json:"bottom,omitempty" yaml:"bottom,omitempty"`
}

// UniformPadding sets all four edges to v.
func UniformPadding(v float64) Padding {
	return Padding{Left: Ptr(v), Right: Ptr(v), Top: Ptr(v), Bottom: Ptr(v)}
}

// SymmetricPadding sets left/right to horizontal and top/bottom to vertical.
func SymmetricPadding(horizontal, vertical float64) Padding {
	return Padding{Left: Ptr(horizontal), Right: Ptr(horizontal), Top: Ptr(vertical), Bottom: Ptr(vertical)}
}

func (p Padding) clone() Padding {
	return Padding{
		Left:   clone(p.Left),
		Right:  clone(p.Right),
		Top:    clone(p.Top),
		Bottom: clone(p.Bottom),
	}
}

// Point is a two-dimensional offset, used for shadow offsets.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Table maps style names to styles. It is the lookup used to resolve
// Inherited references.
type Table map[string]Style

// Ptr returns a pointer to v. It keeps style literals short:
//
//	style.Style{CornerRadius: style.Ptr(4.0)}
func Ptr[T any](v T) *T {
	return &v
}

func clone[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneColor(c *color.Color) *color.Color {
	if c == nil {
		return nil
	}
	out := *c
	out.Alpha = clone(c.Alpha)
	return &out
}
