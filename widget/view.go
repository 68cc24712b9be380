// Package widget holds toolkit-agnostic widget models that a resolved
// style.Style can be applied to.
//
// Each widget has chained setters that mutate it and return it, and an Apply
// method that calls the matching setter for every attribute present in the
// style. Absent attributes leave the widget untouched. A widget must only be
// used from the goroutine that owns it.
package widget

import (
	"github.com/jsvensson/viewstyle/internal/color"
	"github.com/jsvensson/viewstyle/internal/style"
)

var (
	// Clear is fully transparent black.
	Clear = color.NewAlpha(0, 0, 0, 0)
	// Black is opaque black.
	Black = color.New(0, 0, 0)
)

// Layer holds the drawing properties of a view's backing layer.
type Layer struct {
	CornerRadius  float64     `yaml:"cornerRadius"`
	BorderWidth   float64     `yaml:"borderWidth"`
	BorderColor   color.Color `yaml:"borderColor"`
	ShadowColor   color.Color `yaml:"shadowColor"`
	ShadowOpacity float64     `yaml:"shadowOpacity"`
	ShadowOffset  style.Point `yaml:"shadowOffset"`
	ShadowRadius  float64     `yaml:"shadowRadius"`
}

// View is the base widget. Every other widget embeds it.
type View struct {
	BackgroundColor color.Color `yaml:"backgroundColor"`
	Hidden          bool        `yaml:"hidden"`
	ClipsToBounds   bool        `yaml:"clipsToBounds"`
	Layer           Layer       `yaml:"layer"`
}

// NewView returns a view with the platform defaults: clear background, no
// border, an invisible shadow.
func NewView() *View {
	v := &View{}
	v.init()
	return v
}

func (v *View) init() {
	v.BackgroundColor = Clear
	v.Layer = Layer{
		BorderColor:  Black,
		ShadowColor:  Black,
		ShadowOffset: style.Point{X: 0, Y: -3},
		ShadowRadius: 3,
	}
}

// Apply sets every view attribute present in s.
func (v *View) Apply(s style.Style) *View {
	if s.BackgroundColor != nil {
		v.Background(*s.BackgroundColor)
	}
	if s.CornerRadius != nil {
		v.CornerRadius(*s.CornerRadius)
	}
	if s.BorderWidth != nil {
		v.BorderWidth(*s.BorderWidth)
	}
	if s.BorderColor != nil {
		v.BorderColor(*s.BorderColor)
	}
	// isHidden = false never shows a hidden view.
	if s.IsHidden != nil && *s.IsHidden {
		v.Hide()
	}
	if s.ClipsToBounds != nil {
		v.SetClipsToBounds(*s.ClipsToBounds)
	}
	if s.ShadowColor != nil {
		v.ShadowColor(*s.ShadowColor)
	}
	if s.ShadowOpacity != nil {
		v.ShadowOpacity(*s.ShadowOpacity)
	}
	if s.ShadowOffset != nil {
		v.ShadowOffset(*s.ShadowOffset)
	}
	if s.ShadowRadius != nil {
		v.ShadowRadius(*s.ShadowRadius)
	}
	return v
}

func (v *View) Background(c color.Color) *View {
	v.BackgroundColor = c
	return v
}

func (v *View) CornerRadius(r float64) *View {
	v.Layer.CornerRadius = r
	return v
}

// CornerRadiusFromSize rounds a square view of the given size into a circle.
func (v *View) CornerRadiusFromSize(size float64) *View {
	v.Layer.CornerRadius = size / 2
	return v
}

func (v *View) BorderWidth(w float64) *View {
	v.Layer.BorderWidth = w
	return v
}

func (v *View) BorderColor(c color.Color) *View {
	v.Layer.BorderColor = c
	return v
}

// Border sets the border width and color together.
func (v *View) Border(w float64, c color.Color) *View {
	v.Layer.BorderWidth = w
	v.Layer.BorderColor = c
	return v
}

func (v *View) Hide() *View {
	v.Hidden = true
	return v
}

func (v *View) Show() *View {
	v.Hidden = false
	return v
}

func (v *View) SetClipsToBounds(clips bool) *View {
	v.ClipsToBounds = clips
	return v
}

func (v *View) ShadowColor(c color.Color) *View {
	v.Layer.ShadowColor = c
	return v
}

func (v *View) ShadowOpacity(o float64) *View {
	v.Layer.ShadowOpacity = o
	return v
}

func (v *View) ShadowOffset(p style.Point) *View {
	v.Layer.ShadowOffset = p
	return v
}

func (v *View) ShadowRadius(r float64) *View {
	v.Layer.ShadowRadius = r
	return v
}
