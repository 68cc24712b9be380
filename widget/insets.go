package widget

import "github.com/jsvensson/viewstyle/internal/style"

// EdgeInsets are per-edge distances, in points.
type EdgeInsets struct {
	Top    float64 `yaml:"top"`
	Left   float64 `yaml:"left"`
	Bottom float64 `yaml:"bottom"`
	Right  float64 `yaml:"right"`
}

// UniformInsets returns insets of v on every edge.
func UniformInsets(v float64) EdgeInsets {
	return EdgeInsets{Top: v, Left: v, Bottom: v, Right: v}
}

// SymmetricInsets returns insets with equal left/right and top/bottom edges.
func SymmetricInsets(horizontal, vertical float64) EdgeInsets {
	return EdgeInsets{Top: vertical, Left: horizontal, Bottom: vertical, Right: horizontal}
}

// Apply overwrites each edge that is present in p and keeps the others.
func (e *EdgeInsets) Apply(p style.Padding) *EdgeInsets {
	if p.Left != nil {
		e.Left = *p.Left
	}
	if p.Right != nil {
		e.Right = *p.Right
	}
	if p.Top != nil {
		e.Top = *p.Top
	}
	if p.Bottom != nil {
		e.Bottom = *p.Bottom
	}
	return e
}

// Horizontal returns the sum of the left and right edges.
func (e EdgeInsets) Horizontal() float64 {
	return e.Left + e.Right
}

// Vertical returns the sum of the top and bottom edges.
func (e EdgeInsets) Vertical() float64 {
	return e.Top + e.Bottom
}
