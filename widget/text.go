package widget

import (
	"github.com/jsvensson/viewstyle/internal/color"
	"github.com/jsvensson/viewstyle/internal/style"
)

const defaultTextInset = 8

// Editable holds what text fields and text views share.
type Editable struct {
	Text        string      `yaml:"text"`
	Placeholder string      `yaml:"placeholder"`
	TextColor   color.Color `yaml:"textColor"`
	CursorColor color.Color `yaml:"cursorColor"`
	// Insets pad the text inside the widget's bounds.
	Insets EdgeInsets `yaml:"insets"`
}

func newEditable() Editable {
	return Editable{
		TextColor:   Black,
		CursorColor: color.New(0, 122, 255),
		Insets:      UniformInsets(defaultTextInset),
	}
}

// TextField is a single-line editable text widget.
type TextField struct {
	View     `yaml:",inline"`
	Editable `yaml:",inline"`
}

// NewTextField returns a text field with 8 points of padding on every edge.
func NewTextField() *TextField {
	f := &TextField{Editable: newEditable()}
	f.init()
	return f
}

// Apply sets the padding first, then the view attributes and the text color
// from s.
func (f *TextField) Apply(s style.Style) *TextField {
	if s.Padding != nil {
		f.Padding(*s.Padding)
	}
	f.View.Apply(s)
	if s.TextColor != nil {
		f.SetTextColor(*s.TextColor)
	}
	return f
}

// Padding overwrites the inset edges present in p.
func (f *TextField) Padding(p style.Padding) *TextField {
	f.Insets.Apply(p)
	return f
}

// UniformPadding sets every inset to v.
func (f *TextField) UniformPadding(v float64) *TextField {
	f.Insets = UniformInsets(v)
	return f
}

// SymmetricPadding sets the horizontal and vertical insets.
func (f *TextField) SymmetricPadding(horizontal, vertical float64) *TextField {
	f.Insets = SymmetricInsets(horizontal, vertical)
	return f
}

func (f *TextField) SetText(text string) *TextField {
	f.Text = text
	return f
}

func (f *TextField) SetPlaceholder(text string) *TextField {
	f.Placeholder = text
	return f
}

func (f *TextField) SetTextColor(c color.Color) *TextField {
	f.TextColor = c
	return f
}

func (f *TextField) SetCursorColor(c color.Color) *TextField {
	f.CursorColor = c
	return f
}

// TextView is a multi-line editable text widget.
type TextView struct {
	View     `yaml:",inline"`
	Editable `yaml:",inline"`
}

// NewTextView returns a text view with 8 points of padding on every edge.
func NewTextView() *TextView {
	v := &TextView{Editable: newEditable()}
	v.init()
	return v
}

// Apply sets the view attributes, the text color and then the padding from s.
func (v *TextView) Apply(s style.Style) *TextView {
	v.View.Apply(s)
	if s.TextColor != nil {
		v.SetTextColor(*s.TextColor)
	}
	if s.Padding != nil {
		v.Padding(*s.Padding)
	}
	return v
}

// Padding overwrites the inset edges present in p.
func (v *TextView) Padding(p style.Padding) *TextView {
	v.Insets.Apply(p)
	return v
}

// UniformPadding sets every inset to n.
func (v *TextView) UniformPadding(n float64) *TextView {
	v.Insets = UniformInsets(n)
	return v
}

// SymmetricPadding sets the horizontal and vertical insets.
func (v *TextView) SymmetricPadding(horizontal, vertical float64) *TextView {
	v.Insets = SymmetricInsets(horizontal, vertical)
	return v
}

func (v *TextView) SetText(text string) *TextView {
	v.Text = text
	return v
}

func (v *TextView) SetPlaceholder(text string) *TextView {
	v.Placeholder = text
	return v
}

func (v *TextView) SetTextColor(c color.Color) *TextView {
	v.TextColor = c
	return v
}

func (v *TextView) SetCursorColor(c color.Color) *TextView {
	v.CursorColor = c
	return v
}
