package widget

import (
	"github.com/jsvensson/viewstyle/internal/color"
	"github.com/jsvensson/viewstyle/internal/style"
)

// Button is a tappable view with a title.
type Button struct {
	View          `yaml:",inline"`
	Title         string      `yaml:"title"`
	TitleColor    color.Color `yaml:"titleColor"`
	Font          Font        `yaml:"font"`
	ContentInsets EdgeInsets  `yaml:"contentInsets"`
}

// NewButton returns a button with the default title color and body font.
func NewButton(title string) *Button {
	b := &Button{Title: title, TitleColor: color.New(0, 122, 255), Font: DefaultFont()}
	b.init()
	return b
}

// Apply sets the view attributes, then the content insets, the title color
// and the font from s.
func (b *Button) Apply(s style.Style) *Button {
	b.View.Apply(s)
	if s.Padding != nil {
		b.Padding(*s.Padding)
	}
	if s.TextColor != nil {
		b.TextColor(*s.TextColor)
	}
	b.Font = applyFont(b.Font, s)
	return b
}

// Padding overwrites the content inset edges present in p.
func (b *Button) Padding(p style.Padding) *Button {
	b.ContentInsets.Apply(p)
	return b
}

// UniformPadding sets every content inset to v.
func (b *Button) UniformPadding(v float64) *Button {
	b.ContentInsets = UniformInsets(v)
	return b
}

// SymmetricPadding sets the horizontal and vertical content insets.
func (b *Button) SymmetricPadding(horizontal, vertical float64) *Button {
	b.ContentInsets = SymmetricInsets(horizontal, vertical)
	return b
}

func (b *Button) Text(title string) *Button {
	b.Title = title
	return b
}

func (b *Button) TextColor(c color.Color) *Button {
	b.TitleColor = c
	return b
}

func (b *Button) FontStyle(fs style.FontStyle) *Button {
	b.Font = b.Font.WithStyle(fs)
	return b
}

func (b *Button) FontTrait(t style.FontTrait) *Button {
	b.Font = b.Font.WithTrait(t)
	return b
}

func (b *Button) FontSize(size float64) *Button {
	b.Font = b.Font.WithSize(size)
	return b
}
