package widget

import "github.com/jsvensson/viewstyle/internal/style"

// Font describes a widget's text font. Trait is empty for the regular face.
type Font struct {
	Style style.FontStyle `yaml:"style"`
	Trait style.FontTrait `yaml:"trait,omitempty"`
	Size  float64         `yaml:"size"`
}

// preferredSizes are the default point sizes of each text style.
var preferredSizes = map[style.FontStyle]float64{
	style.FontLargeTitle:  34,
	style.FontTitle1:      28,
	style.FontTitle2:      22,
	style.FontTitle3:      20,
	style.FontHeadline:    17,
	style.FontSubheadline: 15,
	style.FontBody:        17,
	style.FontCallout:     16,
	style.FontFootnote:    13,
	style.FontCaption1:    12,
	style.FontCaption2:    11,
}

// PreferredSize returns the default point size of a text style.
func PreferredSize(fs style.FontStyle) float64 {
	if size, ok := preferredSizes[fs]; ok {
		return size
	}
	return preferredSizes[style.FontBody]
}

// PreferredFont returns the regular font of a text style at its default size.
// Headlines are bold.
func PreferredFont(fs style.FontStyle) Font {
	f := Font{Style: fs, Size: PreferredSize(fs)}
	if fs == style.FontHeadline {
		f.Trait = style.TraitBold
	}
	return f
}

// DefaultFont is the body font.
func DefaultFont() Font {
	return PreferredFont(style.FontBody)
}

// WithStyle replaces the font with the preferred font of fs. Trait and size
// are reset.
func (f Font) WithStyle(fs style.FontStyle) Font {
	return PreferredFont(fs)
}

// WithTrait keeps the style and size and changes the trait.
func (f Font) WithTrait(t style.FontTrait) Font {
	f.Trait = t
	return f
}

// WithSize keeps the style and trait and changes the size.
func (f Font) WithSize(size float64) Font {
	f.Size = size
	return f
}

// applyFont applies the font attributes of s in order: style, trait, size.
func applyFont(f Font, s style.Style) Font {
	if s.FontStyle != nil {
		f = f.WithStyle(*s.FontStyle)
	}
	if s.FontTrait != nil {
		f = f.WithTrait(*s.FontTrait)
	}
	if s.FontSize != nil {
		f = f.WithSize(*s.FontSize)
	}
	return f
}
