package style

import (
	"fmt"
	"slices"
	"strings"
)

// TextAlignment is the horizontal alignment of a widget's text.
type TextAlignment string

const (
	AlignLeft      TextAlignment = "left"
	AlignCenter    TextAlignment = "center"
	AlignRight     TextAlignment = "right"
	AlignJustified TextAlignment = "justified"
	AlignNatural   TextAlignment = "natural"
)

// TextAlignments lists the valid TextAlignment values.
var TextAlignments = []TextAlignment{AlignLeft, AlignCenter, AlignRight, AlignJustified, AlignNatural}

// FontStyle is a semantic text style, scaled by the platform.
type FontStyle string

const (
	FontLargeTitle  FontStyle = "largeTitle"
	FontTitle1      FontStyle = "title1"
	FontTitle2      FontStyle = "title2"
	FontTitle3      FontStyle = "title3"
	FontHeadline    FontStyle = "headline"
	FontSubheadline FontStyle = "subheadline"
	FontBody        FontStyle = "body"
	FontCallout     FontStyle = "callout"
	FontFootnote    FontStyle = "footnote"
	FontCaption1    FontStyle = "caption1"
	FontCaption2    FontStyle = "caption2"
)

// FontStyles lists the valid FontStyle values.
var FontStyles = []FontStyle{
	FontLargeTitle, FontTitle1, FontTitle2, FontTitle3,
	FontHeadline, FontSubheadline, FontBody, FontCallout,
	FontFootnote, FontCaption1, FontCaption2,
}

// FontTrait is a symbolic font trait.
type FontTrait string

const (
	TraitBold       FontTrait = "bold"
	TraitItalic     FontTrait = "italic"
	TraitBoldItalic FontTrait = "boldItalic"
	TraitCondensed  FontTrait = "condensed"
	TraitExpanded   FontTrait = "expanded"
	TraitMonospace  FontTrait = "monospace"
)

// FontTraits lists the valid FontTrait values.
var FontTraits = []FontTrait{TraitBold, TraitItalic, TraitBoldItalic, TraitCondensed, TraitExpanded, TraitMonospace}

// IsBold reports whether the trait includes bold.
func (t FontTrait) IsBold() bool {
	return t == TraitBold || t == TraitBoldItalic
}

// IsItalic reports whether the trait includes italic.
func (t FontTrait) IsItalic() bool {
	return t == TraitItalic || t == TraitBoldItalic
}

func parseEnum[T ~string](kind string, valid []T, text []byte) (T, error) {
	v := T(text)
	if !slices.Contains(valid, v) {
		names := make([]string, len(valid))
		for i, x := range valid {
			names[i] = string(x)
		}
		return "", fmt.Errorf("unknown %s %q (valid: %s)", kind, text, strings.Join(names, ", "))
	}
	return v, nil
}

// ParseTextAlignment parses a TextAlignment by name.
func ParseTextAlignment(s string) (TextAlignment, error) {
	return parseEnum("text alignment", TextAlignments, []byte(s))
}

// ParseFontStyle parses a FontStyle by name.
func ParseFontStyle(s string) (FontStyle, error) {
	return parseEnum("font style", FontStyles, []byte(s))
}

// ParseFontTrait parses a FontTrait by name.
func ParseFontTrait(s string) (FontTrait, error) {
	return parseEnum("font trait", FontTraits, []byte(s))
}

func (a *TextAlignment) UnmarshalText(text []byte) error {
	v, err := parseEnum("text alignment", TextAlignments, text)
	if err != nil {
		return err
	}
	*a = v
	return nil
}

func (s *FontStyle) UnmarshalText(text []byte) error {
	v, err := parseEnum("font style", FontStyles, text)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

func (t *FontTrait) UnmarshalText(text []byte) error {
	v, err := parseEnum("font trait", FontTraits, text)
	if err != nil {
		return err
	}
	*t = v
	return nil
}
