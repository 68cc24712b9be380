package style

// Attribute names one optional field of a Style. The names match the
// serialized keys.
type Attribute string

const (
	AttrPadding         Attribute = "padding"
	AttrTextAlignment   Attribute = "textAlignment"
	AttrTextColor       Attribute = "textColor"
	AttrFontSize        Attribute = "fontSize"
	AttrFontStyle       Attribute = "fontStyle"
	AttrFontTrait       Attribute = "fontTrait"
	AttrBackgroundColor Attribute = "backgroundColor"
	AttrCornerRadius    Attribute = "cornerRadius"
	AttrBorderWidth     Attribute = "borderWidth"
	AttrBorderColor     Attribute = "borderColor"
	AttrIsHidden        Attribute = "isHidden"
	AttrClipsToBounds   Attribute = "clipsToBounds"
	AttrNumberOfLines   Attribute = "numberOfLines"
	AttrShadowColor     Attribute = "shadowColor"
	AttrShadowOpacity   Attribute = "shadowOpacity"
	AttrShadowOffset    Attribute = "shadowOffset"
	AttrShadowRadius    Attribute = "shadowRadius"
)

// Attributes lists every Attribute in declaration order.
var Attributes = []Attribute{
	AttrPadding, AttrTextAlignment, AttrTextColor, AttrFontSize, AttrFontStyle,
	AttrFontTrait, AttrBackgroundColor, AttrCornerRadius, AttrBorderWidth,
	AttrBorderColor, AttrIsHidden, AttrClipsToBounds, AttrNumberOfLines,
	AttrShadowColor, AttrShadowOpacity, AttrShadowOffset, AttrShadowRadius,
}

// ColorAttributes are the attributes holding a color.Color.
var ColorAttributes = []Attribute{AttrTextColor, AttrBackgroundColor, AttrBorderColor, AttrShadowColor}

// Has reports whether the attribute is present. Unknown attributes are never present.
func (s Style) Has(a Attribute) bool {
	switch a {
	case AttrPadding:
		return s.Padding != nil
	case AttrTextAlignment:
		return s.TextAlignment != nil
	case AttrTextColor:
		return s.TextColor != nil
	case AttrFontSize:
		return s.FontSize != nil
	case AttrFontStyle:
		return s.FontStyle != nil
	case AttrFontTrait:
		return s.FontTrait != nil
	case AttrBackgroundColor:
		return s.BackgroundColor != nil
	case AttrCornerRadius:
		return s.CornerRadius != nil
	case AttrBorderWidth:
		return s.BorderWidth != nil
	case AttrBorderColor:
		return s.BorderColor != nil
	case AttrIsHidden:
		return s.IsHidden != nil
	case AttrClipsToBounds:
		return s.ClipsToBounds != nil
	case AttrNumberOfLines:
		return s.NumberOfLines != nil
	case AttrShadowColor:
		return s.ShadowColor != nil
	case AttrShadowOpacity:
		return s.ShadowOpacity != nil
	case AttrShadowOffset:
		return s.ShadowOffset != nil
	case AttrShadowRadius:
		return s.ShadowRadius != nil
	}
	return false
}

// Present returns the attributes set on s, in declaration order.
func (s Style) Present() []Attribute {
	var out []Attribute
	for _, a := range Attributes {
		if s.Has(a) {
			out = append(out, a)
		}
	}
	return out
}

// IsEmpty reports whether no attribute is set. Inherited is not an attribute.
func (s Style) IsEmpty() bool {
	return len(s.Present()) == 0
}

// IsKnownAttribute reports whether name is one of Attributes.
func IsKnownAttribute(name string) bool {
	for _, a := range Attributes {
		if string(a) == name {
			return true
		}
	}
	return false
}
