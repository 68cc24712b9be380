package style

// Combine merges two styles attribute by attribute: each attribute of the
// result is taken from override when present there, and from base otherwise.
// Padding is treated as a single attribute, so a present override padding
// replaces the whole base padding.
//
// The result shares no memory with its operands and has no Inherited list.
func Combine(base, override Style) Style {
	var padding *Padding
	switch {
	case override.Padding != nil:
		p := override.Padding.clone()
		padding = &p
	case base.Padding != nil:
		p := base.Padding.clone()
		padding = &p
	}

	return Style{
		Padding:         padding,
		TextAlignment:   pick(base.TextAlignment, override.TextAlignment),
		TextColor:       cloneColor(pickPtr(base.TextColor, override.TextColor)),
		FontSize:        pick(base.FontSize, override.FontSize),
		FontStyle:       pick(base.FontStyle, override.FontStyle),
		FontTrait:       pick(base.FontTrait, override.FontTrait),
		BackgroundColor: cloneColor(pickPtr(base.BackgroundColor, override.BackgroundColor)),
		CornerRadius:    pick(base.CornerRadius, override.CornerRadius),
		BorderWidth:     pick(base.BorderWidth, override.BorderWidth),
		BorderColor:     cloneColor(pickPtr(base.BorderColor, override.BorderColor)),
		IsHidden:        pick(base.IsHidden, override.IsHidden),
		ClipsToBounds:   pick(base.ClipsToBounds, override.ClipsToBounds),
		NumberOfLines:   pick(base.NumberOfLines, override.NumberOfLines),
		ShadowColor:     cloneColor(pickPtr(base.ShadowColor, override.ShadowColor)),
		ShadowOpacity:   pick(base.ShadowOpacity, override.ShadowOpacity),
		ShadowOffset:    pick(base.ShadowOffset, override.ShadowOffset),
		ShadowRadius:    pick(base.ShadowRadius, override.ShadowRadius),
	}
}

// Merge folds styles left to right with Combine, starting from the empty
// style. The rightmost present value wins for every attribute.
func Merge(styles ...Style) Style {
	var out Style
	for _, s := range styles {
		out = Combine(out, s)
	}
	return out
}

// Resolve flattens a style's inheritance against table. The parents named in
// s.Inherited are combined in order, skipping names missing from table, and s
// itself is combined on top so its own attributes always win.
//
// Inheritance is one level deep: a parent's own Inherited list is not
// followed. Resolve reports false when s inherits nothing or table is nil.
func Resolve(s Style, table Table) (Style, bool) {
	if len(s.Inherited) == 0 || table == nil {
		return Style{}, false
	}
	var running Style
	for _, name := range s.Inherited {
		parent, ok := table[name]
		if !ok {
			continue
		}
		running = Combine(running, parent)
	}
	return Combine(running, s), true
}

// ResolveInPlace replaces s with its resolved form. It reports false, leaving
// s unchanged, when Resolve has no value.
func (s *Style) ResolveInPlace(table Table) bool {
	resolved, ok := Resolve(*s, table)
	if !ok {
		return false
	}
	*s = resolved
	return true
}

// Flatten returns the resolved style, or s without its Inherited list when
// there is nothing to resolve.
func Flatten(s Style, table Table) Style {
	if resolved, ok := Resolve(s, table); ok {
		return resolved
	}
	return Combine(Style{}, s)
}

func pickPtr[T any](base, override *T) *T {
	if override != nil {
		return override
	}
	return base
}

func pick[T any](base, override *T) *T {
	return clone(pickPtr(base, override))
}
