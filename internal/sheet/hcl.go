package sheet

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/jsvensson/viewstyle/internal/color"
	"github.com/jsvensson/viewstyle/internal/style"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// Index records where things are in an HCL sheet's source.
type Index struct {
	// Styles maps style names to the range of their label.
	Styles map[string]hcl.Range
	// Blocks maps style names to the range of their whole block.
	Blocks map[string]hcl.Range
	// Palette maps palette entry names to their attribute range.
	Palette map[string]hcl.Range
	Colors  []ColorLocation
	Refs    []Reference
}

// ColorLocation records a resolved color at a source range.
type ColorLocation struct {
	Range hcl.Range
	Color color.Color
	IsRef bool // true if the value is computed (palette reference or function call)
}

// Reference is a parent name inside a style's inherited list.
type Reference struct {
	Style string
	Name  string
	Range hcl.Range
}

func newIndex() *Index {
	return &Index{
		Styles:  make(map[string]hcl.Range),
		Blocks:  make(map[string]hcl.Range),
		Palette: make(map[string]hcl.Range),
	}
}

var (
	numberAttrs = map[style.Attribute]bool{
		style.AttrFontSize:      true,
		style.AttrCornerRadius:  true,
		style.AttrBorderWidth:   true,
		style.AttrShadowOpacity: true,
		style.AttrShadowRadius:  true,
	}
	boolAttrs = map[style.Attribute]bool{
		style.AttrIsHidden:      true,
		style.AttrClipsToBounds: true,
	}
)

// ParseHCL parses an HCL sheet. It keeps going after errors so that every
// problem is reported; the returned sheet holds whatever decoded cleanly.
func ParseHCL(src []byte, filename string) (*Sheet, *Index, hcl.Diagnostics) {
	s := newSheet()
	idx := newIndex()

	file, diags := hclsyntax.ParseConfig(src, filename, hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return s, idx, diags
	}
	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return s, idx, diags.Append(&hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "internal error: parsed body is not *hclsyntax.Body",
		})
	}

	for _, attr := range sortedAttributes(body) {
		diags = diags.Append(&hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Unexpected attribute",
			Detail:   fmt.Sprintf("%q is not allowed at the top level; use a palette or style block", attr.Name),
			Subject:  attr.NameRange.Ptr(),
		})
	}

	// Palette first: styles reference it.
	for _, block := range body.Blocks {
		if block.Type == "palette" {
			diags = append(diags, parsePalette(block, s, idx)...)
		}
	}

	ctx := buildEvalContext(s.Palette)
	for _, block := range body.Blocks {
		switch block.Type {
		case "palette":
		case "style":
			diags = append(diags, parseStyleBlock(block, ctx, s, idx)...)
		default:
			diags = diags.Append(&hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Unsupported block type",
				Detail:   fmt.Sprintf("block %q is not supported (valid: palette, style)", block.Type),
				Subject:  block.TypeRange.Ptr(),
			})
		}
	}

	return s, idx, diags
}

// sortedAttributes returns the body's attributes in source order.
func sortedAttributes(body *hclsyntax.Body) []*hclsyntax.Attribute {
	attrs := make([]*hclsyntax.Attribute, 0, len(body.Attributes))
	for _, attr := range body.Attributes {
		attrs = append(attrs, attr)
	}
	sort.Slice(attrs, func(i, j int) bool {
		return attrs[i].SrcRange.Start.Byte < attrs[j].SrcRange.Start.Byte
	})
	return attrs
}

// parsePalette evaluates palette entries in source order, so later entries
// can reference earlier ones.
func parsePalette(block *hclsyntax.Block, s *Sheet, idx *Index) hcl.Diagnostics {
	var diags hcl.Diagnostics
	for _, inner := range block.Body.Blocks {
		diags = diags.Append(&hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Unexpected block",
			Detail:   fmt.Sprintf("palette entries are attributes; found block %q", inner.Type),
			Subject:  inner.TypeRange.Ptr(),
		})
	}

	for _, attr := range sortedAttributes(block.Body) {
		ctx := buildEvalContext(s.Palette)
		c, d := evalColor(attr, ctx)
		diags = append(diags, d...)
		if d.HasErrors() {
			continue
		}
		s.Palette[attr.Name] = c
		idx.Palette[attr.Name] = attr.SrcRange
		idx.Colors = append(idx.Colors, ColorLocation{Range: attr.Expr.Range(), Color: c, IsRef: isComputed(attr.Expr)})
	}
	return diags
}

func parseStyleBlock(block *hclsyntax.Block, ctx *hcl.EvalContext, s *Sheet, idx *Index) hcl.Diagnostics {
	var diags hcl.Diagnostics
	if len(block.Labels) != 1 {
		return diags.Append(&hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Missing style name",
			Detail:   `a style block takes exactly one label: style "name" { ... }`,
			Subject:  block.DefRange().Ptr(),
		})
	}
	name := block.Labels[0]
	if prev, dup := idx.Styles[name]; dup {
		return diags.Append(&hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Duplicate style",
			Detail:   fmt.Sprintf("style %q is already defined at %s", name, prev.String()),
			Subject:  block.LabelRanges[0].Ptr(),
		})
	}
	idx.Styles[name] = block.LabelRanges[0]
	idx.Blocks[name] = block.Range()

	st, d := decodeStyleBody(name, block.Body, ctx, idx)
	diags = append(diags, d...)

	s.Styles[name] = st
	s.Names = append(s.Names, name)
	return diags
}

// decodeStyleBody decodes the attributes and nested blocks of a style.
// Unknown attributes are errors, to catch typos.
func decodeStyleBody(name string, body *hclsyntax.Body, ctx *hcl.EvalContext, idx *Index) (style.Style, hcl.Diagnostics) {
	var st style.Style
	var diags hcl.Diagnostics

	for _, attr := range sortedAttributes(body) {
		if attr.Name == "inherited" {
			refs, d := evalInherited(name, attr, ctx)
			diags = append(diags, d...)
			for _, ref := range refs {
				st.Inherited = append(st.Inherited, ref.Name)
			}
			idx.Refs = append(idx.Refs, refs...)
			continue
		}
		diags = append(diags, decodeAttribute(&st, attr, ctx, idx)...)
	}

	// padding and shadowOffset may be set once, as an attribute or a block.
	seen := make(map[string]hcl.Range)
	for _, n := range []style.Attribute{style.AttrPadding, style.AttrShadowOffset} {
		if attr, ok := body.Attributes[string(n)]; ok {
			seen[attr.Name] = attr.NameRange
		}
	}

	for _, block := range body.Blocks {
		if prev, dup := seen[block.Type]; dup {
			diags = diags.Append(&hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Duplicate attribute",
				Detail:   fmt.Sprintf("%s is already set at %s", block.Type, prev.String()),
				Subject:  block.TypeRange.Ptr(),
			})
			continue
		}

		switch style.Attribute(block.Type) {
		case style.AttrPadding:
			p, d := decodePadding(block.Body, ctx)
			diags = append(diags, d...)
			st.Padding = &p
			seen[block.Type] = block.TypeRange
		case style.AttrShadowOffset:
			pt, d := decodePoint(block.Body, ctx)
			diags = append(diags, d...)
			st.ShadowOffset = &pt
			seen[block.Type] = block.TypeRange
		default:
			diags = diags.Append(&hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Unsupported block type",
				Detail:   fmt.Sprintf("block %q is not supported in a style (valid: padding, shadowOffset)", block.Type),
				Subject:  block.TypeRange.Ptr(),
			})
		}
	}
	return st, diags
}

func decodeAttribute(st *style.Style, attr *hclsyntax.Attribute, ctx *hcl.EvalContext, idx *Index) hcl.Diagnostics {
	a := style.Attribute(attr.Name)

	switch {
	case slices.Contains(style.ColorAttributes, a):
		c, diags := evalColor(attr, ctx)
		if diags.HasErrors() {
			return diags
		}
		idx.Colors = append(idx.Colors, ColorLocation{Range: attr.Expr.Range(), Color: c, IsRef: isComputed(attr.Expr)})
		switch a {
		case style.AttrTextColor:
			st.TextColor = &c
		case style.AttrBackgroundColor:
			st.BackgroundColor = &c
		case style.AttrBorderColor:
			st.BorderColor = &c
		case style.AttrShadowColor:
			st.ShadowColor = &c
		}
		return diags

	case numberAttrs[a]:
		f, diags := evalNumber(attr, ctx)
		if diags.HasErrors() {
			return diags
		}
		switch a {
		case style.AttrFontSize:
			st.FontSize = &f
		case style.AttrCornerRadius:
			st.CornerRadius = &f
		case style.AttrBorderWidth:
			st.BorderWidth = &f
		case style.AttrShadowOpacity:
			st.ShadowOpacity = &f
		case style.AttrShadowRadius:
			st.ShadowRadius = &f
		}
		return diags

	case boolAttrs[a]:
		val, diags := evalAs(attr, ctx, cty.Bool)
		if diags.HasErrors() {
			return diags
		}
		b := val.True()
		if a == style.AttrIsHidden {
			st.IsHidden = &b
		} else {
			st.ClipsToBounds = &b
		}
		return diags

	case a == style.AttrNumberOfLines:
		val, diags := evalAs(attr, ctx, cty.Number)
		if diags.HasErrors() {
			return diags
		}
		bf := val.AsBigFloat()
		if !bf.IsInt() {
			return diags.Append(attrError(attr, "numberOfLines must be a whole number"))
		}
		n, _ := bf.Int64()
		lines := int(n)
		st.NumberOfLines = &lines
		return diags

	case a == style.AttrPadding:
		// Shorthand: padding = 8 sets every edge.
		f, diags := evalNumber(attr, ctx)
		if diags.HasErrors() {
			return diags
		}
		p := style.UniformPadding(f)
		st.Padding = &p
		return diags

	case a == style.AttrTextAlignment || a == style.AttrFontStyle || a == style.AttrFontTrait:
		val, diags := evalAs(attr, ctx, cty.String)
		if diags.HasErrors() {
			return diags
		}
		switch a {
		case style.AttrTextAlignment:
			v, err := style.ParseTextAlignment(val.AsString())
			if err != nil {
				return diags.Append(attrError(attr, err.Error()))
			}
			st.TextAlignment = &v
		case style.AttrFontStyle:
			v, err := style.ParseFontStyle(val.AsString())
			if err != nil {
				return diags.Append(attrError(attr, err.Error()))
			}
			st.FontStyle = &v
		case style.AttrFontTrait:
			v, err := style.ParseFontTrait(val.AsString())
			if err != nil {
				return diags.Append(attrError(attr, err.Error()))
			}
			st.FontTrait = &v
		}
		return diags
	}

	valid := make([]string, 0, len(style.Attributes)+1)
	valid = append(valid, "inherited")
	for _, x := range style.Attributes {
		valid = append(valid, string(x))
	}
	return hcl.Diagnostics{{
		Severity: hcl.DiagError,
		Summary:  "Unknown attribute",
		Detail:   fmt.Sprintf("unknown attribute %q (valid: %s)", attr.Name, strings.Join(valid, ", ")),
		Subject:  attr.NameRange.Ptr(),
	}}
}

func decodePadding(body *hclsyntax.Body, ctx *hcl.EvalContext) (style.Padding, hcl.Diagnostics) {
	var p style.Padding
	var diags hcl.Diagnostics
	for _, attr := range sortedAttributes(body) {
		var dest **float64
		switch attr.Name {
		case "left":
			dest = &p.Left
		case "right":
			dest = &p.Right
		case "top":
			dest = &p.Top
		case "bottom":
			dest = &p.Bottom
		default:
			diags = diags.Append(&hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Unknown attribute",
				Detail:   fmt.Sprintf("unknown padding edge %q (valid: left, right, top, bottom)", attr.Name),
				Subject:  attr.NameRange.Ptr(),
			})
			continue
		}
		f, d := evalNumber(attr, ctx)
		diags = append(diags, d...)
		if !d.HasErrors() {
			*dest = &f
		}
	}
	diags = append(diags, noBlocks(body, "padding")...)
	return p, diags
}

func decodePoint(body *hclsyntax.Body, ctx *hcl.EvalContext) (style.Point, hcl.Diagnostics) {
	var pt style.Point
	var diags hcl.Diagnostics
	for _, attr := range sortedAttributes(body) {
		var dest *float64
		switch attr.Name {
		case "x":
			dest = &pt.X
		case "y":
			dest = &pt.Y
		default:
			diags = diags.Append(&hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Unknown attribute",
				Detail:   fmt.Sprintf("unknown offset attribute %q (valid: x, y)", attr.Name),
				Subject:  attr.NameRange.Ptr(),
			})
			continue
		}
		f, d := evalNumber(attr, ctx)
		diags = append(diags, d...)
		if !d.HasErrors() {
			*dest = f
		}
	}
	diags = append(diags, noBlocks(body, "shadowOffset")...)
	return pt, diags
}

func noBlocks(body *hclsyntax.Body, parent string) hcl.Diagnostics {
	var diags hcl.Diagnostics
	for _, block := range body.Blocks {
		diags = diags.Append(&hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Unexpected block",
			Detail:   fmt.Sprintf("%s does not take nested blocks; found %q", parent, block.Type),
			Subject:  block.TypeRange.Ptr(),
		})
	}
	return diags
}

// evalInherited evaluates an inherited list. Element ranges are recorded
// when the list is written as a literal tuple.
func evalInherited(styleName string, attr *hclsyntax.Attribute, ctx *hcl.EvalContext) ([]Reference, hcl.Diagnostics) {
	val, diags := evalAs(attr, ctx, cty.List(cty.String))
	if diags.HasErrors() {
		return nil, diags
	}

	var elemRanges []hcl.Range
	if tuple, ok := attr.Expr.(*hclsyntax.TupleConsExpr); ok {
		for _, e := range tuple.Exprs {
			elemRanges = append(elemRanges, e.Range())
		}
	}

	var refs []Reference
	for i, elem := range val.AsValueSlice() {
		if elem.IsNull() {
			diags = diags.Append(attrError(attr, "inherited names must not be null"))
			continue
		}
		rng := attr.Expr.Range()
		if i < len(elemRanges) {
			rng = elemRanges[i]
		}
		refs = append(refs, Reference{Style: styleName, Name: elem.AsString(), Range: rng})
	}
	return refs, diags
}

func evalColor(attr *hclsyntax.Attribute, ctx *hcl.EvalContext) (color.Color, hcl.Diagnostics) {
	val, diags := evalAs(attr, ctx, cty.String)
	if diags.HasErrors() {
		return color.Color{}, diags
	}
	c, err := color.ParseString(val.AsString())
	if err != nil {
		return color.Color{}, diags.Append(attrError(attr, err.Error()))
	}
	return c, diags
}

func evalNumber(attr *hclsyntax.Attribute, ctx *hcl.EvalContext) (float64, hcl.Diagnostics) {
	val, diags := evalAs(attr, ctx, cty.Number)
	if diags.HasErrors() {
		return 0, diags
	}
	f, _ := val.AsBigFloat().Float64()
	return f, diags
}

// evalAs evaluates an attribute and converts it to the wanted type.
func evalAs(attr *hclsyntax.Attribute, ctx *hcl.EvalContext, want cty.Type) (cty.Value, hcl.Diagnostics) {
	val, diags := attr.Expr.Value(ctx)
	if diags.HasErrors() {
		return cty.NilVal, diags
	}
	if val.IsNull() {
		return cty.NilVal, diags.Append(attrError(attr, "value must not be null"))
	}
	if !val.IsWhollyKnown() {
		return cty.NilVal, diags.Append(attrError(attr, "value is not known"))
	}
	converted, err := convert.Convert(val, want)
	if err != nil {
		return cty.NilVal, diags.Append(attrError(attr,
			fmt.Sprintf("expected %s: %s", want.FriendlyName(), err.Error())))
	}
	return converted, diags
}

func attrError(attr *hclsyntax.Attribute, detail string) *hcl.Diagnostic {
	return &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  fmt.Sprintf("Invalid value for %q", attr.Name),
		Detail:   detail,
		Subject:  attr.Expr.Range().Ptr(),
	}
}

// isComputed reports whether an expression is something other than a literal.
func isComputed(expr hclsyntax.Expression) bool {
	switch expr.(type) {
	case *hclsyntax.ScopeTraversalExpr, *hclsyntax.FunctionCallExpr, *hclsyntax.RelativeTraversalExpr:
		return true
	}
	return false
}
