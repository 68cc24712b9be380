// Package viewstyle is a declarative styling layer for UI widgets.
//
// A Style is a set of optional attributes. Styles merge attribute by
// attribute with Combine, and inherit from named parents in a Table with
// Resolve. Sheets of named styles are loaded from JSON, YAML or HCL files.
package viewstyle

import (
	"fmt"

	"github.com/jsvensson/viewstyle/internal/color"
	"github.com/jsvensson/viewstyle/internal/engine"
	"github.com/jsvensson/viewstyle/internal/sheet"
	"github.com/jsvensson/viewstyle/internal/style"
)

type (
	// Color is an RGB color with an optional alpha channel.
	Color = color.Color
	// Component is one channel parsed from a "key:value" token.
	Component = color.Component
	// Style is a set of optional visual attributes for a widget.
	Style         = style.Style
	Padding       = style.Padding
	Point         = style.Point
	Table         = style.Table
	Attribute     = style.Attribute
	TextAlignment = style.TextAlignment
	FontStyle     = style.FontStyle
	FontTrait     = style.FontTrait
	// Sheet is a loaded style sheet: named styles and an optional palette.
	Sheet = sheet.Sheet
	Issue = sheet.Issue
	// Engine renders a sheet through Go templates.
	Engine = engine.Engine
)

var (
	ErrNotHex            = color.ErrNotHex
	ErrUnrecognized      = color.ErrUnrecognized
	ErrStyleNotFound     = sheet.ErrStyleNotFound
	ErrUnsupportedFormat = sheet.ErrUnsupportedFormat
)

// Load reads a style sheet file. The extension selects the format: .json,
// .yaml/.yml, or .hcl/.vstyle.
func Load(path string) (*Sheet, error) {
	s, err := sheet.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading style sheet: %w", err)
	}
	return s, nil
}

// Combine merges two styles; present attributes of override win.
func Combine(base, override Style) Style {
	return style.Combine(base, override)
}

// Merge folds styles left to right with Combine.
func Merge(styles ...Style) Style {
	return style.Merge(styles...)
}

// Resolve flattens one level of inheritance against table. It reports false
// when s inherits nothing or table is nil.
func Resolve(s Style, table Table) (Style, bool) {
	return style.Resolve(s, table)
}

// Flatten is Resolve without the report: a style with nothing to resolve is
// returned without its Inherited list.
func Flatten(s Style, table Table) Style {
	return style.Flatten(s, table)
}

// New returns an opaque color.
func New(r, g, b uint8) Color {
	return color.New(r, g, b)
}

func NewAlpha(r, g, b uint8, alpha float64) Color {
	return color.NewAlpha(r, g, b, alpha)
}

func ParseHex(s string) (Color, error) {
	return color.ParseHex(s)
}

func ParseComponents(s string) Color {
	return color.ParseComponents(s)
}

// ParseComponent parses a single token such as "r:168" or "alpha:0.5".
func ParseComponent(token string) (Component, bool) {
	return color.ParseComponent(token)
}

func ParseString(s string) (Color, error) {
	return color.ParseString(s)
}

// Ptr returns a pointer to v, for building Style literals.
func Ptr[T any](v T) *T {
	return style.Ptr(v)
}
