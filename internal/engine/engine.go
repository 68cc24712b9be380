// Package engine renders style sheets through Go templates, for generating
// platform code or documentation from a sheet.
package engine

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"text/template"

	"github.com/jsvensson/viewstyle/internal/color"
	"github.com/jsvensson/viewstyle/internal/sheet"
	"github.com/jsvensson/viewstyle/internal/style"
)

// Engine loads and executes Go templates against a resolved style sheet.
type Engine struct {
	TemplatesDir string
	OutputDir    string
	Targets      []string // if non-empty, only render these template basenames
}

// Run loads all .tmpl files from the templates directory, executes them
// with the sheet's resolved styles, and writes output files.
func (e *Engine) Run(s *sheet.Sheet) error {
	pattern := filepath.Join(e.TemplatesDir, "*.tmpl")
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return fmt.Errorf("globbing templates: %w", err)
	}
	if len(matches) == 0 {
		return fmt.Errorf("no .tmpl files found in %s", e.TemplatesDir)
	}

	if err := os.MkdirAll(e.OutputDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	data := buildTemplateData(s)

	for _, tmplPath := range matches {
		baseName := strings.TrimSuffix(filepath.Base(tmplPath), ".tmpl")

		if !e.shouldRender(baseName) {
			continue
		}

		if err := e.renderTemplate(tmplPath, baseName, data); err != nil {
			return err
		}
	}

	return nil
}

func (e *Engine) shouldRender(name string) bool {
	// If no targets are specified, render all.
	if len(e.Targets) == 0 {
		return true
	}

	return slices.Contains(e.Targets, name)
}

func (e *Engine) renderTemplate(tmplPath, outputName string, data templateData) error {
	tmpl, err := template.New(filepath.Base(tmplPath)).Funcs(data.FuncMap).ParseFiles(tmplPath)
	if err != nil {
		return fmt.Errorf("parsing template %s: %w", tmplPath, err)
	}

	outPath := filepath.Join(e.OutputDir, outputName)
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating output file %s: %w", outPath, err)
	}
	defer f.Close()

	if err := tmpl.Execute(f, data); err != nil {
		return fmt.Errorf("executing template %s: %w", tmplPath, err)
	}

	return nil
}

// templateData is the data passed to templates.
type templateData struct {
	// Names lists the styles in sheet order.
	Names   []string
	Palette map[string]color.Color
	// Styles holds every style with its inheritance flattened.
	Styles  style.Table
	FuncMap template.FuncMap
}

// resolveColorPath resolves a dot-notation path to a Color.
// Supports "palette.<name>" and "style.<name>.<colorAttribute>".
func resolveColorPath(path string, data templateData) (color.Color, error) {
	parts := strings.Split(path, ".")
	if len(parts) < 2 {
		return color.Color{}, fmt.Errorf("invalid path %q: must be block.name format", path)
	}

	switch parts[0] {
	case "palette":
		if len(parts) != 2 {
			return color.Color{}, fmt.Errorf("palette paths must be single-level: %s", path)
		}
		c, ok := data.Palette[parts[1]]
		if !ok {
			return color.Color{}, fmt.Errorf("palette color not found: %s", parts[1])
		}
		return c, nil

	case "style":
		if len(parts) != 3 {
			return color.Color{}, fmt.Errorf("style paths must be style.name.attribute: %s", path)
		}
		st, ok := data.Styles[parts[1]]
		if !ok {
			return color.Color{}, fmt.Errorf("style not found: %s", parts[1])
		}
		c := styleColor(st, style.Attribute(parts[2]))
		if c == nil {
			return color.Color{}, fmt.Errorf("style %s has no color %s", parts[1], parts[2])
		}
		return *c, nil

	default:
		return color.Color{}, fmt.Errorf("unknown block %q (valid: palette, style)", parts[0])
	}
}

// styleColor returns the color attribute a of st, or nil.
func styleColor(st style.Style, a style.Attribute) *color.Color {
	switch a {
	case style.AttrTextColor:
		return st.TextColor
	case style.AttrBackgroundColor:
		return st.BackgroundColor
	case style.AttrBorderColor:
		return st.BorderColor
	case style.AttrShadowColor:
		return st.ShadowColor
	}
	return nil
}

// toColor accepts a Color, a *Color or a path string.
func toColor(v any, data templateData) (color.Color, error) {
	switch c := v.(type) {
	case color.Color:
		return c, nil
	case *color.Color:
		if c == nil {
			return color.Color{}, fmt.Errorf("color is absent")
		}
		return *c, nil
	case string:
		return resolveColorPath(c, data)
	}
	return color.Color{}, fmt.Errorf("expected a color or a color path, got %T", v)
}

func buildTemplateData(s *sheet.Sheet) templateData {
	data := templateData{
		Names:   s.Names,
		Palette: s.Palette,
		Styles:  s.ResolveAll(),
	}

	colorFunc := func(format func(color.Color) string) func(any) (string, error) {
		return func(v any) (string, error) {
			c, err := toColor(v, data)
			if err != nil {
				return "", err
			}
			return format(c), nil
		}
	}

	data.FuncMap = template.FuncMap{
		"hex":    colorFunc(color.Color.Hex),
		"hexRGB": colorFunc(color.Color.HexRGB),
		"rgba":   colorFunc(color.Color.RGBA),
		"text":   colorFunc(color.Color.Text),
		"opacity": func(v any) (float64, error) {
			c, err := toColor(v, data)
			if err != nil {
				return 0, err
			}
			return c.Opacity(), nil
		},
		"style": func(name string) (style.Style, error) {
			st, ok := data.Styles[name]
			if !ok {
				return style.Style{}, fmt.Errorf("style not found: %s", name)
			}
			return st, nil
		},
		"has": func(st style.Style, attr string) bool {
			return st.Has(style.Attribute(attr))
		},
		"present": func(st style.Style) []style.Attribute {
			return st.Present()
		},
	}
	return data
}
