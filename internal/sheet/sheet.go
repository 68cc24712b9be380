// Package sheet loads named style tables from style sheet files.
//
// Three formats are supported, picked by file extension: JSON and YAML
// documents with a top-level "styles" map, and HCL sheets (.hcl, .vstyle)
// with a palette block, style blocks and color functions.
package sheet

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jsvensson/viewstyle/internal/color"
	"github.com/jsvensson/viewstyle/internal/style"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("viewstyle.sheet")

var (
	// ErrStyleNotFound is returned when a sheet has no style with the requested name.
	ErrStyleNotFound = errors.New("style not found")

	// ErrUnsupportedFormat is returned for file extensions with no decoder.
	ErrUnsupportedFormat = errors.New("unsupported style sheet format")
)

// Sheet is a loaded style sheet.
type Sheet struct {
	// Palette holds the named colors of an HCL sheet. It is empty for JSON
	// and YAML sheets.
	Palette map[string]color.Color
	Styles  style.Table
	// Names lists the style names in source order for HCL sheets and in
	// sorted order otherwise.
	Names []string
}

func newSheet() *Sheet {
	return &Sheet{
		Palette: make(map[string]color.Color),
		Styles:  make(style.Table),
	}
}

// Load reads and parses a style sheet file.
func Load(path string) (*Sheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading style sheet: %w", err)
	}
	s, err := Parse(data, path)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a style sheet. The filename extension selects the format.
func Parse(data []byte, filename string) (*Sheet, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		return ParseJSON(data)
	case ".yaml", ".yml":
		return ParseYAML(data)
	case ".hcl", ".vstyle":
		s, _, diags := ParseHCL(data, filename)
		if diags.HasErrors() {
			return nil, fmt.Errorf("parsing HCL: %s", diags.Error())
		}
		return s, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(filename))
	}
}

// Lookup returns the named style as written, with its Inherited list.
func (s *Sheet) Lookup(name string) (style.Style, error) {
	st, ok := s.Styles[name]
	if !ok {
		return style.Style{}, fmt.Errorf("%w: %q", ErrStyleNotFound, name)
	}
	return st, nil
}

// Resolve returns the named style with its inheritance flattened against
// the sheet. Unknown parents are skipped.
func (s *Sheet) Resolve(name string) (style.Style, error) {
	st, err := s.Lookup(name)
	if err != nil {
		return style.Style{}, err
	}
	for _, parent := range st.Inherited {
		if _, ok := s.Styles[parent]; !ok {
			log.Debugf("style %q: skipping unknown parent %q", name, parent)
		}
	}
	return style.Flatten(st, s.Styles), nil
}

// ResolveAll resolves every style in the sheet.
func (s *Sheet) ResolveAll() style.Table {
	out := make(style.Table, len(s.Styles))
	for _, name := range s.Names {
		st, err := s.Resolve(name)
		if err != nil {
			continue
		}
		out[name] = st
	}
	return out
}
