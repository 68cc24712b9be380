package sheet

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/jsvensson/viewstyle/internal/style"
	"gopkg.in/yaml.v3"
)

// document is the JSON and YAML shape of a sheet.
type document struct {
	Styles map[string]style.Style `json:"styles" yaml:"styles"`
}

// ParseJSON decodes a JSON sheet. Unknown keys are rejected.
func ParseJSON(data []byte) (*Sheet, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var doc document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding JSON: %w", err)
	}
	return fromDocument(doc), nil
}

// ParseYAML decodes a YAML sheet. Unknown keys are rejected.
func ParseYAML(data []byte) (*Sheet, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding YAML: %w", err)
	}
	return fromDocument(doc), nil
}

func fromDocument(doc document) *Sheet {
	s := newSheet()
	for name, st := range doc.Styles {
		s.Styles[name] = st
		s.Names = append(s.Names, name)
	}
	sort.Strings(s.Names)
	return s
}

// MarshalJSON encodes the sheet's styles in the JSON sheet shape.
func (s *Sheet) MarshalJSON() ([]byte, error) {
	return json.Marshal(document{Styles: s.Styles})
}

// MarshalYAML encodes the sheet's styles in the YAML sheet shape.
func (s *Sheet) MarshalYAML() (any, error) {
	return document{Styles: s.Styles}, nil
}
