package lsp

import (
	"testing"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

const testURI = "file:///test.vstyle"

func TestDefinition_PaletteReference(t *testing.T) {
	result := Analyze("test.vstyle", validSheet)

	symRange, ok := result.Symbols["palette.ink"]
	if !ok {
		t.Fatal("expected palette.ink in symbol table")
	}

	// Line 7 is "  textColor = palette.ink"; the reference starts at 14.
	pos := protocol.Position{Line: 7, Character: 17}

	loc := definition(result, validSheet, testURI, pos)
	if loc == nil {
		t.Fatal("expected non-nil definition location for palette.ink reference")
	}
	if loc.URI != protocol.DocumentUri(testURI) {
		t.Errorf("URI = %q, want %q", loc.URI, testURI)
	}
	if loc.Range != symRange {
		t.Errorf("Range = %v, want %v", loc.Range, symRange)
	}
}

func TestDefinition_InsideFunctionCall(t *testing.T) {
	result := Analyze("test.vstyle", validSheet)

	// Line 3 is "  soft  = mix(palette.ink, palette.brand, 0.5)"; palette.brand starts at 27.
	loc := definition(result, validSheet, testURI, protocol.Position{Line: 3, Character: 30})
	if loc == nil {
		t.Fatal("expected definition for palette.brand")
	}
	if loc.Range != result.Symbols["palette.brand"] {
		t.Errorf("Range = %v, want %v", loc.Range, result.Symbols["palette.brand"])
	}
}

func TestDefinition_InheritedStyle(t *testing.T) {
	result := Analyze("test.vstyle", validSheet)

	// Line 12 is `  inherited       = ["base"]`.
	loc := definition(result, validSheet, testURI, protocol.Position{Line: 12, Character: 23})
	if loc == nil {
		t.Fatal("expected definition for inherited style")
	}
	if loc.Range != result.Symbols["style.base"] {
		t.Errorf("Range = %v, want %v", loc.Range, result.Symbols["style.base"])
	}
	if loc.Range.Start.Line != 6 {
		t.Errorf("definition on line %d, want 6", loc.Range.Start.Line)
	}
}

func TestDefinition_UnknownInheritedStyle(t *testing.T) {
	content := `style "a" {
  inherited = ["ghost"]
}
`
	result := Analyze("test.vstyle", content)

	if loc := definition(result, content, testURI, protocol.Position{Line: 1, Character: 17}); loc != nil {
		t.Errorf("expected nil for unknown style, got %v", loc)
	}
}

func TestDefinition_UndefinedPaletteEntry(t *testing.T) {
	content := `palette {
  ink = "#000000ff"
}

style "a" {
  textColor = palette.nope
}
`
	result := Analyze("test.vstyle", content)

	if loc := definition(result, content, testURI, protocol.Position{Line: 5, Character: 22}); loc != nil {
		t.Errorf("expected nil for undefined entry, got %v", loc)
	}
}

func TestDefinition_NotOnReference(t *testing.T) {
	result := Analyze("test.vstyle", validSheet)

	tests := []struct {
		name string
		pos  protocol.Position
	}{
		{"attribute name", protocol.Position{Line: 15, Character: 4}},
		{"number", protocol.Position{Line: 15, Character: 20}},
		{"blank line", protocol.Position{Line: 5, Character: 0}},
		{"past end", protocol.Position{Line: 100, Character: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if loc := definition(result, validSheet, testURI, tt.pos); loc != nil {
				t.Errorf("expected nil, got %v", loc)
			}
		})
	}
}

func TestDefinition_NilResult(t *testing.T) {
	if loc := definition(nil, validSheet, testURI, protocol.Position{Line: 7, Character: 17}); loc != nil {
		t.Errorf("expected nil, got %v", loc)
	}
}

func TestPaletteRefAtCursor(t *testing.T) {
	tests := []struct {
		line string
		char uint32
		want string
	}{
		{"  textColor = palette.ink", 14, "palette.ink"},
		{"  textColor = palette.ink", 24, "palette.ink"},
		{"  textColor = palette.ink", 4, ""},
		{"  a = mix(palette.x, palette.y, 0.5)", 12, "palette.x"},
		{"  a = mix(palette.x, palette.y, 0.5)", 22, "palette.y"},
		{"  a = palette.", 10, ""},
		{"  a = other.ink", 10, ""},
		{"  a = palette.ink.deep", 10, ""},
		{"", 0, ""},
	}
	for _, tt := range tests {
		if got := paletteRefAtCursor(tt.line, tt.char); got != tt.want {
			t.Errorf("paletteRefAtCursor(%q, %d) = %q, want %q", tt.line, tt.char, got, tt.want)
		}
	}
}
