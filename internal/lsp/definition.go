package lsp

import (
	"strings"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// paletteRefAtCursor extracts a palette reference under the cursor.
// For example, if the cursor is anywhere on "palette.brand", it returns
// "palette.brand". Returns "" if the cursor is not on a palette reference.
func paletteRefAtCursor(line string, character uint32) string {
	col := int(character)
	if col >= len(line) {
		return ""
	}

	// Find the end of the current word (letters, digits, underscores, dots)
	end := col
	for end < len(line) && isIdentChar(line[end]) {
		end++
	}

	// Find the start of the current word (letters, digits, underscores, dots)
	start := col
	for start > 0 && isIdentChar(line[start-1]) {
		start--
	}

	parts := strings.Split(line[start:end], ".")
	if len(parts) != 2 || parts[0] != "palette" || parts[1] == "" {
		return ""
	}
	return parts[0] + "." + parts[1]
}

// isIdentChar returns true if the byte is a valid identifier character
// (letter, digit, underscore, or dot for dotted paths).
func isIdentChar(b byte) bool {
	return (b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9') ||
		b == '_' || b == '.' || b == '-'
}

// definition returns the definition location for the symbol at the cursor:
// a palette reference, or a style name inside an inherited list. Returns nil
// if the cursor is on neither or the symbol is not defined.
func definition(result *AnalysisResult, content string, uri string, pos protocol.Position) *protocol.Location {
	if result == nil {
		return nil
	}

	for _, ref := range result.Refs {
		if !posInRange(pos, ref.Range) {
			continue
		}
		rng, ok := result.Symbols["style."+ref.Name]
		if !ok {
			return nil
		}
		return &protocol.Location{URI: protocol.DocumentUri(uri), Range: rng}
	}

	lines := strings.Split(content, "\n")
	lineIdx := int(pos.Line)
	if lineIdx >= len(lines) {
		return nil
	}

	ref := paletteRefAtCursor(lines[lineIdx], pos.Character)
	if ref == "" {
		return nil
	}

	symRange, ok := result.Symbols[ref]
	if !ok {
		return nil
	}

	return &protocol.Location{
		URI:   protocol.DocumentUri(uri),
		Range: symRange,
	}
}

// textDocumentDefinition handles textDocument/definition requests.
func (s *Server) textDocumentDefinition(_ *glsp.Context, params *protocol.DefinitionParams) (any, error) {
	uri := string(params.TextDocument.URI)

	result := s.getResult(uri)
	if result == nil {
		return nil, nil
	}

	content, ok := s.docs.Get(uri)
	if !ok {
		return nil, nil
	}

	return definition(result, content, uri, params.Position), nil
}
