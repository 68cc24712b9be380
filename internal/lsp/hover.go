package lsp

import (
	"fmt"
	"strings"

	"github.com/jsvensson/viewstyle/internal/sheet"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"gopkg.in/yaml.v3"
)

// posInRange returns true if pos is within the range [r.Start, r.End).
// The end position is exclusive.
func posInRange(pos protocol.Position, r protocol.Range) bool {
	if pos.Line < r.Start.Line || pos.Line > r.End.Line {
		return false
	}
	if pos.Line == r.Start.Line && pos.Character < r.Start.Character {
		return false
	}
	if pos.Line == r.End.Line && pos.Character >= r.End.Character {
		return false
	}
	return true
}

// extractText extracts the source text at a given LSP range from document content.
func extractText(content string, r protocol.Range) string {
	lines := strings.Split(content, "\n")

	startLine := int(r.Start.Line)
	endLine := int(r.End.Line)

	if startLine >= len(lines) {
		return ""
	}
	if endLine >= len(lines) {
		endLine = len(lines) - 1
	}

	if startLine == endLine {
		line := lines[startLine]
		startChar := min(int(r.Start.Character), len(line))
		endChar := min(int(r.End.Character), len(line))
		if startChar > endChar {
			return ""
		}
		return line[startChar:endChar]
	}

	// Multi-line range
	var parts []string
	for i := startLine; i <= endLine; i++ {
		line := lines[i]
		switch i {
		case startLine:
			parts = append(parts, line[min(int(r.Start.Character), len(line)):])
		case endLine:
			parts = append(parts, line[:min(int(r.End.Character), len(line))])
		default:
			parts = append(parts, line)
		}
	}
	return strings.Join(parts, "\n")
}

// hover produces a Hover response for the given cursor position.
// Colors show their hex and rgba forms, with the source text for computed
// values. Style labels and inherited names show the resolved style.
// Returns nil if there is nothing to show at the position.
func hover(result *AnalysisResult, content string, pos protocol.Position) *protocol.Hover {
	if result == nil {
		return nil
	}

	for _, cl := range result.Colors {
		if !posInRange(pos, cl.Range) {
			continue
		}

		var md string
		if cl.IsRef {
			sourceText := extractText(content, cl.Range)
			md = fmt.Sprintf("**%s**\n\n`%s` · `%s`", sourceText, cl.Color.Hex(), cl.Color.RGBA())
		} else {
			md = fmt.Sprintf("`%s` · `%s`", cl.Color.Hex(), cl.Color.RGBA())
		}
		return markdownHover(md, cl.Range)
	}

	for _, ref := range result.Refs {
		if posInRange(pos, ref.Range) {
			return markdownHover(styleSummary(result.Sheet, ref.Name), ref.Range)
		}
	}

	for key, rng := range result.Symbols {
		name, ok := strings.CutPrefix(key, "style.")
		if ok && posInRange(pos, rng) {
			return markdownHover(styleSummary(result.Sheet, name), rng)
		}
	}

	return nil
}

func markdownHover(md string, rng protocol.Range) *protocol.Hover {
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: md,
		},
		Range: &rng,
	}
}

// styleSummary renders the resolved style as YAML, noting parents that are
// skipped.
func styleSummary(s *sheet.Sheet, name string) string {
	if s == nil {
		return fmt.Sprintf("**%s**\n\nunknown style", name)
	}
	resolved, err := s.Resolve(name)
	if err != nil {
		return fmt.Sprintf("**%s**\n\nunknown style; this entry is skipped", name)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**%s**", name)
	if own := s.Styles[name]; len(own.Inherited) > 0 {
		fmt.Fprintf(&b, " ← %s", strings.Join(own.Inherited, ", "))
	}
	b.WriteString("\n\n")

	if resolved.IsEmpty() {
		b.WriteString("no attributes")
		return b.String()
	}
	data, err := yaml.Marshal(resolved)
	if err != nil {
		log.Errorf("marshaling style %q: %s", name, err)
		b.WriteString("no attributes")
		return b.String()
	}
	b.WriteString("```yaml\n")
	b.Write(data)
	b.WriteString("```")
	return b.String()
}

// textDocumentHover handles textDocument/hover requests.
func (s *Server) textDocumentHover(_ *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	uri := string(params.TextDocument.URI)

	result := s.getResult(uri)
	if result == nil {
		return nil, nil
	}

	content, ok := s.docs.Get(uri)
	if !ok {
		return nil, nil
	}

	return hover(result, content, params.Position), nil
}
