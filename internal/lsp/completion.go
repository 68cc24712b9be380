package lsp

import (
	"regexp"
	"slices"
	"sort"
	"strings"

	"github.com/jsvensson/viewstyle/internal/style"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// splitLines splits content into lines, preserving empty trailing lines.
func splitLines(content string) []string {
	return strings.Split(content, "\n")
}

// blockContext represents the kind of block the cursor is in.
type blockContext int

const (
	contextRoot         blockContext = iota
	contextPalette                   // inside palette {}
	contextStyle                     // inside style "name" {}
	contextPadding                   // inside padding {} of a style
	contextShadowOffset              // inside shadowOffset {} of a style
)

// topLevelBlocks are the valid top-level block names.
var topLevelBlocks = []string{"palette", "style"}

// styleBlocks are the nested blocks a style accepts.
var styleBlocks = []string{string(style.AttrPadding), string(style.AttrShadowOffset)}

// enumValues lists the allowed values of enum attributes.
var enumValues = map[style.Attribute][]string{
	style.AttrTextAlignment: enumStrings(style.TextAlignments),
	style.AttrFontStyle:     enumStrings(style.FontStyles),
	style.AttrFontTrait:     enumStrings(style.FontTraits),
}

func enumStrings[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

var (
	// attrValuePrefix matches `name = <partial value>` at the end of the text before the cursor.
	attrValuePrefix = regexp.MustCompile(`([A-Za-z_][A-Za-z0-9_]*)\s*=\s*(.*)$`)
	// styleLabel matches the label of a style block header.
	styleLabel = regexp.MustCompile(`^style\s+"([^"]*)"`)
)

// complete produces completion items given an analysis result, document content,
// and cursor position. This is the core logic, decoupled from the LSP protocol
// handler for testability.
func complete(result *AnalysisResult, content string, pos protocol.Position) []protocol.CompletionItem {
	lines := splitLines(content)
	if int(pos.Line) >= len(lines) {
		return nil
	}

	line := lines[pos.Line]
	charPos := min(int(pos.Character), len(line))
	textBeforeCursor := line[:charPos]

	// Check for palette name completion after "palette."
	if paletteItems := tryPaletteCompletion(result, textBeforeCursor); paletteItems != nil {
		return paletteItems
	}

	ctx, current := determineBlockContext(lines, int(pos.Line))

	if ctx == contextStyle && inInheritedList(lines, int(pos.Line), charPos) {
		return styleNameCompletions(result, current)
	}

	if m := attrValuePrefix.FindStringSubmatch(textBeforeCursor); m != nil {
		return valueCompletions(ctx, style.Attribute(m[1]), strings.TrimSpace(m[2]))
	}

	switch ctx {
	case contextStyle:
		return styleCompletions(lines, int(pos.Line))
	case contextPadding:
		return keywordCompletions(lines, int(pos.Line), []string{"left", "right", "top", "bottom"})
	case contextShadowOffset:
		return keywordCompletions(lines, int(pos.Line), []string{"x", "y"})
	case contextRoot:
		return topLevelCompletions()
	}

	return nil
}

// tryPaletteCompletion checks if the text before the cursor ends with a palette
// reference prefix (e.g. "palette." or "palette.bra") and returns the palette
// entries. The client filters on the partial name.
func tryPaletteCompletion(result *AnalysisResult, textBeforeCursor string) []protocol.CompletionItem {
	if result == nil || result.Sheet == nil {
		return nil
	}

	idx := strings.LastIndex(textBeforeCursor, "palette.")
	if idx == -1 {
		return nil
	}
	if idx > 0 && isIdentChar(textBeforeCursor[idx-1]) {
		return nil
	}
	if strings.ContainsFunc(textBeforeCursor[idx+len("palette."):], func(r rune) bool {
		return r > 127 || !isIdentChar(byte(r))
	}) {
		return nil
	}

	names := make([]string, 0, len(result.Sheet.Palette))
	for name := range result.Sheet.Palette {
		names = append(names, name)
	}
	sort.Strings(names)

	kind := protocol.CompletionItemKindColor
	items := make([]protocol.CompletionItem, 0, len(names))
	for _, name := range names {
		hex := result.Sheet.Palette[name].Hex()
		items = append(items, protocol.CompletionItem{
			Label:  name,
			Kind:   &kind,
			Detail: &hex,
		})
	}
	return items
}

// inInheritedList reports whether the cursor is inside the brackets of an
// inherited list, which may span several lines.
func inInheritedList(lines []string, cursorLine, charPos int) bool {
	for i := cursorLine; i >= 0; i-- {
		text := lines[i]
		if i == cursorLine {
			text = text[:charPos]
		}
		if i < cursorLine && strings.Contains(text, "]") {
			return false
		}
		open := strings.LastIndex(text, "[")
		if open == -1 {
			if strings.Contains(text, "=") || strings.Contains(text, "{") {
				return false
			}
			continue
		}
		if strings.Contains(text[open:], "]") {
			return false
		}
		m := attrValuePrefix.FindStringSubmatch(text[:open+1])
		return m != nil && m[1] == "inherited"
	}
	return false
}

// styleNameCompletions offers the names of the sheet's styles, except the
// one being edited.
func styleNameCompletions(result *AnalysisResult, current string) []protocol.CompletionItem {
	if result == nil || result.Sheet == nil {
		return nil
	}
	kind := protocol.CompletionItemKindReference
	var items []protocol.CompletionItem
	for _, name := range result.Sheet.Names {
		if name == current {
			continue
		}
		items = append(items, protocol.CompletionItem{
			Label: name,
			Kind:  &kind,
		})
	}
	return items
}

// valueCompletions returns completion items for the value of an attribute:
// enum values, or color functions and the palette for color attributes.
func valueCompletions(ctx blockContext, attr style.Attribute, partial string) []protocol.CompletionItem {
	if values, ok := enumValues[attr]; ok && ctx == contextStyle {
		if partial != "" && !strings.HasPrefix(partial, "\"") {
			return nil
		}
		kind := protocol.CompletionItemKindEnumMember
		items := make([]protocol.CompletionItem, 0, len(values))
		for _, v := range values {
			insert := v
			if partial == "" {
				insert = "\"" + v + "\""
			}
			items = append(items, protocol.CompletionItem{
				Label:      v,
				Kind:       &kind,
				InsertText: strPtr(insert),
			})
		}
		return items
	}

	isColor := ctx == contextPalette || slices.Contains(style.ColorAttributes, attr)
	if !isColor || partial != "" {
		return nil
	}
	return colorValueCompletions()
}

// colorValueCompletions returns function snippets and a palette reference
// trigger.
func colorValueCompletions() []protocol.CompletionItem {
	snippetFormat := protocol.InsertTextFormatSnippet

	snippets := []struct {
		name, detail, snippet string
	}{
		{"brighten", "brighten(color, percentage)", "brighten(${1:color}, ${2:0.1})"},
		{"darken", "darken(color, percentage)", "darken(${1:color}, ${2:0.1})"},
		{"mix", "mix(a, b, amount)", "mix(${1:a}, ${2:b}, ${3:0.5})"},
		{"rgba", "rgba(red, green, blue, alpha)", "rgba(${1:0}, ${2:0}, ${3:0}, ${4:1})"},
	}

	items := make([]protocol.CompletionItem, 0, len(snippets)+1)
	for _, sn := range snippets {
		items = append(items, protocol.CompletionItem{
			Label:            sn.name,
			Kind:             completionKindPtr(protocol.CompletionItemKindFunction),
			Detail:           strPtr(sn.detail),
			InsertText:       strPtr(sn.snippet),
			InsertTextFormat: &snippetFormat,
		})
	}

	paletteSnippet := "palette."
	items = append(items, protocol.CompletionItem{
		Label:      "palette",
		Kind:       completionKindPtr(protocol.CompletionItemKindVariable),
		Detail:     strPtr("palette reference"),
		InsertText: &paletteSnippet,
	})
	return items
}

// determineBlockContext scans from the top of the file down to the cursor line
// to determine which block the cursor is in, using brace nesting. It also
// returns the label of the enclosing style block, if any.
func determineBlockContext(lines []string, cursorLine int) (blockContext, string) {
	type blockInfo struct {
		name  string
		label string
	}

	var stack []blockInfo

	for i := 0; i <= cursorLine; i++ {
		line := strings.TrimSpace(lines[i])

		opens := strings.Count(line, "{")
		closes := strings.Count(line, "}")

		// Process opening braces: extract the block name (first word on the line)
		if opens > 0 {
			parts := strings.Fields(line)
			if len(parts) >= 1 {
				info := blockInfo{name: parts[0]}
				if m := styleLabel.FindStringSubmatch(line); m != nil {
					info.label = m[1]
				}
				for range opens {
					stack = append(stack, info)
				}
			}
		}

		// Process closing braces
		for range closes {
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		}
	}

	if len(stack) == 0 {
		return contextRoot, ""
	}

	current := stack[len(stack)-1]
	if len(stack) == 1 {
		switch current.name {
		case "palette":
			return contextPalette, ""
		case "style":
			return contextStyle, current.label
		}
		return contextRoot, ""
	}

	parent := stack[len(stack)-2]
	if len(stack) == 2 && parent.name == "style" {
		switch current.name {
		case string(style.AttrPadding):
			return contextPadding, parent.label
		case string(style.AttrShadowOffset):
			return contextShadowOffset, parent.label
		}
	}
	return contextRoot, ""
}

// styleCompletions returns attribute and nested block completions, excluding
// those already defined in the current style block.
func styleCompletions(lines []string, cursorLine int) []protocol.CompletionItem {
	defined := findDefinedAttributes(lines, cursorLine)
	kind := protocol.CompletionItemKindProperty

	var items []protocol.CompletionItem
	if !defined["inherited"] {
		items = append(items, protocol.CompletionItem{
			Label:  "inherited",
			Kind:   &kind,
			Detail: strPtr("parent style names"),
		})
	}
	for _, a := range style.Attributes {
		// shadowOffset is only written as a block.
		if defined[string(a)] || a == style.AttrShadowOffset {
			continue
		}
		items = append(items, protocol.CompletionItem{
			Label: string(a),
			Kind:  &kind,
		})
	}

	snippetFormat := protocol.InsertTextFormatSnippet
	blockKind := protocol.CompletionItemKindSnippet
	for _, name := range styleBlocks {
		if defined[name] {
			continue
		}
		snippet := name + " {\n  $0\n}"
		items = append(items, protocol.CompletionItem{
			Label:            name + " {}",
			Kind:             &blockKind,
			InsertText:       &snippet,
			InsertTextFormat: &snippetFormat,
		})
	}
	return items
}

// keywordCompletions offers the given attribute names, excluding those
// already defined in the current block.
func keywordCompletions(lines []string, cursorLine int, names []string) []protocol.CompletionItem {
	defined := findDefinedAttributes(lines, cursorLine)
	kind := protocol.CompletionItemKindProperty

	var items []protocol.CompletionItem
	for _, name := range names {
		if !defined[name] {
			items = append(items, protocol.CompletionItem{
				Label: name,
				Kind:  &kind,
			})
		}
	}
	return items
}

// findDefinedAttributes scans the current block (from the nearest opening brace
// before cursorLine to cursorLine) and returns attribute and block names
// already defined.
func findDefinedAttributes(lines []string, cursorLine int) map[string]bool {
	defined := make(map[string]bool)

	// Scan backwards to find the opening brace of the current block
	startLine := 0
	depth := 0
	for i := cursorLine; i >= 0; i-- {
		line := strings.TrimSpace(lines[i])
		closes := strings.Count(line, "}")
		opens := strings.Count(line, "{")
		depth += closes - opens
		if depth < 0 {
			startLine = i
			break
		}
	}

	// Scan forward from startLine to cursorLine, collecting names at depth 1
	depth = 0
	for i := startLine; i <= cursorLine; i++ {
		line := strings.TrimSpace(lines[i])
		if depth == 1 {
			if eqIdx := strings.Index(line, "="); eqIdx > 0 {
				name := strings.TrimSpace(line[:eqIdx])
				if !strings.ContainsAny(name, " {") {
					defined[name] = true
				}
			} else if fields := strings.Fields(line); len(fields) > 1 && fields[1] == "{" {
				defined[fields[0]] = true
			}
		}
		depth += strings.Count(line, "{") - strings.Count(line, "}")
	}

	return defined
}

// topLevelCompletions returns completion items for top-level block names.
func topLevelCompletions() []protocol.CompletionItem {
	snippetFormat := protocol.InsertTextFormatSnippet
	kind := protocol.CompletionItemKindSnippet

	snippets := map[string]string{
		"palette": "palette {\n  $0\n}",
		"style":   "style \"${1:name}\" {\n  $0\n}",
	}

	var items []protocol.CompletionItem
	for _, name := range topLevelBlocks {
		snippet := snippets[name]
		items = append(items, protocol.CompletionItem{
			Label:            name,
			Kind:             &kind,
			InsertText:       &snippet,
			InsertTextFormat: &snippetFormat,
		})
	}

	return items
}

// completionKindPtr returns a pointer to a CompletionItemKind.
func completionKindPtr(k protocol.CompletionItemKind) *protocol.CompletionItemKind {
	return &k
}

// textDocumentCompletion is the LSP handler for textDocument/completion requests.
func (s *Server) textDocumentCompletion(_ *glsp.Context, params *protocol.CompletionParams) (any, error) {
	uri := string(params.TextDocument.URI)

	content, ok := s.docs.Get(uri)
	if !ok {
		return nil, nil
	}

	items := complete(s.getResult(uri), content, params.Position)
	return items, nil
}
