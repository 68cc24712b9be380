package lsp

import (
	"sort"
	"unicode/utf8"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/jsvensson/viewstyle/internal/color"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/zclconf/go-cty/cty"
)

// Semantic token types we'll use (indices 0-8)
var semanticTokenTypes = []string{
	"keyword",   // 0: block types (palette, style, padding, shadowOffset)
	"property",  // 1: attribute names
	"variable",  // 2: palette entries in references
	"namespace", // 3: the "palette" namespace identifier
	"string",    // 4: color literals
	"function",  // 5: brighten(), darken(), mix(), rgba()
	"number",    // 6: numeric literals
	"comment",   // 7: comments
	"class",     // 8: style names
}

// Semantic token modifiers (bit flags)
var semanticTokenModifiers = []string{
	"declaration", // bit 0: defining a new symbol
}

const modDeclaration = 1

// tokenTypeIndices maps type names to their indices for fast lookup
var tokenTypeIndices map[string]uint32

func init() {
	tokenTypeIndices = make(map[string]uint32, len(semanticTokenTypes))
	for i, t := range semanticTokenTypes {
		tokenTypeIndices[t] = uint32(i)
	}
}

// SemanticToken represents a single token with its metadata
type SemanticToken struct {
	Line      uint32 // 0-based line number
	StartChar uint32 // 0-based character offset
	Length    uint32
	Type      uint32 // index into semanticTokenTypes
	Modifiers uint32 // bit flags
}

// tokenAt builds a single-line token covering rng.
func tokenAt(rng hcl.Range, kind string, mods uint32) SemanticToken {
	length := 0
	if rng.End.Line == rng.Start.Line && rng.End.Column > rng.Start.Column {
		length = rng.End.Column - rng.Start.Column
	}
	return SemanticToken{
		Line:      uint32(rng.Start.Line - 1),
		StartChar: uint32(rng.Start.Column - 1),
		Length:    uint32(length),
		Type:      tokenTypeIndices[kind],
		Modifiers: mods,
	}
}

// encodeTokens converts tokens to LSP format (5 integers per token)
// Uses delta encoding for line numbers and character positions
func encodeTokens(tokens []SemanticToken) []uint32 {
	if len(tokens) == 0 {
		return []uint32{}
	}

	// Sort tokens by position
	sort.Slice(tokens, func(i, j int) bool {
		if tokens[i].Line != tokens[j].Line {
			return tokens[i].Line < tokens[j].Line
		}
		return tokens[i].StartChar < tokens[j].StartChar
	})

	data := make([]uint32, 0, len(tokens)*5)

	var prevLine uint32 = 0
	var prevChar uint32 = 0

	for _, tok := range tokens {
		if tok.Length == 0 {
			continue
		}
		deltaLine := tok.Line - prevLine
		var deltaStart uint32
		if deltaLine == 0 {
			deltaStart = tok.StartChar - prevChar
		} else {
			deltaStart = tok.StartChar
		}

		data = append(data,
			deltaLine,
			deltaStart,
			tok.Length,
			tok.Type,
			tok.Modifiers,
		)

		prevLine = tok.Line
		prevChar = tok.StartChar
	}

	return data
}

// semanticTokensFull generates semantic tokens for the entire document content
func semanticTokensFull(content string) []uint32 {
	src := []byte(content)
	file, diags := hclsyntax.ParseConfig(src, "", hcl.InitialPos)
	if diags.HasErrors() {
		// Return empty tokens if parsing fails
		return []uint32{}
	}

	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return []uint32{}
	}

	tokens := extractTokensFromBody(body, nil, false)
	tokens = append(tokens, commentTokens(src)...)

	return encodeTokens(tokens)
}

// commentTokens returns a token per comment line.
func commentTokens(src []byte) []SemanticToken {
	lexed, _ := hclsyntax.LexConfig(src, "", hcl.InitialPos)
	var tokens []SemanticToken
	for _, tok := range lexed {
		if tok.Type != hclsyntax.TokenComment {
			continue
		}
		text := tok.Bytes
		// Line comments include their newline.
		for len(text) > 0 && (text[len(text)-1] == '\n' || text[len(text)-1] == '\r') {
			text = text[:len(text)-1]
		}
		if tok.Range.Start.Line != tok.Range.End.Line && tok.Range.End.Line != tok.Range.Start.Line+1 {
			// Block comments spanning lines are left to the client's grammar.
			continue
		}
		tokens = append(tokens, SemanticToken{
			Line:      uint32(tok.Range.Start.Line - 1),
			StartChar: uint32(tok.Range.Start.Column - 1),
			Length:    uint32(utf8.RuneCount(text)),
			Type:      tokenTypeIndices["comment"],
		})
	}
	return tokens
}

// extractTokensFromBody extracts tokens from an HCL body. inPalette marks
// attributes that declare palette entries.
func extractTokensFromBody(body *hclsyntax.Body, tokens []SemanticToken, inPalette bool) []SemanticToken {
	for _, block := range body.Blocks {
		tokens = append(tokens, tokenAt(block.TypeRange, "keyword", 0))
		if block.Type == "style" {
			for _, rng := range block.LabelRanges {
				// Skip the quotes around the label.
				inner := rng
				inner.Start.Column++
				inner.End.Column--
				tokens = append(tokens, tokenAt(inner, "class", modDeclaration))
			}
		}
		tokens = extractTokensFromBody(block.Body, tokens, block.Type == "palette")
	}

	for _, attr := range body.Attributes {
		kind := "property"
		if inPalette {
			kind = "variable"
		}
		tokens = append(tokens, tokenAt(attr.NameRange, kind, modDeclaration))
		tokens = extractTokensFromExpr(attr.Expr, tokens, attr.Name == "inherited")
	}

	return tokens
}

// extractTokensFromExpr extracts tokens from an HCL expression. Strings in
// inherited lists are style names.
func extractTokensFromExpr(expr hclsyntax.Expression, tokens []SemanticToken, styleNames bool) []SemanticToken {
	switch e := expr.(type) {
	case *hclsyntax.LiteralValueExpr:
		if e.Val.Type() == cty.Number {
			tokens = append(tokens, tokenAt(e.SrcRange, "number", 0))
		}
	case *hclsyntax.TemplateExpr:
		tokens = extractTokensFromTemplate(e, tokens, styleNames)
	case *hclsyntax.TupleConsExpr:
		for _, item := range e.Exprs {
			tokens = extractTokensFromExpr(item, tokens, styleNames)
		}
	case *hclsyntax.ScopeTraversalExpr:
		tokens = extractTokensFromTraversal(e, tokens)
	case *hclsyntax.FunctionCallExpr:
		tokens = extractTokensFromFunctionCall(e, tokens)
	case *hclsyntax.UnaryOpExpr:
		tokens = extractTokensFromExpr(e.Val, tokens, styleNames)
	}
	return tokens
}

// extractTokensFromTemplate handles quoted strings: style names inside
// inherited lists and color literals elsewhere.
func extractTokensFromTemplate(expr *hclsyntax.TemplateExpr, tokens []SemanticToken, styleNames bool) []SemanticToken {
	if !expr.IsStringLiteral() {
		return tokens
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() || val.IsNull() {
		return tokens
	}

	switch {
	case styleNames:
		inner := expr.SrcRange
		inner.Start.Column++
		inner.End.Column--
		tokens = append(tokens, tokenAt(inner, "class", 0))
	default:
		if _, err := color.ParseString(val.AsString()); err == nil {
			tokens = append(tokens, tokenAt(expr.SrcRange, "string", 0))
		}
	}
	return tokens
}

// extractTokensFromTraversal handles palette references like palette.brand
func extractTokensFromTraversal(expr *hclsyntax.ScopeTraversalExpr, tokens []SemanticToken) []SemanticToken {
	if len(expr.Traversal) == 0 {
		return tokens
	}

	first, ok := expr.Traversal[0].(hcl.TraverseRoot)
	if !ok || first.Name != "palette" {
		return tokens
	}

	tokens = append(tokens, tokenAt(first.SrcRange, "namespace", 0))

	for _, step := range expr.Traversal[1:] {
		if seg, ok := step.(hcl.TraverseAttr); ok {
			// The attribute range starts at the dot.
			rng := seg.SrcRange
			rng.Start.Column = rng.End.Column - len(seg.Name)
			tokens = append(tokens, tokenAt(rng, "variable", 0))
		}
	}

	return tokens
}

// extractTokensFromFunctionCall handles function calls like brighten()
func extractTokensFromFunctionCall(expr *hclsyntax.FunctionCallExpr, tokens []SemanticToken) []SemanticToken {
	tokens = append(tokens, tokenAt(expr.NameRange, "function", 0))

	for _, arg := range expr.Args {
		tokens = extractTokensFromExpr(arg, tokens, false)
	}

	return tokens
}

// textDocumentSemanticTokensFull handles textDocument/semanticTokens/full requests.
func (s *Server) textDocumentSemanticTokensFull(_ *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	content, ok := s.docs.Get(string(params.TextDocument.URI))
	if !ok {
		return nil, nil
	}
	return &protocol.SemanticTokens{Data: semanticTokensFull(content)}, nil
}
