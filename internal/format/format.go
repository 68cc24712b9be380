// Package format formats HCL style sheets.
package format

import (
	"regexp"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/hashicorp/hcl/v2/hclwrite"
)

var multipleBlankLines = regexp.MustCompile(`\n{3,}`)
var blankLineAfterOpenBrace = regexp.MustCompile(`\{\n\s*\n`)
var blankLineBeforeCloseBrace = regexp.MustCompile(`\n\s*\n(\s*\})`)

var hexLiteral = regexp.MustCompile(`^#[0-9a-fA-F]{6}([0-9a-fA-F]{2})?$`)

// Format takes HCL source content and returns it formatted according to
// HCL canonical style rules. Hex color literals are lowercased, and six-digit
// ones get an opaque alpha byte appended.
//
// The formatter works even on partial/invalid HCL, making it suitable
// for use while the user is still typing; hex literals are only rewritten
// when the source parses.
func Format(content string) (string, error) {
	src := normalizeHex([]byte(content))
	formatted := hclwrite.Format(src)
	// Collapse multiple consecutive blank lines into a single blank line.
	collapsed := multipleBlankLines.ReplaceAllString(string(formatted), "\n\n")
	// Remove blank lines immediately after opening braces.
	collapsed = blankLineAfterOpenBrace.ReplaceAllString(collapsed, "{\n")
	// Remove blank lines immediately before closing braces.
	collapsed = blankLineBeforeCloseBrace.ReplaceAllString(collapsed, "\n${1}")
	return collapsed, nil
}

// NormalizeHex returns the canonical form of a hex color literal and
// whether s is one.
func NormalizeHex(s string) (string, bool) {
	if !hexLiteral.MatchString(s) {
		return s, false
	}
	s = strings.ToLower(s)
	if len(s) == 7 {
		s += "ff"
	}
	return s, true
}

func normalizeHex(src []byte) []byte {
	f, diags := hclwrite.ParseConfig(src, "", hcl.InitialPos)
	if diags.HasErrors() {
		return src
	}
	tokens := f.BuildTokens(nil)
	changed := false
	for _, tok := range tokens {
		if tok.Type != hclsyntax.TokenQuotedLit {
			continue
		}
		if hex, ok := NormalizeHex(string(tok.Bytes)); ok && hex != string(tok.Bytes) {
			tok.Bytes = []byte(hex)
			changed = true
		}
	}
	if !changed {
		return src
	}
	return tokens.Bytes()
}
