package lsp

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/jsvensson/viewstyle/internal/color"
	"github.com/jsvensson/viewstyle/internal/sheet"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

const diagnosticSource = "vstyle"

var (
	DiagError   = protocol.DiagnosticSeverityError
	DiagWarning = protocol.DiagnosticSeverityWarning
	DiagInfo    = protocol.DiagnosticSeverityInformation
)

// AnalysisResult holds all information produced by analyzing a style sheet.
type AnalysisResult struct {
	Diagnostics []protocol.Diagnostic
	Sheet       *sheet.Sheet
	// Symbols maps "palette.<name>" and "style.<name>" to definition ranges.
	Symbols map[string]protocol.Range
	Colors  []ColorLocation
	Refs    []StyleRef
	// Blocks maps style names to the range of their whole block.
	Blocks map[string]protocol.Range
}

// ColorLocation records a resolved color at a specific source position.
type ColorLocation struct {
	Range protocol.Range
	Color color.Color
	IsRef bool // true if this is computed (palette reference or function call)
}

// StyleRef is a style name inside an inherited list.
type StyleRef struct {
	Style string
	Name  string
	Range protocol.Range
}

// hclPosToLSP converts an HCL position to an LSP position.
// HCL positions are 1-based; LSP positions are 0-based.
func hclPosToLSP(pos hcl.Pos) protocol.Position {
	line, col := pos.Line-1, pos.Column-1
	if line < 0 {
		line = 0
	}
	if col < 0 {
		col = 0
	}
	return protocol.Position{
		Line:      uint32(line),
		Character: uint32(col),
	}
}

// hclRangeToLSP converts an HCL range to an LSP range.
func hclRangeToLSP(r hcl.Range) protocol.Range {
	return protocol.Range{
		Start: hclPosToLSP(r.Start),
		End:   hclPosToLSP(r.End),
	}
}

// Analyze parses a style sheet from memory and produces diagnostics, a symbol
// table, color locations and inherited references. It collects ALL errors
// rather than short-circuiting on the first. Inherited names that resolution
// would skip are reported as warnings.
func Analyze(filename, content string) *AnalysisResult {
	result := &AnalysisResult{
		Symbols: make(map[string]protocol.Range),
		Blocks:  make(map[string]protocol.Range),
	}

	s, idx, diags := sheet.ParseHCL([]byte(content), filename)
	for _, d := range diags {
		result.Diagnostics = append(result.Diagnostics, hclDiagToLSP(d))
	}
	result.Sheet = s

	for name, rng := range idx.Palette {
		result.Symbols["palette."+name] = hclRangeToLSP(rng)
	}
	for name, rng := range idx.Styles {
		result.Symbols["style."+name] = hclRangeToLSP(rng)
	}
	for name, rng := range idx.Blocks {
		result.Blocks[name] = hclRangeToLSP(rng)
	}
	for _, c := range idx.Colors {
		result.Colors = append(result.Colors, ColorLocation{
			Range: hclRangeToLSP(c.Range),
			Color: c.Color,
			IsRef: c.IsRef,
		})
	}
	for _, ref := range idx.Refs {
		result.Refs = append(result.Refs, StyleRef{
			Style: ref.Style,
			Name:  ref.Name,
			Range: hclRangeToLSP(ref.Range),
		})
	}

	result.addIssues(s.Validate())
	return result
}

// addIssues reports sheet issues at the inherited entry they concern.
func (r *AnalysisResult) addIssues(issues []sheet.Issue) {
	for _, issue := range issues {
		for _, ref := range r.Refs {
			if ref.Style == issue.Style && ref.Name == issue.Parent {
				sev := DiagWarning
				if issue.Kind == sheet.NestedParent {
					sev = DiagInfo
				}
				r.add(ref.Range, sev, issue.String())
				break
			}
		}
	}
}

// hclDiagToLSP converts an HCL diagnostic to an LSP diagnostic.
func hclDiagToLSP(d *hcl.Diagnostic) protocol.Diagnostic {
	sev := DiagError
	if d.Severity == hcl.DiagWarning {
		sev = DiagWarning
	}

	diag := protocol.Diagnostic{
		Severity: &sev,
		Message:  d.Summary,
		Source:   strPtr(diagnosticSource),
	}

	if d.Detail != "" {
		diag.Message = d.Summary + ": " + d.Detail
	}

	if d.Subject != nil {
		diag.Range = hclRangeToLSP(*d.Subject)
	}

	return diag
}

func (r *AnalysisResult) add(rng protocol.Range, sev protocol.DiagnosticSeverity, msg string) {
	r.Diagnostics = append(r.Diagnostics, protocol.Diagnostic{
		Range:    rng,
		Severity: &sev,
		Source:   strPtr(diagnosticSource),
		Message:  msg,
	})
}

func strPtr(s string) *string {
	return &s
}
