package lsp

import (
	"math"
	"strings"

	"github.com/jsvensson/viewstyle/internal/color"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// colorToLSP converts a color.Color (uint8 RGB) to a protocol.Color (float32 0.0-1.0).
func colorToLSP(c color.Color) protocol.Color {
	return protocol.Color{
		Red:   float32(c.R) / 255.0,
		Green: float32(c.G) / 255.0,
		Blue:  float32(c.B) / 255.0,
		Alpha: float32(c.Opacity()),
	}
}

// colorFromLSP converts a protocol.Color back to a color.Color. Alpha is
// rounded to three decimals.
func colorFromLSP(c protocol.Color) color.Color {
	channel := func(f float32) uint8 {
		return uint8(math.Round(math.Max(0, math.Min(1, float64(f))) * 255))
	}
	alpha := math.Round(math.Max(0, math.Min(1, float64(c.Alpha)))*1000) / 1000
	return color.NewAlpha(channel(c.Red), channel(c.Green), channel(c.Blue), alpha)
}

// documentColors converts the analysis result's color locations into LSP ColorInformation items.
func documentColors(result *AnalysisResult) []protocol.ColorInformation {
	if result == nil {
		return []protocol.ColorInformation{}
	}

	infos := make([]protocol.ColorInformation, 0, len(result.Colors))
	for _, cl := range result.Colors {
		infos = append(infos, protocol.ColorInformation{
			Range: cl.Range,
			Color: colorToLSP(cl.Color),
		})
	}
	return infos
}

// colorPresentation produces color presentation options for a given color and range.
// For string literals it offers the hex form and the component form, each with a
// TextEdit replacing the old value. Computed values (palette references and
// function calls) get no presentations, so they are never replaced by literals.
func colorPresentation(content string, params *protocol.ColorPresentationParams) []protocol.ColorPresentation {
	text := extractText(content, params.Range)
	if !strings.HasPrefix(text, "\"") {
		return []protocol.ColorPresentation{}
	}

	c := colorFromLSP(params.Color)
	// The picker's alpha is a float32; snap it to the byte the hex form holds.
	hex := color.NewAlpha(c.R, c.G, c.B, math.Round(c.Opacity()*255)/255).Hex()
	components := c.Text()

	var out []protocol.ColorPresentation
	for _, label := range []string{hex, components} {
		if len(out) > 0 && out[0].Label == label {
			continue
		}
		out = append(out, protocol.ColorPresentation{
			Label: label,
			TextEdit: &protocol.TextEdit{
				Range:   params.Range,
				NewText: "\"" + label + "\"",
			},
		})
	}
	return out
}

// textDocumentDocumentColor handles textDocument/documentColor requests.
func (s *Server) textDocumentDocumentColor(_ *glsp.Context, params *protocol.DocumentColorParams) ([]protocol.ColorInformation, error) {
	uri := string(params.TextDocument.URI)
	result := s.getResult(uri)
	return documentColors(result), nil
}

// textDocumentColorPresentation handles textDocument/colorPresentation requests.
func (s *Server) textDocumentColorPresentation(_ *glsp.Context, params *protocol.ColorPresentationParams) ([]protocol.ColorPresentation, error) {
	uri := string(params.TextDocument.URI)
	content, ok := s.docs.Get(uri)
	if !ok {
		return []protocol.ColorPresentation{}, nil
	}
	return colorPresentation(content, params), nil
}
