package lsp

import (
	"strings"

	"github.com/jsvensson/pgfplot/internal/color"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// colorToLSP converts an internal color.Color (uint8 RGB) to a protocol.Color (float32 0.0-1.0).
func colorToLSP(c color.Color) protocol.Color {
	return protocol.Color{
		Red:   float32(c.R) / 255.0,
		Green: float32(c.G) / 255.0,
		Blue:  float32(c.B) / 255.0,
		Alpha: 1.0,
	}
}

func colorFromLSP(c protocol.Color) color.Color {
	return color.Color{
		R: uint8(c.Red*255 + 0.5),
		G: uint8(c.Green*255 + 0.5),
		B: uint8(c.Blue*255 + 0.5),
	}
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

// colorPresentation offers replacements for string literals. A literal in
// the canonical {rgb:...} form keeps that form; anything else becomes hex.
// References and function calls are never replaced.
func colorPresentation(content string, params *protocol.ColorPresentationParams) []protocol.ColorPresentation {
	c := colorFromLSP(params.Color)
	text := extractText(content, params.Range)

	if !strings.HasPrefix(text, "\"") {
		return []protocol.ColorPresentation{}
	}

	label := c.Hex()
	if strings.HasPrefix(text, "\"{rgb:") {
		label = c.String()
	}

	return []protocol.ColorPresentation{
		{
			Label: label,
			TextEdit: &protocol.TextEdit{
				Range:   params.Range,
				NewText: "\"" + label + "\"",
			},
		},
	}
}

func (s *Server) textDocumentDocumentColor(_ *glsp.Context, params *protocol.DocumentColorParams) ([]protocol.ColorInformation, error) {
	return documentColors(s.getResult(string(params.TextDocument.URI))), nil
}

func (s *Server) textDocumentColorPresentation(_ *glsp.Context, params *protocol.ColorPresentationParams) ([]protocol.ColorPresentation, error) {
	content, ok := s.docs.Get(string(params.TextDocument.URI))
	if !ok {
		return []protocol.ColorPresentation{}, nil
	}
	return colorPresentation(content, params), nil
}
