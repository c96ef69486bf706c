package lsp

import (
	"fmt"
	"strings"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
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

// extractText returns the source text covered by r.
func extractText(content string, r protocol.Range) string {
	start, ok := offset(content, r.Start)
	if !ok {
		return ""
	}
	end, ok := offset(content, r.End)
	if !ok {
		end = len(content)
	}
	if end < start {
		return ""
	}
	return content[start:end]
}

// offset converts pos to a byte offset, clamping the character to its
// line. It reports false when the line does not exist.
func offset(content string, pos protocol.Position) (int, bool) {
	off := 0
	for range pos.Line {
		i := strings.IndexByte(content[off:], '\n')
		if i < 0 {
			return 0, false
		}
		off += i + 1
	}
	lineLen := strings.IndexByte(content[off:], '\n')
	if lineLen < 0 {
		lineLen = len(content) - off
	}
	return off + min(int(pos.Character), lineLen), true
}

// hover describes the color under pos: its hex value and the xcolor
// value written to documents, headed by the source text for references.
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
			md = fmt.Sprintf("**%s**\n\n`%s` \u00b7 `%s`", sourceText, cl.Color.Hex(), cl.Color.String())
		} else {
			md = fmt.Sprintf("`%s` \u00b7 `%s`", cl.Color.Hex(), cl.Color.String())
		}

		return &protocol.Hover{
			Contents: protocol.MarkupContent{
				Kind:  protocol.MarkupKindMarkdown,
				Value: md,
			},
			Range: &cl.Range,
		}
	}

	return nil
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
