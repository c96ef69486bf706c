package lsp

import (
	"strings"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// referenceRoots are the variables a script can reference.
var referenceRoots = map[string]bool{"palette": true}

// blockRefAtCursor extracts the reference path up to the cursor position.
// For example, if cursor is on "palette" in "palette.accent", it returns "palette".
// If cursor is on "accent" in "palette.accent", it returns "palette.accent".
// Returns "" if the cursor is not on a block reference.
func blockRefAtCursor(line string, character uint32) string {
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

	word := line[start:end]

	parts := strings.Split(word, ".")
	if len(parts) == 0 {
		return ""
	}

	if !referenceRoots[parts[0]] {
		return ""
	}

	// If cursor is on just the block name, check if followed by dot
	if len(parts) == 1 && word == parts[0] {
		if end < len(line) && line[end] == '.' {
			return parts[0]
		}
		return ""
	}

	// Calculate cursor position within word and return path up to cursor
	cursorInWord := col - start
	var resultParts []string
	currentPos := 0

	for _, part := range parts {
		partEnd := currentPos + len(part)
		if currentPos <= cursorInWord {
			resultParts = append(resultParts, part)
		}
		currentPos = partEnd + 1 // +1 for dot
	}

	return strings.Join(resultParts, ".")
}

// isIdentChar returns true if the byte is a valid identifier character
// (letter, digit, underscore, or dot for dotted paths).
func isIdentChar(b byte) bool {
	return (b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9') ||
		b == '_' || b == '.'
}

// cycleListRefAtCursor returns "cycle_list.<name>" when the cursor is on
// the quoted value of a cycle_list attribute.
func cycleListRefAtCursor(line string, character uint32) string {
	key, value, ok := strings.Cut(line, "=")
	if !ok || strings.TrimSpace(key) != "cycle_list" {
		return ""
	}
	open := strings.IndexByte(value, '"')
	if open < 0 {
		return ""
	}
	n := strings.IndexByte(value[open+1:], '"')
	if n < 0 {
		return ""
	}
	start := len(key) + 1 + open
	end := start + n + 2
	if col := int(character); col < start || col >= end {
		return ""
	}
	return "cycle_list." + value[open+1:open+1+n]
}

// definition finds where the palette entry or cycle list under pos is
// declared.
func definition(result *AnalysisResult, content string, uri string, pos protocol.Position) *protocol.Location {
	if result == nil {
		return nil
	}

	lines := strings.Split(content, "\n")
	if int(pos.Line) >= len(lines) {
		return nil
	}
	line := lines[pos.Line]

	ref := blockRefAtCursor(line, pos.Character)
	if ref == "" {
		ref = cycleListRefAtCursor(line, pos.Character)
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
