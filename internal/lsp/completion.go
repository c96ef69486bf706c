package lsp

import (
	"sort"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/jsvensson/pgfplot/internal/config"
	"github.com/jsvensson/pgfplot/internal/parser"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// blockSchema lists what may appear inside a block.
type blockSchema struct {
	attributes []string
	blocks     []blockHeader
}

type blockHeader struct {
	name   string
	labels []string
}

// schemas maps block names to their contents, derived from the decoder's
// structs so completion never drifts from what Parse accepts. The root
// block is keyed by "".
var schemas = buildSchemas()

func buildSchemas() map[string]blockSchema {
	out := map[string]blockSchema{
		"":           implied(parser.ResolvedScript{}),
		"settings":   implied(config.Overrides{}),
		"cycle_list": implied(parser.CycleListBlock{}),
		"entry":      implied(parser.EntryBlock{}),
		"figure":     implied(parser.FigureBlock{}),
		"axes":       implied(parser.AxesBlock{}),
		"plot":       implied(parser.PlotBlock{}),
		"hist":       implied(parser.HistBlock{}),
		"text":       implied(parser.TextBlock{}),
		"legend":     implied(parser.LegendBlock{}),
	}
	root := out[""]
	root.blocks = append(root.blocks, blockHeader{name: "palette"})
	sort.Slice(root.blocks, func(i, j int) bool { return root.blocks[i].name < root.blocks[j].name })
	out[""] = root
	return out
}

func implied(v any) blockSchema {
	schema, _ := gohcl.ImpliedBodySchema(v)
	var bs blockSchema
	for _, a := range schema.Attributes {
		bs.attributes = append(bs.attributes, a.Name)
	}
	for _, b := range schema.Blocks {
		bs.blocks = append(bs.blocks, blockHeader{name: b.Type, labels: b.LabelNames})
	}
	sort.Strings(bs.attributes)
	sort.Slice(bs.blocks, func(i, j int) bool { return bs.blocks[i].name < bs.blocks[j].name })
	return bs
}

// splitLines splits content into lines, preserving empty trailing lines.
func splitLines(content string) []string {
	return strings.Split(content, "\n")
}

// complete produces completion items given an analysis result, document content,
// and cursor position.
func complete(result *AnalysisResult, content string, pos protocol.Position) []protocol.CompletionItem {
	lines := splitLines(content)
	if int(pos.Line) >= len(lines) {
		return nil
	}

	line := lines[pos.Line]
	charPos := min(int(pos.Character), len(line))
	textBeforeCursor := line[:charPos]

	if items := tryPaletteCompletion(result, textBeforeCursor); items != nil {
		return items
	}

	if strings.TrimSpace(textBeforeCursor) == `plot "` {
		return plotKindCompletions()
	}

	if isValuePosition(textBeforeCursor) {
		return valueCompletions()
	}

	schema, ok := schemas[determineBlockContext(lines, int(pos.Line))]
	if !ok {
		return nil
	}
	return blockCompletions(schema, findDefinedAttributes(lines, int(pos.Line)))
}

// tryPaletteCompletion offers palette names after "palette.".
func tryPaletteCompletion(result *AnalysisResult, textBeforeCursor string) []protocol.CompletionItem {
	if result == nil || result.Palette == nil {
		return nil
	}

	idx := strings.LastIndex(textBeforeCursor, "palette.")
	if idx == -1 {
		return nil
	}
	// palette.a.b is never valid
	if strings.Contains(textBeforeCursor[idx+len("palette."):], ".") {
		return nil
	}

	names := make([]string, 0, len(result.Palette))
	for name := range result.Palette {
		names = append(names, name)
	}
	sort.Strings(names)

	items := make([]protocol.CompletionItem, 0, len(names))
	for _, name := range names {
		hex := result.Palette[name].Hex()
		items = append(items, protocol.CompletionItem{
			Label:  name,
			Kind:   completionKindPtr(protocol.CompletionItemKindColor),
			Detail: &hex,
		})
	}
	return items
}

func plotKindCompletions() []protocol.CompletionItem {
	items := make([]protocol.CompletionItem, 0, len(parser.PlotKinds))
	for _, kind := range parser.PlotKinds {
		items = append(items, protocol.CompletionItem{
			Label: kind,
			Kind:  completionKindPtr(protocol.CompletionItemKindEnumMember),
		})
	}
	return items
}

// isValuePosition returns true if the text before the cursor indicates we are
// at a value position (after an "=" sign with nothing meaningful following it).
func isValuePosition(textBeforeCursor string) bool {
	trimmed := strings.TrimSpace(textBeforeCursor)
	eqIdx := strings.LastIndex(trimmed, "=")
	if eqIdx == -1 {
		return false
	}
	afterEq := strings.TrimSpace(trimmed[eqIdx+1:])
	return afterEq == ""
}

// valueCompletions returns the color functions as snippets and a palette
// reference trigger.
func valueCompletions() []protocol.CompletionItem {
	snippetFormat := protocol.InsertTextFormatSnippet
	snippets := map[string]string{
		"rgb":      "rgb(${1:0}, ${2:0}, ${3:0})",
		"hex":      `hex("${1:#000000}")`,
		"brighten": "brighten(${1:color}, ${2:0.1})",
		"darken":   "darken(${1:color}, ${2:0.1})",
		"mix":      "mix(${1:a}, ${2:b}, ${3:0.5})",
	}

	names := make([]string, 0, len(snippets))
	for name := range snippets {
		names = append(names, name)
	}
	sort.Strings(names)

	funcs := parser.Functions()
	var items []protocol.CompletionItem
	for _, name := range names {
		snippet := snippets[name]
		item := protocol.CompletionItem{
			Label:            name,
			Kind:             completionKindPtr(protocol.CompletionItemKindFunction),
			InsertText:       &snippet,
			InsertTextFormat: &snippetFormat,
		}
		if fn, ok := funcs[name]; ok {
			item.Detail = strPtr(fn.Description())
		}
		items = append(items, item)
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
// and returns the name of the innermost open block, or "" at the root.
func determineBlockContext(lines []string, cursorLine int) string {
	var stack []string

	for i := 0; i <= cursorLine; i++ {
		line := strings.TrimSpace(lines[i])

		opens := strings.Count(line, "{")
		closes := strings.Count(line, "}")

		if opens > 0 {
			if parts := strings.Fields(line); len(parts) >= 1 {
				for range opens {
					stack = append(stack, parts[0])
				}
			}
		}

		for range closes {
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		}
	}

	if len(stack) == 0 {
		return ""
	}
	return stack[len(stack)-1]
}

// blockCompletions offers the attributes not yet set and the nested blocks
// of the current block.
func blockCompletions(schema blockSchema, defined map[string]bool) []protocol.CompletionItem {
	snippetFormat := protocol.InsertTextFormatSnippet

	var items []protocol.CompletionItem
	for _, name := range schema.attributes {
		if defined[name] {
			continue
		}
		insert := name + " = "
		items = append(items, protocol.CompletionItem{
			Label:      name,
			Kind:       completionKindPtr(protocol.CompletionItemKindProperty),
			InsertText: &insert,
		})
	}
	for _, b := range schema.blocks {
		snippet := b.name
		for i, label := range b.labels {
			if b.name == "plot" {
				snippet += ` "${1|` + strings.Join(parser.PlotKinds, ",") + `|}"`
				continue
			}
			snippet += ` "${` + string(rune('1'+i)) + `:` + label + `}"`
		}
		snippet += " {\n  $0\n}"
		items = append(items, protocol.CompletionItem{
			Label:            b.name,
			Kind:             completionKindPtr(protocol.CompletionItemKindSnippet),
			InsertText:       &snippet,
			InsertTextFormat: &snippetFormat,
		})
	}
	return items
}

// findDefinedAttributes scans the current block (from the nearest opening brace
// before cursorLine to cursorLine) and returns attribute names already defined
// (lines containing "name = ...").
func findDefinedAttributes(lines []string, cursorLine int) map[string]bool {
	defined := make(map[string]bool)

	startLine := 0
	depth := 0
	for i := cursorLine; i >= 0; i-- {
		line := strings.TrimSpace(lines[i])
		depth += strings.Count(line, "}") - strings.Count(line, "{")
		if depth < 0 {
			startLine = i
			break
		}
	}

	for i := startLine; i <= cursorLine; i++ {
		line := strings.TrimSpace(lines[i])
		if eqIdx := strings.Index(line, "="); eqIdx > 0 {
			name := strings.TrimSpace(line[:eqIdx])
			if !strings.Contains(name, " ") && !strings.Contains(name, "{") {
				defined[name] = true
			}
		}
	}

	return defined
}

func completionKindPtr(k protocol.CompletionItemKind) *protocol.CompletionItemKind {
	return &k
}

func (s *Server) textDocumentCompletion(_ *glsp.Context, params *protocol.CompletionParams) (any, error) {
	uri := string(params.TextDocument.URI)

	content, ok := s.docs.Get(uri)
	if !ok {
		return nil, nil
	}

	return complete(s.getResult(uri), content, params.Position), nil
}
