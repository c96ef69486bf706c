package lsp

import (
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/jsvensson/pgfplot/internal/color"
	"github.com/jsvensson/pgfplot/internal/parser"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/zclconf/go-cty/cty"
)

var (
	DiagError   = protocol.DiagnosticSeverityError
	DiagWarning = protocol.DiagnosticSeverityWarning
)

const diagSource = "pgfplot"

// colorAttributes are the attribute names that hold colors inside figure,
// axes, plot, hist and text blocks.
var colorAttributes = map[string]bool{
	"color":             true,
	"fill":              true,
	"marker_edge_color": true,
	"marker_face_color": true,
}

// AnalysisResult holds all information produced by analyzing a figure script.
type AnalysisResult struct {
	Diagnostics []protocol.Diagnostic
	Palette     map[string]color.Color
	Symbols     map[string]protocol.Range // "palette.accent", "cycle_list.mine" -> definition range
	Colors      []ColorLocation
}

// ColorLocation records a resolved color at a specific source position.
type ColorLocation struct {
	Range protocol.Range
	Color color.Color
	IsRef bool // true if this is a palette reference (not a literal)
}

// hclPosToLSP converts an HCL position to an LSP position.
// HCL positions are 1-based; LSP positions are 0-based.
func hclPosToLSP(pos hcl.Pos) protocol.Position {
	return protocol.Position{
		Line:      uint32(pos.Line - 1),
		Character: uint32(pos.Column - 1),
	}
}

func hclRangeToLSP(r hcl.Range) protocol.Range {
	return protocol.Range{
		Start: hclPosToLSP(r.Start),
		End:   hclPosToLSP(r.End),
	}
}

// Analyze parses a script from memory. Diagnostics come from the same
// decoder the renderer uses; the palette, symbols and colors are collected
// from the syntax tree so they stay available while other parts of the
// file are broken.
func Analyze(filename, content string) *AnalysisResult {
	result := &AnalysisResult{
		Palette: make(map[string]color.Color),
		Symbols: make(map[string]protocol.Range),
	}

	file, diags := hclsyntax.ParseConfig([]byte(content), filename, hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		result.addDiagnostics(diags)
		return result
	}

	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return result
	}

	for _, block := range body.Blocks {
		switch {
		case block.Type == "palette":
			result.analyzePalette(block.Body)
		case block.Type == "cycle_list" && len(block.Labels) == 1:
			result.Symbols["cycle_list."+block.Labels[0]] = hclRangeToLSP(block.DefRange())
		}
	}

	ctx := parser.EvalContext(result.Palette)
	for _, block := range body.Blocks {
		if block.Type != "palette" {
			result.analyzeColors(block.Body, ctx)
		}
	}

	sort.Slice(result.Colors, func(i, j int) bool {
		a, b := result.Colors[i].Range.Start, result.Colors[j].Range.Start
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Character < b.Character
	})

	_, diags = parser.ParseSource([]byte(content), filename)
	result.addDiagnostics(diags)
	return result
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
		Source:   strPtr(diagSource),
	}

	if d.Detail != "" {
		diag.Message = d.Summary + ": " + d.Detail
	}

	if d.Subject != nil {
		diag.Range = hclRangeToLSP(*d.Subject)
	}

	return diag
}

func (r *AnalysisResult) addDiagnostics(diags hcl.Diagnostics) {
	for _, d := range diags {
		r.Diagnostics = append(r.Diagnostics, hclDiagToLSP(d))
	}
}

func strPtr(s string) *string {
	return &s
}

// analyzePalette evaluates palette entries with the color functions only,
// matching the first decoding pass. Entries that fail are left out; the
// decoder reports them.
func (r *AnalysisResult) analyzePalette(body *hclsyntax.Body) {
	ctx := &hcl.EvalContext{Functions: parser.Functions()}
	for name, attr := range body.Attributes {
		c, ok := evalColor(attr.Expr, ctx)
		if !ok {
			continue
		}
		r.Palette[name] = c
		r.Symbols["palette."+name] = hclRangeToLSP(attr.SrcRange)
		r.Colors = append(r.Colors, ColorLocation{
			Range: hclRangeToLSP(attr.Expr.Range()),
			Color: c,
			IsRef: isReferenceExpr(attr.Expr),
		})
	}
}

// analyzeColors walks nested blocks and records every color attribute
// that resolves.
func (r *AnalysisResult) analyzeColors(body *hclsyntax.Body, ctx *hcl.EvalContext) {
	for name, attr := range body.Attributes {
		if !colorAttributes[name] {
			continue
		}
		c, ok := evalColor(attr.Expr, ctx)
		if !ok {
			continue
		}
		r.Colors = append(r.Colors, ColorLocation{
			Range: hclRangeToLSP(attr.Expr.Range()),
			Color: c,
			IsRef: isReferenceExpr(attr.Expr),
		})
	}
	for _, block := range body.Blocks {
		r.analyzeColors(block.Body, ctx)
	}
}

func evalColor(expr hclsyntax.Expression, ctx *hcl.EvalContext) (color.Color, bool) {
	val, diags := expr.Value(ctx)
	if diags.HasErrors() || val.IsNull() || !val.IsKnown() || val.Type() != cty.String {
		return color.Color{}, false
	}
	c, err := parser.ParseColor(val.AsString())
	if err != nil {
		return color.Color{}, false
	}
	return c, true
}

// isReferenceExpr returns true if the expression is a scope traversal
// (e.g. palette.accent) rather than a literal value.
func isReferenceExpr(expr hclsyntax.Expression) bool {
	switch expr.(type) {
	case *hclsyntax.ScopeTraversalExpr:
		return true
	case *hclsyntax.RelativeTraversalExpr:
		return true
	default:
		return false
	}
}
