// Package rewrite is the axiom-preserving rewrite catalog applied to an
// internal/egraph.EGraph by internal/egraph.Runner. Because the Picture
// IR is a small, closed operator set, each rule's matcher is a direct
// scan over e-classes for the node shape it cares about rather than a
// generic pattern-matching DSL — still equality saturation in the
// standard sense (congruence-closed e-graph, union, rebuild, repeated
// application to a fixed point), just with per-rule matching code.
package rewrite

import "github.com/gogpu/pictureopt/internal/egraph"

// Rule names and applies one rewrite. Apply scans g for matches of the
// rule's shape, unions in the rewritten term for each match found, and
// reports whether any match fired — the signal internal/egraph.Runner
// uses to detect a fixed point.
type Rule struct {
	Name  string
	Apply func(g *egraph.EGraph) bool
}

// Catalog returns every rule in registration order. Order does not
// affect the fixed point reached (equality saturation explores all
// rules every round regardless of order) but does affect how quickly
// it is reached, so cheap structural rules are listed first.
func Catalog() []Rule {
	return []Rule{
		{Name: "clip-of-blank", Apply: clipOfBlank},
		{Name: "matrixop-of-blank", Apply: matrixOpOfBlank},
		{Name: "concat44-of-blank", Apply: concat44OfBlank},
		{Name: "alpha-of-blank", Apply: alphaOfBlank},
		{Name: "concat-blank-left", Apply: concatBlankLeft},
		{Name: "concat-blank-right", Apply: concatBlankRight},
		{Name: "alpha-identity", Apply: alphaIdentity},
		{Name: "applystate-blank", Apply: applyStateOfBlankState},
		{Name: "merge-trivial-to-layer", Apply: mergeTrivialToLayer},
		{Name: "merge-trivial-to-concat", Apply: mergeTrivialToConcat},
		{Name: "applyfilter-trivial", Apply: applyFilterTrivial},
		{Name: "alpha-pack-merge", Apply: alphaPackMerge},
		{Name: "alpha-unpack-merge", Apply: alphaUnpackMerge},
		{Name: "alpha-fold-draw", Apply: alphaFoldDraw},
		{Name: "clip-fold", Apply: clipFold},
		{Name: "commute-alpha-matrixop", Apply: commuteAlphaMatrixOp},
		{Name: "commute-alpha-cliprect", Apply: commuteAlphaClipRect},
		{Name: "commute-alpha-concat44", Apply: commuteAlphaConcat44},
		{Name: "commute-applystate-cliprect", Apply: commuteApplyStateClipRect},
		{Name: "commute-applystate-concat44", Apply: commuteApplyStateConcat44},
		{Name: "commute-applystate-matrixop", Apply: commuteApplyStateMatrixOp},
		{Name: "separate-filter-and-state", Apply: separateFilterAndState},
		{Name: "commute-applyfilterstate-cliprect", Apply: commuteApplyFilterStateClipRect},
		{Name: "commute-applyfilterstate-concat44", Apply: commuteApplyFilterStateConcat44},
		{Name: "commute-applyfilterstate-matrixop", Apply: commuteApplyFilterStateMatrixOp},
		{Name: "srcover-reassoc", Apply: srcOverReassoc},
		{Name: "concat-srcover-equiv", Apply: concatSrcOverEquiv},
		{Name: "srcover-extract-cliprect", Apply: srcOverExtractClipRect},
		{Name: "merge-srcover-split", Apply: mergeSrcOverSplit},
	}
}

// AsRuleFuncs adapts a Rule slice to the egraph.RuleFunc slice the
// Runner takes, so internal/rewrite's Rule stays the vocabulary callers
// (pictureopt.Optimize, tests) write and log against.
func AsRuleFuncs(rules []Rule) []egraph.RuleFunc {
	out := make([]egraph.RuleFunc, len(rules))
	for i, r := range rules {
		out[i] = r.Apply
	}
	return out
}
