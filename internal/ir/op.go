// Package ir defines the Picture IR: a closed algebraic term language
// over two sorts, Surface and State, used by the lifter, the rewrite
// catalog, and the lowerer. Terms are plain Go values (interfaces over
// concrete per-operator structs, mirroring the Command-interface pattern
// used for the external command/program boundary types) until the
// e-graph interns them; after extraction they are plain values again.
package ir

// Sort distinguishes the two term sorts of the Picture IR.
type Sort uint8

const (
	SortSurface Sort = iota
	SortState
)

func (s Sort) String() string {
	switch s {
	case SortSurface:
		return "Surface"
	case SortState:
		return "State"
	default:
		return "Unknown"
	}
}

// Op tags every operator in the IR language. It is the vocabulary the
// e-graph interns against and the cost function switches on.
type Op uint8

const (
	// Surface sort.
	OpBlankSurface Op = iota
	OpDraw
	OpConcat
	OpSrcOver
	OpClipRect // Surface-sort ClipRect(s, p)
	OpMatrixOp // Surface-sort MatrixOp(s, p)
	OpConcat44 // Surface-sort Concat44(s, p)
	OpApplyAlpha
	OpApplyState
	OpApplyFilterWithState
	OpMerge

	// State sort.
	OpBlankState
	OpStateClipRect
	OpStateConcat44
	OpStateMatrixOp

	// Parameter leaves (own e-classes once interned; see internal/egraph).
	OpM44
	OpClipRectParams
	OpMatrixOpParams
	OpMergeParams
	OpMergeParamsWithState
	OpAlphaParams
)

var opNames = [...]string{
	OpBlankSurface:         "BlankSurface",
	OpDraw:                 "DrawCommand",
	OpConcat:               "Concat",
	OpSrcOver:              "SrcOver",
	OpClipRect:             "ClipRect",
	OpMatrixOp:             "MatrixOp",
	OpConcat44:             "Concat44",
	OpApplyAlpha:           "ApplyAlpha",
	OpApplyState:           "ApplyState",
	OpApplyFilterWithState: "ApplyFilterWithState",
	OpMerge:                "Merge",
	OpBlankState:           "BlankState",
	OpStateClipRect:        "ClipRect",
	OpStateConcat44:        "Concat44",
	OpStateMatrixOp:        "MatrixOp",
	OpM44:                  "M44",
	OpClipRectParams:       "ClipRectParams",
	OpMatrixOpParams:       "MatrixOpParams",
	OpMergeParams:          "MergeParams",
	OpMergeParamsWithState: "MergeParamsWithState",
	OpAlphaParams:          "AlphaParams",
}

// String returns the display name of the operator.
func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return "Unknown"
}

// Sort reports which sort an operator belongs to.
func (o Op) Sort() Sort {
	switch o {
	case OpBlankState, OpStateClipRect, OpStateConcat44, OpStateMatrixOp:
		return SortState
	default:
		return SortSurface
	}
}

// IsVirtual reports whether o is one of the virtual staging operators
// that must never survive extraction (ApplyAlpha, ApplyState,
// ApplyFilterWithState).
func (o Op) IsVirtual() bool {
	return o == OpApplyAlpha || o == OpApplyState || o == OpApplyFilterWithState
}
