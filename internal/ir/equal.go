package ir

// Equal reports whether two Surface terms are structurally identical.
// Used by tests; the e-graph itself establishes equality through
// hash-consing rather than by calling this on every insert.
func Equal(a, b Surface) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Op() != b.Op() {
		return false
	}
	switch x := a.(type) {
	case BlankSurface:
		_ = x
		return true
	case Draw:
		y := b.(Draw)
		return x.Index == y.Index && x.Name == y.Name && x.Paint == y.Paint
	case Concat:
		y := b.(Concat)
		return Equal(x.Lhs, y.Lhs) && Equal(x.Rhs, y.Rhs)
	case SrcOver:
		y := b.(SrcOver)
		return Equal(x.Bottom, y.Bottom) && Equal(x.Top, y.Top)
	case ClipRect:
		y := b.(ClipRect)
		return Equal(x.Base, y.Base) && x.Params == y.Params
	case MatrixOp:
		y := b.(MatrixOp)
		return Equal(x.Base, y.Base) && x.Params == y.Params
	case Concat44:
		y := b.(Concat44)
		return Equal(x.Base, y.Base) && x.Matrix == y.Matrix
	case ApplyAlpha:
		y := b.(ApplyAlpha)
		return Equal(x.Base, y.Base) && x.Params == y.Params
	case ApplyState:
		y := b.(ApplyState)
		return Equal(x.Base, y.Base) && StateEqual(x.State, y.State)
	case ApplyFilterWithState:
		y := b.(ApplyFilterWithState)
		return Equal(x.Base, y.Base) && mergeParamsWithStateEqual(x.Params, y.Params)
	case Merge:
		y := b.(Merge)
		return Equal(x.Dst, y.Dst) && Equal(x.Src, y.Src) && mergeParamsWithStateEqual(x.Params, y.Params)
	default:
		return false
	}
}

func mergeParamsWithStateEqual(x, y MergeParamsWithState) bool {
	if x.MP != y.MP {
		return false
	}
	return StateEqual(x.State, y.State)
}

// StateEqual reports whether two State terms are structurally identical.
func StateEqual(a, b State) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Op() != b.Op() {
		return false
	}
	switch x := a.(type) {
	case BlankState:
		return true
	case StateClipRect:
		y := b.(StateClipRect)
		return StateEqual(x.Base, y.Base) && x.Params == y.Params
	case StateConcat44:
		y := b.(StateConcat44)
		return StateEqual(x.Base, y.Base) && x.Matrix == y.Matrix
	case StateMatrixOp:
		y := b.(StateMatrixOp)
		return StateEqual(x.Base, y.Base) && x.Params == y.Params
	default:
		return false
	}
}
