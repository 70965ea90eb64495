// Package canon provides a semantic canonicalization of Picture IR
// terms for testing: it flattens the (possibly still virtual-op-laden)
// tree produced by internal/lift, or the virtual-op-free tree produced
// by internal/egraph.Extractor, into an ordered list of resolved draw
// calls. Two trees that canonicalize to equal draw lists paint the same
// pixels, regardless of how differently their IR is shaped — this is
// what lets property tests compare "before rewriting" against "after
// rewriting" without replaying either one against a reference canvas.
package canon

import (
	"fmt"

	"github.com/gogpu/pictureopt/command"
	"github.com/gogpu/pictureopt/internal/ir"
)

// StateStep is one fully-resolved canvas-state effect in application
// order. Exactly one of its payload fields is meaningful, selected by Op.
type StateStep struct {
	Op             ir.Op
	Clip           ir.ClipRectParams
	Matrix         ir.M44Leaf
	MatrixOpParams ir.MatrixOpParams
}

// CanonicalDraw is one resolved leaf draw: its original record index and
// name, its paint with every ancestor alpha already folded in, and the
// ordered chain of state effects active when it executes.
type CanonicalDraw struct {
	Index int32
	Name  string
	Paint command.Paint
	State []StateStep
}

// Equal reports whether a and b represent the same sequence of draws
// with the same effective paint and state at each one.
func Equal(a, b []CanonicalDraw) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Index != b[i].Index || a[i].Name != b[i].Name || a[i].Paint != b[i].Paint {
			return false
		}
		if len(a[i].State) != len(b[i].State) {
			return false
		}
		for j := range a[i].State {
			if a[i].State[j] != b[i].State[j] {
				return false
			}
		}
	}
	return true
}

// Flatten walks s and returns its canonical draw list. It accepts both
// raw lift.Lift output (still carrying ApplyAlpha/ApplyState/
// ApplyFilterWithState) and fully-extracted, virtual-op-free IR.
func Flatten(s ir.Surface) ([]CanonicalDraw, error) {
	return flattenSurface(s, nil, 255)
}

func flattenSurface(s ir.Surface, state []StateStep, alpha uint8) ([]CanonicalDraw, error) {
	switch x := s.(type) {
	case ir.BlankSurface:
		return nil, nil

	case ir.Draw:
		paint := x.Paint.WithAlpha(foldAlpha(alpha, x.Paint.Color.A()))
		return []CanonicalDraw{{Index: x.Index, Name: x.Name, Paint: paint, State: state}}, nil

	case ir.Concat:
		lhs, err := flattenSurface(x.Lhs, state, alpha)
		if err != nil {
			return nil, err
		}
		rhs, err := flattenSurface(x.Rhs, state, alpha)
		if err != nil {
			return nil, err
		}
		return append(lhs, rhs...), nil

	case ir.SrcOver:
		bottom, err := flattenSurface(x.Bottom, state, alpha)
		if err != nil {
			return nil, err
		}
		top, err := flattenSurface(x.Top, state, alpha)
		if err != nil {
			return nil, err
		}
		return append(bottom, top...), nil

	case ir.ClipRect:
		return flattenSurface(x.Base, appendState(state, StateStep{Op: ir.OpStateClipRect, Clip: x.Params}), alpha)

	case ir.MatrixOp:
		return flattenSurface(x.Base, appendState(state, StateStep{Op: ir.OpStateMatrixOp, MatrixOpParams: x.Params}), alpha)

	case ir.Concat44:
		return flattenSurface(x.Base, appendState(state, StateStep{Op: ir.OpStateConcat44, Matrix: x.Matrix}), alpha)

	case ir.ApplyAlpha:
		return flattenSurface(x.Base, state, foldAlpha(alpha, x.Params.Alpha))

	case ir.ApplyState:
		steps, err := flattenState(x.State)
		if err != nil {
			return nil, err
		}
		return flattenSurface(x.Base, appendState(state, steps...), alpha)

	case ir.ApplyFilterWithState:
		steps, err := flattenState(x.Params.State)
		if err != nil {
			return nil, err
		}
		innerAlpha := foldAlpha(alpha, x.Params.MP.Paint.Color.A())
		return flattenSurface(x.Base, appendState(state, steps...), innerAlpha)

	case ir.Merge:
		dst, err := flattenSurface(x.Dst, state, alpha)
		if err != nil {
			return nil, err
		}
		steps, err := flattenState(x.Params.State)
		if err != nil {
			return nil, err
		}
		srcAlpha := foldAlpha(alpha, x.Params.MP.Paint.Color.A())
		src, err := flattenSurface(x.Src, appendState(state, steps...), srcAlpha)
		if err != nil {
			return nil, err
		}
		return append(dst, src...), nil

	default:
		return nil, fmt.Errorf("canon: unexpected surface op %s", s.Op())
	}
}

// flattenState resolves a State-sort chain into chronological order: the
// chain nests most-recently-applied outermost (Base walks back to
// BlankState), so the natural recursive collection is reverse-chronological
// and must be reversed before appending to an ambient state list.
func flattenState(st ir.State) ([]StateStep, error) {
	var reverseChrono []StateStep
	for {
		switch x := st.(type) {
		case ir.BlankState, nil:
			reverseSteps(reverseChrono)
			return reverseChrono, nil
		case ir.StateClipRect:
			reverseChrono = append(reverseChrono, StateStep{Op: ir.OpStateClipRect, Clip: x.Params})
			st = x.Base
		case ir.StateConcat44:
			reverseChrono = append(reverseChrono, StateStep{Op: ir.OpStateConcat44, Matrix: x.Matrix})
			st = x.Base
		case ir.StateMatrixOp:
			reverseChrono = append(reverseChrono, StateStep{Op: ir.OpStateMatrixOp, MatrixOpParams: x.Params})
			st = x.Base
		default:
			return nil, fmt.Errorf("canon: unexpected state op %s", st.Op())
		}
	}
}

func reverseSteps(steps []StateStep) {
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}
}

// appendState returns a fresh slice with extra appended after base,
// never aliasing base's backing array across sibling recursions.
func appendState(base []StateStep, extra ...StateStep) []StateStep {
	out := make([]StateStep, 0, len(base)+len(extra))
	out = append(out, base...)
	out = append(out, extra...)
	return out
}

func foldAlpha(a, b uint8) uint8 {
	return uint8((uint16(a) * uint16(b)) / 255)
}
