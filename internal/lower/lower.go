// Package lower converts an optimized Picture IR term (internal/ir)
// back into a linear program (package program), the mirror image of
// internal/lift: a recursive structural walk that reconstructs
// Save/Restore brackets and canvas-state instructions from the tree
// shape instead of a stack machine's implicit registers.
package lower

import (
	"errors"
	"fmt"

	"github.com/gogpu/pictureopt/command"
	"github.com/gogpu/pictureopt/internal/ir"
	"github.com/gogpu/pictureopt/program"
)

// ErrVirtualOpSurvivor is the sentinel wrapped by VirtualOpSurvivorError.
var ErrVirtualOpSurvivor = errors.New("lower: virtual op survived extraction")

// VirtualOpSurvivorError reports that the extracted IR still contained
// one of ApplyAlpha/ApplyState/ApplyFilterWithState — a rewrite-catalog
// or cost-function bug, never a property of the input record.
type VirtualOpSurvivorError struct {
	Op ir.Op
}

func (e *VirtualOpSurvivorError) Error() string {
	return fmt.Sprintf("lower: virtual op %s survived extraction", e.Op)
}

func (e *VirtualOpSurvivorError) Unwrap() error { return ErrVirtualOpSurvivor }

// Lower converts s into a linear program.Program. s must be free of
// virtual ops (ApplyAlpha, ApplyState, ApplyFilterWithState); this is
// guaranteed for the output of internal/egraph.Extractor.ToSurface but
// not for a raw internal/lift.Lift result, which still contains
// ApplyState wrapping every draw.
func Lower(s ir.Surface) (program.Program, error) {
	instrs, dirty, err := lowerSurface(s)
	if err != nil {
		return nil, err
	}
	if dirty {
		instrs = bracket(instrs)
	}
	return program.Program(instrs), nil
}

// lowerSurface returns the instructions for s and whether s left canvas
// state dirty: a calling context composing this subtree next to
// siblings must bracket it in Save/Restore before doing so.
func lowerSurface(s ir.Surface) ([]program.Instruction, bool, error) {
	switch x := s.(type) {
	case ir.BlankSurface:
		return nil, false, nil

	case ir.Draw:
		paint := x.Paint
		return []program.Instruction{
			program.CopyRecordInstr{Index: x.Index, Paint: &paint},
		}, false, nil

	case ir.MatrixOp:
		base, _, err := lowerSurface(x.Base)
		if err != nil {
			return nil, false, err
		}
		instr := program.CopyRecordInstr{Index: x.Params.Index}
		return append([]program.Instruction{instr}, base...), true, nil

	case ir.Concat44:
		base, _, err := lowerSurface(x.Base)
		if err != nil {
			return nil, false, err
		}
		instr := program.Concat44Instr{Matrix: command.M44(x.Matrix.Value)}
		return append([]program.Instruction{instr}, base...), true, nil

	case ir.ClipRect:
		base, _, err := lowerSurface(x.Base)
		if err != nil {
			return nil, false, err
		}
		instr := program.ClipRectInstr{
			Bounds: x.Params.Bounds, Op: x.Params.Op, AntiAlias: x.Params.AntiAlias,
		}
		return append([]program.Instruction{instr}, base...), true, nil

	case ir.Concat:
		return lowerComposition(x.Lhs, x.Rhs)

	case ir.SrcOver:
		// SrcOver and Concat coincide under pure source-over composition
		// (see the rewrite catalog's concat-srcover-equiv rule); the
		// extractor may pick either for the same content, so both lower
		// identically.
		return lowerComposition(x.Bottom, x.Top)

	case ir.Merge:
		return lowerMerge(x)

	case ir.ApplyAlpha, ir.ApplyState, ir.ApplyFilterWithState:
		return nil, false, &VirtualOpSurvivorError{Op: s.Op()}

	default:
		return nil, false, &VirtualOpSurvivorError{Op: s.Op()}
	}
}

func lowerComposition(a, b ir.Surface) ([]program.Instruction, bool, error) {
	aInstrs, aDirty, err := lowerSurface(a)
	if err != nil {
		return nil, false, err
	}
	if aDirty {
		aInstrs = bracket(aInstrs)
	}
	bInstrs, bDirty, err := lowerSurface(b)
	if err != nil {
		return nil, false, err
	}
	if bDirty {
		bInstrs = bracket(bInstrs)
	}
	return append(aInstrs, bInstrs...), false, nil
}

// lowerMerge reconstructs a Merge(dst, src, mps) node: dst is lowered
// first (bracketed if it left state dirty), then the save-stack state
// captured at the SaveLayer site is replayed, then the layer itself is
// emitted — as a SaveLayerInstr when the original paint is faithfully
// representable that way, otherwise as a verbatim CopyRecordInstr of the
// original SaveLayer command — bracketing src, and finally the whole
// state-reconstruction-plus-layer emission is wrapped in an outer
// Save/Restore if any state instructions were produced.
func lowerMerge(m ir.Merge) ([]program.Instruction, bool, error) {
	dstInstrs, dstDirty, err := lowerSurface(m.Dst)
	if err != nil {
		return nil, false, err
	}
	if dstDirty {
		dstInstrs = bracket(dstInstrs)
	}

	stateInstrs, err := lowerStateChain(m.Params.State)
	if err != nil {
		return nil, false, err
	}

	srcInstrs, srcDirty, err := lowerSurface(m.Src)
	if err != nil {
		return nil, false, err
	}
	_ = srcDirty // the layer's own Save.../Restore already scopes src

	mp := m.Params.MP
	var layerOpen program.Instruction
	if !mp.HasBackdrop && !mp.Paint.HasAnyFilter() && mp.Paint.Blend == command.BlendSrcOver {
		var bounds *command.Rect
		if mp.HasBounds {
			b := mp.Bounds
			bounds = &b
		}
		layerOpen = program.SaveLayerInstr{Paint: mp.Paint, Bounds: bounds, Backdrop: false}
	} else {
		paint := mp.Paint
		layerOpen = program.CopyRecordInstr{Index: mp.Index, Paint: &paint}
	}

	body := make([]program.Instruction, 0, len(stateInstrs)+len(srcInstrs)+2)
	body = append(body, stateInstrs...)
	body = append(body, layerOpen)
	body = append(body, srcInstrs...)
	body = append(body, program.RestoreInstr{})
	if len(stateInstrs) > 0 {
		body = bracket(body)
	}

	return append(dstInstrs, body...), false, nil
}

// lowerStateChain replays the State term's operations in their original
// chronological order. A State term nests with the most recently applied
// op outermost (Base chains back to BlankState), so the natural recursive
// walk collects them most-recent-first; reversing restores source order.
func lowerStateChain(st ir.State) ([]program.Instruction, error) {
	var reverseChrono []program.Instruction
	for {
		switch x := st.(type) {
		case ir.BlankState, nil:
			reverse(reverseChrono)
			return reverseChrono, nil
		case ir.StateClipRect:
			reverseChrono = append(reverseChrono, program.ClipRectInstr{
				Bounds: x.Params.Bounds, Op: x.Params.Op, AntiAlias: x.Params.AntiAlias,
			})
			st = x.Base
		case ir.StateConcat44:
			reverseChrono = append(reverseChrono, program.Concat44Instr{Matrix: command.M44(x.Matrix.Value)})
			st = x.Base
		case ir.StateMatrixOp:
			reverseChrono = append(reverseChrono, program.CopyRecordInstr{Index: x.Params.Index})
			st = x.Base
		default:
			return nil, &VirtualOpSurvivorError{Op: st.Op()}
		}
	}
}

func reverse(instrs []program.Instruction) {
	for i, j := 0, len(instrs)-1; i < j; i, j = i+1, j-1 {
		instrs[i], instrs[j] = instrs[j], instrs[i]
	}
}

func bracket(instrs []program.Instruction) []program.Instruction {
	out := make([]program.Instruction, 0, len(instrs)+2)
	out = append(out, program.SaveInstr{})
	out = append(out, instrs...)
	out = append(out, program.RestoreInstr{})
	return out
}
