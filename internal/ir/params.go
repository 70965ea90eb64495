package ir

import "github.com/gogpu/pictureopt/command"

// ClipRectParams is the parameter leaf for a ClipRect term (either sort).
type ClipRectParams struct {
	Bounds    command.Rect
	Op        command.ClipOp
	AntiAlias bool
}

// Mergeable reports whether two ClipRectParams may be folded into one by
// intersecting their bounds: both must be Intersect (never Difference)
// and share the same antialiasing flag.
func (p ClipRectParams) Mergeable(outer ClipRectParams) bool {
	return p.Op == command.ClipIntersect &&
		outer.Op == command.ClipIntersect &&
		p.AntiAlias == outer.AntiAlias
}

// Merge returns the folded ClipRectParams for p nested inside outer.
// Callers must check Mergeable first.
func (p ClipRectParams) Merge(outer ClipRectParams) ClipRectParams {
	return ClipRectParams{
		Bounds:    p.Bounds.Intersect(outer.Bounds),
		Op:        command.ClipIntersect,
		AntiAlias: p.AntiAlias,
	}
}

// MatrixOpParams is the parameter leaf for an opaque state-modifying
// effect (ClipPath, ClipRRect) addressed by the index of its original
// command. It is carried by the dedicated MatrixOp / StateMatrixOp
// operators, not by Concat44, so an opaque effect is never mistaken for
// a matrix multiply.
type MatrixOpParams struct {
	Index int32
}

// MergeParams is the parameter leaf describing a save-layer's own paint
// and bounds, independent of the saved canvas state (see
// MergeParamsWithState).
type MergeParams struct {
	Index      int32
	Paint      command.Paint
	HasBackdrop bool
	HasBounds  bool
	Bounds     command.Rect
}

// IsTrivial reports whether this MergeParams describes a save-layer that
// contributes nothing beyond plain composition: alpha=255, SrcOver, no
// filters, no backdrop, no bounds.
func (mp MergeParams) IsTrivial() bool {
	return mp.Paint.IsPlainSrcOver() &&
		mp.Paint.Color.A() == 255 &&
		!mp.HasBackdrop &&
		!mp.HasBounds
}

// MergeParamsWithState pairs a save-layer's own paint/bounds with the
// canvas State that was active at the point the SaveLayer was recorded.
type MergeParamsWithState struct {
	MP    MergeParams
	State State
}

// AlphaParams is the parameter leaf for a virtual ApplyAlpha staging op.
type AlphaParams struct {
	Alpha uint8
}
