package ir

import "github.com/gogpu/pictureopt/command"

// Surface is the sealed interface for Surface-sort terms: a picture,
// built up from drawing commands composited with Concat/SrcOver and
// staged by virtual ops (ApplyAlpha, ApplyState, ApplyFilterWithState)
// that the rewrite catalog must eliminate before extraction.
type Surface interface {
	Op() Op
	surfaceMarker()
}

// BlankSurface is the Surface-sort identity: an empty picture.
type BlankSurface struct{}

func (BlankSurface) Op() Op         { return OpBlankSurface }
func (BlankSurface) surfaceMarker() {}

// Draw is a single leaf drawing command, addressed by the index of its
// source command.DrawCommand.
type Draw struct {
	Index int32
	Name  string
	Paint command.Paint
}

func (Draw) Op() Op         { return OpDraw }
func (Draw) surfaceMarker() {}

// Concat sequences two surfaces: Lhs painted first, Rhs painted over it,
// both under the same canvas state.
type Concat struct {
	Lhs, Rhs Surface
}

func (Concat) Op() Op         { return OpConcat }
func (Concat) surfaceMarker() {}

// SrcOver composites Top over Bottom using standard source-over
// alpha blending.
type SrcOver struct {
	Bottom, Top Surface
}

func (SrcOver) Op() Op         { return OpSrcOver }
func (SrcOver) surfaceMarker() {}

// ClipRect restricts Base to the intersection (or difference) of its
// current clip with Params.Bounds.
type ClipRect struct {
	Base   Surface
	Params ClipRectParams
}

func (ClipRect) Op() Op         { return OpClipRect }
func (ClipRect) surfaceMarker() {}

// MatrixOp applies an opaque state-modifying effect (ClipPath,
// ClipRRect) to Base, addressed by the index of its original command.
type MatrixOp struct {
	Base   Surface
	Params MatrixOpParams
}

func (MatrixOp) Op() Op         { return OpMatrixOp }
func (MatrixOp) surfaceMarker() {}

// Concat44 concatenates a 4x4 matrix onto Base's transform.
type Concat44 struct {
	Base   Surface
	Matrix M44Leaf
}

func (Concat44) Op() Op         { return OpConcat44 }
func (Concat44) surfaceMarker() {}

// ApplyAlpha is a virtual staging op recording that Base was drawn
// through a SaveLayer whose only effect is a constant alpha. The
// rewrite catalog must fold it into the leaf paints of Base (or pack it
// with ApplyFilterWithState into a Merge) before extraction; if one
// survives to extraction, lowering reports ErrVirtualOpSurvivor.
type ApplyAlpha struct {
	Base   Surface
	Params AlphaParams
}

func (ApplyAlpha) Op() Op         { return OpApplyAlpha }
func (ApplyAlpha) surfaceMarker() {}

// ApplyState is a virtual staging op recording that Base was drawn
// under the canvas State current at that point of the record (the
// lifter wraps every draw and every Save block in one), pending the
// State being peeled off onto Base one layer at a time and the
// remaining ApplyState(Base, BlankState) being folded away.
type ApplyState struct {
	Base  Surface
	State State
}

func (ApplyState) Op() Op         { return OpApplyState }
func (ApplyState) surfaceMarker() {}

// ApplyFilterWithState is a virtual staging op recording a save-layer's
// paint (filters, alpha, backdrop, bounds) plus the State active at that
// save-layer. It is either collapsed onto Base (trivial paint, blank
// state) or packed back into Merge; surviving to extraction is a fatal
// invariant violation.
type ApplyFilterWithState struct {
	Base   Surface
	Params MergeParamsWithState
}

func (ApplyFilterWithState) Op() Op         { return OpApplyFilterWithState }
func (ApplyFilterWithState) surfaceMarker() {}

// Merge is the real (non-virtual) save-layer node: Dst is the picture
// already accumulated before the save-layer, Src is the save-layer's
// own content, composited onto Dst through Params.MP's paint (and, when
// Params.State is non-nil, reconstructed under that captured canvas
// state). Lowering opens the layer with a SaveLayer instruction when the
// paint is representable that way, otherwise with a CopyRecord of the
// original SaveLayer command, closes it with Restore, and adds an outer
// Save/Restore only when captured state had to be replayed.
type Merge struct {
	Dst, Src Surface
	Params   MergeParamsWithState
}

func (Merge) Op() Op         { return OpMerge }
func (Merge) surfaceMarker() {}
