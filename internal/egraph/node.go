package egraph

import (
	"fmt"

	"github.com/gogpu/pictureopt/command"
	"github.com/gogpu/pictureopt/internal/ir"
)

// Node is a single hash-consed e-node: an operator applied to up to
// three child e-classes, plus an opaque comparable leaf payload for
// operators that carry data of their own (a drawn command's
// index/name/paint, a clip rect, a matrix, ...). Node is deliberately a
// plain comparable struct so it can be used directly as a hashcons map
// key; DrawLeaf and the ir parameter-leaf types it may hold are
// themselves comparable. Merge is the only operator needing all three
// slots (dst, src, captured state); everything else uses one or two.
type Node struct {
	Op   ir.Op
	Kid0 Id
	Kid1 Id
	Kid2 Id
	Leaf any
}

// DrawLeaf is the Leaf payload of an ir.OpDraw node. Paint is mutable
// across rewriting (alpha-folding rewrites a Draw's Paint in place by
// inserting a new, distinct DrawLeaf rather than mutating a shared
// value, since Node must stay comparable and immutable once hash-consed).
type DrawLeaf struct {
	Index int32
	Name  string
	Paint command.Paint
}

// Leaf0 builds a childless node (BlankSurface, BlankState, or a bare
// parameter leaf with no Leaf payload of its own).
func Leaf0(op ir.Op) Node {
	return Node{Op: op, Kid0: noId, Kid1: noId, Kid2: noId}
}

// LeafData builds a childless node carrying a leaf payload (Draw and
// the parameter-leaf operators).
func LeafData(op ir.Op, leaf any) Node {
	return Node{Op: op, Kid0: noId, Kid1: noId, Kid2: noId, Leaf: leaf}
}

// Unary builds a one-child node (ClipRect, MatrixOp, Concat44,
// ApplyAlpha, and their State-sort counterparts), optionally carrying a
// leaf payload (the clip rect, the matrix, the alpha).
func Unary(op ir.Op, base Id, leaf any) Node {
	return Node{Op: op, Kid0: base, Kid1: noId, Kid2: noId, Leaf: leaf}
}

// Binary builds a two-child node (Concat, SrcOver, ApplyState, and
// ApplyFilterWithState where Kid1 is the captured State e-class, or
// noId when no state was captured).
func Binary(op ir.Op, a, b Id, leaf any) Node {
	return Node{Op: op, Kid0: a, Kid1: b, Kid2: noId, Leaf: leaf}
}

// Ternary builds a three-child node: only OpMerge uses this shape
// (Kid0=dst, Kid1=src, Kid2=captured state e-class or noId).
func Ternary(op ir.Op, dst, src, state Id, leaf any) Node {
	return Node{Op: op, Kid0: dst, Kid1: src, Kid2: state, Leaf: leaf}
}

// Children returns the node's non-noId child ids, in order.
func (n Node) Children() []Id {
	var out []Id
	if n.Kid0 != noId {
		out = append(out, n.Kid0)
	}
	if n.Kid1 != noId {
		out = append(out, n.Kid1)
	}
	if n.Kid2 != noId {
		out = append(out, n.Kid2)
	}
	return out
}

func (n Node) String() string {
	if n.Leaf != nil {
		return fmt.Sprintf("%s(%d,%d,%d)[%v]", n.Op, n.Kid0, n.Kid1, n.Kid2, n.Leaf)
	}
	return fmt.Sprintf("%s(%d,%d,%d)", n.Op, n.Kid0, n.Kid1, n.Kid2)
}
