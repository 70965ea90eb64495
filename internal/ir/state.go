package ir

// State is the sealed interface for State-sort terms: the canvas
// transform/clip state threaded through a Surface term, reconstructed
// independently of pixel content during lowering.
type State interface {
	Op() Op
	stateMarker()
}

// BlankState is the State-sort identity: no clip, identity matrix.
type BlankState struct{}

func (BlankState) Op() Op      { return OpBlankState }
func (BlankState) stateMarker() {}

// StateClipRect intersects (or subtracts) a rect from the clip of Base.
type StateClipRect struct {
	Base   State
	Params ClipRectParams
}

func (StateClipRect) Op() Op      { return OpStateClipRect }
func (StateClipRect) stateMarker() {}

// StateConcat44 concatenates a 4x4 matrix onto Base's transform. See
// StateMatrixOp for the sibling opaque-effect constructor this package
// uses instead of overloading Concat44 with ClipPath/ClipRRect.
type StateConcat44 struct {
	Base   State
	Matrix M44Leaf
}

func (StateConcat44) Op() Op      { return OpStateConcat44 }
func (StateConcat44) stateMarker() {}

// StateMatrixOp applies an opaque state-modifying effect (ClipPath,
// ClipRRect) to Base, addressed by the index of its original command.
type StateMatrixOp struct {
	Base   State
	Params MatrixOpParams
}

func (StateMatrixOp) Op() Op      { return OpStateMatrixOp }
func (StateMatrixOp) stateMarker() {}

// M44Leaf wraps a 4x4 matrix parameter leaf.
type M44Leaf struct {
	Value [16]float64
}

func (M44Leaf) Op() Op { return OpM44 }
