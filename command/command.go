// Package command defines the linear, stack-oriented drawing record that
// pictureopt consumes and, in instruction form (see package program),
// produces.
//
// A Record is the external boundary type for this module: it is what a
// recording canvas (or a decoded wire-format picture) hands to
// pictureopt.Optimize, and it never leaves the module except unchanged.
// Unrecognized DrawCommand names are accepted as opaque leaves; any other
// command kind fails lift with ErrUnsupportedCommand.
package command

// CommandType identifies the kind of a recorded command.
type CommandType uint8

const (
	CmdDrawCommand CommandType = iota
	CmdClipRect
	CmdConcat44
	CmdSave
	CmdSaveLayer
	CmdRestore
)

var commandTypeNames = [...]string{
	CmdDrawCommand: "DrawCommand",
	CmdClipRect:    "ClipRect",
	CmdConcat44:    "Concat44",
	CmdSave:        "Save",
	CmdSaveLayer:   "SaveLayer",
	CmdRestore:     "Restore",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by every recorded command variant.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// DrawCommand is any leaf draw. Unknown names fall into this category;
// only the reserved names ClipPath and ClipRRect are treated specially by
// the lifter as opaque state effects rather than draws (see
// internal/lift).
type DrawCommand struct {
	Name  string
	Paint Paint
}

// Type implements Command.
func (DrawCommand) Type() CommandType { return CmdDrawCommand }

// Names recognized by the lifter as opaque state-modifying effects rather
// than leaf draws, despite arriving as a DrawCommand.
const (
	NameClipPath  = "ClipPath"
	NameClipRRect = "ClipRRect"
)

// ClipRectCommand intersects or subtracts a rectangle from the clip.
type ClipRectCommand struct {
	Bounds    Rect
	Op        ClipOp
	AntiAlias bool
}

// Type implements Command.
func (ClipRectCommand) Type() CommandType { return CmdClipRect }

// Concat44Command multiplies the current transform by a 4x4 matrix.
type Concat44Command struct {
	Matrix M44
}

// Type implements Command.
func (Concat44Command) Type() CommandType { return CmdConcat44 }

// SaveCommand pushes the current graphics state.
type SaveCommand struct{}

// Type implements Command.
func (SaveCommand) Type() CommandType { return CmdSave }

// SaveLayerCommand pushes the current graphics state and begins
// accumulating draws into a new offscreen layer, composited back with
// Paint (and, if set, a backdrop filter and/or bounds) on the matching
// RestoreCommand.
type SaveLayerCommand struct {
	Paint    Paint
	Bounds   *Rect // nil if unbounded
	Backdrop bool  // true if a backdrop filter is present (opaque)
}

// Type implements Command.
func (SaveLayerCommand) Type() CommandType { return CmdSaveLayer }

// RestoreCommand pops the graphics state pushed by the matching Save or
// SaveLayer.
type RestoreCommand struct{}

// Type implements Command.
func (RestoreCommand) Type() CommandType { return CmdRestore }

// Entry pairs a Command with its stable original position. Index is
// preserved end to end so that a lowered program can reference the
// original byte blob at this position via a CopyRecord instruction
// without the optimizer ever interpreting that blob.
type Entry struct {
	Index   int32
	Command Command
}

// Record is an ordered sequence of recorded commands.
type Record []Entry

// Len returns the number of entries in the record.
func (r Record) Len() int { return len(r) }
