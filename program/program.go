// Package program defines the linear instruction stream pictureopt
// produces. It mirrors package command's shape but is a distinct type:
// lowering reconstructs Save/Restore pairing and state from the optimized
// IR tree, it does not simply replay the input record.
package program

import "github.com/gogpu/pictureopt/command"

// InstructionType identifies the kind of an emitted instruction.
type InstructionType uint8

const (
	InstrSave InstructionType = iota
	InstrRestore
	InstrSaveLayer
	InstrClipRect
	InstrConcat44
	InstrCopyRecord
)

var instructionTypeNames = [...]string{
	InstrSave:       "Save",
	InstrRestore:    "Restore",
	InstrSaveLayer:  "SaveLayer",
	InstrClipRect:   "ClipRect",
	InstrConcat44:   "Concat44",
	InstrCopyRecord: "CopyRecord",
}

// String returns the string representation of an InstructionType.
func (t InstructionType) String() string {
	if int(t) < len(instructionTypeNames) {
		return instructionTypeNames[t]
	}
	return "Unknown"
}

// Instruction is the interface implemented by every emitted instruction
// variant.
type Instruction interface {
	Type() InstructionType
}

// SaveInstr pushes the canvas state.
type SaveInstr struct{}

// Type implements Instruction.
func (SaveInstr) Type() InstructionType { return InstrSave }

// RestoreInstr pops the canvas state.
type RestoreInstr struct{}

// Type implements Instruction.
func (RestoreInstr) Type() InstructionType { return InstrRestore }

// SaveLayerInstr begins an offscreen layer composited back with Paint on
// the matching RestoreInstr. Emitted only when the lowerer can represent
// the merge faithfully this way (see CopyRecordInstr for the fallback).
type SaveLayerInstr struct {
	Paint    command.Paint
	Bounds   *command.Rect
	Backdrop bool
}

// Type implements Instruction.
func (SaveLayerInstr) Type() InstructionType { return InstrSaveLayer }

// ClipRectInstr intersects or subtracts a rectangle from the clip.
type ClipRectInstr struct {
	Bounds    command.Rect
	Op        command.ClipOp
	AntiAlias bool
}

// Type implements Instruction.
func (ClipRectInstr) Type() InstructionType { return InstrClipRect }

// Concat44Instr multiplies the current transform by a matrix.
type Concat44Instr struct {
	Matrix command.M44
}

// Type implements Instruction.
func (Concat44Instr) Type() InstructionType { return InstrConcat44 }

// CopyRecordInstr directs the consumer to replay the original command at
// the given input index verbatim — used to preserve opaque command
// bodies (filters, shaders, unrecognized draws) that the optimizer never
// interprets. Paint, if non-nil, overrides the original command's paint
// (e.g. after an alpha fold); a nil Paint means replay unchanged.
type CopyRecordInstr struct {
	Index int32
	Paint *command.Paint
}

// Type implements Instruction.
func (CopyRecordInstr) Type() InstructionType { return InstrCopyRecord }

// Program is the linear instruction stream a host canvas replays.
type Program []Instruction

// Len returns the number of instructions in the program.
func (p Program) Len() int { return len(p) }

// Count returns the number of instructions of the given type.
func (p Program) Count(t InstructionType) int {
	n := 0
	for _, instr := range p {
		if instr.Type() == t {
			n++
		}
	}
	return n
}
