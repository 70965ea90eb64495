// Package lift converts a linear command.Record into a single Picture
// IR term (internal/ir), by walking the record as a stack machine with
// two implicit registers — the accumulated Surface and the current
// State — recursing into Save/SaveLayer scopes exactly as deep as the
// original canvas' save stack went.
package lift

import (
	"errors"
	"fmt"

	"github.com/gogpu/pictureopt/command"
	"github.com/gogpu/pictureopt/internal/ir"
	"github.com/gogpu/pictureopt/metadata"
)

// ErrUnsupportedCommand is the sentinel wrapped by UnsupportedCommandError.
// Check with errors.Is.
var ErrUnsupportedCommand = errors.New("lift: unsupported command")

// UnsupportedCommandError names the command kind and original index
// that lift could not place into the IR language.
type UnsupportedCommandError struct {
	TypeName string
	Index    int32
}

func (e *UnsupportedCommandError) Error() string {
	return fmt.Sprintf("lift: unsupported command %s at index %d", e.TypeName, e.Index)
}

func (e *UnsupportedCommandError) Unwrap() error { return ErrUnsupportedCommand }

// Lift produces one Surface-sorted IR term for rec. It is pure: it
// allocates only IR nodes and never mutates rec. The first command of
// an unrecognized kind aborts the run with an *UnsupportedCommandError.
func Lift(rec command.Record) (ir.Surface, error) {
	l := &lifter{rec: rec}
	return l.run()
}

// LiftLenient is the legacy front-end's entry point: unrecognized
// command kinds are skipped and recorded in the returned slice instead
// of aborting the run, for callers that would rather best-effort
// optimize a record produced by an older or divergent recorder than
// fail the whole record over one unknown entry.
func LiftLenient(rec command.Record) (ir.Surface, []metadata.UnsupportedCommand, error) {
	l := &lifter{rec: rec, lenient: true}
	surface, err := l.run()
	return surface, l.skipped, err
}

type lifter struct {
	rec     command.Record
	pos     int
	lenient bool
	skipped []metadata.UnsupportedCommand
}

// run processes entries starting at l.pos, returning the accumulated
// Surface when it either hits a RestoreCommand (closing the scope a
// recursive call was entered for) or runs off the end of the record
// (closing the implicit top-level scope). Save and SaveLayer recurse
// into run() to build their inner scope, exactly mirroring the source
// canvas' save-stack nesting via Go's own call stack.
func (l *lifter) run() (ir.Surface, error) {
	surface := ir.Surface(ir.BlankSurface{})
	state := ir.State(ir.BlankState{})

	for l.pos < len(l.rec) {
		entry := l.rec[l.pos]

		switch cmd := entry.Command.(type) {
		case command.RestoreCommand:
			l.pos++
			return surface, nil

		case command.Concat44Command:
			state = ir.StateConcat44{Base: state, Matrix: ir.M44Leaf{Value: cmd.Matrix}}
			l.pos++

		case command.ClipRectCommand:
			state = ir.StateClipRect{Base: state, Params: ir.ClipRectParams{
				Bounds: cmd.Bounds, Op: cmd.Op, AntiAlias: cmd.AntiAlias,
			}}
			l.pos++

		case command.SaveCommand:
			l.pos++
			inner, err := l.run()
			if err != nil {
				return nil, err
			}
			surface = ir.Concat{Lhs: surface, Rhs: ir.ApplyState{Base: inner, State: state}}

		case command.SaveLayerCommand:
			l.pos++
			inner, err := l.run()
			if err != nil {
				return nil, err
			}
			mp := ir.MergeParams{
				Index:       entry.Index,
				Paint:       cmd.Paint,
				HasBackdrop: cmd.Backdrop,
				HasBounds:   cmd.Bounds != nil,
			}
			if cmd.Bounds != nil {
				mp.Bounds = *cmd.Bounds
			}
			surface = ir.Merge{
				Dst: surface, Src: inner,
				Params: ir.MergeParamsWithState{MP: mp, State: state},
			}

		case command.DrawCommand:
			if cmd.Name == command.NameClipPath || cmd.Name == command.NameClipRRect {
				// Neither is a matrix op, so both thread onto the state
				// as the distinct StateMatrixOp constructor rather than
				// as StateConcat44.
				state = ir.StateMatrixOp{Base: state, Params: ir.MatrixOpParams{Index: entry.Index}}
				l.pos++
				continue
			}
			draw := ir.Draw{Index: entry.Index, Name: cmd.Name, Paint: cmd.Paint}
			surface = ir.Concat{Lhs: surface, Rhs: ir.ApplyState{Base: draw, State: state}}
			l.pos++

		default:
			name := entry.Command.Type().String()
			if l.lenient {
				l.skipped = append(l.skipped, metadata.UnsupportedCommand{Name: name, Index: entry.Index})
				l.pos++
				continue
			}
			return nil, &UnsupportedCommandError{TypeName: name, Index: entry.Index}
		}
	}

	return surface, nil
}
