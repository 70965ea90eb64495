package lift

import (
	"errors"
	"testing"

	"github.com/gogpu/pictureopt/command"
	"github.com/gogpu/pictureopt/internal/ir"
)

func rec(entries ...command.Command) command.Record {
	r := make(command.Record, len(entries))
	for i, c := range entries {
		r[i] = command.Entry{Index: int32(i), Command: c}
	}
	return r
}

func TestLiftBareDraw(t *testing.T) {
	r := rec(command.DrawCommand{Name: "DrawRect", Paint: command.DefaultPaint()})
	got, err := Lift(r)
	if err != nil {
		t.Fatalf("Lift: %v", err)
	}
	want := ir.Concat{
		Lhs: ir.BlankSurface{},
		Rhs: ir.ApplyState{
			Base:  ir.Draw{Index: 0, Name: "DrawRect", Paint: command.DefaultPaint()},
			State: ir.BlankState{},
		},
	}
	if !ir.Equal(got, want) {
		t.Errorf("Lift() = %s, want %s", ir.Sprint(got), ir.Sprint(want))
	}
}

func TestLiftClipRectThreadsState(t *testing.T) {
	bounds := command.NewRect(0, 0, 10, 10)
	r := rec(
		command.ClipRectCommand{Bounds: bounds, Op: command.ClipIntersect, AntiAlias: true},
		command.DrawCommand{Name: "DrawRect", Paint: command.DefaultPaint()},
	)
	got, err := Lift(r)
	if err != nil {
		t.Fatalf("Lift: %v", err)
	}
	applyState, ok := got.(ir.Concat).Rhs.(ir.ApplyState)
	if !ok {
		t.Fatal("expected ApplyState wrapping the draw")
	}
	clip, ok := applyState.State.(ir.StateClipRect)
	if !ok {
		t.Fatal("expected clip state threaded onto the draw")
	}
	if clip.Params.Bounds != bounds || clip.Params.Op != command.ClipIntersect || !clip.Params.AntiAlias {
		t.Errorf("unexpected clip params: %+v", clip.Params)
	}
}

func TestLiftSaveRestoreRecursesAndPreservesOuterState(t *testing.T) {
	r := rec(
		command.SaveCommand{},
		command.DrawCommand{Name: "DrawOval", Paint: command.DefaultPaint()},
		command.RestoreCommand{},
		command.DrawCommand{Name: "DrawRect", Paint: command.DefaultPaint()},
	)
	got, err := Lift(r)
	if err != nil {
		t.Fatalf("Lift: %v", err)
	}
	outer, ok := got.(ir.Concat)
	if !ok {
		t.Fatal("expected a Concat at the top level")
	}
	second, ok := outer.Rhs.(ir.ApplyState)
	if !ok || second.Base.(ir.Draw).Name != "DrawRect" {
		t.Fatal("expected the post-Restore draw to be the final Concat's Rhs")
	}
	if _, ok := second.State.(ir.BlankState); !ok {
		t.Error("expected outer state to remain BlankState: Save/Restore does not leak")
	}
}

func TestLiftSaveLayerProducesMerge(t *testing.T) {
	r := rec(
		command.SaveLayerCommand{Paint: command.DefaultPaint().WithAlpha(128)},
		command.DrawCommand{Name: "DrawRect", Paint: command.DefaultPaint()},
		command.RestoreCommand{},
	)
	got, err := Lift(r)
	if err != nil {
		t.Fatalf("Lift: %v", err)
	}
	merge, ok := got.(ir.Merge)
	if !ok {
		t.Fatalf("expected ir.Merge, got %T", got)
	}
	if merge.Params.MP.Paint.Color.A() != 128 {
		t.Errorf("merge alpha = %d, want 128", merge.Params.MP.Paint.Color.A())
	}
	if _, ok := merge.Dst.(ir.BlankSurface); !ok {
		t.Error("expected Dst to be the (empty) accumulated surface before the layer")
	}
}

func TestLiftClipPathIsOverloadedAsMatrixOp(t *testing.T) {
	r := rec(
		command.DrawCommand{Name: command.NameClipPath},
		command.DrawCommand{Name: "DrawRect", Paint: command.DefaultPaint()},
	)
	got, err := Lift(r)
	if err != nil {
		t.Fatalf("Lift: %v", err)
	}
	applyState := got.(ir.Concat).Rhs.(ir.ApplyState)
	mop, ok := applyState.State.(ir.StateMatrixOp)
	if !ok {
		t.Fatalf("expected ClipPath to thread as StateMatrixOp, got %T", applyState.State)
	}
	if mop.Params.Index != 0 {
		t.Errorf("MatrixOpParams.Index = %d, want 0 (the ClipPath command's own index)", mop.Params.Index)
	}
}

type fakeCommand struct{}

func (fakeCommand) Type() command.CommandType { return command.CommandType(250) }

func TestLiftStrictAbortsOnUnsupportedCommand(t *testing.T) {
	r := rec(fakeCommand{})
	_, err := Lift(r)
	if err == nil {
		t.Fatal("expected an error")
	}
	if !errors.Is(err, ErrUnsupportedCommand) {
		t.Errorf("expected errors.Is(err, ErrUnsupportedCommand), got %v", err)
	}
}

func TestLiftLenientSkipsAndRecords(t *testing.T) {
	r := rec(
		fakeCommand{},
		command.DrawCommand{Name: "DrawRect", Paint: command.DefaultPaint()},
	)
	surface, skipped, err := LiftLenient(r)
	if err != nil {
		t.Fatalf("LiftLenient: %v", err)
	}
	if len(skipped) != 1 || skipped[0].Index != 0 {
		t.Fatalf("unexpected skipped list: %+v", skipped)
	}
	if _, ok := surface.(ir.Concat); !ok {
		t.Fatalf("expected the draw to still be lifted despite the skip, got %T", surface)
	}
}
