package egraph

import (
	"testing"

	"github.com/gogpu/pictureopt/command"
	"github.com/gogpu/pictureopt/internal/ir"
)

func TestAddSurfaceRoundTripsThroughExtractor(t *testing.T) {
	src := ir.Concat{
		Lhs: ir.BlankSurface{},
		Rhs: ir.ClipRect{
			Base:   ir.Draw{Index: 0, Name: "DrawRect", Paint: command.DefaultPaint()},
			Params: ir.ClipRectParams{Bounds: command.NewRect(0, 0, 10, 10), Op: command.ClipIntersect},
		},
	}
	g := New()
	root := AddSurface(g, src)
	g.Rebuild()

	ex := NewExtractor(g)
	ex.Run()
	got, err := ex.ToSurface(root)
	if err != nil {
		t.Fatalf("ToSurface: %v", err)
	}
	if !ir.Equal(got, src) {
		t.Errorf("round trip = %s, want %s", ir.Sprint(got), ir.Sprint(src))
	}
}

func TestAddSurfaceMergeCarriesState(t *testing.T) {
	src := ir.Merge{
		Dst: ir.BlankSurface{},
		Src: ir.Draw{Index: 1, Name: "DrawRect", Paint: command.DefaultPaint()},
		Params: ir.MergeParamsWithState{
			MP:    ir.MergeParams{Index: 0, Paint: command.DefaultPaint().WithAlpha(128)},
			State: ir.StateClipRect{Base: ir.BlankState{}, Params: ir.ClipRectParams{Bounds: command.NewRect(0, 0, 5, 5), Op: command.ClipIntersect}},
		},
	}
	g := New()
	root := AddSurface(g, src)
	g.Rebuild()

	ex := NewExtractor(g)
	ex.Run()
	got, err := ex.ToSurface(root)
	if err != nil {
		t.Fatalf("ToSurface: %v", err)
	}
	if !ir.Equal(got, src) {
		t.Errorf("round trip = %s, want %s", ir.Sprint(got), ir.Sprint(src))
	}
}
