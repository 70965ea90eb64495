package rewrite

import (
	"context"
	"testing"

	"github.com/gogpu/pictureopt/command"
	"github.com/gogpu/pictureopt/internal/egraph"
	"github.com/gogpu/pictureopt/internal/ir"
)

func TestConcatBlankIdentities(t *testing.T) {
	g := egraph.New()
	blank := g.Add(egraph.Leaf0(ir.OpBlankSurface))
	draw := g.Add(egraph.LeafData(ir.OpDraw, egraph.DrawLeaf{Index: 0, Name: "DrawRect", Paint: command.DefaultPaint()}))
	left := g.Add(egraph.Binary(ir.OpConcat, blank, draw, nil))
	right := g.Add(egraph.Binary(ir.OpConcat, draw, blank, nil))

	if !concatBlankLeft(g) {
		t.Error("expected concatBlankLeft to fire")
	}
	if !concatBlankRight(g) {
		t.Error("expected concatBlankRight to fire")
	}
	g.Rebuild()

	if g.Find(left) != g.Find(draw) {
		t.Error("Concat(Blank, Draw) should collapse to Draw")
	}
	if g.Find(right) != g.Find(draw) {
		t.Error("Concat(Draw, Blank) should collapse to Draw")
	}
}

func TestAlphaIdentityAndFold(t *testing.T) {
	g := egraph.New()
	draw := g.Add(egraph.LeafData(ir.OpDraw, egraph.DrawLeaf{Index: 1, Name: "DrawOval", Paint: command.DefaultPaint()}))
	opaqueAlpha := g.Add(egraph.Unary(ir.OpApplyAlpha, draw, ir.AlphaParams{Alpha: 255}))
	halfAlpha := g.Add(egraph.Unary(ir.OpApplyAlpha, draw, ir.AlphaParams{Alpha: 128}))

	if !alphaIdentity(g) {
		t.Error("expected alphaIdentity to fire on alpha=255")
	}
	g.Rebuild()
	if g.Find(opaqueAlpha) != g.Find(draw) {
		t.Error("ApplyAlpha(255, draw) should collapse to draw")
	}

	if !alphaFoldDraw(g) {
		t.Error("expected alphaFoldDraw to fire on alpha=128")
	}
	g.Rebuild()

	ex := egraph.NewExtractor(g)
	ex.Run()
	best, ok := ex.Best(halfAlpha)
	if !ok {
		t.Fatal("expected extraction result")
	}
	if best.Op != ir.OpDraw {
		t.Fatalf("expected folded alpha to produce a bare Draw, got %v", best.Op)
	}
	dl := best.Leaf.(egraph.DrawLeaf)
	wantAlpha := foldAlphaByte(255, 128)
	if dl.Paint.Color.A() != wantAlpha {
		t.Errorf("folded alpha = %d, want %d", dl.Paint.Color.A(), wantAlpha)
	}
}

func TestClipFold(t *testing.T) {
	g := egraph.New()
	draw := g.Add(egraph.LeafData(ir.OpDraw, egraph.DrawLeaf{Index: 0, Name: "DrawRect"}))
	inner := g.Add(egraph.Unary(ir.OpClipRect, draw, ir.ClipRectParams{
		Bounds: command.NewRect(0, 0, 100, 100), Op: command.ClipIntersect,
	}))
	outer := g.Add(egraph.Unary(ir.OpClipRect, inner, ir.ClipRectParams{
		Bounds: command.NewRect(10, 10, 50, 50), Op: command.ClipIntersect,
	}))

	if !clipFold(g) {
		t.Fatal("expected clipFold to fire")
	}
	g.Rebuild()

	ex := egraph.NewExtractor(g)
	ex.Run()
	best, ok := ex.Best(outer)
	if !ok {
		t.Fatal("expected extraction result")
	}
	if best.Op != ir.OpClipRect {
		t.Fatalf("expected a single folded ClipRect, got %v", best.Op)
	}
	params := best.Leaf.(ir.ClipRectParams)
	want := command.NewRect(10, 10, 50, 50)
	if params.Bounds != want {
		t.Errorf("folded bounds = %v, want %v", params.Bounds, want)
	}
}

func TestCommuteAlphaClipRectBothDirections(t *testing.T) {
	g := egraph.New()
	draw := g.Add(egraph.LeafData(ir.OpDraw, egraph.DrawLeaf{Index: 0, Name: "DrawRect", Paint: command.DefaultPaint()}))
	clip := g.Add(egraph.Unary(ir.OpClipRect, draw, ir.ClipRectParams{Bounds: command.NewRect(0, 0, 10, 10), Op: command.ClipIntersect}))
	outer := g.Add(egraph.Unary(ir.OpApplyAlpha, clip, ir.AlphaParams{Alpha: 100}))

	if !commuteAlphaClipRect(g) {
		t.Fatal("expected commuteAlphaClipRect to fire")
	}
	g.Rebuild()

	if !alphaFoldDraw(g) {
		t.Fatal("expected alphaFoldDraw to fire once alpha is commuted down to the draw")
	}
	g.Rebuild()

	ex := egraph.NewExtractor(g)
	ex.Run()
	best, ok := ex.Best(outer)
	if !ok || best.Op != ir.OpClipRect {
		t.Fatalf("expected the cheapest extraction to be ClipRect(foldedDraw, p), got %v ok=%v", best.Op, ok)
	}
}

func TestCatalogRunnerReachesFixedPoint(t *testing.T) {
	g := egraph.New()
	draw := g.Add(egraph.LeafData(ir.OpDraw, egraph.DrawLeaf{Index: 0, Name: "DrawRect", Paint: command.DefaultPaint()}))
	blank := g.Add(egraph.Leaf0(ir.OpBlankSurface))
	g.Add(egraph.Binary(ir.OpConcat, blank, draw, nil))

	r := egraph.NewRunner()
	stats := r.Run(context.Background(), g, AsRuleFuncs(Catalog()))
	if stats.StoppedWhy != "saturated" {
		t.Errorf("StoppedWhy = %q, want saturated", stats.StoppedWhy)
	}
}
