package ir

import (
	"testing"

	"github.com/gogpu/pictureopt/command"
)

func TestOpSortAndVirtual(t *testing.T) {
	tests := []struct {
		op        Op
		wantSort  Sort
		wantVirt  bool
	}{
		{OpBlankSurface, SortSurface, false},
		{OpDraw, SortSurface, false},
		{OpApplyAlpha, SortSurface, true},
		{OpApplyState, SortSurface, true},
		{OpApplyFilterWithState, SortSurface, true},
		{OpMerge, SortSurface, false},
		{OpBlankState, SortState, false},
		{OpStateClipRect, SortState, false},
	}
	for _, tt := range tests {
		if got := tt.op.Sort(); got != tt.wantSort {
			t.Errorf("%v.Sort() = %v, want %v", tt.op, got, tt.wantSort)
		}
		if got := tt.op.IsVirtual(); got != tt.wantVirt {
			t.Errorf("%v.IsVirtual() = %v, want %v", tt.op, got, tt.wantVirt)
		}
	}
}

func TestOpString(t *testing.T) {
	if got := OpMerge.String(); got != "Merge" {
		t.Errorf("OpMerge.String() = %q", got)
	}
	if got := Op(250).String(); got != "Unknown" {
		t.Errorf("unknown op String() = %q", got)
	}
}

func TestEqualDraw(t *testing.T) {
	a := Draw{Index: 1, Name: "DrawRect", Paint: command.DefaultPaint()}
	b := Draw{Index: 1, Name: "DrawRect", Paint: command.DefaultPaint()}
	c := Draw{Index: 2, Name: "DrawRect", Paint: command.DefaultPaint()}
	if !Equal(a, b) {
		t.Error("expected a == b")
	}
	if Equal(a, c) {
		t.Error("expected a != c")
	}
}

func TestEqualNested(t *testing.T) {
	base := BlankSurface{}
	left := Concat{Lhs: base, Rhs: Draw{Index: 0, Name: "X"}}
	right := Concat{Lhs: base, Rhs: Draw{Index: 0, Name: "X"}}
	if !Equal(left, right) {
		t.Error("expected structurally equal Concat terms to be Equal")
	}
	right2 := Concat{Lhs: base, Rhs: Draw{Index: 1, Name: "X"}}
	if Equal(left, right2) {
		t.Error("expected differing Draw index to break equality")
	}
}

func TestStateEqual(t *testing.T) {
	a := StateClipRect{Base: BlankState{}, Params: ClipRectParams{Bounds: command.NewRect(0, 0, 10, 10)}}
	b := StateClipRect{Base: BlankState{}, Params: ClipRectParams{Bounds: command.NewRect(0, 0, 10, 10)}}
	if !StateEqual(a, b) {
		t.Error("expected equal StateClipRect terms")
	}
}

func TestHashStableAcrossEqualTerms(t *testing.T) {
	a := Concat{Lhs: BlankSurface{}, Rhs: Draw{Index: 0, Name: "X"}}
	b := Concat{Lhs: BlankSurface{}, Rhs: Draw{Index: 0, Name: "X"}}
	if Hash(a) != Hash(b) {
		t.Error("expected equal terms to hash equal")
	}
}

func TestHashDiffersOnDifferentTerms(t *testing.T) {
	a := Draw{Index: 0, Name: "X"}
	b := Draw{Index: 1, Name: "X"}
	if Hash(a) == Hash(b) {
		t.Error("hash collision between differing Draw terms (unlucky but check inputs)")
	}
}

func TestSprintRoundTripsStructure(t *testing.T) {
	s := SrcOver{
		Bottom: BlankSurface{},
		Top:    ApplyAlpha{Base: Draw{Index: 0, Name: "DrawRect"}, Params: AlphaParams{Alpha: 128}},
	}
	got := Sprint(s)
	want := "(SrcOver (BlankSurface) (ApplyAlpha (Draw DrawRect #0) a=128))"
	if got != want {
		t.Errorf("Sprint() = %q, want %q", got, want)
	}
}

func TestClipRectParamsMergeable(t *testing.T) {
	inner := ClipRectParams{Bounds: command.NewRect(0, 0, 10, 10), Op: command.ClipIntersect}
	outer := ClipRectParams{Bounds: command.NewRect(5, 5, 20, 20), Op: command.ClipIntersect}
	if !inner.Mergeable(outer) {
		t.Fatal("expected mergeable")
	}
	merged := inner.Merge(outer)
	want := command.Rect{MinX: 5, MinY: 5, MaxX: 10, MaxY: 10}
	if merged.Bounds != want {
		t.Errorf("merged bounds = %v, want %v", merged.Bounds, want)
	}
}

func TestClipRectParamsNotMergeableAcrossDifference(t *testing.T) {
	inner := ClipRectParams{Op: command.ClipIntersect}
	outer := ClipRectParams{Op: command.ClipDifference}
	if inner.Mergeable(outer) {
		t.Error("expected Difference clip to block merging")
	}
}

func TestMergeParamsIsTrivial(t *testing.T) {
	trivial := MergeParams{Paint: command.DefaultPaint()}
	if !trivial.IsTrivial() {
		t.Error("expected default paint merge to be trivial")
	}
	withAlpha := MergeParams{Paint: command.DefaultPaint().WithAlpha(128)}
	if withAlpha.IsTrivial() {
		t.Error("expected non-255 alpha to be non-trivial")
	}
}

func TestInvariantError(t *testing.T) {
	err := NewInvariantError("lower", SortState, SortSurface)
	if err == nil {
		t.Fatal("expected non-nil error")
	}
	var ie *InvariantError
	if ie2, ok := err.(*InvariantError); ok {
		ie = ie2
	} else {
		t.Fatal("expected *InvariantError")
	}
	if ie.Wanted != SortState || ie.Got != SortSurface {
		t.Error("unexpected fields")
	}
}
