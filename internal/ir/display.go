package ir

import (
	"fmt"
	"strings"
)

// Sprint renders a Surface term as a parenthesized s-expression, used in
// debug logging (slog "term" attrs) and test failure messages.
func Sprint(s Surface) string {
	var b strings.Builder
	sprintSurface(&b, s)
	return b.String()
}

// SprintState is the State-sort counterpart of Sprint.
func SprintState(s State) string {
	var b strings.Builder
	sprintState(&b, s)
	return b.String()
}

func sprintSurface(b *strings.Builder, s Surface) {
	if s == nil {
		b.WriteString("<nil>")
		return
	}
	switch x := s.(type) {
	case BlankSurface:
		b.WriteString("(BlankSurface)")
	case Draw:
		fmt.Fprintf(b, "(Draw %s #%d)", x.Name, x.Index)
	case Concat:
		b.WriteString("(Concat ")
		sprintSurface(b, x.Lhs)
		b.WriteByte(' ')
		sprintSurface(b, x.Rhs)
		b.WriteByte(')')
	case SrcOver:
		b.WriteString("(SrcOver ")
		sprintSurface(b, x.Bottom)
		b.WriteByte(' ')
		sprintSurface(b, x.Top)
		b.WriteByte(')')
	case ClipRect:
		b.WriteString("(ClipRect ")
		sprintSurface(b, x.Base)
		fmt.Fprintf(b, " %v)", x.Params.Bounds)
	case MatrixOp:
		b.WriteString("(MatrixOp ")
		sprintSurface(b, x.Base)
		fmt.Fprintf(b, " #%d)", x.Params.Index)
	case Concat44:
		b.WriteString("(Concat44 ")
		sprintSurface(b, x.Base)
		b.WriteString(" <m44>)")
	case ApplyAlpha:
		b.WriteString("(ApplyAlpha ")
		sprintSurface(b, x.Base)
		fmt.Fprintf(b, " a=%d)", x.Params.Alpha)
	case ApplyState:
		b.WriteString("(ApplyState ")
		sprintSurface(b, x.Base)
		b.WriteByte(' ')
		sprintState(b, x.State)
		b.WriteByte(')')
	case ApplyFilterWithState:
		b.WriteString("(ApplyFilterWithState ")
		sprintSurface(b, x.Base)
		b.WriteByte(')')
	case Merge:
		b.WriteString("(Merge ")
		sprintSurface(b, x.Dst)
		b.WriteByte(' ')
		sprintSurface(b, x.Src)
		b.WriteByte(')')
	default:
		b.WriteString("(?)")
	}
}

func sprintState(b *strings.Builder, s State) {
	if s == nil {
		b.WriteString("<nil>")
		return
	}
	switch x := s.(type) {
	case BlankState:
		b.WriteString("(BlankState)")
	case StateClipRect:
		b.WriteString("(ClipRect ")
		sprintState(b, x.Base)
		fmt.Fprintf(b, " %v)", x.Params.Bounds)
	case StateConcat44:
		b.WriteString("(Concat44 ")
		sprintState(b, x.Base)
		b.WriteString(" <m44>)")
	case StateMatrixOp:
		b.WriteString("(MatrixOp ")
		sprintState(b, x.Base)
		fmt.Fprintf(b, " #%d)", x.Params.Index)
	default:
		b.WriteString("(?)")
	}
}
