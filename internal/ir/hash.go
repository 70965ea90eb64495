package ir

import (
	"encoding/binary"
	"hash/maphash"
	"math"
)

var hashSeed = maphash.MakeSeed()

// Hash returns a structural hash of a Surface term, stable within one
// process (the e-graph hash-conses on egraph.Node, not on this). Equal
// terms always hash equal; unequal terms may collide.
func Hash(s Surface) uint64 {
	var h maphash.Hash
	h.SetSeed(hashSeed)
	writeSurface(&h, s)
	return h.Sum64()
}

// HashState is the State-sort counterpart of Hash.
func HashState(s State) uint64 {
	var h maphash.Hash
	h.SetSeed(hashSeed)
	writeState(&h, s)
	return h.Sum64()
}

func writeUint64(h *maphash.Hash, v uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	h.Write(buf[:])
}

func writeSurface(h *maphash.Hash, s Surface) {
	if s == nil {
		h.WriteByte(0xFF)
		return
	}
	h.WriteByte(byte(s.Op()))
	switch x := s.(type) {
	case BlankSurface:
	case Draw:
		writeUint64(h, uint64(x.Index))
		h.WriteString(x.Name)
		writeUint64(h, uint64(x.Paint.Color))
	case Concat:
		writeSurface(h, x.Lhs)
		writeSurface(h, x.Rhs)
	case SrcOver:
		writeSurface(h, x.Bottom)
		writeSurface(h, x.Top)
	case ClipRect:
		writeSurface(h, x.Base)
		writeClipRectParams(h, x.Params)
	case MatrixOp:
		writeSurface(h, x.Base)
		writeUint64(h, uint64(x.Params.Index))
	case Concat44:
		writeSurface(h, x.Base)
		writeM44(h, x.Matrix)
	case ApplyAlpha:
		writeSurface(h, x.Base)
		h.WriteByte(x.Params.Alpha)
	case ApplyState:
		writeSurface(h, x.Base)
		writeState(h, x.State)
	case ApplyFilterWithState:
		writeSurface(h, x.Base)
		writeMergeParamsWithState(h, x.Params)
	case Merge:
		writeSurface(h, x.Dst)
		writeSurface(h, x.Src)
		writeMergeParamsWithState(h, x.Params)
	}
}

func writeState(h *maphash.Hash, s State) {
	if s == nil {
		h.WriteByte(0xFE)
		return
	}
	h.WriteByte(byte(s.Op()))
	switch x := s.(type) {
	case BlankState:
	case StateClipRect:
		writeState(h, x.Base)
		writeClipRectParams(h, x.Params)
	case StateConcat44:
		writeState(h, x.Base)
		writeM44(h, x.Matrix)
	case StateMatrixOp:
		writeState(h, x.Base)
		writeUint64(h, uint64(x.Params.Index))
	}
}

func writeClipRectParams(h *maphash.Hash, p ClipRectParams) {
	writeUint64(h, uint64(p.Op))
	if p.AntiAlias {
		h.WriteByte(1)
	} else {
		h.WriteByte(0)
	}
	b := p.Bounds
	writeUint64(h, uint64(binaryFloatBits(b.MinX)))
	writeUint64(h, uint64(binaryFloatBits(b.MinY)))
	writeUint64(h, uint64(binaryFloatBits(b.MaxX)))
	writeUint64(h, uint64(binaryFloatBits(b.MaxY)))
}

func writeM44(h *maphash.Hash, m M44Leaf) {
	for _, f := range m.Value {
		writeUint64(h, binaryFloatBits(f))
	}
}

func writeMergeParamsWithState(h *maphash.Hash, p MergeParamsWithState) {
	writeUint64(h, uint64(p.MP.Index))
	writeUint64(h, uint64(p.MP.Paint.Color))
	writeState(h, p.State)
}

func binaryFloatBits(f float64) uint64 {
	return math.Float64bits(f)
}
