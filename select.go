package svint

// Bit returns the logic value at bit index i (0 is least significant).
// An out-of-range index (negative, or >= BitWidth) reports BitX and
// ok=false rather than panicking — indexing past the end of a value is a
// routine occurrence in hardware expressions, not a programmer error.
func (v SVInt) Bit(i int64) (b Bit, ok bool) {
	if i < 0 || i >= int64(v.bitWidth) {
		return BitX, false
	}
	idx := uint32(i)
	vbit, ubit := bitPlanesAt(v, idx)
	return decodeBit(vbit, ubit), true
}

// Slice returns bits [lsb, msb] inclusive, matching SystemVerilog's
// [msb:lsb] part-select order. msb must be >= lsb. Any index outside
// [0, BitWidth) contributes X for that position rather than erroring,
// so an out-of-range slice degrades gracefully instead of aborting.
func (v SVInt) Slice(msb, lsb int64) SVInt {
	if msb < lsb {
		violate("Slice called with msb (%d) < lsb (%d)", msb, lsb)
	}
	width := uint32(msb - lsb + 1)
	anyOutOfRange := msb >= int64(v.bitWidth) || lsb < 0
	anyUnknown := anyOutOfRange || v.unknownFlag
	nv := allocUninitializedFor(width, false, anyUnknown)
	for i := int64(0); i < int64(width); i++ {
		srcIdx := lsb + i
		b, ok := v.Bit(srcIdx)
		if !ok {
			b = BitX
		}
		vbit, ubit := b.planes()
		w, bo := uint32(i)/bitsPerWord, uint32(i)%bitsPerWord
		if vbit {
			nv.setWordAt(w, nv.wordAt(w)|(uint64(1)<<bo))
		}
		if anyUnknown && ubit {
			nv.setUWordAt(w, nv.uwordAt(w)|(uint64(1)<<bo))
		}
	}
	clearUnusedBits(&nv)
	if anyUnknown {
		checkUnknown(&nv)
	}
	return nv
}

// Replicate returns v's bits repeated n times, most-significant copy
// first, with the combined width n*BitWidth(). Replicate with n==0
// produces a zero-width value that is only meaningful as an operand
// inside Concatenate, matching the unresolved open question over whether
// a bare zero-width value should exist: it exists, but only there.
func (v SVInt) Replicate(n uint32) SVInt {
	if n == 0 {
		return SVInt{bitWidth: 0}
	}
	parts := make([]SVInt, n)
	for i := range parts {
		parts[i] = v
	}
	return Concatenate(parts)
}

// Concatenate joins the given values into one, with parts[0] occupying
// the most-significant bits and parts[len(parts)-1] the least, matching
// SystemVerilog's { a, b, c } concatenation order. Parts may be
// zero-width (as Replicate(0) produces); such a part is invisible to the
// result other than being skipped.
func Concatenate(parts []SVInt) SVInt {
	var width uint32
	anyUnknown := false
	for _, p := range parts {
		width += p.bitWidth
		anyUnknown = anyUnknown || p.unknownFlag
	}
	if width == 0 {
		violate("Concatenate called with zero total width")
	}
	nv := allocUninitializedFor(width, false, anyUnknown)
	var pos uint32
	for i := len(parts) - 1; i >= 0; i-- {
		p := parts[i]
		for j := uint32(0); j < p.bitWidth; j++ {
			vbit, ubit := bitPlanesAt(p, j)
			w, bo := pos/bitsPerWord, pos%bitsPerWord
			if vbit {
				nv.setWordAt(w, nv.wordAt(w)|(uint64(1)<<bo))
			}
			if anyUnknown && ubit {
				nv.setUWordAt(w, nv.uwordAt(w)|(uint64(1)<<bo))
			}
			pos++
		}
	}
	clearUnusedBits(&nv)
	if anyUnknown {
		checkUnknown(&nv)
	}
	return nv
}

// ReductionAnd ANDs every bit of v together. Any unknown bit poisons the
// result to X unless a known 0 bit is also present, matching the
// four-state AND truth table applied across the whole width.
func (v SVInt) ReductionAnd() Bit {
	acc := Bit1
	for i := uint32(0); i < v.bitWidth; i++ {
		b, _ := v.Bit(int64(i))
		acc = reduceStep(acc, b, andWords)
	}
	return acc
}

// ReductionOr ORs every bit of v together.
func (v SVInt) ReductionOr() Bit {
	acc := Bit0
	for i := uint32(0); i < v.bitWidth; i++ {
		b, _ := v.Bit(int64(i))
		acc = reduceStep(acc, b, orWords)
	}
	return acc
}

// ReductionXor XORs every bit of v together. Any unknown bit poisons the
// whole reduction to X, since XOR has no absorbing known value the way
// AND (0) and OR (1) do.
func (v SVInt) ReductionXor() Bit {
	acc := Bit0
	for i := uint32(0); i < v.bitWidth; i++ {
		b, _ := v.Bit(int64(i))
		acc = reduceStep(acc, b, xorWords)
	}
	return acc
}

func reduceStep(acc, next Bit, f bitwiseWordOp) Bit {
	av, au := acc.planes()
	nv, nu := next.planes()
	ur, vr := f(b2u(au), b2u(av), b2u(nu), b2u(nv))
	return decodeBit(vr != 0, ur != 0)
}

func b2u(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
