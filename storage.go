package svint

// allocUninitialized returns a heap-backed value. Its buffer comes from
// make, so every word starts at zero. Callers must only invoke this when bits > 64 or unknown is true — the
// inline representation exists precisely to avoid allocating otherwise,
// and calling this when it isn't needed is a contract violation.
func allocUninitialized(bits uint32, signed, unknown bool) SVInt {
	if bits <= bitsPerWord && !unknown {
		violate("allocUninitialized called for a value that fits inline (bits=%d, unknown=%v)", bits, unknown)
	}
	n := numWords(bits)
	total := n
	if unknown {
		total = 2 * n
	}
	return SVInt{
		bitWidth:    bits,
		signFlag:    signed,
		unknownFlag: unknown,
		word:        make([]uint64, total),
	}
}

// allocZeroed is allocUninitialized with a guaranteed zero buffer. Go
// slices from make are already zero-filled, so this is the same call;
// it exists as a separate name because the original algorithm distinguishes
// the two and callers should say which guarantee they're relying on.
func allocZeroed(bits uint32, signed, unknown bool) SVInt {
	return allocUninitialized(bits, signed, unknown)
}

// clearUnusedBits masks the high partial word of both planes so that bits
// above bitWidth are always zero.
func clearUnusedBits(v *SVInt) {
	bitsInTop := v.bitWidth % bitsPerWord
	if bitsInTop == 0 {
		return
	}
	mask := (uint64(1) << bitsInTop) - 1
	top := v.words() - 1
	v.setWordAt(top, v.wordAt(top)&mask)
	if v.unknownFlag {
		v.setUWordAt(top, v.uwordAt(top)&mask)
	}
}

// checkUnknown collapses a heap value with an all-zero unknown plane back
// to the single-plane representation (and to inline, if it now fits).
// Forgetting this call after an operation that can erase every X/Z bit —
// bitwise AND with a known mask, a shift, a sign-extending copy — leaves a
// value whose unknownFlag lies about its own storage.
func checkUnknown(v *SVInt) {
	if !v.unknownFlag {
		return
	}
	for i := uint32(0); i < v.words(); i++ {
		if v.uwordAt(i) != 0 {
			return
		}
	}
	// No unknown bits remain; drop the unknown plane.
	vals := make([]uint64, v.words())
	copy(vals, v.word[:v.words()])
	v.unknownFlag = false
	if v.bitWidth <= bitsPerWord {
		v.val = vals[0]
		v.word = nil
		return
	}
	v.word = vals
}

func setAllZeros(v *SVInt) {
	*v = New(v.bitWidth, 0, v.signFlag)
}

func setAllOnes(v *SVInt) {
	if v.bitWidth <= bitsPerWord {
		*v = SVInt{bitWidth: v.bitWidth, signFlag: v.signFlag, val: ^uint64(0)}
		clearUnusedBits(v)
		return
	}
	nv := allocZeroed(v.bitWidth, v.signFlag, false)
	for i := uint32(0); i < nv.words(); i++ {
		nv.word[i] = ^uint64(0)
	}
	clearUnusedBits(&nv)
	*v = nv
}

func setAllX(v *SVInt) {
	nv := allocUninitializedFor(v.bitWidth, v.signFlag, true)
	for i := uint32(0); i < nv.words(); i++ {
		nv.setWordAt(i, 0)
		nv.setUWordAt(i, ^uint64(0))
	}
	clearUnusedBits(&nv)
	*v = nv
}

func setAllZ(v *SVInt) {
	nv := allocUninitializedFor(v.bitWidth, v.signFlag, true)
	for i := uint32(0); i < nv.words(); i++ {
		nv.setWordAt(i, ^uint64(0))
		nv.setUWordAt(i, ^uint64(0))
	}
	clearUnusedBits(&nv)
	*v = nv
}

// SetAllZeros returns the zero value of v's width and signedness.
func (v SVInt) SetAllZeros() SVInt { setAllZeros(&v); return v }

// SetAllOnes returns the all-ones known value of v's width and signedness.
func (v SVInt) SetAllOnes() SVInt { setAllOnes(&v); return v }

// SetAllX returns the all-X value of v's width and signedness.
func (v SVInt) SetAllX() SVInt { setAllX(&v); return v }

// SetAllZ returns the all-Z value of v's width and signedness.
func (v SVInt) SetAllZ() SVInt { setAllZ(&v); return v }

// clone returns an independent copy of v; since SVInt's only shared state
// is the heap buffer, this is the one place that buffer is duplicated
// rather than reused by a fresh allocation.
func (v SVInt) clone() SVInt {
	if v.isSingleWord() {
		return v
	}
	nv := v
	nv.word = make([]uint64, len(v.word))
	copy(nv.word, v.word)
	return nv
}
