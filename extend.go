package svint

// unify brings a and b to a common width before a binary operation: the
// narrower operand is extended to the wider's width using sign extension
// iff both operands are signed, otherwise zero extension. It returns the
// two extended operands, the unified width, and whether both operands
// were signed (the signedness most binary operators give their result).
func unify(a, b SVInt) (ea, eb SVInt, width uint32, bothSigned bool) {
	width = a.bitWidth
	if b.bitWidth > width {
		width = b.bitWidth
	}
	bothSigned = a.signFlag && b.signFlag
	return extendTo(a, width, bothSigned), extendTo(b, width, bothSigned), width, bothSigned
}

// extendTo extends v to the given (larger or equal) width, sign-extending
// if signExtend is true and zero-extending otherwise. Unknown bits are
// extended by the same mechanism on the unknown plane: sign extension
// replicates whatever (value, unknown) pair occupies the top bit.
func extendTo(v SVInt, bits uint32, signExtend bool) SVInt {
	if bits < v.bitWidth {
		violate("extendTo called with a narrower width (%d < %d)", bits, v.bitWidth)
	}
	if bits == v.bitWidth {
		return v.clone()
	}

	unknown := v.unknownFlag
	if bits <= bitsPerWord && !unknown {
		raw := v.wordAt(0)
		var newVal uint64
		if signExtend {
			newVal = signExtendWord(raw, v.bitWidth)
		} else {
			newVal = raw
		}
		nv := SVInt{bitWidth: bits, signFlag: v.signFlag, val: newVal}
		clearUnusedBits(&nv)
		return nv
	}

	nv := allocUninitializedFor(bits, v.signFlag, unknown)
	oldWords := v.words()
	newWords := nv.words()
	for i := uint32(0); i < newWords; i++ {
		if i < oldWords {
			nv.setWordAt(i, v.wordAt(i))
			if unknown {
				nv.setUWordAt(i, v.uwordAt(i))
			}
		} else {
			nv.setWordAt(i, 0)
			if unknown {
				nv.setUWordAt(i, 0)
			}
		}
	}

	if signExtend {
		vTop, uTop := bitPlanesAt(v, v.bitWidth-1)
		if vTop || uTop {
			fillBitRangePlane(&nv, v.bitWidth, bits, vTop, uTop)
		}
	}

	clearUnusedBits(&nv)
	checkUnknown(&nv)
	return nv
}

// bitPlanesAt reads the raw (value, unknown) pair at an in-range bit index.
func bitPlanesAt(v SVInt, idx uint32) (vbit, ubit bool) {
	w, b := idx/bitsPerWord, idx%bitsPerWord
	vbit = (v.wordAt(w)>>b)&1 != 0
	ubit = (v.uwordAt(w)>>b)&1 != 0
	return
}

// fillBitRangePlane sets bits [from, to) of v's planes to the given
// (value, unknown) pair, used to replicate a sign bit across newly
// extended high bits.
func fillBitRangePlane(v *SVInt, from, to uint32, vbit, ubit bool) {
	for i := from; i < to; i++ {
		w, b := i/bitsPerWord, i%bitsPerWord
		if vbit {
			v.setWordAt(w, v.wordAt(w)|(uint64(1)<<b))
		}
		if ubit {
			v.setUWordAt(w, v.uwordAt(w)|(uint64(1)<<b))
		}
	}
}
