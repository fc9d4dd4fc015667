package svint

// Equals reports whether a and b are arithmetically equal. Either
// operand having unknown bits makes the comparison itself unknown: it
// returns false, matching the teacher's treatment of logical equality
// as distinct from exact structural equality.
func (a SVInt) Equals(b SVInt) bool {
	if a.unknownFlag || b.unknownFlag {
		return false
	}
	ea, eb, _, _ := unify(a, b)
	for i := uint32(0); i < ea.words(); i++ {
		if ea.wordAt(i) != eb.wordAt(i) {
			return false
		}
	}
	return true
}

// Compare returns -1, 0, or 1 as a is less than, equal to, or greater
// than b once unified to a common width, comparing as signed values only
// when both operands are signed and as unsigned otherwise. Unknown bits make ordering meaningless; Compare panics
// via a contract violation rather than silently returning a wrong
// answer, since callers should check HasUnknown before ordering.
func (a SVInt) Compare(b SVInt) int {
	if a.unknownFlag || b.unknownFlag {
		violate("Compare called on a value with unknown bits")
	}
	ea, eb, width, signed := unify(a, b)
	if signed {
		aNeg, bNeg := ea.IsNegative(), eb.IsNegative()
		if aNeg != bNeg {
			if aNeg {
				return -1
			}
			return 1
		}
	}
	_ = width
	for i := int(ea.words()) - 1; i >= 0; i-- {
		wa, wb := ea.wordAt(uint32(i)), eb.wordAt(uint32(i))
		if wa != wb {
			if wa < wb {
				return -1
			}
			return 1
		}
	}
	return 0
}

// ExactlyEqual reports whether a and b are identical bit-for-bit across
// both planes, including matching unknown bits (so an X in a and an X in
// the same position of b counts as equal, unlike Equals). This is
// SystemVerilog's === operator, as opposed to Equals' ==.
func (a SVInt) ExactlyEqual(b SVInt) bool {
	ea, eb, _, _ := unify(a, b)
	for i := uint32(0); i < ea.words(); i++ {
		if ea.wordAt(i) != eb.wordAt(i) {
			return false
		}
		if ea.uwordAt(i) != eb.uwordAt(i) {
			return false
		}
	}
	return true
}

// WildcardEqual reports whether a and b are equal under SystemVerilog's
// ==? wildcard comparison. The rule is asymmetric: an X or Z bit on the
// right (b) is a don't-care, matching any bit on the left at that
// position, but any X or Z bit on the left (a) makes the whole result
// undecided — it returns X immediately rather than examining b at all,
// the same short-circuit the original kernel's wildcardEqual takes.
func (a SVInt) WildcardEqual(b SVInt) Bit {
	if a.unknownFlag {
		return BitX
	}
	if !b.unknownFlag {
		if a.Equals(b) {
			return Bit1
		}
		return Bit0
	}

	ea, eb, _, _ := unify(a, b)
	for i := uint32(0); i < ea.words(); i++ {
		mask := ^eb.uwordAt(i)
		if ea.wordAt(i)&mask != eb.wordAt(i)&mask {
			return Bit0
		}
	}
	return Bit1
}

// Conditional implements SystemVerilog's ?: operator applied to
// four-state operands. If cond has no unknown bits, it returns whenTrue
// when any bit of cond is 1 and whenFalse otherwise, unchanged. If cond
// has any unknown bit, the two branches are unified to a common width and
// merged bit by bit with combine: a result bit is known only where both
// branches hold the same known value, and X everywhere else.
func Conditional(cond SVInt, whenTrue, whenFalse SVInt) SVInt {
	if !cond.unknownFlag {
		if cond.ReductionOr() == Bit1 {
			return whenTrue.clone()
		}
		return whenFalse.clone()
	}

	ea, eb, width, signed := unify(whenTrue, whenFalse)
	nv := allocUninitializedFor(width, signed, true)
	for i := uint32(0); i < width; i++ {
		tb, _ := ea.Bit(int64(i))
		fb, _ := eb.Bit(int64(i))
		merged := combine(tb, fb)
		vbit, ubit := merged.planes()
		w, bo := i/bitsPerWord, i%bitsPerWord
		if vbit {
			nv.setWordAt(w, nv.wordAt(w)|(uint64(1)<<bo))
		}
		if ubit {
			nv.setUWordAt(w, nv.uwordAt(w)|(uint64(1)<<bo))
		}
	}
	clearUnusedBits(&nv)
	checkUnknown(&nv)
	return nv
}
