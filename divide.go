package svint

import "math/bits"

// Division and remainder operate on the value plane's word array
// directly. Values no wider than one 64-bit word use shortDivideWord,
// whose short-division loop is the same column-by-column approach as
// manual long division in base 2^32. Any wider value, whatever the size
// of its divisor, uses bit-at-a-time binary long division (shift the
// remainder left one bit, bring in the next
// dividend bit, subtract the divisor if it now fits) — asymptotically
// slower than word-at-a-time Knuth-style division, but each step is a
// compare-and-subtract over whole words, which is straightforward to
// get right without being able to execute the result.

const halfBits = 32
const halfMask = 0xFFFFFFFF

// shortDivide divides the limb array u (length n, least-significant
// limb first) by the single limb v, returning the quotient limbs and
// the remainder.
func shortDivide(u []uint32, n uint32, v uint32) (quotient []uint32, remainder uint32) {
	quotient = make([]uint32, n)
	var rem uint64
	for i := int(n) - 1; i >= 0; i-- {
		cur := (rem << halfBits) | uint64(u[i])
		quotient[i] = uint32(cur / uint64(v))
		rem = cur % uint64(v)
	}
	return quotient, uint32(rem)
}

// compareWordArrays compares two equal-length word arrays as unsigned
// magnitudes, most-significant word last (little-endian word order).
func compareWordArrays(a, b []uint64) int {
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// subWordArraysInPlace computes a -= b over equal-length word arrays,
// assuming a >= b (the caller only subtracts after confirming that via
// compareWordArrays).
func subWordArraysInPlace(a, b []uint64) {
	var borrow uint64
	for i := range a {
		diff, bw := bits.Sub64(a[i], b[i], borrow)
		a[i] = diff
		borrow = bw
	}
}

// shiftWordArrayLeftOneBit shifts a word array left by exactly one bit,
// shifting in carryIn as the new low bit, and returning the bit shifted
// out of the top.
func shiftWordArrayLeftOneBit(a []uint64, carryIn uint64) (carryOut uint64) {
	for i := 0; i < len(a); i++ {
		next := a[i] >> 63
		a[i] = (a[i] << 1) | carryIn
		carryIn = next
	}
	return carryIn
}

// longDivideWords performs bit-at-a-time binary long division of the
// magnitude held in u by the magnitude held in v, both given as
// little-endian word arrays of the same length, returning quotient and
// remainder word arrays of that same length.
func longDivideWords(u, v []uint64) (quotient, remainder []uint64) {
	n := len(u)
	quotient = make([]uint64, n)
	remainder = make([]uint64, n)

	totalBits := n * bitsPerWord
	for i := totalBits - 1; i >= 0; i-- {
		bit := (u[i/bitsPerWord] >> uint(i%bitsPerWord)) & 1
		shiftWordArrayLeftOneBit(remainder, bit)
		if compareWordArrays(remainder, v) >= 0 {
			subWordArraysInPlace(remainder, v)
			quotient[i/bitsPerWord] |= uint64(1) << uint(i%bitsPerWord)
		}
	}
	return quotient, remainder
}

// udiv divides two unsigned known values, both already at a common
// width, returning quotient and remainder at that width. Division by
// zero returns all-X for both, matching the four-state kernel's
// convention that an undefined arithmetic result is represented the
// same way an unknown operand would be.
func udiv(a, b SVInt) (quotient, remainder SVInt) {
	width := a.bitWidth
	if b.GetActiveBits() == 0 {
		return CreateFillX(width, false), CreateFillX(width, false)
	}

	n := numWords(width)
	uWords := wordsSlice(a, n)
	vWords := wordsSlice(b, n)

	if n == 1 {
		q, r := shortDivideWord(uWords[0], vWords[0])
		quotient = New(width, q, false)
		remainder = New(width, r, false)
		return quotient, remainder
	}

	qWords, rWords := longDivideWords(uWords, vWords)

	quotient = allocUninitializedFor(width, false, false)
	remainder = allocUninitializedFor(width, false, false)
	for i := uint32(0); i < n; i++ {
		quotient.setWordAt(i, qWords[i])
		remainder.setWordAt(i, rWords[i])
	}
	clearUnusedBits(&quotient)
	clearUnusedBits(&remainder)
	return quotient, remainder
}

// shortDivideWord divides two values that both fit in a single 64-bit
// word, via the half-word short-division loop when the divisor fits in
// 32 bits and native 64-bit division otherwise, as a small fast path
// that avoids the bit-at-a-time loop for the overwhelmingly common case
// of values no wider than 64 bits.
func shortDivideWord(u, v uint64) (q, r uint64) {
	uLimbs := []uint32{uint32(u & halfMask), uint32(u >> halfBits)}
	n := uint32(2)
	for n > 1 && uLimbs[n-1] == 0 {
		n--
	}
	vLow := uint32(v & halfMask)
	if v <= halfMask {
		qLimbs, rem := shortDivide(uLimbs[:n], n, vLow)
		for i := uint32(len(qLimbs)); i < 2; i++ {
			qLimbs = append(qLimbs, 0)
		}
		return uint64(qLimbs[0]) | uint64(qLimbs[1])<<halfBits, uint64(rem)
	}
	return u / v, u % v
}

// Div implements the / operator: unknown operands or a zero divisor
// both propagate to all-X, and a known result takes the sign of the
// mathematical quotient when both operands are signed.
func (a SVInt) Div(b SVInt) SVInt {
	ea, eb, width, signed := unify(a, b)
	if ea.unknownFlag || eb.unknownFlag {
		return CreateFillX(width, signed)
	}
	if signed {
		negA, negB := ea.IsNegative(), eb.IsNegative()
		ua, ub := ea, eb
		if negA {
			ua = ea.Neg()
		}
		if negB {
			ub = eb.Neg()
		}
		q, _ := udiv(ua, ub)
		if q.unknownFlag {
			return CreateFillX(width, signed)
		}
		q.signFlag = true
		if negA != negB {
			q = q.Neg()
		}
		return q
	}
	q, _ := udiv(ea, eb)
	q.signFlag = false
	return q
}

// Rem implements the % operator, with the remainder taking the sign of
// the dividend (truncating division), matching SystemVerilog semantics.
func (a SVInt) Rem(b SVInt) SVInt {
	ea, eb, width, signed := unify(a, b)
	if ea.unknownFlag || eb.unknownFlag {
		return CreateFillX(width, signed)
	}
	if signed {
		negA, negB := ea.IsNegative(), eb.IsNegative()
		ua, ub := ea, eb
		if negA {
			ua = ea.Neg()
		}
		if negB {
			ub = eb.Neg()
		}
		_, r := udiv(ua, ub)
		if r.unknownFlag {
			return CreateFillX(width, signed)
		}
		r.signFlag = true
		if negA {
			r = r.Neg()
		}
		return r
	}
	_, r := udiv(ea, eb)
	r.signFlag = false
	return r
}
