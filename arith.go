package svint

import "math/bits"

// Add returns a+b modulo 2^width, where width is the unified width of the
// two operands. If either operand has any unknown bit, the result is all
// X of the unified width and signedness.
func (a SVInt) Add(b SVInt) SVInt {
	ea, eb, width, signed := unify(a, b)
	if ea.unknownFlag || eb.unknownFlag {
		return CreateFillX(width, signed)
	}
	return addKnown(ea, eb, width, signed)
}

// Sub returns a-b modulo 2^width, with the same X-propagation rule as Add.
func (a SVInt) Sub(b SVInt) SVInt {
	ea, eb, width, signed := unify(a, b)
	if ea.unknownFlag || eb.unknownFlag {
		return CreateFillX(width, signed)
	}
	return subKnown(ea, eb, width, signed)
}

func addKnown(a, b SVInt, width uint32, signed bool) SVInt {
	if width <= bitsPerWord {
		return New(width, a.wordAt(0)+b.wordAt(0), signed)
	}
	nv := allocZeroed(width, signed, false)
	var carry uint64
	for i := uint32(0); i < nv.words(); i++ {
		sum, c := bits.Add64(a.wordAt(i), b.wordAt(i), carry)
		nv.word[i] = sum
		carry = c
	}
	clearUnusedBits(&nv)
	return nv
}

func subKnown(a, b SVInt, width uint32, signed bool) SVInt {
	if width <= bitsPerWord {
		return New(width, a.wordAt(0)-b.wordAt(0), signed)
	}
	nv := allocZeroed(width, signed, false)
	var borrow uint64
	for i := uint32(0); i < nv.words(); i++ {
		diff, bw := bits.Sub64(a.wordAt(i), b.wordAt(i), borrow)
		nv.word[i] = diff
		borrow = bw
	}
	clearUnusedBits(&nv)
	return nv
}

// Mul returns a*b modulo 2^width via schoolbook multiplication, with the
// same X-propagation rule as Add.
func (a SVInt) Mul(b SVInt) SVInt {
	ea, eb, width, signed := unify(a, b)
	if ea.unknownFlag || eb.unknownFlag {
		return CreateFillX(width, signed)
	}
	nv := mulTruncate(ea, eb, width)
	nv.signFlag = signed
	return nv
}

// Neg returns the two's-complement negation of v (unary minus).
func (v SVInt) Neg() SVInt {
	if v.unknownFlag {
		return CreateFillX(v.bitWidth, v.signFlag)
	}
	zero := New(v.bitWidth, 0, v.signFlag)
	return subKnown(zero, v, v.bitWidth, v.signFlag)
}

// Inc is the prefix ++ operator: it mutates v in place to v+1.
func (v *SVInt) Inc() { *v = v.Add(New(v.bitWidth, 1, v.signFlag)) }

// Dec is the prefix -- operator: it mutates v in place to v-1.
func (v *SVInt) Dec() { *v = v.Sub(New(v.bitWidth, 1, v.signFlag)) }

// negOne returns the all-ones bit pattern of the given width, the two's
// complement representation of -1.
func negOne(width uint32, signed bool) SVInt {
	v := New(width, 0, signed)
	setAllOnes(&v)
	return v
}

// --- bitwise four-state operators -----------------------------------

type bitwiseWordOp func(ua, va, ub, vb uint64) (ur, vr uint64)

func andWords(ua, va, ub, vb uint64) (ur, vr uint64) {
	ur = (ua | va) & (ub | vb) & (ua | ub)
	vr = ^ur & va & vb
	return
}

func orWords(ua, va, ub, vb uint64) (ur, vr uint64) {
	ur = (ua & (ub | ^vb)) | (^va & ub)
	vr = ^ur & (va | vb)
	return
}

func xorWords(ua, va, ub, vb uint64) (ur, vr uint64) {
	ur = ua | ub
	vr = ^ur & (va ^ vb)
	return
}

func xnorWords(ua, va, ub, vb uint64) (ur, vr uint64) {
	ur = ua | ub
	vr = ^ur & ^(va ^ vb)
	return
}

func bitwiseOp(a, b SVInt, width uint32, signed bool, f bitwiseWordOp) SVInt {
	anyUnknown := a.unknownFlag || b.unknownFlag
	nv := allocUninitializedFor(width, signed, anyUnknown)
	n := nv.words()
	for i := uint32(0); i < n; i++ {
		ur, vr := f(a.uwordAt(i), a.wordAt(i), b.uwordAt(i), b.wordAt(i))
		nv.setWordAt(i, vr)
		if anyUnknown {
			nv.setUWordAt(i, ur)
		}
	}
	clearUnusedBits(&nv)
	if anyUnknown {
		checkUnknown(&nv)
	}
	return nv
}

// And returns the per-bit four-state AND of a and b.
func (a SVInt) And(b SVInt) SVInt {
	ea, eb, width, signed := unify(a, b)
	return bitwiseOp(ea, eb, width, signed, andWords)
}

// Or returns the per-bit four-state OR of a and b.
func (a SVInt) Or(b SVInt) SVInt {
	ea, eb, width, signed := unify(a, b)
	return bitwiseOp(ea, eb, width, signed, orWords)
}

// Xor returns the per-bit four-state XOR of a and b.
func (a SVInt) Xor(b SVInt) SVInt {
	ea, eb, width, signed := unify(a, b)
	return bitwiseOp(ea, eb, width, signed, xorWords)
}

// Xnor returns the per-bit four-state XNOR of a and b. It is its own
// operator rather than Xor(b).Not(), because NOT's Z-becomes-X collapse
// would silently change the unknown plane of the result.
func (a SVInt) Xnor(b SVInt) SVInt {
	ea, eb, width, signed := unify(a, b)
	return bitwiseOp(ea, eb, width, signed, xnorWords)
}

// Not returns the per-bit four-state complement of v. Z inverts to X.
func (v SVInt) Not() SVInt {
	anyUnknown := v.unknownFlag
	nv := allocUninitializedFor(v.bitWidth, v.signFlag, anyUnknown)
	n := nv.words()
	for i := uint32(0); i < n; i++ {
		ua, va := v.uwordAt(i), v.wordAt(i)
		ur := ua
		vr := ^ua & ^va
		nv.setWordAt(i, vr)
		if anyUnknown {
			nv.setUWordAt(i, ur)
		}
	}
	clearUnusedBits(&nv)
	if anyUnknown {
		checkUnknown(&nv)
	}
	return nv
}

// --- shifts ------------------------------------------------------------

// shiftAmountOrOverflow extracts a shift amount from amount as a uint32,
// reporting tooLarge if amount's numeric value is at or beyond width
// (including the case where amount simply doesn't fit in a uint32 at all,
// which for any width within MaxBits necessarily means it's >= width).
func shiftAmountOrOverflow(amount SVInt, width uint32) (amt uint32, tooLarge bool) {
	if amount.GetActiveBits() > 32 {
		return 0, true
	}
	raw := amount.wordAt(0) & 0xFFFFFFFF
	if raw >= uint64(width) {
		return 0, true
	}
	return uint32(raw), false
}

// Shl is the left-shift operator <<. A shift amount containing any
// unknown bit poisons the result to all-X; otherwise v's own unknown bits
// (if any) are carried along in the unknown plane, not poisoned.
func (v SVInt) Shl(amount SVInt) SVInt {
	if amount.unknownFlag {
		return CreateFillX(v.bitWidth, v.signFlag)
	}
	amt, tooLarge := shiftAmountOrOverflow(amount, v.bitWidth)
	if tooLarge {
		return New(v.bitWidth, 0, v.signFlag)
	}
	return v.shlBy(amt)
}

func (v SVInt) shlBy(amount uint32) SVInt {
	if amount == 0 {
		return v.clone()
	}
	if v.isSingleWord() {
		return New(v.bitWidth, v.val<<amount, v.signFlag)
	}
	nv := allocUninitializedFor(v.bitWidth, v.signFlag, v.unknownFlag)
	n := v.words()
	shifted := shiftWordArrayLeft(wordsSlice(v, n), amount)
	copy(nv.word[:n], shifted)
	if v.unknownFlag {
		uArr := make([]uint64, n)
		for i := uint32(0); i < n; i++ {
			uArr[i] = v.uwordAt(i)
		}
		ushifted := shiftWordArrayLeft(uArr, amount)
		copy(nv.word[n:2*n], ushifted)
	}
	clearUnusedBits(&nv)
	if v.unknownFlag {
		checkUnknown(&nv)
	}
	return nv
}

// Lshr is the logical right-shift operator >>.
func (v SVInt) Lshr(amount SVInt) SVInt {
	if amount.unknownFlag {
		return CreateFillX(v.bitWidth, v.signFlag)
	}
	amt, tooLarge := shiftAmountOrOverflow(amount, v.bitWidth)
	if tooLarge {
		return New(v.bitWidth, 0, v.signFlag)
	}
	return v.lshrBy(amt)
}

func (v SVInt) lshrBy(amount uint32) SVInt {
	if amount == 0 {
		return v.clone()
	}
	if v.isSingleWord() {
		return New(v.bitWidth, v.val>>amount, v.signFlag)
	}
	nv := allocUninitializedFor(v.bitWidth, v.signFlag, v.unknownFlag)
	n := v.words()
	shifted := shiftWordArrayRight(wordsSlice(v, n), amount)
	copy(nv.word[:n], shifted)
	if v.unknownFlag {
		uArr := make([]uint64, n)
		for i := uint32(0); i < n; i++ {
			uArr[i] = v.uwordAt(i)
		}
		ushifted := shiftWordArrayRight(uArr, amount)
		copy(nv.word[n:2*n], ushifted)
	}
	clearUnusedBits(&nv)
	if v.unknownFlag {
		checkUnknown(&nv)
	}
	return nv
}

// Ashr is the arithmetic right-shift operator >>>. On unsigned operands it
// behaves exactly like Lshr; on signed operands it replicates the sign
// bit (its full (value, unknown) pair) across the vacated high positions.
func (v SVInt) Ashr(amount SVInt) SVInt {
	if !v.signFlag {
		return v.Lshr(amount)
	}
	if amount.unknownFlag {
		return CreateFillX(v.bitWidth, v.signFlag)
	}
	amt, tooLarge := shiftAmountOrOverflow(amount, v.bitWidth)
	if tooLarge {
		return v.ashrBy(v.bitWidth)
	}
	return v.ashrBy(amt)
}

func (v SVInt) ashrBy(amount uint32) SVInt {
	if !v.signFlag {
		return v.lshrBy(amount)
	}
	if amount == 0 {
		return v.clone()
	}
	signV, signU := bitPlanesAt(v, v.bitWidth-1)
	if amount >= v.bitWidth {
		return fillWholeFromBit(v.bitWidth, v.signFlag, signV, signU)
	}
	contracted := v.bitWidth - amount
	tmp := v.lshrBy(amount)
	if signV || signU {
		fillBitRangePlane(&tmp, contracted, v.bitWidth, signV, signU)
	}
	clearUnusedBits(&tmp)
	if tmp.unknownFlag {
		checkUnknown(&tmp)
	}
	return tmp
}

func fillWholeFromBit(width uint32, signed bool, vbit, ubit bool) SVInt {
	nv := allocUninitializedFor(width, signed, ubit)
	fillBitRangePlane(&nv, 0, width, vbit, ubit)
	clearUnusedBits(&nv)
	return nv
}

// --- power ---------------------------------------------------------------

// Pow implements ** with the special cases spelled out in the original
// kernel's ordering (0**0, 0**-y, 0**y, x**0, 1**y, signed -1**y, signed
// negative exponent, sign-adjusted modular exponentiation). The result
// always takes v's own bit width, not the unified width — the exponent's
// width is irrelevant to the result.
func (v SVInt) Pow(rhs SVInt) SVInt {
	bothSigned := v.signFlag && rhs.signFlag
	if v.unknownFlag || rhs.unknownFlag {
		return CreateFillX(v.bitWidth, bothSigned)
	}

	lhsBits := v.GetActiveBits()
	rhsBits := rhs.GetActiveBits()
	if lhsBits == 0 {
		if rhsBits == 0 {
			return New(v.bitWidth, 1, bothSigned)
		}
		if rhs.signFlag && rhs.IsNegative() {
			return CreateFillX(v.bitWidth, bothSigned)
		}
		return New(v.bitWidth, 0, bothSigned)
	}

	if rhsBits == 0 || lhsBits == 1 {
		return New(v.bitWidth, 1, bothSigned)
	}

	if bothSigned && v.IsNegative() && v.isAllOnesKnown() {
		if rhs.IsOdd() {
			return negOne(v.bitWidth, bothSigned)
		}
		return New(v.bitWidth, 1, bothSigned)
	}

	if bothSigned && rhs.IsNegative() {
		return New(v.bitWidth, 0, bothSigned)
	}

	if bothSigned && v.IsNegative() {
		if rhs.IsOdd() {
			return modPow(v.Neg(), rhs, bothSigned).Neg()
		}
		return modPow(v.Neg(), rhs, bothSigned)
	}
	return modPow(v, rhs, bothSigned)
}

func (v SVInt) isAllOnesKnown() bool {
	return !v.unknownFlag && v.CountPopulation() == v.bitWidth
}

// modPow computes base**exponent mod 2^width by squaring, where width is
// base's bit width (all arithmetic is already modulo 2^width, so the
// modulus never needs to be represented explicitly).
func modPow(base, exponent SVInt, bothSigned bool) SVInt {
	width := base.bitWidth
	result := New(width, 1, false)
	b := base
	b.signFlag = false

	n := exponent.words()
	for i := uint32(0); i < n; i++ {
		word := exponent.wordAt(i)
		last := i == n-1
		bitCount := bitsPerWord
		if last {
			remaining := exponent.bitWidth - i*bitsPerWord
			if remaining < bitsPerWord {
				bitCount = int(remaining)
			}
		}
		// Only the final word's loop may stop early once its remaining
		// bits are all zero — every earlier word must run its full
		// bitCount iterations so b ends up squared exactly 64 times
		// before the next word's bits are consumed, regardless of how
		// many of this word's own bits were set.
		for j := 0; j < bitCount && (!last || word != 0); j++ {
			if word&1 != 0 {
				result = mulTruncate(result, b, width)
			}
			word >>= 1
			if !last || word != 0 || j+1 < bitCount {
				b = mulTruncate(b, b, width)
			}
		}
	}

	result.signFlag = bothSigned
	return result
}
