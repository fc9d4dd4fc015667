package svint

import "math/bits"

// wordsSlice materializes the first n value-plane words of v as an
// ordinary slice, used by the schoolbook multiply and modular
// exponentiation kernels, which operate on plain []uint64 buffers rather
// than SVInt directly.
func wordsSlice(v SVInt, n uint32) []uint64 {
	out := make([]uint64, n)
	for i := uint32(0); i < n; i++ {
		out[i] = v.wordAt(i)
	}
	return out
}

// mulWords performs schoolbook multiplication of two word arrays in
// 64-bit lanes, returning an (aWords+bWords)-word product. This is the
// one piece of the arithmetic core where a single native multiply can't
// do the job, because the product of two 64-bit words doesn't fit back
// into 64 bits; math/bits.Mul64 supplies the double-wide result the
// schoolbook algorithm accumulates across lanes.
func mulWords(a []uint64, aWords uint32, b []uint64, bWords uint32) []uint64 {
	result := make([]uint64, aWords+bWords)
	if aWords == 0 || bWords == 0 {
		return result
	}
	for i := uint32(0); i < aWords; i++ {
		if a[i] == 0 {
			continue
		}
		var carry uint64
		for j := uint32(0); j < bWords; j++ {
			hi, lo := bits.Mul64(a[i], b[j])
			sum1, c1 := bits.Add64(lo, result[i+j], 0)
			sum2, c2 := bits.Add64(sum1, carry, 0)
			result[i+j] = sum2
			// The true carry out of this column is hi+c1+c2 exactly, and a
			// standard schoolbook-multiply bound keeps it within one word
			// (the column total never exceeds 2^128-1), so a plain uint64
			// add here is exact, not a truncation.
			carry = hi + c1 + c2
		}
		// Ripple the final carry into the remaining words. A single word
		// always suffices by the standard schoolbook-multiply bound, but
		// rippling properly costs nothing and doesn't rely on proving that.
		k := i + bWords
		for carry != 0 && k < uint32(len(result)) {
			sum, c := bits.Add64(result[k], carry, 0)
			result[k] = sum
			carry = c
			k++
		}
	}
	return result
}

// mulTruncate multiplies two known, unsigned-interpreted operands and
// truncates the schoolbook product to width bits, allocating a fresh
// unsigned SVInt of that width. Callers restore signedness themselves.
func mulTruncate(a, b SVInt, width uint32) SVInt {
	aWords := a.activeWords()
	bWords := b.activeWords()
	if aWords == 0 || bWords == 0 {
		return New(width, 0, false)
	}
	product := mulWords(wordsSlice(a, aWords), aWords, wordsSlice(b, bWords), bWords)
	nv := allocUninitializedFor(width, false, false)
	if nv.isSingleWord() {
		nv.val = product[0]
	} else {
		n := nv.words()
		for i := uint32(0); i < n && i < uint32(len(product)); i++ {
			nv.word[i] = product[i]
		}
	}
	clearUnusedBits(&nv)
	return nv
}
