// Package svint implements SVInt, the four-state arbitrary-precision
// integer value type at the core of a hardware-description-language
// compiler's numeric representation. Every bit carries one of four logic
// values — 0, 1, X (unknown), Z (high-impedance) — and every operation
// preserves hardware-simulation semantics under which unknowns poison
// results. Values carry a fixed bit width and a signedness flag; all
// arithmetic is performed modulo that width.
//
// SVInt is a plain value type with no internal synchronization. Reading
// the same value from multiple goroutines is safe; mutating it
// concurrently is not — the same contract an ordinary Go struct carries.
package svint

// MaxBits is the largest declared width a literal's size specifier may
// request (a 24-bit size field), roughly sixteen million bits.
const MaxBits = (1 << 24) - 1

// bitsPerWord is the width of one storage word.
const bitsPerWord = 64

// SVInt is the four-state value. The zero value is not meaningful; use
// New, FromString, FromDigits, CreateFillX, or CreateFillZ.
type SVInt struct {
	bitWidth    uint32
	signFlag    bool
	unknownFlag bool

	// val holds the value when the representation is inline (bitWidth<=64
	// and unknownFlag is false). word is nil in that case.
	val uint64

	// word holds the heap representation: numWords(bitWidth) words of
	// value plane, followed (iff unknownFlag) by numWords(bitWidth) words
	// of unknown plane, addressed off the same base slice per the design
	// note that bit-copy helpers should never juggle two separate buffers.
	word []uint64
}

// Zero is the canonical 32-bit signed zero, matching slang's SVInt::Zero.
var Zero = New(32, 0, true)

// One is the canonical 32-bit signed one, matching slang's SVInt::One.
var One = New(32, 1, true)

// New constructs a value of the given width and signedness from a uint64,
// truncating if bits < 64.
func New(bits uint32, value uint64, signed bool) SVInt {
	requireNonZeroWidth(bits)
	var v SVInt
	if bits <= bitsPerWord {
		v = SVInt{bitWidth: bits, signFlag: signed, val: value}
	} else {
		v = allocZeroed(bits, signed, false)
		v.word[0] = value
	}
	clearUnusedBits(&v)
	return v
}

// CreateFillX returns a value of the given width whose every bit is X.
func CreateFillX(bits uint32, signed bool) SVInt {
	v := allocUninitializedFor(bits, signed, true)
	setAllX(&v)
	return v
}

// CreateFillZ returns a value of the given width whose every bit is Z.
func CreateFillZ(bits uint32, signed bool) SVInt {
	v := allocUninitializedFor(bits, signed, true)
	setAllZ(&v)
	return v
}

// allocUninitializedFor allocates bits<=64-with-unknown or bits>64 values;
// for the plain small known case it just builds an inline zero value since
// there is nothing to allocate.
func allocUninitializedFor(bits uint32, signed, unknown bool) SVInt {
	requireNonZeroWidth(bits)
	if bits <= bitsPerWord && !unknown {
		return SVInt{bitWidth: bits, signFlag: signed}
	}
	return allocUninitialized(bits, signed, unknown)
}

func requireNonZeroWidth(bits uint32) {
	if bits == 0 {
		violate("zero-width value is not valid outside concatenation")
	}
	if bits > MaxBits {
		violate("width %d exceeds MaxBits (%d)", bits, MaxBits)
	}
}

// BitWidth returns the declared width in bits.
func (v SVInt) BitWidth() uint32 { return v.bitWidth }

// IsSigned reports whether v is treated as signed for extension,
// comparison, division, remainder, and rendering.
func (v SVInt) IsSigned() bool { return v.signFlag }

// HasUnknown reports whether any bit of v is X or Z.
func (v SVInt) HasUnknown() bool { return v.unknownFlag }

// SetSigned returns a copy of v with the signedness flag set to signed.
// This does not alter any bit.
func (v SVInt) SetSigned(signed bool) SVInt {
	v.signFlag = signed
	return v
}

// isSingleWord reports whether v uses the inline representation.
func (v SVInt) isSingleWord() bool {
	return v.word == nil
}

// numWords returns ceil(bits/64).
func numWords(bits uint32) uint32 {
	return (bits + bitsPerWord - 1) / bitsPerWord
}

// words returns the number of value-plane words v occupies.
func (v SVInt) words() uint32 {
	return numWords(v.bitWidth)
}

// wordAt returns value-plane word i (0 outside range).
func (v SVInt) wordAt(i uint32) uint64 {
	if v.isSingleWord() {
		if i == 0 {
			return v.val
		}
		return 0
	}
	if i >= v.words() {
		return 0
	}
	return v.word[i]
}

// uwordAt returns unknown-plane word i, or 0 if v has no unknown bits.
func (v SVInt) uwordAt(i uint32) uint64 {
	if !v.unknownFlag {
		return 0
	}
	w := v.words()
	if i >= w {
		return 0
	}
	return v.word[w+i]
}

func (v *SVInt) setWordAt(i uint32, val uint64) {
	if v.isSingleWord() {
		v.val = val
		return
	}
	v.word[i] = val
}

func (v *SVInt) setUWordAt(i uint32, val uint64) {
	if !v.unknownFlag {
		violate("setUWordAt called on a value with no unknown plane")
	}
	v.word[v.words()+i] = val
}

// IsNegative reports whether v, interpreted per its signedness, is
// negative. Unsigned values are never negative.
func (v SVInt) IsNegative() bool {
	if !v.signFlag {
		return false
	}
	b, _ := v.Bit(int64(v.bitWidth) - 1)
	return b == Bit1
}

// IsOdd reports whether the least-significant bit is 1.
func (v SVInt) IsOdd() bool {
	return v.wordAt(0)&1 != 0
}

// GetActiveBits returns 1 + the index of the highest set bit in the value
// plane, or 0 if the value plane is entirely zero.
func (v SVInt) GetActiveBits() uint32 {
	for i := int(v.words()) - 1; i >= 0; i-- {
		w := v.wordAt(uint32(i))
		if w != 0 {
			return uint32(i)*bitsPerWord + (bitsPerWord - uint32(leadingZeros64(w)))
		}
	}
	return 0
}

// activeWords returns the number of value-plane words needed to hold
// GetActiveBits() bits, i.e. the count of words that matter to the
// schoolbook multiply/divide kernels.
func (v SVInt) activeWords() uint32 {
	bits := v.GetActiveBits()
	if bits == 0 {
		return 0
	}
	return numWords(bits)
}

// CountPopulation returns the number of set bits in the value plane.
func (v SVInt) CountPopulation() uint32 {
	var n uint32
	for i := uint32(0); i < v.words(); i++ {
		n += popcount64(v.wordAt(i))
	}
	return n
}

// CountLeadingZeros returns the number of leading (most-significant) zero
// bits in the value plane, over the declared width.
func (v SVInt) CountLeadingZeros() uint32 {
	return v.bitWidth - v.GetActiveBits()
}

// CountLeadingOnes returns the number of leading (most-significant) one
// bits in the value plane, over the declared width.
func (v SVInt) CountLeadingOnes() uint32 {
	return v.Not().CountLeadingZeros()
}

// Integer is the set of Go integer types As can narrow an SVInt into.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// As narrows v to T, returning ok=false if v has unknown bits or the
// value does not fit in T.
func As[T Integer](v SVInt) (result T, ok bool) {
	if v.unknownFlag {
		return 0, false
	}
	if v.GetActiveBits() > 64 {
		return 0, false
	}
	raw := v.wordAt(0)
	if v.signFlag && v.IsNegative() {
		neg := int64(signExtendWord(raw, v.bitWidth))
		result = T(neg)
		if int64(result) != neg {
			return 0, false
		}
		return result, true
	}
	result = T(raw)
	if uint64(result) != raw {
		return 0, false
	}
	return result, true
}

// signExtendWord sign-extends the low `bits` bits of raw into a full
// 64-bit two's-complement value.
func signExtendWord(raw uint64, bits uint32) uint64 {
	if bits >= 64 {
		return raw
	}
	shift := 64 - bits
	return uint64(int64(raw<<shift) >> shift)
}
