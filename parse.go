package svint

import (
	"strings"

	"github.com/nboro94/slang/internal/charinfo"
)

// LiteralBase is the radix marker that follows the tick in a sized
// literal (e.g. the 'h in 8'hFF).
type LiteralBase int

const (
	LiteralDecimal LiteralBase = iota
	LiteralHex
	LiteralOctal
	LiteralBinary
)

// literalBaseFromChar maps a radix letter ('d','h','o','b', case
// insensitive) to a LiteralBase, reporting ok=false for anything else.
func literalBaseFromChar(c byte) (LiteralBase, bool) {
	switch c {
	case 'd', 'D':
		return LiteralDecimal, true
	case 'h', 'H':
		return LiteralHex, true
	case 'o', 'O':
		return LiteralOctal, true
	case 'b', 'B':
		return LiteralBinary, true
	default:
		return 0, false
	}
}

// FromString parses a sized SystemVerilog integer literal of the form
// [sign][size]'[s]<base><digits>, e.g. "8'hFF", "4'sb10x1", "'d5",
// "-32'sd1". A leading '+' or '-' is consumed first and applied by
// negating the parsed magnitude at the end, matching the original
// kernel's fromString, which detects the sign before anything else and
// negates only once the rest of the literal has been decoded. A bare
// digit sequence with no tick is parsed as an unsized, signed decimal
// literal 32 bits wide, matching the default the original kernel falls
// back to when no size is given.
func FromString(s string) (SVInt, error) {
	if s == "" {
		return SVInt{}, parseErr(s, "empty literal")
	}

	negative := false
	if s[0] == '+' || s[0] == '-' {
		negative = s[0] == '-'
		s = s[1:]
	}
	if s == "" {
		return SVInt{}, parseErr(s, "empty literal")
	}

	v, err := fromSignlessString(s)
	if err != nil {
		return SVInt{}, err
	}
	if negative {
		v = v.Neg()
	}
	return v, nil
}

func fromSignlessString(s string) (SVInt, error) {
	tick := strings.IndexByte(s, '\'')
	if tick < 0 {
		return fromDecimalOnly(s)
	}

	sizeText := s[:tick]
	rest := s[tick+1:]

	bits := uint32(32)
	if sizeText != "" {
		n, err := parseUnsignedDecimal(sizeText)
		if err != nil {
			return SVInt{}, parseErr(s, "invalid size field")
		}
		if n == 0 || n > MaxBits {
			return SVInt{}, parseErr(s, "size field out of range")
		}
		bits = uint32(n)
	}

	signed := false
	if len(rest) > 0 && (rest[0] == 's' || rest[0] == 'S') {
		signed = true
		rest = rest[1:]
	}

	if rest == "" {
		return SVInt{}, parseErr(s, "missing base specifier")
	}
	base, ok := literalBaseFromChar(rest[0])
	if !ok {
		return SVInt{}, parseErr(s, "unrecognized base specifier %q", rest[0])
	}
	digits := rest[1:]
	if digits == "" {
		return SVInt{}, parseErr(s, "missing digits")
	}

	return FromDigits(bits, signed, base, digits)
}

func fromDecimalOnly(s string) (SVInt, error) {
	v, err := FromDigits(32, true, LiteralDecimal, s)
	if err != nil {
		return SVInt{}, err
	}
	return v, nil
}

func parseUnsignedDecimal(s string) (uint64, error) {
	if s == "" {
		return 0, parseErr(s, "empty decimal")
	}
	var n uint64
	for i := 0; i < len(s); i++ {
		if !charinfo.IsDecimalDigit(s[i]) {
			return 0, parseErr(s, "non-digit character %q", s[i])
		}
		n = n*10 + uint64(s[i]-'0')
	}
	return n, nil
}

// FromDigits builds a value of the given width and signedness from a
// digit string in the given base, underscores allowed as separators
// (stripped before interpretation, as SystemVerilog literals permit).
// A decimal digit string may hold an unknown digit only when that digit
// is the whole string (a decimal literal can't mix known and unknown
// digit groups the way binary/octal/hex can); that lone digit then fills
// every bit of the value with X or Z, whatever the signedness.
func FromDigits(bits uint32, signed bool, base LiteralBase, digits string) (SVInt, error) {
	requireNonZeroWidth(bits)
	clean := stripUnderscores(digits)
	if clean == "" {
		return SVInt{}, parseErr(digits, "no digits")
	}

	if base == LiteralDecimal {
		return fromDecimalDigits(bits, signed, clean, digits)
	}

	bitsPerDigit := uint32(4)
	switch base {
	case LiteralOctal:
		bitsPerDigit = 3
	case LiteralBinary:
		bitsPerDigit = 1
	}

	anyUnknown := false
	for i := 0; i < len(clean); i++ {
		if isUnknownDigit(clean[i]) {
			anyUnknown = true
			break
		}
	}

	v := allocUninitializedFor(bits, signed, anyUnknown)
	n := len(clean)
	for i := 0; i < n; i++ {
		c := clean[n-1-i]
		startBit := uint32(i) * bitsPerDigit
		if startBit >= bits {
			continue
		}
		vbit, ubit, ok := decodeDigit(c, base)
		if !ok {
			return SVInt{}, parseErr(digits, "invalid digit %q for base", c)
		}
		for b := uint32(0); b < bitsPerDigit; b++ {
			bitPos := startBit + b
			if bitPos >= bits {
				break
			}
			if vbit&(1<<b) != 0 {
				w, bo := bitPos/bitsPerWord, bitPos%bitsPerWord
				v.setWordAt(w, v.wordAt(w)|(uint64(1)<<bo))
			}
			if anyUnknown && ubit&(1<<b) != 0 {
				w, bo := bitPos/bitsPerWord, bitPos%bitsPerWord
				v.setUWordAt(w, v.uwordAt(w)|(uint64(1)<<bo))
			}
		}
	}
	if anyUnknown {
		extendTopUnknown(&v, uint32(n)*bitsPerDigit, bits)
	}
	clearUnusedBits(&v)
	if anyUnknown {
		checkUnknown(&v)
	}
	return v, nil
}

// extendTopUnknown implements the original kernel's fromDigits rule for a
// digit string narrower than the declared width: the unwritten high-order
// bits are filled with zero, unless the topmost digit actually written was
// itself unknown, in which case its X or Z state is replicated across every
// remaining high bit rather than leaving them at known zero — the same
// distinction a raw sign-extension would draw between a known and an
// unknown sign bit.
func extendTopUnknown(v *SVInt, writtenBits, bits uint32) {
	if writtenBits == 0 || writtenBits >= bits {
		return
	}
	topBit := writtenBits - 1
	w, bo := topBit/bitsPerWord, topBit%bitsPerWord
	if v.uwordAt(w)&(uint64(1)<<bo) == 0 {
		return
	}
	value := v.wordAt(w)&(uint64(1)<<bo) != 0
	for bitPos := writtenBits; bitPos < bits; bitPos++ {
		w, bo := bitPos/bitsPerWord, bitPos%bitsPerWord
		v.setUWordAt(w, v.uwordAt(w)|(uint64(1)<<bo))
		if value {
			v.setWordAt(w, v.wordAt(w)|(uint64(1)<<bo))
		}
	}
}

func isUnknownDigit(c byte) bool {
	return c == 'x' || c == 'X' || c == 'z' || c == 'Z' || c == '?'
}

// decodeDigit decodes one literal digit into its (value, unknown) nibble
// pair. An unknown digit ('x'/'z'/'?') fills every bit position of the
// digit's width with X or Z, since a partial-unknown nibble has no
// literal syntax.
func decodeDigit(c byte, base LiteralBase) (vbits, ubits uint8, ok bool) {
	switch {
	case c == 'x' || c == 'X':
		return 0, 0xF, true
	case c == 'z' || c == 'Z' || c == '?':
		return 0xF, 0xF, true
	}
	dv, isDigit := charinfo.DigitValue(c)
	if !isDigit {
		return 0, 0, false
	}
	limit := uint8(16)
	switch base {
	case LiteralOctal:
		limit = 8
	case LiteralBinary:
		limit = 2
	}
	if dv >= limit {
		return 0, 0, false
	}
	return dv, 0, true
}

func fromDecimalDigits(bits uint32, signed bool, clean, original string) (SVInt, error) {
	if len(clean) == 1 && isUnknownDigit(clean[0]) {
		if clean[0] == 'z' || clean[0] == 'Z' || clean[0] == '?' {
			return CreateFillZ(bits, signed), nil
		}
		return CreateFillX(bits, signed), nil
	}

	for i := 0; i < len(clean); i++ {
		if isUnknownDigit(clean[i]) {
			return SVInt{}, parseErr(original, "decimal literal may have at most one digit, and only if unknown")
		}
		if !charinfo.IsDecimalDigit(clean[i]) {
			return SVInt{}, parseErr(original, "invalid decimal digit %q", clean[i])
		}
	}

	acc := New(bits, 0, signed)
	ten := New(bits, 10, signed)
	for i := 0; i < len(clean); i++ {
		d := uint64(clean[i] - '0')
		acc = acc.Mul(ten).Add(New(bits, d, signed))
	}
	return acc, nil
}

func stripUnderscores(s string) string {
	if !strings.Contains(s, "_") {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '_' {
			sb.WriteByte(s[i])
		}
	}
	return sb.String()
}
