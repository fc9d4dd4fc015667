package svint

import (
	"fmt"
	"io"
	"strings"
)

// Base selects the radix FormatBase renders in.
type Base int

const (
	BaseDecimal Base = iota
	BaseHex
	BaseOctal
	BaseBinary
)

// String renders v with no base given: Binary if bitWidth < 8 or v has
// any unknown bits, Decimal if bitWidth == 32 or v is signed, else Hex
// — the same default-base preference the original kernel's toString
// applies with no explicit radix argument.
func (v SVInt) String() string {
	switch {
	case v.bitWidth < 8 || v.unknownFlag:
		return v.FormatBase(BaseBinary)
	case v.bitWidth == 32 || v.signFlag:
		return v.FormatBase(BaseDecimal)
	default:
		return v.FormatBase(BaseHex)
	}
}

// FormatBase renders v as a sized literal in the given base: an
// optional leading '-', then width and signedness prefix, then digits
// most-significant first. The prefix is omitted for a signed, known,
// 32-bit decimal value — the "bare decimal form" the original kernel's
// writeTo falls back to, the same form a plain negative number literal
// round-trips through. Decimal output is only well-defined for
// fully-known values; an unknown bit there falls back to a single 'x'
// or 'z' digit, the same special case the original kernel gives a
// single all-X or all-Z decimal value.
func (v SVInt) FormatBase(base Base) string {
	if base == BaseDecimal {
		negative, magnitudeDigits := v.decimalDigits()
		bare := v.signFlag && !v.unknownFlag && v.bitWidth == 32
		var sb strings.Builder
		if negative {
			sb.WriteByte('-')
		}
		if bare {
			sb.WriteString(magnitudeDigits)
			return sb.String()
		}
		sb.WriteString(uitoaU32(v.bitWidth))
		sb.WriteByte('\'')
		if v.signFlag {
			sb.WriteByte('s')
		}
		sb.WriteByte('d')
		sb.WriteString(magnitudeDigits)
		return sb.String()
	}

	var sb strings.Builder
	sb.WriteString(uitoaU32(v.bitWidth))
	sb.WriteByte('\'')
	if v.signFlag {
		sb.WriteByte('s')
	}
	switch base {
	case BaseHex:
		sb.WriteByte('h')
	case BaseOctal:
		sb.WriteByte('o')
	default:
		sb.WriteByte('b')
	}

	bitsPerDigit := uint32(4)
	switch base {
	case BaseOctal:
		bitsPerDigit = 3
	case BaseBinary:
		bitsPerDigit = 1
	}

	digits := (v.bitWidth + bitsPerDigit - 1) / bitsPerDigit
	out := make([]byte, digits)
	for d := uint32(0); d < digits; d++ {
		lo := int64(digits-1-d) * int64(bitsPerDigit)
		hi := lo + int64(bitsPerDigit) - 1
		if hi >= int64(v.bitWidth) {
			hi = int64(v.bitWidth) - 1
		}
		out[d] = digitChar(v, hi, lo)
	}
	sb.Write(out)
	return sb.String()
}

// digitChar renders the bits [lo,hi] of v as one literal digit: all-X or
// all-Z render as 'x'/'z', a mix of unknown and known (which SystemVerilog
// literals cannot otherwise express) also renders as 'x', and a fully
// known group renders as its numeral.
func digitChar(v SVInt, hi, lo int64) byte {
	var val uint8
	sawX, sawZ, sawKnown := false, false, false
	for i := lo; i <= hi; i++ {
		b, _ := v.Bit(i)
		switch b {
		case BitX:
			sawX = true
		case BitZ:
			sawZ = true
		default:
			sawKnown = true
			if b == Bit1 {
				val |= 1 << uint(i-lo)
			}
		}
	}
	switch {
	case sawX || (sawZ && sawKnown):
		return 'x'
	case sawZ:
		return 'z'
	default:
		return hexDigitChar(val)
	}
}

func hexDigitChar(v uint8) byte {
	if v < 10 {
		return '0' + v
	}
	return 'A' + (v - 10)
}

// decimalDigits renders v's magnitude in decimal via repeated
// divide-by-ten, the same approach the original kernel's toString takes
// since there is no shift-based shortcut for a non-power-of-two base.
// It reports the sign separately rather than embedding it, since the
// caller decides whether the '-' goes before the whole literal or
// before a bare magnitude.
func (v SVInt) decimalDigits() (negative bool, digits string) {
	if v.unknownFlag {
		// Matches the original kernel's writeTo: an unknown decimal value
		// renders as a single 'z' if its low value-plane word is set
		// (CreateFillZ and any other all/mixed-Z pattern), 'x' otherwise.
		// ReductionOr can never report BitZ — OR-ing in any Z bit's
		// unknown-plane bit makes the reduction itself unknown — so that
		// can't be used to tell the two cases apart.
		if v.wordAt(0) != 0 {
			return false, "z"
		}
		return false, "x"
	}

	negative = v.signFlag && v.IsNegative()
	mag := v
	mag.signFlag = false
	if negative {
		mag = v.Neg()
		mag.signFlag = false
	}

	if mag.GetActiveBits() == 0 {
		return false, "0"
	}

	ten := New(mag.bitWidth, 10, false)
	var out []byte
	cur := mag
	for cur.GetActiveBits() > 0 {
		q, r := udiv(cur, ten)
		out = append(out, byte('0')+byte(r.wordAt(0)))
		cur = q
	}
	// digits were accumulated least-significant first.
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return negative, string(out)
}

// Format implements fmt.Formatter, so an SVInt prints correctly under
// %v, %s, %b, %o, %d, %x, and %X without a caller needing to reach for
// FormatBase directly — the Go-idiomatic equivalent of the original
// kernel's stream-insertion operator. Width is honored the way fmt's
// own integer verbs honor it, right-justified unless the '-' flag is
// set; an unrecognized verb falls back to the same "%!verb(Type=value)"
// text fmt itself emits for a type with no support for that verb.
func (v SVInt) Format(f fmt.State, verb rune) {
	var out string
	switch verb {
	case 'v', 's':
		out = v.String()
	case 'b':
		out = v.FormatBase(BaseBinary)
	case 'o':
		out = v.FormatBase(BaseOctal)
	case 'd':
		out = v.FormatBase(BaseDecimal)
	case 'x':
		out = strings.ToLower(v.FormatBase(BaseHex))
	case 'X':
		out = v.FormatBase(BaseHex)
	default:
		fmt.Fprintf(f, "%%!%c(SVInt=%s)", verb, v.String())
		return
	}

	if width, ok := f.Width(); ok && len(out) < width {
		pad := strings.Repeat(" ", width-len(out))
		if f.Flag('-') {
			out += pad
		} else {
			out = pad + out
		}
	}
	io.WriteString(f, out)
}

func uitoaU32(v uint32) string {
	if v == 0 {
		return "0"
	}
	var buf [10]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return string(buf[i:])
}
