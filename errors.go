package svint

import (
	"fmt"

	"github.com/pkg/errors"
)

// ParseError reports a recoverable failure to parse or construct an SVInt
// from literal text: an invalid literal, an oversized width, an empty
// digit sequence, a digit that doesn't fit its radix, a decimal with more
// than one unknown digit, or a size field with stray characters.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	if e.Input == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %q", e.Reason, e.Input)
}

func parseErr(input, reason string, args ...interface{}) error {
	if len(args) > 0 {
		reason = fmt.Sprintf(reason, args...)
	}
	return errors.WithStack(&ParseError{Input: input, Reason: reason})
}

// ContractViolation is a programming error, not a recoverable failure:
// msb < lsb in a slice, zero-width arithmetic, or calling
// allocUninitialized when the inline representation would do. An
// out-of-range bit index is not one of these; Bit reports it as X.
// These abort the caller rather than returning an error, the same way the
// teacher's multibitvalue.go called log.Fatal on an out-of-range bit index.
type ContractViolation struct {
	Msg string
}

func (e ContractViolation) Error() string {
	return e.Msg
}

func violate(format string, args ...interface{}) {
	panic(ContractViolation{Msg: fmt.Sprintf(format, args...)})
}
