// Package calc implements operand parsing and summation for addup.
//
// Operands are IEEE-754 double-precision values; everything strconv.ParseFloat
// accepts for a float64 is a valid operand, including signs, decimals,
// scientific notation, and the Inf/NaN spellings. Summation is plain float64
// addition and inherits the rounding, overflow-to-infinity, and NaN-propagation
// behavior of that representation.
package calc

import (
	"errors"
	"fmt"
	"strconv"
)

// ParseError reports an operand that could not be converted to a number.
// It wraps the underlying strconv error so callers can inspect the cause
// with errors.As.
type ParseError struct {
	Token string
	Err   error
}

// Error implements the error interface for ParseError.
func (e *ParseError) Error() string {
	return fmt.Sprintf("operand %q is not a number: %v", e.Token, e.Err)
}

// Unwrap returns the underlying parse error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// ParseOperand converts a single command-line operand to a float64.
//
// Syntactically valid operands whose magnitude exceeds the float64 range are
// not rejected; they saturate the way IEEE-754 overflow does, so "1e999"
// parses to +Inf. Anything else strconv.ParseFloat refuses yields a
// *ParseError.
func ParseOperand(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// Out-of-range literals still carry a usable saturated value.
		if errors.Is(err, strconv.ErrRange) {
			return v, nil
		}
		return 0, &ParseError{Token: s, Err: err}
	}
	return v, nil
}

// Sum adds two operands using IEEE-754 double-precision semantics. It cannot
// fail: overflow produces an infinity and NaN operands propagate, neither of
// which is an error.
func Sum(a, b float64) float64 {
	return a + b
}
