package bigint

import (
	"errors"
	"fmt"
)

var (
	// ErrDivisionByZero is returned by Quo, Rem and friends when the divisor
	// is zero. The operands are never modified when it is returned.
	ErrDivisionByZero = errors.New("bigint: division by zero")

	// ErrMalformedInput is wrapped by ParseError when the input is not an
	// optionally signed run of decimal digits.
	ErrMalformedInput = errors.New("bigint: malformed decimal input")
)

// ParseError describes a string that could not be converted to an Int.
type ParseError struct {
	Input string
	Err   error
}

func (p *ParseError) Error() string {
	return fmt.Sprintf("bigint: parse %q: %v", p.Input, p.Err)
}

func (p *ParseError) Unwrap() error {
	return p.Err
}

func syntaxError(s string) *ParseError {
	return &ParseError{Input: s, Err: ErrMalformedInput}
}
