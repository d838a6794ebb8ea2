package roa

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedPrefix         = errors.New("malformed prefix")
	ErrInvalidPrefixLength     = errors.New("invalid prefix length")
	ErrInvalidMaxLength        = errors.New("invalid maxlength")
	ErrInvalidAddress          = errors.New("invalid IP address")
	ErrPrefixLengthTooLarge    = errors.New("invalid prefix length, too large")
	ErrPrefixMaxLengthInverted = errors.New("invalid prefix length / maxlength")
	ErrMaxLengthTooLarge       = errors.New("invalid maxlength, too large")
)

// ParseError records the input line that failed to parse and why.
type ParseError struct {
	Line string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v: %s", e.Err, e.Line)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
