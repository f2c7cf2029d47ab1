package decswar

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a recoverable parse failure. ErrorKind implements
// error so the kinds can be matched directly with errors.Is:
//
//	if errors.Is(err, decswar.Overflow) { ... }
type ErrorKind uint8

const (
	// Empty is returned for a zero-length input, or for a sign with no
	// digits following it.
	Empty ErrorKind = iota + 1

	// NonDecimal is returned when a byte outside '0'-'9' is found where a
	// digit was expected.
	NonDecimal

	// Overflow is returned when the magnitude exceeds the largest positive
	// value of the target width.
	Overflow

	// NegOverflow is returned when a negative value is smaller than the
	// minimum of the target width.
	NegOverflow
)

var kindNames = [...]string{
	Empty:       "empty",
	NonDecimal:  "non-decimal",
	Overflow:    "overflow",
	NegOverflow: "negative overflow",
}

func (k ErrorKind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return fmt.Sprintf("ErrorKind(%d)", uint8(k))
}

func (k ErrorKind) Error() string { return "decswar: " + k.String() }

// ParseError is returned by every checked parse function.
type ParseError struct {
	Kind  ErrorKind
	Width Width

	// Input is a copy of the bytes that failed to parse.
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("decswar: parsing %q as %s: %s", e.Input, e.Width, e.Kind.String())
}

func (e *ParseError) Unwrap() error { return e.Kind }

// KindOf returns the ErrorKind carried by err, or 0 if err did not come from
// this package.
func KindOf(err error) ErrorKind {
	var k ErrorKind
	if errors.As(err, &k) {
		return k
	}
	return 0
}

func newParseError(kind ErrorKind, w Width, b []byte) error {
	return &ParseError{Kind: kind, Width: w, Input: string(b)}
}
