package calc

import (
	"errors"
	"strconv"
)

// ParseError indicates text the tokenizer could not classify. It implements
// InputError.
type ParseError struct {
	// Col is the column of the first rune of the offending text.
	Col int
	// Text is the offending text with whitespace removed.
	Text string
	// Kind is what the tokenizer was scanning: "number", "function",
	// "constant", or the empty string for a rune that starts no token.
	Kind string
}

func (err *ParseError) Error() string {
	var what string
	switch err.Kind {
	case "number":
		what = "malformed number"
	case "function", "constant":
		what = "unknown " + err.Kind
	default:
		what = "invalid token"
	}
	return errpos(err.Col, "parse error: "+what+" "+strconv.Quote(err.Text))
}

func (err *ParseError) Pos() int {
	return err.Col
}

// BracketError indicates brackets that cannot be matched. It implements
// InputError.
type BracketError struct {
	// Col is the position of the unmatched bracket.
	Col int
	// Side tells whether the unmatched bracket is an open or close bracket.
	Side Side
}

func (err *BracketError) Error() string {
	if err.Side == LeftBracket {
		return errpos(err.Col, "bracket mismatch: open bracket with no close bracket")
	}
	return errpos(err.Col, "bracket mismatch: close bracket with no open bracket")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// ExpressionError indicates a postfix sequence that does not describe a
// single value, e.g. an empty sequence or an operator without enough
// operands.
type ExpressionError struct {
	// Reason describes the defect.
	Reason string
}

func (err *ExpressionError) Error() string {
	return "expression error: " + err.Reason
}

// DivideByZeroError is returned for a division whose divisor is exactly
// zero.
type DivideByZeroError struct {
	// X is the dividend.
	X float64
}

func (err *DivideByZeroError) Error() string {
	return "divide by zero: " + strconv.FormatFloat(err.X, 'g', -1, 64) + " / 0"
}

// DomainError is returned when an operator is applied to an argument outside
// its domain.
type DomainError struct {
	// X is the out-of-domain argument.
	X float64
	// Func is the operator.
	Func string
}

func (err *DomainError) Error() string {
	return "math domain error: " + strconv.FormatFloat(err.X, 'g', -1, 64) + " outside domain of " + err.Func
}

// ErrConsumed is returned when converting an infix sequence that has already
// been converted.
var ErrConsumed = errors.New("calc: infix sequence already consumed")

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting
// from text that cannot be tokenized or whose brackets don't match
// implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the 1-based rune column of the
	// token that caused it.
	Pos() int
}

var (
	_ InputError = (*ParseError)(nil)
	_ InputError = (*BracketError)(nil)
)
