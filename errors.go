package ffspm

import (
	"errors"
	"fmt"
)

// Kind identifies one of the four error categories the miner surfaces
// to its caller. All four are fatal at load/config time; mining itself
// never produces an error given well-formed inputs.
type Kind int

const (
	// InputUnavailable: the transaction or neighborhood source cannot be
	// read.
	InputUnavailable Kind = iota
	// MalformedRecord: a transaction line lacks the expected
	// three-colon-separated fields, or item/quantity lengths disagree.
	MalformedRecord
	// InvalidConfig: minSup <= 0, unrecognized regionCount, or minSup
	// given as a non-numeric string.
	InvalidConfig
	// NonNumericQuantity: a quantity cannot be parsed as a non-negative
	// integer.
	NonNumericQuantity
)

func (k Kind) String() string {
	switch k {
	case InputUnavailable:
		return "InputUnavailable"
	case MalformedRecord:
		return "MalformedRecord"
	case InvalidConfig:
		return "InvalidConfig"
	case NonNumericQuantity:
		return "NonNumericQuantity"
	default:
		return "UnknownErrorKind"
	}
}

// Error wraps an underlying error with the operation that produced it
// and which of the four kinds it belongs to, so callers can distinguish
// them with errors.As / Is.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

// Unwrap exposes the underlying error for errors.Is/As.
func (e *Error) Unwrap() error { return e.Err }

// NewError constructs an *Error for the given kind/op/cause.
func NewError(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// IsKind reports whether err is (or wraps) an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind == kind
	}
	return false
}
