package pipeline

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why a capture failed.
type ErrorKind int

const (
	// KindUnknown is returned by KindOf for errors not produced by the pipeline.
	KindUnknown ErrorKind = iota
	// KindAllocation means the destination pixel buffer could not be allocated.
	KindAllocation
	// KindPrecondition means the source or request cannot be captured.
	KindPrecondition
	// KindEncode means the composed image could not be encoded.
	KindEncode
	// KindIO means the encoded image could not be written.
	KindIO
)

// String returns the string representation of the kind.
func (k ErrorKind) String() string {
	switch k {
	case KindAllocation:
		return "allocation"
	case KindPrecondition:
		return "precondition"
	case KindEncode:
		return "encode"
	case KindIO:
		return "io"
	default:
		return "unknown"
	}
}

// Sentinels matched by errors.Is against an *Error of the same kind.
var (
	ErrAllocation   = errors.New("allocation failure")
	ErrPrecondition = errors.New("precondition failure")
	ErrEncode       = errors.New("encode failure")
	ErrIO           = errors.New("io failure")
)

// Error is the typed failure returned by every capture entry point.
type Error struct {
	Kind ErrorKind
	Op   string
	Err  error
}

// NewError creates an Error of the given kind.
func NewError(kind ErrorKind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// Errorf creates an Error of the given kind with a formatted cause.
func Errorf(kind ErrorKind, op, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Op: op, Err: fmt.Errorf(format, args...)}
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s failure", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s failure: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for this error's kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrAllocation:
		return e.Kind == KindAllocation
	case ErrPrecondition:
		return e.Kind == KindPrecondition
	case ErrEncode:
		return e.Kind == KindEncode
	case ErrIO:
		return e.Kind == KindIO
	}
	return false
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
