package concat

import (
	"errors"
	"fmt"
)

var (
	// ErrNoPaths is returned when Aggregate is called without inputs.
	ErrNoPaths = errors.New("no paths provided")
	// ErrInvalidInput is returned when an input path does not exist.
	ErrInvalidInput = errors.New("Path or file does not exist")
)

// ErrorKind classifies a per-entry failure.
type ErrorKind int

const (
	// NotReadable means the file could not be opened or read.
	NotReadable ErrorKind = iota
	// NotUTF8 means the file contents are not valid UTF-8.
	NotUTF8
	// PathEscapesBase means the file lies outside the base its label is relative to.
	PathEscapesBase
	// WalkFailure means a directory could not be enumerated.
	WalkFailure
	// UnsupportedType means an input is neither a regular file nor a directory.
	UnsupportedType
)

func (k ErrorKind) String() string {
	switch k {
	case NotReadable:
		return "not readable"
	case NotUTF8:
		return "not valid UTF-8"
	case PathEscapesBase:
		return "path escapes base"
	case WalkFailure:
		return "walk failure"
	case UnsupportedType:
		return "unsupported type"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// TraversalError records a failure confined to one entry. It never aborts a run.
type TraversalError struct {
	Kind ErrorKind
	Path string
	Err  error
}

func (e *TraversalError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Path, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", e.Path, e.Kind, e.Err)
}

func (e *TraversalError) Unwrap() error {
	return e.Err
}
