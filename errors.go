package patchdemo

import (
	"errors"
	"fmt"
)

// Sentinel error kinds. Every failure surfaced by an engine is an *Error
// whose Kind is one of these, so callers can match with errors.Is instead of
// string inspection.
var (
	ErrInvalidPath       = errors.New("invalid path")
	ErrPathResolution    = errors.New("path cannot be resolved")
	ErrIndexOutOfRange   = errors.New("index out of range")
	ErrKeyNotFound       = errors.New("key not found")
	ErrMissingValue      = errors.New("missing value")
	ErrUnsupportedTarget = errors.New("unsupported target")
	ErrUnknownOperation  = errors.New("unknown operation")
)

// Error tags a patch failure with its kind and the path of the offending
// operation.
type Error struct {
	Kind error // one of the Err* sentinels
	Path string
	Msg  string
}

func (e *Error) Error() string {
	s := e.Kind.Error()
	if e.Path != "" {
		s += ": " + fmt.Sprintf("%q", e.Path)
	}
	if e.Msg != "" {
		s += ": " + e.Msg
	}
	return s
}

func (e *Error) Unwrap() error { return e.Kind }

// Errorf builds a tagged *Error with a formatted detail message.
func Errorf(kind error, path, format string, args ...any) *Error {
	return &Error{Kind: kind, Path: path, Msg: fmt.Sprintf(format, args...)}
}
