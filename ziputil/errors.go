package ziputil

import (
	"errors"
	"fmt"
)

// Sentinel errors for package ziputil.
// These errors can be checked with errors.Is() for specific error handling.
var (
	// Failure kinds. An *Error matches the sentinel of its Kind.
	ErrSourceNotFound = errors.New("source not found")
	ErrIO             = errors.New("i/o failure")
	ErrUnexpectedNull = errors.New("unexpected null")

	// File and directory errors
	ErrExpectedFile      = errors.New("expected file, got directory")
	ErrExpectedDirectory = errors.New("expected directory but got file")

	// Archive errors
	ErrIllegalEntryPath = errors.New("entry path escapes destination")
	ErrNilEntry         = errors.New("archive entry is nil")
	ErrEmptyEntryName   = errors.New("archive entry has no name")
	ErrEmptySourcePath  = errors.New("source path is empty")
)

// Kind classifies a failure so callers can pick a recovery strategy.
type Kind int

const (
	KindIO Kind = iota
	KindNotFound
	KindNull
)

// Stable error codes reported alongside each kind.
const (
	CodeNotFound = "ZIP-FNF-001"
	CodeIO       = "ZIP-IO-002"
	CodeNull     = "ZIP-NUL-003"
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindNull:
		return "null"
	case KindIO:
		return "io"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// Code returns the stable error code for the kind.
func (k Kind) Code() string {
	switch k {
	case KindNotFound:
		return CodeNotFound
	case KindNull:
		return CodeNull
	default:
		return CodeIO
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindNotFound:
		return ErrSourceNotFound
	case KindNull:
		return ErrUnexpectedNull
	default:
		return ErrIO
	}
}

// Error is the failure returned by every archive operation.
type Error struct {
	Kind Kind
	Code string
	Op   string // operation, e.g. "zip file"
	Path string // path being opened, read or written
	Err  error  // underlying cause
}

func newError(kind Kind, op, path string, err error) *Error {
	return &Error{
		Kind: kind,
		Code: kind.Code(),
		Op:   op,
		Path: path,
		Err:  err,
	}
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s [%s] %s", e.Op, e.Code, e.Kind.sentinel())
	if e.Path != "" {
		msg += " " + e.Path
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel of e's kind.
func (e *Error) Is(target error) bool {
	return target == e.Kind.sentinel()
}

// KindOf returns the kind of err, or KindIO when err is not an *Error.
func KindOf(err error) Kind {
	var zerr *Error
	if errors.As(err, &zerr) {
		return zerr.Kind
	}
	return KindIO
}

// asError keeps an existing *Error intact and wraps anything else with kind.
func asError(kind Kind, op, path string, err error) error {
	if err == nil {
		return nil
	}
	var zerr *Error
	if errors.As(err, &zerr) {
		return err
	}
	return newError(kind, op, path, err)
}
