package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrMalformedRecord = errors.New("malformed record")
	ErrInvalidConfig   = errors.New("invalid config")
	ErrNotFound        = errors.New("not found")
	ErrIO              = errors.New("i/o failure")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	// KindMalformedRecord marks a single unusable input record. Non-fatal:
	// the record is dropped and the run continues.
	KindMalformedRecord ErrorKind = "malformed_record"
	KindInvalidConfig   ErrorKind = "invalid_config"
	KindNotFound        ErrorKind = "not_found"
	// KindIO marks an unreadable input or unwritable output. Fatal: the
	// run aborts with no partial-result guarantee.
	KindIO        ErrorKind = "io"
	KindExecution ErrorKind = "execution"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: relevant file path
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind helps callers classify errors without depending on infra packages.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}
