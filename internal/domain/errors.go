package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidConfig   = errors.New("invalid config")
	ErrMissingVar      = errors.New("missing variable")
	ErrExecution       = errors.New("execution error")
	ErrInvalidName     = errors.New("invalid name")
	ErrEmptyIdentifier = errors.New("empty identifier")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindNotFound        ErrorKind = "not_found"
	KindInvalidConfig   ErrorKind = "invalid_config"
	KindMissingVar      ErrorKind = "missing_variable"
	KindExecution       ErrorKind = "execution"
	KindInvalidName     ErrorKind = "invalid_name"
	KindEmptyIdentifier ErrorKind = "empty_identifier"
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

// InvalidNameError reports a raw name holding characters outside the identifier/separator set.
type InvalidNameError struct {
	Name string
	Char rune
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("name %q contains invalid character %q", e.Name, e.Char)
}

func (e *InvalidNameError) Is(target error) bool { return target == ErrInvalidName }

// EmptyIdentifierError reports a name that is empty once whitespace, the root namespace
// and reserved words are stripped.
type EmptyIdentifierError struct {
	Name string
}

func (e *EmptyIdentifierError) Error() string {
	if e.Name == "" {
		return "name is empty"
	}
	return fmt.Sprintf("name %q is empty after normalization", e.Name)
}

func (e *EmptyIdentifierError) Is(target error) bool { return target == ErrEmptyIdentifier }

// IsKind helps callers classify errors without depending on infra packages.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	switch kind {
	case KindInvalidName:
		return errors.Is(err, ErrInvalidName)
	case KindEmptyIdentifier:
		return errors.Is(err, ErrEmptyIdentifier)
	}
	return false
}
