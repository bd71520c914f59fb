package services

import (
	"context"
	"errors"
	"fmt"
)

// ErrorKind classifies handler failures. User-facing text is derived
// from the kind, never from the underlying error.
type ErrorKind string

const (
	KindValidation         ErrorKind = "validation"
	KindDependencyTimeout  ErrorKind = "dependency_timeout"
	KindDependencyRejected ErrorKind = "dependency_rejected"
	KindInternal           ErrorKind = "internal"
)

// FlowError tags an underlying error with its kind
type FlowError struct {
	Kind ErrorKind
	Err  error
}

func (e *FlowError) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *FlowError) Unwrap() error {
	return e.Err
}

func dependencyRejected(err error) error {
	return &FlowError{Kind: KindDependencyRejected, Err: err}
}

func internalError(err error) error {
	return &FlowError{Kind: KindInternal, Err: err}
}

// kindOf resolves an error to its kind. Deadline expiry anywhere in
// the chain counts as a dependency timeout.
func kindOf(err error) ErrorKind {
	var fe *FlowError
	if errors.As(err, &fe) {
		if fe.Kind == KindDependencyRejected && errors.Is(err, context.DeadlineExceeded) {
			return KindDependencyTimeout
		}
		return fe.Kind
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return KindDependencyTimeout
	}
	return KindInternal
}
