package errors

import (
	"context"
	stderrors "errors"
	"fmt"
)

// Kind classifies why a backend fetch failed.
type Kind string

const (
	KindTransport Kind = "transport"
	KindStatus    Kind = "status"
	KindPayload   Kind = "payload"
	KindNotFound  Kind = "not_found"
	KindCancelled Kind = "cancelled"
)

// FetchError represents a failed backend request. Views never show it
// directly; they convert it into a static message.
type FetchError struct {
	Kind       Kind
	Op         string
	StatusCode int
	Detail     string
	Err        error
}

// NewTransportError wraps a network-level failure for operation op.
func NewTransportError(op string, err error) error {
	if stderrors.Is(err, context.Canceled) {
		return &FetchError{Kind: KindCancelled, Op: op, Err: err}
	}
	return &FetchError{Kind: KindTransport, Op: op, Err: err}
}

// NewStatusError records a non-2xx response. detail is the backend-provided
// message, if one could be extracted.
func NewStatusError(op string, status int, detail string) error {
	return &FetchError{Kind: KindStatus, Op: op, StatusCode: status, Detail: detail}
}

// NewPayloadError records a body that could not be decoded or validated.
func NewPayloadError(op string, err error) error {
	return &FetchError{Kind: KindPayload, Op: op, Err: err}
}

// NewNotFoundError records a lookup with no match inside a fetched collection.
func NewNotFoundError(op, key string) error {
	return &FetchError{Kind: KindNotFound, Op: op, Detail: key}
}

func (e *FetchError) Error() string {
	if e == nil {
		return ""
	}

	switch e.Kind {
	case KindStatus:
		if e.Detail != "" {
			return fmt.Sprintf("%s: %s: status %d: %s", e.Op, e.Kind, e.StatusCode, e.Detail)
		}
		return fmt.Sprintf("%s: %s: status %d", e.Op, e.Kind, e.StatusCode)
	case KindNotFound:
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Kind, e.Detail)
	}

	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Kind)
}

// Unwrap exposes the underlying error.
func (e *FetchError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is matches another FetchError by kind, so errors.Is(err, &FetchError{Kind: KindStatus}) works.
func (e *FetchError) Is(target error) bool {
	var other *FetchError
	if !stderrors.As(target, &other) {
		return false
	}
	return e.Kind == other.Kind
}

// KindOf returns the kind of the first FetchError in err's chain, or an empty Kind.
func KindOf(err error) Kind {
	var fe *FetchError
	if stderrors.As(err, &fe) {
		return fe.Kind
	}
	return ""
}

// IsCancelled reports whether err came from an abandoned request.
func IsCancelled(err error) bool {
	if stderrors.Is(err, context.Canceled) {
		return true
	}
	return KindOf(err) == KindCancelled
}
