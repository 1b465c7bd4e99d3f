package protocol

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a business failure of a protocol operation so the
// transport binding can map it to a wire-level error without inspecting
// internals.
type ErrorKind int

const (
	// KindNotFound covers unknown negotiations, unknown offers and tenant
	// mismatches. Not retryable without new information.
	KindNotFound ErrorKind = iota + 1
	// KindBadRequest covers token, policy, offer and agreement validation
	// failures. The message is rejected as-is.
	KindBadRequest
	// KindConflict signals a guard predicate rejected the transition.
	KindConflict
	// KindUnavailable signals the negotiation is leased by another holder;
	// the caller may retry with backoff.
	KindUnavailable
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindBadRequest:
		return "bad request"
	case KindConflict:
		return "conflict"
	case KindUnavailable:
		return "unavailable"
	default:
		return "unknown"
	}
}

// Error is the typed failure returned by protocol operations.
type Error struct {
	Kind   ErrorKind
	Detail string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

// KindOf extracts the error kind from err. It returns 0 for unexpected
// failures that should propagate as internal errors.
func KindOf(err error) ErrorKind {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return 0
}

func notFoundf(format string, args ...interface{}) error {
	return &Error{Kind: KindNotFound, Detail: fmt.Sprintf(format, args...)}
}

func badRequestf(format string, args ...interface{}) error {
	return &Error{Kind: KindBadRequest, Detail: fmt.Sprintf(format, args...)}
}

func conflictf(format string, args ...interface{}) error {
	return &Error{Kind: KindConflict, Detail: fmt.Sprintf(format, args...)}
}

func unavailablef(format string, args ...interface{}) error {
	return &Error{Kind: KindUnavailable, Detail: fmt.Sprintf(format, args...)}
}
