package service

import "errors"

// ErrorKind classifies every failure the lifecycle service can produce. The
// set is closed; the HTTP layer maps kinds to status codes and nothing else
// escapes unclassified.
type ErrorKind int

const (
	// KindValidation marks malformed or incomplete input, detected before
	// touching storage. Not retryable.
	KindValidation ErrorKind = iota

	// KindNotFound marks a missing board, column or task. For tasks it also
	// covers "exists but belongs to someone else" and "already deleted" —
	// deliberately indistinguishable so callers cannot probe for existence.
	KindNotFound

	// KindForbidden marks a move whose target column exists but hangs off a
	// different board than the task. The resource is real; the caller just
	// cannot reach it.
	KindForbidden

	// KindConflict marks a uniqueness violation, e.g. provisioning a second
	// board for an owner.
	KindConflict
)

// Error carries a kind and a human-readable message.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func ErrValidation(msg string) error {
	return &Error{Kind: KindValidation, Message: msg}
}

func ErrNotFound(msg string) error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func ErrForbidden(msg string) error {
	return &Error{Kind: KindForbidden, Message: msg}
}

func ErrConflict(msg string) error {
	return &Error{Kind: KindConflict, Message: msg}
}

// KindOf extracts the kind from an error produced by this package. The
// second result is false for foreign (infrastructure) errors.
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind ErrorKind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}
