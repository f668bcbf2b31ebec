package types

import (
	"errors"
	"fmt"
)

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindUnknown   ErrKind = iota // not a registry error
	ErrKindInvalid                  // a required key field is empty
	ErrKindNotFound                 // no parcel matches the key
	ErrKindConflict                 // key already taken on insert
	ErrKindUnchanged                // owner change to the identical owner
)

// String implements the Stringer interface for ErrKind.
func (k ErrKind) String() string {
	switch k {
	case ErrKindInvalid:
		return "invalid"
	case ErrKindNotFound:
		return "not-found"
	case ErrKindConflict:
		return "conflict"
	case ErrKindUnchanged:
		return "unchanged"
	default:
		return "unknown"
	}
}

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error of the same kind, so that wrapped
// errors created with a specific message still match the sentinels.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) || e == nil || t == nil {
		return false
	}
	return e.Kind == t.Kind
}

// Sentinels commonly returned by the registry.
var (
	// ErrEmptyKey indicates a required key field (city, address, region) is empty.
	ErrEmptyKey = &Error{Kind: ErrKindInvalid, Msg: "empty key field"}
	// ErrNotFound indicates no parcel matches the requested key.
	ErrNotFound = &Error{Kind: ErrKindNotFound, Msg: "parcel not found"}
	// ErrConflict indicates the location or region key is already registered.
	ErrConflict = &Error{Kind: ErrKindConflict, Msg: "parcel already registered"}
	// ErrUnchanged indicates the new owner is exactly the current owner.
	ErrUnchanged = &Error{Kind: ErrKindUnchanged, Msg: "owner unchanged"}
)

// NewError builds a typed error of the given kind with a formatted message.
func NewError(kind ErrKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// KindOf returns the ErrKind carried by err, or ErrKindUnknown.
func KindOf(err error) ErrKind {
	var e *Error
	if errors.As(err, &e) && e != nil {
		return e.Kind
	}
	return ErrKindUnknown
}
