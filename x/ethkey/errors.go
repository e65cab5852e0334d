package ethkey

import (
	"fmt"
)

// ErrorKind represents the categories of key and address errors
type ErrorKind int

const (
	KindInvalidKey ErrorKind = iota + 1
	KindMalformedAddress
	KindMalformedPublicKey
	KindEntropySource
)

// String returns the string representation of ErrorKind
func (k ErrorKind) String() string {
	switch k {
	case KindInvalidKey:
		return "invalid_key_kind"
	case KindMalformedAddress:
		return "malformed_address_input"
	case KindMalformedPublicKey:
		return "malformed_public_key"
	case KindEntropySource:
		return "entropy_source_failure"
	default:
		return "unknown"
	}
}

// Sentinels for errors.Is matching. A *Error matches the sentinel of its kind.
var (
	ErrInvalidKeyKind        = &Error{Kind: KindInvalidKey, Message: "private key scalar is zero or not below the curve order"}
	ErrMalformedAddressInput = &Error{Kind: KindMalformedAddress, Message: "address must be 40 hex characters"}
	ErrMalformedPublicKey    = &Error{Kind: KindMalformedPublicKey, Message: "public key has an unexpected encoding"}
	ErrEntropySourceFailure  = &Error{Kind: KindEntropySource, Message: "secure random source failed"}
)

// Error is a structured error for key generation and address encoding
type Error struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying cause error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func newError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}

// WithCause adds a cause error
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}
