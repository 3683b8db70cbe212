package client

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrValidation         = errors.New("validation error")
	ErrNetwork            = errors.New("network error")
)

// Kind classifies an AuthError.
type Kind int

const (
	KindNetwork Kind = iota
	KindUnauthenticated
	KindInvalidCredentials
	KindValidation
)

func (k Kind) sentinel() error {
	switch k {
	case KindUnauthenticated:
		return ErrUnauthenticated
	case KindInvalidCredentials:
		return ErrInvalidCredentials
	case KindValidation:
		return ErrValidation
	default:
		return ErrNetwork
	}
}

func (k Kind) String() string {
	return k.sentinel().Error()
}

// AuthError is the typed outcome of a failed gateway call.
type AuthError struct {
	Kind Kind
	// Status is the HTTP status, 0 when no response was received.
	Status int
	// Message is the backend's error text or a generic fallback.
	Message string
	// Err is the underlying cause, if any.
	Err error
}

func (e *AuthError) Error() string {
	switch {
	case e.Status != 0 && e.Message != "":
		return fmt.Sprintf("%s (%d): %s", e.Kind, e.Status, e.Message)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	case e.Message != "":
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	default:
		return e.Kind.String()
	}
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for e.Kind.
func (e *AuthError) Is(target error) bool {
	return target == e.Kind.sentinel()
}

// AsAuthError extracts an *AuthError; non-gateway errors are reported as
// network failures with fallback as their message.
func AsAuthError(err error, fallback string) *AuthError {
	if err == nil {
		return nil
	}
	var ae *AuthError
	if errors.As(err, &ae) {
		return ae
	}
	return &AuthError{Kind: KindNetwork, Message: fallback, Err: err}
}
