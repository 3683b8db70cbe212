// Package client is the client's gateway to the Assessment backend.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract (see the Gateway interface) for the four
//     remote operations the client needs: FetchProfile, Login, Signup, Logout.
//  2. A JSON-over-HTTP implementation (see HTTPClient). The session
//     credential travels as a cookie handled entirely by the http.Client's
//     jar; the gateway never reads or writes it.
//
// # Error Handling
//
// Every failure is an *AuthError whose Kind matches one of the sentinels
// ErrUnauthenticated, ErrInvalidCredentials, ErrValidation, ErrNetwork via
// errors.Is. AuthError.Message is safe to show to the user verbatim.
//
// Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. All operations accept a
// context.Context and honor cancellation.
package client
