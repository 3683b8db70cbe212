// Package common contains small helpers and constants shared by the client
// packages.
package common

// RequestIDHeaderName is the HTTP header carrying the per-request
// correlation id the gateway generates for every backend call.
const RequestIDHeaderName = "X-Request-ID"
