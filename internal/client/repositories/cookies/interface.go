// Package cookies persists the backend's transport cookies between runs.
// Values are stored as given; sealing happens in the jar.
package cookies

import (
	"context"
	"time"
)

// Cookie is the persisted form of an http.Cookie scoped to one host.
type Cookie struct {
	Host     string
	Name     string
	Path     string
	Domain   string
	Value    []byte
	Expires  time.Time // zero for session cookies
	Secure   bool
	HTTPOnly bool
}

type Repository interface {
	Upsert(ctx context.Context, c Cookie) error
	Delete(ctx context.Context, host, name, path string) error
	List(ctx context.Context, host string) ([]Cookie, error)
	Clear(ctx context.Context, host string) error
	// Batch runs fn against a repository whose writes commit together.
	Batch(ctx context.Context, fn func(Repository) error) error
}
