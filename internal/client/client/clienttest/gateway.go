// Package clienttest provides a scriptable client.Gateway for tests.
package clienttest

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/assessment/internal/client/client"
	"github.com/dmitrijs2005/assessment/internal/client/models"
)

// Gateway answers each operation with the matching func field. A nil field
// returns the zero user and no error. Calls are recorded in order.
type Gateway struct {
	FetchProfileFn func(ctx context.Context) (models.User, error)
	LoginFn        func(ctx context.Context, email, password string) (models.User, error)
	SignupFn       func(ctx context.Context, in client.SignupInput) (models.User, error)
	LogoutFn       func(ctx context.Context) error

	mu    sync.Mutex
	calls []string
}

var _ client.Gateway = (*Gateway)(nil)

func (g *Gateway) record(op string) {
	g.mu.Lock()
	g.calls = append(g.calls, op)
	g.mu.Unlock()
}

// Calls returns the names of the operations invoked so far.
func (g *Gateway) Calls() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]string(nil), g.calls...)
}

// Count returns how many times op was invoked.
func (g *Gateway) Count(op string) int {
	n := 0
	for _, c := range g.Calls() {
		if c == op {
			n++
		}
	}
	return n
}

func (g *Gateway) FetchProfile(ctx context.Context) (models.User, error) {
	g.record("fetch")
	if g.FetchProfileFn == nil {
		return models.User{}, nil
	}
	return g.FetchProfileFn(ctx)
}

func (g *Gateway) Login(ctx context.Context, email, password string) (models.User, error) {
	g.record("login")
	if g.LoginFn == nil {
		return models.User{}, nil
	}
	return g.LoginFn(ctx, email, password)
}

func (g *Gateway) Signup(ctx context.Context, in client.SignupInput) (models.User, error) {
	g.record("signup")
	if g.SignupFn == nil {
		return models.User{}, nil
	}
	return g.SignupFn(ctx, in)
}

func (g *Gateway) Logout(ctx context.Context) error {
	g.record("logout")
	if g.LogoutFn == nil {
		return nil
	}
	return g.LogoutFn(ctx)
}

// Unauthenticated is the error the backend's 401 maps to.
func Unauthenticated() error {
	return &client.AuthError{Kind: client.KindUnauthenticated, Status: 401, Message: "Please login"}
}

// NetworkDown is a transport failure with no response.
func NetworkDown() error {
	return &client.AuthError{Kind: client.KindNetwork, Message: "connection refused"}
}
