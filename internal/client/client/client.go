package client

import (
	"context"

	"github.com/dmitrijs2005/assessment/internal/client/models"
)

// Gateway is the remote side of authentication.
type Gateway interface {
	// FetchProfile resolves the current session's user.
	FetchProfile(ctx context.Context) (models.User, error)
	Login(ctx context.Context, email, password string) (models.User, error)
	Signup(ctx context.Context, in SignupInput) (models.User, error)
	// Logout is best-effort; callers clear local state regardless.
	Logout(ctx context.Context) error
}

type SignupInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"emailId"`
	Password  string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"emailId"`
	Password string `json:"password"`
}

type userEnvelope struct {
	Data *models.User `json:"data"`
}

const (
	loginFallback  = "Login failed"
	signupFallback = "Sign Up failed"
)
