package authform

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/assessment/internal/client/client"
	"github.com/dmitrijs2005/assessment/internal/client/routes"
	"github.com/dmitrijs2005/assessment/internal/client/session"
	"github.com/dmitrijs2005/assessment/internal/logging"
)

var (
	// ErrInvalidForm is returned by Submit when a blocking issue was found.
	ErrInvalidForm = errors.New("form has blocking issues")
	// ErrNotSignUp is returned when name fields are edited in SignIn mode.
	ErrNotSignUp = errors.New("name fields exist only in sign-up mode")
	ErrBusy      = errors.New("submission already in progress")
)

// Navigator moves the application to another view.
type Navigator interface {
	Navigate(path string)
}

// Controller is created when the auth view mounts and lives until it
// unmounts. It is safe for concurrent use.
type Controller struct {
	gateway client.Gateway
	store   *session.Store
	nav     Navigator
	logger  logging.Logger

	mu    sync.Mutex
	state State
}

func New(gw client.Gateway, store *session.Store, nav Navigator, logger logging.Logger) *Controller {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Controller{gateway: gw, store: store, nav: nav, logger: logger}
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.clone()
}

func (c *Controller) SetEmail(v string) {
	c.mu.Lock()
	c.state.Email = v
	c.mu.Unlock()
}

func (c *Controller) SetPassword(v string) {
	c.mu.Lock()
	c.state.Password = v
	c.mu.Unlock()
}

func (c *Controller) SetNames(first, last string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state.Mode != SignUp {
		return ErrNotSignUp
	}
	c.state.Names = &Names{First: first, Last: last}
	return nil
}

// ToggleMode switches between sign-in and sign-up. Email and password are
// kept; the error message and the name fields are dropped.
func (c *Controller) ToggleMode() Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Error = ""
	if c.state.Mode == SignIn {
		c.state.Mode = SignUp
		c.state.Names = &Names{}
	} else {
		c.state.Mode = SignIn
		c.state.Names = nil
	}
	return c.state.Mode
}

func (c *Controller) TogglePasswordVisibility() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.ShowPassword = !c.state.ShowPassword
	return c.state.ShowPassword
}

// Validate reports client-side issues for the current fields.
func (c *Controller) Validate() []Issue {
	return validateState(c.State())
}

// Submit validates, then logs in or signs up depending on the mode. On
// success the user is stored and the app navigates to the feed. On failure
// the message is kept in State().Error and the fields are left as they are.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	if c.state.Submitting {
		c.mu.Unlock()
		return ErrBusy
	}
	snap := c.state.clone()
	for _, is := range validateState(snap) {
		if is.Blocking {
			c.state.Error = is.Message
			c.mu.Unlock()
			return ErrInvalidForm
		}
	}
	c.state.Submitting = true
	c.mu.Unlock()

	var err error
	if snap.Mode == SignUp {
		in := client.SignupInput{Email: snap.Email, Password: snap.Password}
		if snap.Names != nil {
			in.FirstName, in.LastName = snap.Names.First, snap.Names.Last
		}
		user, serr := c.gateway.Signup(ctx, in)
		if serr == nil {
			c.store.Set(user)
		}
		err = serr
	} else {
		user, lerr := c.gateway.Login(ctx, snap.Email, snap.Password)
		if lerr == nil {
			c.store.Set(user)
		}
		err = lerr
	}

	c.mu.Lock()
	c.state.Submitting = false
	if err != nil {
		c.state.Error = failureMessage(snap.Mode, err)
	} else {
		c.state.Error = ""
	}
	c.mu.Unlock()

	if err != nil {
		c.logger.Info(ctx, "auth submit failed", "mode", snap.Mode, "error", err)
		return err
	}
	c.nav.Navigate(routes.FeedPath)
	return nil
}

func failureMessage(mode Mode, err error) string {
	fallback := "Login failed"
	if mode == SignUp {
		fallback = "Sign Up failed"
	}
	ae := client.AsAuthError(err, fallback)
	if ae.Message != "" {
		return ae.Message
	}
	return fallback
}
