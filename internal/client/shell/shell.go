// Package shell holds the session-dependent behavior of the navigation bar:
// the identity greeting, the account menu and logout.
package shell

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/assessment/internal/client/client"
	"github.com/dmitrijs2005/assessment/internal/client/routes"
	"github.com/dmitrijs2005/assessment/internal/client/session"
	"github.com/dmitrijs2005/assessment/internal/logging"
)

const Brand = "Assessment"

// Item is an entry of the account menu.
type Item string

const (
	ItemAbout  Item = "about"
	ItemLogout Item = "logout"
)

// Items lists the menu in display order.
var Items = []Item{ItemAbout, ItemLogout}

type Navigator interface {
	Navigate(path string)
}

type Shell struct {
	gateway client.Gateway
	store   *session.Store
	nav     Navigator
	logger  logging.Logger

	mu       sync.Mutex
	menuOpen bool
}

func New(gw client.Gateway, store *session.Store, nav Navigator, logger logging.Logger) *Shell {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Shell{gateway: gw, store: store, nav: nav, logger: logger}
}

func (s *Shell) MenuOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.menuOpen
}

// ToggleMenu flips the menu. Without a user there is no identity control,
// so the menu stays closed.
func (s *Shell) ToggleMenu() bool {
	present := s.store.Get().Present()

	s.mu.Lock()
	defer s.mu.Unlock()
	if !present {
		s.menuOpen = false
		return false
	}
	s.menuOpen = !s.menuOpen
	return s.menuOpen
}

// Blur closes the menu when focus leaves it.
func (s *Shell) Blur() {
	s.setMenu(false)
}

// Activate runs a menu item. The menu is closed afterwards whatever the
// item did.
func (s *Shell) Activate(ctx context.Context, item Item) error {
	switch item {
	case ItemAbout:
		s.nav.Navigate(routes.AboutPath)
		s.setMenu(false)
		return nil
	case ItemLogout:
		s.Logout(ctx)
		return nil
	default:
		s.setMenu(false)
		return fmt.Errorf("unknown menu item %q", item)
	}
}

// Logout ends the session locally regardless of what the backend says:
// the gateway call, then the store, then navigation, then the menu.
func (s *Shell) Logout(ctx context.Context) {
	if err := s.gateway.Logout(ctx); err != nil {
		s.logger.Warn(ctx, "logout request failed, clearing local session anyway", "error", err)
	}
	s.store.Clear()
	s.nav.Navigate(routes.LoginPath)
	s.setMenu(false)
}

// Identity returns the greeting shown next to the menu, if a user is
// signed in.
func (s *Shell) Identity() (string, bool) {
	sess := s.store.Get()
	if !sess.Present() {
		return "", false
	}
	return "Welcome, " + sess.User.FirstName, true
}

func (s *Shell) setMenu(open bool) {
	s.mu.Lock()
	s.menuOpen = open
	s.mu.Unlock()
}
