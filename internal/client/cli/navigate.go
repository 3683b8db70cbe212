package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/assessment/internal/client/client"
	"github.com/dmitrijs2005/assessment/internal/client/models"
)

// Go navigates to path, subject to the route guard.
func (a *App) Go(ctx context.Context, path string) error {
	a.router.Navigate(path)
	a.render()
	return nil
}

func (a *App) Back(ctx context.Context) error {
	if !a.router.Back() {
		fmt.Fprintln(a.out, "Nothing to go back to.")
		return nil
	}
	a.render()
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	sess := a.store.Get()
	if greeting, ok := a.shell.Identity(); ok && sess.Present() {
		fmt.Fprintf(a.out, "%s (%s)\n", greeting, sess.User.Email)
		return nil
	}
	fmt.Fprintf(a.out, "Not signed in (%s)\n", sess.Phase)
	return nil
}

// Refresh fetches the profile again. Unlike the startup resolve, a network
// failure leaves the current session alone.
func (a *App) Refresh(ctx context.Context) error {
	user, err := a.fetchProfile(ctx)
	switch {
	case err == nil:
		a.store.Set(user)
	case errors.Is(err, client.ErrUnauthenticated):
		a.store.Clear()
	default:
		fmt.Fprintln(a.out, "Could not reach the server:", client.AsAuthError(err, "").Error())
		return err
	}
	a.render()
	return nil
}

func (a *App) fetchProfile(ctx context.Context) (models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, a.config.RequestTimeout)
	defer cancel()
	return a.gateway.FetchProfile(ctx)
}

func (a *App) blur() {
	a.shell.Blur()
}
