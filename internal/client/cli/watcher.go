package cli

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/assessment/internal/client/client"
)

// StartSessionWatcher re-checks the session every interval while a user is
// signed in. A session the backend no longer accepts is cleared, which
// sends a protected view back to sign-in. Network errors are ignored. A
// non-positive interval disables the watcher.
func (a *App) StartSessionWatcher(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkSession(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) checkSession(ctx context.Context) {
	if !a.store.Get().Present() {
		return
	}

	user, err := a.fetchProfile(ctx)
	switch {
	case err == nil:
		a.store.Set(user)
	case errors.Is(err, client.ErrUnauthenticated):
		a.logger.Warn(ctx, "session expired")
		a.store.Clear()
	default:
		a.logger.Debug(ctx, "session check failed", "error", err)
	}
}
