// Package bootstrap resolves the visitor's session once per application
// mount and turns the result into a routing decision for the current path.
package bootstrap

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/dmitrijs2005/assessment/internal/client/client"
	"github.com/dmitrijs2005/assessment/internal/client/models"
	"github.com/dmitrijs2005/assessment/internal/client/routes"
	"github.com/dmitrijs2005/assessment/internal/client/session"
	"github.com/dmitrijs2005/assessment/internal/logging"
	"github.com/sethvargo/go-retry"
)

const defaultRetryBaseDelay = 200 * time.Millisecond

// NetworkDiagnostic is reported when the profile could not be fetched for a
// reason other than a missing session.
const NetworkDiagnostic = "Could not reach the server; continuing without a session."

// Outcome is what a mount should do for the path it was started on.
type Outcome struct {
	Phase    models.Phase
	Decision routes.Decision
	// Diagnostic is non-empty when the fetch failed for network reasons.
	Diagnostic string
	// Fetched is false when the store already held a user.
	Fetched bool
}

type Bootstrapper struct {
	gateway client.Gateway
	store   *session.Store
	guard   *routes.Guard
	logger  logging.Logger

	retries   uint64
	baseDelay time.Duration

	mu       sync.Mutex
	resolved bool
	outcome  Outcome
}

type Option func(*Bootstrapper)

// WithRetry retries network failures of the profile fetch up to n times
// with exponential backoff starting at base. Unauthenticated responses are
// never retried.
func WithRetry(n uint64, base time.Duration) Option {
	return func(b *Bootstrapper) {
		b.retries = n
		if base > 0 {
			b.baseDelay = base
		}
	}
}

func WithLogger(l logging.Logger) Option {
	return func(b *Bootstrapper) {
		if l != nil {
			b.logger = l
		}
	}
}

func New(gw client.Gateway, store *session.Store, guard *routes.Guard, opts ...Option) *Bootstrapper {
	b := &Bootstrapper{
		gateway:   gw,
		store:     store,
		guard:     guard,
		logger:    logging.Discard(),
		baseDelay: defaultRetryBaseDelay,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Pending reports what to show for path before Run has resolved. While the
// phase is unknown a protected path yields routes.Loading.
func (b *Bootstrapper) Pending(path string) routes.Decision {
	return b.guard.Decide(path, b.store.Get().Phase)
}

// Run resolves the session and decides for path. Only the first successful
// call talks to the gateway; later calls re-decide against the store.
//
// If ctx is cancelled while the fetch is in flight the result is discarded,
// the store is left untouched and ctx.Err() is returned.
func (b *Bootstrapper) Run(ctx context.Context, path string) (Outcome, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.resolved {
		out := b.outcome
		out.Phase = b.store.Get().Phase
		out.Decision = b.guard.Decide(path, out.Phase)
		return out, nil
	}

	var out Outcome
	if !b.store.Get().Present() {
		user, err := b.fetch(ctx)
		if ctxErr := ctx.Err(); ctxErr != nil {
			b.logger.Debug(ctx, "bootstrap cancelled, discarding result")
			return Outcome{Phase: b.store.Get().Phase, Decision: b.Pending(path)}, ctxErr
		}
		out.Fetched = true

		switch {
		case err == nil:
			b.store.Set(user)
		case errors.Is(err, client.ErrUnauthenticated):
			b.store.Clear()
		default:
			b.logger.Warn(ctx, "profile fetch failed, treating as signed out", "error", err)
			out.Diagnostic = NetworkDiagnostic
			b.store.Clear()
		}
	}

	out.Phase = b.store.Get().Phase
	out.Decision = b.guard.Decide(path, out.Phase)
	b.outcome = out
	b.resolved = true
	b.logger.Debug(ctx, "session resolved", "phase", out.Phase, "path", path, "action", out.Decision.Action)
	return out, nil
}

func (b *Bootstrapper) fetch(ctx context.Context) (models.User, error) {
	if b.retries == 0 {
		return b.gateway.FetchProfile(ctx)
	}

	var (
		user    models.User
		lastErr error
		attempt int
	)
	backoff := retry.WithMaxRetries(b.retries, retry.NewExponential(b.baseDelay))
	_ = retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		u, err := b.gateway.FetchProfile(ctx)
		lastErr = err
		if err == nil {
			user = u
			return nil
		}
		if errors.Is(err, client.ErrNetwork) && ctx.Err() == nil {
			b.logger.Debug(ctx, "profile fetch failed, retrying", "attempt", attempt, "error", err)
			return retry.RetryableError(err)
		}
		return err
	})
	return user, lastErr
}
