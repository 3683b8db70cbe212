// Package nav tracks the current location of the client and applies the
// route guard on every move.
package nav

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/assessment/internal/client/models"
	"github.com/dmitrijs2005/assessment/internal/client/routes"
	"github.com/dmitrijs2005/assessment/internal/client/session"
	"github.com/dmitrijs2005/assessment/internal/logging"
)

// Location is where the client is and what the guard said about it.
type Location struct {
	Path     string
	Decision routes.Decision
}

// Router owns the current path. When the session becomes absent while a
// protected path is shown, it moves to the guard's auth path on its own.
type Router struct {
	guard  *routes.Guard
	store  *session.Store
	logger logging.Logger

	mu        sync.Mutex
	current   string
	history   []string
	listeners []func(Location)

	unsubscribe func()
}

func New(guard *routes.Guard, store *session.Store, start string, logger logging.Logger) *Router {
	if logger == nil {
		logger = logging.Discard()
	}
	r := &Router{
		guard:   guard,
		store:   store,
		logger:  logger,
		current: routes.Normalize(start),
	}
	r.history = []string{r.current}
	r.unsubscribe = store.Subscribe(r.onSession)
	return r
}

// Close detaches the router from the session store.
func (r *Router) Close() {
	r.unsubscribe()
}

// OnChange registers fn to run after every location change.
func (r *Router) OnChange(fn func(Location)) {
	r.mu.Lock()
	r.listeners = append(r.listeners, fn)
	r.mu.Unlock()
}

// Navigate moves to path, or to the auth path if the guard redirects.
func (r *Router) Navigate(path string) {
	r.mu.Lock()
	loc := r.moveLocked(routes.Normalize(path))
	ls := append([]func(Location){}, r.listeners...)
	r.mu.Unlock()

	for _, fn := range ls {
		fn(loc)
	}
}

// Back returns to the previous entry. It reports false at the first entry.
func (r *Router) Back() bool {
	r.mu.Lock()
	if len(r.history) < 2 {
		r.mu.Unlock()
		return false
	}
	r.history = r.history[:len(r.history)-1]
	prev := r.history[len(r.history)-1]
	r.history = r.history[:len(r.history)-1]
	r.mu.Unlock()

	r.Navigate(prev)
	return true
}

// Location re-evaluates the guard for the current path.
func (r *Router) Location() Location {
	r.mu.Lock()
	defer r.mu.Unlock()
	return Location{Path: r.current, Decision: r.guard.Decide(r.current, r.store.Get().Phase)}
}

func (r *Router) History() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.history...)
}

func (r *Router) moveLocked(path string) Location {
	d := r.guard.Decide(path, r.store.Get().Phase)
	if d.Action == routes.Redirect {
		r.logger.Debug(context.Background(), "redirecting", "from", path, "to", d.Target)
		path = d.Target
		d = r.guard.Decide(path, r.store.Get().Phase)
	}
	if r.current != path || len(r.history) == 0 {
		r.history = append(r.history, path)
	}
	r.current = path
	return Location{Path: path, Decision: d}
}

func (r *Router) onSession(s models.Session) {
	if s.Phase != models.PhaseAbsent {
		return
	}
	r.mu.Lock()
	current := r.current
	r.mu.Unlock()

	if r.guard.PolicyFor(current) == routes.Protected {
		r.Navigate(current)
	}
}
