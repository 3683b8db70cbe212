// Package jar provides the client's http.CookieJar. Cookies for the
// backend host survive restarts by being written through to the local
// state database; everything else behaves like net/http/cookiejar.
package jar

import (
	"context"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"sync"
	"time"

	"github.com/dmitrijs2005/assessment/internal/client/repositories/cookies"
	"github.com/dmitrijs2005/assessment/internal/cryptox"
	"github.com/dmitrijs2005/assessment/internal/logging"
)

// persistTimeout bounds each write-through; http.CookieJar has no context.
const persistTimeout = 3 * time.Second

// Sealer protects cookie values at rest. *cryptox.Sealer satisfies it.
type Sealer interface {
	Seal(plaintext []byte) []byte
	Open(sealed []byte) ([]byte, error)
}

var _ Sealer = (*cryptox.Sealer)(nil)

// PersistentJar is safe for concurrent use.
type PersistentJar struct {
	mu     sync.Mutex
	inner  *cookiejar.Jar
	base   *url.URL
	repo   cookies.Repository
	sealer Sealer
	logger logging.Logger
	now    func() time.Time
}

type Option func(*PersistentJar)

// WithSealer encrypts stored values. Without it values are stored as is.
func WithSealer(s Sealer) Option {
	return func(j *PersistentJar) { j.sealer = s }
}

func WithLogger(l logging.Logger) Option {
	return func(j *PersistentJar) {
		if l != nil {
			j.logger = l
		}
	}
}

func withClock(now func() time.Time) Option {
	return func(j *PersistentJar) { j.now = now }
}

// Open builds a jar for the backend at baseURL and replays the cookies
// previously stored for its host. Expired or undecryptable rows are
// dropped from the store.
func Open(ctx context.Context, baseURL string, repo cookies.Repository, opts ...Option) (*PersistentJar, error) {
	base, err := url.Parse(baseURL)
	if err != nil || base.Host == "" {
		return nil, fmt.Errorf("invalid jar base url %q", baseURL)
	}
	inner, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}

	j := &PersistentJar{
		inner:  inner,
		base:   base,
		repo:   repo,
		logger: logging.Discard(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(j)
	}

	if err := j.load(ctx); err != nil {
		return nil, err
	}
	return j, nil
}

func (j *PersistentJar) load(ctx context.Context) error {
	stored, err := j.repo.List(ctx, j.base.Host)
	if err != nil {
		return fmt.Errorf("load cookies: %w", err)
	}

	now := j.now()
	restored := make([]*http.Cookie, 0, len(stored))
	for _, sc := range stored {
		if !sc.Expires.IsZero() && !sc.Expires.After(now) {
			_ = j.repo.Delete(ctx, sc.Host, sc.Name, sc.Path)
			continue
		}
		value, err := j.open(sc.Value)
		if err != nil {
			j.logger.Warn(ctx, "dropping unreadable stored cookie", "name", sc.Name, "error", err)
			_ = j.repo.Delete(ctx, sc.Host, sc.Name, sc.Path)
			continue
		}
		restored = append(restored, &http.Cookie{
			Name:     sc.Name,
			Value:    string(value),
			Path:     sc.Path,
			Domain:   sc.Domain,
			Expires:  sc.Expires,
			Secure:   sc.Secure,
			HttpOnly: sc.HTTPOnly,
		})
	}
	if len(restored) > 0 {
		j.inner.SetCookies(j.base, restored)
		j.logger.Debug(ctx, "restored cookies", "host", j.base.Host, "count", len(restored))
	}
	return nil
}

// SetCookies implements http.CookieJar.
func (j *PersistentJar) SetCookies(u *url.URL, cs []*http.Cookie) {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.inner.SetCookies(u, cs)
	if u.Host != j.base.Host {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()
	err := j.repo.Batch(ctx, func(repo cookies.Repository) error {
		for _, c := range cs {
			if err := j.persist(ctx, repo, u, c); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		j.logger.Warn(ctx, "cookie write-through failed", "count", len(cs), "error", err)
	}
}

// Cookies implements http.CookieJar.
func (j *PersistentJar) Cookies(u *url.URL) []*http.Cookie {
	j.mu.Lock()
	inner := j.inner
	j.mu.Unlock()
	return inner.Cookies(u)
}

// Clear forgets every cookie, in memory and on disk. Used on logout so a
// failed logout request cannot leave a usable credential behind.
func (j *PersistentJar) Clear(ctx context.Context) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	inner, err := cookiejar.New(nil)
	if err != nil {
		return err
	}
	j.inner = inner
	return j.repo.Clear(ctx, j.base.Host)
}

func (j *PersistentJar) persist(ctx context.Context, repo cookies.Repository, u *url.URL, c *http.Cookie) error {
	path := c.Path
	if path == "" {
		path = defaultPath(u.Path)
	}

	expires := c.Expires
	switch {
	case c.MaxAge < 0:
		return repo.Delete(ctx, j.base.Host, c.Name, path)
	case c.MaxAge > 0:
		expires = j.now().Add(time.Duration(c.MaxAge) * time.Second)
	}
	if !expires.IsZero() && !expires.After(j.now()) {
		return repo.Delete(ctx, j.base.Host, c.Name, path)
	}

	return repo.Upsert(ctx, cookies.Cookie{
		Host:     j.base.Host,
		Name:     c.Name,
		Path:     path,
		Domain:   c.Domain,
		Value:    j.seal([]byte(c.Value)),
		Expires:  expires,
		Secure:   c.Secure,
		HTTPOnly: c.HttpOnly,
	})
}

func (j *PersistentJar) seal(v []byte) []byte {
	if j.sealer == nil {
		return v
	}
	return j.sealer.Seal(v)
}

func (j *PersistentJar) open(v []byte) ([]byte, error) {
	if j.sealer == nil {
		return v, nil
	}
	return j.sealer.Open(v)
}

// defaultPath follows RFC 6265 section 5.1.4 for cookies without a Path.
func defaultPath(p string) string {
	if p == "" || p[0] != '/' {
		return "/"
	}
	i := len(p) - 1
	for i > 0 && p[i] != '/' {
		i--
	}
	if i == 0 {
		return "/"
	}
	return p[:i]
}
