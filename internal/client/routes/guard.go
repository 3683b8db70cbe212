// Package routes decides, from a path and the session phase, whether a view
// may render or the visitor must be sent to the sign-in view.
package routes

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dmitrijs2005/assessment/internal/client/models"
)

const (
	LoginPath   = "/login"
	FeedPath    = "/feed"
	AboutPath   = "/about"
	ProfilePath = "/profile"
)

// Policy declares whether a path needs an active session.
type Policy int

const (
	Protected Policy = iota
	Public
)

func (p Policy) String() string {
	if p == Public {
		return "public"
	}
	return "protected"
}

// Rule binds a path prefix to a policy.
type Rule struct {
	Prefix string
	Policy Policy
}

// DefaultRules mirrors the views the client ships with. Anything else,
// including "/", falls through to Protected.
var DefaultRules = []Rule{
	{Prefix: LoginPath, Policy: Public},
	{Prefix: AboutPath, Policy: Public},
	{Prefix: FeedPath, Policy: Protected},
	{Prefix: ProfilePath, Policy: Protected},
}

type Action int

const (
	Render Action = iota
	Redirect
	// Loading: the session phase is still unknown; no redirect decision is
	// made until it resolves.
	Loading
)

func (a Action) String() string {
	switch a {
	case Redirect:
		return "redirect"
	case Loading:
		return "loading"
	default:
		return "render"
	}
}

type Decision struct {
	Action Action
	Target string // set only for Redirect
}

// Guard is immutable after construction and safe for concurrent use.
type Guard struct {
	rules    []Rule // longest prefix first
	authPath string
}

// NewGuard validates rules and returns a Guard that redirects to authPath.
// Prefixes must start with '/' and be unique.
func NewGuard(rules []Rule, authPath string) (*Guard, error) {
	seen := make(map[string]struct{}, len(rules))
	sorted := make([]Rule, 0, len(rules))
	for _, r := range rules {
		prefix := normalize(r.Prefix)
		if !strings.HasPrefix(r.Prefix, "/") {
			return nil, fmt.Errorf("route prefix %q must start with '/'", r.Prefix)
		}
		if _, dup := seen[prefix]; dup {
			return nil, fmt.Errorf("duplicate route prefix %q", prefix)
		}
		seen[prefix] = struct{}{}
		sorted = append(sorted, Rule{Prefix: prefix, Policy: r.Policy})
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i].Prefix) > len(sorted[j].Prefix)
	})

	g := &Guard{rules: sorted, authPath: normalize(authPath)}
	if g.PolicyFor(g.authPath) != Public {
		return nil, fmt.Errorf("auth path %q must be public", authPath)
	}
	return g, nil
}

// MustDefault builds the guard for DefaultRules.
func MustDefault() *Guard {
	g, err := NewGuard(DefaultRules, LoginPath)
	if err != nil {
		panic(err)
	}
	return g
}

func (g *Guard) AuthPath() string {
	return g.authPath
}

// PolicyFor returns the policy of the longest rule prefix matching path on
// a segment boundary ("/feed" covers "/feed/1" but not "/feedback").
func (g *Guard) PolicyFor(path string) Policy {
	p := normalize(path)
	for _, r := range g.rules {
		if matches(r.Prefix, p) {
			return r.Policy
		}
	}
	return Protected
}

// Decide is a pure function of its arguments and the guard's fixed rules.
func (g *Guard) Decide(path string, phase models.Phase) Decision {
	if g.PolicyFor(path) == Public {
		return Decision{Action: Render}
	}
	switch phase {
	case models.PhaseUnknown:
		return Decision{Action: Loading}
	case models.PhaseAbsent:
		return Decision{Action: Redirect, Target: g.authPath}
	default:
		return Decision{Action: Render}
	}
}

func matches(prefix, path string) bool {
	if prefix == "/" {
		return true
	}
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}

// normalize drops query/fragment and any trailing slash except for root.
func normalize(path string) string {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
		if path == "" {
			path = "/"
		}
	}
	return path
}

// Normalize exposes the path canonicalisation used for matching.
func Normalize(path string) string {
	return normalize(path)
}
