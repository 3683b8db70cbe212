// Package views renders the client's screens as plain text.
package views

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/dmitrijs2005/assessment/internal/client/authform"
	"github.com/dmitrijs2005/assessment/internal/client/models"
	"github.com/dmitrijs2005/assessment/internal/client/nav"
	"github.com/dmitrijs2005/assessment/internal/client/routes"
	"github.com/dmitrijs2005/assessment/internal/client/shell"
)

const (
	LoadingText   = "Loading..."
	NotFoundText  = "Nothing here yet."
	feedHeadline  = "Welcome to our app"
	feedTagline   = "Let's start with a quick product tour and we will have you up and running in no time!"
	aboutHeadline = "Let me tell you about the tech stack of this project"
)

// TechStack is listed on the about view.
var TechStack = []string{
	"Cookie-based session management with a persistent cookie jar",
	"Session store with synchronous subscribers",
	"Declarative route guard with longest-prefix matching",
	"JSON over HTTP gateway with typed errors",
	"Local state in SQLite with goose migrations",
	"Cookie values sealed with AES-GCM under an argon2id key",
}

// Navbar renders the brand and, with a user, the greeting and the menu.
func Navbar(w io.Writer, sh *shell.Shell) {
	line := shell.Brand
	if greeting, ok := sh.Identity(); ok {
		line += "  |  " + greeting + "  [menu]"
	}
	fmt.Fprintln(w, line)
	if sh.MenuOpen() {
		for _, it := range shell.Items {
			fmt.Fprintf(w, "  - %s\n", it)
		}
	}
}

func Loading(w io.Writer) {
	fmt.Fprintln(w, LoadingText)
}

// Feed needs a user; without one it shows the loading placeholder.
func Feed(w io.Writer, u *models.User) {
	if u == nil {
		Loading(w)
		return
	}
	fmt.Fprintf(w, "Hey %s %s!\n", u.FirstName, u.LastName)
	fmt.Fprintln(w, feedHeadline)
	fmt.Fprintln(w, feedTagline)
}

func About(w io.Writer, u *models.User) {
	if u != nil {
		fmt.Fprintf(w, "Hey %s %s!\n", u.FirstName, u.LastName)
	}
	fmt.Fprintln(w, aboutHeadline)
	for _, item := range TechStack {
		fmt.Fprintf(w, "  * %s\n", item)
	}
}

// Profile shows the signed-in user's fields, including the extra ones the
// backend sent.
func Profile(w io.Writer, u *models.User) {
	if u == nil {
		Loading(w)
		return
	}
	fmt.Fprintf(w, "Name:  %s\n", u.FullName())
	fmt.Fprintf(w, "Email: %s\n", u.Email)
	if u.ID != "" {
		fmt.Fprintf(w, "ID:    %s\n", u.ID)
	}
	for _, k := range sortedKeys(u.Extra) {
		fmt.Fprintf(w, "%s: %v\n", k, u.Extra[k])
	}
}

// Login renders the form. The password is masked unless visibility is on.
func Login(w io.Writer, st authform.State) {
	title, action, hint := "Welcome Back", "Sign In", "Don't have an account? Sign Up (toggle)"
	if st.Mode == authform.SignUp {
		title, action, hint = "Join Us", "Create Account", "Already have an account? Sign In (toggle)"
	}
	fmt.Fprintln(w, title)
	if st.Names != nil {
		fmt.Fprintf(w, "  First Name: %s\n", st.Names.First)
		fmt.Fprintf(w, "  Last Name:  %s\n", st.Names.Last)
	}
	fmt.Fprintf(w, "  Email:      %s\n", st.Email)
	fmt.Fprintf(w, "  Password:   %s\n", maskPassword(st.Password, st.ShowPassword))
	if st.Error != "" {
		fmt.Fprintf(w, "  ! %s\n", st.Error)
	}
	fmt.Fprintf(w, "[%s]  %s\n", action, hint)
}

// Page renders the view for loc.
func Page(w io.Writer, loc nav.Location, sess models.Session, form authform.State) {
	if loc.Decision.Action == routes.Loading {
		Loading(w)
		return
	}
	switch {
	case loc.Path == routes.LoginPath:
		Login(w, form)
	case loc.Path == routes.FeedPath || loc.Path == "/":
		Feed(w, sess.User)
	case loc.Path == routes.AboutPath:
		About(w, sess.User)
	case strings.HasPrefix(loc.Path, routes.ProfilePath):
		Profile(w, sess.User)
	default:
		fmt.Fprintln(w, NotFoundText)
	}
}

func maskPassword(p string, show bool) string {
	if show {
		return p
	}
	return strings.Repeat("*", len([]rune(p)))
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
