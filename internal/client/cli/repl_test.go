package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	args  []string
	blurs int
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) blur()            { f.blurs++ }
func (f *fakeExec) Go(ctx context.Context, path string) error {
	f.calls = append(f.calls, "go")
	f.args = append(f.args, path)
	return nil
}
func (f *fakeExec) Back(ctx context.Context) error { f.calls = append(f.calls, "back"); return nil }
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Signup(ctx context.Context) error {
	f.calls = append(f.calls, "signup")
	return nil
}
func (f *fakeExec) ToggleMode(ctx context.Context) error {
	f.calls = append(f.calls, "toggle")
	return nil
}
func (f *fakeExec) ShowPassword(ctx context.Context) error {
	f.calls = append(f.calls, "showpw")
	return nil
}
func (f *fakeExec) Menu(ctx context.Context, item string) error {
	f.calls = append(f.calls, "menu")
	f.args = append(f.args, item)
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) WhoAmI(ctx context.Context) error  { f.calls = append(f.calls, "whoami"); return nil }
func (f *fakeExec) Refresh(ctx context.Context) error { f.calls = append(f.calls, "refresh"); return nil }

func silencePrintln(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	origPrint := printlnFn
	printlnFn = func(a ...any) (int, error) {
		parts := make([]string, 0, len(a))
		for _, v := range a {
			if s, ok := v.(string); ok {
				parts = append(parts, s)
			}
		}
		lines = append(lines, strings.Join(parts, " "))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = origPrint })
	return &lines
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"feed",
		"about",
		"profile",
		"go /feed/1",
		"back",
		"menu",
		"menu about",
		"toggle",
		"showpw",
		"signup",
		"whoami",
		"refresh",
		"logout",
		"exit",
		"feed",
	}, "\n"))

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "status" }, bufio.NewReader(input))

	assert.Equal(t, []string{
		"login", "go", "go", "go", "go", "back", "menu", "menu",
		"toggle", "showpw", "signup", "whoami", "refresh", "logout",
	}, exec.calls)
	assert.Equal(t, []string{"/feed", "/about", "/profile", "/feed/1", "", "about"}, exec.args)
}

func TestRunREPL_MenuDoesNotBlur(t *testing.T) {
	silencePrintln(t)

	exec := &fakeExec{loggedIn: true}
	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewReader(strings.NewReader("menu\nhelp\nwhoami\nquit\n")))

	assert.Equal(t, 2, exec.blurs, "whoami and quit blur the menu")
}

func TestRunREPL_UsageAndUnknown(t *testing.T) {
	lines := silencePrintln(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewReader(strings.NewReader("go\nfoobar\n\n")))

	assert.Empty(t, exec.calls)
	assert.Contains(t, *lines, "Usage: go <path>")
	assert.Contains(t, *lines, "Unknown command: foobar")
}

func TestRunREPL_HelpDependsOnSession(t *testing.T) {
	lines := silencePrintln(t)

	runREPL(context.Background(), &fakeExec{}, func() string { return "s" }, bufio.NewReader(strings.NewReader("help\n")))
	runREPL(context.Background(), &fakeExec{loggedIn: true}, func() string { return "s" }, bufio.NewReader(strings.NewReader("help\n")))

	var helps []string
	for _, l := range *lines {
		if strings.HasPrefix(l, "Available commands") {
			helps = append(helps, l)
		}
	}
	if assert.Len(t, helps, 2) {
		assert.Contains(t, helps[0], "login")
		assert.Contains(t, helps[1], "logout")
	}
}

func TestRunREPL_StopsWhenContextDone(t *testing.T) {
	silencePrintln(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	exec := &fakeExec{}
	runREPL(ctx, exec, func() string { return "s" }, bufio.NewReader(strings.NewReader("login\n")))

	assert.Empty(t, exec.calls)
}

func TestRunREPL_LastLineWithoutNewline(t *testing.T) {
	silencePrintln(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewReader(strings.NewReader("whoami")))

	assert.Equal(t, []string{"whoami"}, exec.calls)
}
