package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/assessment/internal/client/routes"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	blur()
	Go(ctx context.Context, path string) error
	Back(ctx context.Context) error
	Login(ctx context.Context) error
	Signup(ctx context.Context) error
	ToggleMode(ctx context.Context) error
	ShowPassword(ctx context.Context) error
	Menu(ctx context.Context, item string) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Refresh(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the Assessment CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. The loop exits on EOF, when ctx is done or
// when the user types "exit" or "quit". Prompts issued by the commands read
// from the same reader, so no input is lost between them.
//
// Commands
//
//	help                - show available commands
//	go <path>           - navigate to a path
//	feed | about | profile
//	back                - previous location
//	login | signup      - fill in and submit the form
//	toggle              - switch between sign-in and sign-up
//	showpw              - toggle password visibility
//	menu [about|logout] - toggle the account menu or pick an item
//	logout              - end the session
//	whoami              - show the signed-in user
//	refresh             - fetch the profile again
//	exit | quit         - leave the program
//
// Any command other than menu and help moves focus away from the menu,
// closing it. Handler errors are reported by the handlers themselves.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("assessment %s > ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if cmd != "menu" && cmd != "help" {
			a.blur()
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: feed, about, profile, go <path>, back, menu [about|logout], whoami, refresh, logout, exit")
			} else {
				printlnFn("Available commands: login, signup, toggle, showpw, about, go <path>, back, whoami, refresh, exit")
			}

		case "go":
			if len(args) == 0 {
				printlnFn("Usage: go <path>")
				continue
			}
			_ = a.Go(ctx, args[0])

		case "feed":
			_ = a.Go(ctx, routes.FeedPath)

		case "about":
			_ = a.Go(ctx, routes.AboutPath)

		case "profile":
			_ = a.Go(ctx, routes.ProfilePath)

		case "back":
			_ = a.Back(ctx)

		case "login":
			_ = a.Login(ctx)

		case "signup":
			_ = a.Signup(ctx)

		case "toggle":
			_ = a.ToggleMode(ctx)

		case "showpw":
			_ = a.ShowPassword(ctx)

		case "menu":
			item := ""
			if len(args) > 0 {
				item = args[0]
			}
			_ = a.Menu(ctx, item)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "refresh":
			_ = a.Refresh(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
