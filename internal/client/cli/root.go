package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/assessment/internal/client/routes"
	"github.com/dmitrijs2005/assessment/internal/client/views"
)

// Root resolves the session for the start path, shows the first view,
// starts the session watcher and runs the REPL.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to Assessment CLI (type 'help' for commands)")

	start := a.router.Location().Path
	if a.boot.Pending(start).Action == routes.Loading {
		views.Loading(a.out)
	}

	out, err := a.boot.Run(ctx, start)
	if err != nil {
		a.logger.Info(ctx, "startup interrupted", "error", err)
		return
	}
	if out.Diagnostic != "" {
		fmt.Fprintln(a.out, out.Diagnostic)
	}
	a.router.Navigate(start)
	a.render()

	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go a.StartSessionWatcher(watchCtx, a.config.SessionCheckInterval)

	runREPL(ctx, a, a.getStatus, a.reader)
}
