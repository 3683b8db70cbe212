package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/dmitrijs2005/assessment/internal/client/authform"
	"github.com/dmitrijs2005/assessment/internal/client/bootstrap"
	"github.com/dmitrijs2005/assessment/internal/client/client"
	"github.com/dmitrijs2005/assessment/internal/client/config"
	"github.com/dmitrijs2005/assessment/internal/client/jar"
	"github.com/dmitrijs2005/assessment/internal/client/nav"
	"github.com/dmitrijs2005/assessment/internal/client/repositories/cookies"
	"github.com/dmitrijs2005/assessment/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/assessment/internal/client/routes"
	"github.com/dmitrijs2005/assessment/internal/client/session"
	"github.com/dmitrijs2005/assessment/internal/client/shell"
	"github.com/dmitrijs2005/assessment/internal/client/storage"
	"github.com/dmitrijs2005/assessment/internal/client/views"
	"github.com/dmitrijs2005/assessment/internal/logging"
)

// App is one mount of the client: a single store, router and bootstrapper
// shared by every command.
type App struct {
	config *config.Config
	logger logging.Logger

	db      *sql.DB
	jar     *jar.PersistentJar
	gateway client.Gateway
	store   *session.Store
	guard   *routes.Guard
	router  *nav.Router
	boot    *bootstrap.Bootstrapper
	shell   *shell.Shell

	mu       sync.Mutex
	form     *authform.Controller
	lastPath string

	reader *bufio.Reader
	out    io.Writer
}

// NewApp wires the application for c, reading from stdin and writing to
// stdout.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	return newApp(ctx, c, os.Stdin, os.Stdout)
}

func newApp(ctx context.Context, c *config.Config, in io.Reader, out io.Writer) (*App, error) {
	logger := logging.New(c.LogLevel, os.Stderr)

	baseURL, err := client.NormalizeBaseURL(c.BaseURL)
	if err != nil {
		return nil, err
	}

	db, err := storage.InitDatabase(ctx, c.StateDBPath)
	if err != nil {
		logger.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	sealer, err := jar.SealerFor(ctx, metadata.NewSQLiteRepository(db), c.JarPassphrase)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	j, err := jar.Open(ctx, baseURL, cookies.NewSQLiteRepository(db), jar.WithSealer(sealer), jar.WithLogger(logger))
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	gw, err := client.NewHTTPClient(baseURL,
		client.WithJar(j),
		client.WithTimeout(c.RequestTimeout),
		client.WithLogger(logger),
	)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	a := &App{
		config:  c,
		logger:  logger,
		db:      db,
		jar:     j,
		gateway: gw,
		reader:  bufio.NewReader(in),
		out:     out,
	}
	a.wire(c.StartPath)
	return a, nil
}

// wire builds the session components around a.gateway.
func (a *App) wire(start string) {
	a.store = session.NewStore()
	a.guard = routes.MustDefault()
	a.router = nav.New(a.guard, a.store, start, a.logger)
	a.boot = bootstrap.New(a.gateway, a.store, a.guard,
		bootstrap.WithRetry(a.config.BootstrapRetries, a.config.RetryBaseDelay),
		bootstrap.WithLogger(a.logger),
	)
	a.shell = shell.New(a.gateway, a.store, a.router, a.logger)
	a.form = authform.New(a.gateway, a.store, a.router, a.logger)

	a.lastPath = a.router.Location().Path
	a.router.OnChange(a.onLocation)
}

// onLocation remounts the form whenever the sign-in view is entered.
func (a *App) onLocation(loc nav.Location) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if loc.Path == routes.LoginPath && a.lastPath != routes.LoginPath {
		a.form = authform.New(a.gateway, a.store, a.router, a.logger)
	}
	a.lastPath = loc.Path
}

func (a *App) authForm() *authform.Controller {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.form
}

// Run resolves the session and serves the REPL until the user quits or
// ctx is done.
func (a *App) Run(ctx context.Context) {
	defer a.Close()
	a.Root(ctx)
}

func (a *App) Close() {
	if a.router != nil {
		a.router.Close()
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Warn(context.Background(), "closing state database", "error", err)
		}
	}
}

func (a *App) isLoggedIn() bool {
	return a.store.Get().Present()
}

func (a *App) getStatus() string {
	loc := a.router.Location()
	if greeting, ok := a.shell.Identity(); ok {
		return fmt.Sprintf("(%s %s)", greeting, loc.Path)
	}
	return fmt.Sprintf("(%s %s)", a.store.Get().Phase, loc.Path)
}

// render prints the navbar and the current view.
func (a *App) render() {
	views.Navbar(a.out, a.shell)
	views.Page(a.out, a.router.Location(), a.store.Get(), a.authForm().State())
}
