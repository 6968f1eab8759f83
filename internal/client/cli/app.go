package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/cryptotracker/internal/client/client"
	"github.com/dmitrijs2005/cryptotracker/internal/client/config"
	"github.com/dmitrijs2005/cryptotracker/internal/client/credstore"
	"github.com/dmitrijs2005/cryptotracker/internal/client/demo"
	"github.com/dmitrijs2005/cryptotracker/internal/client/gate"
	"github.com/dmitrijs2005/cryptotracker/internal/client/router"
	"github.com/dmitrijs2005/cryptotracker/internal/client/services"
	"github.com/dmitrijs2005/cryptotracker/internal/client/session"
	"github.com/dmitrijs2005/cryptotracker/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type App struct {
	config    *config.Config
	logger    logging.Logger
	store     credstore.Store
	session   *session.Manager
	demo      *demo.Overlay
	auth      services.AuthService
	portfolio services.PortfolioService
	router    *router.Router
	reader    *bufio.Reader
	out       io.Writer

	mu       sync.Mutex
	mode     Mode
	userName string
}

// NewApp wires the production dependencies: the SQLite credential store,
// the HTTP API client and, when configured, the gRPC health checker.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.New(c.LogFormat, c.LogLevel, os.Stderr)

	store := credstore.Open(ctx, c.StorePath, logger)
	api := client.NewHTTPClient(c.ServerURL, store, c.RequestTimeout)

	var pinger client.Pinger
	if c.HealthAddr != "" {
		hc, err := client.NewHealthChecker(c.HealthAddr, store)
		if err != nil {
			return nil, fmt.Errorf("health checker: %w", err)
		}
		pinger = hc
	}

	return newApp(c, logger, store, api, pinger, os.Stdin, os.Stdout)
}

func newApp(c *config.Config, logger logging.Logger, store credstore.Store, api client.Client,
	pinger client.Pinger, in io.Reader, out io.Writer) (*App, error) {

	m := session.NewManager(store, logger)
	overlay := demo.New()

	a := &App{
		config:    c,
		logger:    logger.With("module", "cli"),
		store:     store,
		session:   m,
		demo:      overlay,
		auth:      services.NewAuthService(api, pinger, m, logger),
		portfolio: services.NewPortfolioService(api, overlay),
		router:    router.New(gate.Default(), logger),
		reader:    bufio.NewReader(in),
		out:       out,
	}

	a.registerRoutes()
	if err := a.router.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

// Context returns ctx carrying the App's session manager.
func (a *App) Context(ctx context.Context) context.Context {
	return session.NewContext(ctx, a.session)
}

func (a *App) setMode(ctx context.Context, mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()

	if changed {
		a.logger.Info(ctx, "switched mode", "mode", string(mode))
	}
}

func (a *App) Mode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mode
}

func (a *App) setUserName(name string) {
	a.mu.Lock()
	a.userName = name
	a.mu.Unlock()
}

// Run attaches the router to the session and blocks in the REPL until the
// user exits or in reaches EOF.
func (a *App) Run(ctx context.Context) error {
	ctx = a.Context(ctx)
	defer a.close(ctx)

	if err := a.router.Attach(ctx); err != nil {
		return err
	}
	defer a.router.Detach()

	a.Root(ctx)
	return nil
}

func (a *App) close(ctx context.Context) {
	if err := a.auth.Close(ctx); err != nil {
		a.logger.Warn(ctx, "close health checker", "error", err)
	}
	if c, ok := a.store.(io.Closer); ok {
		if err := c.Close(); err != nil {
			a.logger.Warn(ctx, "close credential store", "error", err)
		}
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.State().Authenticated()
}

func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) checkOnline(ctx context.Context) {
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	err := a.auth.Ping(pingCtx)
	cancel()

	if err != nil {
		a.logger.Debug(ctx, "ping failed", "error", err)
		a.setMode(ctx, ModeOffline)
		return
	}
	a.setMode(ctx, ModeOnline)
}
