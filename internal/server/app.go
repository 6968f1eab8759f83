// Package server wires and runs the development backend: the JSON API the
// tracker client talks to and the gRPC health service it pings.
package server

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/cryptotracker/internal/logging"
	"github.com/dmitrijs2005/cryptotracker/internal/server/config"
	"github.com/dmitrijs2005/cryptotracker/internal/server/httpapi"
	"github.com/dmitrijs2005/cryptotracker/internal/server/portfolio"
	"github.com/dmitrijs2005/cryptotracker/internal/server/users"

	gs "github.com/dmitrijs2005/cryptotracker/internal/server/grpc"
)

type App struct {
	config           *config.Config
	logger           logging.Logger
	userService      *users.Service
	portfolioService *portfolio.MemoryStore
}

func NewApp(c *config.Config) (*App, error) {

	logger := logging.New(c.LogFormat, c.LogLevel, os.Stdout)

	repo := users.NewMemoryRepository()
	us := users.NewService(repo, repo, users.LogMailer{Logger: logger.With("module", "mailer")}, c)
	ps := portfolio.NewMemoryStore()

	return &App{config: c, logger: logger, userService: us, portfolioService: ps}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := httpapi.NewServer(app.config.HTTPAddr, app.logger, app.userService, app.portfolioService)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := gs.NewGRPCServer(app.config.HealthAddr, app.logger, app.config.SecretKey)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves until ctx is cancelled, a termination signal arrives or one of
// the servers fails.
func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	app.logger.Info(ctx, "App stopped")
}
