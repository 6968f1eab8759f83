// Package httpapi serves the JSON API the tracker client talks to.
package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/cryptotracker/internal/logging"
	"github.com/dmitrijs2005/cryptotracker/internal/server/portfolio"
	"github.com/dmitrijs2005/cryptotracker/internal/server/users"
	"github.com/gorilla/mux"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	address   string
	users     *users.Service
	portfolio *portfolio.MemoryStore
	logger    logging.Logger
}

func NewServer(a string, l logging.Logger, us *users.Service, ps *portfolio.MemoryStore) *Server {
	return &Server{
		address:   a,
		users:     us,
		portfolio: ps,
		logger:    l.With("module", "http_server"),
	}
}

// Handler returns the routed API with request logging applied.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.Use(s.requestLogger)
	setupRouting(s, r)
	return r
}

func (s *Server) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is done, then shuts down
// gracefully.
func (s *Server) Serve(ctx context.Context, lis net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown failed", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", lis.Addr().String())

	if err := srv.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
