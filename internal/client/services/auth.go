// Package services contains application services for the cryptotracker client.
// This file defines the authentication service: credential exchange with the
// backend, handing the issued credential to the session, and logout.
package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/cryptotracker/internal/client/client"
	"github.com/dmitrijs2005/cryptotracker/internal/client/session"
	"github.com/dmitrijs2005/cryptotracker/internal/logging"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Login, Register, ResetPassword: exchange with the server, then start the
//     session with the issued credential.
//   - ForgotPassword: ask the server to send a reset link; no session change.
//   - Logout: end the session. Never fails.
//   - Ping: check server liveness.
//   - Close: release underlying client resources.
//
// All methods must honor context cancellation/timeouts.
type AuthService interface {
	Login(ctx context.Context, email string, password []byte) error
	Register(ctx context.Context, name, email string, password []byte) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, resetToken string, password []byte) error
	Logout(ctx context.Context)
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// authService is the concrete AuthService backed by a remote Client and the
// process session.
type authService struct {
	client  client.Client
	pinger  client.Pinger
	session *session.Manager
	logger  logging.Logger
}

// NewAuthService constructs an AuthService. Liveness goes through pinger when
// it is non-nil, otherwise through the API client.
func NewAuthService(c client.Client, pinger client.Pinger, m *session.Manager, logger logging.Logger) AuthService {
	if pinger == nil {
		pinger = c
	}
	return &authService{
		client:  c,
		pinger:  pinger,
		session: m,
		logger:  logger.With("module", "auth"),
	}
}

func (a *authService) Login(ctx context.Context, email string, password []byte) error {
	email = strings.TrimSpace(email)
	if email == "" || len(password) == 0 {
		return ErrMissingCredentials
	}

	token, err := a.client.Login(ctx, email, password)
	if err != nil {
		return fmt.Errorf("login error: %w", err)
	}
	return a.start(ctx, token)
}

func (a *authService) Register(ctx context.Context, name, email string, password []byte) error {
	email = strings.TrimSpace(email)
	if email == "" || len(password) == 0 {
		return ErrMissingCredentials
	}

	token, err := a.client.Register(ctx, strings.TrimSpace(name), email, password)
	if err != nil {
		return fmt.Errorf("register error: %w", err)
	}
	return a.start(ctx, token)
}

func (a *authService) ForgotPassword(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrMissingCredentials
	}
	if err := a.client.ForgotPassword(ctx, email); err != nil {
		return fmt.Errorf("forgot password error: %w", err)
	}
	return nil
}

func (a *authService) ResetPassword(ctx context.Context, resetToken string, password []byte) error {
	resetToken = strings.TrimSpace(resetToken)
	if resetToken == "" || len(password) == 0 {
		return ErrMissingCredentials
	}

	token, err := a.client.ResetPassword(ctx, resetToken, password)
	if err != nil {
		return fmt.Errorf("reset password error: %w", err)
	}
	return a.start(ctx, token)
}

// start hands the issued credential to the session. The session ignores an
// empty credential, so that case is reported here.
func (a *authService) start(ctx context.Context, token string) error {
	if token == "" {
		return ErrNoCredential
	}
	a.session.Login(token)
	a.logger.Info(ctx, "session started")
	return nil
}

func (a *authService) Logout(ctx context.Context) {
	a.session.Logout()
	a.logger.Info(ctx, "session ended")
}

// Ping proxies a liveness check to the underlying pinger.
func (a *authService) Ping(ctx context.Context) error {
	return a.pinger.Ping(ctx)
}

// Close releases resources held by the health pinger, if it has any.
func (a *authService) Close(ctx context.Context) error {
	if c, ok := a.pinger.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
