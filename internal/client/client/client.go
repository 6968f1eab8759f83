package client

import (
	"context"

	"github.com/dmitrijs2005/cryptotracker/internal/client/models"
)

// Client is the backend API used by the CLI.
//
// The authentication calls return the credential issued by the backend; they
// do not touch the session. Callers hand the credential to session.Manager.
type Client interface {
	Login(ctx context.Context, email string, password []byte) (string, error)
	Register(ctx context.Context, name, email string, password []byte) (string, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, resetToken string, password []byte) (string, error)
	Me(ctx context.Context) (models.Profile, error)
	UpdateMe(ctx context.Context, p models.Profile) error
	Holdings(ctx context.Context) ([]models.Holding, error)
	Trades(ctx context.Context) ([]models.Trade, error)
	PnL(ctx context.Context) (models.PnL, error)
	AddExchange(ctx context.Context, c models.ExchangeConnection) error
	Pinger
}

// Pinger checks backend liveness.
type Pinger interface {
	Ping(ctx context.Context) error
}
