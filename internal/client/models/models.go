// Package models defines the portfolio data exchanged with the backend.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Holding is a position in one crypto asset.
type Holding struct {
	Crypto string          `json:"crypto"`
	Amount decimal.Decimal `json:"amount"`
}

// Trade is one executed order.
type Trade struct {
	ID         string          `json:"id"`
	Crypto     string          `json:"crypto"`
	Side       string          `json:"side"`
	Amount     decimal.Decimal `json:"amount"`
	Price      decimal.Decimal `json:"price"`
	ExecutedAt time.Time       `json:"executedAt"`
}

// PnL is the aggregate profit/loss of the portfolio.
type PnL struct {
	Total    decimal.Decimal `json:"pnl"`
	Currency string          `json:"currency,omitempty"`
}

// Profile is the account shown on the profile view.
type Profile struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ExchangeConnection links an exchange account through its API key pair.
type ExchangeConnection struct {
	Exchange  string `json:"exchange"`
	APIKey    string `json:"apiKey"`
	APISecret string `json:"apiSecret"`
}
