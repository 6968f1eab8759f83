// Package portfolio keeps the per-user portfolio data served by the
// development backend.
package portfolio

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

type Holding struct {
	Crypto string          `json:"crypto"`
	Amount decimal.Decimal `json:"amount"`
}

type Trade struct {
	ID         string          `json:"id"`
	Crypto     string          `json:"crypto"`
	Side       string          `json:"side"`
	Amount     decimal.Decimal `json:"amount"`
	Price      decimal.Decimal `json:"price"`
	ExecutedAt time.Time       `json:"executedAt"`
}

type PnL struct {
	Total    decimal.Decimal `json:"pnl"`
	Currency string          `json:"currency"`
}

// Exchange is a linked exchange account. The secret is kept but never
// served back.
type Exchange struct {
	Exchange  string    `json:"exchange"`
	APIKey    string    `json:"apiKey"`
	APISecret string    `json:"-"`
	AddedAt   time.Time `json:"addedAt"`
}

type account struct {
	holdings  []Holding
	trades    []Trade
	exchanges []Exchange
}

// MemoryStore holds portfolios in process memory, keyed by user ID. Unknown
// users have an empty portfolio.
type MemoryStore struct {
	mu       sync.RWMutex
	accounts map[string]*account
	currency string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{accounts: make(map[string]*account), currency: "USD"}
}

func (s *MemoryStore) accountLocked(userID string) *account {
	a, ok := s.accounts[userID]
	if !ok {
		a = &account{}
		s.accounts[userID] = a
	}
	return a
}

func (s *MemoryStore) Holdings(ctx context.Context, userID string) []Holding {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.accounts[userID]
	if !ok {
		return []Holding{}
	}
	return append([]Holding{}, a.holdings...)
}

func (s *MemoryStore) Trades(ctx context.Context, userID string) []Trade {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.accounts[userID]
	if !ok {
		return []Trade{}
	}
	return append([]Trade{}, a.trades...)
}

// PnL is the realized profit and loss: sell proceeds minus buy costs.
func (s *MemoryStore) PnL(ctx context.Context, userID string) PnL {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := decimal.Zero
	if a, ok := s.accounts[userID]; ok {
		for _, t := range a.trades {
			value := t.Amount.Mul(t.Price)
			if t.Side == "SELL" {
				total = total.Add(value)
			} else {
				total = total.Sub(value)
			}
		}
	}
	return PnL{Total: total, Currency: s.currency}
}

// SetHoldings replaces the user's holdings.
func (s *MemoryStore) SetHoldings(ctx context.Context, userID string, hs []Holding) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accountLocked(userID).holdings = append([]Holding{}, hs...)
}

// AddTrade records a trade and adjusts the matching holding.
func (s *MemoryStore) AddTrade(ctx context.Context, userID string, t Trade) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a := s.accountLocked(userID)
	a.trades = append(a.trades, t)

	delta := t.Amount
	if t.Side == "SELL" {
		delta = delta.Neg()
	}
	for i := range a.holdings {
		if a.holdings[i].Crypto == t.Crypto {
			a.holdings[i].Amount = a.holdings[i].Amount.Add(delta)
			return
		}
	}
	a.holdings = append(a.holdings, Holding{Crypto: t.Crypto, Amount: delta})
}

// AddExchange links an exchange account, replacing an earlier link to the
// same exchange.
func (s *MemoryStore) AddExchange(ctx context.Context, userID string, e Exchange) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a := s.accountLocked(userID)
	e.AddedAt = time.Now()
	for i := range a.exchanges {
		if a.exchanges[i].Exchange == e.Exchange {
			a.exchanges[i] = e
			return
		}
	}
	a.exchanges = append(a.exchanges, e)
}

func (s *MemoryStore) Exchanges(ctx context.Context, userID string) []Exchange {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.accounts[userID]
	if !ok {
		return []Exchange{}
	}
	return append([]Exchange{}, a.exchanges...)
}
