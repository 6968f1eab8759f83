// Package demo provides the demo overlay: a switch that makes data views read
// a fixed, canned portfolio instead of calling the backend.
//
// The overlay is independent of the session. It can be on for anonymous and
// authenticated users alike and never looks at the credential. Data sources
// opt in by checking Active before fetching; the network layer is untouched,
// so demo data is always distinguishable from a real but empty portfolio.
package demo

import (
	"sync"

	"github.com/dmitrijs2005/cryptotracker/internal/client/models"
	"github.com/shopspring/decimal"
)

// Dataset is the canned portfolio shown in demo mode.
type Dataset struct {
	Holdings []models.Holding
	Trades   []models.Trade
	PnL      models.PnL
	Profile  models.Profile
}

// fixedDataset builds the demo values. It returns fresh slices on every call
// so nobody can edit the shared snapshot.
func fixedDataset() Dataset {
	return Dataset{
		Holdings: []models.Holding{
			{Crypto: "BTC", Amount: decimal.NewFromFloat(1.0)},
		},
		Trades:  []models.Trade{},
		PnL:     models.PnL{Total: decimal.NewFromFloat(1000.0), Currency: "USD"},
		Profile: models.Profile{Name: "Demo User", Email: "demo@cryptotracker.app"},
	}
}

// Overlay holds the demo switch.
type Overlay struct {
	mu     sync.RWMutex
	active bool
}

// New returns an inactive overlay.
func New() *Overlay {
	return &Overlay{}
}

func (o *Overlay) Active() bool {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.active
}

func (o *Overlay) SetActive(active bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.active = active
}

// Dataset returns a copy of the fixed demo values. It is the same whether or
// not the overlay is active.
func (o *Overlay) Dataset() Dataset {
	return fixedDataset()
}
