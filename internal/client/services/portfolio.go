package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/cryptotracker/internal/client/client"
	"github.com/dmitrijs2005/cryptotracker/internal/client/demo"
	"github.com/dmitrijs2005/cryptotracker/internal/client/models"
)

// PortfolioService is the data source used by the portfolio views. While the
// demo overlay is active, Holdings, Trades, PnL and Profile are served from
// the fixed demo dataset without any request.
type PortfolioService interface {
	Holdings(ctx context.Context) ([]models.Holding, error)
	Trades(ctx context.Context) ([]models.Trade, error)
	PnL(ctx context.Context) (models.PnL, error)
	Profile(ctx context.Context) (models.Profile, error)
	UpdateProfile(ctx context.Context, p models.Profile) error
	AddExchange(ctx context.Context, conn models.ExchangeConnection) error
}

type portfolioService struct {
	client client.Client
	demo   *demo.Overlay
}

func NewPortfolioService(c client.Client, overlay *demo.Overlay) PortfolioService {
	return &portfolioService{client: c, demo: overlay}
}

func (s *portfolioService) Holdings(ctx context.Context) ([]models.Holding, error) {
	if s.demo.Active() {
		return s.demo.Dataset().Holdings, nil
	}
	return s.client.Holdings(ctx)
}

func (s *portfolioService) Trades(ctx context.Context) ([]models.Trade, error) {
	if s.demo.Active() {
		return s.demo.Dataset().Trades, nil
	}
	return s.client.Trades(ctx)
}

func (s *portfolioService) PnL(ctx context.Context) (models.PnL, error) {
	if s.demo.Active() {
		return s.demo.Dataset().PnL, nil
	}
	return s.client.PnL(ctx)
}

func (s *portfolioService) Profile(ctx context.Context) (models.Profile, error) {
	if s.demo.Active() {
		return s.demo.Dataset().Profile, nil
	}
	return s.client.Me(ctx)
}

func (s *portfolioService) UpdateProfile(ctx context.Context, p models.Profile) error {
	if s.demo.Active() {
		return ErrDemoReadOnly
	}
	p.Name = strings.TrimSpace(p.Name)
	p.Email = strings.TrimSpace(p.Email)
	if p.Email == "" {
		return fmt.Errorf("update profile: %w", ErrMissingCredentials)
	}
	return s.client.UpdateMe(ctx, p)
}

// AddExchange validates conn and links the exchange account. An empty
// exchange selects models.DefaultExchange.
func (s *portfolioService) AddExchange(ctx context.Context, conn models.ExchangeConnection) error {
	conn.Exchange = strings.ToUpper(strings.TrimSpace(conn.Exchange))
	conn.APIKey = strings.TrimSpace(conn.APIKey)
	conn.APISecret = strings.TrimSpace(conn.APISecret)

	if conn.APIKey == "" || conn.APISecret == "" {
		return ErrAPIKeyRequired
	}
	if conn.Exchange == "" {
		conn.Exchange = models.DefaultExchange
	}
	if !models.IsKnownExchange(conn.Exchange) {
		return fmt.Errorf("%w: %s", ErrUnknownExchange, conn.Exchange)
	}

	if err := s.client.AddExchange(ctx, conn); err != nil {
		return fmt.Errorf("add exchange error: %w", err)
	}
	return nil
}
