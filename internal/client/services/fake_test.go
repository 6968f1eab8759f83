package services

import (
	"context"

	"github.com/dmitrijs2005/cryptotracker/internal/client/client"
	"github.com/dmitrijs2005/cryptotracker/internal/client/models"
)

// fakeClient implements client.Client for the service unit tests.
type fakeClient struct {
	// results
	LoginRet    string
	LoginErr    error
	RegisterRet string
	RegisterErr error
	ForgotErr   error
	ResetRet    string
	ResetErr    error
	MeRet       models.Profile
	MeErr       error
	UpdateMeErr error
	HoldingsRet []models.Holding
	HoldingsErr error
	TradesRet   []models.Trade
	PnLRet      models.PnL
	AddExErr    error
	PingErr     error

	// captured arguments
	LastEmail    string
	LastName     string
	LastPassword []byte
	LastReset    string
	LastProfile  models.Profile
	LastExchange models.ExchangeConnection

	Calls int
}

var _ client.Client = (*fakeClient)(nil)

func (f *fakeClient) Login(_ context.Context, email string, password []byte) (string, error) {
	f.Calls++
	f.LastEmail, f.LastPassword = email, password
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) Register(_ context.Context, name, email string, password []byte) (string, error) {
	f.Calls++
	f.LastName, f.LastEmail, f.LastPassword = name, email, password
	return f.RegisterRet, f.RegisterErr
}

func (f *fakeClient) ForgotPassword(_ context.Context, email string) error {
	f.Calls++
	f.LastEmail = email
	return f.ForgotErr
}

func (f *fakeClient) ResetPassword(_ context.Context, resetToken string, password []byte) (string, error) {
	f.Calls++
	f.LastReset, f.LastPassword = resetToken, password
	return f.ResetRet, f.ResetErr
}

func (f *fakeClient) Me(context.Context) (models.Profile, error) {
	f.Calls++
	return f.MeRet, f.MeErr
}

func (f *fakeClient) UpdateMe(_ context.Context, p models.Profile) error {
	f.Calls++
	f.LastProfile = p
	return f.UpdateMeErr
}

func (f *fakeClient) Holdings(context.Context) ([]models.Holding, error) {
	f.Calls++
	return f.HoldingsRet, f.HoldingsErr
}

func (f *fakeClient) Trades(context.Context) ([]models.Trade, error) {
	f.Calls++
	return f.TradesRet, nil
}

func (f *fakeClient) PnL(context.Context) (models.PnL, error) {
	f.Calls++
	return f.PnLRet, nil
}

func (f *fakeClient) AddExchange(_ context.Context, c models.ExchangeConnection) error {
	f.Calls++
	f.LastExchange = c
	return f.AddExErr
}

func (f *fakeClient) Ping(context.Context) error {
	f.Calls++
	return f.PingErr
}

// fakePinger records Close.
type fakePinger struct {
	PingErr error
	Closed  bool
}

func (p *fakePinger) Ping(context.Context) error { return p.PingErr }
func (p *fakePinger) Close() error               { p.Closed = true; return nil }
