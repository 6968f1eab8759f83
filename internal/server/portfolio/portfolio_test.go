package portfolio

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_EmptyUser(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	assert.NotNil(t, s.Holdings(ctx, "u"))
	assert.Empty(t, s.Holdings(ctx, "u"))
	assert.Empty(t, s.Trades(ctx, "u"))
	assert.Empty(t, s.Exchanges(ctx, "u"))

	p := s.PnL(ctx, "u")
	assert.True(t, p.Total.IsZero())
	assert.Equal(t, "USD", p.Currency)
}

func TestMemoryStore_TradesAdjustHoldingsAndPnL(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	s.AddTrade(ctx, "u", Trade{ID: "1", Crypto: "BTC", Side: "BUY", Amount: decimal.NewFromInt(2), Price: decimal.NewFromInt(100)})
	s.AddTrade(ctx, "u", Trade{ID: "2", Crypto: "BTC", Side: "SELL", Amount: decimal.NewFromInt(1), Price: decimal.NewFromInt(300)})

	hs := s.Holdings(ctx, "u")
	require.Len(t, hs, 1)
	assert.True(t, decimal.NewFromInt(1).Equal(hs[0].Amount))

	assert.True(t, decimal.NewFromInt(100).Equal(s.PnL(ctx, "u").Total))
	assert.Len(t, s.Trades(ctx, "u"), 2)
}

func TestMemoryStore_SetHoldingsCopies(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	in := []Holding{{Crypto: "ETH", Amount: decimal.NewFromInt(3)}}
	s.SetHoldings(ctx, "u", in)
	in[0].Crypto = "XXX"

	assert.Equal(t, "ETH", s.Holdings(ctx, "u")[0].Crypto)
}

func TestMemoryStore_AddExchangeReplaces(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	s.AddExchange(ctx, "u", Exchange{Exchange: "BINANCE", APIKey: "k1", APISecret: "s1"})
	s.AddExchange(ctx, "u", Exchange{Exchange: "KRAKEN", APIKey: "k2", APISecret: "s2"})
	s.AddExchange(ctx, "u", Exchange{Exchange: "BINANCE", APIKey: "k3", APISecret: "s3"})

	ex := s.Exchanges(ctx, "u")
	require.Len(t, ex, 2)
	assert.Equal(t, "k3", ex[0].APIKey)
	assert.False(t, ex[0].AddedAt.IsZero())
}
