package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsKnownExchange(t *testing.T) {
	assert.True(t, IsKnownExchange(DefaultExchange))
	assert.True(t, IsKnownExchange("KUCOIN"))
	assert.False(t, IsKnownExchange("binance"), "identifiers are upper case")
	assert.False(t, IsKnownExchange("MTGOX"))
	assert.Len(t, Exchanges, 11)
}
