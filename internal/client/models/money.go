package models

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is assumed when the backend omits the P&L currency.
const DefaultCurrency = "USD"

// FormatMoney renders amount in the conventional format of currency, for
// example "$1,000.00". Amounts are rounded to the currency's minor unit.
func FormatMoney(amount decimal.Decimal, currency string) string {
	if currency == "" {
		currency = DefaultCurrency
	}
	// money.New registers unknown codes, so Currency is never nil.
	cur := money.New(0, currency).Currency()
	minor := amount.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(minor.IntPart())
}

// String formats the P&L total with its currency.
func (p PnL) String() string {
	return FormatMoney(p.Total, p.Currency)
}
