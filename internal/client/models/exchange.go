package models

// Exchanges lists the exchange identifiers a user can connect, with their
// display names.
var Exchanges = []struct {
	ID   string
	Name string
}{
	{"BINANCE", "Binance"},
	{"COINBASE", "Coinbase"},
	{"WAZIRX", "WazirX"},
	{"KRAKEN", "Kraken"},
	{"BITFINEX", "Bitfinex"},
	{"HUOBI", "Huobi"},
	{"OKX", "OKX"},
	{"GATEIO", "Gate.io"},
	{"BITSTAMP", "Bitstamp"},
	{"POLONIEX", "Poloniex"},
	{"KUCOIN", "KuCoin"},
}

// DefaultExchange is preselected in the add-exchange form.
const DefaultExchange = "BINANCE"

// IsKnownExchange reports whether id is one of Exchanges.
func IsKnownExchange(id string) bool {
	for _, e := range Exchanges {
		if e.ID == id {
			return true
		}
	}
	return false
}
