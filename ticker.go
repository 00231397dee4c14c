package quotefeed

import (
	"fmt"
	"strings"
)

// Ticker is a stock symbol identity value, as requested by the caller and as
// known to the upstream source (e.g. "AAPL", "BRK-B").
type Ticker struct {
	symbol string
}

// NewTicker returns a Ticker for the given symbol.
// The symbol must be non-empty and free of whitespace.
func NewTicker(symbol string) (Ticker, error) {
	if symbol == "" {
		return Ticker{}, fmt.Errorf("ticker symbol is empty")
	}
	if strings.ContainsAny(symbol, " \t\n") {
		return Ticker{}, fmt.Errorf("ticker symbol %q contains whitespace", symbol)
	}
	return Ticker{symbol: symbol}, nil
}

// Symbol returns the ticker symbol.
func (t Ticker) Symbol() string { return t.symbol }

func (t Ticker) String() string { return t.symbol }
