package quotefeed

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestMoneyString(t *testing.T) {
	tests := []struct {
		value    string
		currency string
		expected string
	}{
		{"0.24", "USD", "$0.24"},
		{"1234.5", "EUR", "€1,234.50"},
		{"100", "JPY", "¥100"},
	}
	for _, tt := range tests {
		m := M(decimal.RequireFromString(tt.value), tt.currency)
		if got := m.String(); got != tt.expected {
			t.Errorf("M(%s, %s).String() = %q, want %q", tt.value, tt.currency, got, tt.expected)
		}
	}
}

func TestMoneyEqual(t *testing.T) {
	a := M(decimal.RequireFromString("1.50"), "USD")
	b := M(decimal.RequireFromString("1.5"), "USD")
	c := M(decimal.RequireFromString("1.5"), "EUR")
	if !a.Equal(b) {
		t.Errorf("1.50 USD != 1.5 USD")
	}
	if a.Equal(c) {
		t.Errorf("1.5 USD == 1.5 EUR")
	}
}
