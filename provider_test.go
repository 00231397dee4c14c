package quotefeed

import (
	"strings"
	"testing"
)

func TestLoadConfiguration(t *testing.T) {
	yml := `
tickers: [AAPL, MSFT]
start_date: 2025-01-01
end_date: 2025-06-30
period: quarterly
`
	cfg, err := LoadConfiguration(strings.NewReader(yml))
	if err != nil {
		t.Fatalf("LoadConfiguration: %v", err)
	}
	if len(cfg.Tickers) != 2 || cfg.Tickers[0] != "AAPL" {
		t.Errorf("Tickers = %v", cfg.Tickers)
	}
	if cfg.StartDate != MustParseDate("2025-01-01") || cfg.EndDate != MustParseDate("2025-06-30") {
		t.Errorf("range = %s..%s", cfg.StartDate, cfg.EndDate)
	}
	if cfg.Period != Quarterly {
		t.Errorf("Period = %q", cfg.Period)
	}
}

func TestConfigurationValidate(t *testing.T) {
	valid := Configuration{
		Tickers:   []string{"AAPL"},
		StartDate: MustParseDate("2025-01-01"),
		EndDate:   MustParseDate("2025-01-31"),
	}

	tests := []struct {
		name   string
		mutate func(*Configuration)
		err    bool
	}{
		{"valid", func(c *Configuration) {}, false},
		{"no tickers", func(c *Configuration) { c.Tickers = nil }, true},
		{"blank ticker", func(c *Configuration) { c.Tickers = []string{" "} }, true},
		{"missing end", func(c *Configuration) { c.EndDate = Date{} }, true},
		{"inverted range", func(c *Configuration) { c.StartDate, c.EndDate = c.EndDate, c.StartDate }, true},
		{"bad period", func(c *Configuration) { c.Period = "monthly" }, true},
	}
	for _, tt := range tests {
		cfg := valid
		cfg.Tickers = append([]string(nil), valid.Tickers...)
		tt.mutate(&cfg)
		if err := cfg.Validate(); (err != nil) != tt.err {
			t.Errorf("%s: Validate() = %v, want error %v", tt.name, err, tt.err)
		}
	}
}

func TestValidateDefaultsPeriod(t *testing.T) {
	cfg := Configuration{
		Tickers:   []string{"AAPL"},
		StartDate: MustParseDate("2025-01-01"),
		EndDate:   MustParseDate("2025-01-31"),
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if cfg.Period != Annual {
		t.Errorf("Period = %q, want %q", cfg.Period, Annual)
	}
}

func TestNewTicker(t *testing.T) {
	if _, err := NewTicker("BRK-B"); err != nil {
		t.Errorf("NewTicker(BRK-B): %v", err)
	}
	for _, bad := range []string{"", "A B", "A\tB"} {
		if _, err := NewTicker(bad); err == nil {
			t.Errorf("NewTicker(%q) succeeded, want error", bad)
		}
	}
}
