package quotefeed

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Period selects the reporting period for fundamental data.
type Period string

const (
	Annual    Period = "annual"
	Quarterly Period = "quarterly"
)

// ParsePeriod parses a period name. An empty string defaults to annual.
func ParsePeriod(s string) (Period, error) {
	switch Period(s) {
	case "":
		return Annual, nil
	case Annual, Quarterly:
		return Period(s), nil
	default:
		return "", fmt.Errorf("invalid period %q, want %q or %q", s, Annual, Quarterly)
	}
}

// Configuration describes one provider session: which tickers to fetch,
// over which inclusive date range, and for which fundamental period.
type Configuration struct {
	Tickers   []string `yaml:"tickers"`
	StartDate Date     `yaml:"start_date"`
	EndDate   Date     `yaml:"end_date"`
	Period    Period   `yaml:"period"`
}

// Validate checks the configuration and normalizes the period.
func (c *Configuration) Validate() error {
	if len(c.Tickers) == 0 {
		return fmt.Errorf("configuration has no tickers")
	}
	for _, symbol := range c.Tickers {
		if _, err := NewTicker(symbol); err != nil {
			return err
		}
	}
	if c.StartDate.IsZero() || c.EndDate.IsZero() {
		return fmt.Errorf("configuration needs both a start and an end date")
	}
	if c.EndDate.Before(c.StartDate) {
		return fmt.Errorf("configuration end date %s is before start date %s", c.EndDate, c.StartDate)
	}
	period, err := ParsePeriod(string(c.Period))
	if err != nil {
		return err
	}
	c.Period = period
	return nil
}

// LoadConfiguration reads a YAML configuration.
func LoadConfiguration(r io.Reader) (Configuration, error) {
	var c Configuration
	data, err := io.ReadAll(r)
	if err != nil {
		return Configuration{}, fmt.Errorf("cannot read configuration: %w", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Configuration{}, fmt.Errorf("cannot decode configuration: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Configuration{}, err
	}
	return c, nil
}

// DataProvider is the contract every market-data provider implements.
//
// ApplyConfiguration performs the provider's one upstream fetch and caches
// the response; every other operation is a pure in-memory read against
// that cache and never triggers network activity. A provider instance services
// one configuration at a time: reapplying a configuration replaces the
// cached session wholesale.
type DataProvider interface {
	ApplyConfiguration(cfg Configuration) error

	// MarketData returns the daily market rows for one ticker. It fails
	// with a TickerNotFoundError when the ticker is absent from the
	// session, and with a ProcessingError when the source data is empty
	// or malformed.
	MarketData(ticker string, start, end Date) (MarketData, error)

	// DividendData returns the dividend history for one ticker. Absent or
	// malformed dividend history degrades to an empty aggregate; only a
	// ticker missing from the session is an error.
	DividendData(ticker string, start, end Date) (DividendData, error)

	// SplitData returns the split history for one ticker, with the same
	// degrade-to-empty policy as DividendData.
	SplitData(ticker string, start, end Date) (SplitData, error)

	// FundamentalData returns the fundamental reporting rows for one
	// ticker and period. Providers without a fundamental source return an
	// empty aggregate.
	FundamentalData(ticker string, period Period, start, end Date) (FundamentalData, error)

	// CheckCredential reports whether the credential the provider was
	// built with is usable.
	CheckCredential() bool
}
