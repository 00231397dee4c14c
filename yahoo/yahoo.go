// Package yahoo implements the quotefeed data provider contract on top of
// the Yahoo Finance chart web service.
//
// A Provider works in two phases. ApplyConfiguration performs the single
// bulk fetch of the session: one chart request per configured ticker, with
// dividend and split events piggybacked on the same call. The per-entity
// accessors then only read from the cached session, slicing and
// normalizing the raw tables. They never touch the network.
//
// The accessors do not fail uniformly. Market data is the primary product,
// so any defect in it is a hard error. Dividend and split histories are
// auxiliary: a legitimately empty history and a malformed one both degrade
// to an empty aggregate, with a log line telling the two apart.
package yahoo

import (
	"errors"
	"fmt"
	"log"

	"github.com/quotefeed/quotefeed"
)

// Provider serves normalized market, dividend and split series fetched
// from Yahoo Finance. The zero value is not usable, use New.
type Provider struct {
	fetch   fetcher
	session *session
}

// session holds the raw histories of one applied configuration. A new
// configuration replaces the session wholesale, there is no incremental
// merge.
type session struct {
	cfg       quotefeed.Configuration
	histories map[string]*history
}

var _ quotefeed.DataProvider = (*Provider)(nil)

// ErrNotConfigured reports an accessor call on a Provider that has no
// successfully applied configuration yet.
var ErrNotConfigured = errors.New("no configuration applied")

// New returns a Provider backed by the public Yahoo Finance chart
// endpoint, with responses cached on disk for the day.
func New() *Provider { return &Provider{fetch: newClient()} }

// ApplyConfiguration validates cfg, fetches the full history of every
// configured ticker in one pass, and installs the result as the current
// session. Tickers unknown to Yahoo are simply absent from the session;
// they surface as TickerNotFoundError on access, not here. Only a
// connectivity or protocol failure makes ApplyConfiguration fail, and in
// that case the previous session is left untouched.
func (p *Provider) ApplyConfiguration(cfg quotefeed.Configuration) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	histories, err := p.fetch.bulkHistory(cfg.Tickers, cfg.StartDate, cfg.EndDate, true)
	if err != nil {
		return fmt.Errorf("fetching histories: %w", err)
	}
	p.session = &session{cfg: cfg, histories: histories}
	return nil
}

// history resolves symbol against the current session.
func (p *Provider) history(symbol string) (quotefeed.Ticker, *history, error) {
	ticker, err := quotefeed.NewTicker(symbol)
	if err != nil {
		return quotefeed.Ticker{}, nil, err
	}
	if p.session == nil {
		return ticker, nil, ErrNotConfigured
	}
	h, ok := p.session.histories[ticker.Symbol()]
	if !ok {
		return ticker, nil, &quotefeed.TickerNotFoundError{Ticker: ticker}
	}
	return ticker, h, nil
}

// slice restricts tbl to the calendar days start through end inclusive.
func slice(tbl *Table, start, end quotefeed.Date) *Table {
	if tbl == nil {
		return nil
	}
	return tbl.between(start.Unix(), end.Add(1).Unix())
}

// MarketData returns the daily price series of symbol restricted to
// start through end inclusive. Unlike the event accessors it fails hard:
// an empty range, a malformed bar or an unknown ticker is an error, never
// a silently empty series.
func (p *Provider) MarketData(symbol string, start, end quotefeed.Date) (quotefeed.MarketData, error) {
	ticker, h, err := p.history(symbol)
	if err != nil {
		return quotefeed.MarketData{}, err
	}
	return buildMarketData(ticker, slice(h.prices, start, end))
}

// DividendData returns the dividend events of symbol restricted to start
// through end inclusive. An unknown ticker is still an error, but a range
// without events, or one Yahoo reports malformed, degrades to an empty
// aggregate with a log line stating which of the two happened.
func (p *Provider) DividendData(symbol string, start, end quotefeed.Date) (quotefeed.DividendData, error) {
	ticker, h, err := p.history(symbol)
	if err != nil {
		return quotefeed.DividendData{}, err
	}
	dd, err := buildDividendData(ticker, h.currency, slice(h.dividends, start, end))
	if err != nil {
		logDegraded(symbol, start, end, err)
		return quotefeed.NewDividendData(ticker, h.currency, nil), nil
	}
	return dd, nil
}

// SplitData returns the split events of symbol restricted to start
// through end inclusive, with the same degraded failure mode as
// DividendData.
func (p *Provider) SplitData(symbol string, start, end quotefeed.Date) (quotefeed.SplitData, error) {
	ticker, h, err := p.history(symbol)
	if err != nil {
		return quotefeed.SplitData{}, err
	}
	sd, err := buildSplitData(ticker, slice(h.splits, start, end))
	if err != nil {
		logDegraded(symbol, start, end, err)
		return quotefeed.NewSplitData(ticker, nil), nil
	}
	return sd, nil
}

// logDegraded records why an event accessor returned an empty aggregate.
// An empty source is routine (most tickers pay no dividend in any given
// window) and logs as a warning. A row violation means Yahoo served a bar
// we could not type, which deserves a louder line.
func logDegraded(symbol string, start, end quotefeed.Date, err error) {
	var empty *quotefeed.EmptySourceError
	if errors.As(err, &empty) {
		log.Printf("warning: no %s for %s between %s and %s", empty.Kind, symbol, start, end)
		return
	}
	log.Printf("error: dropping %s events: %v", symbol, err)
}

// FundamentalData always returns an empty aggregate: the chart endpoint
// carries no fundamentals. The method exists so the Provider satisfies
// the full DataProvider contract.
func (p *Provider) FundamentalData(symbol string, period quotefeed.Period, start, end quotefeed.Date) (quotefeed.FundamentalData, error) {
	ticker, err := quotefeed.NewTicker(symbol)
	if err != nil {
		return quotefeed.FundamentalData{}, err
	}
	return quotefeed.NewFundamentalData(ticker, period, nil), nil
}

// CheckCredential reports whether the provider is usable. The chart
// endpoint is public, so there is no credential to check.
func (p *Provider) CheckCredential() bool { return true }

// Latest returns the most recent regular-session price of symbol. It hits
// the network directly and does not require a configured session.
func (p *Provider) Latest(symbol string) (float64, error) {
	if _, err := quotefeed.NewTicker(symbol); err != nil {
		return 0, err
	}
	return p.fetch.latest(symbol)
}
