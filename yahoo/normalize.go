package yahoo

import (
	"sort"
	"time"

	"github.com/quotefeed/quotefeed"
)

// normalizeRows walks a raw table in ascending timestamp order and builds
// the date-keyed row map, tracking the observed date span as it goes.
//
// Failures are classified: an absent or zero-row table is an
// EmptySourceError, a row failing typed construction is a RowError
// carrying the offending date. A malformed row is never skipped silently:
// it would corrupt the date span and mask systematic mapping defects.
func normalizeRows[T any](
	tbl *Table,
	kind quotefeed.Kind,
	ticker quotefeed.Ticker,
	fieldMap quotefeed.FieldMap,
	build func(quotefeed.Record) (T, error),
) (rows *quotefeed.RowMap[T], min, max quotefeed.Date, err error) {
	if tbl == nil || len(tbl.Rows) == 0 {
		return nil, min, max, &quotefeed.EmptySourceError{Ticker: ticker, Kind: kind}
	}

	// The source is not guaranteed to be pre-sorted: sort on the raw
	// timestamp so the output is deterministic regardless of source order.
	// The sort is stable so rows sharing a timestamp keep their source
	// order, and the overwrite below always picks the same winner.
	sorted := make([]Row, len(tbl.Rows))
	copy(sorted, tbl.Rows)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Unix < sorted[j].Unix })

	rows = &quotefeed.RowMap[T]{}
	for _, raw := range sorted {
		// Drop the time of day and the synthetic timezone: the target rows
		// are keyed by calendar date only.
		day := quotefeed.DateOf(time.Unix(raw.Unix, 0))

		cols := make(map[string]any, len(raw.Columns)+1)
		for k, v := range raw.Columns {
			cols[k] = v
		}
		// Force the date column to the derived ISO date, so the date field
		// always resolves even though the raw row key is timestamp-typed.
		cols[colDate] = day.String()

		rec, rerr := fieldMap.Resolve(cols)
		if rerr == nil {
			var row T
			if row, rerr = build(rec); rerr == nil {
				rows.Append(day, row)
				if min.IsZero() || day.Before(min) {
					min = day
				}
				if max.IsZero() || day.After(max) {
					max = day
				}
				continue
			}
		}
		return nil, quotefeed.Date{}, quotefeed.Date{}, &quotefeed.RowError{Date: day, Err: rerr}
	}
	return rows, min, max, nil
}

// buildMarketData aggregates a raw price table into a MarketData entity.
// Whatever failed inside normalization surfaces as a single
// ProcessingError wrapping the original cause.
func buildMarketData(ticker quotefeed.Ticker, tbl *Table) (quotefeed.MarketData, error) {
	rows, min, max, err := normalizeRows(tbl, quotefeed.KindMarket, ticker, marketFields, quotefeed.NewMarketDataDailyRow)
	if err != nil {
		return quotefeed.MarketData{}, &quotefeed.ProcessingError{Ticker: ticker, Kind: quotefeed.KindMarket, Err: err}
	}
	md, err := quotefeed.NewMarketData(ticker, min, max, rows)
	if err != nil {
		return quotefeed.MarketData{}, &quotefeed.ProcessingError{Ticker: ticker, Kind: quotefeed.KindMarket, Err: err}
	}
	return md, nil
}

// buildDividendData aggregates a raw dividend event table into a
// DividendData entity.
func buildDividendData(ticker quotefeed.Ticker, currency string, tbl *Table) (quotefeed.DividendData, error) {
	rows, _, _, err := normalizeRows(tbl, quotefeed.KindDividend, ticker, dividendFields, quotefeed.NewDividendDataRow)
	if err != nil {
		return quotefeed.DividendData{}, &quotefeed.ProcessingError{Ticker: ticker, Kind: quotefeed.KindDividend, Err: err}
	}
	return quotefeed.NewDividendData(ticker, currency, rows), nil
}

// buildSplitData aggregates a raw split event table into a SplitData entity.
func buildSplitData(ticker quotefeed.Ticker, tbl *Table) (quotefeed.SplitData, error) {
	rows, _, _, err := normalizeRows(tbl, quotefeed.KindSplit, ticker, splitFields, quotefeed.NewSplitDataRow)
	if err != nil {
		return quotefeed.SplitData{}, &quotefeed.ProcessingError{Ticker: ticker, Kind: quotefeed.KindSplit, Err: err}
	}
	return quotefeed.NewSplitData(ticker, rows), nil
}
