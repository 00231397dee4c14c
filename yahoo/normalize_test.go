package yahoo

import (
	"errors"
	"testing"

	"github.com/quotefeed/quotefeed"
	"github.com/shopspring/decimal"
)

func aapl(t *testing.T) quotefeed.Ticker {
	t.Helper()
	ticker, err := quotefeed.NewTicker("AAPL")
	if err != nil {
		t.Fatal(err)
	}
	return ticker
}

// ts returns the unix timestamp of an ISO day at the given UTC hour, the
// shape of the timestamps the chart endpoint attaches to daily bars.
func ts(t *testing.T, day string, hour int64) int64 {
	t.Helper()
	return quotefeed.MustParseDate(day).Unix() + hour*3600
}

func priceRow(unix int64, close float64) Row {
	return Row{Unix: unix, Columns: map[string]any{
		colOpen:     close - 1,
		colHigh:     close + 2,
		colLow:      close - 2,
		colClose:    close,
		colAdjClose: close - 0.5,
		colVolume:   int64(1000),
	}}
}

func TestBuildMarketData(t *testing.T) {
	tbl := &Table{Symbol: "AAPL", Rows: []Row{
		// Deliberately out of order: normalization sorts.
		priceRow(ts(t, "2025-06-04", 14), 103),
		priceRow(ts(t, "2025-06-02", 14), 101),
		priceRow(ts(t, "2025-06-03", 14), 102),
	}}
	md, err := buildMarketData(aapl(t), tbl)
	if err != nil {
		t.Fatalf("buildMarketData: %v", err)
	}
	if md.StartDate != quotefeed.MustParseDate("2025-06-02") || md.EndDate != quotefeed.MustParseDate("2025-06-04") {
		t.Errorf("span = %s..%s, want the observed 2025-06-02..2025-06-04", md.StartDate, md.EndDate)
	}
	if md.Rows.Len() != 3 {
		t.Fatalf("Rows.Len() = %d, want 3", md.Rows.Len())
	}

	var prev quotefeed.Date
	for on, row := range md.Rows.All() {
		if !prev.IsZero() && !prev.Before(on) {
			t.Errorf("dates out of order: %s then %s", prev, on)
		}
		prev = on
		if row.VWAP != nil {
			t.Errorf("%s: VWAP = %v, want nil for this source", on, row.VWAP)
		}
	}
	row, ok := md.Rows.Get(quotefeed.MustParseDate("2025-06-03"))
	if !ok || !row.Close.Equal(decimal.NewFromInt(102)) {
		t.Errorf("row on 2025-06-03 = %+v (found %v)", row, ok)
	}
}

func TestBuildMarketDataSameDayLastWins(t *testing.T) {
	// Two bars on the same calendar day (a stale and a live quote): the
	// later timestamp must win.
	tbl := &Table{Symbol: "AAPL", Rows: []Row{
		priceRow(ts(t, "2025-06-02", 20), 105),
		priceRow(ts(t, "2025-06-02", 14), 101),
	}}
	md, err := buildMarketData(aapl(t), tbl)
	if err != nil {
		t.Fatalf("buildMarketData: %v", err)
	}
	if md.Rows.Len() != 1 {
		t.Fatalf("Rows.Len() = %d, want 1", md.Rows.Len())
	}
	row, _ := md.Rows.Get(quotefeed.MustParseDate("2025-06-02"))
	if !row.Close.Equal(decimal.NewFromInt(105)) {
		t.Errorf("Close = %s, want the later bar 105", row.Close)
	}
}

func TestBuildMarketDataEqualTimestampsLastWins(t *testing.T) {
	// Rows with byte-identical timestamps have no order to sort on: the
	// one appearing later in the source must still win, deterministically.
	when := ts(t, "2025-06-02", 14)
	rows := make([]Row, 0, 20)
	for i := 0; i < 19; i++ {
		rows = append(rows, priceRow(when, 101))
	}
	rows = append(rows, priceRow(when, 109))
	md, err := buildMarketData(aapl(t), &Table{Symbol: "AAPL", Rows: rows})
	if err != nil {
		t.Fatalf("buildMarketData: %v", err)
	}
	if md.Rows.Len() != 1 {
		t.Fatalf("Rows.Len() = %d, want 1", md.Rows.Len())
	}
	row, _ := md.Rows.Get(quotefeed.MustParseDate("2025-06-02"))
	if !row.Close.Equal(decimal.NewFromInt(109)) {
		t.Errorf("Close = %s, want the last source row 109", row.Close)
	}
}

func TestBuildMarketDataEmptySource(t *testing.T) {
	_, err := buildMarketData(aapl(t), &Table{Symbol: "AAPL"})
	var perr *quotefeed.ProcessingError
	if !errors.As(err, &perr) || perr.Kind != quotefeed.KindMarket {
		t.Fatalf("err = %v, want a market data ProcessingError", err)
	}
	var empty *quotefeed.EmptySourceError
	if !errors.As(err, &empty) {
		t.Errorf("cause = %v, want an EmptySourceError", perr.Err)
	}

	if _, err := buildMarketData(aapl(t), nil); !errors.As(err, &empty) {
		t.Errorf("nil table err = %v, want an EmptySourceError", err)
	}
}

func TestBuildMarketDataRowViolation(t *testing.T) {
	bad := priceRow(ts(t, "2025-06-03", 14), 102)
	bad.Columns[colClose] = nil // partially null bar
	tbl := &Table{Symbol: "AAPL", Rows: []Row{
		priceRow(ts(t, "2025-06-02", 14), 101),
		bad,
	}}
	_, err := buildMarketData(aapl(t), tbl)
	var rerr *quotefeed.RowError
	if !errors.As(err, &rerr) {
		t.Fatalf("err = %v, want a RowError", err)
	}
	if rerr.Date != quotefeed.MustParseDate("2025-06-03") {
		t.Errorf("RowError.Date = %s, want the offending 2025-06-03", rerr.Date)
	}
}

func TestBuildDividendData(t *testing.T) {
	tbl := &Table{Symbol: "AAPL", Rows: []Row{
		{Unix: ts(t, "2025-02-10", 14), Columns: map[string]any{colDividends: 0.24}},
		{Unix: ts(t, "2025-05-12", 14), Columns: map[string]any{colDividends: 0.25}},
	}}
	dd, err := buildDividendData(aapl(t), "USD", tbl)
	if err != nil {
		t.Fatalf("buildDividendData: %v", err)
	}
	if dd.Currency != "USD" {
		t.Errorf("Currency = %q", dd.Currency)
	}
	if dd.Rows.Len() != 2 {
		t.Fatalf("Rows.Len() = %d, want 2", dd.Rows.Len())
	}
	row, _ := dd.Rows.Get(quotefeed.MustParseDate("2025-02-10"))
	// This source has no adjusted figure: both fields carry the raw payout.
	if !row.Dividend.Equal(row.AdjustedDividend) || !row.Dividend.Equal(decimal.NewFromFloat(0.24)) {
		t.Errorf("Dividend/AdjustedDividend = %s/%s, want 0.24/0.24", row.Dividend, row.AdjustedDividend)
	}
	if row.DeclarationDate != nil || row.RecordDate != nil || row.PaymentDate != nil {
		t.Errorf("optional dates should stay nil: %+v", row)
	}
}

func TestBuildSplitData(t *testing.T) {
	tbl := &Table{Symbol: "AAPL", Rows: []Row{
		{Unix: ts(t, "2020-08-31", 13), Columns: map[string]any{colNumerator: 4.0, colDenominator: 1.0}},
	}}
	sd, err := buildSplitData(aapl(t), tbl)
	if err != nil {
		t.Fatalf("buildSplitData: %v", err)
	}
	row, ok := sd.Rows.Get(quotefeed.MustParseDate("2020-08-31"))
	if !ok || row.Numerator != 4 || row.Denominator != 1 {
		t.Errorf("split = %d/%d (found %v), want 4/1", row.Numerator, row.Denominator, ok)
	}
}
