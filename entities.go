package quotefeed

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// MarketDataDailyRow is one trading day of market data. It is constructed
// only through NewMarketDataDailyRow: construction either fully succeeds or
// fails, there is no partially populated row.
type MarketDataDailyRow struct {
	Date          Date
	Open          decimal.Decimal
	High          decimal.Decimal
	Low           decimal.Decimal
	Close         decimal.Decimal
	AdjustedClose decimal.Decimal
	Volume        int64
	VWAP          *decimal.Decimal // nil when the source provides none
}

// NewMarketDataDailyRow builds a daily row from a resolved record.
func NewMarketDataDailyRow(rec Record) (MarketDataDailyRow, error) {
	var row MarketDataDailyRow
	var err error

	if row.Date, err = rec.Date("date"); err != nil {
		return MarketDataDailyRow{}, err
	}
	if row.Open, err = price(rec, "open"); err != nil {
		return MarketDataDailyRow{}, err
	}
	if row.High, err = price(rec, "high"); err != nil {
		return MarketDataDailyRow{}, err
	}
	if row.Low, err = price(rec, "low"); err != nil {
		return MarketDataDailyRow{}, err
	}
	if row.Close, err = price(rec, "close"); err != nil {
		return MarketDataDailyRow{}, err
	}
	if row.AdjustedClose, err = price(rec, "adjusted_close"); err != nil {
		return MarketDataDailyRow{}, err
	}
	if row.Volume, err = rec.Int64("volume"); err != nil {
		return MarketDataDailyRow{}, err
	}
	if row.VWAP, err = rec.OptionalDecimal("vwap"); err != nil {
		return MarketDataDailyRow{}, err
	}
	if row.Volume < 0 {
		return MarketDataDailyRow{}, &FieldError{Field: "volume", Reason: "is negative"}
	}
	if row.High.LessThan(row.Low) {
		return MarketDataDailyRow{}, &FieldError{Field: "high", Reason: "is less than low"}
	}
	return row, nil
}

// price reads a non-negative decimal field.
func price(rec Record, name string) (decimal.Decimal, error) {
	d, err := rec.Decimal(name)
	if err != nil {
		return decimal.Zero, err
	}
	if d.IsNegative() {
		return decimal.Zero, &FieldError{Field: name, Reason: "is negative"}
	}
	return d, nil
}

// DividendDataRow is one dividend event. Declaration, record and payment
// dates stay nil when the source does not publish them.
type DividendDataRow struct {
	Date             Date // ex-dividend date
	DeclarationDate  *Date
	RecordDate       *Date
	PaymentDate      *Date
	Dividend         decimal.Decimal
	AdjustedDividend decimal.Decimal
}

// NewDividendDataRow builds a dividend row from a resolved record.
func NewDividendDataRow(rec Record) (DividendDataRow, error) {
	var row DividendDataRow
	var err error

	if row.Date, err = rec.Date("date"); err != nil {
		return DividendDataRow{}, err
	}
	if row.DeclarationDate, err = rec.OptionalDate("declaration_date"); err != nil {
		return DividendDataRow{}, err
	}
	if row.RecordDate, err = rec.OptionalDate("record_date"); err != nil {
		return DividendDataRow{}, err
	}
	if row.PaymentDate, err = rec.OptionalDate("payment_date"); err != nil {
		return DividendDataRow{}, err
	}
	if row.Dividend, err = price(rec, "dividend"); err != nil {
		return DividendDataRow{}, err
	}
	if row.AdjustedDividend, err = price(rec, "adjusted_dividend"); err != nil {
		return DividendDataRow{}, err
	}
	return row, nil
}

// SplitDataRow is one stock split event, held as an integer fraction
// reduced to lowest terms (7-for-1 is 7/1, 1.5-for-1 is 3/2).
type SplitDataRow struct {
	Date        Date
	Numerator   int64
	Denominator int64
}

// NewSplitDataRow builds a split row from a resolved record.
func NewSplitDataRow(rec Record) (SplitDataRow, error) {
	var row SplitDataRow
	var err error

	if row.Date, err = rec.Date("date"); err != nil {
		return SplitDataRow{}, err
	}
	num, err := rec.Decimal("numerator")
	if err != nil {
		return SplitDataRow{}, err
	}
	den, err := rec.Decimal("denominator")
	if err != nil {
		return SplitDataRow{}, err
	}
	if !num.IsPositive() {
		return SplitDataRow{}, &FieldError{Field: "numerator", Reason: "is not positive"}
	}
	if !den.IsPositive() {
		return SplitDataRow{}, &FieldError{Field: "denominator", Reason: "is not positive"}
	}
	row.Numerator, row.Denominator = simplifyDecimalRatio(num, den)
	return row, nil
}

// simplifyDecimalRatio converts a ratio of decimals into a simplified integer fraction.
func simplifyDecimalRatio(numDecimal, denDecimal decimal.Decimal) (num, den int64) {
	// To convert the decimal ratio to a simple integer fraction,
	// we find a common multiplier to make both numerator and denominator integers.
	// We use the exponent of the decimal (number of digits after the decimal point).
	numExp := -numDecimal.Exponent()
	denExp := -denDecimal.Exponent()
	multiplier := decimal.NewFromInt(1)
	if numExp > 0 {
		multiplier = multiplier.Mul(decimal.NewFromInt(10).Pow(decimal.NewFromInt32(numExp)))
	}
	if denExp > numExp {
		multiplier = decimal.NewFromInt(10).Pow(decimal.NewFromInt32(denExp))
	}

	numInt := numDecimal.Mul(multiplier).BigInt()
	denInt := denDecimal.Mul(multiplier).BigInt()

	// Simplify the fraction by dividing by the greatest common divisor.
	commonDivisor := new(big.Int).GCD(nil, nil, numInt, denInt)

	num = new(big.Int).Div(numInt, commonDivisor).Int64()
	den = new(big.Int).Div(denInt, commonDivisor).Int64()
	return
}

// FundamentalDataRow is one reporting period of fundamental data. No
// provider in this repository populates it yet.
type FundamentalDataRow struct {
	Date Date
}

// MarketData is the aggregate of daily market rows for one ticker. The
// start and end dates are the observed span of the rows, never the
// originally requested range.
type MarketData struct {
	Ticker    Ticker
	StartDate Date
	EndDate   Date
	Rows      *RowMap[MarketDataDailyRow]
}

// NewMarketData wraps normalized rows and their observed span into a
// MarketData aggregate. The row map must not be empty.
func NewMarketData(ticker Ticker, start, end Date, rows *RowMap[MarketDataDailyRow]) (MarketData, error) {
	if rows == nil || rows.Len() == 0 {
		return MarketData{}, fmt.Errorf("market data for %s has no rows", ticker)
	}
	if start.IsZero() || end.IsZero() || end.Before(start) {
		return MarketData{}, fmt.Errorf("market data for %s has an invalid span %s..%s", ticker, start, end)
	}
	return MarketData{Ticker: ticker, StartDate: start, EndDate: end, Rows: rows}, nil
}

// DividendData is the aggregate of dividend events for one ticker.
// An empty row map is a valid aggregate: many tickers pay no dividend.
type DividendData struct {
	Ticker   Ticker
	Currency string // currency of the amounts, as reported by the source
	Rows     *RowMap[DividendDataRow]
}

// NewDividendData wraps dividend rows into an aggregate. A nil row map
// yields an empty aggregate.
func NewDividendData(ticker Ticker, currency string, rows *RowMap[DividendDataRow]) DividendData {
	if rows == nil {
		rows = &RowMap[DividendDataRow]{}
	}
	return DividendData{Ticker: ticker, Currency: currency, Rows: rows}
}

// SplitData is the aggregate of split events for one ticker.
type SplitData struct {
	Ticker Ticker
	Rows   *RowMap[SplitDataRow]
}

// NewSplitData wraps split rows into an aggregate. A nil row map yields an
// empty aggregate.
func NewSplitData(ticker Ticker, rows *RowMap[SplitDataRow]) SplitData {
	if rows == nil {
		rows = &RowMap[SplitDataRow]{}
	}
	return SplitData{Ticker: ticker, Rows: rows}
}

// FundamentalData is the aggregate of fundamental reporting rows for one
// ticker and period.
type FundamentalData struct {
	Ticker Ticker
	Period Period
	Rows   *RowMap[FundamentalDataRow]
}

// NewFundamentalData wraps fundamental rows into an aggregate. A nil row
// map yields an empty aggregate.
func NewFundamentalData(ticker Ticker, period Period, rows *RowMap[FundamentalDataRow]) FundamentalData {
	if rows == nil {
		rows = &RowMap[FundamentalDataRow]{}
	}
	return FundamentalData{Ticker: ticker, Period: period, Rows: rows}
}
