package yahoo

import "github.com/quotefeed/quotefeed"

// Source column names of the chart response tables.
const (
	colDate        = "Date"
	colOpen        = "Open"
	colHigh        = "High"
	colLow         = "Low"
	colClose       = "Close"
	colAdjClose    = "Adj Close"
	colVolume      = "Volume"
	colDividends   = "Dividends"
	colNumerator   = "Numerator"
	colDenominator = "Denominator"
)

// marketFields maps the market daily row fields to the chart columns.
// There is no volume-weighted average price in this source.
var marketFields = quotefeed.FieldMap{
	{Target: "date", Source: colDate},
	{Target: "open", Source: colOpen},
	{Target: "high", Source: colHigh},
	{Target: "low", Source: colLow},
	{Target: "close", Source: colClose},
	{Target: "adjusted_close", Source: colAdjClose},
	{Target: "volume", Source: colVolume},
	{Target: "vwap", Source: ""},
}

// dividendFields maps the dividend row fields to the chart event columns.
// The source publishes neither the declaration, record and payment dates,
// nor an adjusted figure: the raw payout fills both dividend fields.
var dividendFields = quotefeed.FieldMap{
	{Target: "date", Source: colDate},
	{Target: "declaration_date", Source: ""},
	{Target: "record_date", Source: ""},
	{Target: "payment_date", Source: ""},
	{Target: "dividend", Source: colDividends},
	{Target: "adjusted_dividend", Source: colDividends},
}

// splitFields maps the split row fields to the chart event columns.
var splitFields = quotefeed.FieldMap{
	{Target: "date", Source: colDate},
	{Target: "numerator", Source: colNumerator},
	{Target: "denominator", Source: colDenominator},
}
