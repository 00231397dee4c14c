// Package renderer turns normalized series into markdown reports for the
// qf command line tool.
package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/quotefeed/quotefeed"
)

// MarketDataMarkdown renders the daily price series as a markdown table.
func MarketDataMarkdown(m *quotefeed.MarketData) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s Daily Prices", m.Ticker))
	doc.PlainTextf("%d trading days from %s to %s.", m.Rows.Len(), m.StartDate, m.EndDate)

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Date", "Open", "High", "Low", "Close", "Adj Close", "Volume"},
	}
	for on, row := range m.Rows.All() {
		table.Rows = append(table.Rows, []string{
			on.String(),
			row.Open.StringFixed(2),
			row.High.StringFixed(2),
			row.Low.StringFixed(2),
			row.Close.StringFixed(2),
			row.AdjustedClose.StringFixed(2),
			fmt.Sprintf("%d", row.Volume),
		})
	}
	doc.Table(table)

	return doc.String()
}

// DividendDataMarkdown renders the dividend history as a markdown table.
// Amounts are formatted in the currency the source reported.
func DividendDataMarkdown(d *quotefeed.DividendData) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s Dividends", d.Ticker))
	if d.Rows.Len() == 0 {
		doc.PlainText("No dividend paid over the period.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Ex-Date", "Amount"},
	}
	for on, row := range d.Rows.All() {
		table.Rows = append(table.Rows, []string{
			on.String(),
			quotefeed.M(row.Dividend, d.Currency).String(),
		})
	}
	doc.Table(table)

	return doc.String()
}

// SplitDataMarkdown renders the split history as a markdown table.
func SplitDataMarkdown(s *quotefeed.SplitData) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s Splits", s.Ticker))
	if s.Rows.Len() == 0 {
		doc.PlainText("No split over the period.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Date", "Ratio"},
	}
	for on, row := range s.Rows.All() {
		table.Rows = append(table.Rows, []string{
			on.String(),
			fmt.Sprintf("%d:%d", row.Numerator, row.Denominator),
		})
	}
	doc.Table(table)

	return doc.String()
}
