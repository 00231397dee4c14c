package yahoo

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/go-resty/resty/v2"
	"github.com/quotefeed/quotefeed"
)

const chartBaseURL = "https://query1.finance.yahoo.com/v8/finance/chart"

// The chart endpoint rejects requests without a browser user agent.
const browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// fetcher is the upstream fetch collaborator of the provider facade.
type fetcher interface {
	bulkHistory(tickers []string, from, to quotefeed.Date, withActions bool) (map[string]*history, error)
	latest(symbol string) (float64, error)
}

// client talks to the chart endpoint. Responses are cached on disk with a
// daily expiry, so repeated runs on the same day never hit the network twice.
type client struct {
	http *resty.Client
}

func newClient() *client {
	httpClient := resty.New().
		SetBaseURL(chartBaseURL).
		SetTimeout(10 * time.Second).
		SetTransport(&diskCache{base: http.DefaultTransport}).
		SetHeaders(map[string]string{
			"Accept":     "application/json",
			"User-Agent": browserUserAgent,
		})
	return &client{http: httpClient}
}

// chartResponse matches the chart endpoint payload.
//
//	{
//	  "chart": {
//	    "result": [
//	      {
//	        "meta": { "currency": "USD", "symbol": "AAPL", ... },
//	        "timestamp": [1672756200, ...],
//	        "events": {
//	          "dividends": { "1676039400": { "amount": 0.23, "date": 1676039400 } },
//	          "splits": { "1598880600": { "date": 1598880600, "numerator": 4, "denominator": 1, "splitRatio": "4:1" } }
//	        },
//	        "indicators": {
//	          "quote": [ { "open": [...], "high": [...], "low": [...], "close": [...], "volume": [...] } ],
//	          "adjclose": [ { "adjclose": [...] } ]
//	        }
//	      }
//	    ],
//	    "error": null
//	  }
//	}
type chartResponse struct {
	Chart struct {
		Result []chartResult `json:"result"`
		Error  *apiError     `json:"error"`
	} `json:"chart"`
}

type apiError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

type chartResult struct {
	Meta struct {
		Currency string `json:"currency"`
		Symbol   string `json:"symbol"`
	} `json:"meta"`
	Timestamp  []int64      `json:"timestamp"`
	Events     *chartEvents `json:"events"`
	Indicators struct {
		Quote    []chartQuote    `json:"quote"`
		AdjClose []chartAdjClose `json:"adjclose"`
	} `json:"indicators"`
}

type chartEvents struct {
	Dividends map[string]dividendEvent `json:"dividends"`
	Splits    map[string]splitEvent    `json:"splits"`
}

type dividendEvent struct {
	Amount float64 `json:"amount"`
	Date   int64   `json:"date"`
}

type splitEvent struct {
	Date        int64   `json:"date"`
	Numerator   float64 `json:"numerator"`
	Denominator float64 `json:"denominator"`
	SplitRatio  string  `json:"splitRatio"`
}

// bulkHistory performs the one upstream fetch of a provider session: one
// chart call per configured ticker, over the inclusive [from, to] range.
// Tickers the source does not know are simply absent from the result;
// connectivity failures abort the whole fetch and propagate unchanged.
func (c *client) bulkHistory(tickers []string, from, to quotefeed.Date, withActions bool) (map[string]*history, error) {
	histories := make(map[string]*history, len(tickers))
	for _, symbol := range tickers {
		h, err := c.history(symbol, from, to, withActions)
		if err != nil {
			return nil, err
		}
		if h == nil {
			log.Printf("warning: ticker %s rejected by the chart endpoint, skipping", symbol)
			continue
		}
		histories[symbol] = h
	}
	return histories, nil
}

// history fetches and tabulates the chart history of a single ticker.
// It returns (nil, nil) when the source does not know the ticker.
func (c *client) history(symbol string, from, to quotefeed.Date, withActions bool) (*history, error) {
	params := map[string]string{
		// period2 is exclusive, so add a day to include the end date.
		"period1":              strconv.FormatInt(from.Unix(), 10),
		"period2":              strconv.FormatInt(to.Add(1).Unix(), 10),
		"interval":             "1d",
		"includeAdjustedClose": "true",
	}
	if withActions {
		params["events"] = "div|split"
	}

	var payload chartResponse
	resp, err := c.http.R().
		SetQueryParams(params).
		SetResult(&payload).
		SetError(&payload).
		Get("/" + url.PathEscape(symbol))
	if err != nil {
		return nil, fmt.Errorf("cannot reach the chart endpoint for %s: %w", symbol, err)
	}
	if payload.Chart.Error != nil {
		if resp.StatusCode() == http.StatusNotFound {
			// unknown ticker
			return nil, nil
		}
		return nil, fmt.Errorf("chart endpoint error for %s: %s: %s",
			symbol, payload.Chart.Error.Code, payload.Chart.Error.Description)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("cannot http GET %v/%v: %v",
			resp.RawResponse.Request.URL.Host, resp.RawResponse.Request.URL.Path, resp.Status())
	}
	if len(payload.Chart.Result) == 0 {
		return nil, nil
	}
	return buildHistory(symbol, &payload.Chart.Result[0]), nil
}

// buildHistory slices one chart result into the per-kind raw tables.
func buildHistory(symbol string, res *chartResult) *history {
	h := &history{
		currency:  res.Meta.Currency,
		prices:    &Table{Symbol: symbol},
		dividends: &Table{Symbol: symbol},
		splits:    &Table{Symbol: symbol},
	}

	var quote chartQuote
	if len(res.Indicators.Quote) > 0 {
		quote = res.Indicators.Quote[0]
	}
	var adjclose []*float64
	if len(res.Indicators.AdjClose) > 0 {
		adjclose = res.Indicators.AdjClose[0].AdjClose
	}
	for i, ts := range res.Timestamp {
		cols := map[string]any{
			colOpen:     bar(quote.Open, i),
			colHigh:     bar(quote.High, i),
			colLow:      bar(quote.Low, i),
			colClose:    bar(quote.Close, i),
			colAdjClose: bar(adjclose, i),
			colVolume:   volume(quote.Volume, i),
		}
		// The source pads closed days with all-null bars; they carry no data at all.
		if cols[colOpen] == nil && cols[colHigh] == nil && cols[colLow] == nil && cols[colClose] == nil {
			continue
		}
		h.prices.Rows = append(h.prices.Rows, Row{Unix: ts, Columns: cols})
	}

	if res.Events != nil {
		for _, d := range res.Events.Dividends {
			h.dividends.Rows = append(h.dividends.Rows, Row{
				Unix:    d.Date,
				Columns: map[string]any{colDividends: d.Amount},
			})
		}
		for _, s := range res.Events.Splits {
			h.splits.Rows = append(h.splits.Rows, Row{
				Unix: s.Date,
				Columns: map[string]any{
					colNumerator:   s.Numerator,
					colDenominator: s.Denominator,
				},
			})
		}
	}
	return h
}

type chartQuote struct {
	Open   []*float64 `json:"open"`
	High   []*float64 `json:"high"`
	Low    []*float64 `json:"low"`
	Close  []*float64 `json:"close"`
	Volume []*int64   `json:"volume"`
}

type chartAdjClose struct {
	AdjClose []*float64 `json:"adjclose"`
}

func bar(a []*float64, i int) any {
	if i < len(a) && a[i] != nil {
		return *a[i]
	}
	return nil
}

func volume(a []*int64, i int) any {
	if i < len(a) && a[i] != nil {
		return *a[i]
	}
	return nil
}

// latest returns the most recent regular market price for a symbol. The
// value sits in the loosely structured chart meta, so it is extracted with
// a json path instead of a payload struct.
func (c *client) latest(symbol string) (float64, error) {
	resp, err := c.http.R().
		SetQueryParams(map[string]string{"range": "1d", "interval": "1d"}).
		Get("/" + url.PathEscape(symbol))
	if err != nil {
		return 0, fmt.Errorf("cannot reach the chart endpoint for %s: %w", symbol, err)
	}
	if !resp.IsSuccess() {
		return 0, fmt.Errorf("cannot http GET chart for %s: %v", symbol, resp.Status())
	}

	var jobj any
	if err := json.Unmarshal(resp.Body(), &jobj); err != nil {
		return 0, fmt.Errorf("cannot decode chart response for %s: %w", symbol, err)
	}
	path := "$.chart.result[0].meta.regularMarketPrice"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return 0, fmt.Errorf("error parsing %q: %q %w", symbol, path, err)
	}
	// because jsonpath is never clear about whether it returns a list of 1 answer, or a single answer:
	// by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	val, ok := jval.(float64)
	if !ok {
		return 0, fmt.Errorf("error parsing %q: %q not a float: %v", symbol, path, jval)
	}
	return val, nil
}
