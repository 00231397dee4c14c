package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/quotefeed/quotefeed/renderer"
)

// fetchCmd holds the flags for the 'fetch' subcommand.
type fetchCmd struct {
	session sessionCmd
}

func (*fetchCmd) Name() string     { return "fetch" }
func (*fetchCmd) Synopsis() string { return "fetch and display daily price series" }
func (*fetchCmd) Usage() string {
	return `qf fetch [-c <config>] [-t <tickers>] [-start <date>] [-end <date>]

  Fetches the daily price history of the configured tickers and displays
  one table per ticker.

Usage Examples:
$ qf fetch -t AAPL,MSFT -start 2025-01-01
$ qf fetch -c session.yaml

`
}

func (c *fetchCmd) SetFlags(f *flag.FlagSet) { c.session.setFlags(f) }

func (c *fetchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, cfg, err := c.session.session()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	status := subcommands.ExitSuccess
	for _, symbol := range cfg.Tickers {
		md, err := p.MarketData(symbol, cfg.StartDate, cfg.EndDate)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			status = subcommands.ExitFailure
			continue
		}
		printMarkdown(renderer.MarketDataMarkdown(&md))
	}
	return status
}
