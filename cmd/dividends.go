package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/quotefeed/quotefeed/renderer"
)

// dividendsCmd holds the flags for the 'dividends' subcommand.
type dividendsCmd struct {
	session sessionCmd
}

func (*dividendsCmd) Name() string     { return "dividends" }
func (*dividendsCmd) Synopsis() string { return "display the dividend history" }
func (*dividendsCmd) Usage() string {
	return `qf dividends [-c <config>] [-t <tickers>] [-start <date>] [-end <date>]

  Displays the dividend events of the configured tickers over the range,
  in the currency reported by the source.

`
}

func (c *dividendsCmd) SetFlags(f *flag.FlagSet) { c.session.setFlags(f) }

func (c *dividendsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, cfg, err := c.session.session()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	status := subcommands.ExitSuccess
	for _, symbol := range cfg.Tickers {
		dd, err := p.DividendData(symbol, cfg.StartDate, cfg.EndDate)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			status = subcommands.ExitFailure
			continue
		}
		printMarkdown(renderer.DividendDataMarkdown(&dd))
	}
	return status
}
