package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/quotefeed/quotefeed/renderer"
)

// splitsCmd holds the flags for the 'splits' subcommand.
type splitsCmd struct {
	session sessionCmd
}

func (*splitsCmd) Name() string     { return "splits" }
func (*splitsCmd) Synopsis() string { return "display the stock split history" }
func (*splitsCmd) Usage() string {
	return `qf splits [-c <config>] [-t <tickers>] [-start <date>] [-end <date>]

  Displays the stock split events of the configured tickers over the
  range, as ratios reduced to lowest terms.

`
}

func (c *splitsCmd) SetFlags(f *flag.FlagSet) { c.session.setFlags(f) }

func (c *splitsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, cfg, err := c.session.session()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	status := subcommands.ExitSuccess
	for _, symbol := range cfg.Tickers {
		sd, err := p.SplitData(symbol, cfg.StartDate, cfg.EndDate)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			status = subcommands.ExitFailure
			continue
		}
		printMarkdown(renderer.SplitDataMarkdown(&sd))
	}
	return status
}
