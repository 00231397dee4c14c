package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/quotefeed/quotefeed/yahoo"
)

// quoteCmd holds the flags for the 'quote' subcommand.
type quoteCmd struct{}

func (*quoteCmd) Name() string     { return "quote" }
func (*quoteCmd) Synopsis() string { return "display the latest price of tickers" }
func (*quoteCmd) Usage() string {
	return `qf quote <ticker>...

  Displays the most recent regular-session price of each ticker. Unlike
  the series subcommands it needs no date range.

Usage Examples:
$ qf quote AAPL MC.PA

`
}

func (c *quoteCmd) SetFlags(*flag.FlagSet) {}

func (c *quoteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintf(os.Stderr, "Error: quote needs at least one ticker\n")
		return subcommands.ExitUsageError
	}

	p := yahoo.New()
	status := subcommands.ExitSuccess
	for _, symbol := range f.Args() {
		price, err := p.Latest(symbol)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			status = subcommands.ExitFailure
			continue
		}
		fmt.Printf("%s: %g\n", symbol, price)
	}
	return status
}

// checkCmd verifies that the provider is usable.
type checkCmd struct{}

func (*checkCmd) Name() string     { return "check" }
func (*checkCmd) Synopsis() string { return "check that the data source is usable" }
func (*checkCmd) Usage() string {
	return `qf check

  Checks the provider credential. The public chart endpoint needs none,
  so this reports usable unless the provider is misbuilt.

`
}

func (c *checkCmd) SetFlags(*flag.FlagSet) {}

func (c *checkCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !yahoo.New().CheckCredential() {
		fmt.Fprintln(os.Stderr, "Error: provider credential is not usable")
		return subcommands.ExitFailure
	}
	fmt.Println("provider is usable")
	return subcommands.ExitSuccess
}
