// Package cmd implements the CLI application to fetch and display market
// data series.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/quotefeed/quotefeed"
	"github.com/quotefeed/quotefeed/yahoo"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&fetchCmd{}, "series")
	c.Register(&dividendsCmd{}, "series")
	c.Register(&splitsCmd{}, "series")

	c.Register(&quoteCmd{}, "quotes")
	c.Register(&checkCmd{}, "quotes")
}

// sessionCmd holds the flags shared by every subcommand that needs an
// applied provider session. A session comes either from a YAML file (-c)
// or from the inline flags.
type sessionCmd struct {
	configFile string
	tickers    string
	start      string
	end        string
}

func (c *sessionCmd) setFlags(f *flag.FlagSet) {
	f.StringVar(&c.configFile, "c", "", "YAML session configuration file")
	f.StringVar(&c.tickers, "t", "", "Comma-separated ticker symbols (e.g. AAPL,MSFT)")
	f.StringVar(&c.start, "start", "", "First date of the range (e.g. 2025-01-01)")
	f.StringVar(&c.end, "end", "", "Last date of the range, defaults to today")
}

// configuration builds the session configuration from the config file or
// the inline flags.
func (c *sessionCmd) configuration() (quotefeed.Configuration, error) {
	if c.configFile != "" {
		f, err := os.Open(c.configFile)
		if err != nil {
			return quotefeed.Configuration{}, fmt.Errorf("cannot open configuration: %w", err)
		}
		defer f.Close()
		return quotefeed.LoadConfiguration(f)
	}

	var cfg quotefeed.Configuration
	if c.tickers != "" {
		for _, symbol := range strings.Split(c.tickers, ",") {
			cfg.Tickers = append(cfg.Tickers, strings.TrimSpace(symbol))
		}
	}
	var err error
	if c.start != "" {
		if cfg.StartDate, err = quotefeed.ParseDate(c.start); err != nil {
			return quotefeed.Configuration{}, err
		}
	}
	if c.end != "" {
		if cfg.EndDate, err = quotefeed.ParseDate(c.end); err != nil {
			return quotefeed.Configuration{}, err
		}
	} else {
		cfg.EndDate = quotefeed.Today()
	}
	if err := cfg.Validate(); err != nil {
		return quotefeed.Configuration{}, err
	}
	return cfg, nil
}

// session applies the configuration on a fresh provider.
func (c *sessionCmd) session() (*yahoo.Provider, quotefeed.Configuration, error) {
	cfg, err := c.configuration()
	if err != nil {
		return nil, quotefeed.Configuration{}, err
	}
	p := yahoo.New()
	if err := p.ApplyConfiguration(cfg); err != nil {
		return nil, quotefeed.Configuration{}, err
	}
	return p, cfg, nil
}

// printMarkdown renders markdown for the terminal, falling back to the
// raw text when the renderer is not usable.
func printMarkdown(markdown string) {
	out, err := glamour.Render(markdown, "auto")
	if err != nil {
		fmt.Println(markdown)
		return
	}
	fmt.Print(out)
}
