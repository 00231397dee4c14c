package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	"github.com/quotefeed/quotefeed/cmd"
)

func main() {
	// Shell completion, active only when invoked through the completion hook.
	completion().Complete("qf")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	session := map[string]complete.Predictor{
		"c":     predict.Files("*.yaml"),
		"t":     predict.Nothing,
		"start": predict.Nothing,
		"end":   predict.Nothing,
	}
	return &complete.Command{
		Sub: map[string]*complete.Command{
			"fetch":     {Flags: session},
			"dividends": {Flags: session},
			"splits":    {Flags: session},
			"quote":     {},
			"check":     {},
		},
	}
}
