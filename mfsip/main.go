// mfsip is the command line tool to track mutual fund SIP investments.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/atharva/siptrack/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion runs first: when invoked by the shell's completion
	// hook it prints candidates and exits.
	completion().Complete("mfsip")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	files := map[string]complete.Predictor{
		"statement": predict.Files("*.xlsx"),
		"mappings":  predict.Files("*.json"),
		"navcache":  predict.Files("*.json"),
	}
	return &complete.Command{
		Flags: files,
		Sub: map[string]*complete.Command{
			"schemes": {Flags: map[string]complete.Predictor{
				"active": predict.Nothing,
				"d":      predict.Something,
			}},
			"report": {Flags: map[string]complete.Predictor{
				"window": predict.Set{"6m", "1y", "2y", "3y", "all"},
			}},
			"resolve": {Flags: map[string]complete.Predictor{
				"confirm": predict.Something,
			}},
			"update": {},
			"topic":  {Args: predict.Set{"readme", "statement", "resolution", "cache", "report", "*"}},
			"assist": {},
		},
	}
}
