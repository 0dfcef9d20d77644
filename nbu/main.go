// nbu is the command line tool to query the reference data published by the
// National Bank of Ukraine: exchange rates, government bonds and their
// payment schedules.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	"github.com/yshulhan/nbudata/cmd"
)

func main() {
	// Install shell completion before flag parsing so "COMP_LINE" runs
	// never reach the commander.
	completion().Complete("nbu")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()

	// Unknown subcommands fall through to nbu-<name> executables on PATH.
	if args := flag.Args(); len(args) > 0 && !registered(args[0]) {
		if ran, code := cmd.RunExtension(args[0], args[1:]); ran {
			os.Exit(code)
		}
	}

	os.Exit(int(commander.Execute(context.Background())))
}

// registered reports whether name is one of the built-in subcommands.
func registered(name string) bool {
	for _, c := range cmd.Commands {
		if c.Name() == name {
			return true
		}
	}
	return false
}

// completion describes the command tree for shell completion.
func completion() *complete.Command {
	isins := predict.Something
	formats := predict.Set{"table", "csv", "json"}
	return &complete.Command{
		Sub: map[string]*complete.Command{
			"rates": {
				Flags: map[string]complete.Predictor{
					"c":      predict.Something,
					"s":      predict.Something,
					"e":      predict.Something,
					"field":  predict.Set{"rate", "rate_per_unit"},
					"format": formats,
					"desc":   predict.Nothing,
				},
			},
			"bonds": {
				Flags: map[string]complete.Predictor{
					"s":      isins,
					"format": formats,
				},
			},
			"save": {
				Flags: map[string]complete.Predictor{
					"s":   isins,
					"f":   predict.Files("*.json"),
					"dir": predict.Dirs("*"),
				},
			},
			"payments": {
				Flags: map[string]complete.Predictor{
					"s":      isins,
					"a":      predict.Nothing,
					"d":      predict.Something,
					"format": predict.Set{"table", "csv"},
				},
			},
			"topic": {
				Args: predict.Set{"readme", "rates", "bonds", "payments", "dates", "*"},
			},
		},
		Flags: map[string]complete.Predictor{
			"exchange-url":   predict.Something,
			"securities-url": predict.Something,
		},
	}
}
