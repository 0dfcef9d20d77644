package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/yshulhan/nbudata"
	"github.com/yshulhan/nbudata/renderer"
)

// bondsCmd holds the flags for the 'bonds' subcommand.
type bondsCmd struct {
	isins  string
	format string
}

func (*bondsCmd) Name() string     { return "bonds" }
func (*bondsCmd) Synopsis() string { return "fetch the government-bond register" }
func (*bondsCmd) Usage() string {
	return `nbu bonds [-s <isin>[,<isin>...]] [-format <format>]

  Fetches the register of domestic government bonds and lists the selected
  instruments. Without -s the whole register is listed.
`
}

func (c *bondsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.isins, "s", "", "Comma separated ISINs to keep")
	f.StringVar(&c.format, "format", "table", "Output format: table, csv or json")
}

func (c *bondsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.format != "table" && c.format != "csv" && c.format != "json" {
		fmt.Fprintf(os.Stderr, "Error: unknown format %q, want table, csv or json\n", c.format)
		return subcommands.ExitUsageError
	}

	bonds, err := newClient().Bonds()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	bonds = nbudata.FilterBonds(bonds, parseList(c.isins))

	switch c.format {
	case "json":
		err = nbudata.EncodeBonds(os.Stdout, bonds)
	case "csv":
		err = renderer.BondsCSV(os.Stdout, bonds)
	default:
		printMarkdown(renderer.BondsMarkdown(bonds))
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
