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

// paymentsCmd holds the flags for the 'payments' subcommand.
type paymentsCmd struct {
	isins  string
	all    bool
	date   string
	format string
}

func (*paymentsCmd) Name() string     { return "payments" }
func (*paymentsCmd) Synopsis() string { return "aggregate bond payment schedules into a ledger" }
func (*paymentsCmd) Usage() string {
	return `nbu payments [-s <isin>[,<isin>...]] [-a] [-d <date>] [-format <format>]

  Flattens the payment schedules of the selected bonds into one row per due
  date and currency, amounts summed. Rows already due before the reference
  date are dropped unless -a is given.
`
}

func (c *paymentsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.isins, "s", "", "Comma separated ISINs to keep")
	f.BoolVar(&c.all, "a", false, "Keep rows dated before the reference date")
	f.StringVar(&c.date, "d", "0d", "Reference date (defaults to today)")
	f.StringVar(&c.format, "format", "table", "Output format: table or csv")
}

func (c *paymentsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.format != "table" && c.format != "csv" {
		fmt.Fprintf(os.Stderr, "Error: unknown format %q, want table or csv\n", c.format)
		return subcommands.ExitUsageError
	}
	on, err := nbudata.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing reference date: %v\n", err)
		return subcommands.ExitUsageError
	}

	bonds, err := newClient().Bonds()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	bonds = nbudata.FilterBonds(bonds, parseList(c.isins))

	rows, err := nbudata.PaymentLedger(bonds, c.all, on)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if c.format == "csv" {
		if err := renderer.PaymentsCSV(os.Stdout, rows); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.PaymentsMarkdown(rows))
	return subcommands.ExitSuccess
}
