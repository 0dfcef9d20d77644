package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/yshulhan/nbudata"
	"github.com/yshulhan/nbudata/bankgov"
	"github.com/yshulhan/nbudata/renderer"
)

// ratesCmd holds the flags for the 'rates' subcommand.
type ratesCmd struct {
	currencies string
	start      string
	end        string
	field      string
	format     string
	desc       bool
}

func (*ratesCmd) Name() string     { return "rates" }
func (*ratesCmd) Synopsis() string { return "fetch official exchange rates over a date range" }
func (*ratesCmd) Usage() string {
	return `nbu rates -c <currency>[,<currency>...] [-s <from>] [-e <to>] [-field <field>] [-format <format>]

  Fetches the official exchange rates of the hryvnia for the given
  currencies over a date range. Several currencies are joined on the dates
  present in all of them, one column per currency.
`
}

func (c *ratesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currencies, "c", "USD", "Comma separated currency codes")
	f.StringVar(&c.start, "s", "-1m", "Start of the date range")
	f.StringVar(&c.end, "e", "0d", "End of the date range (defaults to today)")
	f.StringVar(&c.field, "field", "rate", "Series value: rate or rate_per_unit")
	f.StringVar(&c.format, "format", "table", "Output format: table, csv or json")
	f.BoolVar(&c.desc, "desc", true, "Request the series in descending date order")
}

func (c *ratesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	currencies := parseList(c.currencies)
	if len(currencies) == 0 {
		fmt.Fprintf(os.Stderr, "Error: no currency given\n")
		return subcommands.ExitUsageError
	}
	from, err := nbudata.ParseDate(c.start)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing start date: %v\n", err)
		return subcommands.ExitUsageError
	}
	to, err := nbudata.ParseDate(c.end)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing end date: %v\n", err)
		return subcommands.ExitUsageError
	}
	field, err := nbudata.ParseRateField(c.field)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if c.format != "table" && c.format != "csv" && c.format != "json" {
		fmt.Fprintf(os.Stderr, "Error: unknown format %q, want table, csv or json\n", c.format)
		return subcommands.ExitUsageError
	}

	client := newClient()
	var all []nbudata.RateRecord
	series := make([]nbudata.RateSeries, 0, len(currencies))
	for _, cur := range currencies {
		records, err := client.Rates(bankgov.RateQuery{
			Currency:   cur,
			From:       from,
			To:         to,
			Descending: c.desc,
		})
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		all = append(all, records...)
		series = append(series, nbudata.Series(records, field))
	}

	switch c.format {
	case "json":
		if err := nbudata.EncodeRates(os.Stdout, all); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	case "csv":
		if len(series) == 1 {
			err = renderer.RatesCSV(os.Stdout, all)
		} else {
			err = renderer.RateTableCSV(os.Stdout, nbudata.MergeSeries(series...))
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	default:
		if len(series) == 1 {
			printMarkdown(renderer.RatesMarkdown(all))
		} else {
			printMarkdown(renderer.RateTableMarkdown(nbudata.MergeSeries(series...)))
		}
	}
	return subcommands.ExitSuccess
}
