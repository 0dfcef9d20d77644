package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/subcommands"
	"github.com/yshulhan/nbudata"
)

// saveCmd holds the flags for the 'save' subcommand.
type saveCmd struct {
	isins string
	file  string
	dir   string
}

func (*saveCmd) Name() string     { return "save" }
func (*saveCmd) Synopsis() string { return "export government-bond records to json files" }
func (*saveCmd) Usage() string {
	return `nbu save [-s <isin>[,<isin>...]] (-f <file> | -dir <dir>)

  Exports the selected bond records as indented JSON. With -f the whole
  selection goes to one file as an array; with -dir each instrument goes to
  its own <isin>.json file together with the field glossary.
`
}

func (c *saveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.isins, "s", "", "Comma separated ISINs to keep")
	f.StringVar(&c.file, "f", "", "File receiving the whole selection")
	f.StringVar(&c.dir, "dir", "", "Directory receiving one file per instrument")
}

func (c *saveCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if (c.file == "") == (c.dir == "") {
		fmt.Fprintf(os.Stderr, "Error: exactly one of -f or -dir must be given\n")
		return subcommands.ExitUsageError
	}

	bonds, err := newClient().Bonds()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	bonds = nbudata.FilterBonds(bonds, parseList(c.isins))

	if c.file != "" {
		if err := c.saveAll(bonds); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Successfully saved %d records to %s\n", len(bonds), c.file)
		return subcommands.ExitSuccess
	}

	for _, bond := range bonds {
		if err := c.saveOne(bond); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	}
	fmt.Printf("Successfully saved %d records to %s\n", len(bonds), c.dir)
	return subcommands.ExitSuccess
}

// saveAll writes the whole selection to one file as an array.
func (c *saveCmd) saveAll(bonds []nbudata.BondRecord) error {
	out, err := os.Create(c.file)
	if err != nil {
		return fmt.Errorf("cannot create %s: %w", c.file, err)
	}
	defer out.Close()
	return nbudata.EncodeBonds(out, bonds)
}

// saveOne writes one instrument to <dir>/<isin>.json with the glossary.
func (c *saveCmd) saveOne(bond nbudata.BondRecord) error {
	if err := os.MkdirAll(c.dir, 0755); err != nil {
		return fmt.Errorf("cannot create %s: %w", c.dir, err)
	}
	name := filepath.Join(c.dir, bond.ISIN+".json")
	out, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("cannot create %s: %w", name, err)
	}
	defer out.Close()
	return nbudata.EncodeBondFile(out, bond)
}
