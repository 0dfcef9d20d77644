package renderer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	md "github.com/nao1215/markdown"
	"github.com/yshulhan/nbudata"
)

// BondsMarkdown renders a bond listing as a markdown table. The payment
// schedules are left out: they have their own ledger view.
func BondsMarkdown(bonds []nbudata.BondRecord) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Government Bonds")

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"ISIN", "Kind", "Currency", "Nominal", "Coupon %", "Issued", "Maturity", "Period", "Outstanding"},
		Rows:   [][]string{},
	}
	for _, b := range bonds {
		table.Rows = append(table.Rows, []string{
			b.ISIN,
			b.Kind,
			b.Currency,
			b.Nominal.String(),
			b.CouponRate.String(),
			b.Issued.String(),
			b.Maturity.String(),
			strconv.Itoa(b.PayPeriodDays),
			strconv.FormatInt(b.Outstanding, 10),
		})
	}
	doc.Table(table)

	return doc.String()
}

// BondsCSV writes the bond listing as CSV with a header row, payments left
// out as in the markdown view.
func BondsCSV(w io.Writer, bonds []nbudata.BondRecord) error {
	cw := csv.NewWriter(w)
	header := []string{"isin", "kind", "currency", "nominal", "coupon", "issued", "maturity", "pay_period", "outstanding"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, b := range bonds {
		row := []string{
			b.ISIN,
			b.Kind,
			b.Currency,
			b.Nominal.String(),
			b.CouponRate.String(),
			b.Issued.String(),
			b.Maturity.String(),
			strconv.Itoa(b.PayPeriodDays),
			strconv.FormatInt(b.Outstanding, 10),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row for %s: %w", b.ISIN, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
