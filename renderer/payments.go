package renderer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"

	md "github.com/nao1215/markdown"
	"github.com/yshulhan/nbudata"
)

// PaymentsMarkdown renders the payment ledger as a markdown table, one row
// per due date and currency. Totals are formatted with the conventions of
// their currency.
func PaymentsMarkdown(rows []nbudata.PaymentLedgerRow) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Payment Schedule")

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Date", "Currency", "Total"},
		Rows:   [][]string{},
	}
	for _, r := range rows {
		table.Rows = append(table.Rows, []string{
			r.Date.String(),
			r.Currency,
			nbudata.M(r.Total, r.Currency).String(),
		})
	}
	doc.Table(table)

	return doc.String()
}

// PaymentsCSV writes the ledger as CSV with a header row. Totals stay raw
// decimals so the output feeds other tools.
func PaymentsCSV(w io.Writer, rows []nbudata.PaymentLedgerRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"date", "currency", "total"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, r := range rows {
		if err := cw.Write([]string{r.Date.String(), r.Currency, r.Total.String()}); err != nil {
			return fmt.Errorf("writing row for %s: %w", r.Date, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
