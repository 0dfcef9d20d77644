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

// RatesMarkdown renders an exchange-rate listing as a markdown table.
func RatesMarkdown(records []nbudata.RateRecord) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	if cur := soleCurrency(records); cur != "" {
		doc.H1(fmt.Sprintf("Exchange Rates for %s", cur))
	} else {
		doc.H1("Exchange Rates")
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Date", "Currency", "Name", "Rate", "Units", "Per Unit"},
		Rows:   [][]string{},
	}
	for _, r := range records {
		table.Rows = append(table.Rows, []string{
			r.Date.String(),
			r.Currency,
			r.NameEN,
			r.Rate.String(),
			strconv.FormatInt(r.Units, 10),
			r.RatePerUnit.String(),
		})
	}
	doc.Table(table)

	return doc.String()
}

// RateTableMarkdown renders a merged multi-currency table, one column per
// currency.
func RateTableMarkdown(t *nbudata.RateTable) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Exchange Rates")

	table := md.TableSet{
		Alignment: make([]md.TableAlignment, 0, len(t.Currencies)+1),
		Header:    make([]string, 0, len(t.Currencies)+1),
		Rows:      [][]string{},
	}
	table.Alignment = append(table.Alignment, md.AlignLeft)
	table.Header = append(table.Header, "Date")
	for _, cur := range t.Currencies {
		table.Alignment = append(table.Alignment, md.AlignRight)
		table.Header = append(table.Header, cur)
	}
	for _, row := range t.Rows {
		cells := make([]string, 0, len(row.Values)+1)
		cells = append(cells, row.Date.String())
		for _, v := range row.Values {
			cells = append(cells, v.String())
		}
		table.Rows = append(table.Rows, cells)
	}
	doc.Table(table)

	return doc.String()
}

// RatesCSV writes the listing as CSV with a header row.
func RatesCSV(w io.Writer, records []nbudata.RateRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"date", "currency", "name", "rate", "units", "rate_per_unit"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, r := range records {
		row := []string{
			r.Date.String(),
			r.Currency,
			r.NameEN,
			r.Rate.String(),
			strconv.FormatInt(r.Units, 10),
			r.RatePerUnit.String(),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row for %s: %w", r.Date, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// RateTableCSV writes the merged table as CSV, one column per currency.
func RateTableCSV(w io.Writer, t *nbudata.RateTable) error {
	cw := csv.NewWriter(w)
	header := append([]string{"date"}, t.Currencies...)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, row := range t.Rows {
		cells := make([]string, 0, len(row.Values)+1)
		cells = append(cells, row.Date.String())
		for _, v := range row.Values {
			cells = append(cells, v.String())
		}
		if err := cw.Write(cells); err != nil {
			return fmt.Errorf("writing row for %s: %w", row.Date, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// soleCurrency returns the currency shared by all records, or "" when they
// mix several.
func soleCurrency(records []nbudata.RateRecord) string {
	cur := ""
	for _, r := range records {
		if cur == "" {
			cur = r.Currency
		}
		if r.Currency != cur {
			return ""
		}
	}
	return cur
}
