package nbudata

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// MalformedRecordError reports a record that is missing a field an
// aggregation needs. A single bad record fails the whole computation:
// skipping it silently would corrupt the totals.
type MalformedRecordError struct {
	ID    string // identifier of the offending record, ISIN or currency code
	Field string // upstream name of the missing or invalid field
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed record %s: missing or invalid %q", e.ID, e.Field)
}

// PaymentLedgerRow is the cash flow due on one date in one currency, summed
// over every selected bond paying that day. Derived and transient: recomputed
// on every call, never persisted.
type PaymentLedgerRow struct {
	Date     Date
	Currency string
	Total    decimal.Decimal
}

// PaymentLedger flattens the payment schedules of bonds into one row per
// (date, currency) pair.
//
// Every payment event is expanded under its effective currency (the event's
// own, or the bond's when the event carries none) and amounts are summed with
// decimal arithmetic. Unless includePast is set, rows dated before on are
// dropped; the reference date is always supplied by the caller so results are
// reproducible. Rows come back sorted by date then currency.
//
// A bond with no payments contributes nothing. An event with a zero date or
// no resolvable currency fails the whole ledger with a MalformedRecordError.
func PaymentLedger(bonds []BondRecord, includePast bool, on Date) ([]PaymentLedgerRow, error) {
	type key struct {
		date Date
		cur  string
	}
	totals := make(map[key]decimal.Decimal)
	for _, b := range bonds {
		for _, p := range b.Payments {
			if p.Date.IsZero() {
				return nil, &MalformedRecordError{ID: b.ISIN, Field: "pay_date"}
			}
			cur := p.Currency
			if cur == "" {
				cur = b.Currency
			}
			if cur == "" {
				return nil, &MalformedRecordError{ID: b.ISIN, Field: "val_code"}
			}
			k := key{p.Date, cur}
			totals[k] = totals[k].Add(p.Amount)
		}
	}

	rows := make([]PaymentLedgerRow, 0, len(totals))
	for k, total := range totals {
		if !includePast && k.date.Before(on) {
			continue
		}
		rows = append(rows, PaymentLedgerRow{Date: k.date, Currency: k.cur, Total: total})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Date != rows[j].Date {
			return rows[i].Date.Before(rows[j].Date)
		}
		return rows[i].Currency < rows[j].Currency
	})
	return rows, nil
}
