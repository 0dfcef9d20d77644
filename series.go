package nbudata

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// RateField selects which observation value a series is built from. The two
// script variants of the original tooling differed only in this choice, so it
// is configuration here.
type RateField int

const (
	// FieldRate is the official rate for Units of the currency.
	FieldRate RateField = iota
	// FieldRatePerUnit is the rate for a single unit, comparable across
	// currencies quoted per 10 or per 100.
	FieldRatePerUnit
)

func (f RateField) String() string {
	switch f {
	case FieldRate:
		return "rate"
	case FieldRatePerUnit:
		return "rate_per_unit"
	}
	return fmt.Sprintf("field(%d)", int(f))
}

// ParseRateField parses a rate field name as accepted on the command line.
func ParseRateField(s string) (RateField, error) {
	switch s {
	case "rate":
		return FieldRate, nil
	case "rate_per_unit":
		return FieldRatePerUnit, nil
	}
	return 0, fmt.Errorf("unknown rate field %q, want %q or %q", s, FieldRate, FieldRatePerUnit)
}

// RatePoint is one dated value of a series.
type RatePoint struct {
	Date  Date
	Value decimal.Decimal
}

// RateSeries is one currency's observations, sorted by date with unique
// dates.
type RateSeries struct {
	Currency string
	Points   []RatePoint
}

// Series builds the time series of one value field from records, all of the
// same currency. Points come back sorted by date; on a duplicate date the
// later record wins.
func Series(records []RateRecord, field RateField) RateSeries {
	var s RateSeries
	byDate := make(map[Date]decimal.Decimal, len(records))
	for _, r := range records {
		if s.Currency == "" {
			s.Currency = r.Currency
		}
		switch field {
		case FieldRatePerUnit:
			byDate[r.Date] = r.RatePerUnit
		default:
			byDate[r.Date] = r.Rate
		}
	}
	s.Points = make([]RatePoint, 0, len(byDate))
	for date, value := range byDate {
		s.Points = append(s.Points, RatePoint{Date: date, Value: value})
	}
	sort.SliceStable(s.Points, func(i, j int) bool { return s.Points[i].Date.Before(s.Points[j].Date) })
	return s
}

// RateTableRow is one date's values across every joined series.
type RateTableRow struct {
	Date   Date
	Values []decimal.Decimal // one per table currency, same order
}

// RateTable is several rate series joined on their common dates.
type RateTable struct {
	Currencies []string
	Rows       []RateTableRow
}

// MergeSeries joins series on date, keeping only the dates present in every
// one of them. The national bank skips some currencies on some days, so an
// inner join is what lines the columns up. Rows are ascending by date and
// columns follow the argument order.
func MergeSeries(series ...RateSeries) *RateTable {
	t := &RateTable{Currencies: make([]string, 0, len(series))}
	for _, s := range series {
		t.Currencies = append(t.Currencies, s.Currency)
	}
	if len(series) == 0 {
		return t
	}

	// Series dates are unique, so a date shared by all of them is seen
	// exactly len(series) times.
	seen := make(map[Date]int)
	values := make([]map[Date]decimal.Decimal, len(series))
	for i, s := range series {
		values[i] = make(map[Date]decimal.Decimal, len(s.Points))
		for _, p := range s.Points {
			seen[p.Date]++
			values[i][p.Date] = p.Value
		}
	}

	var shared []Date
	for date, n := range seen {
		if n == len(series) {
			shared = append(shared, date)
		}
	}
	sort.SliceStable(shared, func(i, j int) bool { return shared[i].Before(shared[j]) })

	t.Rows = make([]RateTableRow, 0, len(shared))
	for _, date := range shared {
		row := RateTableRow{Date: date, Values: make([]decimal.Decimal, len(series))}
		for i := range series {
			row.Values[i] = values[i][date]
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}
