package nbudata

import "github.com/shopspring/decimal"

// RateRecord is one official exchange-rate observation: the hryvnia value of
// Units of a foreign currency on one calendar date.
//
// Field names and order follow the exchange endpoint's vocabulary, so a
// marshalled record reads like the upstream payload. RatePerUnit is filled at
// normalization time (Rate divided by Units) when the endpoint omits it.
// Invariant: Units > 0.
type RateRecord struct {
	Date        Date            `json:"exchangedate"`
	Numeric     int64           `json:"r030"` // ISO-4217 numeric code
	Currency    string          `json:"cc"`   // ISO-4217 alpha code
	Name        string          `json:"txt"`  // Ukrainian currency name
	NameEN      string          `json:"enname"`
	Rate        decimal.Decimal `json:"rate"`
	Units       int64           `json:"units"`
	RatePerUnit decimal.Decimal `json:"rate_per_unit"`
}
