package bankgov

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
	"github.com/yshulhan/nbudata"
)

// This file normalizes the wire payloads into the typed records. The wire
// structs mirror the upstream objects; pointer fields mark the values whose
// absence makes a record unusable downstream.

type rateRow struct {
	Date        nbudata.Date     `json:"exchangedate"`
	Numeric     int64            `json:"r030"`
	Currency    string           `json:"cc"`
	Name        string           `json:"txt"`
	NameEN      string           `json:"enname"`
	Rate        *decimal.Decimal `json:"rate"`
	Units       int64            `json:"units"`
	RatePerUnit *decimal.Decimal `json:"rate_per_unit"`
	// group and calcdate also travel in the payload; nothing consumes them.
}

func decodeRates(body []byte) ([]nbudata.RateRecord, error) {
	rows := make([]rateRow, 0)
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("cannot decode rates payload: %w", err)
	}

	records := make([]nbudata.RateRecord, 0, len(rows))
	for _, row := range rows {
		if row.Date.IsZero() {
			return nil, &nbudata.MalformedRecordError{ID: row.Currency, Field: "exchangedate"}
		}
		if row.Rate == nil {
			return nil, &nbudata.MalformedRecordError{ID: row.Currency, Field: "rate"}
		}
		if row.Units <= 0 {
			return nil, &nbudata.MalformedRecordError{ID: row.Currency, Field: "units"}
		}
		perUnit := row.Rate.Div(decimal.NewFromInt(row.Units))
		if row.RatePerUnit != nil {
			perUnit = *row.RatePerUnit
		}
		records = append(records, nbudata.RateRecord{
			Date:        row.Date,
			Numeric:     row.Numeric,
			Currency:    row.Currency,
			Name:        row.Name,
			NameEN:      row.NameEN,
			Rate:        *row.Rate,
			Units:       row.Units,
			RatePerUnit: perUnit,
		})
	}
	return records, nil
}

type paymentRow struct {
	Date     *nbudata.Date    `json:"pay_date"`
	Type     int              `json:"pay_type"`
	Amount   *decimal.Decimal `json:"pay_val"`
	Currency json.RawMessage  `json:"val_code"`
}

type bondRow struct {
	ISIN        string          `json:"cpcode"`
	Nominal     decimal.Decimal `json:"nominal"`
	CouponRate  decimal.Decimal `json:"auk_proc"`
	Maturity    nbudata.Date    `json:"pgs_date"`
	Issued      nbudata.Date    `json:"razm_date"`
	PayPeriod   int             `json:"pay_period"`
	Currency    json.RawMessage `json:"val_code"`
	Kind        string          `json:"cptype"`
	Description string          `json:"cpdescr"`
	IssuerID    json.RawMessage `json:"emit_okpo"`
	IssuerName  string          `json:"emit_name"`
	Outstanding int64           `json:"total_bonds"`
	Payments    []paymentRow    `json:"payments"`
}

func decodeBonds(body []byte) ([]nbudata.BondRecord, error) {
	rows := make([]bondRow, 0)
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("cannot decode securities payload: %w", err)
	}

	bonds := make([]nbudata.BondRecord, 0, len(rows))
	for i, row := range rows {
		if row.ISIN == "" {
			return nil, &nbudata.MalformedRecordError{ID: fmt.Sprintf("#%d", i), Field: "cpcode"}
		}
		b := nbudata.BondRecord{
			ISIN:          row.ISIN,
			Nominal:       row.Nominal,
			CouponRate:    row.CouponRate,
			Maturity:      row.Maturity,
			Issued:        row.Issued,
			PayPeriodDays: row.PayPeriod,
			Currency:      alphaCurrency(row.Currency),
			Kind:          row.Kind,
			Description:   row.Description,
			IssuerID:      asString(row.IssuerID),
			IssuerName:    row.IssuerName,
			Outstanding:   row.Outstanding,
			Payments:      make([]nbudata.PaymentEvent, 0, len(row.Payments)),
		}
		for _, p := range row.Payments {
			if p.Date == nil || p.Date.IsZero() {
				return nil, &nbudata.MalformedRecordError{ID: row.ISIN, Field: "pay_date"}
			}
			if p.Amount == nil {
				return nil, &nbudata.MalformedRecordError{ID: row.ISIN, Field: "pay_val"}
			}
			b.Payments = append(b.Payments, nbudata.PaymentEvent{
				Date:     *p.Date,
				Type:     nbudata.PayType(p.Type),
				Amount:   *p.Amount,
				Currency: alphaCurrency(p.Currency),
			})
		}
		bonds = append(bonds, b)
	}
	return bonds, nil
}

// asString renders a scalar JSON value as its string form, for the fields
// the register serves either quoted or bare (emit_okpo, val_code).
func asString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}

// alphaCurrency normalizes an upstream currency code to its ISO-4217 alpha
// form. The register uses numeric codes (980 for UAH), the exchange endpoint
// alpha codes; both are accepted. An unknown numeric code is kept as its
// decimal string rather than dropped.
func alphaCurrency(raw json.RawMessage) string {
	code := asString(raw)
	if code == "" {
		return ""
	}
	if _, err := strconv.Atoi(code); err != nil {
		return code // already an alpha code
	}
	padded := code
	for len(padded) < 3 {
		padded = "0" + padded
	}
	if c := money.GetCurrencyByNumericCode(padded); c != nil {
		return c.Code
	}
	return code
}
