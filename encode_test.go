package nbudata

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func sampleBond() BondRecord {
	d := decimal.RequireFromString
	return BondRecord{
		ISIN:          "UA4000204150",
		Nominal:       d("1000"),
		CouponRate:    d("15.84"),
		Maturity:      NewDate(2026, 2, 18),
		Issued:        NewDate(2023, 8, 23),
		PayPeriodDays: 182,
		Currency:      "UAH",
		Kind:          "DCP",
		Description:   "Середньострокові державні облігації",
		IssuerID:      "00013480",
		IssuerName:    "Міністерство фінансів України",
		Outstanding:   1500000,
		Payments: []PaymentEvent{
			{Date: NewDate(2025, 8, 20), Type: Coupon, Amount: d("79.2")},
			{Date: NewDate(2026, 2, 18), Type: Redemption, Amount: d("1079.2")},
		},
	}
}

func TestEncodeBondFile(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodeBondFile(&buf, sampleBond()); err != nil {
		t.Fatalf("EncodeBondFile() error = %v", err)
	}
	out := buf.String()

	// The glossary explains the data, so it comes first.
	descAt := strings.Index(out, `"desc"`)
	dataAt := strings.Index(out, `"data"`)
	if descAt < 0 || dataAt < 0 || descAt > dataAt {
		t.Errorf("EncodeBondFile() wants \"desc\" before \"data\", got:\n%s", out)
	}

	// Glossary entries keep the payload field order.
	last := -1
	for _, g := range bondGlossary {
		at := strings.Index(out, `"`+g.Field+`": `)
		if at < 0 {
			t.Errorf("EncodeBondFile() misses glossary field %q", g.Field)
			continue
		}
		if at < last {
			t.Errorf("EncodeBondFile() glossary field %q out of payload order", g.Field)
		}
		last = at
	}
	if !strings.Contains(out, `"cpcode": "ISIN цінного паперу"`) {
		t.Errorf("EncodeBondFile() misses the cpcode description, got:\n%s", out)
	}

	// Same indentation as the historical export files.
	if !strings.Contains(out, "\n      \"desc\"") {
		t.Errorf("EncodeBondFile() not indented by six spaces, got:\n%s", out)
	}

	var doc struct {
		Desc map[string]string `json:"desc"`
		Data BondRecord        `json:"data"`
	}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("EncodeBondFile() produced invalid json: %v\n%s", err, out)
	}
	if len(doc.Desc) != len(bondGlossary) {
		t.Errorf("decoded desc has %d entries, want %d", len(doc.Desc), len(bondGlossary))
	}
	if doc.Data.ISIN != "UA4000204150" || len(doc.Data.Payments) != 2 {
		t.Errorf("decoded data = %+v, want the bond back", doc.Data)
	}
}

func TestEncodeBonds(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodeBonds(&buf, []BondRecord{sampleBond()}); err != nil {
		t.Fatalf("EncodeBonds() error = %v", err)
	}
	out := buf.String()

	if !strings.HasPrefix(out, "[") || !strings.HasSuffix(out, "\n") {
		t.Errorf("EncodeBonds() wants a json array ending in a newline, got:\n%s", out)
	}
	// Amounts stay bare numbers, as served.
	if !strings.Contains(out, `"nominal": 1000`) {
		t.Errorf("EncodeBonds() wants nominal as a bare number, got:\n%s", out)
	}

	var got []BondRecord
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("EncodeBonds() produced invalid json: %v\n%s", err, out)
	}
	if len(got) != 1 || got[0].ISIN != "UA4000204150" {
		t.Errorf("EncodeBonds() round trip = %+v", got)
	}
	if !got[0].Payments[0].Amount.Equal(decimal.RequireFromString("79.2")) {
		t.Errorf("EncodeBonds() round trip amount = %s, want 79.2", got[0].Payments[0].Amount)
	}
}

func TestEncodeRates(t *testing.T) {
	d := decimal.RequireFromString
	records := []RateRecord{{
		Date:        NewDate(2025, 1, 2),
		Numeric:     840,
		Currency:    "USD",
		Name:        "Долар США",
		NameEN:      "US Dollar",
		Rate:        d("42.1044"),
		Units:       1,
		RatePerUnit: d("42.1044"),
	}}

	var buf bytes.Buffer
	if err := EncodeRates(&buf, records); err != nil {
		t.Fatalf("EncodeRates() error = %v", err)
	}
	out := buf.String()

	for _, key := range []string{"exchangedate", "r030", "cc", "txt", "enname", "rate", "units", "rate_per_unit"} {
		if !strings.Contains(out, `"`+key+`"`) {
			t.Errorf("EncodeRates() misses payload key %q, got:\n%s", key, out)
		}
	}
	if !strings.Contains(out, `"exchangedate": "02.01.2025"`) {
		t.Errorf("EncodeRates() wants the payload date format, got:\n%s", out)
	}
	if !strings.Contains(out, `"rate": 42.1044`) {
		t.Errorf("EncodeRates() wants the rate as a bare number, got:\n%s", out)
	}
}
