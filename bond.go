package nbudata

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// BondRecord is one instrument from the government-bond register, with its
// full payment schedule. Field names and order follow the register's
// vocabulary (see the bonds documentation topic for the upstream glossary).
type BondRecord struct {
	ISIN          string          `json:"cpcode"`
	Nominal       decimal.Decimal `json:"nominal"`
	CouponRate    decimal.Decimal `json:"auk_proc"` // percent per year
	Maturity      Date            `json:"pgs_date"`
	Issued        Date            `json:"razm_date"`
	PayPeriodDays int             `json:"pay_period"`
	Currency      string          `json:"val_code"`
	Kind          string          `json:"cptype"` // DCP for government, OMP for municipal
	Description   string          `json:"cpdescr"`
	IssuerID      string          `json:"emit_okpo"`
	IssuerName    string          `json:"emit_name"`
	Outstanding   int64           `json:"total_bonds"`
	Payments      []PaymentEvent  `json:"payments"` // ordered as received
}

// PaymentEvent is one scheduled payment of a bond. It exists only nested in
// its BondRecord. Currency is rarely set at the event level; when empty the
// event pays in the bond's currency.
type PaymentEvent struct {
	Date     Date            `json:"pay_date"`
	Type     PayType         `json:"pay_type"`
	Amount   decimal.Decimal `json:"pay_val"` // per single bond
	Currency string          `json:"val_code,omitempty"`
}

// PayType classifies a payment event, with the register's numeric codes.
type PayType int

const (
	Coupon          PayType = 1
	Redemption      PayType = 2
	EarlyRedemption PayType = 3
)

// String names the payment type. Codes the register has not documented are
// rendered as "type(N)" rather than rejected, so listings never fail on them.
func (t PayType) String() string {
	switch t {
	case Coupon:
		return "coupon"
	case Redemption:
		return "redemption"
	case EarlyRedemption:
		return "early redemption"
	}
	return fmt.Sprintf("type(%d)", int(t))
}
