package statement

import (
	"github.com/atharva/siptrack/date"
	"github.com/shopspring/decimal"
)

// Transaction is a single line from the CAS transaction table, normalized.
//
// NAV, Units and Amount keep the statement's exact figures as decimals so
// that downstream value computations (units x NAV) stay precise. Units and
// Amount are signed: redemptions come through as negative values.
type Transaction struct {
	SchemeName  string
	Date        date.Date
	NAV         decimal.Decimal
	Units       decimal.Decimal
	Amount      decimal.Decimal
	Description string
}

// IsPurchase reports whether the transaction put money into the scheme.
func (t Transaction) IsPurchase() bool { return t.Amount.IsPositive() }
