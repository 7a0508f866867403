package siptrack

import (
	"log"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value in the statement currency (INR).
type Money struct {
	value *money.Money
}

// NewMoney creates a Money from a decimal amount of rupees.
func NewMoney(amount decimal.Decimal) Money {
	cur := money.GetCurrency(money.INR)
	factor, _ := decimal.NewFromInt(10).PowInt32(int32(cur.Fraction))
	return Money{money.New(amount.Mul(factor).Round(0).IntPart(), money.INR)}
}

// String returns the display form, e.g. "₹1,234.50".
func (m Money) String() string {
	if m.value == nil {
		return money.New(0, money.INR).Display()
	}
	return m.value.Display()
}

// SignedString returns the display form with an explicit sign for gains.
func (m Money) SignedString() string {
	if m.value != nil && m.value.IsPositive() {
		return "+" + m.value.Display()
	}
	return m.String()
}

func (m Money) IsZero() bool     { return m.value == nil || m.value.IsZero() }
func (m Money) IsNegative() bool { return m.value != nil && m.value.IsNegative() }

// Sub returns m minus n.
func (m Money) Sub(n Money) Money {
	r, err := m.value.Subtract(n.value)
	if err != nil {
		log.Fatalf("invalid money operation: %v", err)
	}
	return Money{r}
}
