package siptrack

import (
	"testing"

	"github.com/atharva/siptrack/date"
	"github.com/atharva/siptrack/statement"
	"github.com/shopspring/decimal"
)

func tx(day, nav, units, amount string) statement.Transaction {
	return statement.Transaction{
		SchemeName: "Fund X Growth",
		Date:       date.MustParse(day),
		NAV:        decimal.RequireFromString(nav),
		Units:      decimal.RequireFromString(units),
		Amount:     decimal.RequireFromString(amount),
	}
}

func TestSummarize(t *testing.T) {
	var series date.History[decimal.Decimal]
	series.Append(date.MustParse("2024-05-01"), decimal.RequireFromString("100"))
	series.Append(date.MustParse("2024-06-01"), decimal.RequireFromString("110"))

	txs := []statement.Transaction{
		tx("2024-03-05", "95", "52.631", "5000"),
		tx("2024-04-05", "100", "50", "5000"),
	}

	s := Summarize(txs, &series)
	if want := decimal.RequireFromString("10000"); !s.Invested.Equal(want) {
		t.Errorf("Invested = %s, want %s", s.Invested, want)
	}
	if want := decimal.RequireFromString("102.631"); !s.Units.Equal(want) {
		t.Errorf("Units = %s, want %s", s.Units, want)
	}
	if s.LatestOn != date.MustParse("2024-06-01") {
		t.Errorf("LatestOn = %v, want 2024-06-01", s.LatestOn)
	}
	if want := decimal.RequireFromString("11289.41"); !s.Current.Equal(want) {
		t.Errorf("Current = %s, want %s", s.Current, want)
	}
	if want := decimal.RequireFromString("1289.41"); !s.Profit.Equal(want) {
		t.Errorf("Profit = %s, want %s", s.Profit, want)
	}
}

func TestSummarizeNetsRedemptions(t *testing.T) {
	var series date.History[decimal.Decimal]
	series.Append(date.MustParse("2024-06-01"), decimal.RequireFromString("100"))

	txs := []statement.Transaction{
		tx("2024-03-05", "100", "100", "10000"),
		tx("2024-05-05", "100", "-40", "-4000"), // partial redemption
	}

	s := Summarize(txs, &series)
	if want := decimal.RequireFromString("6000"); !s.Invested.Equal(want) {
		t.Errorf("Invested = %s, want %s", s.Invested, want)
	}
	if want := decimal.RequireFromString("60"); !s.Units.Equal(want) {
		t.Errorf("Units = %s, want %s", s.Units, want)
	}
	if want := decimal.RequireFromString("6000"); !s.Current.Equal(want) {
		t.Errorf("Current = %s, want %s", s.Current, want)
	}
	if !s.Profit.IsZero() {
		t.Errorf("Profit = %s, want 0", s.Profit)
	}
}

func TestSummarizeEmptySeries(t *testing.T) {
	var series date.History[decimal.Decimal]
	s := Summarize([]statement.Transaction{tx("2024-03-05", "100", "100", "10000")}, &series)
	if !s.Current.IsZero() {
		t.Errorf("Current without NAV data = %s, want 0", s.Current)
	}
	if !s.LatestOn.IsZero() {
		t.Errorf("LatestOn without NAV data = %v, want zero", s.LatestOn)
	}
}

func TestParseWindow(t *testing.T) {
	testCases := []struct {
		in   string
		want Window
		err  bool
	}{
		{"6m", Window6M, false},
		{"1y", Window1Y, false},
		{"2Y", Window2Y, false},
		{"3y", Window3Y, false},
		{"all", WindowAll, false},
		{"ALL", WindowAll, false},
		{"7d", WindowAll, true},
		{"", WindowAll, true},
	}
	for _, tc := range testCases {
		got, err := ParseWindow(tc.in)
		if (err != nil) != tc.err {
			t.Errorf("ParseWindow(%q) err = %v, want err=%v", tc.in, err, tc.err)
			continue
		}
		if !tc.err && got != tc.want {
			t.Errorf("ParseWindow(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestWindowRange(t *testing.T) {
	var series date.History[decimal.Decimal]
	series.Append(date.MustParse("2023-01-15"), decimal.RequireFromString("90"))
	series.Append(date.MustParse("2024-06-01"), decimal.RequireFromString("110"))
	to := date.MustParse("2024-06-01")

	t.Run("Fixed window counts back from to", func(t *testing.T) {
		r := Window1Y.Range(to, &series, nil)
		if r.To != to {
			t.Errorf("To = %v, want %v", r.To, to)
		}
		if want := to.Add(-365); r.From != want {
			t.Errorf("From = %v, want %v", r.From, want)
		}
	})

	t.Run("All spans the series", func(t *testing.T) {
		r := WindowAll.Range(to, &series, nil)
		if r.From != date.MustParse("2023-01-15") {
			t.Errorf("From = %v, want series start", r.From)
		}
	})

	t.Run("All stretches to an earlier first transaction", func(t *testing.T) {
		txs := []statement.Transaction{tx("2022-07-05", "85", "10", "850")}
		r := WindowAll.Range(to, &series, txs)
		if r.From != date.MustParse("2022-07-05") {
			t.Errorf("From = %v, want first transaction date", r.From)
		}
	})
}

func TestMoneyDisplay(t *testing.T) {
	m := NewMoney(decimal.RequireFromString("1234.5"))
	if got := m.String(); got != "₹1,234.50" {
		t.Errorf("String = %q", got)
	}
	if got := m.SignedString(); got != "+₹1,234.50" {
		t.Errorf("SignedString = %q", got)
	}
	loss := NewMoney(decimal.RequireFromString("-10"))
	if !loss.IsNegative() {
		t.Error("IsNegative = false for a loss")
	}
	var zero Money
	if !zero.IsZero() {
		t.Error("zero value IsZero = false")
	}
}
