package siptrack

import (
	"fmt"
	"strings"

	"github.com/atharva/siptrack/date"
	"github.com/atharva/siptrack/statement"
	"github.com/shopspring/decimal"
)

// Window is a display time range for a NAV series.
type Window int

const (
	Window6M Window = iota
	Window1Y
	Window2Y
	Window3Y
	WindowAll
)

func (w Window) String() string {
	switch w {
	case Window6M:
		return "6m"
	case Window1Y:
		return "1y"
	case Window2Y:
		return "2y"
	case Window3Y:
		return "3y"
	case WindowAll:
		return "all"
	default:
		panic(fmt.Sprintf("unknown window %d", int(w)))
	}
}

// days returns the window length, or 0 for WindowAll.
func (w Window) days() int {
	switch w {
	case Window6M:
		return 180
	case Window1Y:
		return 365
	case Window2Y:
		return 2 * 365
	case Window3Y:
		return 3 * 365
	default:
		return 0
	}
}

// ParseWindow parses a display window name ("6m", "1y", "2y", "3y", "all").
func ParseWindow(s string) (Window, error) {
	switch strings.ToLower(s) {
	case "6m":
		return Window6M, nil
	case "1y":
		return Window1Y, nil
	case "2y":
		return Window2Y, nil
	case "3y":
		return Window3Y, nil
	case "all":
		return WindowAll, nil
	default:
		return WindowAll, fmt.Errorf("unknown window %q (want 6m, 1y, 2y, 3y or all)", s)
	}
}

// Range converts the window into a concrete date range ending at 'to'.
// WindowAll stretches back to the older of the series start and the first
// transaction, so the chart always covers the investment history.
func (w Window) Range(to date.Date, series *date.History[decimal.Decimal], txs []statement.Transaction) date.Range {
	if d := w.days(); d > 0 {
		return date.LastDays(to, d)
	}
	from, _ := series.Oldest()
	if len(txs) > 0 && txs[0].Date.Before(from) {
		from = txs[0].Date
	}
	return date.NewRange(from, to)
}

// Summary holds the aggregate figures for one scheme. All arithmetic is
// decimal; only the Money fields are rounded, and only for display.
type Summary struct {
	Invested   decimal.Decimal
	Units      decimal.Decimal
	LatestNAV  decimal.Decimal
	LatestOn   date.Date
	Current    decimal.Decimal
	Profit     decimal.Decimal
}

// InvestedMoney returns the invested amount as display money.
func (s Summary) InvestedMoney() Money { return NewMoney(s.Invested) }

// CurrentMoney returns the current value as display money.
func (s Summary) CurrentMoney() Money { return NewMoney(s.Current) }

// ProfitMoney returns the profit as display money.
func (s Summary) ProfitMoney() Money { return NewMoney(s.Profit) }

// Summarize computes the aggregate figures for one scheme from its
// transactions and its NAV series: invested capital, units held, and the
// current value at the latest NAV in the series.
//
// Redemptions carry negative units and amounts, so the sums net them out.
// Whether netting is the right presentation is an open product question;
// the figures here are the netted ones.
func Summarize(txs []statement.Transaction, series *date.History[decimal.Decimal]) Summary {
	var s Summary
	for _, tx := range txs {
		s.Invested = s.Invested.Add(tx.Amount)
		s.Units = s.Units.Add(tx.Units)
	}
	s.LatestOn, s.LatestNAV = series.Latest()
	s.Current = s.Units.Mul(s.LatestNAV)
	s.Profit = s.Current.Sub(s.Invested)
	return s
}

// SchemeReport bundles everything the presentation layer needs for one
// scheme. Code is empty when resolution failed and Series is empty when
// the fetch failed; Transactions are always present so the user can still
// inspect them.
type SchemeReport struct {
	Scheme       string
	Code         string
	CatalogName  string
	Transactions []statement.Transaction
	Series       date.History[decimal.Decimal]
	Summary      Summary
	Err          error
}
