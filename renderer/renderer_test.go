package renderer

import (
	"fmt"
	"strings"
	"testing"

	"github.com/atharva/siptrack"
	"github.com/atharva/siptrack/date"
	"github.com/atharva/siptrack/statement"
	"github.com/shopspring/decimal"
)

func fixtureReport(t *testing.T) *siptrack.SchemeReport {
	t.Helper()
	var series date.History[decimal.Decimal]
	series.Append(date.MustParse("2024-01-02"), decimal.RequireFromString("95"))
	series.Append(date.MustParse("2024-05-31"), decimal.RequireFromString("105"))
	series.Append(date.MustParse("2024-06-03"), decimal.RequireFromString("110"))

	txs := []statement.Transaction{
		{
			SchemeName: "Fund X - Growth",
			Date:       date.MustParse("2024-01-05"),
			NAV:        decimal.RequireFromString("95"),
			Units:      decimal.RequireFromString("52.631"),
			Amount:     decimal.RequireFromString("5000"),
		},
		{
			SchemeName: "Fund X - Growth",
			Date:       date.MustParse("2024-02-05"),
			NAV:        decimal.RequireFromString("100"),
			Units:      decimal.RequireFromString("50"),
			Amount:     decimal.RequireFromString("5000"),
		},
	}

	return &siptrack.SchemeReport{
		Scheme:       "Fund X - Growth",
		Code:         "119598",
		CatalogName:  "Fund X Growth Direct Plan",
		Transactions: txs,
		Series:       series,
		Summary:      siptrack.Summarize(txs, &series),
	}
}

func TestRenderSchemeReport(t *testing.T) {
	v := NewSchemeReport(fixtureReport(t), siptrack.WindowAll)
	got := RenderSchemeReport(v)

	for _, want := range []string{
		"# Fund X - Growth",
		"Fund X Growth Direct Plan (scheme 119598)",
		"## Summary",
		"| Invested | ₹10,000.00 |",
		"| Units | 102.631 |",
		"| Latest NAV | 110 on 2024-06-03 |",
		"| Profit | +₹1,289.41 |",
		"| NAV Return (all) | 15.79% |",
		"## Transactions",
		"| 2024-02-05 | 100 | 50 | ₹5,000.00 |",
		"## Recent NAV (2024-01-02 to 2024-06-03)",
		"| 2024-06-03 | 110 |",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("report is missing %q in:\n%s", want, got)
		}
	}
}

func TestRenderSchemeReportWithError(t *testing.T) {
	r := fixtureReport(t)
	r.Code, r.CatalogName = "", ""
	r.Series = date.History[decimal.Decimal]{}
	r.Summary = siptrack.Summary{}
	r.Err = fmt.Errorf("resolving %q: %w", r.Scheme, siptrack.ErrNotFound)

	got := RenderSchemeReport(NewSchemeReport(r, siptrack.Window1Y))
	if !strings.Contains(got, "no confident catalog match") {
		t.Errorf("report is missing the failure note:\n%s", got)
	}
	// The transactions must still be shown.
	if !strings.Contains(got, "## Transactions") {
		t.Errorf("report dropped the transactions:\n%s", got)
	}
	if strings.Contains(got, "## Summary") {
		t.Errorf("report shows a summary without NAV data:\n%s", got)
	}
}

func TestNewSchemeReportCapsNavRows(t *testing.T) {
	r := fixtureReport(t)
	for i := 0; i < 40; i++ {
		r.Series.Append(date.MustParse("2024-03-01").Add(i), decimal.RequireFromString("100"))
	}
	v := NewSchemeReport(r, siptrack.WindowAll)
	if len(v.Nav) != navTailRows {
		t.Errorf("Nav rows = %d, want %d", len(v.Nav), navTailRows)
	}
	// The tail must end at the latest point.
	if v.Nav[len(v.Nav)-1].Date != date.MustParse("2024-06-03") {
		t.Errorf("last Nav row = %v, want the latest point", v.Nav[len(v.Nav)-1].Date)
	}
}

func TestRenderSchemeList(t *testing.T) {
	asOf := date.MustParse("2024-06-15")
	st := statement.New(
		statement.Transaction{
			SchemeName: "Fund X - Growth",
			Date:       date.MustParse("2024-06-05"),
			Units:      decimal.RequireFromString("50"),
			Amount:     decimal.RequireFromString("5000"),
		},
		statement.Transaction{
			SchemeName: "Fund Y - Direct",
			Date:       date.MustParse("2023-01-05"),
			Units:      decimal.RequireFromString("10"),
			Amount:     decimal.RequireFromString("1000"),
		},
	)

	got := RenderSchemeList(NewSchemeList(st, asOf, false))
	for _, want := range []string{
		"# Schemes on 2024-06-15",
		"| Fund X - Growth | active | 1 | 2024-06-05 | 2024-06-05 | ₹5,000.00 |",
		"| Fund Y - Direct | stopped | 1 | 2023-01-05 | 2023-01-05 | ₹1,000.00 |",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("list is missing %q in:\n%s", want, got)
		}
	}

	onlyActive := RenderSchemeList(NewSchemeList(st, asOf, true))
	if strings.Contains(onlyActive, "Fund Y") {
		t.Errorf("active-only list still shows a stopped scheme:\n%s", onlyActive)
	}
}
