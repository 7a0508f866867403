// Package renderer turns report data into markdown documents for terminal
// display.
package renderer

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/atharva/siptrack"
	"github.com/atharva/siptrack/date"
	"github.com/shopspring/decimal"
)

// navTailRows caps the NAV table so a multi-year window stays readable.
const navTailRows = 12

// SchemeReport is the render view of one scheme: the statement name, the
// resolved identity, the aggregate figures and the recent NAV points.
// Numbers are kept in their exact types (Money, decimal) so the templates
// can use their own renderers (SignedString etc.).
type SchemeReport struct {
	// SchemeName is the name as it appears in the statement.
	SchemeName string `json:"schemeName"`
	// Code is the resolved registry code, empty when resolution failed.
	Code string `json:"code,omitempty"`
	// CatalogName is the official registry name for Code.
	CatalogName string `json:"catalogName,omitempty"`
	// Window labels the displayed NAV range ("6m", "1y", ... "all").
	Window string `json:"window"`
	// From and To bound the displayed NAV range.
	From date.Date `json:"from"`
	To   date.Date `json:"to"`
	// Note explains why Summary and Nav are missing, when they are.
	Note string `json:"note,omitempty"`

	Summary      *SchemeSummary `json:"summary,omitempty"`
	Transactions []Transaction  `json:"transactions"`
	Nav          []NavPoint     `json:"nav,omitempty"`
}

// SchemeSummary holds the aggregate figures of one scheme.
type SchemeSummary struct {
	Invested  siptrack.Money  `json:"invested"`
	Units     decimal.Decimal `json:"units"`
	LatestNAV decimal.Decimal `json:"latestNav"`
	LatestOn  date.Date       `json:"latestOn"`
	Current   siptrack.Money  `json:"current"`
	Profit    siptrack.Money  `json:"profit"`
	// WindowReturn is the NAV change over the displayed range, in percent.
	WindowReturn string `json:"windowReturn,omitempty"`
}

// Transaction is one statement row of the scheme.
type Transaction struct {
	Date        date.Date       `json:"date"`
	Description string          `json:"description,omitempty"`
	NAV         decimal.Decimal `json:"nav"`
	Units       decimal.Decimal `json:"units"`
	Amount      siptrack.Money  `json:"amount"`
}

// NavPoint is one published NAV value.
type NavPoint struct {
	Date date.Date       `json:"date"`
	NAV  decimal.Decimal `json:"nav"`
}

// NewSchemeReport builds the render view for one scheme over a display
// window. When the report carries an error (unresolved scheme, fetch
// failure) the view keeps the transactions and explains the gap in Note.
func NewSchemeReport(r *siptrack.SchemeReport, w siptrack.Window) *SchemeReport {
	v := &SchemeReport{
		SchemeName:   r.Scheme,
		Code:         r.Code,
		CatalogName:  r.CatalogName,
		Window:       w.String(),
		Transactions: make([]Transaction, 0, len(r.Transactions)),
	}
	for _, tx := range r.Transactions {
		v.Transactions = append(v.Transactions, Transaction{
			Date:        tx.Date,
			Description: tx.Description,
			NAV:         tx.NAV,
			Units:       tx.Units,
			Amount:      siptrack.NewMoney(tx.Amount),
		})
	}

	if r.Err != nil {
		v.Note = r.Err.Error()
		return v
	}

	to, _ := r.Series.Latest()
	rng := w.Range(to, &r.Series, r.Transactions)
	v.From, v.To = rng.From, rng.To

	v.Summary = &SchemeSummary{
		Invested:  r.Summary.InvestedMoney(),
		Units:     r.Summary.Units,
		LatestNAV: r.Summary.LatestNAV,
		LatestOn:  r.Summary.LatestOn,
		Current:   r.Summary.CurrentMoney(),
		Profit:    r.Summary.ProfitMoney(),
	}

	sub := r.Series.Between(rng)
	var inWindow []NavPoint
	for on, nav := range sub.Values() {
		inWindow = append(inWindow, NavPoint{Date: on, NAV: nav})
	}
	if len(inWindow) > 1 {
		first, last := inWindow[0].NAV, inWindow[len(inWindow)-1].NAV
		if first.IsPositive() {
			ret := last.Sub(first).Div(first).Mul(decimal.NewFromInt(100))
			v.Summary.WindowReturn = fmt.Sprintf("%s%%", ret.StringFixed(2))
		}
	}
	if len(inWindow) > navTailRows {
		inWindow = inWindow[len(inWindow)-navTailRows:]
	}
	v.Nav = inWindow
	return v
}

const schemeMarkdownTemplate = `# {{ .SchemeName }}
{{ if .CatalogName }}
{{ .CatalogName }} (scheme {{ .Code }})
{{- end }}
{{- if .Note }}

> {{ .Note }}
{{- end }}
{{- if .Summary }}

## Summary

| Metric | Value |
|:---|---:|
| Invested | {{ .Summary.Invested }} |
| Units | {{ .Summary.Units }} |
| Latest NAV | {{ .Summary.LatestNAV }} on {{ .Summary.LatestOn }} |
| Current Value | {{ .Summary.Current }} |
| Profit | {{ .Summary.Profit.SignedString }} |
{{- if .Summary.WindowReturn }}
| NAV Return ({{ .Window }}) | {{ .Summary.WindowReturn }} |
{{- end }}
{{- end }}
{{- if .Transactions }}

## Transactions

| Date | NAV | Units | Amount |
|:---|---:|---:|---:|
{{- range .Transactions }}
| {{ .Date }} | {{ .NAV }} | {{ .Units }} | {{ .Amount }} |
{{- end }}
{{- end }}
{{- if .Nav }}

## Recent NAV ({{ .From }} to {{ .To }})

| Date | NAV |
|:---|---:|
{{- range .Nav }}
| {{ .Date }} | {{ .NAV }} |
{{- end }}
{{- end }}
`

// RenderSchemeReport renders the SchemeReport view to a markdown string.
func RenderSchemeReport(v *SchemeReport) string {
	tmpl := template.Must(template.New("scheme").Parse(schemeMarkdownTemplate))
	var b strings.Builder
	if err := tmpl.Execute(&b, v); err != nil {
		return fmt.Sprintf("Error executing template: %v", err)
	}
	return b.String()
}
