package renderer

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/atharva/siptrack"
	"github.com/atharva/siptrack/date"
	"github.com/atharva/siptrack/statement"
	"github.com/shopspring/decimal"
)

// SchemeList is the render view of the statement's schemes.
type SchemeList struct {
	// AsOf is the day against which SIP activity is judged.
	AsOf date.Date `json:"asOf"`
	// ActiveOnly marks a list filtered down to active SIPs.
	ActiveOnly bool        `json:"activeOnly"`
	Rows       []SchemeRow `json:"rows"`
}

// SchemeRow is one scheme of the statement.
type SchemeRow struct {
	Name         string         `json:"name"`
	Active       bool           `json:"active"`
	Transactions int            `json:"transactions"`
	FirstOn      date.Date      `json:"firstOn"`
	LastOn       date.Date      `json:"lastOn"`
	Invested     siptrack.Money `json:"invested"`
}

// Status renders the activity marker for the row.
func (r SchemeRow) Status() string {
	if r.Active {
		return "active"
	}
	return "stopped"
}

// NewSchemeList builds the render view of the statement's schemes, keeping
// the statement's first-seen order. With activeOnly, schemes without a
// purchase in the recent window are dropped.
func NewSchemeList(s *statement.Statement, asOf date.Date, activeOnly bool) *SchemeList {
	l := &SchemeList{AsOf: asOf, ActiveOnly: activeOnly, Rows: make([]SchemeRow, 0, len(s.Schemes()))}
	for _, name := range s.Schemes() {
		active := s.IsActive(name, asOf)
		if activeOnly && !active {
			continue
		}
		txs := s.Transactions(name)
		var invested decimal.Decimal
		for _, tx := range txs {
			invested = invested.Add(tx.Amount)
		}
		l.Rows = append(l.Rows, SchemeRow{
			Name:         name,
			Active:       active,
			Transactions: len(txs),
			FirstOn:      txs[0].Date,
			LastOn:       txs[len(txs)-1].Date,
			Invested:     siptrack.NewMoney(invested),
		})
	}
	return l
}

const schemesMarkdownTemplate = `# Schemes on {{ .AsOf }}
{{ if .ActiveOnly }}
Active SIPs only.
{{ end }}
{{- if .Rows }}
| Scheme | Status | Transactions | First | Last | Invested |
|:---|:---|---:|:---|:---|---:|
{{- range .Rows }}
| {{ .Name }} | {{ .Status }} | {{ .Transactions }} | {{ .FirstOn }} | {{ .LastOn }} | {{ .Invested }} |
{{- end }}
{{- else }}
No schemes found.
{{- end }}
`

// RenderSchemeList renders the SchemeList view to a markdown string.
func RenderSchemeList(l *SchemeList) string {
	tmpl := template.Must(template.New("schemes").Parse(schemesMarkdownTemplate))
	var b strings.Builder
	if err := tmpl.Execute(&b, l); err != nil {
		return fmt.Sprintf("Error executing template: %v", err)
	}
	return b.String()
}
