// Package statement extracts normalized transactions from a CAS
// (Consolidated Account Statement) Excel workbook.
//
// The extraction is deliberately rigid: the transaction table lives in a
// sheet named "Transaction Details" with its header at a fixed row offset.
// Rows without a scheme name are footers or separators and are dropped,
// rows with an unparsable date are dropped, and unparsable numeric cells
// default to zero so the row survives for audit purposes.
package statement

import (
	"fmt"
	"log"
	"slices"
	"strings"

	"github.com/atharva/siptrack/date"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// SheetName is the workbook sheet holding the transaction table.
const SheetName = "Transaction Details"

// headerRow is the 0-based row index of the table header within the sheet.
const headerRow = 8

// activeWindowDays is the purchase lookback that qualifies a scheme as an
// active SIP.
const activeWindowDays = 45

// The columns the extractor needs, matched after whitespace-trimming the labels.
const (
	colScheme      = "Scheme Name"
	colDate        = "Date"
	colNAV         = "NAV"
	colUnits       = "Units"
	colAmount      = "Amount"
	colDescription = "Transaction Description"
)

// LoadError reports a statement that could not be read or contained no
// usable transaction rows. Callers should treat it as "no data available",
// not as a fatal condition.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("cannot load statement %q: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Statement holds the normalized transaction set extracted from one workbook.
type Statement struct {
	transactions []Transaction
}

// New builds a Statement directly from transactions, bypassing extraction.
func New(txs ...Transaction) *Statement {
	return &Statement{transactions: txs}
}

// Load opens a CAS workbook and extracts its transaction table.
func Load(path string) (*Statement, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	if err != nil {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("missing sheet %q: %w", SheetName, err)}
	}
	st, err := parseRows(rows)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return st, nil
}

// parseRows builds a Statement from the raw sheet rows.
func parseRows(rows [][]string) (*Statement, error) {
	if len(rows) <= headerRow {
		return nil, fmt.Errorf("no header found at row %d (sheet has %d rows)", headerRow+1, len(rows))
	}

	// Map the trimmed column labels to their index.
	index := make(map[string]int)
	for i, label := range rows[headerRow] {
		index[strings.TrimSpace(label)] = i
	}
	for _, required := range []string{colScheme, colDate} {
		if _, ok := index[required]; !ok {
			return nil, fmt.Errorf("missing required column %q", required)
		}
	}

	cell := func(row []string, label string) string {
		i, ok := index[label]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	st := &Statement{}
	for _, row := range rows[headerRow+1:] {
		scheme := cell(row, colScheme)
		if scheme == "" {
			// Footer or blank separator line.
			continue
		}
		on, err := parseCellDate(cell(row, colDate))
		if err != nil {
			log.Printf("drop-row scheme=%q reason=%v", scheme, err)
			continue
		}
		st.transactions = append(st.transactions, Transaction{
			SchemeName:  scheme,
			Date:        on,
			NAV:         parseCellDecimal(cell(row, colNAV)),
			Units:       parseCellDecimal(cell(row, colUnits)),
			Amount:      parseCellDecimal(cell(row, colAmount)),
			Description: cell(row, colDescription),
		})
	}

	if len(st.transactions) == 0 {
		return nil, fmt.Errorf("no transaction rows survived validation")
	}
	return st, nil
}

// cellDateLayouts are the date forms seen in CAS exports, tried in order.
var cellDateLayouts = []string{
	"2006-01-02",
	"02-Jan-2006",
	"02-01-2006",
	"02/01/2006",
	"2006-01-02 15:04:05",
}

func parseCellDate(s string) (date.Date, error) {
	if s == "" {
		return date.Date{}, fmt.Errorf("empty date")
	}
	for _, layout := range cellDateLayouts {
		if on, err := date.ParseLayout(layout, s); err == nil {
			return on, nil
		}
	}
	return date.Date{}, fmt.Errorf("unparsable date %q", s)
}

// parseCellDecimal parses a numeric cell, defaulting to zero on bad input so
// the row is kept.
func parseCellDecimal(s string) decimal.Decimal {
	s = strings.ReplaceAll(s, ",", "")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Len returns the number of extracted transactions.
func (s *Statement) Len() int { return len(s.transactions) }

// Schemes returns the distinct scheme names, in first-seen order.
func (s *Statement) Schemes() []string {
	var names []string
	seen := make(map[string]bool)
	for _, tx := range s.transactions {
		if !seen[tx.SchemeName] {
			seen[tx.SchemeName] = true
			names = append(names, tx.SchemeName)
		}
	}
	return names
}

// Transactions returns the transactions for one scheme, sorted ascending by date.
func (s *Statement) Transactions(scheme string) []Transaction {
	var list []Transaction
	for _, tx := range s.transactions {
		if tx.SchemeName == scheme {
			list = append(list, tx)
		}
	}
	slices.SortStableFunc(list, func(a, b Transaction) int {
		return a.Date.Compare(b.Date)
	})
	return list
}

// IsActive reports whether the scheme had a purchase within the active SIP
// window ending at asOf.
func (s *Statement) IsActive(scheme string, asOf date.Date) bool {
	window := date.LastDays(asOf, activeWindowDays)
	for _, tx := range s.transactions {
		if tx.SchemeName == scheme && tx.IsPurchase() && window.Contains(tx.Date) {
			return true
		}
	}
	return false
}

// ActiveSchemes returns the schemes with a purchase within the active SIP
// window ending at asOf, in first-seen order.
func (s *Statement) ActiveSchemes(asOf date.Date) []string {
	var names []string
	for _, scheme := range s.Schemes() {
		if s.IsActive(scheme, asOf) {
			names = append(names, scheme)
		}
	}
	return names
}
