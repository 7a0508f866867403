package cmd

import (
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/atharva/siptrack"
	"github.com/atharva/siptrack/date"
	"github.com/atharva/siptrack/statement"
	"github.com/shopspring/decimal"
)

// fakeProvider serves a fixed catalog and NAV history.
type fakeProvider struct {
	catalog siptrack.Catalog
	history date.History[decimal.Decimal]
	navErr  error
}

func (p *fakeProvider) Catalog() (siptrack.Catalog, error) { return p.catalog, nil }

func (p *fakeProvider) HistoricalNAV(code string) (date.History[decimal.Decimal], error) {
	if p.navErr != nil {
		return date.History[decimal.Decimal]{}, p.navErr
	}
	return p.history, nil
}

func fixture(t *testing.T, p siptrack.Provider) (*statement.Statement, *siptrack.Resolver, *siptrack.NavCache, siptrack.Catalog) {
	t.Helper()
	st := statement.New(
		statement.Transaction{
			SchemeName: "Fund X - Growth Plan",
			Date:       date.MustParse("2024-03-05"),
			NAV:        decimal.RequireFromString("100"),
			Units:      decimal.RequireFromString("50"),
			Amount:     decimal.RequireFromString("5000"),
		},
		statement.Transaction{
			SchemeName: "Some Totally Unknown Scheme",
			Date:       date.MustParse("2024-03-05"),
			Units:      decimal.RequireFromString("10"),
			Amount:     decimal.RequireFromString("1000"),
		},
	)

	catalog, err := p.Catalog()
	if err != nil {
		t.Fatalf("Catalog: %v", err)
	}
	dir := t.TempDir()
	resolver, err := siptrack.NewResolver(filepath.Join(dir, "mappings.json"), catalog, nil)
	if err != nil {
		t.Fatalf("NewResolver: %v", err)
	}
	cache, err := siptrack.NewNavCache(filepath.Join(dir, "nav_cache.json"), p)
	if err != nil {
		t.Fatalf("NewNavCache: %v", err)
	}
	return st, resolver, cache, catalog
}

func testProvider() *fakeProvider {
	var h date.History[decimal.Decimal]
	h.Append(date.MustParse("2024-06-01"), decimal.RequireFromString("110"))
	return &fakeProvider{
		catalog: siptrack.Catalog{{Code: "119598", Name: "Fund X Growth Plan"}},
		history: h,
	}
}

func TestBuildSchemeReport(t *testing.T) {
	st, resolver, cache, catalog := fixture(t, testProvider())

	r := buildSchemeReport(st, resolver, cache, catalog, "Fund X - Growth Plan")
	if r.Err != nil {
		t.Fatalf("Err = %v", r.Err)
	}
	if r.Code != "119598" || r.CatalogName != "Fund X Growth Plan" {
		t.Errorf("identity = %q %q", r.Code, r.CatalogName)
	}
	if len(r.Transactions) != 1 {
		t.Errorf("Transactions = %d, want 1", len(r.Transactions))
	}
	if want := decimal.RequireFromString("5500"); !r.Summary.Current.Equal(want) {
		t.Errorf("Current = %s, want %s", r.Summary.Current, want)
	}
}

func TestBuildSchemeReportUnresolved(t *testing.T) {
	st, resolver, cache, catalog := fixture(t, testProvider())

	r := buildSchemeReport(st, resolver, cache, catalog, "Some Totally Unknown Scheme")
	if !errors.Is(r.Err, siptrack.ErrNotFound) {
		t.Fatalf("Err = %v, want ErrNotFound", r.Err)
	}
	// The transactions stay visible.
	if len(r.Transactions) != 1 {
		t.Errorf("Transactions = %d, want 1", len(r.Transactions))
	}
	if r.Code != "" {
		t.Errorf("Code = %q, want empty", r.Code)
	}
}

func TestBuildSchemeReportFetchFailure(t *testing.T) {
	p := testProvider()
	p.navErr = fmt.Errorf("connection refused")
	st, resolver, cache, catalog := fixture(t, p)

	r := buildSchemeReport(st, resolver, cache, catalog, "Fund X - Growth Plan")
	var fe *siptrack.FetchError
	if !errors.As(r.Err, &fe) {
		t.Fatalf("Err = %v, want *FetchError", r.Err)
	}
	// Resolution succeeded, so the identity is still reported.
	if r.Code != "119598" {
		t.Errorf("Code = %q, want 119598", r.Code)
	}
	if len(r.Transactions) != 1 {
		t.Errorf("Transactions = %d, want 1", len(r.Transactions))
	}
}
