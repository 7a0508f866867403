package siptrack

import (
	"errors"
	"fmt"

	"github.com/atharva/siptrack/date"
	"github.com/shopspring/decimal"
)

// Scheme is one entry of the registry catalog.
type Scheme struct {
	Code string
	Name string
}

// Catalog is the full registry listing, in provider order.
//
// The order is whatever the provider returned on this run; it is not
// guaranteed stable across provider refreshes, which makes fuzzy tie-breaks
// (first maximal score wins) a documented nondeterminism.
type Catalog []Scheme

// Name returns the canonical name for a code, or "" when unknown.
func (c Catalog) Name(code string) string {
	for _, s := range c {
		if s.Code == code {
			return s.Name
		}
	}
	return ""
}

// Provider is the external registry consumed by the Resolver and NavCache.
type Provider interface {
	// Catalog lists all schemes known to the registry.
	Catalog() (Catalog, error)
	// HistoricalNAV returns the full NAV history for a scheme code.
	// An empty history is an error: the provider had nothing usable.
	HistoricalNAV(code string) (date.History[decimal.Decimal], error)
}

// ErrNotFound reports that a scheme name could not be confidently matched
// to any catalog entry. A low-score fuzzy match and a complete miss both
// surface as ErrNotFound; only the log line tells them apart.
var ErrNotFound = errors.New("no confident catalog match")

// FetchError reports that the provider was unavailable or returned
// unusable data for a scheme code. It is retryable: the cache is left
// untouched so the next call fetches again.
type FetchError struct {
	Code string
	Err  error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("cannot fetch NAV history for %s: %v", e.Code, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }
