package siptrack

import (
	"fmt"
	"log"

	"github.com/atharva/siptrack/date"
	"github.com/shopspring/decimal"
)

// CachedSeries is one cache entry: the full NAV history for a scheme code
// and the day it was fetched.
type CachedSeries struct {
	FetchedOn date.Date
	Points    date.History[decimal.Decimal]
}

// NavCache serves per-scheme NAV histories, fetching from the provider
// only when the cached entry is stale.
//
// Freshness is coarse by design: an entry is fresh if and only if it was
// fetched today, so it expires at the next day boundary rather than after
// a rolling duration. That keeps repeated scheme selections within a day
// off the network while the data stays at most one day stale, which is
// acceptable for end-of-day NAVs.
//
// A NavCache is not safe for concurrent use, and the store file has no
// concurrent-writer protection.
type NavCache struct {
	path    string
	entries map[string]CachedSeries
	source  Provider

	// today is swappable for tests; it defaults to date.Today.
	today func() date.Date
}

// NewNavCache loads the cache store at path (a missing file is an empty
// cache) and returns a NavCache backed by the given provider.
func NewNavCache(path string, source Provider) (*NavCache, error) {
	entries, err := LoadNavEntries(path)
	if err != nil {
		return nil, err
	}
	return &NavCache{
		path:    path,
		entries: entries,
		source:  source,
		today:   date.Today,
	}, nil
}

// Get returns the NAV history for a scheme code, fetching it from the
// provider unless a fresh cached entry exists.
//
// On a successful fetch the entry is overwritten and the store persisted
// immediately; a store write failure is logged but does not invalidate the
// fetched series. On provider failure or an empty response the cache is
// left untouched and a *FetchError is returned, so the next call retries.
func (c *NavCache) Get(code string) (date.History[decimal.Decimal], error) {
	if entry, ok := c.entries[code]; ok && entry.FetchedOn == c.today() {
		return entry.Points, nil
	}

	points, err := c.source.HistoricalNAV(code)
	if err != nil {
		return date.History[decimal.Decimal]{}, &FetchError{Code: code, Err: err}
	}
	if points.Len() == 0 {
		return date.History[decimal.Decimal]{}, &FetchError{Code: code, Err: fmt.Errorf("empty NAV history")}
	}

	c.entries[code] = CachedSeries{FetchedOn: c.today(), Points: points}
	if err := SaveNavEntries(c.path, c.entries); err != nil {
		log.Printf("nav-cache write err (ignored): %v", err)
	}
	log.Printf("nav-cache refresh code=%s points=%d", code, points.Len())
	return points, nil
}

// Len returns the number of cached entries.
func (c *NavCache) Len() int { return len(c.entries) }
