package siptrack

// This file persists the NAV cache store: a human-readable JSON document of
// {scheme code: {fetched_on, data}}, loaded whole at NavCache construction.
// The whole document is rewritten on each update, but only the refreshed
// entry changes; a failed fetch never reaches this layer.

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/atharva/siptrack/date"
	"github.com/shopspring/decimal"
)

// jpoint and jseries mirror the on-disk schema.
type jpoint struct {
	Date date.Date       `json:"date"`
	NAV  decimal.Decimal `json:"nav"`
}

type jseries struct {
	FetchedOn date.Date `json:"fetched_on"`
	Data      []jpoint  `json:"data"`
}

// DecodeNavEntries reads a cache document. Points are re-sorted and
// deduplicated on the way in, so a hand-edited file cannot break the
// ascending-unique-dates invariant.
func DecodeNavEntries(r io.Reader) (map[string]CachedSeries, error) {
	doc := make(map[string]jseries)
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("load error: cannot parse NAV cache store: %w", err)
	}

	entries := make(map[string]CachedSeries, len(doc))
	for code, js := range doc {
		entry := CachedSeries{FetchedOn: js.FetchedOn}
		for _, p := range js.Data {
			entry.Points.Append(p.Date, p.NAV)
		}
		entries[code] = entry
	}
	return entries, nil
}

// EncodeNavEntries writes a cache document, indented for hand inspection.
func EncodeNavEntries(w io.Writer, entries map[string]CachedSeries) error {
	doc := make(map[string]jseries, len(entries))
	for code, entry := range entries {
		js := jseries{FetchedOn: entry.FetchedOn, Data: make([]jpoint, 0, entry.Points.Len())}
		for on, nav := range entry.Points.Values() {
			js.Data = append(js.Data, jpoint{Date: on, NAV: nav})
		}
		doc[code] = js
	}

	data, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return fmt.Errorf("persist error: cannot marshal NAV cache store: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("persist error: cannot write NAV cache store: %w", err)
	}
	return nil
}

// LoadNavEntries reads the cache store file. A missing file is an empty cache.
func LoadNavEntries(path string) (map[string]CachedSeries, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string]CachedSeries), nil
		}
		return nil, fmt.Errorf("load error: cannot open NAV cache store %q: %w", path, err)
	}
	defer f.Close()
	return DecodeNavEntries(f)
}

// SaveNavEntries rewrites the cache store file in full.
func SaveNavEntries(path string, entries map[string]CachedSeries) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("persist error: cannot create NAV cache store %q: %w", path, err)
	}
	defer f.Close()
	return EncodeNavEntries(f, entries)
}
