package siptrack

import (
	"fmt"
	"log"
)

// acceptScore is the fuzzy-match acceptance threshold. A match is accepted
// and persisted only with a score strictly greater than this; exactly 80
// is rejected.
const acceptScore = 80

// Resolver maps free-text scheme names from a statement to canonical AMFI
// scheme codes.
//
// Confirmed mappings are held in memory and persisted to a single JSON
// document; the catalog is loaded once at construction and treated as
// ground truth for fuzzy matching. A Resolver is not safe for concurrent
// use, matching the one-request-at-a-time session model.
type Resolver struct {
	path     string
	mappings map[string]string
	catalog  Catalog
	scorer   Scorer
}

// NewResolver loads the mapping store at path (a missing file is an empty
// store) and returns a Resolver matching against the given catalog.
// A nil scorer selects the default one.
func NewResolver(path string, catalog Catalog, scorer Scorer) (*Resolver, error) {
	mappings, err := LoadMappings(path)
	if err != nil {
		return nil, err
	}
	if scorer == nil {
		scorer = NewScorer()
	}
	return &Resolver{
		path:     path,
		mappings: mappings,
		catalog:  catalog,
		scorer:   scorer,
	}, nil
}

// Resolve returns the canonical scheme code for a statement scheme name.
//
// A previously confirmed mapping is returned verbatim with no matching
// work. Otherwise the name is fuzzy-matched against every catalog entry;
// the first maximal-score candidate in catalog order wins. Scores of 80 or
// below are not accepted and not persisted, so the same name is re-tried
// against a possibly fresher catalog on every future call. The error is
// ErrNotFound in that case; resolution has no other failure mode.
func (r *Resolver) Resolve(sourceName string) (string, error) {
	if code, ok := r.mappings[sourceName]; ok {
		return code, nil
	}

	best := -1
	var bestCode, bestName string
	for _, s := range r.catalog {
		if score := r.scorer.Score(sourceName, s.Name); score > best {
			best, bestCode, bestName = score, s.Code, s.Name
		}
	}

	if best <= acceptScore {
		log.Printf("resolve-low-score source=%q best=%q score=%d", sourceName, bestName, best)
		return "", fmt.Errorf("resolving %q: %w", sourceName, ErrNotFound)
	}

	log.Printf("resolve-accept source=%q code=%s name=%q score=%d", sourceName, bestCode, bestName, best)
	r.record(sourceName, bestCode)
	return bestCode, nil
}

// Confirm records a manual mapping, bypassing fuzzy matching entirely.
func (r *Resolver) Confirm(sourceName, code string) {
	log.Printf("resolve-confirm source=%q code=%s", sourceName, code)
	r.record(sourceName, code)
}

// record stores the mapping and flushes the store. A flush failure is
// logged, not returned: the resolution itself succeeded and the mapping
// stays usable for the rest of the session.
func (r *Resolver) record(sourceName, code string) {
	r.mappings[sourceName] = code
	if err := SaveMappings(r.path, r.mappings); err != nil {
		log.Printf("mapping-store write err (ignored): %v", err)
	}
}

// Known reports whether a confirmed mapping exists for sourceName.
func (r *Resolver) Known(sourceName string) bool {
	_, ok := r.mappings[sourceName]
	return ok
}

// Len returns the number of confirmed mappings.
func (r *Resolver) Len() int { return len(r.mappings) }
