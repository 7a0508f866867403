package siptrack

import (
	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// Scorer computes a normalized string-similarity score in [0, 100].
//
// It is the pluggable heart of the Resolver: swapping the matching
// algorithm never touches the resolution logic.
type Scorer interface {
	Score(a, b string) int
}

// ratioScorer composes a plain edit-distance ratio with a token-sort ratio
// and keeps the best of the two. Statement names reorder the plan suffix
// freely ("Fund X - Growth Option" vs "Fund X Growth"), which the
// token-sort pass absorbs.
type ratioScorer struct{}

// NewScorer returns the default Scorer.
func NewScorer() Scorer { return ratioScorer{} }

func (ratioScorer) Score(a, b string) int {
	score := fuzzy.Ratio(a, b)
	if ts := fuzzy.TokenSortRatio(a, b); ts > score {
		score = ts
	}
	return score
}

// ScorerFunc adapts a plain function to the Scorer interface.
type ScorerFunc func(a, b string) int

func (f ScorerFunc) Score(a, b string) int { return f(a, b) }
