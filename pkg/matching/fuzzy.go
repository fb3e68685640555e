package matching

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// SuggestThreshold is the minimum score a candidate must exceed (strictly)
// to appear in suggestions.
const SuggestThreshold = 0.3

// DefaultSuggestLimit caps suggestion results when the caller passes no limit.
const DefaultSuggestLimit = 5

// FuzzyMatcher scores free-text queries against candidate strings for
// search suggestions
type FuzzyMatcher struct{}

// NewFuzzyMatcher creates a new FuzzyMatcher
func NewFuzzyMatcher() *FuzzyMatcher {
	return &FuzzyMatcher{}
}

// Score returns a similarity in [0,1] between a query and a candidate.
// Matching is case-insensitive. Substring containment short-circuits to 1.0;
// otherwise the score is 1 - editDistance/maxLen, clamped at 0. Two empty
// strings score 1.0, a single empty side scores 0.0.
func (m *FuzzyMatcher) Score(query, candidate string) float64 {
	q := strings.ToLower(query)
	c := strings.ToLower(candidate)

	if q == "" && c == "" {
		return 1.0
	}
	if q == "" || c == "" {
		return 0.0
	}

	if strings.Contains(c, q) {
		return 1.0
	}

	distance := levenshtein.ComputeDistance(q, c)
	maxLen := utf8.RuneCountInString(q)
	if cl := utf8.RuneCountInString(c); cl > maxLen {
		maxLen = cl
	}

	score := 1.0 - float64(distance)/float64(maxLen)
	if score < 0 {
		return 0.0
	}
	return score
}

// Suggest ranks the candidates against the query and returns the best ones.
// A blank query yields no suggestions. Candidates scoring at or below
// SuggestThreshold are dropped, ties keep their original order, and the
// result is truncated to limit (DefaultSuggestLimit when limit <= 0).
func (m *FuzzyMatcher) Suggest(query string, candidates []string, limit int) []string {
	if limit <= 0 {
		limit = DefaultSuggestLimit
	}
	if strings.TrimSpace(query) == "" {
		return []string{}
	}

	type scored struct {
		value string
		score float64
	}

	matches := make([]scored, 0, len(candidates))
	for _, candidate := range candidates {
		score := m.Score(query, candidate)
		if score > SuggestThreshold {
			matches = append(matches, scored{value: candidate, score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}

	results := make([]string, len(matches))
	for i, match := range matches {
		results[i] = match.value
	}
	return results
}
