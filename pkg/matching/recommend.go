package matching

import "sort"

// DefaultRelatedLimit caps related-item results when the caller passes no limit.
const DefaultRelatedLimit = 4

// TermExtractor produces the searchable terms of a single record, e.g. title
// tokens and tag values. Supplied by the caller so each catalog decides what
// is searchable.
type TermExtractor func(Record) []string

// RecommendationService ranks a catalog for two use cases: related items for
// a target record, and search-term suggestions for a partial query. All
// operations are pure and safe for concurrent use.
type RecommendationService struct {
	scorer  *Scorer
	matcher *FuzzyMatcher
}

// NewRecommendationService creates a new RecommendationService
func NewRecommendationService() *RecommendationService {
	return &RecommendationService{
		scorer:  NewScorer(),
		matcher: NewFuzzyMatcher(),
	}
}

// RelatedItems returns the catalog records most similar to target, best
// first. Records scoring 0 or below are excluded, which also drops the
// target itself. Equal scores keep catalog order. Results are truncated to
// limit (DefaultRelatedLimit when limit <= 0).
func (r *RecommendationService) RelatedItems(target Record, catalog []Record, w Weights, limit int) []ScoredRecord {
	if limit <= 0 {
		limit = DefaultRelatedLimit
	}

	scored := make([]ScoredRecord, 0, len(catalog))
	for _, candidate := range catalog {
		score := r.scorer.Similarity(target, candidate, w)
		if score <= 0 {
			continue
		}
		scored = append(scored, ScoredRecord{Record: candidate, Score: score})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > limit {
		scored = scored[:limit]
	}
	return scored
}

// SearchSuggestions builds a deduplicated term vocabulary from the catalog
// and ranks it against the query. Terms keep first-seen order so suggestion
// ties are deterministic.
func (r *RecommendationService) SearchSuggestions(query string, catalog []Record, extract TermExtractor, limit int) []string {
	vocabulary := make([]string, 0, len(catalog)*4)
	seen := make(map[string]struct{})

	for _, record := range catalog {
		for _, term := range extract(record) {
			if term == "" {
				continue
			}
			if _, ok := seen[term]; ok {
				continue
			}
			seen[term] = struct{}{}
			vocabulary = append(vocabulary, term)
		}
	}

	return r.matcher.Suggest(query, vocabulary, limit)
}
