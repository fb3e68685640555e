package matching

// Scorer computes weighted similarity between two catalog records
type Scorer struct{}

// NewScorer creates a new Scorer
func NewScorer() *Scorer {
	return &Scorer{}
}

// Similarity returns the weighted similarity between two records.
// A record is never similar to itself (same ID scores 0) so self-matches
// stay out of related-content results. Tag-set attributes contribute
// weight * Jaccard overlap, enum attributes contribute their full weight on
// an exact match. The function is symmetric and total: missing attributes
// and empty sets contribute 0 rather than failing.
func (s *Scorer) Similarity(a, b Record, w Weights) float64 {
	if a == nil || b == nil {
		return 0.0
	}
	if a.RecordID() == b.RecordID() {
		return 0.0
	}

	var score float64

	for name, weight := range w.TagSets {
		score += weight * jaccard(a.TagSet(name), b.TagSet(name))
	}

	for name, weight := range w.Enums {
		av, aOK := a.EnumValue(name)
		bv, bOK := b.EnumValue(name)
		if aOK && bOK && av == bv {
			score += weight
		}
	}

	return score
}

// jaccard returns |intersection| / |union| of two tag sets. Duplicates
// within a set are not meaningful. An empty union scores 0.
func jaccard(a, b []string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0.0
	}

	union := make(map[string]struct{}, len(a)+len(b))
	inA := make(map[string]struct{}, len(a))
	for _, v := range a {
		union[v] = struct{}{}
		inA[v] = struct{}{}
	}

	intersection := 0
	seen := make(map[string]struct{}, len(b))
	for _, v := range b {
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		union[v] = struct{}{}
		if _, ok := inA[v]; ok {
			intersection++
		}
	}

	if len(union) == 0 {
		return 0.0
	}
	return float64(intersection) / float64(len(union))
}
