// Package matching implements the similarity and fuzzy-text scoring used to
// rank related catalog content and power search suggestions.
package matching

// Record is the shape the similarity scorer compares. Two records being
// compared must expose the same named attributes; an attribute missing on
// either side contributes nothing to the score.
type Record interface {
	// RecordID returns the stable unique identifier of the record.
	RecordID() string
	// TagSet returns the unordered tag values for a named tag-set attribute,
	// or nil if the record does not carry that attribute.
	TagSet(name string) []string
	// EnumValue returns the single value of a named enum attribute.
	EnumValue(name string) (string, bool)
}

// Weights assigns a non-negative weight to each compared attribute. Scores
// are only bounded to [0,1] when the weights sum to 1.0; that convention is
// not enforced.
type Weights struct {
	TagSets map[string]float64
	Enums   map[string]float64
}

// DefaultWeights returns the weight profile used for related-content ranking.
func DefaultWeights() Weights {
	return Weights{
		TagSets: map[string]float64{
			"industries":  0.3,
			"departments": 0.2,
			"ai_types":    0.2,
		},
		Enums: map[string]float64{
			"complexity":   0.2,
			"setup_effort": 0.1,
		},
	}
}

// ScoredRecord pairs a record with its computed similarity score. It only
// lives for the duration of a single ranking call.
type ScoredRecord struct {
	Record Record  `json:"record"`
	Score  float64 `json:"score"`
}
