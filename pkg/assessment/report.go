package assessment

import (
	"sort"

	"github.com/pathwise/compass/pkg/catalog"
	"github.com/pathwise/compass/pkg/matching"
	"github.com/pathwise/compass/pkg/models"
)

// Report is the user-facing result of a scored assessment
type Report struct {
	Scores           models.AssessmentScores `json:"scores"`
	Strengths        []string                `json:"strengths"`
	Gaps             []string                `json:"gaps"`
	RecommendedItems []catalog.ScoredItem    `json:"recommended_items"`
}

const gapThreshold = 50.0

// BuildReport turns computed scores into a report with recommended
// catalog items for the user's profile. Categories scoring under 50
// are gaps, 75 and over are strengths, both ordered by score.
func BuildReport(scorer *matching.Scorer, scores models.AssessmentScores, profile catalog.Profile, items []catalog.Item, limit int) Report {
	ordered := make([]models.CategoryScore, len(scores.Categories))
	copy(ordered, scores.Categories)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Score < ordered[j].Score
	})

	var gaps, strengths []string
	for _, category := range ordered {
		if category.Score < gapThreshold {
			gaps = append(gaps, category.Category)
		}
	}
	for i := len(ordered) - 1; i >= 0; i-- {
		if ordered[i].Score >= 75 {
			strengths = append(strengths, ordered[i].Category)
		}
	}

	return Report{
		Scores:           scores,
		Strengths:        strengths,
		Gaps:             gaps,
		RecommendedItems: catalog.Recommend(scorer, profile, items, limit),
	}
}
