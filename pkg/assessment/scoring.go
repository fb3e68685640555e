package assessment

import (
	"net/http"
	"sort"

	"github.com/Gobusters/ectoerror/httperror"

	"github.com/pathwise/compass/pkg/models"
)

// Readiness bands by overall score
const (
	BandNascent     = "Nascent"
	BandEmerging    = "Emerging"
	BandEstablished = "Established"
	BandLeading     = "Leading"
)

// Band maps an overall 0..100 score to its readiness band.
func Band(overall float64) string {
	switch {
	case overall < 25:
		return BandNascent
	case overall < 50:
		return BandEmerging
	case overall < 75:
		return BandEstablished
	default:
		return BandLeading
	}
}

// Score computes category and overall readiness scores from the
// submitted answers. Every question must be answered with one of its
// defined option values. Scores are normalized to 0..100.
func Score(q Questionnaire, answers map[string]string) (models.AssessmentScores, error) {
	questions := q.Questions()

	earned := map[string]int{}
	possible := map[string]int{}
	for _, question := range questions {
		answer, ok := answers[question.ID]
		if !ok {
			return models.AssessmentScores{}, httperror.NewHTTPErrorf(http.StatusBadRequest, "missing answer for question %s", question.ID)
		}

		score, found := -1, false
		for _, option := range question.Options {
			if option.Value == answer {
				score, found = option.Score, true
				break
			}
		}
		if !found {
			return models.AssessmentScores{}, httperror.NewHTTPErrorf(http.StatusBadRequest, "invalid answer %q for question %s", answer, question.ID)
		}

		earned[question.Category] += score
		possible[question.Category] += MaxOptionScore
	}

	categories := make([]models.CategoryScore, 0, len(earned))
	for category, total := range possible {
		score := 0.0
		if total > 0 {
			score = float64(earned[category]) / float64(total) * 100
		}
		categories = append(categories, models.CategoryScore{Category: category, Score: score})
	}
	sort.Slice(categories, func(i, j int) bool {
		return categories[i].Category < categories[j].Category
	})

	totalEarned, totalPossible := 0, 0
	for _, question := range questions {
		totalPossible += MaxOptionScore
		answer := answers[question.ID]
		for _, option := range question.Options {
			if option.Value == answer {
				totalEarned += option.Score
				break
			}
		}
	}

	overall := 0.0
	if totalPossible > 0 {
		overall = float64(totalEarned) / float64(totalPossible) * 100
	}

	return models.AssessmentScores{
		Overall:    overall,
		Band:       Band(overall),
		Categories: categories,
	}, nil
}
