package assessment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pathwise/compass/pkg/catalog"
	"github.com/pathwise/compass/pkg/matching"
)

func answerAll(q Questionnaire, value string) map[string]string {
	answers := map[string]string{}
	for _, question := range q.Questions() {
		answers[question.ID] = value
	}
	return answers
}

func TestDefaultQuestionnaire(t *testing.T) {
	q := DefaultQuestionnaire()
	require.NotEmpty(t, q.Steps)

	seen := map[string]bool{}
	for _, question := range q.Questions() {
		assert.False(t, seen[question.ID], "duplicate question id %s", question.ID)
		seen[question.ID] = true
		require.Len(t, question.Options, 5, question.ID)
		for i, option := range question.Options {
			assert.Equal(t, i, option.Score, "%s option %s", question.ID, option.Value)
		}
	}

	t.Run("lookup by id", func(t *testing.T) {
		question, ok := q.Question("data_quality")
		require.True(t, ok)
		assert.Equal(t, CategoryData, question.Category)

		_, ok = q.Question("nope")
		assert.False(t, ok)
	})
}

func TestScore(t *testing.T) {
	q := DefaultQuestionnaire()

	t.Run("all lowest answers score zero", func(t *testing.T) {
		scores, err := Score(q, answerAll(q, "none"))
		require.NoError(t, err)
		assert.Zero(t, scores.Overall)
		assert.Equal(t, BandNascent, scores.Band)
		for _, category := range scores.Categories {
			assert.Zero(t, category.Score)
		}
	})

	t.Run("all highest answers score one hundred", func(t *testing.T) {
		scores, err := Score(q, answerAll(q, "advanced"))
		require.NoError(t, err)
		assert.Equal(t, 100.0, scores.Overall)
		assert.Equal(t, BandLeading, scores.Band)
		for _, category := range scores.Categories {
			assert.Equal(t, 100.0, category.Score)
		}
	})

	t.Run("mid answers score fifty", func(t *testing.T) {
		scores, err := Score(q, answerAll(q, "piloting"))
		require.NoError(t, err)
		assert.InDelta(t, 50.0, scores.Overall, 0.0001)
		assert.Equal(t, BandEstablished, scores.Band)
	})

	t.Run("category scores reflect their own answers", func(t *testing.T) {
		answers := answerAll(q, "none")
		answers["data_quality"] = "advanced"
		answers["data_governance"] = "advanced"

		scores, err := Score(q, answers)
		require.NoError(t, err)
		for _, category := range scores.Categories {
			if category.Category == CategoryData {
				assert.Equal(t, 100.0, category.Score)
			} else {
				assert.Zero(t, category.Score)
			}
		}
	})

	t.Run("missing answer fails", func(t *testing.T) {
		answers := answerAll(q, "none")
		delete(answers, "strategy_vision")
		_, err := Score(q, answers)
		assert.Error(t, err)
	})

	t.Run("unknown option fails", func(t *testing.T) {
		answers := answerAll(q, "none")
		answers["strategy_vision"] = "maybe"
		_, err := Score(q, answers)
		assert.Error(t, err)
	})
}

func TestBand(t *testing.T) {
	tests := []struct {
		overall  float64
		expected string
	}{
		{0, BandNascent},
		{24.9, BandNascent},
		{25, BandEmerging},
		{49.9, BandEmerging},
		{50, BandEstablished},
		{74.9, BandEstablished},
		{75, BandLeading},
		{100, BandLeading},
	}
	for _, test := range tests {
		assert.Equal(t, test.expected, Band(test.overall), "overall %v", test.overall)
	}
}

func TestBuildReport(t *testing.T) {
	q := DefaultQuestionnaire()
	answers := answerAll(q, "operational")
	answers["data_quality"] = "none"
	answers["data_governance"] = "exploring"
	answers["governance_review"] = "advanced"
	answers["governance_compliance"] = "advanced"

	scores, err := Score(q, answers)
	require.NoError(t, err)

	profile := catalog.Profile{
		UserID:     "u1",
		Industry:   "Finance",
		Department: "Operations",
	}
	report := BuildReport(matching.NewScorer(), scores, profile, catalog.SampleCatalog(), 4)

	assert.Contains(t, report.Gaps, CategoryData)
	assert.NotContains(t, report.Gaps, CategoryGovernance)
	assert.Contains(t, report.Strengths, CategoryGovernance)
	assert.NotContains(t, report.Strengths, CategoryData)

	require.NotEmpty(t, report.RecommendedItems)
	assert.LessOrEqual(t, len(report.RecommendedItems), 4)
	for i := 1; i < len(report.RecommendedItems); i++ {
		assert.GreaterOrEqual(t, report.RecommendedItems[i-1].Score, report.RecommendedItems[i].Score)
	}
}
