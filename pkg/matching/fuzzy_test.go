package matching

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFuzzyMatcher_Score(t *testing.T) {
	matcher := NewFuzzyMatcher()

	tests := []struct {
		name      string
		query     string
		candidate string
		expected  float64
	}{
		{
			name:      "containment short-circuits to 1.0",
			query:     "cat",
			candidate: "category",
			expected:  1.0,
		},
		{
			name:      "containment is case-insensitive",
			query:     "CAT",
			candidate: "Category",
			expected:  1.0,
		},
		{
			name:      "exact match",
			query:     "workflow",
			candidate: "workflow",
			expected:  1.0,
		},
		{
			name:      "fully dissimilar equal length",
			query:     "xyz",
			candidate: "abc",
			expected:  0.0,
		},
		{
			name:      "single substitution",
			query:     "data",
			candidate: "date",
			expected:  0.75,
		},
		{
			name:      "both empty",
			query:     "",
			candidate: "",
			expected:  1.0,
		},
		{
			name:      "empty query only",
			query:     "",
			candidate: "automation",
			expected:  0.0,
		},
		{
			name:      "empty candidate only",
			query:     "automation",
			candidate: "",
			expected:  0.0,
		},
		{
			name:      "query longer than dissimilar candidate clamps at 0",
			query:     "abcdefghij",
			candidate: "z",
			expected:  0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, matcher.Score(tt.query, tt.candidate), 1e-9)
		})
	}
}

func TestFuzzyMatcher_ScoreBounds(t *testing.T) {
	matcher := NewFuzzyMatcher()

	pairs := [][2]string{
		{"gov", "governance"},
		{"complience", "compliance"},
		{"roadmap", "road"},
		{"zzzzzzzz", "a"},
		{"", ""},
		{"training", ""},
	}

	for _, pair := range pairs {
		score := matcher.Score(pair[0], pair[1])
		assert.GreaterOrEqual(t, score, 0.0, "score(%q, %q)", pair[0], pair[1])
		assert.LessOrEqual(t, score, 1.0, "score(%q, %q)", pair[0], pair[1])
	}
}

func TestFuzzyMatcher_Suggest(t *testing.T) {
	matcher := NewFuzzyMatcher()
	candidates := []string{"automation", "augmentation", "analytics", "chatbot", "auto", "autonomy"}

	t.Run("blank query returns nothing", func(t *testing.T) {
		assert.Empty(t, matcher.Suggest("", candidates, 5))
		assert.Empty(t, matcher.Suggest("   ", candidates, 5))
	})

	t.Run("results are sorted by descending score", func(t *testing.T) {
		results := matcher.Suggest("auto", candidates, 10)
		require.NotEmpty(t, results)

		for i := 1; i < len(results); i++ {
			prev := matcher.Score("auto", results[i-1])
			curr := matcher.Score("auto", results[i])
			assert.GreaterOrEqual(t, prev, curr)
		}
	})

	t.Run("ties keep candidate order", func(t *testing.T) {
		// "automation", "auto" and "autonomy" all contain "auto" and score 1.0.
		results := matcher.Suggest("auto", candidates, 10)
		require.GreaterOrEqual(t, len(results), 3)
		assert.Equal(t, []string{"automation", "auto", "autonomy"}, results[:3])
	})

	t.Run("weak matches are filtered", func(t *testing.T) {
		for _, result := range matcher.Suggest("chat", candidates, 10) {
			assert.Greater(t, matcher.Score("chat", result), SuggestThreshold)
		}
	})

	t.Run("limit truncates", func(t *testing.T) {
		results := matcher.Suggest("a", candidates, 2)
		assert.LessOrEqual(t, len(results), 2)
	})

	t.Run("zero limit falls back to default", func(t *testing.T) {
		many := make([]string, 0, 20)
		for i := 0; i < 20; i++ {
			many = append(many, "term"+strings.Repeat("x", i))
		}
		results := matcher.Suggest("term", many, 0)
		assert.Len(t, results, DefaultSuggestLimit)
	})
}
