package matching

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalogFixture() (testRecord, []Record, Weights) {
	target := testRecord{
		id:    "target",
		tags:  map[string][]string{"industry": {"Tech"}, "department": {"IT"}},
		enums: map[string]string{"complexity": "Medium"},
	}

	catalog := []Record{
		target,
		testRecord{
			id:    "close",
			tags:  map[string][]string{"industry": {"Tech"}, "department": {"IT"}},
			enums: map[string]string{"complexity": "Medium"},
		},
		testRecord{
			id:    "related",
			tags:  map[string][]string{"industry": {"Tech", "Finance"}, "department": {"IT"}},
			enums: map[string]string{"complexity": "High"},
		},
		testRecord{
			id:    "distant",
			tags:  map[string][]string{"industry": {"Retail"}, "department": {"HR"}},
			enums: map[string]string{"complexity": "Low"},
		},
		testRecord{
			id:    "alsoClose",
			tags:  map[string][]string{"industry": {"Tech"}, "department": {"IT"}},
			enums: map[string]string{"complexity": "Medium"},
		},
	}

	w := weights(
		map[string]float64{"industry": 0.5, "department": 0.3},
		map[string]float64{"complexity": 0.2},
	)
	return target, catalog, w
}

func TestRecommendationService_RelatedItems(t *testing.T) {
	svc := NewRecommendationService()
	target, catalog, w := catalogFixture()

	t.Run("excludes the target itself", func(t *testing.T) {
		for _, scored := range svc.RelatedItems(target, catalog, w, 10) {
			assert.NotEqual(t, target.RecordID(), scored.Record.RecordID())
		}
	})

	t.Run("excludes zero-score candidates", func(t *testing.T) {
		results := svc.RelatedItems(target, catalog, w, 10)
		for _, scored := range results {
			assert.Greater(t, scored.Score, 0.0)
			assert.NotEqual(t, "distant", scored.Record.RecordID())
		}
	})

	t.Run("sorted descending with stable ties", func(t *testing.T) {
		results := svc.RelatedItems(target, catalog, w, 10)
		require.Len(t, results, 3)

		for i := 1; i < len(results); i++ {
			assert.GreaterOrEqual(t, results[i-1].Score, results[i].Score)
		}
		// "close" and "alsoClose" tie at 1.0 and keep catalog order.
		assert.Equal(t, "close", results[0].Record.RecordID())
		assert.Equal(t, "alsoClose", results[1].Record.RecordID())
		assert.Equal(t, "related", results[2].Record.RecordID())
	})

	t.Run("limit truncates", func(t *testing.T) {
		assert.Len(t, svc.RelatedItems(target, catalog, w, 1), 1)
	})

	t.Run("default limit caps results", func(t *testing.T) {
		big := make([]Record, 0, 10)
		for i := 0; i < 10; i++ {
			big = append(big, testRecord{
				id:    "rec" + strings.Repeat("x", i),
				tags:  map[string][]string{"industry": {"Tech"}},
				enums: map[string]string{"complexity": "Medium"},
			})
		}
		results := svc.RelatedItems(target, big, w, 0)
		assert.Len(t, results, DefaultRelatedLimit)
	})

	t.Run("empty catalog yields empty result", func(t *testing.T) {
		assert.Empty(t, svc.RelatedItems(target, nil, w, 4))
	})
}

func TestRecommendationService_SearchSuggestions(t *testing.T) {
	svc := NewRecommendationService()

	extract := func(r Record) []string {
		terms := append([]string{}, r.TagSet("industry")...)
		if v, ok := r.EnumValue("complexity"); ok {
			terms = append(terms, v)
		}
		return terms
	}

	_, catalog, _ := catalogFixture()

	t.Run("suggests matching terms", func(t *testing.T) {
		results := svc.SearchSuggestions("tech", catalog, extract, 5)
		require.NotEmpty(t, results)
		assert.Equal(t, "Tech", results[0])
	})

	t.Run("vocabulary is deduplicated", func(t *testing.T) {
		results := svc.SearchSuggestions("tech", catalog, extract, 10)
		seen := make(map[string]int)
		for _, r := range results {
			seen[r]++
		}
		for term, count := range seen {
			assert.Equal(t, 1, count, "term %q suggested more than once", term)
		}
	})

	t.Run("empty catalog yields empty result", func(t *testing.T) {
		assert.Empty(t, svc.SearchSuggestions("a", nil, extract, 5))
	})

	t.Run("blank query yields empty result", func(t *testing.T) {
		assert.Empty(t, svc.SearchSuggestions("", catalog, extract, 5))
	})
}
