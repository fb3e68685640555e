package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// testRecord is a minimal Record implementation for scorer tests.
type testRecord struct {
	id    string
	tags  map[string][]string
	enums map[string]string
}

func (r testRecord) RecordID() string { return r.id }

func (r testRecord) TagSet(name string) []string { return r.tags[name] }

func (r testRecord) EnumValue(name string) (string, bool) {
	v, ok := r.enums[name]
	return v, ok
}

func weights(tagSets, enums map[string]float64) Weights {
	return Weights{TagSets: tagSets, Enums: enums}
}

func TestScorer_Similarity(t *testing.T) {
	scorer := NewScorer()

	w := weights(
		map[string]float64{"industry": 0.5, "department": 0.3},
		map[string]float64{"complexity": 0.2},
	)

	recordA := testRecord{
		id:    "a",
		tags:  map[string][]string{"industry": {"Tech", "Finance"}, "department": {"IT"}},
		enums: map[string]string{"complexity": "Medium"},
	}
	recordB := testRecord{
		id:    "b",
		tags:  map[string][]string{"industry": {"Tech"}, "department": {"IT"}},
		enums: map[string]string{"complexity": "Medium"},
	}

	t.Run("weighted overlap", func(t *testing.T) {
		// industry 1/2 * 0.5 + department 1/1 * 0.3 + complexity 0.2
		assert.InDelta(t, 0.75, scorer.Similarity(recordA, recordB, w), 1e-9)
	})

	t.Run("same id scores zero", func(t *testing.T) {
		clone := recordA
		assert.Zero(t, scorer.Similarity(recordA, clone, w))
	})

	t.Run("symmetry", func(t *testing.T) {
		assert.Equal(t, scorer.Similarity(recordA, recordB, w), scorer.Similarity(recordB, recordA, w))
	})

	t.Run("enum mismatch contributes nothing", func(t *testing.T) {
		recordC := testRecord{
			id:    "c",
			tags:  map[string][]string{"industry": {"Tech"}, "department": {"IT"}},
			enums: map[string]string{"complexity": "High"},
		}
		assert.InDelta(t, 0.55, scorer.Similarity(recordA, recordC, w), 1e-9)
	})

	t.Run("enum comparison is case-sensitive", func(t *testing.T) {
		recordC := testRecord{
			id:    "c",
			tags:  map[string][]string{},
			enums: map[string]string{"complexity": "medium"},
		}
		assert.Zero(t, scorer.Similarity(recordA, recordC, w))
	})

	t.Run("missing attribute contributes zero instead of failing", func(t *testing.T) {
		bare := testRecord{id: "bare"}
		assert.Zero(t, scorer.Similarity(recordA, bare, weights(
			map[string]float64{"industry": 1.0},
			nil,
		)))
		assert.Zero(t, scorer.Similarity(bare, recordA, weights(
			nil,
			map[string]float64{"complexity": 1.0},
		)))
	})

	t.Run("duplicate tags do not inflate overlap", func(t *testing.T) {
		dupA := testRecord{id: "da", tags: map[string][]string{"industry": {"Tech", "Tech"}}}
		dupB := testRecord{id: "db", tags: map[string][]string{"industry": {"Tech"}}}
		assert.InDelta(t, 1.0, scorer.Similarity(dupA, dupB, weights(map[string]float64{"industry": 1.0}, nil)), 1e-9)
	})

	t.Run("bounded when weights sum to one", func(t *testing.T) {
		records := []testRecord{recordA, recordB,
			{id: "d", tags: map[string][]string{"industry": {"Retail"}, "department": {"HR"}}, enums: map[string]string{"complexity": "Low"}},
			{id: "e"},
		}
		for _, a := range records {
			for _, b := range records {
				score := scorer.Similarity(a, b, w)
				assert.GreaterOrEqual(t, score, 0.0)
				assert.LessOrEqual(t, score, 1.0)
			}
		}
	})
}

func TestJaccard(t *testing.T) {
	tests := []struct {
		name     string
		a        []string
		b        []string
		expected float64
	}{
		{name: "identical sets", a: []string{"x", "y"}, b: []string{"y", "x"}, expected: 1.0},
		{name: "disjoint sets", a: []string{"x"}, b: []string{"y"}, expected: 0.0},
		{name: "partial overlap", a: []string{"x", "y", "z"}, b: []string{"y", "z", "w"}, expected: 0.5},
		{name: "both empty", a: nil, b: nil, expected: 0.0},
		{name: "one empty", a: []string{"x"}, b: nil, expected: 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, jaccard(tt.a, tt.b), 1e-9)
		})
	}
}
