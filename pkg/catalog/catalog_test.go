package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pathwise/compass/pkg/matching"
)

func TestItemValidate(t *testing.T) {
	valid := Item{
		ID:          "uc-1",
		Kind:        KindUseCase,
		Name:        "Test",
		Complexity:  ComplexityLow,
		SetupEffort: SetupMinimal,
	}

	t.Run("valid item passes", func(t *testing.T) {
		assert.NoError(t, valid.Validate())
	})

	t.Run("unknown kind fails", func(t *testing.T) {
		item := valid
		item.Kind = "template"
		assert.Error(t, item.Validate())
	})

	t.Run("unknown complexity fails", func(t *testing.T) {
		item := valid
		item.Complexity = "medium" // enums are case sensitive
		assert.Error(t, item.Validate())
	})

	t.Run("unknown setup effort fails", func(t *testing.T) {
		item := valid
		item.SetupEffort = "Huge"
		assert.Error(t, item.Validate())
	})
}

func TestItemRecord(t *testing.T) {
	item := Item{
		ID:          "uc-2",
		Kind:        KindUseCase,
		Industries:  []string{"Finance"},
		Departments: []string{"Operations"},
		AITypes:     []string{"NLP", "Automation"},
		Complexity:  ComplexityMedium,
		SetupEffort: SetupModerate,
	}

	assert.Equal(t, "uc-2", item.RecordID())
	assert.Equal(t, []string{"Finance"}, item.TagSet(AttrIndustries))
	assert.Equal(t, []string{"Operations"}, item.TagSet(AttrDepartments))
	assert.Equal(t, []string{"NLP", "Automation"}, item.TagSet(AttrAITypes))
	assert.Nil(t, item.TagSet("owners"))

	complexity, ok := item.EnumValue(AttrComplexity)
	assert.True(t, ok)
	assert.Equal(t, "Medium", complexity)

	effort, ok := item.EnumValue(AttrSetupEffort)
	assert.True(t, ok)
	assert.Equal(t, "Moderate", effort)

	_, ok = item.EnumValue("priority")
	assert.False(t, ok)
}

func TestSampleCatalog(t *testing.T) {
	items := SampleCatalog()
	require.NotEmpty(t, items)

	seen := map[string]bool{}
	kinds := map[ItemKind]int{}
	for _, item := range items {
		assert.NoError(t, item.Validate(), item.ID)
		assert.False(t, seen[item.ID], "duplicate id %s", item.ID)
		seen[item.ID] = true
		kinds[item.Kind]++
	}

	// every kind is represented
	assert.Positive(t, kinds[KindUseCase])
	assert.Positive(t, kinds[KindAgentTemplate])
	assert.Positive(t, kinds[KindCourse])
	assert.Positive(t, kinds[KindWorkflowTemplate])
}

func TestStaticSource(t *testing.T) {
	ctx := context.Background()
	source, err := NewStaticSource(SampleCatalog())
	require.NoError(t, err)

	t.Run("list returns all items", func(t *testing.T) {
		items, err := source.List(ctx)
		require.NoError(t, err)
		assert.Len(t, items, len(SampleCatalog()))
	})

	t.Run("get by id", func(t *testing.T) {
		item, err := source.Get(ctx, "uc-support-triage")
		require.NoError(t, err)
		assert.Equal(t, "Customer Support Ticket Triage", item.Name)
	})

	t.Run("get unknown id returns not found", func(t *testing.T) {
		_, err := source.Get(ctx, "uc-missing")
		assert.Error(t, err)
	})

	t.Run("by kind filters", func(t *testing.T) {
		courses, err := source.ByKind(ctx, KindCourse)
		require.NoError(t, err)
		require.NotEmpty(t, courses)
		for _, item := range courses {
			assert.Equal(t, KindCourse, item.Kind)
		}
	})

	t.Run("invalid item rejected at construction", func(t *testing.T) {
		_, err := NewStaticSource([]Item{{ID: "bad", Kind: "nope"}})
		assert.Error(t, err)
	})
}

func TestExtractTerms(t *testing.T) {
	item := Item{
		ID:          "uc-3",
		Kind:        KindUseCase,
		Name:        "AI-Powered Customer Support",
		Industries:  []string{" Financial  Services "},
		Departments: []string{"Customer Support"},
		AITypes:     []string{"NLP"},
		Complexity:  ComplexityLow,
		SetupEffort: SetupMinimal,
	}

	terms := ExtractTerms(item)
	assert.Contains(t, terms, "ai-powered customer support")
	assert.Contains(t, terms, "powered")
	assert.Contains(t, terms, "customer")
	assert.Contains(t, terms, "financial services", "tags are trimmed and lowercased")
	assert.Contains(t, terms, "nlp")
	assert.Contains(t, terms, "low")

	t.Run("non item record yields nothing", func(t *testing.T) {
		assert.Nil(t, ExtractTerms(Profile{UserID: "u1"}))
	})
}

func TestRecommend(t *testing.T) {
	scorer := matching.NewScorer()
	items := []Item{
		{
			ID: "match", Kind: KindUseCase,
			Industries: []string{"Finance"}, Departments: []string{"Operations"},
			AITypes:    []string{"Automation"},
			Complexity: ComplexityLow, SetupEffort: SetupMinimal,
		},
		{
			ID: "partial", Kind: KindCourse,
			Industries: []string{"Finance"}, Departments: []string{"Legal"},
			AITypes:    []string{"NLP"},
			Complexity: ComplexityHigh, SetupEffort: SetupModerate,
		},
		{
			ID: "unrelated", Kind: KindCourse,
			Industries: []string{"Retail"}, Departments: []string{"Marketing"},
			AITypes:    []string{"Generative AI"},
			Complexity: ComplexityHigh, SetupEffort: SetupSignificant,
		},
	}
	profile := Profile{
		UserID:     "u1",
		Industry:   "Finance",
		Department: "Operations",
		AITypes:    []string{"Automation"},
		Complexity: ComplexityLow,
	}

	t.Run("ranks by affinity and drops zero scores", func(t *testing.T) {
		scored := Recommend(scorer, profile, items, 10)
		require.Len(t, scored, 2)
		assert.Equal(t, "match", scored[0].Item.ID)
		assert.Equal(t, "partial", scored[1].Item.ID)
		assert.Greater(t, scored[0].Score, scored[1].Score)
	})

	t.Run("limit truncates", func(t *testing.T) {
		scored := Recommend(scorer, profile, items, 1)
		require.Len(t, scored, 1)
		assert.Equal(t, "match", scored[0].Item.ID)
	})

	t.Run("empty profile matches nothing", func(t *testing.T) {
		scored := Recommend(scorer, Profile{UserID: "u2"}, items, 10)
		assert.Empty(t, scored)
	})
}
