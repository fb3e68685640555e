package catalog

import (
	"sort"

	"github.com/pathwise/compass/pkg/matching"
)

// Profile captures what we know about a user for ranking catalog items
type Profile struct {
	UserID     string
	Industry   string
	Department string
	AITypes    []string
	Complexity Complexity
}

// ProfileWeights are the attribute weights used for personalized
// recommendations. Heavier on industry and department than the
// item-to-item defaults since those come straight from the user.
func ProfileWeights() matching.Weights {
	return matching.Weights{
		TagSets: map[string]float64{
			AttrIndustries:  0.35,
			AttrDepartments: 0.35,
			AttrAITypes:     0.15,
		},
		Enums: map[string]float64{
			AttrComplexity: 0.15,
		},
	}
}

// RecordID implements matching.Record. The prefix keeps a profile from
// ever colliding with a catalog item ID.
func (p Profile) RecordID() string {
	return "profile:" + p.UserID
}

// TagSet implements matching.Record
func (p Profile) TagSet(name string) []string {
	switch name {
	case AttrIndustries:
		if p.Industry == "" {
			return nil
		}
		return []string{p.Industry}
	case AttrDepartments:
		if p.Department == "" {
			return nil
		}
		return []string{p.Department}
	case AttrAITypes:
		return p.AITypes
	}
	return nil
}

// EnumValue implements matching.Record
func (p Profile) EnumValue(name string) (string, bool) {
	if name == AttrComplexity && p.Complexity != "" {
		return string(p.Complexity), true
	}
	return "", false
}

var _ matching.Record = Profile{}

// ScoredItem is a catalog item with its personalization score
type ScoredItem struct {
	Item  Item    `json:"item"`
	Score float64 `json:"score"`
}

// Recommend ranks catalog items against the profile, dropping items
// with no affinity at all. Ties keep catalog order.
func Recommend(scorer *matching.Scorer, profile Profile, items []Item, limit int) []ScoredItem {
	if limit <= 0 {
		limit = matching.DefaultRelatedLimit
	}

	weights := ProfileWeights()
	scored := make([]ScoredItem, 0, len(items))
	for _, item := range items {
		score := scorer.Similarity(profile, item, weights)
		if score <= 0 {
			continue
		}
		scored = append(scored, ScoredItem{Item: item, Score: score})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > limit {
		scored = scored[:limit]
	}
	return scored
}
