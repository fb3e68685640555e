package catalog

import (
	"fmt"

	"github.com/pathwise/compass/pkg/matching"
)

// ItemKind is the closed set of catalog entry types
type ItemKind string

const (
	KindUseCase          ItemKind = "use_case"
	KindAgentTemplate    ItemKind = "agent_template"
	KindCourse           ItemKind = "course"
	KindWorkflowTemplate ItemKind = "workflow_template"
)

// Complexity is the implementation complexity of a catalog item
type Complexity string

const (
	ComplexityLow    Complexity = "Low"
	ComplexityMedium Complexity = "Medium"
	ComplexityHigh   Complexity = "High"
)

// SetupEffort is the rollout effort of a catalog item
type SetupEffort string

const (
	SetupMinimal     SetupEffort = "Minimal"
	SetupModerate    SetupEffort = "Moderate"
	SetupSignificant SetupEffort = "Significant"
)

// Attribute names used for similarity scoring
const (
	AttrIndustries  = "industries"
	AttrDepartments = "departments"
	AttrAITypes     = "ai_types"
	AttrComplexity  = "complexity"
	AttrSetupEffort = "setup_effort"
)

// Item is a single catalog entry. All fields are fixed at construction,
// there is no open attribute bag.
type Item struct {
	ID          string      `json:"id"`
	Kind        ItemKind    `json:"kind"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Industries  []string    `json:"industries"`
	Departments []string    `json:"departments"`
	AITypes     []string    `json:"ai_types"`
	Complexity  Complexity  `json:"complexity"`
	SetupEffort SetupEffort `json:"setup_effort"`
}

// Validate checks the item's enum fields against their closed sets.
func (i Item) Validate() error {
	switch i.Kind {
	case KindUseCase, KindAgentTemplate, KindCourse, KindWorkflowTemplate:
	default:
		return fmt.Errorf("catalog item %s: unknown kind %q", i.ID, i.Kind)
	}
	switch i.Complexity {
	case ComplexityLow, ComplexityMedium, ComplexityHigh:
	default:
		return fmt.Errorf("catalog item %s: unknown complexity %q", i.ID, i.Complexity)
	}
	switch i.SetupEffort {
	case SetupMinimal, SetupModerate, SetupSignificant:
	default:
		return fmt.Errorf("catalog item %s: unknown setup effort %q", i.ID, i.SetupEffort)
	}
	return nil
}

// RecordID implements matching.Record
func (i Item) RecordID() string {
	return i.ID
}

// TagSet implements matching.Record
func (i Item) TagSet(name string) []string {
	switch name {
	case AttrIndustries:
		return i.Industries
	case AttrDepartments:
		return i.Departments
	case AttrAITypes:
		return i.AITypes
	}
	return nil
}

// EnumValue implements matching.Record
func (i Item) EnumValue(name string) (string, bool) {
	switch name {
	case AttrComplexity:
		return string(i.Complexity), true
	case AttrSetupEffort:
		return string(i.SetupEffort), true
	}
	return "", false
}

var _ matching.Record = Item{}

// Records converts a slice of items to the scoring interface.
func Records(items []Item) []matching.Record {
	records := make([]matching.Record, 0, len(items))
	for _, item := range items {
		records = append(records, item)
	}
	return records
}
