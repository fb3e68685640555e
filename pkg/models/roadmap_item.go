package models

import "time"

// RoadmapColumn is the kanban column a roadmap item sits in
type RoadmapColumn string

const (
	RoadmapColumnBacklog    RoadmapColumn = "backlog"
	RoadmapColumnPlanned    RoadmapColumn = "planned"
	RoadmapColumnInProgress RoadmapColumn = "in_progress"
	RoadmapColumnDone       RoadmapColumn = "done"
)

// ValidRoadmapColumn reports whether c is a known column value.
func ValidRoadmapColumn(c RoadmapColumn) bool {
	switch c {
	case RoadmapColumnBacklog, RoadmapColumnPlanned, RoadmapColumnInProgress, RoadmapColumnDone:
		return true
	}
	return false
}

// EffortLevel is a coarse sizing estimate for a roadmap item
type EffortLevel string

const (
	EffortLow    EffortLevel = "low"
	EffortMedium EffortLevel = "medium"
	EffortHigh   EffortLevel = "high"
)

// ValidEffortLevel reports whether e is a known effort value.
func ValidEffortLevel(e EffortLevel) bool {
	switch e {
	case EffortLow, EffortMedium, EffortHigh:
		return true
	}
	return false
}

// RoadmapItem is an initiative on a user's AI adoption roadmap board
type RoadmapItem struct {
	ID          string        `json:"id" db:"id"`
	UserID      string        `json:"user_id" db:"user_id"`
	Title       string        `json:"title" db:"title"`
	Description *string       `json:"description,omitempty" db:"description"`
	Column      RoadmapColumn `json:"column" db:"board_column"`
	Position    int           `json:"position" db:"position"`
	Effort      EffortLevel   `json:"effort" db:"effort"`
	Impact      EffortLevel   `json:"impact" db:"impact"`
	CatalogID   *string       `json:"catalog_id,omitempty" db:"catalog_id"`
	CreatedAt   time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at" db:"updated_at"`
	DeletedAt   *time.Time    `json:"deleted_at,omitempty" db:"deleted_at"`
}

// CreateRoadmapItemRequest is the request to add an item to the board
type CreateRoadmapItemRequest struct {
	Title       string        `json:"title" validate:"required"`
	Description *string       `json:"description,omitempty"`
	Column      RoadmapColumn `json:"column,omitempty"`
	Position    int           `json:"position"`
	Effort      EffortLevel   `json:"effort,omitempty"`
	Impact      EffortLevel   `json:"impact,omitempty"`
	CatalogID   *string       `json:"catalog_id,omitempty"`
}

// UpdateRoadmapItemRequest is the request to update a board item,
// including moving it between columns
type UpdateRoadmapItemRequest struct {
	Title       *string        `json:"title,omitempty"`
	Description *string        `json:"description,omitempty"`
	Column      *RoadmapColumn `json:"column,omitempty"`
	Position    *int           `json:"position,omitempty"`
	Effort      *EffortLevel   `json:"effort,omitempty"`
	Impact      *EffortLevel   `json:"impact,omitempty"`
}
