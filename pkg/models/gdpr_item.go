package models

import "time"

// GDPRStatus is the progress state of a compliance tracker item
type GDPRStatus string

const (
	GDPRStatusNotStarted GDPRStatus = "not_started"
	GDPRStatusInProgress GDPRStatus = "in_progress"
	GDPRStatusCompleted  GDPRStatus = "completed"
)

// ValidGDPRStatus reports whether s is a known status value.
func ValidGDPRStatus(s GDPRStatus) bool {
	switch s {
	case GDPRStatusNotStarted, GDPRStatusInProgress, GDPRStatusCompleted:
		return true
	}
	return false
}

// GDPRItem is a single requirement on a user's GDPR compliance tracker
type GDPRItem struct {
	ID          string     `json:"id" db:"id"`
	UserID      string     `json:"user_id" db:"user_id"`
	Requirement string     `json:"requirement" db:"requirement"`
	Category    string     `json:"category" db:"category"`
	Status      GDPRStatus `json:"status" db:"status"`
	Notes       *string    `json:"notes,omitempty" db:"notes"`
	DueDate     *time.Time `json:"due_date,omitempty" db:"due_date"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty" db:"deleted_at"`
}

// CreateGDPRItemRequest is the request to create a compliance item
type CreateGDPRItemRequest struct {
	Requirement string     `json:"requirement" validate:"required"`
	Category    string     `json:"category" validate:"required"`
	Status      GDPRStatus `json:"status,omitempty"`
	Notes       *string    `json:"notes,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}

// UpdateGDPRItemRequest is the request to update a compliance item
type UpdateGDPRItemRequest struct {
	Requirement *string     `json:"requirement,omitempty"`
	Category    *string     `json:"category,omitempty"`
	Status      *GDPRStatus `json:"status,omitempty"`
	Notes       *string     `json:"notes,omitempty"`
	DueDate     *time.Time  `json:"due_date,omitempty"`
}
