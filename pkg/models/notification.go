package models

import "time"

// Notification is an in-app message shown to a user
type Notification struct {
	ID        string     `json:"id" db:"id"`
	UserID    string     `json:"user_id" db:"user_id"`
	Type      string     `json:"type" db:"type"`
	Title     string     `json:"title" db:"title"`
	Body      string     `json:"body" db:"body"`
	Read      bool       `json:"read" db:"read"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty" db:"deleted_at"`
}

// CreateNotificationRequest is the request to create a notification
type CreateNotificationRequest struct {
	Type  string `json:"type" validate:"required"`
	Title string `json:"title" validate:"required"`
	Body  string `json:"body"`
}
