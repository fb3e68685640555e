package models

import (
	"time"

	"github.com/pathwise/compass/pkg/database"
)

// PreferenceData is the stored shape of a user's settings document
type PreferenceData struct {
	Industry           string   `json:"industry,omitempty"`
	Department         string   `json:"department,omitempty"`
	PreferredAITypes   []string `json:"preferred_ai_types,omitempty"`
	WeeklyDigest       bool     `json:"weekly_digest"`
	ProductUpdates     bool     `json:"product_updates"`
	OnboardingComplete bool     `json:"onboarding_complete"`
}

// Preference is the per-user settings row, one per user
type Preference struct {
	ID        string                         `json:"id" db:"id"`
	UserID    string                         `json:"user_id" db:"user_id"`
	Data      database.JSONB[PreferenceData] `json:"data" db:"data"`
	CreatedAt time.Time                      `json:"created_at" db:"created_at"`
	UpdatedAt time.Time                      `json:"updated_at" db:"updated_at"`
}

// UpdatePreferenceRequest replaces the user's settings document
type UpdatePreferenceRequest struct {
	Data PreferenceData `json:"data"`
}
