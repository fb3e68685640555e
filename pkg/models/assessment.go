package models

import (
	"time"

	"github.com/pathwise/compass/pkg/database"
)

// AssessmentStatus is the lifecycle state of a submitted questionnaire
type AssessmentStatus string

const (
	AssessmentStatusSubmitted AssessmentStatus = "submitted"
	AssessmentStatusScored    AssessmentStatus = "scored"
)

// CategoryScore is a 0..100 readiness score for one assessment category
type CategoryScore struct {
	Category string  `json:"category"`
	Score    float64 `json:"score"`
}

// AssessmentScores is the computed result stored alongside a submission
type AssessmentScores struct {
	Overall    float64         `json:"overall"`
	Band       string          `json:"band"`
	Categories []CategoryScore `json:"categories"`
}

// Assessment is a user's readiness questionnaire submission with its
// computed scores
type Assessment struct {
	ID        string                            `json:"id" db:"id"`
	UserID    string                            `json:"user_id" db:"user_id"`
	Answers   database.JSONB[map[string]string] `json:"answers" db:"answers"`
	Scores    database.JSONB[AssessmentScores]  `json:"scores" db:"scores"`
	Status    AssessmentStatus                  `json:"status" db:"status"`
	CreatedAt time.Time                         `json:"created_at" db:"created_at"`
	UpdatedAt time.Time                         `json:"updated_at" db:"updated_at"`
	DeletedAt *time.Time                        `json:"deleted_at,omitempty" db:"deleted_at"`
}

// SubmitAssessmentRequest carries the questionnaire answers keyed by
// question ID
type SubmitAssessmentRequest struct {
	Answers map[string]string `json:"answers" validate:"required,min=1"`
}
