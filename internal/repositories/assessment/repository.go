package assessment

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectologger"
	"github.com/google/uuid"
	"github.com/huandu/go-sqlbuilder"

	"github.com/pathwise/compass/pkg/database"
	"github.com/pathwise/compass/pkg/models"
	"github.com/pathwise/compass/pkg/tracing"
)

const columns = "id, user_id, answers, scores, status, created_at, updated_at, deleted_at"

// Repository handles assessment submission persistence
type Repository struct {
	db     database.DB
	logger ectologger.Logger
}

// NewRepository creates a new assessment repository
func NewRepository(db database.DB, logger ectologger.Logger) *Repository {
	return &Repository{
		db:     db,
		logger: logger,
	}
}

// Create stores a new submission with its answers
func (r *Repository) Create(ctx context.Context, userID string, answers map[string]string) (*models.Assessment, error) {
	ctx, span := tracing.StartSpan(ctx, "assessment.Repository.Create")
	defer span.End()

	log := r.logger.WithContext(ctx).WithFields(map[string]any{
		"method":  "Create",
		"user_id": userID,
	})

	now := time.Now().UTC()
	submission := &models.Assessment{
		ID:        uuid.New().String(),
		UserID:    userID,
		Answers:   database.NewJSONB(answers),
		Status:    models.AssessmentStatusSubmitted,
		CreatedAt: now,
		UpdatedAt: now,
	}

	sb := sqlbuilder.PostgreSQL.NewInsertBuilder()
	sb.InsertInto("assessments")
	sb.Cols("id", "user_id", "answers", "scores", "status", "created_at", "updated_at")
	sb.Values(submission.ID, submission.UserID, submission.Answers, submission.Scores, submission.Status, submission.CreatedAt, submission.UpdatedAt)

	query, args := sb.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.WithError(err).Error("Failed to create assessment")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to create assessment")
	}

	log.WithFields(map[string]any{"id": submission.ID}).Info("Created assessment")
	return submission, nil
}

// SetScores records the computed scores and marks the submission scored
func (r *Repository) SetScores(ctx context.Context, userID string, id string, scores models.AssessmentScores) (*models.Assessment, error) {
	ctx, span := tracing.StartSpan(ctx, "assessment.Repository.SetScores")
	defer span.End()

	now := time.Now().UTC()
	sb := sqlbuilder.PostgreSQL.NewUpdateBuilder()
	sb.Update("assessments")
	sb.Set(
		sb.Assign("scores", database.NewJSONB(scores)),
		sb.Assign("status", models.AssessmentStatusScored),
		sb.Assign("updated_at", now),
	)
	sb.Where(
		sb.Equal("id", id),
		sb.Equal("user_id", userID),
		sb.IsNull("deleted_at"),
	)

	query, args := sb.Build()
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error("Failed to store assessment scores")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to store assessment scores")
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return nil, httperror.NewHTTPError(http.StatusNotFound, fmt.Sprintf("assessment %s not found", id))
	}

	return r.Get(ctx, userID, id)
}

// Get retrieves a submission by ID
func (r *Repository) Get(ctx context.Context, userID string, id string) (*models.Assessment, error) {
	ctx, span := tracing.StartSpan(ctx, "assessment.Repository.Get")
	defer span.End()

	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	sb.Select(columns)
	sb.From("assessments")
	sb.Where(
		sb.Equal("id", id),
		sb.Equal("user_id", userID),
		sb.IsNull("deleted_at"),
	)

	query, args := sb.Build()
	var submission models.Assessment
	if err := r.db.GetContext(ctx, &submission, query, args...); err != nil {
		if err.Error() == "sql: no rows in result set" {
			return nil, httperror.NewHTTPError(http.StatusNotFound, fmt.Sprintf("assessment %s not found", id))
		}
		r.logger.WithContext(ctx).WithError(err).Error("Failed to get assessment")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to get assessment")
	}

	return &submission, nil
}

// Latest retrieves the user's most recent submission
func (r *Repository) Latest(ctx context.Context, userID string) (*models.Assessment, error) {
	ctx, span := tracing.StartSpan(ctx, "assessment.Repository.Latest")
	defer span.End()

	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	sb.Select(columns)
	sb.From("assessments")
	sb.Where(
		sb.Equal("user_id", userID),
		sb.IsNull("deleted_at"),
	)
	sb.OrderBy("created_at DESC")
	sb.Limit(1)

	query, args := sb.Build()
	var submission models.Assessment
	if err := r.db.GetContext(ctx, &submission, query, args...); err != nil {
		if err.Error() == "sql: no rows in result set" {
			return nil, httperror.NewHTTPError(http.StatusNotFound, "no assessments found")
		}
		r.logger.WithContext(ctx).WithError(err).Error("Failed to get latest assessment")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to get latest assessment")
	}

	return &submission, nil
}

// List retrieves the user's submissions, newest first
func (r *Repository) List(ctx context.Context, userID string, page, pageSize int) ([]models.Assessment, int, error) {
	ctx, span := tracing.StartSpan(ctx, "assessment.Repository.List")
	defer span.End()

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	countSb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	countSb.Select("COUNT(*)")
	countSb.From("assessments")
	countSb.Where(
		countSb.Equal("user_id", userID),
		countSb.IsNull("deleted_at"),
	)

	countQuery, countArgs := countSb.Build()
	var totalCount int
	if err := r.db.GetContext(ctx, &totalCount, countQuery, countArgs...); err != nil {
		r.logger.WithContext(ctx).WithError(err).Error("Failed to count assessments")
		return nil, 0, httperror.NewHTTPError(http.StatusInternalServerError, "failed to count assessments")
	}

	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	sb.Select(columns)
	sb.From("assessments")
	sb.Where(
		sb.Equal("user_id", userID),
		sb.IsNull("deleted_at"),
	)
	sb.OrderBy("created_at DESC")
	sb.Limit(pageSize).Offset(offset)

	query, args := sb.Build()
	var submissions []models.Assessment
	if err := r.db.SelectContext(ctx, &submissions, query, args...); err != nil {
		r.logger.WithContext(ctx).WithError(err).Error("Failed to list assessments")
		return nil, 0, httperror.NewHTTPError(http.StatusInternalServerError, "failed to list assessments")
	}

	return submissions, totalCount, nil
}
