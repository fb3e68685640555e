package gdpritem

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

const columns = "id, user_id, requirement, category, status, notes, due_date, created_at, updated_at, deleted_at"

// Repository handles GDPR compliance item persistence
type Repository struct {
	db     database.DB
	logger ectologger.Logger
}

// NewRepository creates a new GDPR item repository
func NewRepository(db database.DB, logger ectologger.Logger) *Repository {
	return &Repository{
		db:     db,
		logger: logger,
	}
}

// Create creates a new compliance item for the user
func (r *Repository) Create(ctx context.Context, userID string, req models.CreateGDPRItemRequest) (*models.GDPRItem, error) {
	ctx, span := tracing.StartSpan(ctx, "gdpritem.Repository.Create")
	defer span.End()

	log := r.logger.WithContext(ctx).WithFields(map[string]any{
		"method":      "Create",
		"user_id":     userID,
		"requirement": req.Requirement,
	})

	status := req.Status
	if status == "" {
		status = models.GDPRStatusNotStarted
	}
	if !models.ValidGDPRStatus(status) {
		return nil, httperror.NewHTTPErrorf(http.StatusBadRequest, "invalid status %q", status)
	}

	now := time.Now().UTC()
	item := &models.GDPRItem{
		ID:          uuid.New().String(),
		UserID:      userID,
		Requirement: req.Requirement,
		Category:    req.Category,
		Status:      status,
		Notes:       req.Notes,
		DueDate:     req.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	sb := sqlbuilder.PostgreSQL.NewInsertBuilder()
	sb.InsertInto("gdpr_items")
	sb.Cols("id", "user_id", "requirement", "category", "status", "notes", "due_date", "created_at", "updated_at")
	sb.Values(item.ID, item.UserID, item.Requirement, item.Category, item.Status, item.Notes, item.DueDate, item.CreatedAt, item.UpdatedAt)

	query, args := sb.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.WithError(err).Error("Failed to create GDPR item")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to create GDPR item")
	}

	log.WithFields(map[string]any{"id": item.ID}).Info("Created GDPR item")
	return item, nil
}

// Get retrieves a compliance item by ID
func (r *Repository) Get(ctx context.Context, userID string, id string) (*models.GDPRItem, error) {
	ctx, span := tracing.StartSpan(ctx, "gdpritem.Repository.Get")
	defer span.End()

	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	sb.Select(columns)
	sb.From("gdpr_items")
	sb.Where(
		sb.Equal("id", id),
		sb.Equal("user_id", userID),
		sb.IsNull("deleted_at"),
	)

	query, args := sb.Build()
	var item models.GDPRItem
	if err := r.db.GetContext(ctx, &item, query, args...); err != nil {
		if err.Error() == "sql: no rows in result set" {
			return nil, httperror.NewHTTPError(http.StatusNotFound, fmt.Sprintf("GDPR item %s not found", id))
		}
		r.logger.WithContext(ctx).WithError(err).Error("Failed to get GDPR item")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to get GDPR item")
	}

	return &item, nil
}

// List retrieves the user's compliance items, optionally filtered by status
func (r *Repository) List(ctx context.Context, userID string, status *models.GDPRStatus, page, pageSize int) ([]models.GDPRItem, int, error) {
	ctx, span := tracing.StartSpan(ctx, "gdpritem.Repository.List")
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
	countSb.From("gdpr_items")
	countWhere := []string{
		countSb.Equal("user_id", userID),
		countSb.IsNull("deleted_at"),
	}
	if status != nil {
		countWhere = append(countWhere, countSb.Equal("status", *status))
	}
	countSb.Where(countWhere...)

	countQuery, countArgs := countSb.Build()
	var totalCount int
	if err := r.db.GetContext(ctx, &totalCount, countQuery, countArgs...); err != nil {
		r.logger.WithContext(ctx).WithError(err).Error("Failed to count GDPR items")
		return nil, 0, httperror.NewHTTPError(http.StatusInternalServerError, "failed to count GDPR items")
	}

	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	sb.Select(columns)
	sb.From("gdpr_items")
	where := []string{
		sb.Equal("user_id", userID),
		sb.IsNull("deleted_at"),
	}
	if status != nil {
		where = append(where, sb.Equal("status", *status))
	}
	sb.Where(where...)
	sb.OrderBy("created_at ASC")
	sb.Limit(pageSize).Offset(offset)

	query, args := sb.Build()
	var items []models.GDPRItem
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		r.logger.WithContext(ctx).WithError(err).Error("Failed to list GDPR items")
		return nil, 0, httperror.NewHTTPError(http.StatusInternalServerError, "failed to list GDPR items")
	}

	return items, totalCount, nil
}

// Update updates a compliance item
func (r *Repository) Update(ctx context.Context, userID string, id string, req models.UpdateGDPRItemRequest) (*models.GDPRItem, error) {
	ctx, span := tracing.StartSpan(ctx, "gdpritem.Repository.Update")
	defer span.End()

	existing, err := r.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if req.Requirement != nil {
		existing.Requirement = *req.Requirement
	}
	if req.Category != nil {
		existing.Category = *req.Category
	}
	if req.Status != nil {
		if !models.ValidGDPRStatus(*req.Status) {
			return nil, httperror.NewHTTPErrorf(http.StatusBadRequest, "invalid status %q", *req.Status)
		}
		existing.Status = *req.Status
	}
	if req.Notes != nil {
		existing.Notes = req.Notes
	}
	if req.DueDate != nil {
		existing.DueDate = req.DueDate
	}
	existing.UpdatedAt = time.Now().UTC()

	sb := sqlbuilder.PostgreSQL.NewUpdateBuilder()
	sb.Update("gdpr_items")
	sb.Set(
		sb.Assign("requirement", existing.Requirement),
		sb.Assign("category", existing.Category),
		sb.Assign("status", existing.Status),
		sb.Assign("notes", existing.Notes),
		sb.Assign("due_date", existing.DueDate),
		sb.Assign("updated_at", existing.UpdatedAt),
	)
	sb.Where(
		sb.Equal("id", id),
		sb.Equal("user_id", userID),
	)

	query, args := sb.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.WithContext(ctx).WithError(err).Error("Failed to update GDPR item")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to update GDPR item")
	}

	return existing, nil
}

// Delete soft deletes a compliance item
func (r *Repository) Delete(ctx context.Context, userID string, id string) error {
	ctx, span := tracing.StartSpan(ctx, "gdpritem.Repository.Delete")
	defer span.End()

	now := time.Now().UTC()
	sb := sqlbuilder.PostgreSQL.NewUpdateBuilder()
	sb.Update("gdpr_items")
	sb.Set(sb.Assign("deleted_at", now))
	sb.Where(
		sb.Equal("id", id),
		sb.Equal("user_id", userID),
		sb.IsNull("deleted_at"),
	)

	query, args := sb.Build()
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error("Failed to delete GDPR item")
		return httperror.NewHTTPError(http.StatusInternalServerError, "failed to delete GDPR item")
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return httperror.NewHTTPError(http.StatusNotFound, fmt.Sprintf("GDPR item %s not found", id))
	}

	r.logger.WithContext(ctx).WithFields(map[string]any{"id": id}).Info("Deleted GDPR item")
	return nil
}
