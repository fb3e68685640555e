package roadmapitem

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

const columns = "id, user_id, title, description, board_column, position, effort, impact, catalog_id, created_at, updated_at, deleted_at"

// Repository handles roadmap board item persistence
type Repository struct {
	db     database.DB
	logger ectologger.Logger
}

// NewRepository creates a new roadmap item repository
func NewRepository(db database.DB, logger ectologger.Logger) *Repository {
	return &Repository{
		db:     db,
		logger: logger,
	}
}

// Create adds a new item to the user's roadmap board
func (r *Repository) Create(ctx context.Context, userID string, req models.CreateRoadmapItemRequest) (*models.RoadmapItem, error) {
	ctx, span := tracing.StartSpan(ctx, "roadmapitem.Repository.Create")
	defer span.End()

	log := r.logger.WithContext(ctx).WithFields(map[string]any{
		"method":  "Create",
		"user_id": userID,
		"title":   req.Title,
	})

	column := req.Column
	if column == "" {
		column = models.RoadmapColumnBacklog
	}
	if !models.ValidRoadmapColumn(column) {
		return nil, httperror.NewHTTPErrorf(http.StatusBadRequest, "invalid column %q", column)
	}
	effort := req.Effort
	if effort == "" {
		effort = models.EffortMedium
	}
	impact := req.Impact
	if impact == "" {
		impact = models.EffortMedium
	}
	if !models.ValidEffortLevel(effort) || !models.ValidEffortLevel(impact) {
		return nil, httperror.NewHTTPError(http.StatusBadRequest, "invalid effort or impact level")
	}

	now := time.Now().UTC()
	item := &models.RoadmapItem{
		ID:          uuid.New().String(),
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Column:      column,
		Position:    req.Position,
		Effort:      effort,
		Impact:      impact,
		CatalogID:   req.CatalogID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	sb := sqlbuilder.PostgreSQL.NewInsertBuilder()
	sb.InsertInto("roadmap_items")
	sb.Cols("id", "user_id", "title", "description", "board_column", "position", "effort", "impact", "catalog_id", "created_at", "updated_at")
	sb.Values(item.ID, item.UserID, item.Title, item.Description, item.Column, item.Position, item.Effort, item.Impact, item.CatalogID, item.CreatedAt, item.UpdatedAt)

	query, args := sb.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.WithError(err).Error("Failed to create roadmap item")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to create roadmap item")
	}

	log.WithFields(map[string]any{"id": item.ID}).Info("Created roadmap item")
	return item, nil
}

// Get retrieves a roadmap item by ID
func (r *Repository) Get(ctx context.Context, userID string, id string) (*models.RoadmapItem, error) {
	ctx, span := tracing.StartSpan(ctx, "roadmapitem.Repository.Get")
	defer span.End()

	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	sb.Select(columns)
	sb.From("roadmap_items")
	sb.Where(
		sb.Equal("id", id),
		sb.Equal("user_id", userID),
		sb.IsNull("deleted_at"),
	)

	query, args := sb.Build()
	var item models.RoadmapItem
	if err := r.db.GetContext(ctx, &item, query, args...); err != nil {
		if err.Error() == "sql: no rows in result set" {
			return nil, httperror.NewHTTPError(http.StatusNotFound, fmt.Sprintf("roadmap item %s not found", id))
		}
		r.logger.WithContext(ctx).WithError(err).Error("Failed to get roadmap item")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to get roadmap item")
	}

	return &item, nil
}

// List retrieves the user's board, ordered by column then position
func (r *Repository) List(ctx context.Context, userID string, column *models.RoadmapColumn) ([]models.RoadmapItem, error) {
	ctx, span := tracing.StartSpan(ctx, "roadmapitem.Repository.List")
	defer span.End()

	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	sb.Select(columns)
	sb.From("roadmap_items")
	where := []string{
		sb.Equal("user_id", userID),
		sb.IsNull("deleted_at"),
	}
	if column != nil {
		where = append(where, sb.Equal("board_column", *column))
	}
	sb.Where(where...)
	sb.OrderBy("board_column ASC", "position ASC", "created_at ASC")

	query, args := sb.Build()
	var items []models.RoadmapItem
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		r.logger.WithContext(ctx).WithError(err).Error("Failed to list roadmap items")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to list roadmap items")
	}

	return items, nil
}

// Update updates a roadmap item, including column moves
func (r *Repository) Update(ctx context.Context, userID string, id string, req models.UpdateRoadmapItemRequest) (*models.RoadmapItem, error) {
	ctx, span := tracing.StartSpan(ctx, "roadmapitem.Repository.Update")
	defer span.End()

	existing, err := r.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		existing.Title = *req.Title
	}
	if req.Description != nil {
		existing.Description = req.Description
	}
	if req.Column != nil {
		if !models.ValidRoadmapColumn(*req.Column) {
			return nil, httperror.NewHTTPErrorf(http.StatusBadRequest, "invalid column %q", *req.Column)
		}
		existing.Column = *req.Column
	}
	if req.Position != nil {
		existing.Position = *req.Position
	}
	if req.Effort != nil {
		if !models.ValidEffortLevel(*req.Effort) {
			return nil, httperror.NewHTTPErrorf(http.StatusBadRequest, "invalid effort %q", *req.Effort)
		}
		existing.Effort = *req.Effort
	}
	if req.Impact != nil {
		if !models.ValidEffortLevel(*req.Impact) {
			return nil, httperror.NewHTTPErrorf(http.StatusBadRequest, "invalid impact %q", *req.Impact)
		}
		existing.Impact = *req.Impact
	}
	existing.UpdatedAt = time.Now().UTC()

	sb := sqlbuilder.PostgreSQL.NewUpdateBuilder()
	sb.Update("roadmap_items")
	sb.Set(
		sb.Assign("title", existing.Title),
		sb.Assign("description", existing.Description),
		sb.Assign("board_column", existing.Column),
		sb.Assign("position", existing.Position),
		sb.Assign("effort", existing.Effort),
		sb.Assign("impact", existing.Impact),
		sb.Assign("updated_at", existing.UpdatedAt),
	)
	sb.Where(
		sb.Equal("id", id),
		sb.Equal("user_id", userID),
	)

	query, args := sb.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.WithContext(ctx).WithError(err).Error("Failed to update roadmap item")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to update roadmap item")
	}

	return existing, nil
}

// Delete soft deletes a roadmap item
func (r *Repository) Delete(ctx context.Context, userID string, id string) error {
	ctx, span := tracing.StartSpan(ctx, "roadmapitem.Repository.Delete")
	defer span.End()

	now := time.Now().UTC()
	sb := sqlbuilder.PostgreSQL.NewUpdateBuilder()
	sb.Update("roadmap_items")
	sb.Set(sb.Assign("deleted_at", now))
	sb.Where(
		sb.Equal("id", id),
		sb.Equal("user_id", userID),
		sb.IsNull("deleted_at"),
	)

	query, args := sb.Build()
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error("Failed to delete roadmap item")
		return httperror.NewHTTPError(http.StatusInternalServerError, "failed to delete roadmap item")
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return httperror.NewHTTPError(http.StatusNotFound, fmt.Sprintf("roadmap item %s not found", id))
	}

	r.logger.WithContext(ctx).WithFields(map[string]any{"id": id}).Info("Deleted roadmap item")
	return nil
}
