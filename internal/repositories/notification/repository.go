package notification

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

const columns = "id, user_id, type, title, body, read, created_at, updated_at, deleted_at"

// Repository handles notification persistence
type Repository struct {
	db     database.DB
	logger ectologger.Logger
}

// NewRepository creates a new notification repository
func NewRepository(db database.DB, logger ectologger.Logger) *Repository {
	return &Repository{
		db:     db,
		logger: logger,
	}
}

// Create creates a notification for the user
func (r *Repository) Create(ctx context.Context, userID string, req models.CreateNotificationRequest) (*models.Notification, error) {
	ctx, span := tracing.StartSpan(ctx, "notification.Repository.Create")
	defer span.End()

	now := time.Now().UTC()
	notification := &models.Notification{
		ID:        uuid.New().String(),
		UserID:    userID,
		Type:      req.Type,
		Title:     req.Title,
		Body:      req.Body,
		Read:      false,
		CreatedAt: now,
		UpdatedAt: now,
	}

	sb := sqlbuilder.PostgreSQL.NewInsertBuilder()
	sb.InsertInto("notifications")
	sb.Cols("id", "user_id", "type", "title", "body", "read", "created_at", "updated_at")
	sb.Values(notification.ID, notification.UserID, notification.Type, notification.Title, notification.Body, notification.Read, notification.CreatedAt, notification.UpdatedAt)

	query, args := sb.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.WithContext(ctx).WithError(err).Error("Failed to create notification")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to create notification")
	}

	return notification, nil
}

// List retrieves the user's notifications, newest first
func (r *Repository) List(ctx context.Context, userID string, unreadOnly bool, page, pageSize int) ([]models.Notification, int, error) {
	ctx, span := tracing.StartSpan(ctx, "notification.Repository.List")
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
	countSb.From("notifications")
	countWhere := []string{
		countSb.Equal("user_id", userID),
		countSb.IsNull("deleted_at"),
	}
	if unreadOnly {
		countWhere = append(countWhere, countSb.Equal("read", false))
	}
	countSb.Where(countWhere...)

	countQuery, countArgs := countSb.Build()
	var totalCount int
	if err := r.db.GetContext(ctx, &totalCount, countQuery, countArgs...); err != nil {
		r.logger.WithContext(ctx).WithError(err).Error("Failed to count notifications")
		return nil, 0, httperror.NewHTTPError(http.StatusInternalServerError, "failed to count notifications")
	}

	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	sb.Select(columns)
	sb.From("notifications")
	where := []string{
		sb.Equal("user_id", userID),
		sb.IsNull("deleted_at"),
	}
	if unreadOnly {
		where = append(where, sb.Equal("read", false))
	}
	sb.Where(where...)
	sb.OrderBy("created_at DESC")
	sb.Limit(pageSize).Offset(offset)

	query, args := sb.Build()
	var notifications []models.Notification
	if err := r.db.SelectContext(ctx, &notifications, query, args...); err != nil {
		r.logger.WithContext(ctx).WithError(err).Error("Failed to list notifications")
		return nil, 0, httperror.NewHTTPError(http.StatusInternalServerError, "failed to list notifications")
	}

	return notifications, totalCount, nil
}

// MarkRead marks a single notification as read
func (r *Repository) MarkRead(ctx context.Context, userID string, id string) error {
	ctx, span := tracing.StartSpan(ctx, "notification.Repository.MarkRead")
	defer span.End()

	sb := sqlbuilder.PostgreSQL.NewUpdateBuilder()
	sb.Update("notifications")
	sb.Set(
		sb.Assign("read", true),
		sb.Assign("updated_at", time.Now().UTC()),
	)
	sb.Where(
		sb.Equal("id", id),
		sb.Equal("user_id", userID),
		sb.IsNull("deleted_at"),
	)

	query, args := sb.Build()
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error("Failed to mark notification read")
		return httperror.NewHTTPError(http.StatusInternalServerError, "failed to mark notification read")
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return httperror.NewHTTPError(http.StatusNotFound, fmt.Sprintf("notification %s not found", id))
	}
	return nil
}

// MarkAllRead marks every unread notification for the user as read
func (r *Repository) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	ctx, span := tracing.StartSpan(ctx, "notification.Repository.MarkAllRead")
	defer span.End()

	sb := sqlbuilder.PostgreSQL.NewUpdateBuilder()
	sb.Update("notifications")
	sb.Set(
		sb.Assign("read", true),
		sb.Assign("updated_at", time.Now().UTC()),
	)
	sb.Where(
		sb.Equal("user_id", userID),
		sb.Equal("read", false),
		sb.IsNull("deleted_at"),
	)

	query, args := sb.Build()
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error("Failed to mark notifications read")
		return 0, httperror.NewHTTPError(http.StatusInternalServerError, "failed to mark notifications read")
	}

	rows, _ := result.RowsAffected()
	return rows, nil
}

// Delete soft deletes a notification
func (r *Repository) Delete(ctx context.Context, userID string, id string) error {
	ctx, span := tracing.StartSpan(ctx, "notification.Repository.Delete")
	defer span.End()

	now := time.Now().UTC()
	sb := sqlbuilder.PostgreSQL.NewUpdateBuilder()
	sb.Update("notifications")
	sb.Set(sb.Assign("deleted_at", now))
	sb.Where(
		sb.Equal("id", id),
		sb.Equal("user_id", userID),
		sb.IsNull("deleted_at"),
	)

	query, args := sb.Build()
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error("Failed to delete notification")
		return httperror.NewHTTPError(http.StatusInternalServerError, "failed to delete notification")
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return httperror.NewHTTPError(http.StatusNotFound, fmt.Sprintf("notification %s not found", id))
	}
	return nil
}
