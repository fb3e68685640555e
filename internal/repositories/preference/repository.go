package preference

import (
	"context"
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

const columns = "id, user_id, data, created_at, updated_at"

// Repository handles user preference persistence. One row per user,
// written with an upsert.
type Repository struct {
	db     database.DB
	logger ectologger.Logger
}

// NewRepository creates a new preference repository
func NewRepository(db database.DB, logger ectologger.Logger) *Repository {
	return &Repository{
		db:     db,
		logger: logger,
	}
}

// Get retrieves the user's preferences. Returns defaults when the user
// has never saved any.
func (r *Repository) Get(ctx context.Context, userID string) (*models.Preference, error) {
	ctx, span := tracing.StartSpan(ctx, "preference.Repository.Get")
	defer span.End()

	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	sb.Select(columns)
	sb.From("preferences")
	sb.Where(sb.Equal("user_id", userID))

	query, args := sb.Build()
	var preference models.Preference
	if err := r.db.GetContext(ctx, &preference, query, args...); err != nil {
		if err.Error() == "sql: no rows in result set" {
			now := time.Now().UTC()
			return &models.Preference{
				ID:        uuid.New().String(),
				UserID:    userID,
				Data:      database.NewJSONB(models.PreferenceData{}),
				CreatedAt: now,
				UpdatedAt: now,
			}, nil
		}
		r.logger.WithContext(ctx).WithError(err).Error("Failed to get preferences")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to get preferences")
	}

	return &preference, nil
}

// Upsert replaces the user's preference document
func (r *Repository) Upsert(ctx context.Context, userID string, data models.PreferenceData) (*models.Preference, error) {
	ctx, span := tracing.StartSpan(ctx, "preference.Repository.Upsert")
	defer span.End()

	log := r.logger.WithContext(ctx).WithFields(map[string]any{
		"method":  "Upsert",
		"user_id": userID,
	})

	now := time.Now().UTC()
	preference := &models.Preference{
		ID:        uuid.New().String(),
		UserID:    userID,
		Data:      database.NewJSONB(data),
		CreatedAt: now,
		UpdatedAt: now,
	}

	ib := database.NewInsertBuilder()
	ib = ib.InsertInto("preferences")
	ib = ib.Cols("id", "user_id", "data", "created_at", "updated_at")
	ib = ib.Values(preference.ID, preference.UserID, preference.Data, preference.CreatedAt, preference.UpdatedAt)
	ub := ib.OnConflict("user_id")
	ub.Set(
		ub.Assign("data", database.Excluded("data")),
		ub.Assign("updated_at", database.Excluded("updated_at")),
	)

	query, args := ib.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.WithError(err).Error("Failed to upsert preferences")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to save preferences")
	}

	// re-read to pick up the stored row on conflict
	return r.Get(ctx, userID)
}
