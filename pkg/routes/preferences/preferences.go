package preferences

import (
	"net/http"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectoinject"
	"github.com/labstack/echo/v4"

	"github.com/pathwise/compass/internal/repositories/preference"
	"github.com/pathwise/compass/pkg/appcontext"
	"github.com/pathwise/compass/pkg/events"
	"github.com/pathwise/compass/pkg/models"
)

// Register registers preference routes
func Register(g *echo.Group) {
	g.GET("", GetPreferences)
	g.PUT("", UpdatePreferences)
}

// GetPreferences returns the user's settings
func GetPreferences(c echo.Context) error {
	ctx := c.Request().Context()

	userID := appcontext.GetUserID(ctx)
	if userID == "" {
		return httperror.NewHTTPError(http.StatusUnauthorized, "user identity required")
	}

	ctx, repo, err := ectoinject.GetContext[*preference.Repository](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "service unavailable")
	}

	saved, err := repo.Get(ctx, userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, saved)
}

// UpdatePreferences replaces the user's settings
func UpdatePreferences(c echo.Context) error {
	ctx := c.Request().Context()

	userID := appcontext.GetUserID(ctx)
	if userID == "" {
		return httperror.NewHTTPError(http.StatusUnauthorized, "user identity required")
	}

	var req models.UpdatePreferenceRequest
	if err := c.Bind(&req); err != nil {
		return httperror.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	ctx, repo, err := ectoinject.GetContext[*preference.Repository](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "service unavailable")
	}

	saved, err := repo.Upsert(ctx, userID, req.Data)
	if err != nil {
		return err
	}

	ctx, emitter, err := ectoinject.GetContext[*events.Emitter](ctx)
	if err == nil && emitter != nil {
		_ = emitter.EmitPreferenceUpdated(ctx, saved)
	}

	return c.JSON(http.StatusOK, saved)
}
