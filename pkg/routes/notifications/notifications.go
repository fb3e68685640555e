package notifications

import (
	"net/http"
	"strconv"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectoinject"
	"github.com/labstack/echo/v4"

	"github.com/pathwise/compass/internal/repositories/notification"
	"github.com/pathwise/compass/pkg/appcontext"
)

// Register registers notification routes
func Register(g *echo.Group) {
	g.GET("", ListNotifications)
	g.POST("/:id/read", MarkRead)
	g.POST("/read-all", MarkAllRead)
	g.DELETE("/:id", DeleteNotification)
}

// ListNotifications lists the user's notifications
func ListNotifications(c echo.Context) error {
	ctx := c.Request().Context()

	userID := appcontext.GetUserID(ctx)
	if userID == "" {
		return httperror.NewHTTPError(http.StatusUnauthorized, "user identity required")
	}

	unreadOnly := c.QueryParam("unread") == "true"

	page := 1
	pageSize := 20
	if raw := c.QueryParam("page"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			page = parsed
		}
	}
	if raw := c.QueryParam("page_size"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			pageSize = parsed
		}
	}

	ctx, repo, err := ectoinject.GetContext[*notification.Repository](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "service unavailable")
	}

	notifications, total, err := repo.List(ctx, userID, unreadOnly, page, pageSize)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{
		"notifications": notifications,
		"total":         total,
		"page":          page,
		"page_size":     pageSize,
	})
}

// MarkRead marks a notification as read
func MarkRead(c echo.Context) error {
	ctx := c.Request().Context()

	userID := appcontext.GetUserID(ctx)
	if userID == "" {
		return httperror.NewHTTPError(http.StatusUnauthorized, "user identity required")
	}

	ctx, repo, err := ectoinject.GetContext[*notification.Repository](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "service unavailable")
	}

	if err := repo.MarkRead(ctx, userID, c.Param("id")); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// MarkAllRead marks all of the user's notifications as read
func MarkAllRead(c echo.Context) error {
	ctx := c.Request().Context()

	userID := appcontext.GetUserID(ctx)
	if userID == "" {
		return httperror.NewHTTPError(http.StatusUnauthorized, "user identity required")
	}

	ctx, repo, err := ectoinject.GetContext[*notification.Repository](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "service unavailable")
	}

	updated, err := repo.MarkAllRead(ctx, userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{"updated": updated})
}

// DeleteNotification dismisses a notification
func DeleteNotification(c echo.Context) error {
	ctx := c.Request().Context()

	userID := appcontext.GetUserID(ctx)
	if userID == "" {
		return httperror.NewHTTPError(http.StatusUnauthorized, "user identity required")
	}

	ctx, repo, err := ectoinject.GetContext[*notification.Repository](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "service unavailable")
	}

	if err := repo.Delete(ctx, userID, c.Param("id")); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
