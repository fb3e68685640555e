package gdpr

import (
	"net/http"
	"strconv"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectoinject"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/pathwise/compass/internal/repositories/gdpritem"
	"github.com/pathwise/compass/pkg/appcontext"
	"github.com/pathwise/compass/pkg/events"
	"github.com/pathwise/compass/pkg/models"
)

var validate = validator.New()

// Register registers GDPR compliance tracker routes
func Register(g *echo.Group) {
	g.GET("", ListItems)
	g.GET("/:id", GetItem)
	g.POST("", CreateItem)
	g.PUT("/:id", UpdateItem)
	g.DELETE("/:id", DeleteItem)
}

// ListItems lists the user's compliance items
func ListItems(c echo.Context) error {
	ctx := c.Request().Context()

	userID := appcontext.GetUserID(ctx)
	if userID == "" {
		return httperror.NewHTTPError(http.StatusUnauthorized, "user identity required")
	}

	var status *models.GDPRStatus
	if raw := c.QueryParam("status"); raw != "" {
		parsed := models.GDPRStatus(raw)
		if !models.ValidGDPRStatus(parsed) {
			return httperror.NewHTTPErrorf(http.StatusBadRequest, "invalid status %q", raw)
		}
		status = &parsed
	}

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

	ctx, repo, err := ectoinject.GetContext[*gdpritem.Repository](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "service unavailable")
	}

	items, total, err := repo.List(ctx, userID, status, page, pageSize)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{
		"items":     items,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

// GetItem gets a compliance item by ID
func GetItem(c echo.Context) error {
	ctx := c.Request().Context()

	userID := appcontext.GetUserID(ctx)
	if userID == "" {
		return httperror.NewHTTPError(http.StatusUnauthorized, "user identity required")
	}

	ctx, repo, err := ectoinject.GetContext[*gdpritem.Repository](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "service unavailable")
	}

	item, err := repo.Get(ctx, userID, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, item)
}

// CreateItem creates a compliance item
func CreateItem(c echo.Context) error {
	ctx := c.Request().Context()

	userID := appcontext.GetUserID(ctx)
	if userID == "" {
		return httperror.NewHTTPError(http.StatusUnauthorized, "user identity required")
	}

	var req models.CreateGDPRItemRequest
	if err := c.Bind(&req); err != nil {
		return httperror.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return httperror.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx, repo, err := ectoinject.GetContext[*gdpritem.Repository](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "service unavailable")
	}

	created, err := repo.Create(ctx, userID, req)
	if err != nil {
		return err
	}

	ctx, emitter, err := ectoinject.GetContext[*events.Emitter](ctx)
	if err == nil && emitter != nil {
		_ = emitter.EmitGDPRItemCreated(ctx, created)
	}

	return c.JSON(http.StatusCreated, created)
}

// UpdateItem updates a compliance item
func UpdateItem(c echo.Context) error {
	ctx := c.Request().Context()

	userID := appcontext.GetUserID(ctx)
	if userID == "" {
		return httperror.NewHTTPError(http.StatusUnauthorized, "user identity required")
	}

	var req models.UpdateGDPRItemRequest
	if err := c.Bind(&req); err != nil {
		return httperror.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	ctx, repo, err := ectoinject.GetContext[*gdpritem.Repository](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "service unavailable")
	}

	updated, err := repo.Update(ctx, userID, c.Param("id"), req)
	if err != nil {
		return err
	}

	ctx, emitter, err := ectoinject.GetContext[*events.Emitter](ctx)
	if err == nil && emitter != nil {
		_ = emitter.EmitGDPRItemUpdated(ctx, updated)
	}

	return c.JSON(http.StatusOK, updated)
}

// DeleteItem deletes a compliance item
func DeleteItem(c echo.Context) error {
	ctx := c.Request().Context()

	userID := appcontext.GetUserID(ctx)
	if userID == "" {
		return httperror.NewHTTPError(http.StatusUnauthorized, "user identity required")
	}

	id := c.Param("id")

	ctx, repo, err := ectoinject.GetContext[*gdpritem.Repository](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "service unavailable")
	}

	if err := repo.Delete(ctx, userID, id); err != nil {
		return err
	}

	ctx, emitter, err := ectoinject.GetContext[*events.Emitter](ctx)
	if err == nil && emitter != nil {
		_ = emitter.EmitGDPRItemDeleted(ctx, userID, id)
	}

	return c.NoContent(http.StatusNoContent)
}
