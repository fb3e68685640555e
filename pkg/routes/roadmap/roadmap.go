package roadmap

import (
	"net/http"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectoinject"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/pathwise/compass/internal/repositories/roadmapitem"
	"github.com/pathwise/compass/pkg/appcontext"
	"github.com/pathwise/compass/pkg/events"
	"github.com/pathwise/compass/pkg/models"
)

var validate = validator.New()

// Register registers roadmap board routes
func Register(g *echo.Group) {
	g.GET("", ListItems)
	g.GET("/:id", GetItem)
	g.POST("", CreateItem)
	g.PUT("/:id", UpdateItem)
	g.POST("/:id/move", MoveItem)
	g.DELETE("/:id", DeleteItem)
}

// ListItems returns the user's board, optionally filtered by column
func ListItems(c echo.Context) error {
	ctx := c.Request().Context()

	userID := appcontext.GetUserID(ctx)
	if userID == "" {
		return httperror.NewHTTPError(http.StatusUnauthorized, "user identity required")
	}

	var column *models.RoadmapColumn
	if raw := c.QueryParam("column"); raw != "" {
		parsed := models.RoadmapColumn(raw)
		if !models.ValidRoadmapColumn(parsed) {
			return httperror.NewHTTPErrorf(http.StatusBadRequest, "invalid column %q", raw)
		}
		column = &parsed
	}

	ctx, repo, err := ectoinject.GetContext[*roadmapitem.Repository](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "service unavailable")
	}

	items, err := repo.List(ctx, userID, column)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, items)
}

// GetItem gets a board item by ID
func GetItem(c echo.Context) error {
	ctx := c.Request().Context()

	userID := appcontext.GetUserID(ctx)
	if userID == "" {
		return httperror.NewHTTPError(http.StatusUnauthorized, "user identity required")
	}

	ctx, repo, err := ectoinject.GetContext[*roadmapitem.Repository](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "service unavailable")
	}

	item, err := repo.Get(ctx, userID, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, item)
}

// CreateItem adds an item to the board
func CreateItem(c echo.Context) error {
	ctx := c.Request().Context()

	userID := appcontext.GetUserID(ctx)
	if userID == "" {
		return httperror.NewHTTPError(http.StatusUnauthorized, "user identity required")
	}

	var req models.CreateRoadmapItemRequest
	if err := c.Bind(&req); err != nil {
		return httperror.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return httperror.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx, repo, err := ectoinject.GetContext[*roadmapitem.Repository](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "service unavailable")
	}

	created, err := repo.Create(ctx, userID, req)
	if err != nil {
		return err
	}

	ctx, emitter, err := ectoinject.GetContext[*events.Emitter](ctx)
	if err == nil && emitter != nil {
		_ = emitter.EmitRoadmapItemCreated(ctx, created)
	}

	return c.JSON(http.StatusCreated, created)
}

// UpdateItem updates a board item, including moving it between columns
func UpdateItem(c echo.Context) error {
	ctx := c.Request().Context()

	userID := appcontext.GetUserID(ctx)
	if userID == "" {
		return httperror.NewHTTPError(http.StatusUnauthorized, "user identity required")
	}

	var req models.UpdateRoadmapItemRequest
	if err := c.Bind(&req); err != nil {
		return httperror.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	ctx, repo, err := ectoinject.GetContext[*roadmapitem.Repository](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "service unavailable")
	}

	updated, err := repo.Update(ctx, userID, c.Param("id"), req)
	if err != nil {
		return err
	}

	ctx, emitter, err := ectoinject.GetContext[*events.Emitter](ctx)
	if err == nil && emitter != nil {
		_ = emitter.EmitRoadmapItemUpdated(ctx, updated)
	}

	return c.JSON(http.StatusOK, updated)
}

// MoveItemRequest places an item in a column at a position
type MoveItemRequest struct {
	Column   models.RoadmapColumn `json:"column" validate:"required"`
	Position int                  `json:"position" validate:"gte=0"`
}

// MoveItem moves a board item to a new column and position
func MoveItem(c echo.Context) error {
	ctx := c.Request().Context()

	userID := appcontext.GetUserID(ctx)
	if userID == "" {
		return httperror.NewHTTPError(http.StatusUnauthorized, "user identity required")
	}

	var req MoveItemRequest
	if err := c.Bind(&req); err != nil {
		return httperror.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return httperror.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx, repo, err := ectoinject.GetContext[*roadmapitem.Repository](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "service unavailable")
	}

	updated, err := repo.Update(ctx, userID, c.Param("id"), models.UpdateRoadmapItemRequest{
		Column:   &req.Column,
		Position: &req.Position,
	})
	if err != nil {
		return err
	}

	ctx, emitter, err := ectoinject.GetContext[*events.Emitter](ctx)
	if err == nil && emitter != nil {
		_ = emitter.EmitRoadmapItemUpdated(ctx, updated)
	}

	return c.JSON(http.StatusOK, updated)
}

// DeleteItem removes a board item
func DeleteItem(c echo.Context) error {
	ctx := c.Request().Context()

	userID := appcontext.GetUserID(ctx)
	if userID == "" {
		return httperror.NewHTTPError(http.StatusUnauthorized, "user identity required")
	}

	id := c.Param("id")

	ctx, repo, err := ectoinject.GetContext[*roadmapitem.Repository](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "service unavailable")
	}

	if err := repo.Delete(ctx, userID, id); err != nil {
		return err
	}

	ctx, emitter, err := ectoinject.GetContext[*events.Emitter](ctx)
	if err == nil && emitter != nil {
		_ = emitter.EmitRoadmapItemDeleted(ctx, userID, id)
	}

	return c.NoContent(http.StatusNoContent)
}
