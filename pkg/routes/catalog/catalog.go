package catalog

import (
	"net/http"
	"strconv"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectoinject"
	"github.com/labstack/echo/v4"

	"github.com/pathwise/compass/pkg/catalog"
	"github.com/pathwise/compass/pkg/matching"
)

// Register registers catalog routes
func Register(g *echo.Group) {
	g.GET("", ListItems)
	g.GET("/:id", GetItem)
	g.GET("/:id/related", GetRelatedItems)
}

// ListItems lists catalog items, optionally filtered by kind, industry,
// and department
func ListItems(c echo.Context) error {
	ctx := c.Request().Context()

	ctx, source, err := ectoinject.GetContext[catalog.Source](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "service unavailable")
	}

	var items []catalog.Item
	if kind := c.QueryParam("kind"); kind != "" {
		items, err = source.ByKind(ctx, catalog.ItemKind(kind))
	} else {
		items, err = source.List(ctx)
	}
	if err != nil {
		return err
	}

	if industry := c.QueryParam("industry"); industry != "" {
		items = filterByTag(items, catalog.AttrIndustries, industry)
	}
	if department := c.QueryParam("department"); department != "" {
		items = filterByTag(items, catalog.AttrDepartments, department)
	}

	return c.JSON(http.StatusOK, items)
}

func filterByTag(items []catalog.Item, attr, value string) []catalog.Item {
	filtered := make([]catalog.Item, 0, len(items))
	for _, item := range items {
		for _, tag := range item.TagSet(attr) {
			if tag == value {
				filtered = append(filtered, item)
				break
			}
		}
	}
	return filtered
}

// GetItem gets a catalog item by ID
func GetItem(c echo.Context) error {
	ctx := c.Request().Context()

	ctx, source, err := ectoinject.GetContext[catalog.Source](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "service unavailable")
	}

	item, err := source.Get(ctx, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, item)
}

// RelatedItemResponse is a related catalog item with its similarity score
type RelatedItemResponse struct {
	Item  catalog.Item `json:"item"`
	Score float64      `json:"score"`
}

// GetRelatedItems returns items similar to the given catalog item
func GetRelatedItems(c echo.Context) error {
	ctx := c.Request().Context()

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return httperror.NewHTTPError(http.StatusBadRequest, "limit must be an integer")
		}
		limit = parsed
	}

	ctx, source, err := ectoinject.GetContext[catalog.Source](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "service unavailable")
	}

	ctx, recommender, err := ectoinject.GetContext[*matching.RecommendationService](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "service unavailable")
	}

	item, err := source.Get(ctx, c.Param("id"))
	if err != nil {
		return err
	}

	items, err := source.List(ctx)
	if err != nil {
		return err
	}

	related := recommender.RelatedItems(*item, catalog.Records(items), matching.DefaultWeights(), limit)

	response := make([]RelatedItemResponse, 0, len(related))
	for _, scored := range related {
		response = append(response, RelatedItemResponse{
			Item:  scored.Record.(catalog.Item),
			Score: scored.Score,
		})
	}

	return c.JSON(http.StatusOK, response)
}
