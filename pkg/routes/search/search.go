package search

import (
	"net/http"
	"strconv"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectoinject"
	"github.com/labstack/echo/v4"

	"github.com/pathwise/compass/pkg/catalog"
	"github.com/pathwise/compass/pkg/matching"
)

// Register registers search routes
func Register(g *echo.Group) {
	g.GET("/suggestions", GetSuggestions)
}

// SuggestionsResponse is the search suggestion list for a query
type SuggestionsResponse struct {
	Query       string   `json:"query"`
	Suggestions []string `json:"suggestions"`
}

// GetSuggestions returns fuzzy search suggestions for a partial query
func GetSuggestions(c echo.Context) error {
	ctx := c.Request().Context()

	query := c.QueryParam("q")

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

	items, err := source.List(ctx)
	if err != nil {
		return err
	}

	suggestions := recommender.SearchSuggestions(query, catalog.Records(items), catalog.ExtractTerms, limit)

	return c.JSON(http.StatusOK, SuggestionsResponse{
		Query:       query,
		Suggestions: suggestions,
	})
}
