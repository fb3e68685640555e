package recommendations

import (
	"net/http"
	"strconv"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectoinject"
	"github.com/labstack/echo/v4"

	assessmentrepo "github.com/pathwise/compass/internal/repositories/assessment"
	"github.com/pathwise/compass/internal/repositories/preference"
	"github.com/pathwise/compass/pkg/appcontext"
	"github.com/pathwise/compass/pkg/assessment"
	"github.com/pathwise/compass/pkg/catalog"
	"github.com/pathwise/compass/pkg/matching"
	"github.com/pathwise/compass/pkg/models"
)

// Register registers recommendation routes
func Register(g *echo.Group) {
	g.GET("", GetRecommendations)
}

// GetRecommendations returns catalog items ranked for the current user
func GetRecommendations(c echo.Context) error {
	ctx := c.Request().Context()

	userID := appcontext.GetUserID(ctx)
	if userID == "" {
		return httperror.NewHTTPError(http.StatusUnauthorized, "user identity required")
	}

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

	ctx, scorer, err := ectoinject.GetContext[*matching.Scorer](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "service unavailable")
	}

	profile, err := buildProfile(c, userID)
	if err != nil {
		return err
	}

	items, err := source.List(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, catalog.Recommend(scorer, profile, items, limit))
}

// buildProfile assembles the user's profile from their saved
// preferences and most recent scored assessment.
func buildProfile(c echo.Context, userID string) (catalog.Profile, error) {
	ctx := c.Request().Context()

	profile := catalog.Profile{UserID: userID}

	ctx, preferences, err := ectoinject.GetContext[*preference.Repository](ctx)
	if err != nil {
		return profile, httperror.NewHTTPError(http.StatusInternalServerError, "service unavailable")
	}

	saved, err := preferences.Get(ctx, userID)
	if err != nil {
		return profile, err
	}
	data := saved.Data.GetValue()
	profile.Industry = data.Industry
	profile.Department = data.Department
	profile.AITypes = data.PreferredAITypes

	ctx, assessments, err := ectoinject.GetContext[*assessmentrepo.Repository](ctx)
	if err != nil {
		return profile, httperror.NewHTTPError(http.StatusInternalServerError, "service unavailable")
	}

	latest, err := assessments.Latest(ctx, userID)
	if err != nil {
		// a user without assessments still gets preference-based results
		if httperror.GetStatusCode(err) == http.StatusNotFound {
			return profile, nil
		}
		return profile, err
	}

	if latest.Status == models.AssessmentStatusScored {
		profile.Complexity = complexityForBand(latest.Scores.GetValue().Band)
	}
	return profile, nil
}

// complexityForBand maps readiness to the item complexity a user can
// likely take on.
func complexityForBand(band string) catalog.Complexity {
	switch band {
	case assessment.BandLeading:
		return catalog.ComplexityHigh
	case assessment.BandEstablished:
		return catalog.ComplexityMedium
	default:
		return catalog.ComplexityLow
	}
}
