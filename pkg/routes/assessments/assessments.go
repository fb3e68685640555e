package assessments

import (
	"net/http"
	"strconv"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectoinject"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	assessmentrepo "github.com/pathwise/compass/internal/repositories/assessment"
	"github.com/pathwise/compass/internal/repositories/preference"
	"github.com/pathwise/compass/pkg/appcontext"
	"github.com/pathwise/compass/pkg/assessment"
	"github.com/pathwise/compass/pkg/catalog"
	"github.com/pathwise/compass/pkg/events"
	"github.com/pathwise/compass/pkg/matching"
	"github.com/pathwise/compass/pkg/models"
)

var validate = validator.New()

// Register registers assessment routes
func Register(g *echo.Group) {
	g.GET("/questionnaire", GetQuestionnaire)
	g.POST("", SubmitAssessment)
	g.GET("", ListAssessments)
	g.GET("/latest", GetLatestAssessment)
	g.GET("/:id", GetAssessment)
	g.GET("/:id/report", GetAssessmentReport)
}

// GetQuestionnaire returns the readiness questionnaire
func GetQuestionnaire(c echo.Context) error {
	return c.JSON(http.StatusOK, assessment.DefaultQuestionnaire())
}

// SubmitAssessment stores a submission, scores it, and returns the
// scored result
func SubmitAssessment(c echo.Context) error {
	ctx := c.Request().Context()

	userID := appcontext.GetUserID(ctx)
	if userID == "" {
		return httperror.NewHTTPError(http.StatusUnauthorized, "user identity required")
	}

	var req models.SubmitAssessmentRequest
	if err := c.Bind(&req); err != nil {
		return httperror.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return httperror.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	scores, err := assessment.Score(assessment.DefaultQuestionnaire(), req.Answers)
	if err != nil {
		return err
	}

	ctx, repo, err := ectoinject.GetContext[*assessmentrepo.Repository](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "service unavailable")
	}

	created, err := repo.Create(ctx, userID, req.Answers)
	if err != nil {
		return err
	}

	scored, err := repo.SetScores(ctx, userID, created.ID, scores)
	if err != nil {
		return err
	}

	ctx, emitter, err := ectoinject.GetContext[*events.Emitter](ctx)
	if err == nil && emitter != nil {
		_ = emitter.EmitAssessmentSubmitted(ctx, scored)
		_ = emitter.EmitAssessmentScored(ctx, scored)
	}

	return c.JSON(http.StatusCreated, scored)
}

// ListAssessments lists the user's submissions
func ListAssessments(c echo.Context) error {
	ctx := c.Request().Context()

	userID := appcontext.GetUserID(ctx)
	if userID == "" {
		return httperror.NewHTTPError(http.StatusUnauthorized, "user identity required")
	}

	page, pageSize := pagination(c)

	ctx, repo, err := ectoinject.GetContext[*assessmentrepo.Repository](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "service unavailable")
	}

	submissions, total, err := repo.List(ctx, userID, page, pageSize)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{
		"assessments": submissions,
		"total":       total,
		"page":        page,
		"page_size":   pageSize,
	})
}

// GetLatestAssessment returns the user's most recent submission
func GetLatestAssessment(c echo.Context) error {
	ctx := c.Request().Context()

	userID := appcontext.GetUserID(ctx)
	if userID == "" {
		return httperror.NewHTTPError(http.StatusUnauthorized, "user identity required")
	}

	ctx, repo, err := ectoinject.GetContext[*assessmentrepo.Repository](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "service unavailable")
	}

	latest, err := repo.Latest(ctx, userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, latest)
}

// GetAssessment returns a submission by ID
func GetAssessment(c echo.Context) error {
	ctx := c.Request().Context()

	userID := appcontext.GetUserID(ctx)
	if userID == "" {
		return httperror.NewHTTPError(http.StatusUnauthorized, "user identity required")
	}

	ctx, repo, err := ectoinject.GetContext[*assessmentrepo.Repository](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "service unavailable")
	}

	submission, err := repo.Get(ctx, userID, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, submission)
}

// GetAssessmentReport returns the scored report with recommended
// catalog items
func GetAssessmentReport(c echo.Context) error {
	ctx := c.Request().Context()

	userID := appcontext.GetUserID(ctx)
	if userID == "" {
		return httperror.NewHTTPError(http.StatusUnauthorized, "user identity required")
	}

	ctx, repo, err := ectoinject.GetContext[*assessmentrepo.Repository](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "service unavailable")
	}

	submission, err := repo.Get(ctx, userID, c.Param("id"))
	if err != nil {
		return err
	}
	if submission.Status != models.AssessmentStatusScored {
		return httperror.NewHTTPError(http.StatusConflict, "assessment has not been scored")
	}

	ctx, source, err := ectoinject.GetContext[catalog.Source](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "service unavailable")
	}

	ctx, scorer, err := ectoinject.GetContext[*matching.Scorer](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "service unavailable")
	}

	profile := catalog.Profile{UserID: userID}
	if ctx, preferences, err := ectoinject.GetContext[*preference.Repository](ctx); err == nil {
		if saved, err := preferences.Get(ctx, userID); err == nil {
			data := saved.Data.GetValue()
			profile.Industry = data.Industry
			profile.Department = data.Department
			profile.AITypes = data.PreferredAITypes
		}
	}

	items, err := source.List(ctx)
	if err != nil {
		return err
	}

	report := assessment.BuildReport(scorer, submission.Scores.GetValue(), profile, items, matching.DefaultRelatedLimit)
	return c.JSON(http.StatusOK, report)
}

func pagination(c echo.Context) (int, int) {
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
	return page, pageSize
}
