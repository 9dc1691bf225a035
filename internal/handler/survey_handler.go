package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"surveyshare/internal/errors"
	"surveyshare/internal/model"
	"surveyshare/internal/service"
)

// SurveyHandler handles survey endpoints.
type SurveyHandler struct {
	surveyService service.SurveyService
}

// NewSurveyHandler creates a new survey handler.
func NewSurveyHandler(surveyService service.SurveyService) *SurveyHandler {
	return &SurveyHandler{surveyService: surveyService}
}

// CreateSurveyRequest represents a survey creation request.
type CreateSurveyRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	URL         string `json:"url" validate:"required,url"`
	Category    string `json:"category" validate:"required,oneof=engineering humanities social economics arts sports etc"`
}

// surveyID parses the :id route parameter. A non-numeric id is
// indistinguishable from a missing survey.
func surveyID(c echo.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func (h *SurveyHandler) fail(c echo.Context, op string, err error) error {
	he := errors.MapErrorToHTTP(err)
	if he.StatusCode == http.StatusInternalServerError {
		c.Logger().Errorf("%s: %v", op, err)
	}
	return c.JSON(he.StatusCode, he.ToErrorResponse())
}

// List godoc
// @Summary List surveys
// @Tags surveys
// @Produce json
// @Param category query string false "Category filter"
// @Param sort query string false "Sort order: latest or popular"
// @Success 200 {array} model.SurveyWithOwner
// @Failure 500 {object} errors.ErrorResponse
// @Router /surveys [get]
func (h *SurveyHandler) List(c echo.Context) error {
	category := model.Category(c.QueryParam("category"))
	sort := c.QueryParam("sort")

	surveys, err := h.surveyService.List(c.Request().Context(), category, sort)
	if err != nil {
		return h.fail(c, "list surveys", err)
	}
	return c.JSON(http.StatusOK, surveys)
}

// Create godoc
// @Summary Create a survey
// @Tags surveys
// @Accept json
// @Produce json
// @Param request body CreateSurveyRequest true "Survey data"
// @Success 201 {object} model.SurveyWithOwner
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /surveys [post]
func (h *SurveyHandler) Create(c echo.Context) error {
	userID, ok := sessionUserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errors.ErrorResponse{Error: "authentication required"})
	}

	var req CreateSurveyRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errors.ErrorResponse{Error: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errors.ErrorResponse{Error: "title, a valid url, and a known category are required"})
	}

	survey, err := h.surveyService.Create(c.Request().Context(), userID, req.Title, req.Description, req.URL, model.Category(req.Category))
	if err != nil {
		return h.fail(c, "create survey", err)
	}
	return c.JSON(http.StatusCreated, survey)
}

// Get godoc
// @Summary Get a survey by id
// @Tags surveys
// @Produce json
// @Param id path int true "Survey ID"
// @Success 200 {object} model.SurveyWithOwner
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /surveys/{id} [get]
func (h *SurveyHandler) Get(c echo.Context) error {
	id, ok := surveyID(c)
	if !ok {
		return c.JSON(http.StatusNotFound, errors.ErrorResponse{Error: errors.ErrSurveyNotFound.Error()})
	}

	survey, err := h.surveyService.GetByID(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, "get survey", err)
	}
	return c.JSON(http.StatusOK, survey)
}

// Delete godoc
// @Summary Delete an owned survey and its responses
// @Tags surveys
// @Produce json
// @Param id path int true "Survey ID"
// @Success 200 {object} map[string]bool
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /surveys/{id} [delete]
func (h *SurveyHandler) Delete(c echo.Context) error {
	userID, ok := sessionUserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errors.ErrorResponse{Error: "authentication required"})
	}

	id, ok := surveyID(c)
	if !ok {
		return c.JSON(http.StatusNotFound, errors.ErrorResponse{Error: errors.ErrSurveyNotFound.Error()})
	}

	if err := h.surveyService.Delete(c.Request().Context(), id, userID); err != nil {
		return h.fail(c, "delete survey", err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

// Respond godoc
// @Summary Record a response to a survey
// @Tags surveys
// @Produce json
// @Param id path int true "Survey ID"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /surveys/{id}/respond [post]
func (h *SurveyHandler) Respond(c echo.Context) error {
	userID, ok := sessionUserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errors.ErrorResponse{Error: "authentication required"})
	}

	id, ok := surveyID(c)
	if !ok {
		return c.JSON(http.StatusNotFound, errors.ErrorResponse{Error: errors.ErrSurveyNotFound.Error()})
	}

	if err := h.surveyService.Respond(c.Request().Context(), id, userID); err != nil {
		return h.fail(c, "respond to survey", err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}
