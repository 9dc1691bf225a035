package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"surveyshare/internal/errors"
	"surveyshare/internal/service"
)

// UserHandler handles the profile endpoint.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Profile godoc
// @Summary Get the authenticated user's profile, surveys, and responses
// @Tags user
// @Produce json
// @Success 200 {object} service.Profile
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /user [get]
func (h *UserHandler) Profile(c echo.Context) error {
	userID, ok := sessionUserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errors.ErrorResponse{Error: "authentication required"})
	}

	profile, err := h.userService.GetProfile(c.Request().Context(), userID)
	if err != nil {
		he := errors.MapErrorToHTTP(err)
		if he.StatusCode == http.StatusInternalServerError {
			c.Logger().Errorf("get profile: %v", err)
		}
		return c.JSON(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, profile)
}
