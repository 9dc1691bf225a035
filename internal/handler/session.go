package handler

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"surveyshare/internal/auth"
)

// sessionUserID extracts the authenticated user id placed in the context by
// the cookie JWT middleware. It fails closed to (0, false); callers treat
// that as an anonymous request.
func sessionUserID(c echo.Context) (uint, bool) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return 0, false
	}
	claims, ok := token.Claims.(*auth.Claims)
	if !ok || claims.UserID == 0 {
		return 0, false
	}
	return claims.UserID, true
}
