package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"pokevault/internal/auth"
	"pokevault/internal/errors"
	"pokevault/internal/service"
)

// UserHandler handles profile endpoints.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Me returns the authenticated caller's sanitized user record.
func (h *UserHandler) Me(c echo.Context) error {
	userID, ok := auth.CurrentUserID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	user, err := h.userService.GetProfile(c.Request().Context(), userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, user)
}
