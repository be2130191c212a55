package handler

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"pokevault/internal/auth"
	"pokevault/internal/catalog"
	"pokevault/internal/errors"
	"pokevault/internal/model"
	"pokevault/internal/service"
)

// FavoriteHandler handles favorites endpoints. The owner is always taken
// from the verified token, never from client-supplied data.
type FavoriteHandler struct {
	favoriteService service.FavoriteService
}

// NewFavoriteHandler creates a new favorite handler.
func NewFavoriteHandler(favoriteService service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favoriteService: favoriteService}
}

// AddFavoriteRequest represents an add-favorite request.
type AddFavoriteRequest struct {
	PokemonID int `json:"pokemon_id" validate:"required,gt=0"`
}

// FavoriteDetailResponse is a favorite with its catalog record embedded.
type FavoriteDetailResponse struct {
	*model.Favorite
	Pokemon *catalog.Pokemon `json:"pokemon,omitempty"`
}

// List returns the caller's favorites, most recent first.
func (h *FavoriteHandler) List(c echo.Context) error {
	ownerID, ok := auth.CurrentUserID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	favorites, err := h.favoriteService.List(c.Request().Context(), ownerID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, favorites)
}

// Add stores a new favorite for the caller.
func (h *FavoriteHandler) Add(c echo.Context) error {
	ownerID, ok := auth.CurrentUserID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	var req AddFavoriteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	favorite, err := h.favoriteService.Add(c.Request().Context(), ownerID, req.PokemonID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, favorite)
}

// Get returns one favorite with its catalog record embedded.
func (h *FavoriteHandler) Get(c echo.Context) error {
	ownerID, ok := auth.CurrentUserID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	favoriteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "id must be a valid UUID")
	}

	favorite, pokemon, err := h.favoriteService.Get(c.Request().Context(), ownerID, favoriteID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, FavoriteDetailResponse{
		Favorite: favorite,
		Pokemon:  pokemon,
	})
}

// Remove deletes the caller's favorites for a pokemon. Removing a favorite
// that does not exist still succeeds.
func (h *FavoriteHandler) Remove(c echo.Context) error {
	ownerID, ok := auth.CurrentUserID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	pokemonID, err := strconv.Atoi(c.Param("pokemonId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "pokemonId must be a number")
	}

	if err := h.favoriteService.Remove(c.Request().Context(), ownerID, pokemonID); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}
