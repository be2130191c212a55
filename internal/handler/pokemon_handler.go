package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"pokevault/internal/catalog"
	"pokevault/internal/errors"
	"pokevault/internal/service"
)

const (
	defaultPageLimit  = 20
	defaultPageOffset = 0
)

// CatalogBrowser is the subset of the catalog client the passthrough
// endpoints need.
type CatalogBrowser interface {
	List(ctx context.Context, limit, offset int) (*catalog.ListResponse, error)
	Pokemon(ctx context.Context, key string) (*catalog.Pokemon, error)
}

// PokemonHandler proxies catalog browsing and exposes search.
type PokemonHandler struct {
	browser       CatalogBrowser
	searchService service.SearchService
}

// NewPokemonHandler creates a new pokemon handler.
func NewPokemonHandler(browser CatalogBrowser, searchService service.SearchService) *PokemonHandler {
	return &PokemonHandler{
		browser:       browser,
		searchService: searchService,
	}
}

// List returns a paginated page of catalog references. Unparseable limit or
// offset values fall back to the defaults.
func (h *PokemonHandler) List(c echo.Context) error {
	limit := defaultPageLimit
	if v, err := strconv.Atoi(c.QueryParam("limit")); err == nil && v > 0 {
		limit = v
	}
	offset := defaultPageOffset
	if v, err := strconv.Atoi(c.QueryParam("offset")); err == nil && v >= 0 {
		offset = v
	}

	page, err := h.browser.List(c.Request().Context(), limit, offset)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(errors.ErrUpstreamUnavailable)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, page)
}

// Detail returns the full record for a name or numeric id.
func (h *PokemonHandler) Detail(c echo.Context) error {
	key := strings.ToLower(c.Param("id"))

	pokemon, err := h.browser.Pokemon(c.Request().Context(), key)
	if err != nil {
		mapped := errors.ErrUpstreamUnavailable
		if err == catalog.ErrNotFound {
			mapped = errors.ErrNotFound
		}
		httpErr := errors.MapErrorToHTTP(mapped)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, pokemon)
}

// Search resolves a free-text query through the strategy cascade. An empty
// query is rejected before the resolver runs.
func (h *PokemonHandler) Search(c echo.Context) error {
	query := strings.TrimSpace(c.QueryParam("name"))
	if query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name query parameter is required")
	}

	results, err := h.searchService.Resolve(c.Request().Context(), query)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, results)
}
