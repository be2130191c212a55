package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"pokevault/internal/auth"
	"pokevault/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	jwtService *auth.JWTService,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	pokemonHandler *handler.PokemonHandler,
	favoriteHandler *handler.FavoriteHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.GET("/pokemon", pokemonHandler.List)
	api.GET("/pokemon/search", pokemonHandler.Search)
	api.GET("/pokemon/:id", pokemonHandler.Detail)

	// Secured routes (require a valid bearer token)
	secured := api.Group("", auth.Required(jwtService))

	secured.GET("/me", userHandler.Me)

	secured.GET("/favorites", favoriteHandler.List)
	secured.POST("/favorites", favoriteHandler.Add)
	secured.GET("/favorites/:id", favoriteHandler.Get)
	secured.DELETE("/favorites/:pokemonId", favoriteHandler.Remove)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
