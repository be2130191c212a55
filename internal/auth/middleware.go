package auth

import (
	"net/http"

	"github.com/google/uuid"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"pokevault/internal/logger"
)

// Required returns middleware that rejects requests without a valid
// "Authorization: Bearer <token>" header. Verification goes through the
// JWTService so the gate never touches the credential store; verified claims
// are attached to the request context for downstream handlers.
func Required(jwtService *JWTService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ParseTokenFunc: func(c echo.Context, tokenString string) (interface{}, error) {
			claims, err := jwtService.Verify(tokenString)
			if err != nil {
				logger.Log.Debugw("token verification failed", "err", err)
				return nil, err
			}
			return claims, nil
		},
		// A missing header and an invalid token are both plain 401s; echo-jwt
		// would otherwise answer 400 for a missing token.
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing or invalid token")
		},
	})
}

// CurrentClaims returns the verified claims attached by Required.
func CurrentClaims(c echo.Context) (*Claims, bool) {
	claims, ok := c.Get("user").(*Claims)
	return claims, ok
}

// CurrentUserID returns the verified caller's user id.
func CurrentUserID(c echo.Context) (uuid.UUID, bool) {
	claims, ok := CurrentClaims(c)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
