package middleware // middleware provides shared request processing for handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/moviehub/movie-api/internal/utils"
)

// JWTAuth returns an Echo middleware that validates an access token from
// the Authorization header and injects the token's identity claims into
// the request context. The provided secret must match the one used when
// issuing tokens. Both the "JWT" scheme (what the signin response hands
// out) and the conventional "Bearer" scheme are accepted. Handlers behind
// this middleware can read the principal via c.Get("user_id") and
// c.Get("username").
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			var raw string
			switch {
			case strings.HasPrefix(auth, "JWT "):
				raw = strings.TrimPrefix(auth, "JWT ")
			case strings.HasPrefix(auth, "Bearer "):
				raw = strings.TrimPrefix(auth, "Bearer ")
			default:
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing access token"})
			}

			ident, err := utils.ParseAccessToken(secret, raw)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
			}

			c.Set("user_id", ident.ID)
			c.Set("username", ident.Username)
			return next(c)
		}
	}
}
