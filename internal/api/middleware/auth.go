package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// Auth validates the bearer JWT and injects the claims into the context under
// "user_id" (int64) and "role". Missing header, malformed bearer scheme, bad
// signature, wrong algorithm, and expired token all collapse to the same 401.
func Auth(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
			}

			// Numeric JSON claims decode as float64.
			id, ok := claims["id"].(float64)
			role, okRole := claims["role"].(string)
			if !ok || !okRole {
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
			}

			c.Set("user_id", int64(id))
			c.Set("role", role)

			return next(c)
		}
	}
}
