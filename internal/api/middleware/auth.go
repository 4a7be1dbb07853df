package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// Auth validates the bearer token and injects the caller's identity into the
// request context.
//
// The Authorization header is accepted either as "Bearer <token>" or as the
// raw token itself; any other shape is simply treated as a token and fails
// verification. All verification failures collapse into one message so the
// caller cannot tell a bad signature from an expired token.
func Auth(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := c.Request().Header.Get("Authorization")
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Access denied. No token provided.")
			}

			token = strings.TrimPrefix(token, "Bearer ")

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
			}

			id, _ := claims["id"].(string)
			role, _ := claims["role"].(string)
			c.Set("id", id)
			c.Set("role", role)

			return next(c)
		}
	}
}
