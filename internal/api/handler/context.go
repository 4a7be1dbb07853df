package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// callerIdentity extracts the identity injected by the Auth middleware.
// An empty id means the middleware did not run on this route; reject rather
// than let an unowned mutation through.
func callerIdentity(c echo.Context) (id, role string, err error) {
	id, _ = c.Get("id").(string)
	if id == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
	}
	role, _ = c.Get("role").(string)
	return id, role, nil
}
