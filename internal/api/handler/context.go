package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxUserID extracts the user id injected by the Auth middleware. A zero id
// means the middleware did not run or the token carried no identity; either
// way the request cannot be attributed to a user and is rejected.
func ctxUserID(c echo.Context) (int64, error) {
	id, _ := c.Get("user_id").(int64)
	if id <= 0 {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	return id, nil
}
