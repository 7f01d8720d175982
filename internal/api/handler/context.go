package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Sgarrido33/devsecops-pos-pipeline/internal/api/middleware"
)

// ctxUserID extracts the acting user's ID injected by the Auth middleware
// and fast-fails before any service call: a zero or missing ID proves the
// middleware did not run, which no protected handler should tolerate.
func ctxUserID(c echo.Context) (int64, error) {
	id, _ := c.Get(middleware.CtxUserID).(int64)
	if id <= 0 {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return id, nil
}
