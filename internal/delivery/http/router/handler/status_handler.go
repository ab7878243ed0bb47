package handler

import (
	"vidvault/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports that the process is serving requests.
func HealthCheck(c echo.Context) error {
	return response.OK(c, map[string]string{"status": "ok"})
}

// Protected answers any authenticated caller; clients use it to probe their session.
func Protected(c echo.Context) error {
	return response.OK(c, map[string]bool{"ok": true})
}
