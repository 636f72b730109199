package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const PublicCacheControl = "public, max-age=300, stale-while-revalidate=600"

// CacheControl sets the header on successful GET responses.
func CacheControl(value string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Method == http.MethodGet {
				c.Response().Before(func() {
					if c.Response().Status < http.StatusBadRequest {
						c.Response().Header().Set("Cache-Control", value)
					}
				})
			}
			return next(c)
		}
	}
}
