package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/Waleedanwar01/project-insurance-1/internal/lib/jwt"
	"github.com/Waleedanwar01/project-insurance-1/internal/lib/logger/sl"
	"github.com/Waleedanwar01/project-insurance-1/internal/transport/http/dto/response"

	"github.com/labstack/echo/v4"
)

const AdminSubjectKey = "admin_subject"

// AdminOnly accepts requests carrying a bearer token with the admin role.
func AdminOnly(log *slog.Logger, secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				return c.JSON(http.StatusUnauthorized, response.ErrAuthenticationRequired)
			}

			sub, err := jwt.ParseAdminToken(token, secret)
			if err != nil {
				log.Warn("admin token rejected", sl.Err(err), slog.String("remote ip", c.RealIP()))
				return c.JSON(http.StatusForbidden, response.ErrAdminRequired)
			}

			c.Set(AdminSubjectKey, sub)
			return next(c)
		}
	}
}
