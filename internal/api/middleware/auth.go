package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/snapshot/storefront/internal/api/handler"
	"github.com/snapshot/storefront/internal/core/domain"
)

// RequireCaller rejects requests without an x-user-id header and injects the
// id into the context. It only proves an id was sent; admin checks happen in
// the service.
func RequireCaller() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := strings.TrimSpace(c.Request().Header.Get(handler.HeaderUserID))
			if id == "" {
				return domain.ErrNotAuthenticated
			}

			c.Set(handler.CallerKey, id)
			return next(c)
		}
	}
}
