package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sweetshop/inventory-system/internal/core/domain"
)

// AdminOnly enforces the inventory-management capability. Stage two of the
// access gate, always applied after Auth.
func AdminOnly() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(domain.Role)
			if !role.CanManageInventory() {
				return c.JSON(http.StatusForbidden, map[string]string{"message": "admin access required"})
			}
			return next(c)
		}
	}
}
