package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

//contextに入っているroleを確認します。

func SellerGuard() echo.MiddlewareFunc {
	return roleGuard("SELLER", "seller only")
}

func CustomerGuard() echo.MiddlewareFunc {
	return roleGuard("CUSTOMER", "customer only")
}

func roleGuard(required string, msg string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rawRole := c.Get(CtxUserRoleKey)
			role, ok := rawRole.(string)
			if !ok || role == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			if role != required {
				return c.JSON(http.StatusForbidden, errorJSON(msg))
			}

			return next(c)
		}
	}
}
