package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// HeaderUserID carries the caller identity resolved by the external identity
// provider at the edge. The service trusts it the way the workflows trust
// getCurrentUser(): absent means unauthenticated.
const HeaderUserID = "X-User-Id"

const userIDContextKey = "auth.user_id"

func RequireUser() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			uid := strings.ToLower(strings.TrimSpace(c.Request().Header.Get(HeaderUserID)))
			if uid == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing " + HeaderUserID})
			}
			if !reHex32.MatchString(uid) {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid " + HeaderUserID})
			}
			c.Set(userIDContextKey, uid)
			return next(c)
		}
	}
}

// UserID returns the authenticated caller id, or "" outside RequireUser.
func UserID(c echo.Context) string {
	if v, ok := c.Get(userIDContextKey).(string); ok {
		return v
	}
	return ""
}
