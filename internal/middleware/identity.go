package middleware

// identity.go holds helpers shared across middleware files for naming the
// caller behind a request. The identifier feeds rate-limit bucket keys, so
// it falls back to "anon" rather than failing when no token was presented.

import (
	"fmt"

	"github.com/labstack/echo/v4"
)

// currentUserID returns the authenticated user's id as stored by JWTAuth,
// or "anon" for unauthenticated requests.
func currentUserID(c echo.Context) string {
	switch v := c.Get("user_id").(type) {
	case string:
		if v != "" {
			return v
		}
	case float64:
		return fmt.Sprintf("%.0f", v)
	case int64:
		return fmt.Sprintf("%d", v)
	}
	return "anon"
}
