package middleware

import "github.com/labstack/echo/v4"

// currentUserID reads the subject placed in context by JWTAuth.  Public
// endpoints run without auth, so "anon" is the common case and keys all
// anonymous traffic from one address into the same bucket.
func currentUserID(c echo.Context) string {
	if s, ok := c.Get("user_id").(string); ok && s != "" {
		return s
	}
	return "anon"
}
