// Package router wires handlers and middleware to their routes.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/davolio/osteria-reservations/internal/handler"
	"github.com/davolio/osteria-reservations/internal/middleware"
)

// RegisterRoutes registers the routes that require no authentication and
// no other dependencies.  Currently that is only the health check.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the staff authentication endpoints.  Register,
// login, refresh and logout live under /v1/auth without middleware; /v1/me
// requires a valid access token with a known role.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	g.POST("/refresh", a.Refresh)
	// Logout accepts either a refresh token in the body or a bearer token;
	// it is deliberately outside the JWT middleware so a session can be
	// closed with only its refresh token.
	g.POST("/logout", a.Logout)

	auth := e.Group("/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("STAFF", "ADMIN"),
	)
	auth.GET("/me", a.Me)
}
