package router // route registration for the reservation API

import (
	"github.com/labstack/echo/v4"

	"github.com/meeplehouse/cafe-reservation/internal/handler"
	"github.com/meeplehouse/cafe-reservation/internal/middleware"
)

// RegisterRoutes registers routes that require no authentication beyond
// what the handlers themselves enforce. Currently that is the health check
// used by load balancers and container orchestrators.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the session lifecycle endpoints. Register, login,
// refresh and logout live under /v1/auth and need no token; the profile
// endpoint requires a valid access token.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	g.POST("/refresh", a.Refresh)
	// Logout takes the refresh token in the body rather than a JWT, so a
	// client with an expired access token can still end its session.
	g.POST("/logout", a.Logout)

	auth := e.Group("/v1/users", middleware.JWTAuth(jwtSecret))
	auth.GET("/profile", a.Profile)
}
