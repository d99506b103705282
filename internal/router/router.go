// Package router wires HTTP routes to their handlers and middleware.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/skill-swap/internal/handler"
	"github.com/iliyamo/skill-swap/internal/middleware"
)

// RegisterRoutes registers routes that require no authentication: the
// health check and the public skill feed read.
func RegisterRoutes(e *echo.Echo, skills *handler.SkillHandler) {
	e.GET("/healthz", handler.Health)
	// Public read of the skill feed; no identity required so guests can
	// browse before signing up.
	e.GET("/v1/skills", skills.List)
}

// RegisterAuth registers the identity boundary under /v1/auth. Both
// endpoints are unauthenticated and rate limited.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, rl echo.MiddlewareFunc) {
	g := e.Group("/v1/auth", rl)
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
}

// RegisterAPI registers every authenticated endpoint under /v1. The JWT
// middleware resolves the token subject; rate limiting sits behind it so
// buckets are scoped to the authenticated caller.
func RegisterAPI(
	e *echo.Echo,
	jwtSecret string,
	rl echo.MiddlewareFunc,
	users *handler.UserHandler,
	connections *handler.ConnectionHandler,
	chats *handler.ChatHandler,
	skills *handler.SkillHandler,
	sessions *handler.SessionHandler,
) {
	g := e.Group("/v1")
	g.Use(middleware.JWTAuth(jwtSecret))
	g.Use(rl)

	g.POST("/users", users.Create)
	g.GET("/users", users.Get)
	g.GET("/users/me", users.Me)

	g.POST("/connections", connections.Create)
	g.GET("/connections", connections.List)
	g.PUT("/connections/:id", connections.Update)

	g.GET("/chats/:connectionId", chats.List)
	g.POST("/chats/:connectionId", chats.Send)

	g.POST("/skills", skills.Create)

	g.POST("/sessions", sessions.Create)
	g.GET("/sessions", sessions.List)
}
