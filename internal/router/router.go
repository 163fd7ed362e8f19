package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/IsakPar/stagemap/internal/handler"    // import the handlers that implement business logic
	"github.com/IsakPar/stagemap/internal/middleware" // import middleware for session tokens, caching and rate limiting
)

// RegisterRoutes registers routes that need no session token on the
// provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	// Load balancers and monitoring systems use this endpoint to verify
	// that the service is up and running.
	e.GET("/healthz", handler.Health)
}

// RegisterAuthoring registers the publish endpoints used by the external
// venue-management surface.  Compiles are infrequent and must never be
// served from a response cache, so no caching middleware is applied here.
func RegisterAuthoring(e *echo.Echo, a *handler.AuthoringHandler) {
	e.POST("/v1/venues/:venue_id/shows/:show_id/layout", a.PublishLayout)
	e.GET("/v1/venues/:venue_id/shows/:show_id/layout/versions", a.ListVersions)
}

// RegisterPublic registers the read-only layout endpoints consumed by the
// presentation layer.  These are guest-accessible and sit behind the Redis
// response cache: a snapshot only changes when a new compile is published.
func RegisterPublic(e *echo.Echo, p *handler.PublicHandler, cacheMW echo.MiddlewareFunc) {
	g := e.Group("/v1/venues/:venue_id/shows/:show_id/layout")
	if cacheMW != nil {
		g.Use(cacheMW)
	}
	// Full snapshot for the seat-map renderer.
	g.GET("", p.GetLayout)
	// Per-viewport view frame (normalized + container-scaled coordinates).
	g.GET("/frame", p.GetFrame)
	// Batch stable-id translation; unknown ids yield null positions.
	g.POST("/translate", p.Translate)
}

// RegisterSessions registers selection-session endpoints.  Opening a
// session is public; everything touching selection state requires the
// session token and runs behind the rate limiter as a secondary defense;
// the coordinator's debounce is the primary one.
func RegisterSessions(e *echo.Echo, s *handler.SessionHandler, secret string, rateMW echo.MiddlewareFunc) {
	e.POST("/v1/sessions", s.CreateSession)

	g := e.Group("/v1")
	g.Use(middleware.SessionAuth(secret))
	if rateMW != nil {
		g.Use(rateMW)
	}
	g.POST("/selection/toggle", s.Toggle)
	g.GET("/selection", s.GetSelection)
	g.DELETE("/sessions", s.EndSession)
}
