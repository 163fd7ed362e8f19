package middleware // middleware contains reusable HTTP middleware functions

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/IsakPar/stagemap/internal/utils"
)

// SessionAuth returns an Echo middleware that validates a Bearer session
// token and injects its claims into the request context.  Selection
// endpoints must know which session, venue and show a toggle belongs to;
// handlers read them via c.Get("session_id"), c.Get("venue_id") and
// c.Get("show_id").  This is session identification, not end-user
// authentication: the token only proves the caller opened a selection
// session for one specific show.
func SessionAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
			}
			raw := strings.TrimPrefix(auth, "Bearer ")

			claims, err := utils.ParseSessionToken(secret, raw)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid session token"})
			}

			c.Set("session_id", claims.SessionID)
			c.Set("venue_id", claims.VenueID)
			c.Set("show_id", claims.ShowID)
			c.Set("max_selectable", claims.MaxSelectable)
			return next(c)
		}
	}
}

// currentSessionID extracts the session id stored by SessionAuth.  It
// returns "anon" for unauthenticated requests so rate-limit keys stay
// well-formed.
func currentSessionID(c echo.Context) string {
	if v := c.Get("session_id"); v != nil {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	return "anon"
}
