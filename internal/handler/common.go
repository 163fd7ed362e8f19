package handler // handler defines http handlers

import (
	"errors"  // errors provides sentinel values used in context helpers
	"strconv" // strconv converts query parameters to numeric types
	"strings" // strings provides trimming helpers

	"github.com/labstack/echo/v4" // echo defines request context types
)

// getSessionID extracts the session_id injected by the SessionAuth middleware.
func getSessionID(c echo.Context) (string, error) {
	if v, ok := c.Get("session_id").(string); ok && v != "" {
		return v, nil
	}
	return "", errors.New("missing session_id in context")
}

// getSessionShow extracts the (venue, show) pair the session token is
// pinned to.
func getSessionShow(c echo.Context) (venueID, showID string, err error) {
	v, okV := c.Get("venue_id").(string)
	s, okS := c.Get("show_id").(string)
	if !okV || !okS || v == "" || s == "" {
		return "", "", errors.New("missing venue/show in context")
	}
	return v, s, nil
}

// pathID reads a non-empty path parameter, trimming surrounding whitespace.
func pathID(c echo.Context, name string) (string, bool) {
	v := strings.TrimSpace(c.Param(name))
	return v, v != ""
}

// floatQuery parses an optional float query parameter with a default.
func floatQuery(c echo.Context, name string, def float64) (float64, bool) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return def, true
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
