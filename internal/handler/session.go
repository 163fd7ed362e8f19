package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/IsakPar/stagemap/internal/cache"
	"github.com/IsakPar/stagemap/internal/selection"
	"github.com/IsakPar/stagemap/internal/utils"
)

// SessionHandler manages selection sessions.  Opening a session mints a
// signed token pinning the session to one (venue, show); all toggles then
// funnel through the session's single coordinator, which is what rules out
// racing duplicate mutations.
type SessionHandler struct {
	Cache         *cache.LayoutCache
	Sessions      *selection.Registry
	Secret        string
	TTLMin        int
	MaxSelectable int
}

// NewSessionHandler constructs a SessionHandler and panics if a dependency is nil.
func NewSessionHandler(lc *cache.LayoutCache, sessions *selection.Registry, secret string, ttlMin, maxSelectable int) *SessionHandler {
	if lc == nil || sessions == nil || secret == "" {
		panic("nil dependency passed to NewSessionHandler")
	}
	return &SessionHandler{
		Cache:         lc,
		Sessions:      sessions,
		Secret:        secret,
		TTLMin:        ttlMin,
		MaxSelectable: maxSelectable,
	}
}

// createSessionRequest opens a selection session for one show.
type createSessionRequest struct {
	VenueID string `json:"venue_id"`
	ShowID  string `json:"show_id"`
}

// CreateSession handles POST /v1/sessions.  A session can only be opened
// for a show whose layout is compiled and cached; selecting against an
// unpublished layout is meaningless.
func (h *SessionHandler) CreateSession(c echo.Context) error {
	var req createSessionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid body"})
	}
	if req.VenueID == "" || req.ShowID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "venue_id and show_id are required"})
	}
	if _, ok := h.Cache.Get(c.Request().Context(), req.VenueID, req.ShowID); !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "layout not found"})
	}

	sessionID := uuid.NewString()
	token, err := utils.NewSessionToken(h.Secret, sessionID, req.VenueID, req.ShowID, h.MaxSelectable, h.TTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "token error"})
	}
	return c.JSON(http.StatusCreated, map[string]any{
		"session_id":     sessionID,
		"token":          token.Token,
		"expires_at":     token.Exp,
		"max_selectable": h.MaxSelectable,
	})
}

// toggleRequest flips one seat's membership in the session's selection.
type toggleRequest struct {
	SeatID string `json:"seat_id"`
}

// Toggle handles POST /v1/selection/toggle.  Debounced duplicates are not
// errors; unknown seats and cap violations are reported synchronously for
// inline user feedback.
func (h *SessionHandler) Toggle(c echo.Context) error {
	sessionID, err := getSessionID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
	}
	venueID, showID, err := getSessionShow(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
	}

	var req toggleRequest
	if err := c.Bind(&req); err != nil || req.SeatID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "seat_id is required"})
	}

	coord := h.Sessions.Coordinator(sessionID, venueID, showID)
	outcome, err := coord.Toggle(c.Request().Context(), req.SeatID, time.Now())
	if err != nil {
		if errors.Is(err, selection.ErrUnknownSeat) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "unknown seat"})
		}
		if errors.Is(err, selection.ErrSelectionLimit) {
			return c.JSON(http.StatusConflict, map[string]any{
				"error":          "selection_limit_exceeded",
				"max_selectable": h.MaxSelectable,
			})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "toggle failed"})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"outcome":  outcome,
		"selected": coord.Selected(),
		"count":    coord.Count(),
	})
}

// GetSelection handles GET /v1/selection and returns the session's current
// selected seat ids.
func (h *SessionHandler) GetSelection(c echo.Context) error {
	sessionID, err := getSessionID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
	}
	venueID, showID, err := getSessionShow(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
	}
	coord := h.Sessions.Coordinator(sessionID, venueID, showID)
	return c.JSON(http.StatusOK, map[string]any{
		"selected": coord.Selected(),
		"count":    coord.Count(),
	})
}

// EndSession handles DELETE /v1/sessions and discards the session's
// selection state at checkout handoff or abandonment.  The stable ids the
// client already holds are what the external booking system consumes; the
// engine keeps nothing else.
func (h *SessionHandler) EndSession(c echo.Context) error {
	sessionID, err := getSessionID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
	}
	h.Sessions.Drop(sessionID)
	return c.NoContent(http.StatusNoContent)
}
