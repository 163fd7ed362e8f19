package handler

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/IsakPar/stagemap/internal/cache"
	"github.com/IsakPar/stagemap/internal/model"
	"github.com/IsakPar/stagemap/internal/repository"
	"github.com/IsakPar/stagemap/internal/view"
)

// PublicHandler exposes read-only layout endpoints to the presentation
// layer: the full snapshot, per-viewport view frames, and stable-id
// translation.  None of these routes require a session token, so guests
// can preview a seat map before opening a selection session.
type PublicHandler struct {
	Cache *cache.LayoutCache
	Repo  *repository.LayoutRepo // optional cold-start fallback
}

// NewPublicHandler constructs a PublicHandler and panics if the cache is nil.
func NewPublicHandler(lc *cache.LayoutCache, repo *repository.LayoutRepo) *PublicHandler {
	if lc == nil {
		panic("nil cache passed to NewPublicHandler")
	}
	return &PublicHandler{Cache: lc, Repo: repo}
}

// snapshot reads the cached snapshot, falling back to the repository on a
// cold cache and warming the cache from the hit.
func (h *PublicHandler) snapshot(ctx context.Context, venueID, showID string) (*model.LayoutSnapshot, bool) {
	if snap, ok := h.Cache.Get(ctx, venueID, showID); ok {
		return snap, true
	}
	if h.Repo == nil {
		return nil, false
	}
	snap, err := h.Repo.GetLatest(ctx, venueID, showID)
	if err != nil {
		if !errors.Is(err, repository.ErrSnapshotNotFound) {
			// Transient read failures look like a miss; the next request retries.
			log.Printf("layout: load %s/%s from db failed: %v", venueID, showID, err)
		}
		return nil, false
	}
	h.Cache.Put(ctx, snap)
	return snap, true
}

// GetLayout handles GET /v1/venues/:venue_id/shows/:show_id/layout and
// returns the current snapshot.
func (h *PublicHandler) GetLayout(c echo.Context) error {
	venueID, ok := pathID(c, "venue_id")
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid venue_id"})
	}
	showID, ok := pathID(c, "show_id")
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid show_id"})
	}
	snap, ok := h.snapshot(c.Request().Context(), venueID, showID)
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "layout not found"})
	}
	return c.JSON(http.StatusOK, snap)
}

// GetFrame handles GET /v1/venues/:venue_id/shows/:show_id/layout/frame.
// Query parameters max_width, max_height and padding control the viewport
// fit; defaults target a desktop seat-map panel.
func (h *PublicHandler) GetFrame(c echo.Context) error {
	venueID, ok := pathID(c, "venue_id")
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid venue_id"})
	}
	showID, ok := pathID(c, "show_id")
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid show_id"})
	}
	maxWidth, okW := floatQuery(c, "max_width", 800)
	maxHeight, okH := floatQuery(c, "max_height", 600)
	padding, okP := floatQuery(c, "padding", 20)
	if !okW || !okH || !okP {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid viewport parameters"})
	}

	snap, ok := h.snapshot(c.Request().Context(), venueID, showID)
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "layout not found"})
	}

	frame, err := view.Frame(snap, maxWidth, maxHeight, padding)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, frame)
}

// translateRequest is the batch translation payload.
type translateRequest struct {
	SeatIDs []string `json:"seat_ids"`
}

// Translate handles POST /v1/venues/:venue_id/shows/:show_id/layout/translate.
// Unknown ids come back with a null position so the renderer can draw the
// seats it recognizes and log the rest, instead of failing the batch.
func (h *PublicHandler) Translate(c echo.Context) error {
	venueID, ok := pathID(c, "venue_id")
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid venue_id"})
	}
	showID, ok := pathID(c, "show_id")
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid show_id"})
	}

	var req translateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid body"})
	}
	if len(req.SeatIDs) == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "seat_ids must not be empty"})
	}

	ctx := c.Request().Context()
	if _, ok := h.snapshot(ctx, venueID, showID); !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "layout not found"})
	}

	translated, ok := h.Cache.Translate(ctx, venueID, showID, req.SeatIDs)
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "layout not found"})
	}

	unknown := 0
	for _, t := range translated {
		if t.Position == nil {
			unknown++
		}
	}
	if unknown > 0 {
		log.Printf("translate: %d of %d ids unknown for %s/%s", unknown, len(translated), venueID, showID)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"venue_id": venueID,
		"show_id":  showID,
		"items":    translated,
	})
}
