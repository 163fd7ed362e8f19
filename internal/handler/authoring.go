package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/IsakPar/stagemap/internal/cache"
	"github.com/IsakPar/stagemap/internal/compiler"
	"github.com/IsakPar/stagemap/internal/model"
	"github.com/IsakPar/stagemap/internal/queue"
	"github.com/IsakPar/stagemap/internal/repository"
	queue_publisher "github.com/IsakPar/stagemap/internal/service"
)

// AuthoringHandler serves the venue-management surface: it accepts section
// configurations, runs the compile pipeline, persists the resulting
// snapshot and swaps it into the cache.  Compile failures surface
// synchronously and verbatim; the engine never auto-corrects an authored
// layout.
type AuthoringHandler struct {
	Compiler *compiler.Compiler
	Repo     *repository.LayoutRepo
	Cache    *cache.LayoutCache
}

// NewAuthoringHandler constructs an AuthoringHandler and panics if any dependency is nil.
func NewAuthoringHandler(comp *compiler.Compiler, repo *repository.LayoutRepo, lc *cache.LayoutCache) *AuthoringHandler {
	if comp == nil || lc == nil {
		panic("nil dependency passed to NewAuthoringHandler")
	}
	return &AuthoringHandler{Compiler: comp, Repo: repo, Cache: lc}
}

// compileRequest is the publish payload from the authoring surface.
type compileRequest struct {
	Sections []model.SectionConfig `json:"sections"`
	Stage    model.Rect            `json:"stage"`
}

// PublishLayout handles POST /v1/venues/:venue_id/shows/:show_id/layout.
// On success the new snapshot is durably stored, cached, and announced on
// the message broker; on failure nothing is stored and the typed compile
// error is returned to the caller.
func (h *AuthoringHandler) PublishLayout(c echo.Context) error {
	venueID, ok := pathID(c, "venue_id")
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid venue_id"})
	}
	showID, ok := pathID(c, "show_id")
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid show_id"})
	}

	var req compileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid body"})
	}
	if len(req.Sections) == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "sections must not be empty"})
	}

	ctx := c.Request().Context()
	snap, err := h.Compiler.Compile(ctx, venueID, showID, req.Sections, req.Stage)
	if err != nil {
		return compileErrorResponse(c, err)
	}

	if h.Repo != nil {
		if err := h.Repo.Save(ctx, snap); err != nil {
			log.Printf("authoring: save snapshot %s/%s v%d failed: %v", venueID, showID, snap.Version, err)
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "db error"})
		}
	}
	h.Cache.Put(ctx, snap)

	// Broker failures are logged inside the publisher and ignored here:
	// the snapshot is already durable and readable over HTTP.
	_ = queue_publisher.PublishLayoutPublished(ctx, queue.LayoutPublishedEvent{
		VenueID:      snap.VenueID,
		ShowID:       snap.ShowID,
		Version:      snap.Version,
		SectionCount: len(snap.Sections),
		SeatCount:    len(snap.Seats),
		CompiledAt:   snap.CompiledAt.Format("2006-01-02T15:04:05Z07:00"),
	})

	return c.JSON(http.StatusCreated, map[string]any{
		"venue_id": snap.VenueID,
		"show_id":  snap.ShowID,
		"version":  snap.Version,
		"sections": len(snap.Sections),
		"seats":    len(snap.Seats),
	})
}

// ListVersions handles GET /v1/venues/:venue_id/shows/:show_id/layout/versions
// and returns the stored snapshot versions for the authoring history view.
func (h *AuthoringHandler) ListVersions(c echo.Context) error {
	venueID, ok := pathID(c, "venue_id")
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid venue_id"})
	}
	showID, ok := pathID(c, "show_id")
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid show_id"})
	}
	if h.Repo == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "no persistence configured"})
	}
	versions, err := h.Repo.ListVersions(c.Request().Context(), venueID, showID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "db error"})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"venue_id": venueID,
		"show_id":  showID,
		"versions": versions,
	})
}

// compileErrorResponse maps the typed compile errors onto HTTP responses the
// authoring surface can show inline.
func compileErrorResponse(c echo.Context, err error) error {
	var invalid *compiler.InvalidSectionConfigError
	if errors.As(err, &invalid) {
		return c.JSON(http.StatusUnprocessableEntity, map[string]any{
			"error":      "invalid_section_config",
			"section_id": invalid.SectionID,
			"reason":     invalid.Reason,
		})
	}
	var mismatch *compiler.CapacityMismatchError
	if errors.As(err, &mismatch) {
		return c.JSON(http.StatusUnprocessableEntity, map[string]any{
			"error":      "capacity_mismatch",
			"section_id": mismatch.SectionID,
			"expected":   mismatch.Expected,
			"generated":  mismatch.Generated,
		})
	}
	var overlap *compiler.SectionOverlapError
	if errors.As(err, &overlap) {
		return c.JSON(http.StatusUnprocessableEntity, map[string]any{
			"error": "section_overlap",
			"pairs": overlap.Pairs,
		})
	}
	log.Printf("authoring: compile failed: %v", err)
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": "compile failed"})
}
