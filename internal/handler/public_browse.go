package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/event-ticketing/internal/model"
	"github.com/iliyamo/event-ticketing/internal/repository"
)

// PublicHandler serves the unauthenticated browse endpoints: listing
// and searching upcoming events, event detail pages and their comment
// threads.  These routes sit behind the Redis response cache.
type PublicHandler struct {
	Events   *repository.EventRepo
	Comments *repository.CommentRepo
}

// NewPublicHandler constructs a PublicHandler with its repositories.
func NewPublicHandler(events *repository.EventRepo, comments *repository.CommentRepo) *PublicHandler {
	if events == nil || comments == nil {
		panic("nil repository passed to NewPublicHandler")
	}
	return &PublicHandler{Events: events, Comments: comments}
}

// ListEvents handles GET /v1/events.  Query parameters: q (substring
// over title/artist/venue, no ranking), category (one of the fixed
// categories or "All"), page and page_size.  Only upcoming events are
// returned, date ascending.
func (h *PublicHandler) ListEvents(c echo.Context) error {
	text := strings.TrimSpace(c.QueryParam("q"))
	category := strings.TrimSpace(c.QueryParam("category"))
	if category != "" && category != "All" && !model.ValidCategory(category) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown category"})
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}
	ps, _ := strconv.Atoi(c.QueryParam("page_size"))
	if ps < 1 {
		ps = 20
	}
	if ps > 100 {
		ps = 100
	}

	items, total, err := h.Events.SearchUpcoming(c.Request().Context(), repository.EventSearchQuery{
		Text:     text,
		Category: category,
		Page:     page,
		PageSize: ps,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	out := make([]eventResponse, 0, len(items))
	for i := range items {
		out = append(out, toEventResponse(&items[i]))
	}
	return c.JSON(http.StatusOK, echo.Map{
		"data":       out,
		"total":      total,
		"page":       page,
		"page_size":  ps,
		"categories": model.Categories,
	})
}

// GetEvent handles GET /v1/events/:id and returns the full event
// detail.
func (h *PublicHandler) GetEvent(c echo.Context) error {
	eventID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || eventID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid event id"})
	}
	ev, err := h.Events.GetByID(c.Request().Context(), eventID)
	if err != nil {
		if err == repository.ErrEventNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "event not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"item": toEventResponse(ev)})
}

// ListComments handles GET /v1/events/:id/comments, newest first.
func (h *PublicHandler) ListComments(c echo.Context) error {
	eventID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || eventID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid event id"})
	}
	if _, err := h.Events.GetByID(c.Request().Context(), eventID); err != nil {
		if err == repository.ErrEventNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "event not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	comments, err := h.Comments.ListByEvent(c.Request().Context(), eventID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	out := make([]echo.Map, 0, len(comments))
	for _, cm := range comments {
		out = append(out, echo.Map{
			"id":          cm.ID,
			"author_name": cm.AuthorName,
			"content":     cm.Content,
			"posted_at":   cm.PostedAt,
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": out})
}
