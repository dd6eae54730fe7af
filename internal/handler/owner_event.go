package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/event-ticketing/internal/inventory"
	"github.com/iliyamo/event-ticketing/internal/model"
	"github.com/iliyamo/event-ticketing/internal/repository"
)

// OwnerHandler covers event creation and the owner-only mutations:
// editing details, cancelling and reactivating, plus the creator's
// dashboard listing.
type OwnerHandler struct {
	Events   *repository.EventRepo
	Bookings *repository.BookingRepo
}

// NewOwnerHandler constructs an OwnerHandler.
func NewOwnerHandler(events *repository.EventRepo, bookings *repository.BookingRepo) *OwnerHandler {
	if events == nil || bookings == nil {
		panic("nil repository passed to NewOwnerHandler")
	}
	return &OwnerHandler{Events: events, Bookings: bookings}
}

type eventReq struct {
	Title            string  `json:"title"`
	Category         string  `json:"category"`
	ArtistNames      string  `json:"artist_names"`
	Venue            string  `json:"venue"`
	Date             string  `json:"date"`
	StartTime        string  `json:"start_time"`
	EndTime          string  `json:"end_time"`
	Capacity         uint32  `json:"capacity"`
	TicketsAvailable *uint32 `json:"tickets_available"`
	ImageURL         string  `json:"image_url"`
	Description      string  `json:"description"`
	AgeRestriction   string  `json:"age_restriction"`
}

// validate normalizes the request and reports the first problem found.
func (r *eventReq) validate() (time.Time, string) {
	r.Title = strings.TrimSpace(r.Title)
	r.Venue = strings.TrimSpace(r.Venue)
	r.ArtistNames = strings.TrimSpace(r.ArtistNames)
	if r.Title == "" {
		return time.Time{}, "title is required"
	}
	if !model.ValidCategory(r.Category) {
		return time.Time{}, "unknown category"
	}
	if r.Venue == "" {
		return time.Time{}, "venue is required"
	}
	date, err := time.Parse("2006-01-02", r.Date)
	if err != nil {
		return time.Time{}, "date must be YYYY-MM-DD"
	}
	if _, err := time.Parse("15:04", r.StartTime); err != nil {
		return time.Time{}, "start_time must be HH:MM"
	}
	if r.EndTime != "" {
		if _, err := time.Parse("15:04", r.EndTime); err != nil {
			return time.Time{}, "end_time must be HH:MM"
		}
	}
	if r.Capacity < 1 {
		return time.Time{}, "capacity must be at least 1"
	}
	if r.TicketsAvailable != nil && *r.TicketsAvailable > r.Capacity {
		return time.Time{}, "tickets_available cannot exceed capacity"
	}
	return date, ""
}

// Create handles POST /v1/events.  The caller becomes the owner.  When
// tickets_available is omitted it defaults to the full capacity.
func (h *OwnerHandler) Create(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return fail(c, err)
	}

	var req eventReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	date, msg := req.validate()
	if msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}

	available := req.Capacity
	if req.TicketsAvailable != nil {
		available = *req.TicketsAvailable
	}
	status := model.StatusOpen
	if available == 0 {
		status = model.StatusSoldOut
	}

	creator := userID
	ev := &model.Event{
		Title:            req.Title,
		Category:         req.Category,
		ArtistNames:      req.ArtistNames,
		Venue:            req.Venue,
		Date:             date,
		StartTime:        req.StartTime,
		EndTime:          req.EndTime,
		Capacity:         req.Capacity,
		TicketsAvailable: available,
		ImageURL:         req.ImageURL,
		Description:      req.Description,
		AgeRestriction:   req.AgeRestriction,
		Status:           status,
		CreatedBy:        &creator,
	}
	if err := h.Events.Create(c.Request().Context(), ev); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"item": toEventResponse(ev)})
}

// Update handles PUT /v1/events/:id.  Only the owner may edit, and
// status is deliberately not editable here; cancellation and
// reactivation have their own endpoints.
func (h *OwnerHandler) Update(c echo.Context) error {
	ev, err := h.loadOwned(c)
	if err != nil {
		return fail(c, err)
	}

	var req eventReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	date, msg := req.validate()
	if msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}

	ev.Title = req.Title
	ev.Category = req.Category
	ev.ArtistNames = req.ArtistNames
	ev.Venue = req.Venue
	ev.Date = date
	ev.StartTime = req.StartTime
	ev.EndTime = req.EndTime
	ev.Capacity = req.Capacity
	if req.TicketsAvailable != nil {
		ev.TicketsAvailable = *req.TicketsAvailable
	} else if ev.TicketsAvailable > ev.Capacity {
		ev.TicketsAvailable = ev.Capacity
	}
	ev.ImageURL = req.ImageURL
	ev.Description = req.Description
	ev.AgeRestriction = req.AgeRestriction

	if err := h.Events.UpdateDetails(c.Request().Context(), ev); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"item": toEventResponse(ev)})
}

// Cancel handles POST /v1/events/:id/cancel.  Cancelling is
// unconditional for the owner regardless of current status.
func (h *OwnerHandler) Cancel(c echo.Context) error {
	return h.setStatus(c, inventory.Cancel)
}

// Reactivate handles POST /v1/events/:id/reactivate.  The event is set
// back to open as-is; availability is not recomputed, so reactivating a
// sold out event yields an open event with zero tickets.
func (h *OwnerHandler) Reactivate(c echo.Context) error {
	return h.setStatus(c, inventory.Reactivate)
}

func (h *OwnerHandler) setStatus(c echo.Context, apply func(*model.Event)) error {
	ev, err := h.loadOwned(c)
	if err != nil {
		return fail(c, err)
	}
	apply(ev)
	if err := h.Events.UpdateStatus(c.Request().Context(), ev.ID, ev.Status); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"item": toEventResponse(ev)})
}

// loadOwned fetches the event from the path and enforces ownership.
// Failures come back as the shared sentinels (inventory.ErrAuthRequired,
// inventory.ErrNotOwner, repository.ErrEventNotFound) for errorStatus to
// translate.
func (h *OwnerHandler) loadOwned(c echo.Context) (*model.Event, error) {
	userID, err := getUserID(c)
	if err != nil {
		return nil, err
	}
	eventID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || eventID == 0 {
		return nil, errInvalidEventID
	}
	ev, err := h.Events.GetByID(c.Request().Context(), eventID)
	if err != nil {
		return nil, err
	}
	if !inventory.IsOwner(userID, ev) {
		return nil, inventory.ErrNotOwner
	}
	return ev, nil
}

// MyEvents handles GET /v1/my-events: every event the caller created,
// each with the total tickets booked so far.
func (h *OwnerHandler) MyEvents(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return fail(c, err)
	}
	events, err := h.Events.ListByCreator(c.Request().Context(), userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	out := make([]echo.Map, 0, len(events))
	for i := range events {
		booked, err := h.Bookings.CountForEvent(c.Request().Context(), events[i].ID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
		}
		out = append(out, echo.Map{
			"event":        toEventResponse(&events[i]),
			"total_booked": booked,
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": out})
}
