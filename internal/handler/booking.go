package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/event-ticketing/internal/inventory"
	"github.com/iliyamo/event-ticketing/internal/model"
	"github.com/iliyamo/event-ticketing/internal/queue"
	"github.com/iliyamo/event-ticketing/internal/repository"
	queue_publisher "github.com/iliyamo/event-ticketing/internal/service"
)

// BookingHandler owns ticket purchase and booking history.
type BookingHandler struct {
	Events   *repository.EventRepo
	Bookings *repository.BookingRepo
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(events *repository.EventRepo, bookings *repository.BookingRepo) *BookingHandler {
	if events == nil || bookings == nil {
		panic("nil repository passed to NewBookingHandler")
	}
	return &BookingHandler{Events: events, Bookings: bookings}
}

type bookReq struct {
	Quantity int `json:"quantity"`
}

// Create handles POST /v1/events/:id/bookings.  The event row is locked
// with SELECT ... FOR UPDATE so that the availability check, the
// decrement and the booking insert are a single atomic unit; two buyers
// racing for the last tickets serialize on the row lock and the loser
// sees the updated count.
func (h *BookingHandler) Create(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return fail(c, err)
	}

	eventID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || eventID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid event id"})
	}

	var req bookReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	ctx := c.Request().Context()
	tx, err := h.Events.DB().BeginTx(ctx, nil)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	ev, err := h.Events.GetByIDForUpdateTx(ctx, tx, eventID)
	if err != nil {
		if err == repository.ErrEventNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "event not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	if err := inventory.Reserve(ev, req.Quantity); err != nil {
		return c.JSON(reserveStatus(err), echo.Map{"error": reserveMessage(err, ev)})
	}

	if err := h.Events.UpdateInventoryTx(ctx, tx, ev); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	booking := &model.Booking{
		Reference: uuid.NewString(),
		UserID:    userID,
		EventID:   ev.ID,
		Quantity:  uint32(req.Quantity),
	}
	if err := h.Bookings.CreateTx(ctx, tx, booking); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	if err := tx.Commit(); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	committed = true

	// Notification is best effort; the booking is already committed.
	go func(msg queue.TicketsBookedEvent) {
		pubCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = queue_publisher.PublishTicketsBooked(pubCtx, msg)
	}(queue.TicketsBookedEvent{
		BookingID:        booking.ID,
		Reference:        booking.Reference,
		UserID:           booking.UserID,
		EventID:          ev.ID,
		EventTitle:       ev.Title,
		Venue:            ev.Venue,
		Quantity:         booking.Quantity,
		TicketsRemaining: ev.TicketsAvailable,
		EventStatus:      ev.Status,
		BookedAt:         booking.BookedAt.Format(time.RFC3339),
	})

	return c.JSON(http.StatusCreated, echo.Map{
		"booking": echo.Map{
			"id":        booking.ID,
			"reference": booking.Reference,
			"event_id":  booking.EventID,
			"quantity":  booking.Quantity,
			"booked_at": booking.BookedAt,
		},
		"event": toEventResponse(ev),
	})
}

// reserveStatus maps a reservation failure to its HTTP status.
func reserveStatus(err error) int {
	switch err {
	case inventory.ErrInvalidQuantity:
		return http.StatusBadRequest
	case inventory.ErrNotBookable, inventory.ErrInsufficientTickets:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// reserveMessage mirrors the storefront wording: a sold out event gets
// its own message whether rejected on status or on count, and a partial
// shortfall tells the buyer how many tickets remain.
func reserveMessage(err error, ev *model.Event) string {
	switch err {
	case inventory.ErrInvalidQuantity:
		return "quantity must be at least 1"
	case inventory.ErrNotBookable:
		if ev.Status == model.StatusSoldOut {
			return "this event is sold out"
		}
		return "this event cannot be booked at the moment"
	case inventory.ErrInsufficientTickets:
		if ev.TicketsAvailable == 0 {
			return "this event is sold out"
		}
		return "only " + strconv.FormatUint(uint64(ev.TicketsAvailable), 10) + " tickets left"
	default:
		return "booking failed"
	}
}

// History handles GET /v1/my-bookings.
func (h *BookingHandler) History(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return fail(c, err)
	}
	items, err := h.Bookings.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}
