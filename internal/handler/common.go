package handler // handler defines the HTTP handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/event-ticketing/internal/inventory"
	"github.com/iliyamo/event-ticketing/internal/model"
	"github.com/iliyamo/event-ticketing/internal/repository"
)

// errInvalidEventID marks an unparseable :id path parameter.
var errInvalidEventID = errors.New("invalid event id")

// getUserID extracts the authenticated user's ID from the echo context.
// JWTAuth stores it as uint64, but the type switch tolerates the other
// numeric encodings a claim can arrive as.  A missing or unusable value
// yields inventory.ErrAuthRequired.
func getUserID(c echo.Context) (uint64, error) {
	switch t := c.Get("user_id").(type) {
	case uint64:
		return t, nil
	case int:
		return uint64(t), nil
	case int64:
		return uint64(t), nil
	case float64:
		return uint64(t), nil
	case string:
		if n, err := strconv.ParseUint(t, 10, 64); err == nil {
			return n, nil
		}
	}
	return 0, inventory.ErrAuthRequired
}

// errorStatus translates the shared failure sentinels into their HTTP
// status and message.  Every handler funnels authentication, ownership
// and lookup failures through here so the mapping lives in one place.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, inventory.ErrAuthRequired):
		return http.StatusUnauthorized, "authentication required"
	case errors.Is(err, inventory.ErrNotOwner):
		return http.StatusForbidden, "you do not own this event"
	case errors.Is(err, repository.ErrEventNotFound):
		return http.StatusNotFound, "event not found"
	case errors.Is(err, errInvalidEventID):
		return http.StatusBadRequest, "invalid event id"
	}
	return http.StatusInternalServerError, "database error"
}

// fail writes the JSON error response for a sentinel failure.
func fail(c echo.Context, err error) error {
	status, msg := errorStatus(err)
	return c.JSON(status, echo.Map{"error": msg})
}

// eventResponse is the JSON shape of an event across all endpoints.
type eventResponse struct {
	ID               uint64  `json:"id"`
	Title            string  `json:"title"`
	Category         string  `json:"category"`
	ArtistNames      string  `json:"artist_names"`
	Venue            string  `json:"venue"`
	Date             string  `json:"date"`
	StartTime        string  `json:"start_time"`
	EndTime          string  `json:"end_time"`
	Capacity         uint32  `json:"capacity"`
	TicketsAvailable uint32  `json:"tickets_available"`
	ImageURL         string  `json:"image_url,omitempty"`
	Description      string  `json:"description,omitempty"`
	AgeRestriction   string  `json:"age_restriction,omitempty"`
	Status           string  `json:"status"`
	CreatedBy        *uint64 `json:"created_by,omitempty"`
}

func toEventResponse(ev *model.Event) eventResponse {
	return eventResponse{
		ID:               ev.ID,
		Title:            ev.Title,
		Category:         ev.Category,
		ArtistNames:      ev.ArtistNames,
		Venue:            ev.Venue,
		Date:             ev.Date.Format("2006-01-02"),
		StartTime:        ev.StartTime,
		EndTime:          ev.EndTime,
		Capacity:         ev.Capacity,
		TicketsAvailable: ev.TicketsAvailable,
		ImageURL:         ev.ImageURL,
		Description:      ev.Description,
		AgeRestriction:   ev.AgeRestriction,
		Status:           ev.Status,
		CreatedBy:        ev.CreatedBy,
	}
}
