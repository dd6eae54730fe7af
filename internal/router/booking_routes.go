package router // router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/event-ticketing/internal/handler"
	"github.com/iliyamo/event-ticketing/internal/middleware"
)

// RegisterBookings registers ticket purchase, booking history and
// comment posting under /v1.  All of these require a signed-in user.
func RegisterBookings(e *echo.Echo, b *handler.BookingHandler, cm *handler.CommentHandler, jwtSecret string) {
	g := e.Group("/v1", middleware.JWTAuth(jwtSecret))

	// Purchase tickets for an event.  The handler locks the event row so
	// concurrent purchases never oversell.
	g.POST("/events/:id/bookings", b.Create)
	// The caller's booking history, newest first.
	g.GET("/my-bookings", b.History)
	// Post a comment on an event page.
	g.POST("/events/:id/comments", cm.Create)
}
