package router // router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/event-ticketing/internal/handler"
	"github.com/iliyamo/event-ticketing/internal/middleware"
)

// RegisterOwner registers event creation and the owner-gated mutations
// under /v1.  Every route requires a valid JWT; ownership itself is
// enforced inside the handlers because it depends on the event row.
func RegisterOwner(e *echo.Echo, o *handler.OwnerHandler, jwtSecret string) {
	g := e.Group("/v1", middleware.JWTAuth(jwtSecret))

	// Any signed-in user may create an event and becomes its owner.
	g.POST("/events", o.Create)
	// Mutations below are owner-only.
	g.PUT("/events/:id", o.Update)
	g.POST("/events/:id/cancel", o.Cancel)
	g.POST("/events/:id/reactivate", o.Reactivate)

	// Creator dashboard: the caller's events with booked totals.
	g.GET("/my-events", o.MyEvents)
}
