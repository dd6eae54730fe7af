package router // router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/event-ticketing/internal/config"
	"github.com/iliyamo/event-ticketing/internal/handler"
	"github.com/iliyamo/event-ticketing/internal/middleware"
)

// RegisterPublic registers the unauthenticated browse endpoints.  These
// routes carry the Redis-backed rate limiter and response cache; both
// middlewares degrade to pass-through when Redis is unavailable, so a
// missing cache never takes the storefront down.
func RegisterPublic(e *echo.Echo, p *handler.PublicHandler, rdb *redis.Client) {
	rlCfg := config.LoadRateLimitConfig()
	ccCfg := config.LoadCacheConfig()

	g := e.Group(
		"/v1",
		middleware.RateLimit(rlCfg, rdb),
		middleware.ResponseCache(ccCfg, rdb),
	)

	// Browse and search upcoming events.  Supports ?q=, ?category=,
	// ?page= and ?page_size=.
	g.GET("/events", p.ListEvents)
	// Event detail page.
	g.GET("/events/:id", p.GetEvent)
	// Comment thread for an event, newest first.
	g.GET("/events/:id/comments", p.ListComments)
}
