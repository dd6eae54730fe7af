package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/event-ticketing/internal/model"
	"github.com/iliyamo/event-ticketing/internal/repository"
)

const maxCommentLength = 1000

// CommentHandler posts comments on event pages.  Reading is public and
// lives on PublicHandler; posting requires a signed-in user whose full
// name is denormalized onto the comment row.
type CommentHandler struct {
	Events   *repository.EventRepo
	Users    *repository.UserRepo
	Comments *repository.CommentRepo
}

// NewCommentHandler constructs a CommentHandler.
func NewCommentHandler(events *repository.EventRepo, users *repository.UserRepo, comments *repository.CommentRepo) *CommentHandler {
	if events == nil || users == nil || comments == nil {
		panic("nil repository passed to NewCommentHandler")
	}
	return &CommentHandler{Events: events, Users: users, Comments: comments}
}

type commentReq struct {
	Content string `json:"content"`
}

// Create handles POST /v1/events/:id/comments.
func (h *CommentHandler) Create(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return fail(c, err)
	}
	eventID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || eventID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid event id"})
	}

	var req commentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	req.Content = strings.TrimSpace(req.Content)
	if req.Content == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "content is required"})
	}
	if len(req.Content) > maxCommentLength {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "content is too long"})
	}

	ctx := c.Request().Context()
	if _, err := h.Events.GetByID(ctx, eventID); err != nil {
		if err == repository.ErrEventNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "event not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	user, err := h.Users.GetByID(ctx, userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	author := userID
	cm := &model.Comment{
		EventID:    eventID,
		UserID:     &author,
		AuthorName: user.FullName(),
		Content:    req.Content,
	}
	if err := h.Comments.Create(ctx, cm); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"id":          cm.ID,
		"event_id":    cm.EventID,
		"author_name": cm.AuthorName,
		"content":     cm.Content,
		"posted_at":   cm.PostedAt,
	})
}
