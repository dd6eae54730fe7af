package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/event-ticketing/internal/model"
)

// CommentRepo provides access to event comments.  Comments are written
// once and never edited or removed.
type CommentRepo struct {
	db *sql.DB
}

// NewCommentRepo returns a CommentRepo bound to the given database.
func NewCommentRepo(db *sql.DB) *CommentRepo { return &CommentRepo{db: db} }

// Create inserts a comment and populates its generated ID and
// posted_at timestamp.
func (r *CommentRepo) Create(ctx context.Context, c *model.Comment) error {
	var userID any
	if c.UserID != nil {
		userID = *c.UserID
	}
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO comments (event_id, user_id, author_name, content) VALUES (?,?,?,?)`,
		c.EventID, userID, c.AuthorName, c.Content)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	c.ID = uint64(id)
	return r.db.QueryRowContext(ctx,
		`SELECT posted_at FROM comments WHERE id = ?`, c.ID).Scan(&c.PostedAt)
}

// ListByEvent returns all comments for an event, newest first.
func (r *CommentRepo) ListByEvent(ctx context.Context, eventID uint64) ([]model.Comment, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, event_id, user_id, author_name, content, posted_at
		 FROM comments WHERE event_id = ? ORDER BY posted_at DESC, id DESC`, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Comment, 0)
	for rows.Next() {
		var (
			c      model.Comment
			userID sql.NullInt64
		)
		if err := rows.Scan(&c.ID, &c.EventID, &userID, &c.AuthorName, &c.Content, &c.PostedAt); err != nil {
			return nil, err
		}
		if userID.Valid {
			id := uint64(userID.Int64)
			c.UserID = &id
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
