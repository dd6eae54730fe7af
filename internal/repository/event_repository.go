// Package repository: data access for events.  The events table carries
// the live inventory pair (tickets_available, status); every write to
// that pair happens either through UpdateInventoryTx inside a booking
// transaction, or through the status/detail updates used by owners.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/iliyamo/event-ticketing/internal/model"
)

// EventRepo manages persistence for events.
type EventRepo struct {
	db *sql.DB
}

// NewEventRepo constructs an EventRepo with the given DB handle.
func NewEventRepo(db *sql.DB) *EventRepo { return &EventRepo{db: db} }

// DB exposes the underlying sql.DB so callers can begin transactions
// spanning events and bookings.
func (r *EventRepo) DB() *sql.DB { return r.db }

const eventColumns = `id, title, category, artist_names, venue, event_date, start_time, end_time,
	capacity, tickets_available, image_url, description, age_restriction, status, created_by,
	created_at, updated_at`

func scanEvent(row interface{ Scan(...any) error }, ev *model.Event) error {
	var createdBy sql.NullInt64
	if err := row.Scan(
		&ev.ID, &ev.Title, &ev.Category, &ev.ArtistNames, &ev.Venue,
		&ev.Date, &ev.StartTime, &ev.EndTime,
		&ev.Capacity, &ev.TicketsAvailable,
		&ev.ImageURL, &ev.Description, &ev.AgeRestriction,
		&ev.Status, &createdBy, &ev.CreatedAt, &ev.UpdatedAt,
	); err != nil {
		return err
	}
	if createdBy.Valid {
		id := uint64(createdBy.Int64)
		ev.CreatedBy = &id
	}
	return nil
}

// Create inserts a new event and populates the generated ID plus the
// DB-default fields on the given struct.  Status always starts OPEN and
// tickets_available must already be clamped to capacity by the caller.
func (r *EventRepo) Create(ctx context.Context, ev *model.Event) error {
	const q = `INSERT INTO events
		(title, category, artist_names, venue, event_date, start_time, end_time,
		 capacity, tickets_available, image_url, description, age_restriction, status, created_by)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?)`
	var createdBy any
	if ev.CreatedBy != nil {
		createdBy = *ev.CreatedBy
	}
	res, err := r.db.ExecContext(ctx, q,
		ev.Title, ev.Category, ev.ArtistNames, ev.Venue,
		ev.Date, ev.StartTime, ev.EndTime,
		ev.Capacity, ev.TicketsAvailable,
		ev.ImageURL, ev.Description, ev.AgeRestriction,
		model.StatusOpen, createdBy)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	ev.ID = uint64(id)
	// Read the row back so timestamps and defaults are populated.
	sel := `SELECT ` + eventColumns + ` FROM events WHERE id = ?`
	return scanEvent(r.db.QueryRowContext(ctx, sel, ev.ID), ev)
}

// GetByID retrieves an event by its ID, returning ErrEventNotFound when
// no row matches.
func (r *EventRepo) GetByID(ctx context.Context, id uint64) (*model.Event, error) {
	q := `SELECT ` + eventColumns + ` FROM events WHERE id = ?`
	var ev model.Event
	if err := scanEvent(r.db.QueryRowContext(ctx, q, id), &ev); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return &ev, nil
}

// GetByIDForUpdateTx loads an event inside the given transaction with a
// row-level write lock (SELECT ... FOR UPDATE).  A concurrent booking
// transaction against the same event blocks here until the first one
// commits, so the availability check never runs against a stale count.
func (r *EventRepo) GetByIDForUpdateTx(ctx context.Context, tx *sql.Tx, id uint64) (*model.Event, error) {
	q := `SELECT ` + eventColumns + ` FROM events WHERE id = ? FOR UPDATE`
	var ev model.Event
	if err := scanEvent(tx.QueryRowContext(ctx, q, id), &ev); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return &ev, nil
}

// UpdateInventoryTx writes the availability/status pair back to the row
// previously locked by GetByIDForUpdateTx.  It must run in the same
// transaction as the booking insert so both commit or neither does.
func (r *EventRepo) UpdateInventoryTx(ctx context.Context, tx *sql.Tx, ev *model.Event) error {
	_, err := tx.ExecContext(ctx,
		`UPDATE events SET tickets_available = ?, status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		ev.TicketsAvailable, ev.Status, ev.ID)
	return err
}

// UpdateStatus sets an event's status unconditionally.  Ownership must
// be verified by the caller before invoking this (cancel/reactivate).
func (r *EventRepo) UpdateStatus(ctx context.Context, id uint64, status string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE events SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		status, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// Either missing or already in this status; distinguish the two.
		var one int
		if err := r.db.QueryRowContext(ctx, `SELECT 1 FROM events WHERE id = ? LIMIT 1`, id).Scan(&one); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrEventNotFound
			}
			return err
		}
	}
	return nil
}

// UpdateDetails overwrites the editable fields of an event.  Capacity
// and tickets_available are included because owners may correct them
// manually; the status/availability invariant is not re-validated here,
// matching the behavior inherited from the original product.
func (r *EventRepo) UpdateDetails(ctx context.Context, ev *model.Event) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE events SET title=?, category=?, artist_names=?, venue=?, event_date=?,
			start_time=?, end_time=?, capacity=?, tickets_available=?,
			image_url=?, description=?, age_restriction=?, updated_at=CURRENT_TIMESTAMP
		 WHERE id=?`,
		ev.Title, ev.Category, ev.ArtistNames, ev.Venue, ev.Date,
		ev.StartTime, ev.EndTime, ev.Capacity, ev.TicketsAvailable,
		ev.ImageURL, ev.Description, ev.AgeRestriction, ev.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var one int
		if err := r.db.QueryRowContext(ctx, `SELECT 1 FROM events WHERE id=? LIMIT 1`, ev.ID).Scan(&one); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrEventNotFound
			}
			return err
		}
	}
	return nil
}

// ListByCreator returns every event created by the given user, newest
// event date first.  Used for the "my events" management page.
func (r *EventRepo) ListByCreator(ctx context.Context, userID uint64) ([]model.Event, error) {
	q := `SELECT ` + eventColumns + ` FROM events WHERE created_by = ? ORDER BY event_date DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	result := make([]model.Event, 0)
	for rows.Next() {
		var ev model.Event
		if err := scanEvent(rows, &ev); err != nil {
			return nil, err
		}
		result = append(result, ev)
	}
	return result, rows.Err()
}

// EventSearchQuery defines the filters and pagination for browsing
// events.  Text matches plain case-insensitive substrings over title,
// artist and venue; there is no relevance ranking.
type EventSearchQuery struct {
	Text     string
	Category string
	Page     int
	PageSize int
}

// SearchUpcoming returns upcoming events (event_date >= today) matching
// the query, ordered by date ascending, plus the total match count for
// pagination.
func (r *EventRepo) SearchUpcoming(ctx context.Context, q EventSearchQuery) ([]model.Event, int64, error) {
	where := []string{"event_date >= CURDATE()"}
	args := []any{}

	if q.Category != "" && q.Category != "All" {
		where = append(where, "category = ?")
		args = append(args, q.Category)
	}
	if q.Text != "" {
		like := "%" + strings.ToLower(q.Text) + "%"
		where = append(where, "(LOWER(title) LIKE ? OR LOWER(artist_names) LIKE ? OR LOWER(venue) LIKE ?)")
		args = append(args, like, like, like)
	}
	cond := strings.Join(where, " AND ")

	var total int64
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM events WHERE `+cond, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit := q.PageSize
	offset := (q.Page - 1) * q.PageSize
	dataSQL := `SELECT ` + eventColumns + ` FROM events WHERE ` + cond +
		` ORDER BY event_date ASC, id ASC LIMIT ? OFFSET ?`
	argsData := append(append([]any{}, args...), limit, offset)

	rows, err := r.db.QueryContext(ctx, dataSQL, argsData...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	out := make([]model.Event, 0, limit)
	for rows.Next() {
		var ev model.Event
		if err := scanEvent(rows, &ev); err != nil {
			return nil, 0, err
		}
		out = append(out, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}
