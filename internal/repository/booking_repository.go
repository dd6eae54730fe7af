package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/iliyamo/event-ticketing/internal/model"
)

// BookingRepo provides access to the bookings ledger.  Bookings are
// append-only: there is no update or delete path, and CreateTx is the
// only writer so that every insert is paired with the inventory
// decrement in the same transaction.
type BookingRepo struct {
	db *sql.DB
}

// NewBookingRepo returns a BookingRepo bound to the given database.
func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

// CreateTx inserts a booking row within the caller's transaction and
// populates the generated ID and booked_at timestamp on the record.
// The caller must commit or roll back the transaction.
func (r *BookingRepo) CreateTx(ctx context.Context, tx *sql.Tx, b *model.Booking) error {
	res, err := tx.ExecContext(ctx,
		`INSERT INTO bookings (reference, user_id, event_id, quantity) VALUES (?,?,?,?)`,
		b.Reference, b.UserID, b.EventID, b.Quantity)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	b.ID = uint64(id)
	return tx.QueryRowContext(ctx,
		`SELECT booked_at FROM bookings WHERE id = ?`, b.ID).Scan(&b.BookedAt)
}

// BookingDetail is a booking joined with the event attributes a history
// page needs, so the client does not have to fetch each event.
type BookingDetail struct {
	ID          uint64    `json:"id"`
	Reference   string    `json:"reference"`
	EventID     uint64    `json:"event_id"`
	EventTitle  string    `json:"event_title"`
	Venue       string    `json:"venue"`
	EventDate   string    `json:"event_date"`
	StartTime   string    `json:"start_time"`
	EventStatus string    `json:"event_status"`
	Quantity    uint32    `json:"quantity"`
	BookedAt    time.Time `json:"booked_at"`
}

// ListByUser returns the user's bookings, newest first, each joined
// with its event's title, venue, date and current status.  Bookings on
// cancelled events are included; they remain valid historical records.
func (r *BookingRepo) ListByUser(ctx context.Context, userID uint64) ([]BookingDetail, error) {
	const q = `SELECT b.id, b.reference, b.event_id, e.title, e.venue,
			DATE_FORMAT(e.event_date, '%Y-%m-%d'), e.start_time, e.status,
			b.quantity, b.booked_at
		FROM bookings b
		JOIN events e ON e.id = b.event_id
		WHERE b.user_id = ?
		ORDER BY b.booked_at DESC, b.id DESC`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]BookingDetail, 0)
	for rows.Next() {
		var d BookingDetail
		if err := rows.Scan(
			&d.ID, &d.Reference, &d.EventID, &d.EventTitle, &d.Venue,
			&d.EventDate, &d.StartTime, &d.EventStatus,
			&d.Quantity, &d.BookedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// CountForEvent returns the total tickets recorded against an event.
// Owners use this to reconcile the ledger with remaining availability.
func (r *BookingRepo) CountForEvent(ctx context.Context, eventID uint64) (uint64, error) {
	var total sql.NullInt64
	err := r.db.QueryRowContext(ctx,
		`SELECT SUM(quantity) FROM bookings WHERE event_id = ?`, eventID).Scan(&total)
	if err != nil {
		return 0, err
	}
	if !total.Valid {
		return 0, nil
	}
	return uint64(total.Int64), nil
}
