package model

import "time"

// Booking records a ticket purchase for an event.  Bookings form an
// append-only ledger: rows are created inside the same transaction that
// decrements the event's inventory and are never mutated or deleted
// afterwards.  Cancelling an event does not void its bookings; they
// remain valid historical records.
//
// Fields:
//  ID        – primary key identifier.
//  Reference – opaque UUID handed to the customer as a receipt number.
//  UserID    – user who bought the tickets.
//  EventID   – event the tickets are for.
//  Quantity  – number of tickets, always >= 1.
//  BookedAt  – timestamp the booking was committed.
type Booking struct {
	ID        uint64    // bookings.id
	Reference string    // bookings.reference
	UserID    uint64    // bookings.user_id
	EventID   uint64    // bookings.event_id
	Quantity  uint32    // bookings.quantity
	BookedAt  time.Time // bookings.booked_at
}

// Comment is a free-text remark a logged-in user leaves on an event
// page.  The author's display name is denormalized at post time, so
// comments keep their byline even if user records change.  Comments are
// never edited or deleted.
//
// Fields:
//  ID         – primary key identifier.
//  EventID    – event the comment belongs to.
//  UserID     – author's user ID (nil for legacy anonymous rows).
//  AuthorName – display name captured when the comment was posted.
//  Content    – comment body.
//  PostedAt   – timestamp of posting.
type Comment struct {
	ID         uint64    // comments.id
	EventID    uint64    // comments.event_id
	UserID     *uint64   // comments.user_id (nullable)
	AuthorName string    // comments.author_name
	Content    string    // comments.content
	PostedAt   time.Time // comments.posted_at
}
