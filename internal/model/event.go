package model

import "time"

// Event status values as stored in the events.status column.  An event
// starts OPEN and normally only moves to SOLD_OUT (when the last ticket
// is reserved) or CANCELLED (by its owner).  INACTIVE is representable
// for manually parked events but no operation produces it.  A cancelled
// event can be reactivated back to OPEN by its owner.
const (
	StatusOpen      = "OPEN"
	StatusInactive  = "INACTIVE"
	StatusSoldOut   = "SOLD_OUT"
	StatusCancelled = "CANCELLED"
)

// Categories lists the fixed set of music categories an event may carry.
// The order is the one presented in browse filters.
var Categories = []string{"Classical", "Indie", "Jazz", "Electronic", "Pop", "Rock"}

// ValidCategory reports whether c is one of the known categories.
func ValidCategory(c string) bool {
	for _, k := range Categories {
		if k == c {
			return true
		}
	}
	return false
}

// Event represents a ticketed music event as stored in the `events`
// table.  Capacity is fixed at creation; TicketsAvailable is the live
// inventory counter and only moves through the inventory package.
// Events are never physically deleted.
//
// Fields:
//  ID               – primary key identifier.
//  Title            – event title.
//  Category         – one of Categories.
//  ArtistNames      – performing artist(s), free text.
//  Venue            – venue name, free text.
//  Date             – calendar date of the event.
//  StartTime        – start of day clock time ("19:00").
//  EndTime          – end clock time ("21:00").
//  Capacity         – total tickets that existed at creation.
//  TicketsAvailable – tickets still purchasable; 0..Capacity.
//  ImageURL         – optional cover image.
//  Description      – optional long description.
//  AgeRestriction   – "All-ages" or "18+".
//  Status           – one of the Status* constants.
//  CreatedBy        – user ID of the owner (nil for unowned legacy rows).
//  CreatedAt        – row creation timestamp.
//  UpdatedAt        – last update timestamp.
type Event struct {
	ID               uint64    // events.id
	Title            string    // events.title
	Category         string    // events.category
	ArtistNames      string    // events.artist_names
	Venue            string    // events.venue
	Date             time.Time // events.event_date
	StartTime        string    // events.start_time ("HH:MM")
	EndTime          string    // events.end_time ("HH:MM")
	Capacity         uint32    // events.capacity
	TicketsAvailable uint32    // events.tickets_available
	ImageURL         string    // events.image_url
	Description      string    // events.description
	AgeRestriction   string    // events.age_restriction
	Status           string    // events.status
	CreatedBy        *uint64   // events.created_by (nullable)
	CreatedAt        time.Time // events.created_at
	UpdatedAt        time.Time // events.updated_at
}
