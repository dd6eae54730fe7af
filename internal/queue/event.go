// Package queue defines message payloads exchanged over the message broker.
package queue

// TicketsBookedEvent is published after a booking transaction commits.
// It carries enough detail for downstream consumers (audit log,
// notifications, analytics) to act without querying the database.
type TicketsBookedEvent struct {
	BookingID        uint64 `json:"booking_id"`
	Reference        string `json:"reference"`
	UserID           uint64 `json:"user_id"`
	EventID          uint64 `json:"event_id"`
	EventTitle       string `json:"event_title"`
	Venue            string `json:"venue"`
	Quantity         uint32 `json:"quantity"`
	TicketsRemaining uint32 `json:"tickets_remaining"`
	EventStatus      string `json:"event_status"`
	BookedAt         string `json:"booked_at"`
}
