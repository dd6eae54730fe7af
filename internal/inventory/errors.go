// Package inventory owns the ticket-availability state machine of an
// event: reserving tickets against the remaining count, the automatic
// transition to SOLD_OUT, the owner-gated cancel/reactivate transitions,
// and the ownership predicate itself.  It performs no I/O and never
// logs; callers persist the mutated event and translate the sentinel
// errors below into user-facing responses.
package inventory

import "errors"

// ErrAuthRequired is returned when an operation that needs an
// authenticated identity is attempted anonymously.  Handlers should
// translate this into an HTTP 401 response.
var ErrAuthRequired = errors.New("authentication required")

// ErrNotOwner is returned when an identity other than the event's
// creator attempts to edit, cancel or reactivate it.  Handlers should
// translate this into an HTTP 403 response.
var ErrNotOwner = errors.New("not the event owner")

// ErrNotBookable is returned when tickets are requested for an event
// whose status is not OPEN.  Inactive, sold-out and cancelled events
// all produce this same rejection.
var ErrNotBookable = errors.New("event is not open for booking")

// ErrInsufficientTickets is returned when the requested quantity
// exceeds the tickets still available on an otherwise bookable event.
var ErrInsufficientTickets = errors.New("not enough tickets available")

// ErrInvalidQuantity is returned when the requested quantity is zero
// or negative.
var ErrInvalidQuantity = errors.New("quantity must be at least 1")
