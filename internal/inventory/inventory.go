package inventory

import "github.com/iliyamo/event-ticketing/internal/model"

// Reserve takes qty tickets out of the event's availability.  The event
// must be OPEN and hold at least qty tickets; when the decrement lands
// exactly on zero the status flips to SOLD_OUT in the same step.  On any
// failure the event is left untouched.
//
// Reserve mutates ev in memory only.  The caller is expected to have
// loaded the event row under a write lock (SELECT ... FOR UPDATE) and to
// persist the mutated fields in the same transaction as the booking row,
// so that two concurrent reservations can never both pass the
// availability check against a stale count.
func Reserve(ev *model.Event, qty int) error {
	if qty < 1 {
		return ErrInvalidQuantity
	}
	if ev.Status != model.StatusOpen {
		return ErrNotBookable
	}
	// Compare in uint64 so a quantity beyond 32 bits cannot wrap into
	// the available range.
	if uint64(qty) > uint64(ev.TicketsAvailable) {
		return ErrInsufficientTickets
	}
	ev.TicketsAvailable -= uint32(qty)
	if ev.TicketsAvailable == 0 {
		ev.Status = model.StatusSoldOut
	}
	return nil
}

// Cancel moves the event to CANCELLED regardless of its current status.
// Availability is left as-is and existing bookings stay valid; the
// caller must have verified ownership with IsOwner first.
func Cancel(ev *model.Event) {
	ev.Status = model.StatusCancelled
}

// Reactivate moves the event back to OPEN regardless of its current
// status or remaining availability.  A fully sold event therefore comes
// back as OPEN with zero tickets; the status is not re-derived from the
// count (manual override wins).  Ownership must be checked by the
// caller.
func Reactivate(ev *model.Event) {
	ev.Status = model.StatusOpen
}

// IsOwner reports whether userID is the creator of the event.  The zero
// user ID denotes an anonymous caller and is never an owner, nor is any
// identity other than the exact created_by value.  Ownership gates
// edit, cancel and reactivate; booking and commenting are open to every
// authenticated user, including the owner.
func IsOwner(userID uint64, ev *model.Event) bool {
	return userID != 0 && ev.CreatedBy != nil && *ev.CreatedBy == userID
}
