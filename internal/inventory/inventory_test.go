package inventory

import (
	"errors"
	"strconv"
	"sync"
	"testing"

	"github.com/iliyamo/event-ticketing/internal/model"
)

func openEvent(capacity, available uint32) *model.Event {
	return &model.Event{
		ID:               1,
		Title:            "Classical Night",
		Category:         "Classical",
		Capacity:         capacity,
		TicketsAvailable: available,
		Status:           model.StatusOpen,
	}
}

func TestReserveDecrementsAvailability(t *testing.T) {
	ev := openEvent(200, 50)
	if err := Reserve(ev, 3); err != nil {
		t.Fatalf("Reserve(3) = %v, want nil", err)
	}
	if ev.TicketsAvailable != 47 {
		t.Errorf("tickets available = %d, want 47", ev.TicketsAvailable)
	}
	if ev.Status != model.StatusOpen {
		t.Errorf("status = %q, want OPEN", ev.Status)
	}
}

func TestReserveSequenceConservesCapacity(t *testing.T) {
	ev := openEvent(100, 100)
	quantities := []int{10, 25, 1, 40, 24}
	reserved := uint32(0)
	for _, q := range quantities {
		if err := Reserve(ev, q); err != nil {
			t.Fatalf("Reserve(%d) after %d reserved: %v", q, reserved, err)
		}
		reserved += uint32(q)
		if ev.TicketsAvailable != ev.Capacity-reserved {
			t.Fatalf("tickets available = %d, want capacity-reserved = %d",
				ev.TicketsAvailable, ev.Capacity-reserved)
		}
	}
	if ev.TicketsAvailable != 0 {
		t.Errorf("tickets available = %d, want 0 after exhausting capacity", ev.TicketsAvailable)
	}
	if ev.Status != model.StatusSoldOut {
		t.Errorf("status = %q, want SOLD_OUT once availability hits zero", ev.Status)
	}
}

func TestReserveInvalidQuantity(t *testing.T) {
	for _, q := range []int{0, -1, -50} {
		ev := openEvent(80, 80)
		err := Reserve(ev, q)
		if !errors.Is(err, ErrInvalidQuantity) {
			t.Errorf("Reserve(%d) = %v, want ErrInvalidQuantity", q, err)
		}
		if ev.TicketsAvailable != 80 || ev.Status != model.StatusOpen {
			t.Errorf("Reserve(%d) mutated event on failure: avail=%d status=%q",
				q, ev.TicketsAvailable, ev.Status)
		}
	}
}

func TestReserveInsufficientLeavesStateUnchanged(t *testing.T) {
	ev := openEvent(80, 5)
	err := Reserve(ev, 6)
	if !errors.Is(err, ErrInsufficientTickets) {
		t.Fatalf("Reserve(6) with 5 left = %v, want ErrInsufficientTickets", err)
	}
	if ev.TicketsAvailable != 5 {
		t.Errorf("tickets available = %d, want 5 (unchanged)", ev.TicketsAvailable)
	}
	if ev.Status != model.StatusOpen {
		t.Errorf("status = %q, want OPEN (unchanged)", ev.Status)
	}
}

// A quantity whose low 32 bits land inside the available range must not
// slip past the availability check by truncation.
func TestReserveQuantityBeyondUint32(t *testing.T) {
	if strconv.IntSize < 64 {
		t.Skip("needs 64-bit int")
	}
	ev := openEvent(80, 10)
	qty := int(int64(1)<<32 + 1) // low 32 bits are 1
	err := Reserve(ev, qty)
	if !errors.Is(err, ErrInsufficientTickets) {
		t.Fatalf("Reserve(%d) = %v, want ErrInsufficientTickets", qty, err)
	}
	if ev.TicketsAvailable != 10 {
		t.Errorf("tickets available = %d, want 10 (unchanged)", ev.TicketsAvailable)
	}
	if ev.Status != model.StatusOpen {
		t.Errorf("status = %q, want OPEN (unchanged)", ev.Status)
	}
}

func TestReserveRejectsNonOpenStatuses(t *testing.T) {
	for _, status := range []string{model.StatusInactive, model.StatusSoldOut, model.StatusCancelled} {
		ev := openEvent(80, 10)
		ev.Status = status
		err := Reserve(ev, 1)
		if !errors.Is(err, ErrNotBookable) {
			t.Errorf("Reserve on %s event = %v, want ErrNotBookable", status, err)
		}
		if ev.TicketsAvailable != 10 {
			t.Errorf("Reserve on %s event changed availability to %d", status, ev.TicketsAvailable)
		}
	}
}

// Seeded "Jazz Trio" scenario: capacity 80, nothing left, already marked
// sold out.  A request for a single ticket must be rejected as
// not-bookable, not as insufficient inventory.
func TestReserveSoldOutEvent(t *testing.T) {
	ev := openEvent(80, 0)
	ev.Status = model.StatusSoldOut
	if err := Reserve(ev, 1); !errors.Is(err, ErrNotBookable) {
		t.Fatalf("Reserve(1) on sold-out event = %v, want ErrNotBookable", err)
	}
}

// Taking the last tickets flips the status in the same step, and the
// very next request is rejected as not-bookable.
func TestReserveLastTicketsFlipsToSoldOut(t *testing.T) {
	ev := openEvent(50, 50)
	if err := Reserve(ev, 50); err != nil {
		t.Fatalf("Reserve(50) = %v, want nil", err)
	}
	if ev.TicketsAvailable != 0 {
		t.Errorf("tickets available = %d, want 0", ev.TicketsAvailable)
	}
	if ev.Status != model.StatusSoldOut {
		t.Errorf("status = %q, want SOLD_OUT", ev.Status)
	}
	if err := Reserve(ev, 1); !errors.Is(err, ErrNotBookable) {
		t.Errorf("subsequent Reserve(1) = %v, want ErrNotBookable", err)
	}
}

// Two reservations of 50 against 80 tickets, serialized the way the
// booking transaction serializes them with a row lock: exactly one
// succeeds and the other fails with ErrInsufficientTickets, so the
// total reserved never exceeds the original availability.
func TestConcurrentReservesSerialized(t *testing.T) {
	ev := openEvent(80, 80)
	var mu sync.Mutex
	results := make(chan error, 2)

	for i := 0; i < 2; i++ {
		go func() {
			mu.Lock()
			defer mu.Unlock()
			results <- Reserve(ev, 50)
		}()
	}

	var okCount, insufficient int
	for i := 0; i < 2; i++ {
		switch err := <-results; {
		case err == nil:
			okCount++
		case errors.Is(err, ErrInsufficientTickets):
			insufficient++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if okCount != 1 || insufficient != 1 {
		t.Fatalf("got %d successes and %d insufficient rejections, want exactly 1 of each",
			okCount, insufficient)
	}
	if ev.TicketsAvailable != 30 {
		t.Errorf("tickets available = %d, want 30", ev.TicketsAvailable)
	}
}

func TestCancelIsUnconditional(t *testing.T) {
	ev := openEvent(100, 40)
	Cancel(ev)
	if ev.Status != model.StatusCancelled {
		t.Errorf("status = %q, want CANCELLED", ev.Status)
	}
	if ev.TicketsAvailable != 40 {
		t.Errorf("cancel changed availability to %d, want 40", ev.TicketsAvailable)
	}
}

// Reactivating a fully sold event brings it back as OPEN while still
// showing zero availability.  The status is deliberately not re-derived
// from the ticket count; a follow-up reserve is then rejected for
// insufficient inventory rather than as not-bookable.
func TestReactivateDoesNotRederiveStatus(t *testing.T) {
	ev := openEvent(80, 80)
	if err := Reserve(ev, 80); err != nil {
		t.Fatalf("Reserve(80) = %v, want nil", err)
	}
	Reactivate(ev)
	if ev.Status != model.StatusOpen {
		t.Fatalf("status after reactivate = %q, want OPEN", ev.Status)
	}
	if ev.TicketsAvailable != 0 {
		t.Fatalf("tickets available = %d, want 0", ev.TicketsAvailable)
	}
	if err := Reserve(ev, 1); !errors.Is(err, ErrInsufficientTickets) {
		t.Errorf("Reserve(1) on reactivated empty event = %v, want ErrInsufficientTickets", err)
	}
}

func TestReactivateCancelledEvent(t *testing.T) {
	ev := openEvent(120, 60)
	Cancel(ev)
	Reactivate(ev)
	if ev.Status != model.StatusOpen {
		t.Fatalf("status = %q, want OPEN", ev.Status)
	}
	if err := Reserve(ev, 2); err != nil {
		t.Errorf("Reserve(2) after reactivation = %v, want nil", err)
	}
}

func TestIsOwner(t *testing.T) {
	owner := uint64(7)
	ev := openEvent(80, 80)
	ev.CreatedBy = &owner

	tests := []struct {
		name   string
		userID uint64
		ev     *model.Event
		want   bool
	}{
		{"exact match", 7, ev, true},
		{"different user", 8, ev, false},
		{"anonymous", 0, ev, false},
		{"no creator recorded", 7, openEvent(80, 80), false},
	}
	for _, tt := range tests {
		if got := IsOwner(tt.userID, tt.ev); got != tt.want {
			t.Errorf("%s: IsOwner(%d) = %v, want %v", tt.name, tt.userID, got, tt.want)
		}
	}
}
