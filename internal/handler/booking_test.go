package handler

import (
	"net/http"
	"testing"

	"github.com/iliyamo/event-ticketing/internal/inventory"
	"github.com/iliyamo/event-ticketing/internal/model"
)

func TestReserveStatusMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{inventory.ErrInvalidQuantity, http.StatusBadRequest},
		{inventory.ErrNotBookable, http.StatusConflict},
		{inventory.ErrInsufficientTickets, http.StatusConflict},
	}
	for _, c := range cases {
		if got := reserveStatus(c.err); got != c.want {
			t.Errorf("reserveStatus(%v) = %d, want %d", c.err, got, c.want)
		}
	}
}

func TestReserveMessageSoldOutByStatus(t *testing.T) {
	ev := &model.Event{Status: model.StatusSoldOut, TicketsAvailable: 0}
	if msg := reserveMessage(inventory.ErrNotBookable, ev); msg != "this event is sold out" {
		t.Errorf("unexpected message: %q", msg)
	}
}

func TestReserveMessageCancelledEvent(t *testing.T) {
	ev := &model.Event{Status: model.StatusCancelled, TicketsAvailable: 10}
	if msg := reserveMessage(inventory.ErrNotBookable, ev); msg != "this event cannot be booked at the moment" {
		t.Errorf("unexpected message: %q", msg)
	}
}

func TestReserveMessageInsufficientTellsRemaining(t *testing.T) {
	ev := &model.Event{Status: model.StatusOpen, TicketsAvailable: 3}
	if msg := reserveMessage(inventory.ErrInsufficientTickets, ev); msg != "only 3 tickets left" {
		t.Errorf("unexpected message: %q", msg)
	}
}

func TestReserveMessageInsufficientAtZeroReadsSoldOut(t *testing.T) {
	// An open event with zero tickets happens after reactivating a sold
	// out event; the buyer still sees the sold out wording.
	ev := &model.Event{Status: model.StatusOpen, TicketsAvailable: 0}
	if msg := reserveMessage(inventory.ErrInsufficientTickets, ev); msg != "this event is sold out" {
		t.Errorf("unexpected message: %q", msg)
	}
}
