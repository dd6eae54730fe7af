package handler

import "testing"

func validReq() eventReq {
	return eventReq{
		Title:     "Classical Night",
		Category:  "Classical",
		Venue:     "Room 1",
		Date:      "2026-10-01",
		StartTime: "19:00",
		EndTime:   "21:00",
		Capacity:  200,
	}
}

func TestEventReqValidateAccepts(t *testing.T) {
	r := validReq()
	date, msg := r.validate()
	if msg != "" {
		t.Fatalf("unexpected validation error: %q", msg)
	}
	if date.Format("2006-01-02") != "2026-10-01" {
		t.Errorf("parsed date = %s", date)
	}
}

func TestEventReqValidateRejects(t *testing.T) {
	over := uint32(300)
	cases := []struct {
		name   string
		mutate func(*eventReq)
	}{
		{"empty title", func(r *eventReq) { r.Title = "   " }},
		{"unknown category", func(r *eventReq) { r.Category = "Opera" }},
		{"empty venue", func(r *eventReq) { r.Venue = "" }},
		{"bad date", func(r *eventReq) { r.Date = "01/10/2026" }},
		{"bad start time", func(r *eventReq) { r.StartTime = "7pm" }},
		{"bad end time", func(r *eventReq) { r.EndTime = "9:00pm" }},
		{"zero capacity", func(r *eventReq) { r.Capacity = 0 }},
		{"available above capacity", func(r *eventReq) { r.TicketsAvailable = &over }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := validReq()
			c.mutate(&r)
			if _, msg := r.validate(); msg == "" {
				t.Error("expected validation error, got none")
			}
		})
	}
}

func TestEventReqValidateOptionalEndTime(t *testing.T) {
	r := validReq()
	r.EndTime = ""
	if _, msg := r.validate(); msg != "" {
		t.Errorf("empty end_time should be allowed, got %q", msg)
	}
}
