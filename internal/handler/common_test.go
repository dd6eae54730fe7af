package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/event-ticketing/internal/inventory"
	"github.com/iliyamo/event-ticketing/internal/repository"
)

func TestGetUserIDAnonymousIsAuthRequired(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	if _, err := getUserID(c); !errors.Is(err, inventory.ErrAuthRequired) {
		t.Errorf("getUserID without identity = %v, want ErrAuthRequired", err)
	}

	c.Set("user_id", "not-a-number")
	if _, err := getUserID(c); !errors.Is(err, inventory.ErrAuthRequired) {
		t.Errorf("getUserID with garbage identity = %v, want ErrAuthRequired", err)
	}
}

func TestErrorStatusMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{inventory.ErrAuthRequired, http.StatusUnauthorized},
		{inventory.ErrNotOwner, http.StatusForbidden},
		{repository.ErrEventNotFound, http.StatusNotFound},
		{errInvalidEventID, http.StatusBadRequest},
		{errors.New("mysql went away"), http.StatusInternalServerError},
	}
	for _, c := range cases {
		if got, _ := errorStatus(c.err); got != c.want {
			t.Errorf("errorStatus(%v) = %d, want %d", c.err, got, c.want)
		}
	}
}
