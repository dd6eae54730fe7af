package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/event-ticketing/internal/utils"
)

const testSecret = "unit-test-secret"

func runJWTAuth(t *testing.T, authHeader string) (*httptest.ResponseRecorder, uint64) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/my-bookings", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seenUserID uint64
	handler := JWTAuth(testSecret)(func(c echo.Context) error {
		if v, ok := c.Get("user_id").(uint64); ok {
			seenUserID = v
		}
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	return rec, seenUserID
}

func TestJWTAuthMissingHeader(t *testing.T) {
	rec, _ := runJWTAuth(t, "")
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestJWTAuthMalformedToken(t *testing.T) {
	rec, _ := runJWTAuth(t, "Bearer not-a-jwt")
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestJWTAuthWrongSecret(t *testing.T) {
	at, err := utils.NewAccessToken("some-other-secret", 9, 5)
	if err != nil {
		t.Fatalf("NewAccessToken: %v", err)
	}
	rec, _ := runJWTAuth(t, "Bearer "+at.Token)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestJWTAuthValidTokenInjectsUserID(t *testing.T) {
	at, err := utils.NewAccessToken(testSecret, 1234, 5)
	if err != nil {
		t.Fatalf("NewAccessToken: %v", err)
	}
	rec, userID := runJWTAuth(t, "Bearer "+at.Token)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if userID != 1234 {
		t.Errorf("user_id in context = %d, want 1234", userID)
	}
}
