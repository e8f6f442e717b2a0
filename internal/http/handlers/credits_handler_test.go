// README: Credit balance endpoint tests.
package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"tripforge/internal/http/handlers"
)

// stubBalance is a test double for handlers.CreditReader.
type stubBalance struct {
	remaining int
	err       error
	lastUID   string
}

func (s *stubBalance) Balance(_ context.Context, userID string) (int, error) {
	s.lastUID = userID
	return s.remaining, s.err
}

func buildCreditsRouter(cr handlers.CreditReader) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handlers.NewCreditsHandler(cr)
	r.GET("/api/credits/:userId", h.Balance)
	return r
}

func TestBalance(t *testing.T) {
	cr := &stubBalance{remaining: 70}
	r := buildCreditsRouter(cr)

	req := httptest.NewRequest(http.MethodGet, "/api/credits/u1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if cr.lastUID != "u1" {
		t.Errorf("wrong user queried: %s", cr.lastUID)
	}
	if !strings.Contains(w.Body.String(), `"credits":70`) {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}

func TestBalance_StoreError(t *testing.T) {
	r := buildCreditsRouter(&stubBalance{err: errors.New("db down")})

	req := httptest.NewRequest(http.MethodGet, "/api/credits/u1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}
