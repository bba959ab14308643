package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/darkcuisine/storefront/internal/cart"
)

func TestSession_ProvisionsStoreAndCookie(t *testing.T) {
	manager := cart.NewManager()

	var seen []*cart.Store
	handler := Session(manager)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, cart.FromContext(r.Context()))
		w.WriteHeader(http.StatusOK)
	}))

	// First request: no cookie, one is issued.
	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	cookies := w.Result().Cookies()
	var session *http.Cookie
	for _, c := range cookies {
		if c.Name == SessionCookie {
			session = c
		}
	}
	if session == nil || session.Value == "" {
		t.Fatal("expected a session cookie to be issued")
	}

	// Second request with the cookie: same store.
	req = httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	req.AddCookie(session)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	// Third request without a cookie: a different session, new store.
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/cart", nil))

	if len(seen) != 3 {
		t.Fatalf("expected 3 handled requests, got %d", len(seen))
	}
	if seen[0] != seen[1] {
		t.Error("same cookie must map to the same store")
	}
	if seen[0] == seen[2] {
		t.Error("new session must get a fresh store")
	}
}
