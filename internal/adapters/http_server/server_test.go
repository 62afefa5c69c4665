package httpserver_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"

	httpserver "luxe_haven/internal/adapters/http_server"
	redisad "luxe_haven/internal/adapters/redis"
	"luxe_haven/internal/app"
	"luxe_haven/internal/storage/store"
)

type testServer struct {
	*httptest.Server
}

func newServer(t *testing.T, authRPS float64, authBurst int) *testServer {
	t.Helper()
	mr := miniredis.RunT(t)
	c := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = c.Close() })
	st := store.New(redisad.NewWithClient(c, ""), app.DefaultRooms())

	auth := app.NewAuthService(st, st, time.Hour, bcrypt.MinCost)
	if err := auth.EnsureAdmin(context.Background(), "admin@luxehaven.com", "Admin User", "admin123"); err != nil {
		t.Fatalf("EnsureAdmin: %v", err)
	}
	h := &httpserver.Handlers{
		Catalog:   app.NewCatalogService(st),
		Site:      app.NewSiteService(st, st),
		Bookings:  app.NewBookingService(st, st, nil),
		Auth:      auth,
		Admin:     app.NewAdminService(st, st),
		AuthRPS:   authRPS,
		AuthBurst: authBurst,
	}
	srv := httpserver.New(false)
	srv.MountHandlers(h)
	ts := httptest.NewServer(srv.Mux())
	t.Cleanup(ts.Close)
	return &testServer{Server: ts}
}

func (ts *testServer) do(t *testing.T, method, path, token string, body any, hdr ...string) (*http.Response, map[string]any) {
	t.Helper()
	var rd *bytes.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		rd = bytes.NewReader(b)
	} else {
		rd = bytes.NewReader(nil)
	}
	req, _ := http.NewRequest(method, ts.URL+path, rd)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for i := 0; i+1 < len(hdr); i += 2 {
		req.Header.Set(hdr[i], hdr[i+1])
	}
	resp, err := ts.Client().Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()
	var out map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&out)
	return resp, out
}

func (ts *testServer) login(t *testing.T, email, password string) string {
	t.Helper()
	resp, out := ts.do(t, http.MethodPost, "/v1/auth/login", "", map[string]string{"email": email, "password": password})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login %s: status %d %v", email, resp.StatusCode, out)
	}
	return out["token"].(string)
}

func TestRooms_ETagAndFilters(t *testing.T) {
	ts := newServer(t, 100, 5)

	resp, out := ts.do(t, http.MethodGet, "/v1/rooms?type=suite", "", nil)
	if resp.StatusCode != http.StatusOK || out["count"].(float64) != 3 {
		t.Fatalf("rooms: %d %v", resp.StatusCode, out)
	}
	etag := resp.Header.Get("ETag")
	if etag == "" {
		t.Fatalf("missing ETag")
	}
	resp, _ = ts.do(t, http.MethodGet, "/v1/rooms?type=suite", "", nil, "If-None-Match", etag)
	if resp.StatusCode != http.StatusNotModified {
		t.Fatalf("expected 304, got %d", resp.StatusCode)
	}

	resp, out = ts.do(t, http.MethodGet, "/v1/rooms?price=cheap", "", nil)
	if resp.StatusCode != http.StatusUnprocessableEntity || resp.Header.Get("Content-Type") != "application/problem+json" {
		t.Fatalf("bad filter: %d %v", resp.StatusCode, out)
	}
	if errs := out["errors"].(map[string]any); errs["price"] == nil {
		t.Fatalf("expected price error: %v", out)
	}

	resp, _ = ts.do(t, http.MethodGet, "/v1/rooms/999", "", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
	resp, _ = ts.do(t, http.MethodGet, "/v1/rooms/abc", "", nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestBookingFlow(t *testing.T) {
	ts := newServer(t, 100, 5)

	resp, out := ts.do(t, http.MethodPost, "/v1/bookings", "", map[string]any{"firstName": "Ada"})
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", resp.StatusCode)
	}
	if errs := out["errors"].(map[string]any); errs["roomId"] != "Please select a room" {
		t.Fatalf("unexpected errors: %v", errs)
	}

	resp, _ = ts.do(t, http.MethodPost, "/v1/auth/register", "", map[string]string{
		"name": "Ada", "email": "ada@example.com", "password": "secret1",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("register: %d", resp.StatusCode)
	}
	resp, out = ts.do(t, http.MethodPost, "/v1/auth/register", "", map[string]string{
		"name": "Ada", "email": "ADA@example.com", "password": "secret1",
	})
	if resp.StatusCode != http.StatusConflict || out["errors"].(map[string]any)["email"] != "Email already in use" {
		t.Fatalf("duplicate register: %d %v", resp.StatusCode, out)
	}
	token := ts.login(t, "ada@example.com", "secret1")

	resp, out = ts.do(t, http.MethodPost, "/v1/bookings", "", map[string]any{
		"firstName": "Ada", "lastName": "Lovelace", "email": "ada@example.com", "phone": "555",
		"roomId": "7", "checkIn": "2030-01-01", "checkOut": "2030-01-04", "guests": 2,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("booking: %d %v", resp.StatusCode, out)
	}
	if q := out["quote"].(map[string]any); q["total"].(float64) != 3*279 {
		t.Fatalf("unexpected quote: %v", q)
	}

	resp, out = ts.do(t, http.MethodGet, "/v1/me/bookings", token, nil)
	if resp.StatusCode != http.StatusOK || out["count"].(float64) != 1 {
		t.Fatalf("my bookings: %d %v", resp.StatusCode, out)
	}

	resp, _ = ts.do(t, http.MethodPost, "/v1/auth/logout", token, nil)
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("logout: %d", resp.StatusCode)
	}
	resp, _ = ts.do(t, http.MethodGet, "/v1/auth/me", token, nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("me after logout: %d", resp.StatusCode)
	}
}

func TestAdminGuards(t *testing.T) {
	ts := newServer(t, 100, 5)

	resp, _ := ts.do(t, http.MethodGet, "/v1/admin/stats", "", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("anonymous: %d", resp.StatusCode)
	}

	ts.do(t, http.MethodPost, "/v1/auth/register", "", map[string]string{"name": "G", "email": "g@example.com", "password": "secret1"})
	guest := ts.login(t, "g@example.com", "secret1")
	resp, _ = ts.do(t, http.MethodGet, "/v1/admin/stats", guest, nil)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("guest: %d", resp.StatusCode)
	}

	admin := ts.login(t, "admin@luxehaven.com", "admin123")
	resp, out := ts.do(t, http.MethodGet, "/v1/admin/stats", admin, nil)
	if resp.StatusCode != http.StatusOK || out["totalRooms"].(float64) != 12 {
		t.Fatalf("stats: %d %v", resp.StatusCode, out)
	}

	resp, out = ts.do(t, http.MethodPost, "/v1/admin/rooms", admin, map[string]any{
		"name": "Garden Loft", "price": 150, "description": "Quiet.",
	})
	if resp.StatusCode != http.StatusCreated || out["id"].(float64) != 13 {
		t.Fatalf("create room: %d %v", resp.StatusCode, out)
	}
	resp, _ = ts.do(t, http.MethodPut, "/v1/admin/rooms/13", admin, map[string]any{"name": ""})
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("invalid update: %d", resp.StatusCode)
	}
	resp, _ = ts.do(t, http.MethodDelete, "/v1/admin/rooms/13", admin, nil)
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("delete room: %d", resp.StatusCode)
	}
	resp, _ = ts.do(t, http.MethodDelete, "/v1/admin/bookings/1", admin, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("delete missing booking: %d", resp.StatusCode)
	}
}

func TestLogin_RateLimited(t *testing.T) {
	ts := newServer(t, 0.01, 2)
	body := map[string]string{"email": "nobody@example.com", "password": "whatever"}
	for i := 0; i < 2; i++ {
		if resp, _ := ts.do(t, http.MethodPost, "/v1/auth/login", "", body); resp.StatusCode != http.StatusUnauthorized {
			t.Fatalf("attempt %d: %d", i, resp.StatusCode)
		}
	}
	resp, _ := ts.do(t, http.MethodPost, "/v1/auth/login", "", body)
	if resp.StatusCode != http.StatusTooManyRequests || resp.Header.Get("Retry-After") == "" {
		t.Fatalf("expected 429, got %d", resp.StatusCode)
	}
}

func TestNewsletterAndHome(t *testing.T) {
	ts := newServer(t, 100, 5)
	resp, _ := ts.do(t, http.MethodPost, "/v1/newsletter", "", map[string]string{"email": "a@b.co"})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("subscribe: %d", resp.StatusCode)
	}
	resp, _ = ts.do(t, http.MethodPost, "/v1/newsletter", "", map[string]string{"email": "a@b.co"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("repeat subscribe: %d", resp.StatusCode)
	}
	resp, out := ts.do(t, http.MethodGet, "/v1/home", "", nil)
	if resp.StatusCode != http.StatusOK || len(out["featuredRooms"].([]any)) != 3 {
		t.Fatalf("home: %d %v", resp.StatusCode, out)
	}
	resp, _ = ts.do(t, http.MethodGet, "/healthz", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("healthz: %d", resp.StatusCode)
	}
}
