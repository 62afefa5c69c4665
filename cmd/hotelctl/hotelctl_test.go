package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"luxe_haven/internal/app"
	"luxe_haven/internal/domain"
	"luxe_haven/internal/shared"
)

func run(t *testing.T, c *cli, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	c.out = &buf
	cmd := newRootCmd(c)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	_ = c.close()
	return buf.String(), err
}

func newCLI(t *testing.T) *cli {
	t.Helper()
	return &cli{
		cfg: shared.Config{
			StoreDriver: "sqlite",
			SQLitePath:  filepath.Join(t.TempDir(), "hotel.db"),
			BcryptCost:  bcrypt.MinCost,
			SessionTTL:  time.Hour,
		},
		readPassword: func(string) (string, error) { return "prompted1", nil },
	}
}

func TestSeed(t *testing.T) {
	c := newCLI(t)

	out, err := run(t, c, "seed")
	if err != nil || !strings.Contains(out, "Seeded 12 rooms") {
		t.Fatalf("seed: %q %v", out, err)
	}
	out, err = run(t, c, "seed")
	if err != nil || !strings.Contains(out, "already present") {
		t.Fatalf("second seed: %q %v", out, err)
	}

	file := filepath.Join(t.TempDir(), "rooms.json")
	if err := os.WriteFile(file, []byte(`[{"id":1,"name":"Cabin","type":"standard","price":50,"capacity":2,"image":"/images/cabin.jpg","description":"Pine cabin","available":true}]`), 0o600); err != nil {
		t.Fatal(err)
	}
	out, err = run(t, c, "seed", "--file", file, "--reset")
	if err != nil || !strings.Contains(out, "replaced with 1 rooms") {
		t.Fatalf("reset: %q %v", out, err)
	}

	bad := filepath.Join(t.TempDir(), "bad.json")
	_ = os.WriteFile(bad, []byte(`[{"id":1,"type":"castle"}]`), 0o600)
	if _, err := run(t, c, "seed", "--file", bad, "--reset"); err == nil {
		t.Fatalf("expected error for unknown room type")
	}
}

func TestSeed_FileRoomsFollowFormRules(t *testing.T) {
	dir := t.TempDir()
	invalid := filepath.Join(dir, "invalid.json")
	_ = os.WriteFile(invalid, []byte(`[{"id":1,"name":"Loft","type":"Deluxe","price":-5,"capacity":0,"image":"/l.jpg","description":"Loft"}]`), 0o600)
	_, err := loadRooms(invalid)
	var verr *domain.ValidationError
	if !errors.As(err, &verr) || verr.Fields["price"] == "" || verr.Fields["capacity"] == "" {
		t.Fatalf("expected price and capacity errors, got %v", err)
	}

	mixed := filepath.Join(dir, "mixed.json")
	_ = os.WriteFile(mixed, []byte(`[
		{"id":3,"name":" Loft ","type":"Deluxe","price":120,"capacity":2,"image":"/l.jpg","description":"Loft","amenities":[" wifi ",""],"available":true},
		{"id":7,"name":"Garden","type":"deluxe","price":140,"capacity":2,"image":"/g.jpg","description":"Garden","available":true}
	]`), 0o600)
	c := newCLI(t)
	if _, err := run(t, c, "seed", "--file", mixed); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := c.open(context.Background()); err != nil {
		t.Fatal(err)
	}
	defer c.close()

	rs, err := c.store.ListRooms(context.Background())
	if err != nil || len(rs) != 2 {
		t.Fatalf("ListRooms: %v %v", rs, err)
	}
	if rs[0].ID != 3 || rs[0].Type != domain.RoomDeluxe || rs[0].Name != "Loft" || len(rs[0].Amenities) != 1 || rs[0].Amenities[0] != "wifi" {
		t.Fatalf("room not normalized: %+v", rs[0])
	}
	found, err := app.NewAdminService(c.store, c.store).ListRooms(context.Background(), "deluxe")
	if err != nil || len(found) != 2 {
		t.Fatalf("type search: %v %v", found, err)
	}
	d, err := app.NewCatalogService(c.store).GetRoom(context.Background(), 7)
	if err != nil || len(d.Similar) != 1 || d.Similar[0].ID != 3 {
		t.Fatalf("similar rooms: %+v %v", d, err)
	}
}

func TestCreateAdminAndReports(t *testing.T) {
	c := newCLI(t)

	out, err := run(t, c, "create-admin", "--email", "ops@luxehaven.com", "--name", "Ops")
	if err != nil || !strings.Contains(out, "Admin Ops <ops@luxehaven.com> saved") {
		t.Fatalf("create-admin: %q %v", out, err)
	}
	if _, err := run(t, c, "create-admin"); err == nil {
		t.Fatalf("--email should be required")
	}

	if err := c.open(context.Background()); err != nil {
		t.Fatalf("open: %v", err)
	}
	auth := app.NewAuthService(c.store, c.store, time.Hour, bcrypt.MinCost)
	sess, err := auth.Login(context.Background(), app.LoginForm{Email: "ops@luxehaven.com", Password: "prompted1"})
	if err != nil || sess.User.Role != domain.RoleAdmin {
		t.Fatalf("login with prompted password: %+v %v", sess, err)
	}
	_, err = app.NewBookingService(c.store, c.store, nil).Create(context.Background(), app.BookingForm{
		FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Phone: "555",
		RoomID: "4", CheckIn: "2030-01-01", CheckOut: "2030-01-03",
	})
	if err != nil {
		t.Fatalf("booking: %v", err)
	}
	_ = c.close()

	out, err = run(t, c, "stats")
	if err != nil || !strings.Contains(out, "Total bookings:     1") || !strings.Contains(out, "Deluxe King") {
		t.Fatalf("stats: %q %v", out, err)
	}
	out, err = run(t, c, "bookings", "--q", "lovelace")
	if err != nil || !strings.Contains(out, "1 booking(s)") {
		t.Fatalf("bookings: %q %v", out, err)
	}
	out, err = run(t, c, "bookings", "--q", "nobody")
	if err != nil || !strings.Contains(out, "No bookings found") {
		t.Fatalf("bookings miss: %q %v", out, err)
	}
	out, err = run(t, c, "migrate")
	if err != nil || !strings.Contains(out, "Schema ready (sqlite)") {
		t.Fatalf("migrate: %q %v", out, err)
	}
}
