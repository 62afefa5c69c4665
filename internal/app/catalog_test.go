package app_test

import (
	"context"
	"errors"
	"testing"

	"luxe_haven/internal/app"
	"luxe_haven/internal/domain"
)

func TestListRooms_Filters(t *testing.T) {
	c := app.NewCatalogService(newStore(t))
	ctx := context.Background()

	cases := []struct {
		name string
		f    domain.RoomFilter
		want []int64
	}{
		{"type", domain.RoomFilter{Type: "Suite"}, []int64{7, 8, 9}},
		{"cheap", domain.RoomFilter{PriceRange: "0-100"}, []int64{1, 3}},
		{"mid", domain.RoomFilter{PriceRange: "100-200"}, []int64{2, 4, 5}},
		{"top", domain.RoomFilter{PriceRange: "300+"}, []int64{8, 9, 11, 12}},
		{"type and price", domain.RoomFilter{Type: "executive", PriceRange: "200-300"}, []int64{10}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rs, err := c.ListRooms(ctx, tc.f)
			if err != nil {
				t.Fatalf("ListRooms: %v", err)
			}
			if len(rs) != len(tc.want) {
				t.Fatalf("got %d rooms, want %v", len(rs), tc.want)
			}
			for i, r := range rs {
				if r.ID != tc.want[i] {
					t.Fatalf("position %d: got room %d, want %d", i, r.ID, tc.want[i])
				}
			}
		})
	}
}

func TestListRooms_PriceBucketEdges(t *testing.T) {
	st := newStore(t)
	ctx := context.Background()
	rooms := []domain.Room{
		{ID: 1, Name: "A", Type: domain.RoomStandard, Price: 100, Capacity: 2},
		{ID: 2, Name: "B", Type: domain.RoomDeluxe, Price: 200, Capacity: 2},
		{ID: 3, Name: "C", Type: domain.RoomSuite, Price: 300, Capacity: 2},
	}
	if err := st.ReplaceRooms(ctx, rooms); err != nil {
		t.Fatalf("ReplaceRooms: %v", err)
	}
	c := app.NewCatalogService(st)

	for bucket, want := range map[string][]int64{
		"0-100":   {1},
		"100-200": {2},
		"200-300": {3},
		"300+":    {},
	} {
		rs, err := c.ListRooms(ctx, domain.RoomFilter{PriceRange: bucket})
		if err != nil {
			t.Fatalf("%s: %v", bucket, err)
		}
		if len(rs) != len(want) {
			t.Fatalf("%s: got %+v, want ids %v", bucket, rs, want)
		}
		for i, r := range rs {
			if r.ID != want[i] {
				t.Fatalf("%s: got room %d, want %d", bucket, r.ID, want[i])
			}
		}
	}
}

func TestListRooms_SearchMatchesNameOrDescription(t *testing.T) {
	c := app.NewCatalogService(newStore(t))
	ctx := context.Background()

	rs, err := c.ListRooms(ctx, domain.RoomFilter{Search: "JACUZZI"})
	if err != nil {
		t.Fatalf("ListRooms: %v", err)
	}
	if len(rs) != 2 || rs[0].ID != 9 || rs[1].ID != 11 {
		t.Fatalf("description search: %+v", rs)
	}
	rs, _ = c.ListRooms(ctx, domain.RoomFilter{Search: "ocean"})
	if len(rs) != 1 || rs[0].ID != 6 {
		t.Fatalf("name search: %+v", rs)
	}
}

func TestListRooms_RejectsUnknownFilters(t *testing.T) {
	c := app.NewCatalogService(newStore(t))
	_, err := c.ListRooms(context.Background(), domain.RoomFilter{Type: "cabin", PriceRange: "1-2"})
	fields := fieldErrors(t, err)
	if fields["type"] == "" || fields["price"] == "" {
		t.Fatalf("expected type and price errors, got %v", fields)
	}
}

func TestGetRoom_SimilarRooms(t *testing.T) {
	c := app.NewCatalogService(newStore(t))
	d, err := c.GetRoom(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetRoom: %v", err)
	}
	if len(d.AmenityLabels) != len(d.Amenities) {
		t.Fatalf("labels %v for amenities %v", d.AmenityLabels, d.Amenities)
	}
	// room 3 is the other standard room but it is unavailable
	if len(d.Similar) != 1 || d.Similar[0].ID != 2 {
		t.Fatalf("unexpected similar rooms: %+v", d.Similar)
	}

	if _, err := c.GetRoom(context.Background(), 999); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestQuote(t *testing.T) {
	c := app.NewCatalogService(newStore(t))
	q, err := c.Quote(context.Background(), 4, "2025-07-01", "2025-07-04")
	if err != nil {
		t.Fatalf("Quote: %v", err)
	}
	if q.Nights != 3 || q.Price != 189 || q.Total != 567 {
		t.Fatalf("unexpected quote: %+v", q)
	}

	_, err = c.Quote(context.Background(), 4, "2025-07-04", "2025-07-01")
	if fields := fieldErrors(t, err); fields["checkOut"] != "Check-out date must be after check-in date" {
		t.Fatalf("unexpected errors: %v", fields)
	}
}

func TestHomeAndSubscribe(t *testing.T) {
	st := newStore(t)
	s := app.NewSiteService(st, st)
	ctx := context.Background()

	home, err := s.Home(ctx)
	if err != nil {
		t.Fatalf("Home: %v", err)
	}
	if len(home.FeaturedRooms) != 3 || home.Hotel.Name == "" || len(home.Testimonials) == 0 {
		t.Fatalf("unexpected home page: %+v", home)
	}
	for _, r := range home.FeaturedRooms {
		if !r.Featured {
			t.Fatalf("room %d is not featured", r.ID)
		}
	}

	created, err := s.Subscribe(ctx, " Guest@Example.com ")
	if err != nil || !created {
		t.Fatalf("first subscribe: %v %v", created, err)
	}
	created, err = s.Subscribe(ctx, "guest@example.com")
	if err != nil || created {
		t.Fatalf("repeat subscribe should be a no-op: %v %v", created, err)
	}
	_, err = s.Subscribe(ctx, "nope")
	if fields := fieldErrors(t, err); fields["email"] != "Email is invalid" {
		t.Fatalf("unexpected errors: %v", fields)
	}
}
