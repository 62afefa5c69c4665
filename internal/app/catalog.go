package app

import (
	"context"
	"strings"
	"time"

	"luxe_haven/internal/domain"
)

const similarRoomsLimit = 3

var priceRanges = map[string]func(float64) bool{
	"all":     func(float64) bool { return true },
	"0-100":   func(p float64) bool { return p <= 100 },
	"100-200": func(p float64) bool { return p > 100 && p <= 200 },
	"200-300": func(p float64) bool { return p > 200 && p <= 300 },
	"300+":    func(p float64) bool { return p > 300 },
}

type CatalogService struct {
	rooms domain.RoomRepository
}

func NewCatalogService(r domain.RoomRepository) *CatalogService {
	return &CatalogService{rooms: r}
}

// ListRooms applies the search box, type select and price select of the rooms page.
func (s *CatalogService) ListRooms(ctx context.Context, f domain.RoomFilter) ([]domain.Room, error) {
	var verr domain.ValidationError
	typ := strings.ToLower(strings.TrimSpace(f.Type))
	if typ == "" {
		typ = "all"
	}
	if typ != "all" {
		if _, err := domain.ParseRoomType(typ); err != nil {
			verr.Add("type", "Room type must be all, standard, deluxe, suite or executive")
		}
	}
	bucket := strings.TrimSpace(f.PriceRange)
	if bucket == "" {
		bucket = "all"
	}
	inRange, ok := priceRanges[bucket]
	if !ok {
		verr.Add("price", "Price range must be all, 0-100, 100-200, 200-300 or 300+")
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	rs, err := s.rooms.ListRooms(ctx)
	if err != nil {
		return nil, err
	}
	term := strings.ToLower(strings.TrimSpace(f.Search))
	out := make([]domain.Room, 0, len(rs))
	for _, r := range rs {
		matchesSearch := strings.Contains(strings.ToLower(r.Name), term) ||
			strings.Contains(strings.ToLower(r.Description), term)
		matchesType := typ == "all" || strings.EqualFold(string(r.Type), typ)
		if matchesSearch && matchesType && inRange(r.Price) {
			out = append(out, r)
		}
	}
	return out, nil
}

// GetRoom returns the room page: the room, its amenity labels and up to three similar rooms.
func (s *CatalogService) GetRoom(ctx context.Context, id int64) (domain.RoomDetail, error) {
	rs, err := s.rooms.ListRooms(ctx)
	if err != nil {
		return domain.RoomDetail{}, err
	}
	var (
		found bool
		room  domain.Room
	)
	for _, r := range rs {
		if r.ID == id {
			room, found = r, true
			break
		}
	}
	if !found {
		return domain.RoomDetail{}, domain.ErrNotFound
	}
	similar := make([]domain.Room, 0, similarRoomsLimit)
	for _, r := range rs {
		if len(similar) == similarRoomsLimit {
			break
		}
		if r.ID != room.ID && r.Type == room.Type && r.Available {
			similar = append(similar, r)
		}
	}
	return domain.RoomDetail{Room: room, AmenityLabels: room.AmenityList(), Similar: similar}, nil
}

// Quote prices a stay for the booking summary panel.
func (s *CatalogService) Quote(ctx context.Context, roomID int64, checkIn, checkOut string) (domain.Quote, error) {
	in, out, err := parseStay(checkIn, checkOut)
	if err != nil {
		return domain.Quote{}, err
	}
	r, err := s.rooms.GetRoom(ctx, roomID)
	if err != nil {
		return domain.Quote{}, err
	}
	return quoteFor(r, in, out), nil
}

func quoteFor(r domain.Room, in, out time.Time) domain.Quote {
	nights := domain.Nights(in, out)
	return domain.Quote{
		RoomID: roomKey(r.ID),
		Nights: nights,
		Price:  r.Price,
		Total:  r.Price * float64(nights),
	}
}

type stayInput struct {
	CheckIn  time.Time `json:"checkIn" validate:"required"`
	CheckOut time.Time `json:"checkOut" validate:"required,gtfield=CheckIn"`
}

var stayMessages = messages{
	"checkIn":           "Check-in date is required",
	"checkOut.required": "Check-out date is required",
	"checkOut.gtfield":  "Check-out date must be after check-in date",
}

// parseStay parses and validates a check-in/check-out pair.
func parseStay(checkIn, checkOut string) (time.Time, time.Time, error) {
	var verr domain.ValidationError
	in, err := parseDate(checkIn)
	if err != nil {
		verr.Add("checkIn", "Check-in date is invalid")
	}
	out, err := parseDate(checkOut)
	if err != nil {
		verr.Add("checkOut", "Check-out date is invalid")
	}
	collect(&verr, stayInput{CheckIn: in, CheckOut: out}, stayMessages)
	if err := verr.OrNil(); err != nil {
		return time.Time{}, time.Time{}, err
	}
	return in, out, nil
}
