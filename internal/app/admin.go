package app

import (
	"context"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"luxe_haven/internal/domain"
)

const (
	recentBookingsLimit = 5
	roomsPreviewLimit   = 5

	defaultRoomImage    = "/images/standard-double.jpg"
	defaultRoomCapacity = 2
)

// RoomForm is the admin room editor. Available is a pointer so an omitted
// checkbox can fall back to the create default.
type RoomForm struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Price       float64  `json:"price"`
	Image       string   `json:"image"`
	Description string   `json:"description"`
	Capacity    int      `json:"capacity"`
	Amenities   []string `json:"amenities"`
	Available   *bool    `json:"available"`
	Featured    bool     `json:"featured"`
}

type roomInput struct {
	Name        string  `json:"name" validate:"required"`
	Type        string  `json:"type" validate:"oneof=standard deluxe suite executive"`
	Price       float64 `json:"price" validate:"gte=0"`
	Image       string  `json:"image" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Capacity    int     `json:"capacity" validate:"gte=1"`
}

var roomMessages = messages{
	"name":        "Name is required",
	"type":        "Type must be standard, deluxe, suite or executive",
	"price":       "Price must be zero or more",
	"image":       "Image is required",
	"description": "Description is required",
	"capacity":    "Capacity must be at least 1",
}

type AdminService struct {
	rooms    domain.RoomRepository
	bookings domain.BookingRepository
	now      func() time.Time
}

func NewAdminService(r domain.RoomRepository, b domain.BookingRepository) *AdminService {
	return &AdminService{rooms: r, bookings: b, now: time.Now}
}

func (s *AdminService) load(ctx context.Context) ([]domain.Room, []domain.Booking, error) {
	rs, err := s.rooms.ListRooms(ctx)
	if err != nil {
		return nil, nil, err
	}
	bs, err := s.bookings.ListBookings(ctx)
	if err != nil {
		return nil, nil, err
	}
	return rs, bs, nil
}

func roomsByKey(rs []domain.Room) map[string]domain.Room {
	m := make(map[string]domain.Room, len(rs))
	for _, r := range rs {
		m[roomKey(r.ID)] = r
	}
	return m
}

// bookingValue prices a booking against the current catalog; unknown rooms count as zero.
func bookingValue(b domain.Booking, byKey map[string]domain.Room) float64 {
	r, ok := byKey[strings.TrimSpace(b.RoomID)]
	if !ok {
		return 0
	}
	return b.Total(r)
}

// Stats computes the dashboard overview cards.
func (s *AdminService) Stats(ctx context.Context) (domain.DashboardStats, error) {
	rs, bs, err := s.load(ctx)
	if err != nil {
		return domain.DashboardStats{}, err
	}
	byKey := roomsByKey(rs)
	now := s.now()

	st := domain.DashboardStats{
		TotalBookings:  len(bs),
		TotalRooms:     len(rs),
		RecentBookings: make([]domain.RecentBooking, 0, recentBookingsLimit),
	}
	for _, r := range rs {
		if r.Available {
			st.AvailableRooms++
		}
	}
	if st.TotalRooms > 0 {
		st.AvailabilityRate = int(math.Round(float64(st.AvailableRooms) / float64(st.TotalRooms) * 100))
	}
	for _, b := range bs {
		st.TotalRevenue += bookingValue(b, byKey)
		if b.CheckIn.After(now) {
			st.UpcomingCheckIns++
		}
	}

	recent := make([]domain.Booking, len(bs))
	copy(recent, bs)
	sort.SliceStable(recent, func(i, j int) bool { return recent[i].CreatedAt.After(recent[j].CreatedAt) })
	for i := 0; i < len(recent) && i < recentBookingsLimit; i++ {
		rb := domain.RecentBooking{Booking: recent[i]}
		if r, ok := byKey[strings.TrimSpace(recent[i].RoomID)]; ok {
			rb.RoomName = r.Name
		}
		st.RecentBookings = append(st.RecentBookings, rb)
	}

	n := min(len(rs), roomsPreviewLimit)
	st.RoomsPreview = append(make([]domain.Room, 0, n), rs[:n]...)
	return st, nil
}

// Customers groups bookings by guest email in order of first appearance.
func (s *AdminService) Customers(ctx context.Context) ([]domain.Customer, error) {
	rs, bs, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	byKey := roomsByKey(rs)

	out := make([]domain.Customer, 0)
	idx := map[string]int{}
	for _, b := range bs {
		key := normalizeEmail(b.Email)
		i, seen := idx[key]
		if !seen {
			i = len(out)
			idx[key] = i
			out = append(out, domain.Customer{
				Email:     b.Email,
				FirstName: b.FirstName,
				LastName:  b.LastName,
				Phone:     b.Phone,
			})
		}
		out[i].Bookings++
		out[i].TotalSpent += bookingValue(b, byKey)
	}
	return out, nil
}

// SearchBookings matches the term against the guest's full name and email.
func (s *AdminService) SearchBookings(ctx context.Context, term string) ([]domain.RecentBooking, error) {
	rs, bs, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	byKey := roomsByKey(rs)
	term = strings.ToLower(strings.TrimSpace(term))

	out := make([]domain.RecentBooking, 0, len(bs))
	for _, b := range bs {
		if term != "" &&
			!strings.Contains(strings.ToLower(b.FullName()), term) &&
			!strings.Contains(strings.ToLower(b.Email), term) {
			continue
		}
		rb := domain.RecentBooking{Booking: b}
		if r, ok := byKey[strings.TrimSpace(b.RoomID)]; ok {
			rb.RoomName = r.Name
		}
		out = append(out, rb)
	}
	return out, nil
}

func (s *AdminService) DeleteBooking(ctx context.Context, id int64) error {
	if err := s.bookings.DeleteBooking(ctx, id); err != nil {
		return err
	}
	log.Info().Int64("booking_id", id).Msg("booking deleted")
	return nil
}

// ListRooms is the inventory table with its name/type search box.
func (s *AdminService) ListRooms(ctx context.Context, term string) ([]domain.Room, error) {
	rs, err := s.rooms.ListRooms(ctx)
	if err != nil {
		return nil, err
	}
	term = strings.ToLower(strings.TrimSpace(term))
	out := make([]domain.Room, 0, len(rs))
	for _, r := range rs {
		if term == "" ||
			strings.Contains(strings.ToLower(r.Name), term) ||
			strings.Contains(string(r.Type), term) {
			out = append(out, r)
		}
	}
	return out, nil
}

// CreateRoom fills the add-room defaults before validating.
func (s *AdminService) CreateRoom(ctx context.Context, f RoomForm) (domain.Room, error) {
	if strings.TrimSpace(f.Type) == "" {
		f.Type = string(domain.RoomStandard)
	}
	if strings.TrimSpace(f.Image) == "" {
		f.Image = defaultRoomImage
	}
	if f.Capacity == 0 {
		f.Capacity = defaultRoomCapacity
	}
	if f.Available == nil {
		yes := true
		f.Available = &yes
	}
	r, err := roomFromForm(f)
	if err != nil {
		return domain.Room{}, err
	}
	r, err = s.rooms.CreateRoom(ctx, r)
	if err != nil {
		return domain.Room{}, err
	}
	log.Info().Int64("room_id", r.ID).Str("name", r.Name).Msg("room created")
	return r, nil
}

// UpdateRoom replaces every field of an existing room.
func (s *AdminService) UpdateRoom(ctx context.Context, id int64, f RoomForm) (domain.Room, error) {
	r, err := roomFromForm(f)
	if err != nil {
		return domain.Room{}, err
	}
	r.ID = id
	r, err = s.rooms.UpdateRoom(ctx, r)
	if err != nil {
		return domain.Room{}, err
	}
	log.Info().Int64("room_id", r.ID).Msg("room updated")
	return r, nil
}

func (s *AdminService) DeleteRoom(ctx context.Context, id int64) error {
	if err := s.rooms.DeleteRoom(ctx, id); err != nil {
		return err
	}
	log.Info().Int64("room_id", id).Msg("room deleted")
	return nil
}

// CheckRoom runs an imported room through the admin form rules and
// normalizes it; the id is kept.
func CheckRoom(r domain.Room) (domain.Room, error) {
	available := r.Available
	out, err := roomFromForm(RoomForm{
		Name:        r.Name,
		Type:        string(r.Type),
		Price:       r.Price,
		Image:       r.Image,
		Description: r.Description,
		Capacity:    r.Capacity,
		Amenities:   r.Amenities,
		Available:   &available,
		Featured:    r.Featured,
	})
	if err != nil {
		return domain.Room{}, err
	}
	out.ID = r.ID
	return out, nil
}

func roomFromForm(f RoomForm) (domain.Room, error) {
	in := roomInput{
		Name:        strings.TrimSpace(f.Name),
		Type:        strings.ToLower(strings.TrimSpace(f.Type)),
		Price:       f.Price,
		Image:       strings.TrimSpace(f.Image),
		Description: strings.TrimSpace(f.Description),
		Capacity:    f.Capacity,
	}
	var verr domain.ValidationError
	collect(&verr, in, roomMessages)
	if err := verr.OrNil(); err != nil {
		return domain.Room{}, err
	}

	amenities := make([]string, 0, len(f.Amenities))
	for _, a := range f.Amenities {
		if a = strings.TrimSpace(a); a != "" {
			amenities = append(amenities, a)
		}
	}
	return domain.Room{
		Name:        in.Name,
		Type:        domain.RoomType(in.Type),
		Price:       in.Price,
		Image:       in.Image,
		Description: in.Description,
		Capacity:    in.Capacity,
		Amenities:   amenities,
		Available:   f.Available != nil && *f.Available,
		Featured:    f.Featured,
	}, nil
}
