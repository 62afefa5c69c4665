package domain

import (
	"context"
	"time"
)

// KV is the key/value record store every collection lives in.
type KV interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttl time.Duration) error // ttl 0 = no expiry
	Del(ctx context.Context, key string) error
}

type RoomRepository interface {
	ListRooms(ctx context.Context) ([]Room, error)
	GetRoom(ctx context.Context, id int64) (Room, error)
	CreateRoom(ctx context.Context, r Room) (Room, error)
	UpdateRoom(ctx context.Context, r Room) (Room, error)
	DeleteRoom(ctx context.Context, id int64) error
	ReplaceRooms(ctx context.Context, rs []Room) error
}

type BookingRepository interface {
	ListBookings(ctx context.Context) ([]Booking, error)
	AddBooking(ctx context.Context, b Booking) (Booking, error)
	DeleteBooking(ctx context.Context, id int64) error
}

type UserRepository interface {
	FindUserByEmail(ctx context.Context, email string) (User, error)
	AddUser(ctx context.Context, u User) (User, error)
	PutUser(ctx context.Context, u User) error
}

type SessionRepository interface {
	CreateSession(ctx context.Context, s Session) error
	GetSession(ctx context.Context, token string) (Session, error)
	DeleteSession(ctx context.Context, token string) error
}

type SubscriberRepository interface {
	AddSubscriber(ctx context.Context, s Subscriber) (created bool, err error)
}

type Notifier interface {
	BookingCreated(ctx context.Context, r BookingReceipt) error
}

// Read models & queries
type RoomFilter struct {
	Search     string
	Type       string // "all" or a RoomType
	PriceRange string // all|0-100|100-200|200-300|300+
}

type RoomDetail struct {
	Room
	AmenityLabels []Amenity `json:"amenityLabels"`
	Similar       []Room    `json:"similar"`
}

type RecentBooking struct {
	Booking
	RoomName string `json:"roomName,omitempty"`
}

type DashboardStats struct {
	TotalBookings    int             `json:"totalBookings"`
	TotalRooms       int             `json:"totalRooms"`
	AvailableRooms   int             `json:"availableRooms"`
	AvailabilityRate int             `json:"availabilityRate"` // percent
	TotalRevenue     float64         `json:"totalRevenue"`
	UpcomingCheckIns int             `json:"upcomingCheckIns"`
	RecentBookings   []RecentBooking `json:"recentBookings"`
	RoomsPreview     []Room          `json:"roomsPreview"`
}

type Customer struct {
	Email      string  `json:"email"`
	FirstName  string  `json:"firstName"`
	LastName   string  `json:"lastName"`
	Phone      string  `json:"phone"`
	Bookings   int     `json:"bookings"`
	TotalSpent float64 `json:"totalSpent"`
}
