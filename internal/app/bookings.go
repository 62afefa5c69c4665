package app

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"luxe_haven/internal/adapters/observability"
	"luxe_haven/internal/domain"
)

const (
	notifyTimeout    = 30 * time.Second
	notifyConcurrent = 16
)

// BookingForm is the reservation form as submitted by a guest.
type BookingForm struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	RoomID          string `json:"roomId"`
	CheckIn         string `json:"checkIn"`
	CheckOut        string `json:"checkOut"`
	Guests          int    `json:"guests"`
	SpecialRequests string `json:"specialRequests"`
}

type bookingInput struct {
	FirstName string    `json:"firstName" validate:"required"`
	LastName  string    `json:"lastName" validate:"required"`
	Email     string    `json:"email" validate:"required,looseemail"`
	Phone     string    `json:"phone" validate:"required"`
	RoomID    string    `json:"roomId" validate:"required"`
	CheckIn   time.Time `json:"checkIn" validate:"required"`
	CheckOut  time.Time `json:"checkOut" validate:"required,gtfield=CheckIn"`
	Guests    int       `json:"guests" validate:"min=1,max=6"`
}

var bookingMessages = messages{
	"firstName":         "First name is required",
	"lastName":          "Last name is required",
	"email.required":    "Email is required",
	"email.looseemail":  "Email is invalid",
	"phone":             "Phone number is required",
	"roomId":            "Please select a room",
	"checkIn":           "Check-in date is required",
	"checkIn.past":      "Check-in date cannot be in the past",
	"checkOut.past":     "Check-out date cannot be in the past",
	"checkOut.required": "Check-out date is required",
	"checkOut.gtfield":  "Check-out date must be after check-in date",
	"guests":            "Guests must be between 1 and 6",
}

type BookingService struct {
	bookings domain.BookingRepository
	rooms    domain.RoomRepository
	notifier domain.Notifier
	now      func() time.Time
	pending  sync.WaitGroup
	slots    *semaphore.Weighted
}

// NewBookingService wires the booking flow; notifier may be nil.
func NewBookingService(b domain.BookingRepository, r domain.RoomRepository, n domain.Notifier) *BookingService {
	return &BookingService{bookings: b, rooms: r, notifier: n, now: time.Now, slots: semaphore.NewWeighted(notifyConcurrent)}
}

// Create validates the form, stores a confirmed booking and sends the confirmation in the background.
// The room reference is not checked against the catalog; an unknown room prices at zero.
func (s *BookingService) Create(ctx context.Context, f BookingForm) (domain.BookingReceipt, error) {
	var verr domain.ValidationError
	in := bookingInput{
		FirstName: strings.TrimSpace(f.FirstName),
		LastName:  strings.TrimSpace(f.LastName),
		Email:     strings.TrimSpace(f.Email),
		Phone:     strings.TrimSpace(f.Phone),
		RoomID:    strings.TrimSpace(f.RoomID),
		Guests:    f.Guests,
	}
	if in.Guests == 0 {
		in.Guests = 1
	}
	var err error
	if in.CheckIn, err = parseDate(f.CheckIn); err != nil {
		verr.Add("checkIn", "Check-in date is invalid")
	}
	if in.CheckOut, err = parseDate(f.CheckOut); err != nil {
		verr.Add("checkOut", "Check-out date is invalid")
	}
	collect(&verr, in, bookingMessages)
	today := s.now().UTC().Truncate(24 * time.Hour)
	if !in.CheckIn.IsZero() && in.CheckIn.Truncate(24*time.Hour).Before(today) {
		verr.Add("checkIn", bookingMessages["checkIn.past"])
	}
	if !in.CheckOut.IsZero() && in.CheckOut.Truncate(24*time.Hour).Before(today) {
		verr.Add("checkOut", bookingMessages["checkOut.past"])
	}
	if err := verr.OrNil(); err != nil {
		return domain.BookingReceipt{}, err
	}

	b, err := s.bookings.AddBooking(ctx, domain.Booking{
		FirstName:       in.FirstName,
		LastName:        in.LastName,
		Email:           in.Email,
		Phone:           in.Phone,
		RoomID:          in.RoomID,
		CheckIn:         in.CheckIn,
		CheckOut:        in.CheckOut,
		Guests:          in.Guests,
		SpecialRequests: strings.TrimSpace(f.SpecialRequests),
		Status:          domain.BookingConfirmed,
		CreatedAt:       s.now().UTC(),
	})
	if err != nil {
		return domain.BookingReceipt{}, err
	}
	observability.ObserveBooking()
	log.Info().Int64("booking_id", b.ID).Str("room_id", b.RoomID).Int("nights", b.Nights()).Msg("booking created")

	receipt := domain.BookingReceipt{Booking: b, Quote: domain.Quote{RoomID: b.RoomID, Nights: b.Nights()}}
	if id, perr := strconv.ParseInt(b.RoomID, 10, 64); perr == nil {
		if r, rerr := s.rooms.GetRoom(ctx, id); rerr == nil {
			receipt.RoomName = r.Name
			receipt.Quote = quoteFor(r, b.CheckIn, b.CheckOut)
		}
	}

	if s.notifier != nil {
		s.pending.Add(1)
		go s.sendConfirmation(context.WithoutCancel(ctx), receipt)
	}
	return receipt, nil
}

func (s *BookingService) sendConfirmation(ctx context.Context, r domain.BookingReceipt) {
	defer s.pending.Done()
	ctx, cancel := context.WithTimeout(ctx, notifyTimeout)
	defer cancel()
	if err := s.slots.Acquire(ctx, 1); err != nil {
		log.Warn().Err(err).Int64("booking_id", r.Booking.ID).Msg("booking confirmation dropped")
		return
	}
	defer s.slots.Release(1)
	if err := s.notifier.BookingCreated(ctx, r); err != nil {
		log.Warn().Err(err).Int64("booking_id", r.Booking.ID).Msg("booking confirmation not delivered")
	}
}

// Wait blocks until in-flight confirmations finish.
func (s *BookingService) Wait() { s.pending.Wait() }

// ForEmail lists the bookings made with the given email address.
func (s *BookingService) ForEmail(ctx context.Context, email string) ([]domain.Booking, error) {
	bs, err := s.bookings.ListBookings(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Booking, 0)
	for _, b := range bs {
		if strings.EqualFold(b.Email, email) {
			out = append(out, b)
		}
	}
	return out, nil
}

func roomKey(id int64) string { return strconv.FormatInt(id, 10) }
