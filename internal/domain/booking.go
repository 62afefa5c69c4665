package domain

import (
	"math"
	"time"
)

type BookingStatus string

const BookingConfirmed BookingStatus = "confirmed"

type Booking struct {
	ID              int64         `json:"id"` // unix millis at creation
	FirstName       string        `json:"firstName"`
	LastName        string        `json:"lastName"`
	Email           string        `json:"email"`
	Phone           string        `json:"phone"`
	RoomID          string        `json:"roomId"` // loose reference, may not match any room
	CheckIn         time.Time     `json:"checkIn"`
	CheckOut        time.Time     `json:"checkOut"`
	Guests          int           `json:"guests"`
	SpecialRequests string        `json:"specialRequests,omitempty"`
	Status          BookingStatus `json:"status"`
	CreatedAt       time.Time     `json:"createdAt"`
}

func (b Booking) FullName() string { return b.FirstName + " " + b.LastName }

// Nights counts started 24h periods between check-in and check-out.
func Nights(checkIn, checkOut time.Time) int {
	d := checkOut.Sub(checkIn)
	if d <= 0 {
		return 0
	}
	return int(math.Ceil(d.Hours() / 24))
}

func (b Booking) Nights() int { return Nights(b.CheckIn, b.CheckOut) }

func (b Booking) Total(r Room) float64 { return r.Price * float64(b.Nights()) }

// Quote is the price summary shown next to the booking form.
type Quote struct {
	RoomID string  `json:"roomId"`
	Nights int     `json:"nights"`
	Price  float64 `json:"price"`
	Total  float64 `json:"total"`
}

// BookingReceipt is what a guest gets back after booking and what notifiers send.
type BookingReceipt struct {
	Booking  Booking `json:"booking"`
	RoomName string  `json:"roomName,omitempty"`
	Quote    Quote   `json:"quote"`
}
