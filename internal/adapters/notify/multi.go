// Package notify delivers booking confirmations to the hotel's channels.
package notify

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"luxe_haven/internal/adapters/observability"
	"luxe_haven/internal/domain"
)

// Multi fans a booking out to every notifier; one failing channel does not stop the others.
type Multi []domain.Notifier

func (m Multi) BookingCreated(ctx context.Context, r domain.BookingReceipt) error {
	errs := make([]error, len(m))
	var g errgroup.Group
	for i, n := range m {
		i, n := i, n
		g.Go(func() error {
			errs[i] = n.BookingCreated(ctx, r)
			return nil
		})
	}
	_ = g.Wait()
	return errors.Join(errs...)
}

// Log writes the confirmation to the application log. Always configured.
type Log struct{}

func (Log) BookingCreated(ctx context.Context, r domain.BookingReceipt) error {
	log.Info().
		Int64("booking_id", r.Booking.ID).
		Str("email", r.Booking.Email).
		Str("room", r.RoomName).
		Float64("total", r.Quote.Total).
		Msg("booking confirmation")
	observability.ObserveNotification("log", nil)
	return nil
}

// Summary is the human-readable confirmation text.
func Summary(r domain.BookingReceipt) string {
	b := r.Booking
	room := r.RoomName
	if room == "" {
		room = "room " + b.RoomID
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Booking #%d confirmed\n", b.ID)
	fmt.Fprintf(&sb, "%s <%s>, %s\n", b.FullName(), b.Email, b.Phone)
	fmt.Fprintf(&sb, "%s, %s to %s (%d nights), %d guests\n",
		room, b.CheckIn.Format("2006-01-02"), b.CheckOut.Format("2006-01-02"), r.Quote.Nights, b.Guests)
	if r.Quote.Total > 0 {
		fmt.Fprintf(&sb, "Total: $%.2f\n", r.Quote.Total)
	}
	if b.SpecialRequests != "" {
		fmt.Fprintf(&sb, "Requests: %s\n", b.SpecialRequests)
	}
	return strings.TrimRight(sb.String(), "\n")
}
