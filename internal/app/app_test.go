package app_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	redisad "luxe_haven/internal/adapters/redis"
	"luxe_haven/internal/app"
	"luxe_haven/internal/domain"
	"luxe_haven/internal/storage/store"
)

// ---- fakes ----

type fakeNotifier struct {
	mu   sync.Mutex
	got  []domain.BookingReceipt
	fail error
}

func (n *fakeNotifier) BookingCreated(ctx context.Context, r domain.BookingReceipt) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.got = append(n.got, r)
	return n.fail
}

func (n *fakeNotifier) receipts() []domain.BookingReceipt {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]domain.BookingReceipt(nil), n.got...)
}

func newStore(t *testing.T) *store.Store {
	t.Helper()
	mr := miniredis.RunT(t)
	c := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = c.Close() })
	return store.New(redisad.NewWithClient(c, "test:"), app.DefaultRooms())
}

func fieldErrors(t *testing.T, err error) map[string]string {
	t.Helper()
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	return verr.Fields
}
