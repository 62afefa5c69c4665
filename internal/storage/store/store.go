// Package store keeps each collection as one JSON snapshot under a fixed key,
// the same layout the site has always used: rooms, bookings, users, plus
// per-token session records.
package store

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"luxe_haven/internal/domain"
)

const (
	keyRooms       = "rooms"
	keyBookings    = "bookings"
	keyUsers       = "users"
	keySubscribers = "subscribers"
	sessionPrefix  = "session:"
)

// Store implements the repository ports on top of a domain.KV.
// Mutations rewrite the whole collection; mu serializes them within the process,
// across processes the last write wins.
type Store struct {
	kv   domain.KV
	seed []domain.Room
	now  func() time.Time
	mu   sync.Mutex
}

func New(kv domain.KV, seed []domain.Room) *Store {
	return &Store{kv: kv, seed: seed, now: time.Now}
}

// WithClock swaps the time source used for booking ids and session expiry.
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

func (s *Store) load(ctx context.Context, key string, dst any) (bool, error) {
	ok, err := s.kv.Get(ctx, key, dst)
	if err != nil {
		return ok, fmt.Errorf("load %s: %w", key, err)
	}
	return ok, nil
}

func (s *Store) save(ctx context.Context, key string, v any) error {
	if err := s.kv.Set(ctx, key, v, 0); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

/********** rooms **********/

// rooms loads the catalog, writing the seed list first when the key has never been set.
// Caller holds mu.
func (s *Store) rooms(ctx context.Context) ([]domain.Room, error) {
	var rs []domain.Room
	ok, err := s.load(ctx, keyRooms, &rs)
	if err != nil {
		return nil, err
	}
	if ok {
		return rs, nil
	}
	rs = cloneRooms(s.seed)
	if err := s.save(ctx, keyRooms, rs); err != nil {
		return nil, err
	}
	return rs, nil
}

func (s *Store) ListRooms(ctx context.Context) ([]domain.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rs, err := s.rooms(ctx)
	if err != nil {
		return nil, err
	}
	return cloneRooms(rs), nil
}

func (s *Store) GetRoom(ctx context.Context, id int64) (domain.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rs, err := s.rooms(ctx)
	if err != nil {
		return domain.Room{}, err
	}
	for _, r := range rs {
		if r.ID == id {
			return cloneRoom(r), nil
		}
	}
	return domain.Room{}, domain.ErrNotFound
}

func (s *Store) CreateRoom(ctx context.Context, r domain.Room) (domain.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rs, err := s.rooms(ctx)
	if err != nil {
		return domain.Room{}, err
	}
	var maxID int64
	for _, x := range rs {
		maxID = max(maxID, x.ID)
	}
	r.ID = maxID + 1
	rs = append(rs, cloneRoom(r))
	if err := s.save(ctx, keyRooms, rs); err != nil {
		return domain.Room{}, err
	}
	return r, nil
}

func (s *Store) UpdateRoom(ctx context.Context, r domain.Room) (domain.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rs, err := s.rooms(ctx)
	if err != nil {
		return domain.Room{}, err
	}
	i := indexRoom(rs, r.ID)
	if i < 0 {
		return domain.Room{}, domain.ErrNotFound
	}
	rs[i] = cloneRoom(r)
	if err := s.save(ctx, keyRooms, rs); err != nil {
		return domain.Room{}, err
	}
	return r, nil
}

func (s *Store) DeleteRoom(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rs, err := s.rooms(ctx)
	if err != nil {
		return err
	}
	i := indexRoom(rs, id)
	if i < 0 {
		return domain.ErrNotFound
	}
	rs = append(rs[:i], rs[i+1:]...)
	return s.save(ctx, keyRooms, rs)
}

// ReplaceRooms overwrites the catalog snapshot.
func (s *Store) ReplaceRooms(ctx context.Context, rs []domain.Room) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if rs == nil {
		rs = []domain.Room{}
	}
	return s.save(ctx, keyRooms, cloneRooms(rs))
}

// SeedRooms writes rs as the catalog unless one is already stored.
// It reports whether anything was written.
func (s *Store) SeedRooms(ctx context.Context, rs []domain.Room) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var existing []domain.Room
	ok, err := s.load(ctx, keyRooms, &existing)
	if err != nil || ok {
		return false, err
	}
	if rs == nil {
		rs = []domain.Room{}
	}
	return true, s.save(ctx, keyRooms, cloneRooms(rs))
}

func indexRoom(rs []domain.Room, id int64) int {
	for i, r := range rs {
		if r.ID == id {
			return i
		}
	}
	return -1
}

func cloneRoom(r domain.Room) domain.Room {
	r.Amenities = append([]string{}, r.Amenities...)
	return r
}

func cloneRooms(in []domain.Room) []domain.Room {
	out := make([]domain.Room, len(in))
	for i, r := range in {
		out[i] = cloneRoom(r)
	}
	return out
}

/********** bookings **********/

func (s *Store) bookings(ctx context.Context) ([]domain.Booking, error) {
	var bs []domain.Booking
	if _, err := s.load(ctx, keyBookings, &bs); err != nil {
		return nil, err
	}
	return bs, nil
}

func (s *Store) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bookings(ctx)
}

// AddBooking assigns a millisecond-timestamp id, bumped past the newest existing id.
func (s *Store) AddBooking(ctx context.Context, b domain.Booking) (domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	bs, err := s.bookings(ctx)
	if err != nil {
		return domain.Booking{}, err
	}
	var last int64
	for _, x := range bs {
		last = max(last, x.ID)
	}
	b.ID = s.now().UnixMilli()
	if b.ID <= last {
		b.ID = last + 1
	}
	bs = append(bs, b)
	if err := s.save(ctx, keyBookings, bs); err != nil {
		return domain.Booking{}, err
	}
	return b, nil
}

func (s *Store) DeleteBooking(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	bs, err := s.bookings(ctx)
	if err != nil {
		return err
	}
	for i, b := range bs {
		if b.ID == id {
			bs = append(bs[:i], bs[i+1:]...)
			return s.save(ctx, keyBookings, bs)
		}
	}
	return domain.ErrNotFound
}

/********** users **********/

func (s *Store) users(ctx context.Context) ([]domain.User, error) {
	var us []domain.User
	if _, err := s.load(ctx, keyUsers, &us); err != nil {
		return nil, err
	}
	return us, nil
}

func indexUser(us []domain.User, email string) int {
	for i, u := range us {
		if strings.EqualFold(u.Email, email) {
			return i
		}
	}
	return -1
}

func (s *Store) FindUserByEmail(ctx context.Context, email string) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	us, err := s.users(ctx)
	if err != nil {
		return domain.User{}, err
	}
	if i := indexUser(us, email); i >= 0 {
		return us[i], nil
	}
	return domain.User{}, domain.ErrNotFound
}

// AddUser appends a new account; the email must not be registered yet.
func (s *Store) AddUser(ctx context.Context, u domain.User) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	us, err := s.users(ctx)
	if err != nil {
		return domain.User{}, err
	}
	if indexUser(us, u.Email) >= 0 {
		return domain.User{}, domain.ErrEmailInUse
	}
	us = append(us, u)
	if err := s.save(ctx, keyUsers, us); err != nil {
		return domain.User{}, err
	}
	return u, nil
}

// PutUser inserts or replaces the account with the same email.
func (s *Store) PutUser(ctx context.Context, u domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	us, err := s.users(ctx)
	if err != nil {
		return err
	}
	if i := indexUser(us, u.Email); i >= 0 {
		us[i] = u
	} else {
		us = append(us, u)
	}
	return s.save(ctx, keyUsers, us)
}

/********** sessions **********/

func (s *Store) CreateSession(ctx context.Context, sess domain.Session) error {
	ttl := sess.ExpiresAt.Sub(s.now())
	if ttl <= 0 {
		return fmt.Errorf("session already expired")
	}
	if err := s.kv.Set(ctx, sessionPrefix+sess.Token, sess, ttl); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (s *Store) GetSession(ctx context.Context, token string) (domain.Session, error) {
	if token == "" {
		return domain.Session{}, domain.ErrNotFound
	}
	var sess domain.Session
	ok, err := s.load(ctx, sessionPrefix+token, &sess)
	if err != nil {
		return domain.Session{}, err
	}
	if !ok || !sess.ExpiresAt.After(s.now()) {
		return domain.Session{}, domain.ErrNotFound
	}
	return sess, nil
}

func (s *Store) DeleteSession(ctx context.Context, token string) error {
	return s.kv.Del(ctx, sessionPrefix+token)
}

/********** newsletter **********/

func (s *Store) AddSubscriber(ctx context.Context, sub domain.Subscriber) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var subs []domain.Subscriber
	if _, err := s.load(ctx, keySubscribers, &subs); err != nil {
		return false, err
	}
	for _, x := range subs {
		if strings.EqualFold(x.Email, sub.Email) {
			return false, nil
		}
	}
	subs = append(subs, sub)
	if err := s.save(ctx, keySubscribers, subs); err != nil {
		return false, err
	}
	return true, nil
}
