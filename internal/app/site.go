package app

import (
	"context"
	"strings"
	"time"

	"luxe_haven/internal/domain"
)

const featuredRoomsLimit = 3

type SiteService struct {
	rooms        domain.RoomRepository
	subscribers  domain.SubscriberRepository
	hotel        domain.HotelInfo
	testimonials []domain.Testimonial
	now          func() time.Time
}

func NewSiteService(r domain.RoomRepository, subs domain.SubscriberRepository) *SiteService {
	return &SiteService{
		rooms:        r,
		subscribers:  subs,
		hotel:        DefaultHotel,
		testimonials: DefaultTestimonials,
		now:          time.Now,
	}
}

func (s *SiteService) Home(ctx context.Context) (domain.HomePage, error) {
	rs, err := s.rooms.ListRooms(ctx)
	if err != nil {
		return domain.HomePage{}, err
	}
	featured := make([]domain.Room, 0, featuredRoomsLimit)
	for _, r := range rs {
		if r.Featured && len(featured) < featuredRoomsLimit {
			featured = append(featured, r)
		}
	}
	return domain.HomePage{Hotel: s.hotel, FeaturedRooms: featured, Testimonials: s.testimonials}, nil
}

type subscribeInput struct {
	Email string `json:"email" validate:"required,looseemail"`
}

var subscribeMessages = messages{
	"email.required":   "Email is required",
	"email.looseemail": "Email is invalid",
}

// Subscribe adds an address to the newsletter list; repeating it is a no-op.
func (s *SiteService) Subscribe(ctx context.Context, email string) (bool, error) {
	in := subscribeInput{Email: strings.TrimSpace(email)}
	var verr domain.ValidationError
	collect(&verr, in, subscribeMessages)
	if err := verr.OrNil(); err != nil {
		return false, err
	}
	return s.subscribers.AddSubscriber(ctx, domain.Subscriber{Email: normalizeEmail(in.Email), CreatedAt: s.now().UTC()})
}
