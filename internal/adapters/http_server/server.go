package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

type Server struct{ mux *chi.Mux }

// New builds the router. Forwarding headers are only honored when
// trustProxy is set, i.e. the API sits behind a reverse proxy.
func New(trustProxy bool) *Server {
	m := chi.NewRouter()

	// all middlewares go before any route is added
	if trustProxy {
		m.Use(chimw.RealIP)
	}
	m.Use(chimw.RequestID)
	m.Use(chimw.Recoverer)
	m.Use(Timeout(15 * time.Second))
	m.Use(Metrics)
	m.Use(Logger(log.Logger))

	return &Server{mux: m}
}

func (s *Server) Mux() http.Handler { return s.mux }

// Mount attaches any extra handler (e.g., /metrics) to the router.
func (s *Server) Mount(path string, h http.Handler) {
	s.mux.Handle(path, h)
}

func (s *Server) MountHandlers(h *Handlers) {
	authn := Authenticate(h.Auth)
	limit := NewRateLimiter(h.AuthRPS, h.AuthBurst)

	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })

	s.mux.Route("/v1", func(r chi.Router) {
		r.Get("/home", h.home)
		r.Post("/newsletter", h.subscribe)

		r.Get("/rooms", h.listRooms)
		r.Get("/rooms/{id}", h.getRoom)
		r.Get("/rooms/{id}/quote", h.quote)
		r.Post("/bookings", h.createBooking)

		r.Route("/auth", func(r chi.Router) {
			r.With(limit.Middleware).Post("/register", h.register)
			r.With(limit.Middleware).Post("/login", h.login)
			r.With(authn, RequireUser).Post("/logout", h.logout)
			r.With(authn, RequireUser).Get("/me", h.me)
		})
		r.With(authn, RequireUser).Get("/me/bookings", h.myBookings)

		r.Route("/admin", func(r chi.Router) {
			r.Use(authn, RequireAdmin)
			r.Get("/stats", h.stats)
			r.Get("/customers", h.customers)
			r.Get("/bookings", h.adminBookings)
			r.Delete("/bookings/{id}", h.deleteBooking)
			r.Get("/rooms", h.adminRooms)
			r.Post("/rooms", h.createRoom)
			r.Put("/rooms/{id}", h.updateRoom)
			r.Delete("/rooms/{id}", h.deleteRoom)
		})
	})
}
