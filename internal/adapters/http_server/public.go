package httpserver

import (
	"net/http"

	"luxe_haven/internal/app"
	"luxe_haven/internal/domain"
)

func (h *Handlers) home(w http.ResponseWriter, r *http.Request) {
	page, err := h.Site.Home(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeCached(w, r, page)
}

func (h *Handlers) subscribe(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Email string `json:"email"`
	}
	if !decodeJSON(w, r, &in) {
		return
	}
	created, err := h.Site.Subscribe(r.Context(), in.Email)
	if err != nil {
		writeError(w, err)
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeJSON(w, status, map[string]any{"subscribed": true})
}

func (h *Handlers) listRooms(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	rooms, err := h.Catalog.ListRooms(r.Context(), domain.RoomFilter{
		Search:     q.Get("q"),
		Type:       q.Get("type"),
		PriceRange: q.Get("price"),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeCached(w, r, map[string]any{"items": rooms, "count": len(rooms)})
}

func (h *Handlers) getRoom(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	d, err := h.Catalog.GetRoom(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCached(w, r, d)
}

func (h *Handlers) quote(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	q, err := h.Catalog.Quote(r.Context(), id, r.URL.Query().Get("checkIn"), r.URL.Query().Get("checkOut"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, q)
}

func (h *Handlers) createBooking(w http.ResponseWriter, r *http.Request) {
	var f app.BookingForm
	if !decodeJSON(w, r, &f) {
		return
	}
	rc, err := h.Bookings.Create(r.Context(), f)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rc)
}
