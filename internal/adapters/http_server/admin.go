package httpserver

import (
	"net/http"

	"luxe_haven/internal/app"
)

func (h *Handlers) stats(w http.ResponseWriter, r *http.Request) {
	st, err := h.Admin.Stats(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (h *Handlers) customers(w http.ResponseWriter, r *http.Request) {
	cs, err := h.Admin.Customers(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": cs, "count": len(cs)})
}

func (h *Handlers) adminBookings(w http.ResponseWriter, r *http.Request) {
	bs, err := h.Admin.SearchBookings(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": bs, "count": len(bs)})
}

func (h *Handlers) deleteBooking(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.Admin.DeleteBooking(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) adminRooms(w http.ResponseWriter, r *http.Request) {
	rs, err := h.Admin.ListRooms(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": rs, "count": len(rs)})
}

func (h *Handlers) createRoom(w http.ResponseWriter, r *http.Request) {
	var f app.RoomForm
	if !decodeJSON(w, r, &f) {
		return
	}
	room, err := h.Admin.CreateRoom(r.Context(), f)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, room)
}

func (h *Handlers) updateRoom(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var f app.RoomForm
	if !decodeJSON(w, r, &f) {
		return
	}
	room, err := h.Admin.UpdateRoom(r.Context(), id, f)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, room)
}

func (h *Handlers) deleteRoom(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.Admin.DeleteRoom(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
