package httpserver

import (
	"net/http"
	"time"

	"luxe_haven/internal/app"
	"luxe_haven/internal/domain"
)

type sessionResponse struct {
	Token     string             `json:"token"`
	ExpiresAt time.Time          `json:"expiresAt"`
	User      domain.SessionUser `json:"user"`
}

func toSessionResponse(s domain.Session) sessionResponse {
	return sessionResponse{Token: s.Token, ExpiresAt: s.ExpiresAt, User: s.User}
}

func (h *Handlers) register(w http.ResponseWriter, r *http.Request) {
	var f app.RegisterForm
	if !decodeJSON(w, r, &f) {
		return
	}
	sess, err := h.Auth.Register(r.Context(), f)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toSessionResponse(sess))
}

func (h *Handlers) login(w http.ResponseWriter, r *http.Request) {
	var f app.LoginForm
	if !decodeJSON(w, r, &f) {
		return
	}
	sess, err := h.Auth.Login(r.Context(), f)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toSessionResponse(sess))
}

func (h *Handlers) logout(w http.ResponseWriter, r *http.Request) {
	sess, _ := SessionFrom(r.Context())
	if err := h.Auth.Logout(r.Context(), sess.Token); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) me(w http.ResponseWriter, r *http.Request) {
	sess, _ := SessionFrom(r.Context())
	writeJSON(w, http.StatusOK, sess.User)
}

func (h *Handlers) myBookings(w http.ResponseWriter, r *http.Request) {
	sess, _ := SessionFrom(r.Context())
	bs, err := h.Bookings.ForEmail(r.Context(), sess.User.Email)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": bs, "count": len(bs)})
}
