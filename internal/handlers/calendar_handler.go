package handlers

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/diegoclair/slack-birthday-bot/internal/calendar"
	"github.com/diegoclair/slack-birthday-bot/internal/domain/contract"
	"github.com/rs/zerolog/log"
)

// CalendarHandler serves the roster as an iCalendar feed. Every request must
// carry the token, either as the "token" query parameter (calendar apps
// cannot set headers) or as a bearer token.
type CalendarHandler struct {
	birthdayService contract.BirthdayService
	generator       *calendar.Generator
	token           string
}

func NewCalendar(birthdayService contract.BirthdayService, generator *calendar.Generator, token string) *CalendarHandler {
	return &CalendarHandler{
		birthdayService: birthdayService,
		generator:       generator,
		token:           token,
	}
}

func (h *CalendarHandler) ServeCalendar(w http.ResponseWriter, r *http.Request) {
	if !h.authorized(r) {
		log.Warn().Str("remote_addr", r.RemoteAddr).Msg("rejected calendar request")
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	users, err := h.birthdayService.Users(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to load users for calendar")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	body, err := h.generator.Generate(users)
	if err != nil {
		log.Error().Err(err).Msg("failed to encode calendar")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `inline; filename="birthdays.ics"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// authorized compares in constant time. An empty configured token rejects everything.
func (h *CalendarHandler) authorized(r *http.Request) bool {
	if h.token == "" {
		return false
	}

	given := r.URL.Query().Get("token")
	if given == "" {
		given = strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	}

	return subtle.ConstantTimeCompare([]byte(given), []byte(h.token)) == 1
}
