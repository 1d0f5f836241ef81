package handlers

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter registers the bot's endpoints. A nil handler leaves its routes
// out, which is how the degraded mode only serves health and metrics and
// how the calendar stays off without CALENDAR_TOKEN.
func NewRouter(slackHandler *SlackHandler, calendarHandler *CalendarHandler) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/health", Health).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	if slackHandler != nil {
		r.HandleFunc("/slack/commands", slackHandler.HandleSlashCommand).Methods(http.MethodPost)
	}
	if calendarHandler != nil {
		r.HandleFunc("/calendar.ics", calendarHandler.ServeCalendar).Methods(http.MethodGet)
	}

	return r
}

func Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "OK")
}
