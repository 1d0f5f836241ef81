// Package metrics exposes the bot's Prometheus counters.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Message kinds used as the "kind" label.
const (
	KindCongratulation = "congratulation"
	KindAnniversary    = "anniversary"
	KindReminder       = "reminder"
	KindChannel        = "birthday_channel"
	KindSurvey         = "survey"
	KindBirthdayless   = "birthdayless"
)

var (
	messagesSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "birthday_bot",
			Name:      "messages_sent_total",
			Help:      "Messages delivered to Slack, by kind.",
		},
		[]string{"kind"},
	)

	imageFetchFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "birthday_bot",
			Name:      "image_fetch_failures_total",
			Help:      "Congratulations sent without an image because the provider gave up.",
		},
	)

	roomsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "birthday_bot",
			Name:      "birthday_channels_created_total",
			Help:      "Temporary birthday channels created.",
		},
	)

	roomsDeleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "birthday_bot",
			Name:      "birthday_channels_deleted_total",
			Help:      "Temporary birthday channels removed after their TTL.",
		},
	)
)

func MessageSent(kind string) { messagesSent.WithLabelValues(kind).Inc() }

func ImageFetchFailed() { imageFetchFailures.Inc() }

func RoomCreated() { roomsCreated.Inc() }

func RoomDeleted() { roomsDeleted.Inc() }
