package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	quotesComputed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tripnation_quotes_computed_total",
			Help: "Price breakdowns computed, by source",
		},
		[]string{"source"},
	)

	quotesUnconfirmed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tripnation_quotes_unconfirmed_total",
			Help: "Quotes that had no line item and rendered as to be confirmed",
		},
	)

	quizProfilesResolved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tripnation_quiz_profiles_resolved_total",
			Help: "Quiz results, by traveler profile",
		},
		[]string{"profile"},
	)

	quizSessionsStarted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tripnation_quiz_sessions_started_total",
			Help: "Quiz sessions opened",
		},
	)

	tripsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tripnation_trips_created_total",
			Help: "Trips created, by kind",
		},
		[]string{"kind"},
	)
)
