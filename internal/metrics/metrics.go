package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// Business metrics
	VotesCast = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "votes_cast_total",
			Help: "Total number of votes cast",
		},
		[]string{"choice"},
	)

	LikesChanged = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "likes_changed_total",
			Help: "Total number of like and unlike operations",
		},
		[]string{"op"},
	)

	NewsReported = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "news_reported_total",
			Help: "Total number of manually reported news items",
		},
	)
)
