package client

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "crocodoc_client",
			Name:      "requests_total",
			Help:      "API calls by operation and HTTP status code (0 when no response was received).",
		},
		[]string{"operation", "code"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "crocodoc_client",
			Name:      "request_duration_seconds",
			Help:      "Latency of API calls.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"operation"},
	)
)
