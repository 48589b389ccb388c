package n8n

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "n8n_client",
			Name:      "requests_total",
			Help:      "API requests that received an HTTP response.",
		},
		[]string{"method", "code"},
	)

	requestFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "n8n_client",
			Name:      "request_failures_total",
			Help:      "API requests that failed before a response arrived.",
		},
		[]string{"method"},
	)
)
