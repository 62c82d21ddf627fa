package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	CacheRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gallery_cache_requests_total",
			Help: "Entry list cache lookups by result.",
		},
		[]string{"result"},
	)

	GalleryEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gallery_entries",
			Help: "Number of entries returned by the last full listing.",
		},
	)

	GalleryResetsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gallery_resets_total",
			Help: "Number of completed gallery resets.",
		},
	)
)
