package utils

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	// FixtureFetches counts fixture loads by result (ok, error).
	FixtureFetches = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "thanawyia",
		Name:      "fixture_fetch_total",
		Help:      "Fixture document fetches by result.",
	}, []string{"result"})

	// DocumentCacheLoads counts cache loads by outcome (hit, miss, stale_fallback).
	DocumentCacheLoads = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "thanawyia",
		Name:      "document_cache_load_total",
		Help:      "Document cache loads by outcome.",
	}, []string{"outcome"})

	// DocumentWriteConflicts counts optimistic write retries on the persisted document.
	DocumentWriteConflicts = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "thanawyia",
		Name:      "document_write_conflicts_total",
		Help:      "Optimistic concurrency conflicts while writing the persisted document.",
	})

	HTTPRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "thanawyia",
		Name:      "http_requests_total",
		Help:      "HTTP requests by route, method and status.",
	}, []string{"route", "method", "status"})

	HTTPDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "thanawyia",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method"})
)

// MetricsRegistry holds every collector exposed on /metrics.
var MetricsRegistry = prometheus.NewRegistry()

func init() {
	MetricsRegistry.MustRegister(
		FixtureFetches,
		DocumentCacheLoads,
		DocumentWriteConflicts,
		HTTPRequests,
		HTTPDuration,
		collectors.NewGoCollector(),
	)
}
