// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package metrics holds the Prometheus collectors exposed on /metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Upstream names used as the "upstream" label.
const (
	UpstreamImageGen = "imagegen"
	UpstreamBanner   = "banner"
	UpstreamStorage  = "storage"
)

var (
	// HTTPRequestDuration tracks API latency per route pattern.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "marketops_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	// UpstreamDuration tracks calls to third-party generation APIs and storage.
	UpstreamDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "marketops_upstream_duration_seconds",
			Help: "Duration of upstream calls in seconds",
			Buckets: []float64{
				0.05, // 50ms
				0.1,  // 100ms
				0.25, // 250ms
				0.5,  // 500ms
				1.0,  // 1s
				2.5,  // 2.5s
				5.0,  // 5s
				10.0, // 10s
				30.0, // 30s
				60.0, // 1m
				120,  // 2m
			},
		},
		[]string{"upstream", "status"}, // success or failure
	)

	// RateLimited counts requests rejected by the rate limiter.
	RateLimited = promauto.NewCounter(prometheus.CounterOpts{
		Name: "marketops_rate_limited_total",
		Help: "Requests rejected by the per-client rate limiter",
	})
)

// RecordHTTPRequest records one served request. route is the chi route
// pattern so path parameters do not explode label cardinality.
func RecordHTTPRequest(method, route string, status int, d time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	HTTPRequestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(d.Seconds())
}

// RecordUpstream records the duration of an upstream call started at start.
func RecordUpstream(upstream string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "failure"
	}
	UpstreamDuration.WithLabelValues(upstream, status).Observe(time.Since(start).Seconds())
}
