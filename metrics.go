package main

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// routeRequestsTotal counts route requests by outcome ("ok" or an error kind)
	routeRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "corridor_route_requests_total",
		Help: "Total route requests by result",
	}, []string{"result"})

	// routeDuration tracks route computation time
	routeDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "corridor_route_duration_seconds",
		Help:    "Route computation duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.00001, 2, 14), // 10µs to ~80ms
	})
)

func observeRoute(started time.Time, err error) {
	routeDuration.Observe(time.Since(started).Seconds())
	result := "ok"
	if err != nil {
		result = ErrorKind(err)
	}
	routeRequestsTotal.WithLabelValues(result).Inc()
}
