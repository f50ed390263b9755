package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "route", "code"},
	)
	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "code"},
	)

	bookingsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "bookings_created_total",
			Help: "Total number of bookings created.",
		},
	)
	bookingsCancelled = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "bookings_cancelled_total",
			Help: "Total number of bookings cancelled.",
		},
	)
	bookingsCompleted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "bookings_completed_total",
			Help: "Total number of bookings completed by the departure sweep.",
		},
	)
)

func init() {
	prometheus.MustRegister(
		httpRequests,
		httpDuration,
		bookingsCreated,
		bookingsCancelled,
		bookingsCompleted,
	)
}

func Handler() http.Handler {
	return promhttp.Handler()
}

func BookingCreated() {
	bookingsCreated.Inc()
}

func BookingCancelled() {
	bookingsCancelled.Inc()
}

func BookingsCompleted(n int) {
	bookingsCompleted.Add(float64(n))
}
