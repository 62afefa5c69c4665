package observability

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "luxehaven", Name: "http_requests_total", Help: "HTTP requests."},
		[]string{"route", "method", "status"},
	)
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "luxehaven", Name: "http_request_duration_seconds",
			Help:    "HTTP request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
	ExternalRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "luxehaven", Name: "external_requests_total", Help: "Outbound requests."},
		[]string{"service", "endpoint", "status"},
	)
	ExternalLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "luxehaven", Name: "external_request_duration_seconds",
			Help:    "Outbound request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "endpoint"},
	)
	StoreEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "luxehaven", Name: "store_events_total", Help: "KV store hits/misses/sets/dels."},
		[]string{"backend", "event"}, // event: hit|miss|set|del
	)
	BookingsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "luxehaven", Name: "bookings_created_total", Help: "Bookings created."},
	)
	AuthEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "luxehaven", Name: "auth_events_total", Help: "Login/register outcomes."},
		[]string{"event"}, // login_ok|login_fail|register|logout
	)
	Notifications = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "luxehaven", Name: "notifications_total", Help: "Booking notifications sent."},
		[]string{"notifier", "result"},
	)
)

func InitRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(HTTPRequests, HTTPLatency, ExternalRequests, ExternalLatency,
		StoreEvents, BookingsCreated, AuthEvents, Notifications)
	return reg
}

func MetricsHandler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

func ObserveHTTP(route, method string, status int, dur time.Duration) {
	HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	HTTPLatency.WithLabelValues(route, method).Observe(dur.Seconds())
}

func ObserveExternal(service, endpoint string, status int, dur time.Duration) {
	ExternalRequests.WithLabelValues(service, endpoint, strconv.Itoa(status)).Inc()
	ExternalLatency.WithLabelValues(service, endpoint).Observe(dur.Seconds())
}

func ObserveStore(backend, event string) { // event: hit|miss|set|del
	StoreEvents.WithLabelValues(backend, event).Inc()
}

func ObserveBooking() { BookingsCreated.Inc() }

func ObserveAuth(event string) { AuthEvents.WithLabelValues(event).Inc() }

func ObserveNotification(notifier string, err error) {
	Notifications.WithLabelValues(notifier, LabelErr(err)).Inc()
}

func LabelErr(err error) string {
	if err == nil {
		return "none"
	}
	return fmt.Sprintf("%T", err)
}
