// Package metrics exposes the marketplace Prometheus collectors.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"marketplace/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "marketplace"

// Metrics records business counters and HTTP latency.
type Metrics struct {
	gatherer prometheus.Gatherer

	ordersCreated        prometheus.Counter
	orderTransitions     *prometheus.CounterVec
	paymentNotifications *prometheus.CounterVec
	nearbyLookups        *prometheus.CounterVec
	httpDuration         *prometheus.HistogramVec
}

var _ service.MetricsRecorder = (*Metrics)(nil)

// NewRegistry returns a registry carrying the Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return reg
}

// New registers the marketplace collectors on reg.
func New(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		gatherer: reg,
		ordersCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_created_total",
			Help:      "Total number of orders created.",
		}),
		orderTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "order_transitions_total",
			Help:      "Order status and payment status transitions.",
		}, []string{"axis", "to"}),
		paymentNotifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payment_notifications_total",
			Help:      "Payment gateway notifications by outcome.",
		}, []string{"result"}),
		nearbyLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "nearby_lookups_total",
			Help:      "Nearby seller lookups by outcome.",
		}, []string{"result"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
	reg.MustRegister(m.ordersCreated, m.orderTransitions, m.paymentNotifications, m.nearbyLookups, m.httpDuration)

	return m
}

// OrderCreated increments the created orders counter.
func (m *Metrics) OrderCreated() {
	if m == nil {
		return
	}
	m.ordersCreated.Inc()
}

// OrderTransition counts a move on the status or payment axis.
func (m *Metrics) OrderTransition(axis, to string) {
	if m == nil {
		return
	}
	m.orderTransitions.WithLabelValues(normalizeLabel(axis), normalizeLabel(to)).Inc()
}

// PaymentNotification counts a gateway callback by result.
func (m *Metrics) PaymentNotification(result string) {
	if m == nil {
		return
	}
	m.paymentNotifications.WithLabelValues(normalizeLabel(result)).Inc()
}

// NearbyLookup counts a nearby seller search by result.
func (m *Metrics) NearbyLookup(result string) {
	if m == nil {
		return
	}
	m.nearbyLookups.WithLabelValues(normalizeLabel(result)).Inc()
}

// ObserveHTTP records the latency of a finished request. route is the router pattern, not the raw path.
func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpDuration.WithLabelValues(method, normalizeLabel(route), strconv.Itoa(status)).Observe(elapsed.Seconds())
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}

	return v
}
