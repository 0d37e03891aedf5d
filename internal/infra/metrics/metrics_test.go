package metrics

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestMetricsExportsCountersAndHistogram(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.OrderCreated()
	m.OrderCreated()
	m.OrderTransition("status", "delivered")
	m.PaymentNotification("completed")
	m.NearbyLookup("no_polygon")
	m.NearbyLookup("")
	m.ObserveHTTP(http.MethodGet, "/api/v1/order/:id", http.StatusOK, 120*time.Millisecond)

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}

	if got := fetchPlainCounter(t, mfs, "marketplace_orders_created_total"); got != 2 {
		t.Fatalf("expected orders_created=2, got %f", got)
	}
	if got, err := fetchCounterValue(mfs, "marketplace_order_transitions_total", "to", "delivered"); err != nil || got != 1 {
		t.Fatalf("order_transitions: %f, %v", got, err)
	}
	if got, err := fetchCounterValue(mfs, "marketplace_payment_notifications_total", "result", "completed"); err != nil || got != 1 {
		t.Fatalf("payment_notifications: %f, %v", got, err)
	}
	if got, err := fetchCounterValue(mfs, "marketplace_nearby_lookups_total", "result", "unknown"); err != nil || got != 1 {
		t.Fatalf("nearby_lookups unknown: %f, %v", got, err)
	}
	if got, err := fetchHistogramSum(mfs, "marketplace_http_request_duration_seconds", "route", "/api/v1/order/:id"); err != nil || got <= 0 {
		t.Fatalf("http duration: %f, %v", got, err)
	}
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	m.OrderCreated()
	m.OrderTransition("payment", "completed")
	m.PaymentNotification("ignored")
	m.NearbyLookup("matched")
	m.ObserveHTTP(http.MethodGet, "/", http.StatusOK, time.Millisecond)
}

func TestHandlerServesTextFormat(t *testing.T) {
	m := New(NewRegistry())
	m.OrderCreated()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "marketplace_orders_created_total 1") {
		t.Fatalf("missing counter in body:\n%s", body)
	}
	if !strings.Contains(body, "go_goroutines") {
		t.Fatalf("missing runtime collector in body")
	}
}

func fetchPlainCounter(t *testing.T, mfs []*dto.MetricFamily, name string) float64 {
	t.Helper()

	mf := findMetricFamily(mfs, name)
	if mf == nil || len(mf.GetMetric()) == 0 {
		t.Fatalf("metric %q not found", name)
	}

	return mf.GetMetric()[0].GetCounter().GetValue()
}

func fetchCounterValue(mfs []*dto.MetricFamily, name, label, value string) (float64, error) {
	mf := findMetricFamily(mfs, name)
	if mf == nil {
		return 0, fmt.Errorf("metric %q not found", name)
	}
	for _, metric := range mf.GetMetric() {
		if matchesLabel(metric.GetLabel(), label, value) {
			return metric.GetCounter().GetValue(), nil
		}
	}

	return 0, fmt.Errorf("metric %q missing label %s=%s", name, label, value)
}

func fetchHistogramSum(mfs []*dto.MetricFamily, name, label, value string) (float64, error) {
	mf := findMetricFamily(mfs, name)
	if mf == nil {
		return 0, fmt.Errorf("metric %q not found", name)
	}
	for _, metric := range mf.GetMetric() {
		if matchesLabel(metric.GetLabel(), label, value) {
			return metric.GetHistogram().GetSampleSum(), nil
		}
	}

	return 0, fmt.Errorf("histogram %q missing label %s=%s", name, label, value)
}

func findMetricFamily(mfs []*dto.MetricFamily, name string) *dto.MetricFamily {
	for _, mf := range mfs {
		if mf.GetName() == name {
			return mf
		}
	}

	return nil
}

func matchesLabel(labels []*dto.LabelPair, name, value string) bool {
	for _, label := range labels {
		if label.GetName() == name && label.GetValue() == value {
			return true
		}
	}

	return false
}
