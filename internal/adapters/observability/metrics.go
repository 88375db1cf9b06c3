package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "hotels", Name: "http_requests_total", Help: "HTTP requests."},
		[]string{"route", "method", "status"},
	)
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "hotels", Name: "http_request_duration_seconds",
			Help:    "HTTP request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
	SupplierRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "hotels", Name: "supplier_requests_total", Help: "Supplier fetches."},
		[]string{"endpoint", "status"},
	)
	SupplierLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "hotels", Name: "supplier_request_duration_seconds",
			Help:    "Supplier fetch duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)
	SupplierRecords = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "hotels", Name: "supplier_records_total", Help: "Records parsed or dropped per supplier."},
		[]string{"supplier", "outcome"}, // outcome: parsed|dropped
	)
	MergedHotels = prometheus.NewGauge(
		prometheus.GaugeOpts{Namespace: "hotels", Name: "merged_hotels", Help: "Hotels in the current merged snapshot."},
	)
	CacheEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "hotels", Name: "cache_events_total", Help: "Cache hits/misses/sets/dels."},
		[]string{"cache", "event"}, // event: hit|miss|set|del
	)
)

func InitRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(HTTPRequests, HTTPLatency, SupplierRequests, SupplierLatency, SupplierRecords, MergedHotels, CacheEvents)
	return reg
}

func MetricsHandler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

func ObserveHTTP(route, method string, status int, dur time.Duration) {
	HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	HTTPLatency.WithLabelValues(route, method).Observe(dur.Seconds())
}

func ObserveSupplier(endpoint string, status int, dur time.Duration) {
	SupplierRequests.WithLabelValues(endpoint, strconv.Itoa(status)).Inc()
	SupplierLatency.WithLabelValues(endpoint).Observe(dur.Seconds())
}

func ObserveRecord(supplier, outcome string) { // outcome: parsed|dropped
	SupplierRecords.WithLabelValues(supplier, outcome).Inc()
}

func SetHotelCount(n int) { MergedHotels.Set(float64(n)) }

func ObserveCache(cache, event string) { // event: hit|miss|set|del
	CacheEvents.WithLabelValues(cache, event).Inc()
}
