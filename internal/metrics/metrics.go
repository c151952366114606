// Package metrics exposes the Prometheus collectors of the synchronization
// engine and the control API.
//
// Collectors are package-level and registered once with the default
// registry; every recorder registers lazily so tests and binaries can call
// them without setup.
package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Drop reasons recorded by MessageDropped.
const (
	ReasonMalformed    = "malformed"
	ReasonUnknownTopic = "unknown_topic"
	ReasonUnknownKind  = "unknown_kind"
	ReasonEcho         = "echo"
	ReasonStale        = "stale"
	ReasonNoSession    = "no_session"
)

var (
	registerOnce sync.Once

	messagesPublished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "worldsync",
			Subsystem: "messages",
			Name:      "published_total",
			Help:      "Messages handed to the transport, by family.",
		},
		[]string{"family"},
	)
	messagesReceived = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "worldsync",
			Subsystem: "messages",
			Name:      "received_total",
			Help:      "Messages delivered by the transport and decoded, by family.",
		},
		[]string{"family"},
	)
	messagesDropped = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "worldsync",
			Subsystem: "messages",
			Name:      "dropped_total",
			Help:      "Inbound messages dropped without being applied, by reason.",
		},
		[]string{"reason"},
	)
	entities = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "worldsync",
			Name:      "entities",
			Help:      "Entities in the registry of each synchronizer.",
		},
		[]string{"service"},
	)
	synchronizers = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "worldsync",
			Name:      "synchronizers",
			Help:      "Synchronizers owned by the manager.",
		},
	)
	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "worldsync",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Control API requests.",
		},
		[]string{"method", "route", "status"},
	)
	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "worldsync",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Control API request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
)

// Register registers every collector with the default registry. It is
// safe to call more than once.
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			messagesPublished,
			messagesReceived,
			messagesDropped,
			entities,
			synchronizers,
			httpRequests,
			httpDuration,
		)
	})
}

// Handler serves the default registry in the Prometheus text format.
func Handler() http.Handler {
	Register()
	return promhttp.Handler()
}

func MessagePublished(family string) {
	Register()
	messagesPublished.WithLabelValues(family).Inc()
}

func MessageReceived(family string) {
	Register()
	messagesReceived.WithLabelValues(family).Inc()
}

func MessageDropped(reason string) {
	Register()
	messagesDropped.WithLabelValues(reason).Inc()
}

// SetEntities records the registry size of the synchronizer at service.
func SetEntities(service string, n int) {
	Register()
	entities.WithLabelValues(service).Set(float64(n))
}

// ForgetService removes the per-service series of a removed synchronizer.
func ForgetService(service string) {
	Register()
	entities.DeleteLabelValues(service)
}

func SetSynchronizers(n int) {
	Register()
	synchronizers.Set(float64(n))
}

// RecordHTTPRequest records one control API request. route is the chi
// route pattern, not the raw path, to keep cardinality bounded.
func RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	Register()
	statusLabel := strconv.Itoa(status)
	httpRequests.WithLabelValues(method, route, statusLabel).Inc()
	httpDuration.WithLabelValues(method, route, statusLabel).Observe(duration.Seconds())
}
