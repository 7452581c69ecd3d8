package observability

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	generations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lifegrid",
			Subsystem: "world",
			Name:      "generations_total",
			Help:      "Generations computed.",
		},
		[]string{"edge"},
	)
	stepDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "lifegrid",
			Subsystem: "world",
			Name:      "step_duration_seconds",
			Help:      "Wall time of a single generation step.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
		},
		[]string{"edge"},
	)
	aliveCells = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "lifegrid",
			Subsystem: "world",
			Name:      "alive_cells",
			Help:      "Live cells in the most recent generation.",
		},
	)
	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lifegrid",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)
	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "lifegrid",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
	storeOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lifegrid",
			Subsystem: "store",
			Name:      "operations_total",
			Help:      "Slot store operations by kind and outcome.",
		},
		[]string{"op", "success"},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(generations, stepDuration, aliveCells, httpRequests, httpDuration, storeOps)
	})
}

func RecordStep(edge string, duration time.Duration) {
	RegisterMetrics()
	generations.WithLabelValues(edge).Inc()
	stepDuration.WithLabelValues(edge).Observe(duration.Seconds())
}

func RecordAlive(n int) {
	RegisterMetrics()
	aliveCells.Set(float64(n))
}

func RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	RegisterMetrics()
	statusLabel := strconv.Itoa(status)
	httpRequests.WithLabelValues(method, path, statusLabel).Inc()
	httpDuration.WithLabelValues(method, path, statusLabel).Observe(duration.Seconds())
}

func RecordStoreOp(op string, success bool) {
	RegisterMetrics()
	storeOps.WithLabelValues(op, strconv.FormatBool(success)).Inc()
}
