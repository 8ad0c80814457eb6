package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricPrefix = "lng_loading_"

	resultSuccess = "success"
	resultError   = "error"
)

var (
	registerOnce sync.Once

	httpRequests *prometheus.CounterVec
	httpLatency  *prometheus.HistogramVec

	reservationsCreated *prometheus.CounterVec
	reservationStatus   *prometheus.CounterVec
	slotsCreated        *prometheus.CounterVec
)

// Init registers service metrics. Safe to call more than once.
func Init() {
	registerOnce.Do(func() {
		httpRequests = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "http_requests_total",
				Help: "Total HTTP requests by method, route and status",
			},
			[]string{"method", "route", "status"},
		)
		httpLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		)

		reservationsCreated = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "reservations_created_total",
				Help: "Total reservation create attempts by result",
			},
			[]string{"result"},
		)
		reservationStatus = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "reservation_status_transitions_total",
				Help: "Total reservation status transitions by target status",
			},
			[]string{"status"},
		)
		slotsCreated = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "slots_created_total",
				Help: "Total loading slot create attempts by result",
			},
			[]string{"result"},
		)

		prometheus.MustRegister(
			httpRequests,
			httpLatency,
			reservationsCreated,
			reservationStatus,
			slotsCreated,
		)
	})
}

// Middleware records request counts and latency per route template.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())

		if httpRequests != nil {
			httpRequests.WithLabelValues(c.Request.Method, route, status).Inc()
		}
		if httpLatency != nil {
			httpLatency.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
		}
	}
}

// IncReservationCreated increments the reservation create counter.
func IncReservationCreated(result string) {
	if result == "" {
		result = resultSuccess
	}
	if reservationsCreated != nil {
		reservationsCreated.WithLabelValues(result).Inc()
	}
}

// IncReservationTransition counts a reservation reaching a status.
func IncReservationTransition(status string) {
	if status == "" {
		status = "unknown"
	}
	if reservationStatus != nil {
		reservationStatus.WithLabelValues(status).Inc()
	}
}

// IncSlotCreated increments the slot create counter.
func IncSlotCreated(result string) {
	if result == "" {
		result = resultSuccess
	}
	if slotsCreated != nil {
		slotsCreated.WithLabelValues(result).Inc()
	}
}

// Exported constants for callers.
const (
	ResultSuccess = resultSuccess
	ResultError   = resultError
)
