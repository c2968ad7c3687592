package monitoring

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/pocketbase/pocketbase/core"
	"github.com/pocketbase/pocketbase/tools/router"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP requests by route pattern and status",
		},
		[]string{"route", "method", "status"},
	)

	httpDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency by route pattern",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route"},
	)

	contactSubmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "contact_submissions_total",
			Help: "Contact form submissions by outcome",
		},
		[]string{"result"},
	)

	notifications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "contact_notifications_total",
			Help: "Contact notifications by notifier and outcome",
		},
		[]string{"notifier", "status"},
	)

	imageServes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "image_requests_total",
			Help: "Image endpoint requests by image type and outcome",
		},
		[]string{"type", "status"},
	)
)

// Contact submission outcomes.
const (
	ContactCreated = "created"
	ContactInvalid = "invalid"
	ContactFailed  = "failed"
)

type Monitor struct{}

func NewMonitor() *Monitor {
	return &Monitor{}
}

// Middleware records count and latency for every routed request.
func (m *Monitor) Middleware() func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		start := time.Now()
		err := e.Next()

		route := e.Request.Pattern
		if route == "" {
			route = "unmatched"
		}
		m.TrackRequest(route, e.Request.Method, responseStatus(e, err), time.Since(start))
		return err
	}
}

func responseStatus(e *core.RequestEvent, err error) int {
	if err != nil {
		var apiErr *router.ApiError
		if errors.As(err, &apiErr) {
			return apiErr.Status
		}
		return http.StatusInternalServerError
	}
	if status := e.Status(); status != 0 {
		return status
	}
	return http.StatusOK
}

// Track HTTP request
func (m *Monitor) TrackRequest(route, method string, status int, d time.Duration) {
	httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(route).Observe(d.Seconds())
}

// Track contact submission
func (m *Monitor) TrackContact(result string) {
	contactSubmissions.WithLabelValues(result).Inc()
}

// Track notifier outcome
func (m *Monitor) TrackNotification(notifier string, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	notifications.WithLabelValues(notifier, status).Inc()
}

// Track image request
func (m *Monitor) TrackImage(imageType string, status int) {
	imageServes.WithLabelValues(imageType, strconv.Itoa(status)).Inc()
}
