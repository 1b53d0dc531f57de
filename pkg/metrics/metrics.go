package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор prometheus метрик сервиса
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	bookingsCreated     *prometheus.CounterVec
	bookingConflicts    prometheus.Counter
	validationFailures  *prometheus.CounterVec
	statusChanges       *prometheus.CounterVec
}

// New создает и регистрирует метрики в указанном registerer
func New(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),
		bookingsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "bookings_created_total",
			Help:        "Bookings created via the booking wizard",
			ConstLabels: constLabels,
		}, []string{"appointment_type"}),
		bookingConflicts: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "booking_commit_conflicts_total",
			Help:        "Bookings rejected at commit because the slot was taken meanwhile",
			ConstLabels: constLabels,
		}),
		validationFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_validation_failures_total",
			Help:        "Validation errors per field",
			ConstLabels: constLabels,
		}, []string{"field"}),
		statusChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_status_changes_total",
			Help:        "Booking status changes made by the admin",
			ConstLabels: constLabels,
		}, []string{"status"}),
	}

	reg.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.bookingsCreated,
		m.bookingConflicts,
		m.validationFailures,
		m.statusChanges,
	)

	return m
}

// ObserveHTTPRequest фиксирует HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// BookingCreated фиксирует созданное бронирование
func (m *Metrics) BookingCreated(appointmentTypeID string) {
	m.bookingsCreated.WithLabelValues(appointmentTypeID).Inc()
}

// BookingConflict фиксирует отказ из-за занятого слота
func (m *Metrics) BookingConflict() {
	m.bookingConflicts.Inc()
}

// ValidationFailed фиксирует ошибку валидации поля
func (m *Metrics) ValidationFailed(field string) {
	m.validationFailures.WithLabelValues(field).Inc()
}

// StatusChanged фиксирует смену статуса бронирования
func (m *Metrics) StatusChanged(status string) {
	m.statusChanges.WithLabelValues(status).Inc()
}
