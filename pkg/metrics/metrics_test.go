package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	m := New("bikewerkstatt", prometheus.NewRegistry())

	m.BookingCreated("reparatur")
	m.BookingCreated("reparatur")
	m.BookingConflict()
	m.ValidationFailed("phone")
	m.ObserveHTTPRequest("GET", "/api/v1/available-slots", 200, 15*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.bookingsCreated.WithLabelValues("reparatur")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.bookingConflicts))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.validationFailures.WithLabelValues("phone")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("GET", "/api/v1/available-slots", "200")))
}
