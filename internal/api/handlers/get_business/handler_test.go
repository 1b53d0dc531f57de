package get_business

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BikeWerkstatt-BookingService/internal/service/shopinfo/models"
)

type stubService struct{}

func (stubService) GetBusiness() *models.BusinessResponse {
	return &models.BusinessResponse{
		Name: "BikeWerkstatt Demo",
		OpeningHours: []models.DayHoursResponse{
			{Weekday: 0, Day: "Sonntag", Closed: true},
		},
	}
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandler_Handle(t *testing.T) {
	w := httptest.NewRecorder()
	NewHandler(stubService{}, nopLogger{}).Handle(w, httptest.NewRequest(http.MethodGet, "/api/v1/business", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"BikeWerkstatt Demo"`)
	assert.Contains(t, w.Body.String(), `"day":"Sonntag"`)
	assert.Contains(t, w.Body.String(), `"closed":true`)
}
