package get_schedule

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BikeWerkstatt-BookingService/internal/domain"
	getSchedule "github.com/m04kA/BikeWerkstatt-BookingService/internal/usecase/get_schedule"
)

type MockUseCase struct {
	mock.Mock
}

func (m *MockUseCase) Execute(ctx context.Context, req *getSchedule.Request) (*getSchedule.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*getSchedule.Response), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func perform(uc *MockUseCase, query string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	NewHandler(uc, nopLogger{}).Handle(w, httptest.NewRequest(http.MethodGet, "/api/v1/schedule"+query, nil))
	return w
}

func TestHandler_ClosedDay(t *testing.T) {
	sunday := time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)

	uc := new(MockUseCase)
	uc.On("Execute", mock.Anything, &getSchedule.Request{Date: sunday}).
		Return(&getSchedule.Response{Date: sunday, OpeningHours: domain.OpeningHours{Closed: true}}, nil)

	w := perform(uc, "?date=2026-03-08")
	require.Equal(t, http.StatusOK, w.Code)

	var resp ScheduleResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "2026-03-08", resp.Date)
	assert.True(t, resp.Closed)
	assert.False(t, resp.IsBusinessDay)
	assert.Empty(t, resp.Open)
}

func TestHandler_BadDate(t *testing.T) {
	for _, query := range []string{"", "?date=08.03.2026"} {
		uc := new(MockUseCase)
		w := perform(uc, query)

		assert.Equal(t, http.StatusBadRequest, w.Code, query)
		uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
	}
}
