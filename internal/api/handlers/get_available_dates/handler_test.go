package get_available_dates

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BikeWerkstatt-BookingService/internal/domain"
	getAvailableDates "github.com/m04kA/BikeWerkstatt-BookingService/internal/usecase/get_available_dates"
)

type MockUseCase struct {
	mock.Mock
}

func (m *MockUseCase) Execute(ctx context.Context, req *getAvailableDates.Request) (*getAvailableDates.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*getAvailableDates.Response), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func perform(uc *MockUseCase, query string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	NewHandler(uc, nopLogger{}).Handle(w, httptest.NewRequest(http.MethodGet, "/api/v1/available-dates"+query, nil))
	return w
}

func TestHandler_WithType(t *testing.T) {
	count := 12
	uc := new(MockUseCase)
	uc.On("Execute", mock.Anything, &getAvailableDates.Request{AppointmentTypeID: "reparatur"}).
		Return(&getAvailableDates.Response{Dates: []getAvailableDates.Date{{
			Date:           time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC),
			OpeningHours:   domain.OpeningHours{Open: "10:00", Close: "18:00"},
			AvailableSlots: &count,
		}}}, nil)

	w := perform(uc, "?typeId=reparatur")
	require.Equal(t, http.StatusOK, w.Code)

	var resp AvailableDatesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Dates, 1)
	assert.Equal(t, "2026-03-03", resp.Dates[0].Date)
	require.NotNil(t, resp.Dates[0].AvailableSlots)
	assert.Equal(t, 12, *resp.Dates[0].AvailableSlots)
}

func TestHandler_WithoutTypeOmitsCount(t *testing.T) {
	uc := new(MockUseCase)
	uc.On("Execute", mock.Anything, &getAvailableDates.Request{}).
		Return(&getAvailableDates.Response{Dates: []getAvailableDates.Date{{
			Date:         time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC),
			OpeningHours: domain.OpeningHours{Open: "10:00", Close: "18:00"},
		}}}, nil)

	w := perform(uc, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "availableSlots")
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "unknown type", err: getAvailableDates.ErrAppointmentTypeNotFound, want: http.StatusNotFound},
		{name: "storage", err: fmt.Errorf("%w: boom", getAvailableDates.ErrInternal), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := new(MockUseCase)
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)

			assert.Equal(t, tt.want, perform(uc, "?typeId=x").Code)
		})
	}
}
