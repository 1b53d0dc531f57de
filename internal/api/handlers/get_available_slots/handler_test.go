package get_available_slots

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BikeWerkstatt-BookingService/internal/domain"
	getAvailableSlots "github.com/m04kA/BikeWerkstatt-BookingService/internal/usecase/get_available_slots"
)

type MockUseCase struct {
	mock.Mock
}

func (m *MockUseCase) Execute(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*getAvailableSlots.Response), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func perform(uc *MockUseCase, query string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/v1/available-slots"+query, nil)
	NewHandler(uc, nopLogger{}).Handle(w, r)
	return w
}

func TestHandler_OK(t *testing.T) {
	tuesday := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)
	next := domain.TimeSlot{Time: "10:45", Available: true}

	uc := new(MockUseCase)
	uc.On("Execute", mock.Anything, &getAvailableSlots.Request{AppointmentTypeID: "reparatur", Date: tuesday}).
		Return(&getAvailableSlots.Response{
			Date:            tuesday,
			AppointmentType: domain.AppointmentType{ID: "reparatur"},
			OpeningHours:    domain.OpeningHours{Open: "10:00", Close: "18:00"},
			Slots: []domain.TimeSlot{
				{Time: "10:30", Available: false, Reason: domain.SlotReasonConflict},
				next,
			},
			Groups:         []domain.SlotGroup{{Label: domain.PeriodMorning, Slots: []domain.TimeSlot{next}}},
			AvailableCount: 1,
			NextAvailable:  &next,
		}, nil)

	w := perform(uc, "?typeId=reparatur&date=2026-03-03")
	require.Equal(t, http.StatusOK, w.Code)

	var resp AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "2026-03-03", resp.Date)
	require.Len(t, resp.Slots, 2)
	assert.Equal(t, "conflict", resp.Slots[0].Reason)
	require.NotNil(t, resp.NextAvailable)
	assert.Equal(t, "10:45", *resp.NextAvailable)
	assert.Equal(t, "Vormittag", resp.Groups[0].Label)
}

func TestHandler_BadQuery(t *testing.T) {
	for _, query := range []string{"", "?typeId=reparatur", "?date=2026-03-03", "?typeId=reparatur&date=03.03.2026"} {
		uc := new(MockUseCase)
		w := perform(uc, query)
		assert.Equal(t, http.StatusBadRequest, w.Code, query)
		uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
	}
}

func TestHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
	}{
		{err: getAvailableSlots.ErrAppointmentTypeNotFound, wantStatus: http.StatusNotFound},
		{err: getAvailableSlots.ErrDateInPast, wantStatus: http.StatusBadRequest},
		{err: getAvailableSlots.ErrDateTooFarInFuture, wantStatus: http.StatusBadRequest},
		{err: errors.Join(getAvailableSlots.ErrInternal, errors.New("boom")), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		uc := new(MockUseCase)
		uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)
		w := perform(uc, "?typeId=reparatur&date=2026-03-03")
		assert.Equal(t, tt.wantStatus, w.Code, tt.err.Error())
	}
}
