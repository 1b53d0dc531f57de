package update_booking_status

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BikeWerkstatt-BookingService/internal/service/bookings"
	"github.com/m04kA/BikeWerkstatt-BookingService/internal/service/bookings/models"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) UpdateStatus(ctx context.Context, id string, status string) (*models.BookingResponse, bool, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*models.BookingResponse), args.Bool(1), args.Error(2)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func perform(svc *MockService, id, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPatch, "/api/v1/admin/bookings/"+id+"/status", strings.NewReader(body))
	r = mux.SetURLVars(r, map[string]string{"bookingId": id})
	NewHandler(svc, nopLogger{}).Handle(w, r)
	return w
}

func TestHandler_Updated(t *testing.T) {
	svc := new(MockService)
	svc.On("UpdateStatus", mock.Anything, "bk_1", "confirmed").
		Return(&models.BookingResponse{ID: "bk_1", Status: "confirmed"}, true, nil)

	w := perform(svc, "bk_1", `{"status":"confirmed"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "confirmed", resp.Status)
}

func TestHandler_UnknownIDIsNoOp(t *testing.T) {
	svc := new(MockService)
	svc.On("UpdateStatus", mock.Anything, "bk_missing", "canceled").Return(nil, false, nil)

	w := perform(svc, "bk_missing", `{"status":"canceled"}`)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "invalid status", err: bookings.ErrInvalidStatus, want: http.StatusBadRequest},
		{name: "slot taken", err: bookings.ErrSlotNotAvailable, want: http.StatusConflict},
		{name: "storage", err: fmt.Errorf("%w: boom", bookings.ErrInternal), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			svc.On("UpdateStatus", mock.Anything, "bk_1", mock.Anything).Return(nil, true, tt.err)

			assert.Equal(t, tt.want, perform(svc, "bk_1", `{"status":"requested"}`).Code)
		})
	}
}

func TestHandler_BadBody(t *testing.T) {
	svc := new(MockService)

	assert.Equal(t, http.StatusBadRequest, perform(svc, "bk_1", `not json`).Code)
	svc.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}
