package get_available_dates

import (
	"errors"
	"net/http"

	"github.com/m04kA/BikeWerkstatt-BookingService/internal/api/handlers"
	getAvailableDates "github.com/m04kA/BikeWerkstatt-BookingService/internal/usecase/get_available_dates"
)

const msgAppointmentTypeNotFound = "Terminart nicht gefunden"

type Handler struct {
	useCase GetAvailableDatesUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableDatesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/available-dates
// Query params: typeId (опционально, добавляет число свободных слотов на день)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	typeID := r.URL.Query().Get("typeId")

	result, err := h.useCase.Execute(r.Context(), &getAvailableDates.Request{AppointmentTypeID: typeID})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableDates.ErrAppointmentTypeNotFound):
			h.logger.Warn("GET /available-dates - Appointment type not found: type=%s", typeID)
			handlers.RespondNotFound(w, msgAppointmentTypeNotFound)

		default:
			h.logger.Error("GET /available-dates - Failed to get dates: type=%s, error=%v", typeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
