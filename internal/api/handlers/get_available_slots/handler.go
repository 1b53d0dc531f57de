package get_available_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/BikeWerkstatt-BookingService/internal/api/handlers"
	"github.com/m04kA/BikeWerkstatt-BookingService/internal/domain"
	getAvailableSlots "github.com/m04kA/BikeWerkstatt-BookingService/internal/usecase/get_available_slots"
)

const (
	msgMissingTypeID           = "Terminart ist erforderlich"
	msgMissingDate             = "Datum ist erforderlich"
	msgInvalidDate             = "Ungültiges Datum, erwartet wird YYYY-MM-DD"
	msgDateInPast              = "Das Datum liegt in der Vergangenheit"
	msgDateTooFar              = "Das Datum liegt zu weit in der Zukunft"
	msgAppointmentTypeNotFound = "Terminart nicht gefunden"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/available-slots
// Query params: typeId (required), date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	typeID := r.URL.Query().Get("typeId")
	if typeID == "" {
		h.logger.Warn("GET /available-slots - Missing type ID")
		handlers.RespondBadRequest(w, msgMissingTypeID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		AppointmentTypeID: typeID,
		Date:              date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrAppointmentTypeNotFound):
			h.logger.Warn("GET /available-slots - Appointment type not found: type=%s", typeID)
			handlers.RespondNotFound(w, msgAppointmentTypeNotFound)

		case errors.Is(err, getAvailableSlots.ErrDateInPast):
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, getAvailableSlots.ErrDateTooFarInFuture):
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgMissingTypeID)

		default:
			h.logger.Error("GET /available-slots - Failed to get slots: type=%s, date=%s, error=%v", typeID, dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
