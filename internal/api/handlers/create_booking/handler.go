package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/BikeWerkstatt-BookingService/internal/api/handlers"
	"github.com/m04kA/BikeWerkstatt-BookingService/internal/domain"
	createBooking "github.com/m04kA/BikeWerkstatt-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody      = "Ungültige Anfrage"
	msgValidationFailed        = "Bitte prüfen Sie Ihre Eingaben."
	msgSlotNotAvailable        = "Dieser Termin ist leider nicht mehr verfügbar. Bitte wählen Sie einen anderen Zeitpunkt."
	msgAppointmentTypeNotFound = "Terminart nicht gefunden"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		var validationErrs domain.ValidationErrors

		switch {
		case errors.As(err, &validationErrs):
			h.logger.Warn("POST /bookings - Validation failed: type=%s, date=%s, time=%s, fields=%d",
				req.AppointmentTypeID, req.Date, req.Time, len(validationErrs))
			handlers.RespondValidationErrors(w, msgValidationFailed, validationErrs)

		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: date=%s, time=%s", req.Date, req.Time)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrAppointmentTypeNotFound):
			h.logger.Warn("POST /bookings - Appointment type not found: type=%s", req.AppointmentTypeID)
			handlers.RespondNotFound(w, msgAppointmentTypeNotFound)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: date=%s, time=%s, error=%v",
				req.Date, req.Time, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
