package delete_booking

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/BikeWerkstatt-BookingService/internal/api/handlers"
)

const msgInvalidBookingID = "Ungültige Buchungs-ID"

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/admin/bookings/{bookingId}
// Удаление отсутствующего бронирования - не ошибка
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]
	if bookingID == "" {
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	if _, err := h.service.Delete(r.Context(), bookingID); err != nil {
		h.logger.Error("DELETE /admin/bookings/{id} - Failed to delete booking: booking_id=%s, error=%v", bookingID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondNoContent(w)
}
