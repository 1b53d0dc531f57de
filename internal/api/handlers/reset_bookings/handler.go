package reset_bookings

import (
	"net/http"

	"github.com/m04kA/BikeWerkstatt-BookingService/internal/api/handlers"
)

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

// Handle DELETE /api/v1/admin/bookings
// Удаляет все бронирования (сброс демо-данных)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Reset(r.Context()); err != nil {
		h.logger.Error("DELETE /admin/bookings - Failed to reset bookings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Warn("DELETE /admin/bookings - All bookings deleted by %s", r.RemoteAddr)
	handlers.RespondNoContent(w)
}
