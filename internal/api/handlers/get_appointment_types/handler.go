package get_appointment_types

import (
	"net/http"

	"github.com/m04kA/BikeWerkstatt-BookingService/internal/api/handlers"
)

type Handler struct {
	service ShopInfoService
	logger  Logger
}

func NewHandler(service ShopInfoService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointment-types
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	resp := h.service.ListAppointmentTypes()
	if len(resp.AppointmentTypes) == 0 {
		h.logger.Warn("GET /appointment-types - Catalog is empty")
	}
	handlers.RespondJSON(w, http.StatusOK, resp)
}
