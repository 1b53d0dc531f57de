package get_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/BikeWerkstatt-BookingService/internal/api/handlers"
	"github.com/m04kA/BikeWerkstatt-BookingService/internal/service/bookings"
	"github.com/m04kA/BikeWerkstatt-BookingService/internal/service/bookings/models"
)

const msgInvalidStatus = "Ungültiger Status"

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

// Handle GET /api/v1/admin/bookings
// Query params: status (опционально: requested, confirmed, canceled)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListRequest{}
	if status := r.URL.Query().Get("status"); status != "" {
		req.Status = &status
	}

	resp, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidStatus):
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /admin/bookings - Failed to list bookings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
