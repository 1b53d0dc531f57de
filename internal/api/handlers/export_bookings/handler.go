package export_bookings

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

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

// Handle GET /api/v1/admin/bookings/export
// Query params: status (опционально), тот же фильтр, что и у списка
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListRequest{}
	if status := r.URL.Query().Get("status"); status != "" {
		req.Status = &status
	}

	file, err := h.service.Export(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidStatus):
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /admin/bookings/export - Failed to export bookings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	w.Header().Set("Content-Type", file.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.FileName))
	w.Header().Set("Content-Length", strconv.Itoa(len(file.Content)))
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(file.Content); err != nil {
		h.logger.Warn("GET /admin/bookings/export - Failed to write response: %v", err)
	}
}
