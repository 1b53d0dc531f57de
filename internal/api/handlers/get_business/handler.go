package get_business

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

// Handle GET /api/v1/business
// Публичный endpoint - без авторизации
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, h.service.GetBusiness())
}
