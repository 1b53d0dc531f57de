package admin_login

import (
	"net/http"

	"github.com/m04kA/BikeWerkstatt-BookingService/internal/api/handlers"
)

const msgInvalidRequestBody = "Ungültige Anfrage"

type Handler struct {
	verifier PINVerifier
	logger   Logger
}

func NewHandler(verifier PINVerifier, logger Logger) *Handler {
	return &Handler{
		verifier: verifier,
		logger:   logger,
	}
}

// Handle POST /api/v1/admin/login
// Проверяет PIN; клиент затем передает его в заголовке X-Admin-PIN
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if !h.verifier.Verify(req.PIN) {
		h.logger.Warn("POST /admin/login - Wrong PIN from %s", r.RemoteAddr)
		handlers.RespondUnauthorized(w)
		return
	}

	h.logger.Info("POST /admin/login - Admin logged in from %s", r.RemoteAddr)
	handlers.RespondNoContent(w)
}
