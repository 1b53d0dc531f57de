package middleware

import (
	"net/http"

	"github.com/m04kA/BikeWerkstatt-BookingService/internal/api/handlers"
)

// AdminPINHeader заголовок, в котором клиент админки передает PIN
const AdminPINHeader = "X-Admin-PIN"

// PINVerifier проверяет PIN администратора
type PINVerifier interface {
	Verify(candidate string) bool
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// AdminAuth пропускает запрос дальше только с корректным PIN в заголовке X-Admin-PIN
func AdminAuth(verifier PINVerifier, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !verifier.Verify(r.Header.Get(AdminPINHeader)) {
				logger.Warn("AdminAuth: rejected %s %s from %s", r.Method, r.URL.Path, r.RemoteAddr)
				handlers.RespondUnauthorized(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
