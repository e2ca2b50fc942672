package middleware

import (
	"net/http"
	"strconv"
)

// StaffIDHeader заголовок идентификации сотрудника зала
const StaffIDHeader = "X-Staff-ID"

// Auth проверяет наличие валидного X-Staff-ID в запросе
// Сервис доверяет шлюзу: заголовок проставляется после аутентификации выше по стеку
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		staffIDStr := r.Header.Get(StaffIDHeader)
		if staffIDStr == "" {
			http.Error(w, "missing "+StaffIDHeader+" header", http.StatusUnauthorized)
			return
		}

		if staffID, err := strconv.ParseInt(staffIDStr, 10, 64); err != nil || staffID <= 0 {
			http.Error(w, "invalid "+StaffIDHeader+" header", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
