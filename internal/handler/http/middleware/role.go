package middleware

import (
	"net/http"

	"github.com/staffloop/hrm-backend-go/internal/domain/user"
	"github.com/staffloop/hrm-backend-go/internal/handler/http/response"
)

// RequireAdmin requires the Admin role.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if user.Role(Role(r.Context())) != user.RoleAdmin {
			response.HandleError(w, user.ErrAdminAccessRequired)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireHR requires the HR or Admin role.
func RequireHR(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !user.Role(Role(r.Context())).CanReview() {
			response.HandleError(w, user.ErrHRAccessRequired)
			return
		}
		next.ServeHTTP(w, r)
	})
}
