package middleware

import (
	"context"
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/staffloop/hrm-backend-go/internal/handler/http/response"
)

type contextKey string

const (
	UserIDKey     contextKey = "user_id"
	EmployeeIDKey contextKey = "employee_id"
	RoleKey       contextKey = "role"
)

// AuthRequired rejects requests without a valid access token and copies the
// identity claims into the request context for handlers.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())
			if err != nil || token == nil {
				response.Unauthorized(w, "Missing or invalid access token")
				return
			}

			tokenType, ok := claims["type"].(string)
			if !ok || tokenType != "access" {
				response.Unauthorized(w, "Access token required")
				return
			}

			userID, ok := claims["user_id"].(string)
			if !ok || userID == "" {
				response.Unauthorized(w, "Malformed access token")
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			if role, ok := claims["role"].(string); ok {
				ctx = context.WithValue(ctx, RoleKey, role)
			}
			if employeeID, ok := claims["employee_id"].(string); ok && employeeID != "" {
				ctx = context.WithValue(ctx, EmployeeIDKey, employeeID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(hfn)
	}
}

// UserID returns the authenticated user's id from the request context.
func UserID(ctx context.Context) string {
	id, _ := ctx.Value(UserIDKey).(string)
	return id
}

// EmployeeID returns the authenticated user's linked employee id, empty when
// the account has no employee record.
func EmployeeID(ctx context.Context) string {
	id, _ := ctx.Value(EmployeeIDKey).(string)
	return id
}

// Role returns the authenticated user's role string.
func Role(ctx context.Context) string {
	role, _ := ctx.Value(RoleKey).(string)
	return role
}
