package middleware

import (
	"animalquiz/internal/service"
	"context"
	"net/http"
	"strings"
)

type contextKey string

const AttemptIDKey contextKey = "attemptId"

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	authSvc *service.AuthService
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(authSvc *service.AuthService) *AuthMiddleware {
	return &AuthMiddleware{authSvc: authSvc}
}

// RequireAttempt validates an attempt JWT from the Authorization header or
// the token query param
func (m *AuthMiddleware) RequireAttempt(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extractBearerToken(r)
		if token == "" {
			token = r.URL.Query().Get("token")
		}
		if token == "" {
			writeUnauthorized(w, "missing authorization")
			return
		}

		claims, err := m.authSvc.ValidateAttemptToken(token)
		if err != nil {
			writeUnauthorized(w, "invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), AttemptIDKey, claims.AttemptID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetAttemptID extracts the attempt ID from context
func GetAttemptID(ctx context.Context) string {
	if v, ok := ctx.Value(AttemptIDKey).(string); ok {
		return v
	}
	return ""
}

func writeUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"error":"` + message + `"}`))
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if auth == "" {
		return ""
	}
	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}
