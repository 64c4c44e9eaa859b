package middlewares

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
)

type contextKey string

const callerIDKey contextKey = "callerID"

// SessionResolver turns a bearer token into a user id.
type SessionResolver interface {
	Session(ctx context.Context, token string) (string, error)
}

// Auth resolves the Authorization header into the caller id and stores
// it in the request context. Requests without a valid session get 401.
func Auth(resolver SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				unauthorized(w)
				return
			}
			callerID, err := resolver.Session(r.Context(), token)
			if err != nil {
				unauthorized(w)
				return
			}
			ctx := context.WithValue(r.Context(), callerIDKey, callerID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetCallerID extracts the authenticated user id from the context.
func GetCallerID(ctx context.Context) string {
	callerID, ok := ctx.Value(callerIDKey).(string)
	if !ok {
		return ""
	}
	return callerID
}

// BearerToken returns the raw token from the Authorization header, or
// an empty string.
func BearerToken(r *http.Request) string {
	return bearerToken(r)
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": "unauthenticated"})
}
