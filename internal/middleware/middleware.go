package middleware

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"munsemsem/internal/token"
)

type contextKey string

// ClaimsKey is where the auth gate stores the verified identity.
const ClaimsKey contextKey = "authorClaims"

type Middleware func(http.Handler) http.Handler

// writeError emits the platform-wide {errors:[{msg}]} shape.
func writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string][]map[string]string{
		"errors": {{"msg": message}},
	})
}

// AuthGate verifies the x-auth-token header and attaches the decoded
// claims to the request context. The wrapped handler never runs
// without a verified identity.
func AuthGate(codec *token.Codec) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString := r.Header.Get("x-auth-token")
			if tokenString == "" {
				writeError(w, "No token found", http.StatusBadRequest)
				return
			}

			claims, err := codec.Verify(tokenString)
			if err != nil {
				// expired vs tampered is logged here only; the
				// response is identical for both
				log.Printf("rejected token: %v", err)
				writeError(w, "Invalid/Expired Token", http.StatusBadRequest)
				return
			}

			ctx := context.WithValue(r.Context(), ClaimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFromContext returns the identity attached by AuthGate.
func ClaimsFromContext(ctx context.Context) (*token.Claims, bool) {
	claims, ok := ctx.Value(ClaimsKey).(*token.Claims)
	return claims, ok
}

func CORSMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, x-auth-token")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("%s %s %s", r.Method, r.RequestURI, r.RemoteAddr)
		next.ServeHTTP(w, r)
	})
}

func Chain(h http.Handler, middlewares ...Middleware) http.Handler {
	for _, m := range middlewares {
		h = m(h)
	}
	return h
}
