package middleware

import (
	"context"
	"net/http"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// AuthRequired rejects requests whose verified token is missing, expired or
// not an access token.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())

			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.Unauthorized(w, "Invalid token")
				return
			}

			tokenType, ok := claims["type"].(string)
			if tokenType != "access" || !ok {
				response.Unauthorized(w, "Invalid token")
				return
			}

			if userID, ok := claims["user_id"].(string); !ok || userID == "" {
				response.Unauthorized(w, "Invalid token")
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}

// ClaimsFromContext returns the caller's user ID and role from the verified token
func ClaimsFromContext(ctx context.Context) (userID string, role user.Role, ok bool) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", false
	}

	userID, ok = claims["user_id"].(string)
	if !ok {
		return "", "", false
	}

	roleStr, _ := claims["role"].(string)
	role, ok = user.ParseRole(roleStr)
	if !ok {
		return "", "", false
	}

	return userID, role, true
}
