package router

import (
	"log/slog"
	"net/http"

	"github.com/casbin/casbin/v3"

	"github.com/danishfaisall/gokart/internal/pkg/jwt"
)

// Authorize enforces a casbin policy check for the authenticated subject.
// It must run after the authentication middleware.
func Authorize(enforcer *casbin.Enforcer, obj, act string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := jwt.GetAuth(r.Context())
			if claims == nil {
				writeJSON(w, errorResponse{Message: "Authentication required"}, http.StatusUnauthorized)
				return
			}

			ok, err := enforcer.Enforce(claims.Role, obj, act)
			if err != nil {
				slog.ErrorContext(r.Context(), "authorization check failed", "error", err, "obj", obj, "act", act)
				writeJSON(w, errorResponse{Message: "Internal server error"}, http.StatusInternalServerError)
				return
			}
			if !ok {
				writeJSON(w, errorResponse{Message: "You are not allowed to perform this action"}, http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
