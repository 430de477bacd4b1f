package transport

import (
	"context"
	stderrors "errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	adminapp "github.com/muhammadheryan/esports-tournament/application/admin"
	"github.com/muhammadheryan/esports-tournament/constant"
	"github.com/muhammadheryan/esports-tournament/utils/errors"
)

// AdminMiddleware returns a middleware that only lets through requests
// carrying a bearer token with the admin role.
func AdminMiddleware(adminApp adminapp.AdminApp) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}
			token := strings.TrimPrefix(auth, "Bearer ")

			subject, err := adminApp.ValidateToken(r.Context(), token)
			if stderrors.Is(err, adminapp.ErrForbiddenRole) {
				writeError(w, errors.SetCustomError(constant.ErrForbidden))
				return
			}
			if err != nil {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			ctx := context.WithValue(r.Context(), constant.AdminSubjectKey, subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
