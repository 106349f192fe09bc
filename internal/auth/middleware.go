package auth

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/MrJamesThe3rd/ecocycle/internal/account"
	"github.com/MrJamesThe3rd/ecocycle/internal/http/render"
)

type verifier interface {
	Verify(token string) (account.Identity, error)
}

// Required rejects requests without a valid bearer token with 401
// {"error":"Unauthorized"} and stores the caller's identity otherwise.
func Required(v verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, err := v.Verify(bearerToken(r))
			if err != nil {
				slog.Debug("rejected request", "path", r.URL.Path, "error", err)
				render.Unauthorized(w)

				return
			}

			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), id)))
		})
	}
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")

	scheme, token, ok := strings.Cut(h, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}

	return strings.TrimSpace(token)
}
