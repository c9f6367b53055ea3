package http

import (
	"context"
	"crypto/subtle"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/seoward-lab/seoward/pkg/domain/interfaces"
	"github.com/seoward-lab/seoward/pkg/domain/model"
	"github.com/seoward-lab/seoward/pkg/domain/types"
)

// errBadRequest marks client-side request errors (missing header,
// malformed body) for the status mapper.
var errBadRequest = goerr.New("bad request")

type ctxKey string

const principalKey ctxKey = "principal"

// principalMiddleware resolves the calling profile from the
// X-Auth-Profile header. The header is set by the fronting identity
// proxy after authentication; this layer only resolves it to a profile.
func principalMiddleware(repo interfaces.Repository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			profileID := r.Header.Get("X-Auth-Profile")
			if profileID == "" {
				http.Error(w, "Authentication required", http.StatusUnauthorized)
				return
			}

			profile, err := repo.Profile().Get(r.Context(), types.ProfileID(profileID))
			if err != nil {
				http.Error(w, "Unknown profile", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), principalKey, profile.Principal())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// principalFrom returns the principal stored by principalMiddleware.
func principalFrom(ctx context.Context) model.Principal {
	p, _ := ctx.Value(principalKey).(model.Principal)
	return p
}

// crawlerSecretMiddleware guards the crawler callback endpoints with a
// shared secret carried in the X-Crawler-Secret header.
func crawlerSecretMiddleware(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get("X-Crawler-Secret")
			if subtle.ConstantTimeCompare([]byte(got), []byte(secret)) != 1 {
				http.Error(w, "Invalid crawler secret", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
