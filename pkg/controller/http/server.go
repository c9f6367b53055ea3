package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/seoward-lab/seoward/pkg/domain/interfaces"
	"github.com/seoward-lab/seoward/pkg/domain/model"
	"github.com/seoward-lab/seoward/pkg/domain/types"
	"github.com/seoward-lab/seoward/pkg/usecase"
	"github.com/seoward-lab/seoward/pkg/utils/errutil"
	"github.com/seoward-lab/seoward/pkg/utils/logging"
)

type Server struct {
	router        *chi.Mux
	repo          interfaces.Repository
	uc            *usecase.UseCases
	crawlerSecret string
}

type Options func(*Server)

// WithCrawlerSecret enables the /hooks/crawler endpoints. Requests must
// carry the secret in the X-Crawler-Secret header.
func WithCrawlerSecret(secret string) Options {
	return func(s *Server) {
		s.crawlerSecret = secret
	}
}

func New(repo interfaces.Repository, uc *usecase.UseCases, opts ...Options) *Server {
	r := chi.NewRouter()

	s := &Server{
		router: r,
		repo:   repo,
		uc:     uc,
	}
	for _, opt := range opts {
		opt(s)
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(r.Context(), w, http.StatusOK, map[string]string{"message": "pong"})
	})

	// Member API. Every request is attributed to a profile via the
	// X-Auth-Profile header set by the fronting identity proxy.
	r.Route("/api", func(r chi.Router) {
		r.Use(principalMiddleware(repo))

		r.Route("/organizations", func(r chi.Router) {
			r.Post("/", s.createOrganization)
			r.Get("/{id}", s.getOrganization)
			r.Delete("/{id}", s.deleteOrganization)
			r.Get("/{id}/activity", s.listOrganizationActivity)
		})

		r.Route("/profiles", func(r chi.Router) {
			r.Get("/{id}", s.getProfile)
			r.Delete("/{id}", s.deleteProfile)
			r.Put("/me", s.updateSelf)
			r.Post("/{id}/onboard", s.onboardProfile)
		})

		r.Route("/campaigns", func(r chi.Router) {
			r.Post("/", s.createCampaign)
			r.Get("/", s.listCampaigns)
			r.Get("/{id}", s.getCampaign)
			r.Put("/{id}", s.updateCampaign)
			r.Get("/{id}/tasks", s.listCampaignTasks)
			r.Get("/{id}/keywords", s.listCampaignKeywords)
			r.Get("/{id}/activity", s.listCampaignActivity)
			r.Post("/{id}/audits", s.startAudit)
		})

		r.Route("/audits", func(r chi.Router) {
			r.Get("/{id}", s.getAudit)
		})

		r.Route("/tasks", func(r chi.Router) {
			r.Post("/", s.createTask)
			r.Get("/mine", s.listMyTasks)
			r.Get("/{id}", s.getTask)
			r.Put("/{id}", s.updateTask)
		})

		r.Route("/keywords", func(r chi.Router) {
			r.Post("/", s.trackKeyword)
			r.Post("/{id}/rank", s.recordKeywordRank)
		})

		r.Route("/content", func(r chi.Router) {
			r.Post("/", s.createContent)
			r.Get("/{id}", s.getContent)
			r.Post("/{id}/transition", s.transitionContent)
		})
	})

	// Crawler callback endpoints. No profile attribution, guarded by a
	// shared secret instead.
	if s.crawlerSecret != "" {
		r.Route("/hooks/crawler", func(r chi.Router) {
			r.Use(crawlerSecretMiddleware(s.crawlerSecret))

			r.Post("/audits/{id}/begin", s.beginAudit)
			r.Post("/audits/{id}/ingest", s.ingestAudit)
			r.Post("/audits/{id}/fail", s.failAudit)
		})
	}

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// accessLogger is a middleware that logs HTTP requests
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			logging.Default().Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
				"user_agent", r.UserAgent(),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}

func respondJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logging.From(ctx).Error("failed to encode response", "error", err.Error())
	}
}

// respondError maps domain errors to HTTP status codes before delegating
// to errutil for logging and the response body.
func respondError(ctx context.Context, w http.ResponseWriter, err error) {
	errutil.HandleHTTP(ctx, w, err, statusOf(err))
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, usecase.ErrAccessDenied):
		return http.StatusForbidden
	case errors.Is(err, interfaces.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, interfaces.ErrSlugTaken),
		errors.Is(err, model.ErrInvalidAuditTransition):
		return http.StatusConflict
	case errors.Is(err, errBadRequest),
		errors.Is(err, model.ErrUnroutedTask),
		errors.Is(err, model.ErrMalformedActivityEntry),
		errors.Is(err, types.ErrInvalidRole),
		errors.Is(err, types.ErrInvalidStatus),
		errors.Is(err, types.ErrInvalidType),
		errors.Is(err, types.ErrInvalidPriority):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
