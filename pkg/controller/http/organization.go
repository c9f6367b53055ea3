package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/seoward-lab/seoward/pkg/domain/types"
)

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return goerr.Wrap(errBadRequest, "invalid request body", goerr.V("cause", err.Error()))
	}
	return nil
}

func (s *Server) createOrganization(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string         `json:"name"`
		Slug     string         `json:"slug"`
		Settings map[string]any `json:"settings"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(r.Context(), w, err)
		return
	}

	p := principalFrom(r.Context())
	org, err := s.uc.Organization.Create(r.Context(), p.ID, req.Name, req.Slug, req.Settings)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusCreated, org)
}

func (s *Server) getOrganization(w http.ResponseWriter, r *http.Request) {
	p := principalFrom(r.Context())
	org, err := s.uc.Organization.Get(r.Context(), p, types.OrgID(chi.URLParam(r, "id")))
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusOK, org)
}

func (s *Server) deleteOrganization(w http.ResponseWriter, r *http.Request) {
	p := principalFrom(r.Context())
	if err := s.uc.Organization.Delete(r.Context(), p, types.OrgID(chi.URLParam(r, "id"))); err != nil {
		respondError(r.Context(), w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) listOrganizationActivity(w http.ResponseWriter, r *http.Request) {
	p := principalFrom(r.Context())
	entries, err := s.uc.Activity.ListByOrganization(r.Context(), p, types.OrgID(chi.URLParam(r, "id")))
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusOK, entries)
}
