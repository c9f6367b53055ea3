package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/seoward-lab/seoward/pkg/domain/types"
)

func (s *Server) getProfile(w http.ResponseWriter, r *http.Request) {
	p := principalFrom(r.Context())
	profile, err := s.uc.Profile.Get(r.Context(), p, types.ProfileID(chi.URLParam(r, "id")))
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusOK, profile)
}

func (s *Server) onboardProfile(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Role string `json:"role"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(r.Context(), w, err)
		return
	}

	p := principalFrom(r.Context())
	profile, err := s.uc.Profile.Onboard(r.Context(), p, types.ProfileID(chi.URLParam(r, "id")), types.Role(req.Role))
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusOK, profile)
}

func (s *Server) updateSelf(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FullName string         `json:"full_name"`
		Settings map[string]any `json:"settings"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(r.Context(), w, err)
		return
	}

	p := principalFrom(r.Context())
	profile, err := s.uc.Profile.UpdateSelf(r.Context(), p, req.FullName, req.Settings)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusOK, profile)
}

func (s *Server) deleteProfile(w http.ResponseWriter, r *http.Request) {
	p := principalFrom(r.Context())
	if err := s.uc.Profile.Delete(r.Context(), p, types.ProfileID(chi.URLParam(r, "id"))); err != nil {
		respondError(r.Context(), w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
