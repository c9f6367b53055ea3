package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/seoward-lab/seoward/pkg/domain/model"
	"github.com/seoward-lab/seoward/pkg/domain/types"
)

func (s *Server) createContent(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CampaignID     string         `json:"campaign_id"`
		Title          string         `json:"title"`
		Brief          map[string]any `json:"brief"`
		TargetKeywords []string       `json:"target_keywords"`
		AssignedTo     string         `json:"assigned_to"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(r.Context(), w, err)
		return
	}

	p := principalFrom(r.Context())
	content, err := s.uc.Content.Create(r.Context(), p, &model.Content{
		CampaignID:     types.CampaignID(req.CampaignID),
		Title:          req.Title,
		Brief:          req.Brief,
		TargetKeywords: req.TargetKeywords,
		AssignedTo:     types.ProfileID(req.AssignedTo),
	})
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusCreated, content)
}

func (s *Server) getContent(w http.ResponseWriter, r *http.Request) {
	p := principalFrom(r.Context())
	content, err := s.uc.Content.Get(r.Context(), p, types.ContentID(chi.URLParam(r, "id")))
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusOK, content)
}

func (s *Server) transitionContent(w http.ResponseWriter, r *http.Request) {
	var req struct {
		To           string `json:"to"`
		PublishedURL string `json:"published_url"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(r.Context(), w, err)
		return
	}

	p := principalFrom(r.Context())
	content, err := s.uc.Content.RecordTransition(r.Context(), p, types.ContentID(chi.URLParam(r, "id")), types.ContentStatus(req.To), req.PublishedURL)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusOK, content)
}
