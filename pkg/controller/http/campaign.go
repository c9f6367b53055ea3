package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/seoward-lab/seoward/pkg/domain/types"
)

func (s *Server) createCampaign(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string         `json:"name"`
		Domain   string         `json:"domain"`
		Settings map[string]any `json:"settings"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(r.Context(), w, err)
		return
	}

	p := principalFrom(r.Context())
	campaign, err := s.uc.Campaign.Create(r.Context(), p, req.Name, req.Domain, req.Settings)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusCreated, campaign)
}

func (s *Server) getCampaign(w http.ResponseWriter, r *http.Request) {
	p := principalFrom(r.Context())
	campaign, err := s.uc.Campaign.Get(r.Context(), p, types.CampaignID(chi.URLParam(r, "id")))
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusOK, campaign)
}

func (s *Server) listCampaigns(w http.ResponseWriter, r *http.Request) {
	p := principalFrom(r.Context())
	campaigns, err := s.uc.Campaign.List(r.Context(), p)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusOK, campaigns)
}

func (s *Server) updateCampaign(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     *string        `json:"name"`
		Domain   *string        `json:"domain"`
		Status   *string        `json:"status"`
		Settings map[string]any `json:"settings"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(r.Context(), w, err)
		return
	}

	p := principalFrom(r.Context())
	campaign, err := s.uc.Campaign.Get(r.Context(), p, types.CampaignID(chi.URLParam(r, "id")))
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}

	if req.Name != nil {
		campaign.Name = *req.Name
	}
	if req.Domain != nil {
		campaign.Domain = *req.Domain
	}
	if req.Status != nil {
		campaign.Status = types.CampaignStatus(*req.Status)
	}
	if req.Settings != nil {
		campaign.Settings = req.Settings
	}

	updated, err := s.uc.Campaign.Update(r.Context(), p, campaign)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusOK, updated)
}

func (s *Server) listCampaignTasks(w http.ResponseWriter, r *http.Request) {
	p := principalFrom(r.Context())
	tasks, err := s.uc.Task.ListByCampaign(r.Context(), p, types.CampaignID(chi.URLParam(r, "id")))
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusOK, tasks)
}

func (s *Server) listCampaignKeywords(w http.ResponseWriter, r *http.Request) {
	p := principalFrom(r.Context())
	keywords, err := s.uc.Keyword.ListByCampaign(r.Context(), p, types.CampaignID(chi.URLParam(r, "id")))
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusOK, keywords)
}

func (s *Server) listCampaignActivity(w http.ResponseWriter, r *http.Request) {
	p := principalFrom(r.Context())
	entries, err := s.uc.Activity.ListByCampaign(r.Context(), p, types.CampaignID(chi.URLParam(r, "id")))
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusOK, entries)
}
