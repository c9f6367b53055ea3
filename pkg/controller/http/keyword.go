package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/seoward-lab/seoward/pkg/domain/model"
	"github.com/seoward-lab/seoward/pkg/domain/types"
)

func (s *Server) trackKeyword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CampaignID   string `json:"campaign_id"`
		Text         string `json:"text"`
		SearchVolume int    `json:"search_volume"`
		Difficulty   int    `json:"difficulty"`
		Intent       string `json:"intent"`
		ClusterID    string `json:"cluster_id"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(r.Context(), w, err)
		return
	}

	p := principalFrom(r.Context())
	keyword, err := s.uc.Keyword.Track(r.Context(), p, &model.Keyword{
		CampaignID:   types.CampaignID(req.CampaignID),
		Text:         req.Text,
		SearchVolume: req.SearchVolume,
		Difficulty:   req.Difficulty,
		Intent:       req.Intent,
		ClusterID:    req.ClusterID,
	})
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusCreated, keyword)
}

func (s *Server) recordKeywordRank(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Rank int `json:"rank"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(r.Context(), w, err)
		return
	}

	keyword, err := s.uc.Keyword.RecordRank(r.Context(), types.KeywordID(chi.URLParam(r, "id")), req.Rank)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusOK, keyword)
}
