package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/seoward-lab/seoward/pkg/domain/model"
	"github.com/seoward-lab/seoward/pkg/domain/types"
)

func (s *Server) startAudit(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Type           string `json:"type"`
		ExternalTaskID string `json:"external_task_id"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(r.Context(), w, err)
		return
	}

	p := principalFrom(r.Context())
	audit, err := s.uc.Audit.Start(r.Context(), p, types.CampaignID(chi.URLParam(r, "id")), types.AuditType(req.Type), req.ExternalTaskID)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusCreated, audit)
}

func (s *Server) getAudit(w http.ResponseWriter, r *http.Request) {
	p := principalFrom(r.Context())
	audit, err := s.uc.Audit.Get(r.Context(), p, types.AuditID(chi.URLParam(r, "id")))
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusOK, audit)
}

func (s *Server) beginAudit(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ExternalTaskID string `json:"external_task_id"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(r.Context(), w, err)
		return
	}

	audit, err := s.uc.Audit.Begin(r.Context(), types.AuditID(chi.URLParam(r, "id")), req.ExternalTaskID)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusOK, audit)
}

func (s *Server) ingestAudit(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Pages   []model.AuditPage `json:"pages"`
		Summary map[string]any    `json:"summary"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(r.Context(), w, err)
		return
	}

	report, err := s.uc.Audit.Ingest(r.Context(), types.AuditID(chi.URLParam(r, "id")), req.Pages, req.Summary)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}

	type failure struct {
		Code  string `json:"code"`
		Pages int    `json:"pages"`
		Error string `json:"error"`
	}
	resp := struct {
		Created  []*model.Task `json:"created"`
		Merged   []*model.Task `json:"merged"`
		Failures []failure     `json:"failures"`
	}{
		Created:  report.Created,
		Merged:   report.Merged,
		Failures: make([]failure, len(report.Failures)),
	}
	for i, f := range report.Failures {
		resp.Failures[i] = failure{Code: f.Code.String(), Pages: f.Pages, Error: f.Err.Error()}
	}
	respondJSON(r.Context(), w, http.StatusOK, resp)
}

func (s *Server) failAudit(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Reason string `json:"reason"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(r.Context(), w, err)
		return
	}

	audit, err := s.uc.Audit.Fail(r.Context(), types.AuditID(chi.URLParam(r, "id")), "", req.Reason)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusOK, audit)
}
