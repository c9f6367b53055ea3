package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/seoward-lab/seoward/pkg/domain/model"
	"github.com/seoward-lab/seoward/pkg/domain/types"
)

func (s *Server) createTask(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CampaignID   string                `json:"campaign_id"`
		Type         string                `json:"type"`
		Title        string                `json:"title"`
		Description  string                `json:"description"`
		Checklist    []model.ChecklistItem `json:"checklist"`
		AssignedTo   string                `json:"assigned_to"`
		AssignedRole string                `json:"assigned_role"`
		Priority     string                `json:"priority"`
		SOP          string                `json:"sop"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(r.Context(), w, err)
		return
	}

	p := principalFrom(r.Context())
	task, err := s.uc.Task.Create(r.Context(), p, &model.Task{
		CampaignID:   types.CampaignID(req.CampaignID),
		Type:         types.TaskType(req.Type),
		Title:        req.Title,
		Description:  req.Description,
		Checklist:    req.Checklist,
		AssignedTo:   types.ProfileID(req.AssignedTo),
		AssignedRole: types.Role(req.AssignedRole),
		Priority:     types.Priority(req.Priority),
		SOP:          req.SOP,
	})
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusCreated, task)
}

func (s *Server) getTask(w http.ResponseWriter, r *http.Request) {
	p := principalFrom(r.Context())
	task, err := s.uc.Task.Get(r.Context(), p, types.TaskID(chi.URLParam(r, "id")))
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusOK, task)
}

func (s *Server) listMyTasks(w http.ResponseWriter, r *http.Request) {
	p := principalFrom(r.Context())
	tasks, err := s.uc.Task.ListMine(r.Context(), p)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusOK, tasks)
}

func (s *Server) updateTask(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title        *string                `json:"title"`
		Description  *string                `json:"description"`
		Checklist    *[]model.ChecklistItem `json:"checklist"`
		AssignedTo   *string                `json:"assigned_to"`
		AssignedRole *string                `json:"assigned_role"`
		Status       *string                `json:"status"`
		Priority     *string                `json:"priority"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(r.Context(), w, err)
		return
	}

	p := principalFrom(r.Context())
	task, err := s.uc.Task.Get(r.Context(), p, types.TaskID(chi.URLParam(r, "id")))
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Checklist != nil {
		task.Checklist = *req.Checklist
	}
	if req.AssignedTo != nil {
		task.AssignedTo = types.ProfileID(*req.AssignedTo)
	}
	if req.AssignedRole != nil {
		task.AssignedRole = types.Role(*req.AssignedRole)
	}
	if req.Status != nil {
		task.Status = types.TaskStatus(*req.Status)
	}
	if req.Priority != nil {
		task.Priority = types.Priority(*req.Priority)
	}

	updated, err := s.uc.Task.Update(r.Context(), p, task)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusOK, updated)
}
