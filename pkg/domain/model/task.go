package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/seoward-lab/seoward/pkg/domain/types"
)

// ErrUnroutedTask is returned when a task carries neither an individual
// assignee nor a role queue.
var ErrUnroutedTask = goerr.New("task must have an assignee or an assigned role")

// ChecklistItem is one discrete sub-item within a task, typically an
// affected page URL. Order within the checklist is meaningful.
type ChecklistItem struct {
	Item      string `json:"item"`
	Completed bool   `json:"completed"`
	Notes     string `json:"notes"`
}

// Task is a unit of remediation work derived from audit findings or
// created manually, routed to a role queue or an individual. SOP holds
// opaque procedure text stored verbatim.
type Task struct {
	ID           types.TaskID     `json:"id"`
	CampaignID   types.CampaignID `json:"campaign_id"`
	Type         types.TaskType   `json:"type"`
	Title        string           `json:"title"`
	Description  string           `json:"description,omitempty"`
	Checklist    []ChecklistItem  `json:"checklist,omitempty"`
	AssignedTo   types.ProfileID  `json:"assigned_to,omitempty"`
	AssignedRole types.Role       `json:"assigned_role,omitempty"`
	Status       types.TaskStatus `json:"status"`
	Priority     types.Priority   `json:"priority"`
	DueDate      *time.Time       `json:"due_date,omitempty"`
	SOP          string           `json:"sop,omitempty"`
	CreatedBy    types.ProfileID  `json:"created_by,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// Validate checks task invariants before the write boundary
func (t *Task) Validate() error {
	if err := t.CampaignID.Validate(); err != nil {
		return goerr.Wrap(err, "task must belong to a campaign")
	}
	if t.Title == "" {
		return goerr.New("task title is required", goerr.V("task_id", t.ID))
	}
	if !t.Type.IsValid() {
		return goerr.Wrap(types.ErrInvalidType, "task type is not recognized",
			goerr.V("type", t.Type), goerr.V("task_id", t.ID))
	}
	if !t.Status.IsValid() {
		return goerr.Wrap(types.ErrInvalidStatus, "task status is not recognized",
			goerr.V("status", t.Status), goerr.V("task_id", t.ID))
	}
	if !t.Priority.IsValid() {
		return goerr.Wrap(types.ErrInvalidPriority, "task priority is out of range",
			goerr.V("priority", int(t.Priority)), goerr.V("task_id", t.ID))
	}
	if t.AssignedRole != "" && !t.AssignedRole.IsValid() {
		return goerr.Wrap(types.ErrInvalidRole, "task assigned role is not recognized",
			goerr.V("role", t.AssignedRole), goerr.V("task_id", t.ID))
	}
	if t.AssignedTo == "" && t.AssignedRole == "" {
		return goerr.Wrap(ErrUnroutedTask, "unrouted task", goerr.V("title", t.Title))
	}
	return nil
}

// IsOpen reports whether the task counts for duplicate suppression
func (t *Task) IsOpen() bool {
	return t.Status.IsOpen()
}

// MergeChecklist adds the given page identifiers to the checklist with
// set semantics keyed by item text, preserving existing order and
// appending new items in the given order. It returns how many items
// were actually added.
func (t *Task) MergeChecklist(items []string) int {
	seen := make(map[string]bool, len(t.Checklist))
	for _, ci := range t.Checklist {
		seen[ci.Item] = true
	}

	added := 0
	for _, item := range items {
		if seen[item] {
			continue
		}
		seen[item] = true
		t.Checklist = append(t.Checklist, ChecklistItem{Item: item})
		added++
	}
	return added
}
