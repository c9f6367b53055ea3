package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/seoward-lab/seoward/pkg/domain/types"
)

// ErrInvalidAuditTransition is returned when an audit status change
// violates the linear state machine.
var ErrInvalidAuditTransition = goerr.New("invalid audit status transition")

// Audit is one run of an external analysis against a campaign's domain.
// Results and Summary are opaque payloads from the crawler collaborator;
// ExternalTaskID correlates the run with the crawler's own task.
type Audit struct {
	ID             types.AuditID     `json:"id"`
	CampaignID     types.CampaignID  `json:"campaign_id"`
	Type           types.AuditType   `json:"type"`
	Status         types.AuditStatus `json:"status"`
	Results        map[string]any    `json:"results,omitempty"`
	Summary        map[string]any    `json:"summary,omitempty"`
	ExternalTaskID string            `json:"external_task_id,omitempty"`
	CreatedBy      types.ProfileID   `json:"created_by,omitempty"`
	CompletedAt    *time.Time        `json:"completed_at,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

// Validate checks audit invariants before the write boundary
func (a *Audit) Validate() error {
	if err := a.CampaignID.Validate(); err != nil {
		return goerr.Wrap(err, "audit must belong to a campaign")
	}
	if !a.Type.IsValid() {
		return goerr.Wrap(types.ErrInvalidType, "audit type is not recognized",
			goerr.V("type", a.Type), goerr.V("audit_id", a.ID))
	}
	if !a.Status.IsValid() {
		return goerr.Wrap(types.ErrInvalidStatus, "audit status is not recognized",
			goerr.V("status", a.Status), goerr.V("audit_id", a.ID))
	}
	return nil
}

// Transition moves the audit to the given status, enforcing the linear
// state machine. CompletedAt is stamped only on the transition to
// completed.
func (a *Audit) Transition(to types.AuditStatus, now time.Time) error {
	if !a.Status.CanTransition(to) {
		return goerr.Wrap(ErrInvalidAuditTransition, "audit cannot change status",
			goerr.V("audit_id", a.ID), goerr.V("from", a.Status), goerr.V("to", to))
	}
	a.Status = to
	if to == types.AuditStatusCompleted {
		t := now.UTC()
		a.CompletedAt = &t
	}
	return nil
}

// EligibleForTaskBuilding reports whether the engine may derive tasks
// from this audit. Anything not in completed is not eligible.
func (a *Audit) EligibleForTaskBuilding() bool {
	return a.Status == types.AuditStatusCompleted
}

// AuditPage is the audit collaborator's per-page finding record. The
// order of pages, and of issues within a page, is as reported by the
// crawler and is preserved end to end for reproducible checklists.
type AuditPage struct {
	URL    string            `json:"url"`
	Issues []types.IssueCode `json:"issues"`
}
