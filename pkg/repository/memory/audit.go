package memory

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/seoward-lab/seoward/pkg/domain/model"
	"github.com/seoward-lab/seoward/pkg/domain/types"
)

type auditRepository struct {
	mu     sync.RWMutex
	audits map[types.AuditID]*model.Audit
}

func newAuditRepository() *auditRepository {
	return &auditRepository{
		audits: make(map[types.AuditID]*model.Audit),
	}
}

// copyAudit creates a deep copy of an audit
func copyAudit(a *model.Audit) *model.Audit {
	copied := &model.Audit{
		ID:             a.ID,
		CampaignID:     a.CampaignID,
		Type:           a.Type,
		Status:         a.Status,
		Results:        copyMap(a.Results),
		Summary:        copyMap(a.Summary),
		ExternalTaskID: a.ExternalTaskID,
		CreatedBy:      a.CreatedBy,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
	if a.CompletedAt != nil {
		t := *a.CompletedAt
		copied.CompletedAt = &t
	}
	return copied
}

func (r *auditRepository) Create(ctx context.Context, audit *model.Audit) (*model.Audit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	created := copyAudit(audit)
	created.CreatedAt = now
	created.UpdatedAt = now

	r.audits[created.ID] = created
	return copyAudit(created), nil
}

func (r *auditRepository) Get(ctx context.Context, id types.AuditID) (*model.Audit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, exists := r.audits[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "audit not found", goerr.V("id", id))
	}
	return copyAudit(a), nil
}

func (r *auditRepository) ListByCampaign(ctx context.Context, campaignID types.CampaignID) ([]*model.Audit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	audits := []*model.Audit{}
	for _, a := range r.audits {
		if a.CampaignID == campaignID {
			audits = append(audits, copyAudit(a))
		}
	}
	return audits, nil
}

func (r *auditRepository) ListRunningBefore(ctx context.Context, cutoff time.Time) ([]*model.Audit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	audits := []*model.Audit{}
	for _, a := range r.audits {
		if a.Status == types.AuditStatusRunning && a.UpdatedAt.Before(cutoff) {
			audits = append(audits, copyAudit(a))
		}
	}
	return audits, nil
}

func (r *auditRepository) Update(ctx context.Context, audit *model.Audit) (*model.Audit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.audits[audit.ID]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "audit not found", goerr.V("id", audit.ID))
	}

	updated := copyAudit(audit)
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	r.audits[updated.ID] = updated
	return copyAudit(updated), nil
}

func (r *auditRepository) DetachProfile(ctx context.Context, profileID types.ProfileID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, a := range r.audits {
		if a.CreatedBy == profileID {
			a.CreatedBy = ""
		}
	}
	return nil
}

func (r *auditRepository) DeleteByCampaign(ctx context.Context, campaignID types.CampaignID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, a := range r.audits {
		if a.CampaignID == campaignID {
			delete(r.audits, id)
		}
	}
	return nil
}
