package memory

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/seoward-lab/seoward/pkg/domain/model"
	"github.com/seoward-lab/seoward/pkg/domain/types"
)

type activityRepository struct {
	mu      sync.RWMutex
	entries []*model.ActivityEntry
}

func newActivityRepository() *activityRepository {
	return &activityRepository{}
}

// copyActivityEntry creates a deep copy of an activity entry
func copyActivityEntry(e *model.ActivityEntry) *model.ActivityEntry {
	return &model.ActivityEntry{
		ID:             e.ID,
		OrganizationID: e.OrganizationID,
		CampaignID:     e.CampaignID,
		ActorID:        e.ActorID,
		Action:         e.Action,
		EntityType:     e.EntityType,
		EntityID:       e.EntityID,
		Details:        copyMap(e.Details),
		CreatedAt:      e.CreatedAt,
	}
}

func (r *activityRepository) Append(ctx context.Context, entry *model.ActivityEntry) (*model.ActivityEntry, error) {
	if err := entry.Validate(); err != nil {
		return nil, goerr.Wrap(err, "refusing to append activity entry")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	appended := copyActivityEntry(entry)
	appended.CreatedAt = time.Now().UTC()
	r.entries = append(r.entries, appended)

	return copyActivityEntry(appended), nil
}

func (r *activityRepository) ListByOrganization(ctx context.Context, orgID types.OrgID) ([]*model.ActivityEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := []*model.ActivityEntry{}
	for i := len(r.entries) - 1; i >= 0; i-- {
		if r.entries[i].OrganizationID == orgID {
			entries = append(entries, copyActivityEntry(r.entries[i]))
		}
	}
	return entries, nil
}

func (r *activityRepository) ListByCampaign(ctx context.Context, campaignID types.CampaignID) ([]*model.ActivityEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := []*model.ActivityEntry{}
	for i := len(r.entries) - 1; i >= 0; i-- {
		if r.entries[i].CampaignID == campaignID {
			entries = append(entries, copyActivityEntry(r.entries[i]))
		}
	}
	return entries, nil
}
