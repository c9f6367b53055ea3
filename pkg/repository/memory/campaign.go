package memory

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/seoward-lab/seoward/pkg/domain/model"
	"github.com/seoward-lab/seoward/pkg/domain/types"
)

type campaignRepository struct {
	mu        sync.RWMutex
	campaigns map[types.CampaignID]*model.Campaign
}

func newCampaignRepository() *campaignRepository {
	return &campaignRepository{
		campaigns: make(map[types.CampaignID]*model.Campaign),
	}
}

// copyCampaign creates a deep copy of a campaign
func copyCampaign(c *model.Campaign) *model.Campaign {
	return &model.Campaign{
		ID:             c.ID,
		OrganizationID: c.OrganizationID,
		Name:           c.Name,
		Domain:         c.Domain,
		Status:         c.Status,
		Settings:       copyMap(c.Settings),
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

func (r *campaignRepository) Create(ctx context.Context, campaign *model.Campaign) (*model.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	created := copyCampaign(campaign)
	created.CreatedAt = now
	created.UpdatedAt = now

	r.campaigns[created.ID] = created
	return copyCampaign(created), nil
}

func (r *campaignRepository) Get(ctx context.Context, id types.CampaignID) (*model.Campaign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, exists := r.campaigns[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "campaign not found", goerr.V("id", id))
	}
	return copyCampaign(c), nil
}

func (r *campaignRepository) ListByOrganization(ctx context.Context, orgID types.OrgID) ([]*model.Campaign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	campaigns := []*model.Campaign{}
	for _, c := range r.campaigns {
		if c.OrganizationID == orgID {
			campaigns = append(campaigns, copyCampaign(c))
		}
	}
	return campaigns, nil
}

func (r *campaignRepository) Update(ctx context.Context, campaign *model.Campaign) (*model.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.campaigns[campaign.ID]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "campaign not found", goerr.V("id", campaign.ID))
	}

	updated := copyCampaign(campaign)
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	r.campaigns[updated.ID] = updated
	return copyCampaign(updated), nil
}

func (r *campaignRepository) Delete(ctx context.Context, id types.CampaignID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.campaigns[id]; !exists {
		return goerr.Wrap(ErrNotFound, "campaign not found", goerr.V("id", id))
	}
	delete(r.campaigns, id)
	return nil
}
