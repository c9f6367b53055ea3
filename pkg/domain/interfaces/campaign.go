package interfaces

import (
	"context"

	"github.com/seoward-lab/seoward/pkg/domain/model"
	"github.com/seoward-lab/seoward/pkg/domain/types"
)

// CampaignRepository defines the interface for Campaign data access
type CampaignRepository interface {
	// Create creates a new campaign
	Create(ctx context.Context, campaign *model.Campaign) (*model.Campaign, error)

	// Get retrieves a campaign by ID
	Get(ctx context.Context, id types.CampaignID) (*model.Campaign, error)

	// ListByOrganization retrieves all campaigns of an organization
	ListByOrganization(ctx context.Context, orgID types.OrgID) ([]*model.Campaign, error)

	// Update updates an existing campaign
	Update(ctx context.Context, campaign *model.Campaign) (*model.Campaign, error)

	// Delete deletes a campaign by ID. Owned tasks, audits, keywords
	// and content are removed by the usecase layer's cascade.
	Delete(ctx context.Context, id types.CampaignID) error
}
