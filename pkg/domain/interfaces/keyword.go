package interfaces

import (
	"context"

	"github.com/seoward-lab/seoward/pkg/domain/model"
	"github.com/seoward-lab/seoward/pkg/domain/types"
)

// KeywordRepository defines the interface for Keyword data access
type KeywordRepository interface {
	// Create creates a new keyword
	Create(ctx context.Context, keyword *model.Keyword) (*model.Keyword, error)

	// Get retrieves a keyword by ID
	Get(ctx context.Context, id types.KeywordID) (*model.Keyword, error)

	// ListByCampaign retrieves all keywords of a campaign
	ListByCampaign(ctx context.Context, campaignID types.CampaignID) ([]*model.Keyword, error)

	// Update updates an existing keyword
	Update(ctx context.Context, keyword *model.Keyword) (*model.Keyword, error)

	// DeleteByCampaign deletes all keywords of a campaign (cascade)
	DeleteByCampaign(ctx context.Context, campaignID types.CampaignID) error
}
