package interfaces

import (
	"context"

	"github.com/seoward-lab/seoward/pkg/domain/model"
	"github.com/seoward-lab/seoward/pkg/domain/types"
)

// ContentRepository defines the interface for Content data access
type ContentRepository interface {
	// Create creates a new content piece
	Create(ctx context.Context, content *model.Content) (*model.Content, error)

	// Get retrieves a content piece by ID
	Get(ctx context.Context, id types.ContentID) (*model.Content, error)

	// ListByCampaign retrieves all content of a campaign
	ListByCampaign(ctx context.Context, campaignID types.CampaignID) ([]*model.Content, error)

	// Update updates an existing content piece
	Update(ctx context.Context, content *model.Content) (*model.Content, error)

	// DetachProfile clears assignee references to the given profile
	DetachProfile(ctx context.Context, profileID types.ProfileID) error

	// DeleteByCampaign deletes all content of a campaign (cascade)
	DeleteByCampaign(ctx context.Context, campaignID types.CampaignID) error
}
