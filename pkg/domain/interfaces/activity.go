package interfaces

import (
	"context"

	"github.com/seoward-lab/seoward/pkg/domain/model"
	"github.com/seoward-lab/seoward/pkg/domain/types"
)

// ActivityRepository defines the interface for the append-only activity
// log. There are deliberately no update or delete methods.
type ActivityRepository interface {
	// Append appends one immutable entry
	Append(ctx context.Context, entry *model.ActivityEntry) (*model.ActivityEntry, error)

	// ListByOrganization retrieves entries of an organization, newest first
	ListByOrganization(ctx context.Context, orgID types.OrgID) ([]*model.ActivityEntry, error)

	// ListByCampaign retrieves entries of a campaign, newest first
	ListByCampaign(ctx context.Context, campaignID types.CampaignID) ([]*model.ActivityEntry, error)
}
