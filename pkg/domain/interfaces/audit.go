package interfaces

import (
	"context"
	"time"

	"github.com/seoward-lab/seoward/pkg/domain/model"
	"github.com/seoward-lab/seoward/pkg/domain/types"
)

// AuditRepository defines the interface for Audit data access
type AuditRepository interface {
	// Create creates a new audit
	Create(ctx context.Context, audit *model.Audit) (*model.Audit, error)

	// Get retrieves an audit by ID
	Get(ctx context.Context, id types.AuditID) (*model.Audit, error)

	// ListByCampaign retrieves all audits of a campaign
	ListByCampaign(ctx context.Context, campaignID types.CampaignID) ([]*model.Audit, error)

	// ListRunningBefore retrieves audits stuck in running that were
	// last updated before the given time. Used by the watchdog.
	ListRunningBefore(ctx context.Context, cutoff time.Time) ([]*model.Audit, error)

	// Update updates an existing audit
	Update(ctx context.Context, audit *model.Audit) (*model.Audit, error)

	// DetachProfile clears creator references to the given profile
	DetachProfile(ctx context.Context, profileID types.ProfileID) error

	// DeleteByCampaign deletes all audits of a campaign (cascade)
	DeleteByCampaign(ctx context.Context, campaignID types.CampaignID) error
}
