package interfaces

import (
	"context"

	"github.com/seoward-lab/seoward/pkg/domain/model"
	"github.com/seoward-lab/seoward/pkg/domain/types"
)

// ProfileRepository defines the interface for Profile data access.
// Profile creation mirrors the external identity provider; rows are
// keyed by the identity it assigns.
type ProfileRepository interface {
	// Create creates a new profile
	Create(ctx context.Context, profile *model.Profile) (*model.Profile, error)

	// Get retrieves a profile by ID
	Get(ctx context.Context, id types.ProfileID) (*model.Profile, error)

	// ListByOrganization retrieves all profiles of an organization
	ListByOrganization(ctx context.Context, orgID types.OrgID) ([]*model.Profile, error)

	// Update updates an existing profile
	Update(ctx context.Context, profile *model.Profile) (*model.Profile, error)

	// Delete deletes a profile by ID. References from tasks, content
	// and audits are detached by the usecase layer, not cascaded.
	Delete(ctx context.Context, id types.ProfileID) error
}
