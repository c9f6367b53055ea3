package interfaces

import (
	"context"

	"github.com/seoward-lab/seoward/pkg/domain/model"
	"github.com/seoward-lab/seoward/pkg/domain/types"
)

// OrganizationRepository defines the interface for Organization data access
type OrganizationRepository interface {
	// Create creates a new organization. The slug must be unique.
	Create(ctx context.Context, org *model.Organization) (*model.Organization, error)

	// Get retrieves an organization by ID
	Get(ctx context.Context, id types.OrgID) (*model.Organization, error)

	// GetBySlug retrieves an organization by its unique slug
	GetBySlug(ctx context.Context, slug string) (*model.Organization, error)

	// Update updates an existing organization
	Update(ctx context.Context, org *model.Organization) (*model.Organization, error)

	// Delete deletes an organization by ID. Cascading deletion of
	// campaigns and profiles is orchestrated by the usecase layer.
	Delete(ctx context.Context, id types.OrgID) error
}
