package memory

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/seoward-lab/seoward/pkg/domain/model"
	"github.com/seoward-lab/seoward/pkg/domain/types"
)

type organizationRepository struct {
	mu   sync.RWMutex
	orgs map[types.OrgID]*model.Organization
	slug map[string]types.OrgID
}

func newOrganizationRepository() *organizationRepository {
	return &organizationRepository{
		orgs: make(map[types.OrgID]*model.Organization),
		slug: make(map[string]types.OrgID),
	}
}

// copyOrganization creates a deep copy of an organization
func copyOrganization(o *model.Organization) *model.Organization {
	return &model.Organization{
		ID:        o.ID,
		Name:      o.Name,
		Slug:      o.Slug,
		OwnerID:   o.OwnerID,
		Settings:  copyMap(o.Settings),
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}

func (r *organizationRepository) Create(ctx context.Context, org *model.Organization) (*model.Organization, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.slug[org.Slug]; exists {
		return nil, goerr.Wrap(ErrSlugTaken, "organization slug is in use", goerr.V("slug", org.Slug))
	}

	now := time.Now().UTC()
	created := copyOrganization(org)
	created.CreatedAt = now
	created.UpdatedAt = now

	r.orgs[created.ID] = created
	r.slug[created.Slug] = created.ID
	return copyOrganization(created), nil
}

func (r *organizationRepository) Get(ctx context.Context, id types.OrgID) (*model.Organization, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	org, exists := r.orgs[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "organization not found", goerr.V("id", id))
	}
	return copyOrganization(org), nil
}

func (r *organizationRepository) GetBySlug(ctx context.Context, slug string) (*model.Organization, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, exists := r.slug[slug]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "organization not found", goerr.V("slug", slug))
	}
	return copyOrganization(r.orgs[id]), nil
}

func (r *organizationRepository) Update(ctx context.Context, org *model.Organization) (*model.Organization, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.orgs[org.ID]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "organization not found", goerr.V("id", org.ID))
	}

	if org.Slug != existing.Slug {
		if _, taken := r.slug[org.Slug]; taken {
			return nil, goerr.Wrap(ErrSlugTaken, "organization slug is in use", goerr.V("slug", org.Slug))
		}
		delete(r.slug, existing.Slug)
		r.slug[org.Slug] = org.ID
	}

	updated := copyOrganization(org)
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	r.orgs[updated.ID] = updated
	return copyOrganization(updated), nil
}

func (r *organizationRepository) Delete(ctx context.Context, id types.OrgID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	org, exists := r.orgs[id]
	if !exists {
		return goerr.Wrap(ErrNotFound, "organization not found", goerr.V("id", id))
	}

	delete(r.slug, org.Slug)
	delete(r.orgs, id)
	return nil
}
