package memory

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/seoward-lab/seoward/pkg/domain/model"
	"github.com/seoward-lab/seoward/pkg/domain/types"
)

type profileRepository struct {
	mu       sync.RWMutex
	profiles map[types.ProfileID]*model.Profile
}

func newProfileRepository() *profileRepository {
	return &profileRepository{
		profiles: make(map[types.ProfileID]*model.Profile),
	}
}

// copyProfile creates a deep copy of a profile
func copyProfile(p *model.Profile) *model.Profile {
	return &model.Profile{
		ID:             p.ID,
		Email:          p.Email,
		FullName:       p.FullName,
		Role:           p.Role,
		OrganizationID: p.OrganizationID,
		Settings:       copyMap(p.Settings),
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func (r *profileRepository) Create(ctx context.Context, profile *model.Profile) (*model.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	created := copyProfile(profile)
	created.CreatedAt = now
	created.UpdatedAt = now

	r.profiles[created.ID] = created
	return copyProfile(created), nil
}

func (r *profileRepository) Get(ctx context.Context, id types.ProfileID) (*model.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, exists := r.profiles[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "profile not found", goerr.V("id", id))
	}
	return copyProfile(p), nil
}

func (r *profileRepository) ListByOrganization(ctx context.Context, orgID types.OrgID) ([]*model.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	profiles := []*model.Profile{}
	for _, p := range r.profiles {
		if p.OrganizationID == orgID {
			profiles = append(profiles, copyProfile(p))
		}
	}
	return profiles, nil
}

func (r *profileRepository) Update(ctx context.Context, profile *model.Profile) (*model.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.profiles[profile.ID]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "profile not found", goerr.V("id", profile.ID))
	}

	updated := copyProfile(profile)
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	r.profiles[updated.ID] = updated
	return copyProfile(updated), nil
}

func (r *profileRepository) Delete(ctx context.Context, id types.ProfileID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.profiles[id]; !exists {
		return goerr.Wrap(ErrNotFound, "profile not found", goerr.V("id", id))
	}
	delete(r.profiles, id)
	return nil
}
