package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/seoward-lab/seoward/pkg/domain/interfaces"
	"github.com/seoward-lab/seoward/pkg/domain/model"
	"github.com/seoward-lab/seoward/pkg/domain/types"
	"github.com/seoward-lab/seoward/pkg/service/authz"
)

type ProfileUseCase struct {
	repo     interfaces.Repository
	activity *ActivityUseCase
}

func NewProfileUseCase(repo interfaces.Repository, activity *ActivityUseCase) *ProfileUseCase {
	return &ProfileUseCase{repo: repo, activity: activity}
}

// Get retrieves a profile visible to the principal
func (uc *ProfileUseCase) Get(ctx context.Context, p model.Principal, id types.ProfileID) (*model.Profile, error) {
	profile, err := uc.repo.Profile().Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !authz.Can(p, types.ActionRead, authz.ProfileResource(profile)) {
		return nil, goerr.Wrap(ErrAccessDenied, "cannot read profile", goerr.V(ProfileIDKey, id))
	}
	return profile, nil
}

// Onboard assigns an unattached profile into the principal's
// organization with the given role. Manager only.
func (uc *ProfileUseCase) Onboard(ctx context.Context, p model.Principal, id types.ProfileID, role types.Role) (*model.Profile, error) {
	if !p.Role.IsManager() || p.OrganizationID == "" {
		return nil, goerr.Wrap(ErrAccessDenied, "cannot onboard profile", goerr.V(ProfileIDKey, id))
	}
	if !role.IsValid() {
		return nil, goerr.Wrap(types.ErrInvalidRole, "cannot onboard with unknown role", goerr.V("role", role))
	}

	profile, err := uc.repo.Profile().Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if profile.OrganizationID != "" {
		return nil, goerr.Wrap(ErrAccessDenied, "profile already belongs to an organization",
			goerr.V(ProfileIDKey, id), goerr.V("org_id", profile.OrganizationID))
	}

	profile.OrganizationID = p.OrganizationID
	profile.Role = role

	updated, err := uc.repo.Profile().Update(ctx, profile)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to onboard profile", goerr.V(ProfileIDKey, id))
	}

	if _, err := uc.activity.Record(ctx, p.OrganizationID, "", p.ID, model.ActivityUpdated,
		types.EntityProfile, id.String(), map[string]any{"role": role.String()}); err != nil {
		return nil, err
	}

	return updated, nil
}

// UpdateSelf lets a profile change its own display name and settings.
// Role and organization are managed through onboarding, never here.
func (uc *ProfileUseCase) UpdateSelf(ctx context.Context, p model.Principal, fullName string, settings map[string]any) (*model.Profile, error) {
	profile, err := uc.repo.Profile().Get(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	if !authz.Can(p, types.ActionUpdate, authz.ProfileResource(profile)) {
		return nil, goerr.Wrap(ErrAccessDenied, "cannot update profile", goerr.V(ProfileIDKey, p.ID))
	}

	profile.FullName = fullName
	if settings != nil {
		profile.Settings = settings
	}
	if err := profile.Validate(); err != nil {
		return nil, err
	}

	return uc.repo.Profile().Update(ctx, profile)
}

// Delete removes a profile and unsets every reference to it. Tasks,
// content and audits the profile touched survive with the reference
// cleared; nothing cascades.
func (uc *ProfileUseCase) Delete(ctx context.Context, p model.Principal, id types.ProfileID) error {
	if p.ID != id && p.Role != types.RoleAdmin {
		return goerr.Wrap(ErrAccessDenied, "cannot delete profile", goerr.V(ProfileIDKey, id))
	}

	profile, err := uc.repo.Profile().Get(ctx, id)
	if err != nil {
		return err
	}
	if p.ID != id && p.OrganizationID != profile.OrganizationID {
		return goerr.Wrap(ErrAccessDenied, "cannot delete profile", goerr.V(ProfileIDKey, id))
	}

	if err := uc.repo.Task().DetachProfile(ctx, id); err != nil {
		return goerr.Wrap(err, "failed to detach profile from tasks", goerr.V(ProfileIDKey, id))
	}
	if err := uc.repo.Content().DetachProfile(ctx, id); err != nil {
		return goerr.Wrap(err, "failed to detach profile from content", goerr.V(ProfileIDKey, id))
	}
	if err := uc.repo.Audit().DetachProfile(ctx, id); err != nil {
		return goerr.Wrap(err, "failed to detach profile from audits", goerr.V(ProfileIDKey, id))
	}

	return uc.repo.Profile().Delete(ctx, id)
}
