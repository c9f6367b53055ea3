package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/seoward-lab/seoward/pkg/domain/interfaces"
	"github.com/seoward-lab/seoward/pkg/domain/model"
	"github.com/seoward-lab/seoward/pkg/domain/types"
	"github.com/seoward-lab/seoward/pkg/service/authz"
	"github.com/seoward-lab/seoward/pkg/utils/logging"
)

type OrganizationUseCase struct {
	repo     interfaces.Repository
	activity *ActivityUseCase
}

func NewOrganizationUseCase(repo interfaces.Repository, activity *ActivityUseCase) *OrganizationUseCase {
	return &OrganizationUseCase{repo: repo, activity: activity}
}

// Create creates an organization owned by the given profile. The owner
// is onboarded into the new organization as admin.
func (uc *OrganizationUseCase) Create(ctx context.Context, ownerID types.ProfileID, name, slug string, settings map[string]any) (*model.Organization, error) {
	owner, err := uc.repo.Profile().Get(ctx, ownerID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load owner profile", goerr.V(ProfileIDKey, ownerID))
	}
	if owner.OrganizationID != "" {
		return nil, goerr.Wrap(ErrAccessDenied, "profile already belongs to an organization",
			goerr.V(ProfileIDKey, ownerID), goerr.V("org_id", owner.OrganizationID))
	}

	org := &model.Organization{
		ID:       types.NewOrgID(),
		Name:     name,
		Slug:     slug,
		OwnerID:  ownerID,
		Settings: settings,
	}
	if err := org.Validate(); err != nil {
		return nil, err
	}

	created, err := uc.repo.Organization().Create(ctx, org)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create organization", goerr.V("slug", slug))
	}

	owner.OrganizationID = created.ID
	owner.Role = types.RoleAdmin
	if _, err := uc.repo.Profile().Update(ctx, owner); err != nil {
		return nil, goerr.Wrap(err, "failed to onboard owner", goerr.V(ProfileIDKey, ownerID))
	}

	if _, err := uc.activity.Record(ctx, created.ID, "", ownerID, model.ActivityCreated,
		types.EntityOrganization, created.ID.String(), nil); err != nil {
		return nil, err
	}

	return created, nil
}

// Get retrieves an organization the principal belongs to
func (uc *OrganizationUseCase) Get(ctx context.Context, p model.Principal, id types.OrgID) (*model.Organization, error) {
	org, err := uc.repo.Organization().Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !authz.Can(p, types.ActionRead, authz.OrganizationResource(org)) {
		return nil, goerr.Wrap(ErrAccessDenied, "cannot read organization", goerr.V("org_id", id))
	}
	return org, nil
}

// Delete deletes an organization and everything it owns: campaigns
// cascade to their tasks, audits, keywords and content, while member
// profiles are detached, not deleted.
func (uc *OrganizationUseCase) Delete(ctx context.Context, p model.Principal, id types.OrgID) error {
	org, err := uc.repo.Organization().Get(ctx, id)
	if err != nil {
		return err
	}
	if p.OrganizationID != id || (p.Role != types.RoleAdmin && p.ID != org.OwnerID) {
		return goerr.Wrap(ErrAccessDenied, "cannot delete organization", goerr.V("org_id", id))
	}

	campaigns, err := uc.repo.Campaign().ListByOrganization(ctx, id)
	if err != nil {
		return goerr.Wrap(err, "failed to list campaigns", goerr.V("org_id", id))
	}
	for _, campaign := range campaigns {
		if err := uc.deleteCampaignCascade(ctx, campaign.ID); err != nil {
			return err
		}
	}

	profiles, err := uc.repo.Profile().ListByOrganization(ctx, id)
	if err != nil {
		return goerr.Wrap(err, "failed to list profiles", goerr.V("org_id", id))
	}
	for _, profile := range profiles {
		profile.OrganizationID = ""
		if _, err := uc.repo.Profile().Update(ctx, profile); err != nil {
			return goerr.Wrap(err, "failed to detach profile", goerr.V(ProfileIDKey, profile.ID))
		}
	}

	if err := uc.repo.Organization().Delete(ctx, id); err != nil {
		return err
	}

	logging.From(ctx).Info("organization deleted",
		"org_id", id,
		"campaigns", len(campaigns),
		"profiles_detached", len(profiles))
	return nil
}

func (uc *OrganizationUseCase) deleteCampaignCascade(ctx context.Context, campaignID types.CampaignID) error {
	if err := uc.repo.Task().DeleteByCampaign(ctx, campaignID); err != nil {
		return goerr.Wrap(err, "failed to delete campaign tasks", goerr.V(CampaignIDKey, campaignID))
	}
	if err := uc.repo.Audit().DeleteByCampaign(ctx, campaignID); err != nil {
		return goerr.Wrap(err, "failed to delete campaign audits", goerr.V(CampaignIDKey, campaignID))
	}
	if err := uc.repo.Keyword().DeleteByCampaign(ctx, campaignID); err != nil {
		return goerr.Wrap(err, "failed to delete campaign keywords", goerr.V(CampaignIDKey, campaignID))
	}
	if err := uc.repo.Content().DeleteByCampaign(ctx, campaignID); err != nil {
		return goerr.Wrap(err, "failed to delete campaign content", goerr.V(CampaignIDKey, campaignID))
	}
	if err := uc.repo.Campaign().Delete(ctx, campaignID); err != nil {
		return goerr.Wrap(err, "failed to delete campaign", goerr.V(CampaignIDKey, campaignID))
	}
	return nil
}
