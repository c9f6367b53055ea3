package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/seoward-lab/seoward/pkg/domain/interfaces"
	"github.com/seoward-lab/seoward/pkg/domain/model"
	"github.com/seoward-lab/seoward/pkg/domain/types"
	"github.com/seoward-lab/seoward/pkg/service/authz"
)

type CampaignUseCase struct {
	repo     interfaces.Repository
	activity *ActivityUseCase
}

func NewCampaignUseCase(repo interfaces.Repository, activity *ActivityUseCase) *CampaignUseCase {
	return &CampaignUseCase{repo: repo, activity: activity}
}

// Create creates a campaign in the principal's organization. Manager
// only.
func (uc *CampaignUseCase) Create(ctx context.Context, p model.Principal, name, domain string, settings map[string]any) (*model.Campaign, error) {
	campaign := &model.Campaign{
		ID:             types.NewCampaignID(),
		OrganizationID: p.OrganizationID,
		Name:           name,
		Domain:         domain,
		Status:         types.CampaignStatusActive,
		Settings:       settings,
	}
	if !authz.Can(p, types.ActionCreate, authz.CampaignResource(campaign)) {
		return nil, goerr.Wrap(ErrAccessDenied, "cannot create campaign", goerr.V("name", name))
	}
	if err := campaign.Validate(); err != nil {
		return nil, err
	}

	created, err := uc.repo.Campaign().Create(ctx, campaign)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create campaign", goerr.V("name", name))
	}

	if _, err := uc.activity.Record(ctx, p.OrganizationID, created.ID, p.ID, model.ActivityCreated,
		types.EntityCampaign, created.ID.String(), nil); err != nil {
		return nil, err
	}

	return created, nil
}

// Get retrieves a campaign visible to the principal
func (uc *CampaignUseCase) Get(ctx context.Context, p model.Principal, id types.CampaignID) (*model.Campaign, error) {
	campaign, err := uc.repo.Campaign().Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !authz.Can(p, types.ActionRead, authz.CampaignResource(campaign)) {
		return nil, goerr.Wrap(ErrAccessDenied, "cannot read campaign", goerr.V(CampaignIDKey, id))
	}
	return campaign, nil
}

// List returns the campaigns of the principal's organization
func (uc *CampaignUseCase) List(ctx context.Context, p model.Principal) ([]*model.Campaign, error) {
	if p.OrganizationID == "" {
		return nil, goerr.Wrap(ErrAccessDenied, "principal has no organization")
	}
	return uc.repo.Campaign().ListByOrganization(ctx, p.OrganizationID)
}

// Update applies name, settings and status changes. Manager only;
// status transitions are recorded in the activity log.
func (uc *CampaignUseCase) Update(ctx context.Context, p model.Principal, campaign *model.Campaign) (*model.Campaign, error) {
	existing, err := uc.repo.Campaign().Get(ctx, campaign.ID)
	if err != nil {
		return nil, err
	}
	if !authz.Can(p, types.ActionUpdate, authz.CampaignResource(existing)) {
		return nil, goerr.Wrap(ErrAccessDenied, "cannot update campaign", goerr.V(CampaignIDKey, campaign.ID))
	}

	// organization binding is immutable
	campaign.OrganizationID = existing.OrganizationID
	if err := campaign.Validate(); err != nil {
		return nil, err
	}

	updated, err := uc.repo.Campaign().Update(ctx, campaign)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update campaign", goerr.V(CampaignIDKey, campaign.ID))
	}

	if existing.Status != updated.Status {
		if _, err := uc.activity.Record(ctx, existing.OrganizationID, updated.ID, p.ID, model.ActivityUpdated,
			types.EntityCampaign, updated.ID.String(), map[string]any{
				"from": existing.Status.String(),
				"to":   updated.Status.String(),
			}); err != nil {
			return nil, err
		}
	}

	return updated, nil
}
