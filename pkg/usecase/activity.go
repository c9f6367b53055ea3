package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/seoward-lab/seoward/pkg/domain/interfaces"
	"github.com/seoward-lab/seoward/pkg/domain/model"
	"github.com/seoward-lab/seoward/pkg/domain/types"
	"github.com/seoward-lab/seoward/pkg/service/authz"
)

// systemActor is recorded when an action is driven by the engine
// itself rather than a signed-in profile, such as the audit watchdog.
const systemActor = types.ProfileID("system")

type ActivityUseCase struct {
	repo interfaces.Repository
}

func NewActivityUseCase(repo interfaces.Repository) *ActivityUseCase {
	return &ActivityUseCase{repo: repo}
}

// Record appends one immutable activity entry. Malformed entries
// surface an error rather than being dropped; activity history is
// relied upon for compliance.
func (uc *ActivityUseCase) Record(ctx context.Context, orgID types.OrgID, campaignID types.CampaignID, actor types.ProfileID, action string, entityType types.EntityKind, entityID string, details map[string]any) (*model.ActivityEntry, error) {
	entry := &model.ActivityEntry{
		ID:             types.NewActivityID(),
		OrganizationID: orgID,
		CampaignID:     campaignID,
		ActorID:        actor,
		Action:         action,
		EntityType:     entityType,
		EntityID:       entityID,
		Details:        details,
	}

	appended, err := uc.repo.Activity().Append(ctx, entry)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to record activity",
			goerr.V("action", action), goerr.V("entity_type", entityType))
	}
	return appended, nil
}

// ListByOrganization returns the organization's activity history,
// newest first.
func (uc *ActivityUseCase) ListByOrganization(ctx context.Context, p model.Principal, orgID types.OrgID) ([]*model.ActivityEntry, error) {
	probe := authz.Resource{Kind: types.EntityActivity, OrganizationID: orgID}
	if !authz.Can(p, types.ActionRead, probe) {
		return nil, goerr.Wrap(ErrAccessDenied, "cannot read activity", goerr.V("org_id", orgID))
	}
	return uc.repo.Activity().ListByOrganization(ctx, orgID)
}

// ListByCampaign returns a campaign's activity history, newest first
func (uc *ActivityUseCase) ListByCampaign(ctx context.Context, p model.Principal, campaignID types.CampaignID) ([]*model.ActivityEntry, error) {
	campaign, err := uc.repo.Campaign().Get(ctx, campaignID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to resolve campaign", goerr.V(CampaignIDKey, campaignID))
	}

	probe := authz.Resource{Kind: types.EntityActivity, OrganizationID: campaign.OrganizationID}
	if !authz.Can(p, types.ActionRead, probe) {
		return nil, goerr.Wrap(ErrAccessDenied, "cannot read activity", goerr.V(CampaignIDKey, campaignID))
	}
	return uc.repo.Activity().ListByCampaign(ctx, campaignID)
}
