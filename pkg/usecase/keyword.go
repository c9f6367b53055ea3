package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/seoward-lab/seoward/pkg/domain/interfaces"
	"github.com/seoward-lab/seoward/pkg/domain/model"
	"github.com/seoward-lab/seoward/pkg/domain/types"
	"github.com/seoward-lab/seoward/pkg/service/authz"
)

type KeywordUseCase struct {
	repo interfaces.Repository
}

func NewKeywordUseCase(repo interfaces.Repository) *KeywordUseCase {
	return &KeywordUseCase{repo: repo}
}

// Track starts tracking a keyword for a campaign
func (uc *KeywordUseCase) Track(ctx context.Context, p model.Principal, keyword *model.Keyword) (*model.Keyword, error) {
	orgID, err := uc.campaignOrg(ctx, keyword.CampaignID)
	if err != nil {
		return nil, err
	}
	if p.OrganizationID != orgID {
		return nil, goerr.Wrap(ErrAccessDenied, "cannot track keyword", goerr.V("text", keyword.Text))
	}

	if keyword.ID == "" {
		keyword.ID = types.NewKeywordID()
	}
	if err := keyword.Validate(); err != nil {
		return nil, err
	}
	return uc.repo.Keyword().Create(ctx, keyword)
}

// RecordRank stores a new rank snapshot, rolling the current rank into
// the previous one so the delta survives.
func (uc *KeywordUseCase) RecordRank(ctx context.Context, id types.KeywordID, rank int) (*model.Keyword, error) {
	keyword, err := uc.repo.Keyword().Get(ctx, id)
	if err != nil {
		return nil, err
	}

	keyword.PreviousRank = keyword.CurrentRank
	keyword.CurrentRank = rank

	updated, err := uc.repo.Keyword().Update(ctx, keyword)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to record rank", goerr.V("keyword_id", id))
	}
	return updated, nil
}

// ListByCampaign returns the campaign's tracked keywords
func (uc *KeywordUseCase) ListByCampaign(ctx context.Context, p model.Principal, campaignID types.CampaignID) ([]*model.Keyword, error) {
	orgID, err := uc.campaignOrg(ctx, campaignID)
	if err != nil {
		return nil, err
	}

	probe := authz.Resource{Kind: types.EntityKeyword, OrganizationID: orgID}
	if !authz.Can(p, types.ActionRead, probe) {
		return nil, goerr.Wrap(ErrAccessDenied, "cannot read keywords", goerr.V(CampaignIDKey, campaignID))
	}
	return uc.repo.Keyword().ListByCampaign(ctx, campaignID)
}

func (uc *KeywordUseCase) campaignOrg(ctx context.Context, campaignID types.CampaignID) (types.OrgID, error) {
	campaign, err := uc.repo.Campaign().Get(ctx, campaignID)
	if err != nil {
		return "", goerr.Wrap(err, "failed to resolve campaign", goerr.V(CampaignIDKey, campaignID))
	}
	return campaign.OrganizationID, nil
}
