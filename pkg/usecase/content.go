package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/seoward-lab/seoward/pkg/domain/interfaces"
	"github.com/seoward-lab/seoward/pkg/domain/model"
	"github.com/seoward-lab/seoward/pkg/domain/types"
	"github.com/seoward-lab/seoward/pkg/service/authz"
)

type ContentUseCase struct {
	repo     interfaces.Repository
	activity *ActivityUseCase
}

func NewContentUseCase(repo interfaces.Repository, activity *ActivityUseCase) *ContentUseCase {
	return &ContentUseCase{repo: repo, activity: activity}
}

// Create registers a content piece for a campaign, starting at brief
func (uc *ContentUseCase) Create(ctx context.Context, p model.Principal, content *model.Content) (*model.Content, error) {
	orgID, err := uc.campaignOrg(ctx, content.CampaignID)
	if err != nil {
		return nil, err
	}
	if p.OrganizationID != orgID {
		return nil, goerr.Wrap(ErrAccessDenied, "cannot create content", goerr.V("title", content.Title))
	}

	if content.ID == "" {
		content.ID = types.NewContentID()
	}
	if content.Status == "" {
		content.Status = types.ContentStatusBrief
	}
	if err := content.Validate(); err != nil {
		return nil, err
	}
	return uc.repo.Content().Create(ctx, content)
}

// Get retrieves a content piece visible to the principal
func (uc *ContentUseCase) Get(ctx context.Context, p model.Principal, id types.ContentID) (*model.Content, error) {
	content, err := uc.repo.Content().Get(ctx, id)
	if err != nil {
		return nil, err
	}
	orgID, err := uc.campaignOrg(ctx, content.CampaignID)
	if err != nil {
		return nil, err
	}
	if !authz.Can(p, types.ActionRead, authz.ContentResource(content, orgID)) {
		return nil, goerr.Wrap(ErrAccessDenied, "cannot read content", goerr.V("content_id", id))
	}
	return content, nil
}

// RecordTransition records a lifecycle status change. Transitions are
// recorded, not policed; the status only has to be a known one. The
// published timestamp is stamped on the transition to published.
func (uc *ContentUseCase) RecordTransition(ctx context.Context, p model.Principal, id types.ContentID, to types.ContentStatus, publishedURL string) (*model.Content, error) {
	if !to.IsValid() {
		return nil, goerr.Wrap(types.ErrInvalidStatus, "unknown content status", goerr.V("status", to))
	}

	content, err := uc.repo.Content().Get(ctx, id)
	if err != nil {
		return nil, err
	}
	orgID, err := uc.campaignOrg(ctx, content.CampaignID)
	if err != nil {
		return nil, err
	}
	if p.OrganizationID != orgID {
		return nil, goerr.Wrap(ErrAccessDenied, "cannot transition content", goerr.V("content_id", id))
	}

	from := content.Status
	content.Status = to
	if to == types.ContentStatusPublished {
		now := time.Now().UTC()
		content.PublishedAt = &now
		if publishedURL != "" {
			content.PublishedURL = publishedURL
		}
	}

	updated, err := uc.repo.Content().Update(ctx, content)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to transition content", goerr.V("content_id", id))
	}

	if from != to {
		if _, err := uc.activity.Record(ctx, orgID, updated.CampaignID, p.ID, model.ActivityUpdated,
			types.EntityContent, updated.ID.String(), map[string]any{
				"from": from.String(),
				"to":   to.String(),
			}); err != nil {
			return nil, err
		}
	}

	return updated, nil
}

func (uc *ContentUseCase) campaignOrg(ctx context.Context, campaignID types.CampaignID) (types.OrgID, error) {
	campaign, err := uc.repo.Campaign().Get(ctx, campaignID)
	if err != nil {
		return "", goerr.Wrap(err, "failed to resolve campaign", goerr.V(CampaignIDKey, campaignID))
	}
	return campaign.OrganizationID, nil
}
