package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/seoward-lab/seoward/pkg/domain/model"
	"github.com/seoward-lab/seoward/pkg/domain/types"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type campaignRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newCampaignRepository(client *firestore.Client) *campaignRepository {
	return &campaignRepository{client: client}
}

func (r *campaignRepository) collection() string {
	return prefixed(r.collectionPrefix, "campaigns")
}

func (r *campaignRepository) Create(ctx context.Context, campaign *model.Campaign) (*model.Campaign, error) {
	now := time.Now().UTC()
	created := *campaign
	created.CreatedAt = now
	created.UpdatedAt = now

	_, err := r.client.Collection(r.collection()).Doc(created.ID.String()).Set(ctx, &created)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create campaign", goerr.V("id", created.ID))
	}
	return &created, nil
}

func (r *campaignRepository) Get(ctx context.Context, id types.CampaignID) (*model.Campaign, error) {
	docSnap, err := r.client.Collection(r.collection()).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "campaign not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get campaign", goerr.V("id", id))
	}

	var campaign model.Campaign
	if err := docSnap.DataTo(&campaign); err != nil {
		return nil, goerr.Wrap(err, "failed to decode campaign", goerr.V("id", id))
	}
	return &campaign, nil
}

func (r *campaignRepository) ListByOrganization(ctx context.Context, orgID types.OrgID) ([]*model.Campaign, error) {
	iter := r.client.Collection(r.collection()).Where("OrganizationID", "==", orgID.String()).Documents(ctx)
	defer iter.Stop()

	campaigns := []*model.Campaign{}
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate campaigns", goerr.V("org_id", orgID))
		}

		var campaign model.Campaign
		if err := docSnap.DataTo(&campaign); err != nil {
			return nil, goerr.Wrap(err, "failed to decode campaign", goerr.V("doc_id", docSnap.Ref.ID))
		}
		campaigns = append(campaigns, &campaign)
	}
	return campaigns, nil
}

func (r *campaignRepository) Update(ctx context.Context, campaign *model.Campaign) (*model.Campaign, error) {
	docRef := r.client.Collection(r.collection()).Doc(campaign.ID.String())

	docSnap, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "campaign not found", goerr.V("id", campaign.ID))
		}
		return nil, goerr.Wrap(err, "failed to check campaign existence", goerr.V("id", campaign.ID))
	}

	var existing model.Campaign
	if err := docSnap.DataTo(&existing); err != nil {
		return nil, goerr.Wrap(err, "failed to decode campaign", goerr.V("id", campaign.ID))
	}

	updated := *campaign
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	if _, err := docRef.Set(ctx, &updated); err != nil {
		return nil, goerr.Wrap(err, "failed to update campaign", goerr.V("id", campaign.ID))
	}
	return &updated, nil
}

func (r *campaignRepository) Delete(ctx context.Context, id types.CampaignID) error {
	docRef := r.client.Collection(r.collection()).Doc(id.String())

	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(ErrNotFound, "campaign not found", goerr.V("id", id))
		}
		return goerr.Wrap(err, "failed to check campaign existence", goerr.V("id", id))
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete campaign", goerr.V("id", id))
	}
	return nil
}
