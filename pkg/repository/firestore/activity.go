package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/seoward-lab/seoward/pkg/domain/model"
	"github.com/seoward-lab/seoward/pkg/domain/types"
	"google.golang.org/api/iterator"
)

type activityRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newActivityRepository(client *firestore.Client) *activityRepository {
	return &activityRepository{client: client}
}

func (r *activityRepository) collection() string {
	return prefixed(r.collectionPrefix, "activities")
}

func (r *activityRepository) Append(ctx context.Context, entry *model.ActivityEntry) (*model.ActivityEntry, error) {
	if err := entry.Validate(); err != nil {
		return nil, goerr.Wrap(err, "refusing to append activity entry")
	}

	appended := *entry
	appended.CreatedAt = time.Now().UTC()

	_, err := r.client.Collection(r.collection()).Doc(appended.ID.String()).Create(ctx, &appended)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to append activity entry", goerr.V("id", appended.ID))
	}
	return &appended, nil
}

func (r *activityRepository) ListByOrganization(ctx context.Context, orgID types.OrgID) ([]*model.ActivityEntry, error) {
	iter := r.client.Collection(r.collection()).
		Where("OrganizationID", "==", orgID.String()).
		OrderBy("CreatedAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	return r.collect(iter)
}

func (r *activityRepository) ListByCampaign(ctx context.Context, campaignID types.CampaignID) ([]*model.ActivityEntry, error) {
	iter := r.client.Collection(r.collection()).
		Where("CampaignID", "==", campaignID.String()).
		OrderBy("CreatedAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	return r.collect(iter)
}

func (r *activityRepository) collect(iter *firestore.DocumentIterator) ([]*model.ActivityEntry, error) {
	entries := []*model.ActivityEntry{}
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate activity entries")
		}

		var entry model.ActivityEntry
		if err := docSnap.DataTo(&entry); err != nil {
			return nil, goerr.Wrap(err, "failed to decode activity entry", goerr.V("doc_id", docSnap.Ref.ID))
		}
		entries = append(entries, &entry)
	}
	return entries, nil
}
