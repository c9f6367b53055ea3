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

type keywordRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newKeywordRepository(client *firestore.Client) *keywordRepository {
	return &keywordRepository{client: client}
}

func (r *keywordRepository) collection() string {
	return prefixed(r.collectionPrefix, "keywords")
}

func (r *keywordRepository) Create(ctx context.Context, keyword *model.Keyword) (*model.Keyword, error) {
	now := time.Now().UTC()
	created := *keyword
	created.CreatedAt = now
	created.UpdatedAt = now

	_, err := r.client.Collection(r.collection()).Doc(created.ID.String()).Set(ctx, &created)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create keyword", goerr.V("id", created.ID))
	}
	return &created, nil
}

func (r *keywordRepository) Get(ctx context.Context, id types.KeywordID) (*model.Keyword, error) {
	docSnap, err := r.client.Collection(r.collection()).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "keyword not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get keyword", goerr.V("id", id))
	}

	var keyword model.Keyword
	if err := docSnap.DataTo(&keyword); err != nil {
		return nil, goerr.Wrap(err, "failed to decode keyword", goerr.V("id", id))
	}
	return &keyword, nil
}

func (r *keywordRepository) ListByCampaign(ctx context.Context, campaignID types.CampaignID) ([]*model.Keyword, error) {
	iter := r.client.Collection(r.collection()).Where("CampaignID", "==", campaignID.String()).Documents(ctx)
	defer iter.Stop()

	keywords := []*model.Keyword{}
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate keywords", goerr.V("campaign_id", campaignID))
		}

		var keyword model.Keyword
		if err := docSnap.DataTo(&keyword); err != nil {
			return nil, goerr.Wrap(err, "failed to decode keyword", goerr.V("doc_id", docSnap.Ref.ID))
		}
		keywords = append(keywords, &keyword)
	}
	return keywords, nil
}

func (r *keywordRepository) Update(ctx context.Context, keyword *model.Keyword) (*model.Keyword, error) {
	docRef := r.client.Collection(r.collection()).Doc(keyword.ID.String())

	docSnap, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "keyword not found", goerr.V("id", keyword.ID))
		}
		return nil, goerr.Wrap(err, "failed to check keyword existence", goerr.V("id", keyword.ID))
	}

	var existing model.Keyword
	if err := docSnap.DataTo(&existing); err != nil {
		return nil, goerr.Wrap(err, "failed to decode keyword", goerr.V("id", keyword.ID))
	}

	updated := *keyword
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	if _, err := docRef.Set(ctx, &updated); err != nil {
		return nil, goerr.Wrap(err, "failed to update keyword", goerr.V("id", keyword.ID))
	}
	return &updated, nil
}

func (r *keywordRepository) DeleteByCampaign(ctx context.Context, campaignID types.CampaignID) error {
	iter := r.client.Collection(r.collection()).Where("CampaignID", "==", campaignID.String()).Documents(ctx)
	defer iter.Stop()

	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return goerr.Wrap(err, "failed to iterate keywords", goerr.V("campaign_id", campaignID))
		}
		if _, err := docSnap.Ref.Delete(ctx); err != nil {
			return goerr.Wrap(err, "failed to delete keyword", goerr.V("doc_id", docSnap.Ref.ID))
		}
	}
	return nil
}
