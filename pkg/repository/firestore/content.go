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

type contentRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newContentRepository(client *firestore.Client) *contentRepository {
	return &contentRepository{client: client}
}

func (r *contentRepository) collection() string {
	return prefixed(r.collectionPrefix, "contents")
}

func (r *contentRepository) Create(ctx context.Context, content *model.Content) (*model.Content, error) {
	now := time.Now().UTC()
	created := *content
	created.CreatedAt = now
	created.UpdatedAt = now

	_, err := r.client.Collection(r.collection()).Doc(created.ID.String()).Set(ctx, &created)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create content", goerr.V("id", created.ID))
	}
	return &created, nil
}

func (r *contentRepository) Get(ctx context.Context, id types.ContentID) (*model.Content, error) {
	docSnap, err := r.client.Collection(r.collection()).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "content not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get content", goerr.V("id", id))
	}

	var content model.Content
	if err := docSnap.DataTo(&content); err != nil {
		return nil, goerr.Wrap(err, "failed to decode content", goerr.V("id", id))
	}
	return &content, nil
}

func (r *contentRepository) ListByCampaign(ctx context.Context, campaignID types.CampaignID) ([]*model.Content, error) {
	iter := r.client.Collection(r.collection()).Where("CampaignID", "==", campaignID.String()).Documents(ctx)
	defer iter.Stop()

	contents := []*model.Content{}
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate contents", goerr.V("campaign_id", campaignID))
		}

		var content model.Content
		if err := docSnap.DataTo(&content); err != nil {
			return nil, goerr.Wrap(err, "failed to decode content", goerr.V("doc_id", docSnap.Ref.ID))
		}
		contents = append(contents, &content)
	}
	return contents, nil
}

func (r *contentRepository) Update(ctx context.Context, content *model.Content) (*model.Content, error) {
	docRef := r.client.Collection(r.collection()).Doc(content.ID.String())

	docSnap, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "content not found", goerr.V("id", content.ID))
		}
		return nil, goerr.Wrap(err, "failed to check content existence", goerr.V("id", content.ID))
	}

	var existing model.Content
	if err := docSnap.DataTo(&existing); err != nil {
		return nil, goerr.Wrap(err, "failed to decode content", goerr.V("id", content.ID))
	}

	updated := *content
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	if _, err := docRef.Set(ctx, &updated); err != nil {
		return nil, goerr.Wrap(err, "failed to update content", goerr.V("id", content.ID))
	}
	return &updated, nil
}

func (r *contentRepository) DetachProfile(ctx context.Context, profileID types.ProfileID) error {
	iter := r.client.Collection(r.collection()).Where("AssignedTo", "==", profileID.String()).Documents(ctx)
	defer iter.Stop()

	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return goerr.Wrap(err, "failed to iterate contents", goerr.V("profile_id", profileID))
		}
		if _, err := docSnap.Ref.Update(ctx, []firestore.Update{{Path: "AssignedTo", Value: ""}}); err != nil {
			return goerr.Wrap(err, "failed to detach profile from content", goerr.V("doc_id", docSnap.Ref.ID))
		}
	}
	return nil
}

func (r *contentRepository) DeleteByCampaign(ctx context.Context, campaignID types.CampaignID) error {
	iter := r.client.Collection(r.collection()).Where("CampaignID", "==", campaignID.String()).Documents(ctx)
	defer iter.Stop()

	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return goerr.Wrap(err, "failed to iterate contents", goerr.V("campaign_id", campaignID))
		}
		if _, err := docSnap.Ref.Delete(ctx); err != nil {
			return goerr.Wrap(err, "failed to delete content", goerr.V("doc_id", docSnap.Ref.ID))
		}
	}
	return nil
}
