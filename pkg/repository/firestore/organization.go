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

type organizationRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newOrganizationRepository(client *firestore.Client) *organizationRepository {
	return &organizationRepository{client: client}
}

func (r *organizationRepository) collection() string {
	return prefixed(r.collectionPrefix, "organizations")
}

func (r *organizationRepository) Create(ctx context.Context, org *model.Organization) (*model.Organization, error) {
	// slug uniqueness check and write in one transaction
	now := time.Now().UTC()
	created := *org
	created.CreatedAt = now
	created.UpdatedAt = now

	col := r.client.Collection(r.collection())
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		query := col.Where("Slug", "==", org.Slug).Limit(1)
		docs, err := tx.Documents(query).GetAll()
		if err != nil {
			return goerr.Wrap(err, "failed to check slug", goerr.V("slug", org.Slug))
		}
		if len(docs) > 0 {
			return goerr.Wrap(ErrSlugTaken, "organization slug is in use", goerr.V("slug", org.Slug))
		}
		return tx.Set(col.Doc(created.ID.String()), &created)
	})
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *organizationRepository) Get(ctx context.Context, id types.OrgID) (*model.Organization, error) {
	docSnap, err := r.client.Collection(r.collection()).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "organization not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get organization", goerr.V("id", id))
	}

	var org model.Organization
	if err := docSnap.DataTo(&org); err != nil {
		return nil, goerr.Wrap(err, "failed to decode organization", goerr.V("id", id))
	}
	return &org, nil
}

func (r *organizationRepository) GetBySlug(ctx context.Context, slug string) (*model.Organization, error) {
	iter := r.client.Collection(r.collection()).Where("Slug", "==", slug).Limit(1).Documents(ctx)
	defer iter.Stop()

	docSnap, err := iter.Next()
	if err == iterator.Done {
		return nil, goerr.Wrap(ErrNotFound, "organization not found", goerr.V("slug", slug))
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query organization", goerr.V("slug", slug))
	}

	var org model.Organization
	if err := docSnap.DataTo(&org); err != nil {
		return nil, goerr.Wrap(err, "failed to decode organization", goerr.V("slug", slug))
	}
	return &org, nil
}

func (r *organizationRepository) Update(ctx context.Context, org *model.Organization) (*model.Organization, error) {
	docRef := r.client.Collection(r.collection()).Doc(org.ID.String())

	docSnap, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "organization not found", goerr.V("id", org.ID))
		}
		return nil, goerr.Wrap(err, "failed to check organization existence", goerr.V("id", org.ID))
	}

	var existing model.Organization
	if err := docSnap.DataTo(&existing); err != nil {
		return nil, goerr.Wrap(err, "failed to decode organization", goerr.V("id", org.ID))
	}

	updated := *org
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	if _, err := docRef.Set(ctx, &updated); err != nil {
		return nil, goerr.Wrap(err, "failed to update organization", goerr.V("id", org.ID))
	}
	return &updated, nil
}

func (r *organizationRepository) Delete(ctx context.Context, id types.OrgID) error {
	docRef := r.client.Collection(r.collection()).Doc(id.String())

	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(ErrNotFound, "organization not found", goerr.V("id", id))
		}
		return goerr.Wrap(err, "failed to check organization existence", goerr.V("id", id))
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete organization", goerr.V("id", id))
	}
	return nil
}
