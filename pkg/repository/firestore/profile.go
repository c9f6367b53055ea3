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

type profileRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newProfileRepository(client *firestore.Client) *profileRepository {
	return &profileRepository{client: client}
}

func (r *profileRepository) collection() string {
	return prefixed(r.collectionPrefix, "profiles")
}

func (r *profileRepository) Create(ctx context.Context, profile *model.Profile) (*model.Profile, error) {
	now := time.Now().UTC()
	created := *profile
	created.CreatedAt = now
	created.UpdatedAt = now

	_, err := r.client.Collection(r.collection()).Doc(created.ID.String()).Set(ctx, &created)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create profile", goerr.V("id", created.ID))
	}
	return &created, nil
}

func (r *profileRepository) Get(ctx context.Context, id types.ProfileID) (*model.Profile, error) {
	docSnap, err := r.client.Collection(r.collection()).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "profile not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get profile", goerr.V("id", id))
	}

	var profile model.Profile
	if err := docSnap.DataTo(&profile); err != nil {
		return nil, goerr.Wrap(err, "failed to decode profile", goerr.V("id", id))
	}
	return &profile, nil
}

func (r *profileRepository) ListByOrganization(ctx context.Context, orgID types.OrgID) ([]*model.Profile, error) {
	iter := r.client.Collection(r.collection()).Where("OrganizationID", "==", orgID.String()).Documents(ctx)
	defer iter.Stop()

	profiles := []*model.Profile{}
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate profiles", goerr.V("org_id", orgID))
		}

		var profile model.Profile
		if err := docSnap.DataTo(&profile); err != nil {
			return nil, goerr.Wrap(err, "failed to decode profile", goerr.V("doc_id", docSnap.Ref.ID))
		}
		profiles = append(profiles, &profile)
	}
	return profiles, nil
}

func (r *profileRepository) Update(ctx context.Context, profile *model.Profile) (*model.Profile, error) {
	docRef := r.client.Collection(r.collection()).Doc(profile.ID.String())

	docSnap, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "profile not found", goerr.V("id", profile.ID))
		}
		return nil, goerr.Wrap(err, "failed to check profile existence", goerr.V("id", profile.ID))
	}

	var existing model.Profile
	if err := docSnap.DataTo(&existing); err != nil {
		return nil, goerr.Wrap(err, "failed to decode profile", goerr.V("id", profile.ID))
	}

	updated := *profile
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	if _, err := docRef.Set(ctx, &updated); err != nil {
		return nil, goerr.Wrap(err, "failed to update profile", goerr.V("id", profile.ID))
	}
	return &updated, nil
}

func (r *profileRepository) Delete(ctx context.Context, id types.ProfileID) error {
	docRef := r.client.Collection(r.collection()).Doc(id.String())

	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(ErrNotFound, "profile not found", goerr.V("id", id))
		}
		return goerr.Wrap(err, "failed to check profile existence", goerr.V("id", id))
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete profile", goerr.V("id", id))
	}
	return nil
}
