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

type auditRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newAuditRepository(client *firestore.Client) *auditRepository {
	return &auditRepository{client: client}
}

func (r *auditRepository) collection() string {
	return prefixed(r.collectionPrefix, "audits")
}

func (r *auditRepository) Create(ctx context.Context, audit *model.Audit) (*model.Audit, error) {
	now := time.Now().UTC()
	created := *audit
	created.CreatedAt = now
	created.UpdatedAt = now

	_, err := r.client.Collection(r.collection()).Doc(created.ID.String()).Set(ctx, &created)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create audit", goerr.V("id", created.ID))
	}
	return &created, nil
}

func (r *auditRepository) Get(ctx context.Context, id types.AuditID) (*model.Audit, error) {
	docSnap, err := r.client.Collection(r.collection()).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "audit not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get audit", goerr.V("id", id))
	}

	var audit model.Audit
	if err := docSnap.DataTo(&audit); err != nil {
		return nil, goerr.Wrap(err, "failed to decode audit", goerr.V("id", id))
	}
	return &audit, nil
}

func (r *auditRepository) ListByCampaign(ctx context.Context, campaignID types.CampaignID) ([]*model.Audit, error) {
	iter := r.client.Collection(r.collection()).Where("CampaignID", "==", campaignID.String()).Documents(ctx)
	defer iter.Stop()

	return r.collect(iter, campaignID.String())
}

func (r *auditRepository) ListRunningBefore(ctx context.Context, cutoff time.Time) ([]*model.Audit, error) {
	iter := r.client.Collection(r.collection()).
		Where("Status", "==", types.AuditStatusRunning.String()).
		Where("UpdatedAt", "<", cutoff).
		Documents(ctx)
	defer iter.Stop()

	return r.collect(iter, "running")
}

func (r *auditRepository) collect(iter *firestore.DocumentIterator, scope string) ([]*model.Audit, error) {
	audits := []*model.Audit{}
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate audits", goerr.V("scope", scope))
		}

		var audit model.Audit
		if err := docSnap.DataTo(&audit); err != nil {
			return nil, goerr.Wrap(err, "failed to decode audit", goerr.V("doc_id", docSnap.Ref.ID))
		}
		audits = append(audits, &audit)
	}
	return audits, nil
}

func (r *auditRepository) Update(ctx context.Context, audit *model.Audit) (*model.Audit, error) {
	docRef := r.client.Collection(r.collection()).Doc(audit.ID.String())

	docSnap, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "audit not found", goerr.V("id", audit.ID))
		}
		return nil, goerr.Wrap(err, "failed to check audit existence", goerr.V("id", audit.ID))
	}

	var existing model.Audit
	if err := docSnap.DataTo(&existing); err != nil {
		return nil, goerr.Wrap(err, "failed to decode audit", goerr.V("id", audit.ID))
	}

	updated := *audit
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	if _, err := docRef.Set(ctx, &updated); err != nil {
		return nil, goerr.Wrap(err, "failed to update audit", goerr.V("id", audit.ID))
	}
	return &updated, nil
}

func (r *auditRepository) DetachProfile(ctx context.Context, profileID types.ProfileID) error {
	iter := r.client.Collection(r.collection()).Where("CreatedBy", "==", profileID.String()).Documents(ctx)
	defer iter.Stop()

	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return goerr.Wrap(err, "failed to iterate audits", goerr.V("profile_id", profileID))
		}
		if _, err := docSnap.Ref.Update(ctx, []firestore.Update{{Path: "CreatedBy", Value: ""}}); err != nil {
			return goerr.Wrap(err, "failed to detach profile from audit", goerr.V("doc_id", docSnap.Ref.ID))
		}
	}
	return nil
}

func (r *auditRepository) DeleteByCampaign(ctx context.Context, campaignID types.CampaignID) error {
	iter := r.client.Collection(r.collection()).Where("CampaignID", "==", campaignID.String()).Documents(ctx)
	defer iter.Stop()

	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return goerr.Wrap(err, "failed to iterate audits", goerr.V("campaign_id", campaignID))
		}
		if _, err := docSnap.Ref.Delete(ctx); err != nil {
			return goerr.Wrap(err, "failed to delete audit", goerr.V("doc_id", docSnap.Ref.ID))
		}
	}
	return nil
}
