// Package firestore is the Google Cloud Firestore persistence backend.
// Documents are keyed by the entity's own identifier; the duplicate
// suppression check of task creation runs inside a Firestore
// transaction so it holds under concurrent audit ingestion.
package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/seoward-lab/seoward/pkg/domain/interfaces"
)

type Firestore struct {
	client       *firestore.Client
	organization *organizationRepository
	profile      *profileRepository
	campaign     *campaignRepository
	audit        *auditRepository
	task         *taskRepository
	keyword      *keywordRepository
	content      *contentRepository
	activity     *activityRepository
}

var _ interfaces.Repository = &Firestore{}

type Option func(*Firestore)

// WithCollectionPrefix namespaces every collection, used to isolate
// test runs sharing one database.
func WithCollectionPrefix(prefix string) Option {
	return func(f *Firestore) {
		f.organization.collectionPrefix = prefix
		f.profile.collectionPrefix = prefix
		f.campaign.collectionPrefix = prefix
		f.audit.collectionPrefix = prefix
		f.task.collectionPrefix = prefix
		f.keyword.collectionPrefix = prefix
		f.content.collectionPrefix = prefix
		f.activity.collectionPrefix = prefix
	}
}

func New(ctx context.Context, projectID string, opts ...Option) (*Firestore, error) {
	client, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client", goerr.V("projectID", projectID))
	}

	f := &Firestore{
		client:       client,
		organization: newOrganizationRepository(client),
		profile:      newProfileRepository(client),
		campaign:     newCampaignRepository(client),
		audit:        newAuditRepository(client),
		task:         newTaskRepository(client),
		keyword:      newKeywordRepository(client),
		content:      newContentRepository(client),
		activity:     newActivityRepository(client),
	}

	for _, opt := range opts {
		opt(f)
	}

	return f, nil
}

func (f *Firestore) Organization() interfaces.OrganizationRepository {
	return f.organization
}

func (f *Firestore) Profile() interfaces.ProfileRepository {
	return f.profile
}

func (f *Firestore) Campaign() interfaces.CampaignRepository {
	return f.campaign
}

func (f *Firestore) Audit() interfaces.AuditRepository {
	return f.audit
}

func (f *Firestore) Task() interfaces.TaskRepository {
	return f.task
}

func (f *Firestore) Keyword() interfaces.KeywordRepository {
	return f.keyword
}

func (f *Firestore) Content() interfaces.ContentRepository {
	return f.content
}

func (f *Firestore) Activity() interfaces.ActivityRepository {
	return f.activity
}

func (f *Firestore) Close() error {
	if f.client != nil {
		return f.client.Close()
	}
	return nil
}

func prefixed(prefix, name string) string {
	if prefix != "" {
		return prefix + "_" + name
	}
	return name
}
