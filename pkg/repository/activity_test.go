package repository_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/seoward-lab/seoward/pkg/domain/interfaces"
	"github.com/seoward-lab/seoward/pkg/domain/model"
	"github.com/seoward-lab/seoward/pkg/domain/types"
)

func runActivityRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	newEntry := func(orgID types.OrgID, campaignID types.CampaignID, action string) *model.ActivityEntry {
		return &model.ActivityEntry{
			ID:             types.NewActivityID(),
			OrganizationID: orgID,
			CampaignID:     campaignID,
			ActorID:        types.NewProfileID(),
			Action:         action,
			EntityType:     types.EntityTask,
			EntityID:       types.NewTaskID().String(),
		}
	}

	t.Run("Append and list by organization", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()
		orgID := types.NewOrgID()

		appended, err := repo.Activity().Append(ctx, newEntry(orgID, types.NewCampaignID(), model.ActivityCreated))
		gt.NoError(t, err).Required()
		gt.Bool(t, appended.CreatedAt.IsZero()).False()

		entries, err := repo.Activity().ListByOrganization(ctx, orgID)
		gt.NoError(t, err).Required()
		gt.Array(t, entries).Length(1)
		gt.Value(t, entries[0].Action).Equal(model.ActivityCreated)
	})

	t.Run("ListByCampaign scopes and orders newest first", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()
		orgID := types.NewOrgID()
		campaignID := types.NewCampaignID()

		for i := 0; i < 3; i++ {
			_, err := repo.Activity().Append(ctx, newEntry(orgID, campaignID, fmt.Sprintf("step-%d", i)))
			gt.NoError(t, err).Required()
		}
		_, err := repo.Activity().Append(ctx, newEntry(orgID, types.NewCampaignID(), model.ActivityMerged))
		gt.NoError(t, err).Required()

		entries, err := repo.Activity().ListByCampaign(ctx, campaignID)
		gt.NoError(t, err).Required()
		gt.Array(t, entries).Length(3)
		gt.Value(t, entries[0].Action).Equal("step-2")
		gt.Value(t, entries[2].Action).Equal("step-0")
	})

	t.Run("Append rejects malformed entries", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		entry := newEntry(types.NewOrgID(), types.NewCampaignID(), model.ActivityCreated)
		entry.ActorID = ""

		_, err := repo.Activity().Append(ctx, entry)
		gt.Error(t, err).Is(model.ErrMalformedActivityEntry)

		entries, err := repo.Activity().ListByOrganization(ctx, entry.OrganizationID)
		gt.NoError(t, err).Required()
		gt.Array(t, entries).Length(0)
	})
}

func TestActivityRepository_Memory(t *testing.T) {
	runActivityRepositoryTest(t, newMemoryRepo)
}

func TestActivityRepository_Firestore(t *testing.T) {
	runActivityRepositoryTest(t, newFirestoreRepo)
}
