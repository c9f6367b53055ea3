package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/seoward-lab/seoward/pkg/domain/interfaces"
	"github.com/seoward-lab/seoward/pkg/domain/model"
	"github.com/seoward-lab/seoward/pkg/domain/types"
)

func runAuditRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("Create and Get round trip", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		audit := &model.Audit{
			ID:             types.NewAuditID(),
			CampaignID:     types.NewCampaignID(),
			Type:           types.AuditTypeTechnical,
			Status:         types.AuditStatusPending,
			ExternalTaskID: "crawl-42",
			CreatedBy:      types.NewProfileID(),
		}

		_, err := repo.Audit().Create(ctx, audit)
		gt.NoError(t, err).Required()

		got, err := repo.Audit().Get(ctx, audit.ID)
		gt.NoError(t, err).Required()
		gt.Value(t, got.Status).Equal(types.AuditStatusPending)
		gt.Value(t, got.ExternalTaskID).Equal("crawl-42")
		gt.Value(t, got.CompletedAt).Equal((*time.Time)(nil))
	})

	t.Run("Update persists status and CompletedAt", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		audit := &model.Audit{
			ID:         types.NewAuditID(),
			CampaignID: types.NewCampaignID(),
			Type:       types.AuditTypeContent,
			Status:     types.AuditStatusRunning,
		}
		created, err := repo.Audit().Create(ctx, audit)
		gt.NoError(t, err).Required()

		gt.NoError(t, created.Transition(types.AuditStatusCompleted, time.Now()))
		updated, err := repo.Audit().Update(ctx, created)
		gt.NoError(t, err).Required()
		gt.Value(t, updated.Status).Equal(types.AuditStatusCompleted)
		gt.Bool(t, updated.CompletedAt == nil).False()
	})

	t.Run("ListByCampaign scopes to campaign", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()
		campaignID := types.NewCampaignID()

		for i := 0; i < 2; i++ {
			_, err := repo.Audit().Create(ctx, &model.Audit{
				ID: types.NewAuditID(), CampaignID: campaignID,
				Type: types.AuditTypeTechnical, Status: types.AuditStatusPending,
			})
			gt.NoError(t, err).Required()
		}
		_, err := repo.Audit().Create(ctx, &model.Audit{
			ID: types.NewAuditID(), CampaignID: types.NewCampaignID(),
			Type: types.AuditTypeTechnical, Status: types.AuditStatusPending,
		})
		gt.NoError(t, err).Required()

		audits, err := repo.Audit().ListByCampaign(ctx, campaignID)
		gt.NoError(t, err).Required()
		gt.Array(t, audits).Length(2)
	})

	t.Run("ListRunningBefore finds only stale running audits", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		running, err := repo.Audit().Create(ctx, &model.Audit{
			ID: types.NewAuditID(), CampaignID: types.NewCampaignID(),
			Type: types.AuditTypeTechnical, Status: types.AuditStatusRunning,
		})
		gt.NoError(t, err).Required()

		_, err = repo.Audit().Create(ctx, &model.Audit{
			ID: types.NewAuditID(), CampaignID: types.NewCampaignID(),
			Type: types.AuditTypeTechnical, Status: types.AuditStatusPending,
		})
		gt.NoError(t, err).Required()

		stale, err := repo.Audit().ListRunningBefore(ctx, time.Now().Add(time.Minute))
		gt.NoError(t, err).Required()
		gt.Array(t, stale).Length(1)
		gt.Value(t, stale[0].ID).Equal(running.ID)

		none, err := repo.Audit().ListRunningBefore(ctx, time.Now().Add(-time.Hour))
		gt.NoError(t, err).Required()
		gt.Array(t, none).Length(0)
	})

	t.Run("DeleteByCampaign cascades", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()
		campaignID := types.NewCampaignID()

		audit, err := repo.Audit().Create(ctx, &model.Audit{
			ID: types.NewAuditID(), CampaignID: campaignID,
			Type: types.AuditTypeTechnical, Status: types.AuditStatusPending,
		})
		gt.NoError(t, err).Required()

		gt.NoError(t, repo.Audit().DeleteByCampaign(ctx, campaignID))

		_, err = repo.Audit().Get(ctx, audit.ID)
		gt.Error(t, err).Is(interfaces.ErrNotFound)
	})
}

func TestAuditRepository_Memory(t *testing.T) {
	runAuditRepositoryTest(t, newMemoryRepo)
}

func TestAuditRepository_Firestore(t *testing.T) {
	runAuditRepositoryTest(t, newFirestoreRepo)
}
