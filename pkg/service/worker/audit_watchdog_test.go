package worker_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/seoward-lab/seoward/pkg/domain/model"
	"github.com/seoward-lab/seoward/pkg/domain/types"
	"github.com/seoward-lab/seoward/pkg/repository/memory"
	"github.com/seoward-lab/seoward/pkg/service/worker"
	"github.com/seoward-lab/seoward/pkg/usecase"
)

func TestAuditWatchdogSweep(t *testing.T) {
	ctx := context.Background()

	repo := memory.New()
	uc := usecase.New(repo)

	org, err := repo.Organization().Create(ctx, &model.Organization{
		ID:      types.NewOrgID(),
		Name:    "Acme SEO",
		Slug:    "acme-seo",
		OwnerID: types.NewProfileID(),
	})
	gt.NoError(t, err).Required()

	campaign, err := repo.Campaign().Create(ctx, &model.Campaign{
		ID:             types.NewCampaignID(),
		OrganizationID: org.ID,
		Name:           "Acme relaunch",
		Domain:         "acme.example.com",
		Status:         types.CampaignStatusActive,
	})
	gt.NoError(t, err).Required()

	newRunning := func(t *testing.T) *model.Audit {
		t.Helper()
		audit, err := repo.Audit().Create(ctx, &model.Audit{
			ID:         types.NewAuditID(),
			CampaignID: campaign.ID,
			Type:       types.AuditTypeTechnical,
			Status:     types.AuditStatusRunning,
		})
		gt.NoError(t, err).Required()
		return audit
	}

	stale := newRunning(t)
	fresh := newRunning(t)

	// a fresh update keeps the second audit inside the deadline window
	time.Sleep(20 * time.Millisecond)
	_, err = repo.Audit().Update(ctx, fresh)
	gt.NoError(t, err).Required()

	wd := worker.NewAuditWatchdog(repo, uc.Audit, 10*time.Millisecond, time.Hour)
	gt.NoError(t, wd.Sweep(ctx)).Required()

	got, err := repo.Audit().Get(ctx, stale.ID)
	gt.NoError(t, err).Required()
	gt.Value(t, got.Status).Equal(types.AuditStatusFailed)

	got, err = repo.Audit().Get(ctx, fresh.ID)
	gt.NoError(t, err).Required()
	gt.Value(t, got.Status).Equal(types.AuditStatusRunning)

	entries, err := repo.Activity().ListByCampaign(ctx, campaign.ID)
	gt.NoError(t, err).Required()
	gt.Array(t, entries).Length(1)
	gt.Value(t, entries[0].Action).Equal(model.ActivityFailed)
	gt.Value(t, entries[0].ActorID).Equal(types.ProfileID("system"))
}
