package usecase_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/seoward-lab/seoward/pkg/domain/interfaces"
	"github.com/seoward-lab/seoward/pkg/domain/model"
	"github.com/seoward-lab/seoward/pkg/domain/types"
	"github.com/seoward-lab/seoward/pkg/repository/memory"
	"github.com/seoward-lab/seoward/pkg/usecase"
)

func TestOrganizationCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("promotes the owner to admin", func(t *testing.T) {
		repo := memory.New()
		uc := usecase.New(repo)

		owner, err := repo.Profile().Create(ctx, &model.Profile{
			ID:    types.NewProfileID(),
			Email: "owner@example.com",
			Role:  types.RoleViewer,
		})
		gt.NoError(t, err).Required()

		org, err := uc.Organization.Create(ctx, owner.ID, "Bright Side", "bright-side", nil)
		gt.NoError(t, err).Required()
		gt.Value(t, org.OwnerID).Equal(owner.ID)

		updated, err := repo.Profile().Get(ctx, owner.ID)
		gt.NoError(t, err).Required()
		gt.Value(t, updated.Role).Equal(types.RoleAdmin)
		gt.Value(t, updated.OrganizationID).Equal(org.ID)
	})

	t.Run("rejects an owner already attached elsewhere", func(t *testing.T) {
		repo := memory.New()
		uc := usecase.New(repo)

		owner, err := repo.Profile().Create(ctx, &model.Profile{
			ID:    types.NewProfileID(),
			Email: "owner@example.com",
			Role:  types.RoleViewer,
		})
		gt.NoError(t, err).Required()

		_, err = uc.Organization.Create(ctx, owner.ID, "First", "first", nil)
		gt.NoError(t, err).Required()

		_, err = uc.Organization.Create(ctx, owner.ID, "Second", "second", nil)
		gt.Error(t, err)
	})
}

func TestOrganizationDelete(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	audit := f.runningAudit(t)
	_, err := f.uc.Audit.Ingest(ctx, audit.ID, issuePages(types.IssueBroken, 2), nil)
	gt.NoError(t, err).Required()

	keyword, err := f.uc.Keyword.Track(ctx, f.manager, &model.Keyword{
		CampaignID: f.campaign.ID,
		Text:       "seo agency tooling",
	})
	gt.NoError(t, err).Required()

	org, err := f.repo.Organization().Get(ctx, f.manager.OrganizationID)
	gt.NoError(t, err).Required()

	admin := model.Principal{
		ID:             f.manager.ID,
		Role:           types.RoleAdmin,
		OrganizationID: org.ID,
	}
	gt.NoError(t, f.uc.Organization.Delete(ctx, admin, org.ID)).Required()

	_, err = f.repo.Organization().Get(ctx, org.ID)
	gt.Error(t, err).Is(interfaces.ErrNotFound)
	_, err = f.repo.Campaign().Get(ctx, f.campaign.ID)
	gt.Error(t, err).Is(interfaces.ErrNotFound)
	_, err = f.repo.Audit().Get(ctx, audit.ID)
	gt.Error(t, err).Is(interfaces.ErrNotFound)
	_, err = f.repo.Keyword().Get(ctx, keyword.ID)
	gt.Error(t, err).Is(interfaces.ErrNotFound)

	tasks, err := f.repo.Task().ListByCampaign(ctx, f.campaign.ID)
	gt.NoError(t, err).Required()
	gt.Array(t, tasks).Length(0)

	// members survive the cascade but lose their attachment
	profile, err := f.repo.Profile().Get(ctx, f.manager.ID)
	gt.NoError(t, err).Required()
	gt.Value(t, profile.OrganizationID).Equal(types.OrgID(""))
}

func TestProfileDelete(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	specialist, err := f.repo.Profile().Create(ctx, &model.Profile{
		ID:             types.NewProfileID(),
		Email:          "specialist@example.com",
		Role:           types.RoleOptimizationSpecialist,
		OrganizationID: f.manager.OrganizationID,
	})
	gt.NoError(t, err).Required()

	task, err := f.uc.Task.Create(ctx, f.manager, &model.Task{
		CampaignID: f.campaign.ID,
		Type:       types.TaskTypeTechnical,
		Title:      "Tune crawl budget",
		Priority:   types.PriorityMedium,
		AssignedTo: specialist.ID,
	})
	gt.NoError(t, err).Required()

	admin := model.Principal{
		ID:             f.manager.ID,
		Role:           types.RoleAdmin,
		OrganizationID: f.manager.OrganizationID,
	}
	gt.NoError(t, f.uc.Profile.Delete(ctx, admin, specialist.ID)).Required()

	_, err = f.repo.Profile().Get(ctx, specialist.ID)
	gt.Error(t, err).Is(interfaces.ErrNotFound)

	detached, err := f.repo.Task().Get(ctx, task.ID)
	gt.NoError(t, err).Required()
	gt.Value(t, detached.AssignedTo).Equal(types.ProfileID(""))
}
