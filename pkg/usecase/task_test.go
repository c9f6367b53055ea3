package usecase_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/seoward-lab/seoward/pkg/domain/model"
	"github.com/seoward-lab/seoward/pkg/domain/types"
	"github.com/seoward-lab/seoward/pkg/usecase"
)

func TestTaskUpdate(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*fixture, model.Principal, *model.Task) {
		t.Helper()
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
			Title:      "Compress hero images",
			Priority:   types.PriorityHigh,
			AssignedTo: specialist.ID,
		})
		gt.NoError(t, err).Required()

		return f, specialist.Principal(), task
	}

	t.Run("assignee can complete their task", func(t *testing.T) {
		f, assignee, task := setup(t)

		task.Status = types.TaskStatusDone
		updated, err := f.uc.Task.Update(ctx, assignee, task)
		gt.NoError(t, err).Required()
		gt.Value(t, updated.Status).Equal(types.TaskStatusDone)

		entries, err := f.uc.Activity.ListByCampaign(ctx, f.manager, f.campaign.ID)
		gt.NoError(t, err).Required()
		gt.Value(t, entries[0].Action).Equal(model.ActivityCompleted)
		gt.Value(t, entries[0].ActorID).Equal(assignee.ID)
	})

	t.Run("non-assignee member cannot update", func(t *testing.T) {
		f, _, task := setup(t)

		other := model.Principal{
			ID:             types.NewProfileID(),
			Role:           types.RoleContentStrategist,
			OrganizationID: f.manager.OrganizationID,
		}
		task.Status = types.TaskStatusInProgress
		_, err := f.uc.Task.Update(ctx, other, task)
		gt.Error(t, err).Is(usecase.ErrAccessDenied)
	})

	t.Run("campaign binding is immutable", func(t *testing.T) {
		f, _, task := setup(t)

		stranger, err := f.uc.Campaign.Create(ctx, f.manager, "Side project", "side.example.com", nil)
		gt.NoError(t, err).Required()

		task.CampaignID = stranger.ID
		updated, err := f.uc.Task.Update(ctx, f.manager, task)
		gt.NoError(t, err).Required()
		gt.Value(t, updated.CampaignID).Equal(f.campaign.ID)
	})

	t.Run("viewer cannot create tasks", func(t *testing.T) {
		f, _, _ := setup(t)

		viewer := model.Principal{
			ID:             types.NewProfileID(),
			Role:           types.RoleViewer,
			OrganizationID: f.manager.OrganizationID,
		}
		_, err := f.uc.Task.Create(ctx, viewer, &model.Task{
			CampaignID: f.campaign.ID,
			Type:       types.TaskTypeContent,
			Title:      "Draft pillar page",
			Priority:   types.PriorityLow,
		})
		gt.Error(t, err).Is(usecase.ErrAccessDenied)
	})
}
