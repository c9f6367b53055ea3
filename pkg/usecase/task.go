package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/seoward-lab/seoward/pkg/domain/interfaces"
	"github.com/seoward-lab/seoward/pkg/domain/model"
	"github.com/seoward-lab/seoward/pkg/domain/types"
	"github.com/seoward-lab/seoward/pkg/service/authz"
)

type TaskUseCase struct {
	repo     interfaces.Repository
	activity *ActivityUseCase
}

func NewTaskUseCase(repo interfaces.Repository, activity *ActivityUseCase) *TaskUseCase {
	return &TaskUseCase{repo: repo, activity: activity}
}

// Create creates a task by hand, outside the audit pipeline. Manager
// only.
func (uc *TaskUseCase) Create(ctx context.Context, p model.Principal, task *model.Task) (*model.Task, error) {
	orgID, err := uc.campaignOrg(ctx, task.CampaignID)
	if err != nil {
		return nil, err
	}
	if !authz.Can(p, types.ActionCreate, authz.TaskResource(task, orgID)) {
		return nil, goerr.Wrap(ErrAccessDenied, "cannot create task", goerr.V("title", task.Title))
	}

	if task.ID == "" {
		task.ID = types.NewTaskID()
	}
	task.CreatedBy = p.ID
	if task.Status == "" {
		task.Status = types.TaskStatusPending
	}
	if err := task.Validate(); err != nil {
		return nil, err
	}

	created, err := uc.repo.Task().Create(ctx, task)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create task", goerr.V("title", task.Title))
	}

	if _, err := uc.activity.Record(ctx, orgID, task.CampaignID, p.ID, model.ActivityCreated,
		types.EntityTask, created.ID.String(), map[string]any{"title": created.Title}); err != nil {
		return nil, err
	}

	return created, nil
}

// Get retrieves a task visible to the principal
func (uc *TaskUseCase) Get(ctx context.Context, p model.Principal, id types.TaskID) (*model.Task, error) {
	task, err := uc.repo.Task().Get(ctx, id)
	if err != nil {
		return nil, err
	}
	orgID, err := uc.campaignOrg(ctx, task.CampaignID)
	if err != nil {
		return nil, err
	}
	if !authz.Can(p, types.ActionRead, authz.TaskResource(task, orgID)) {
		return nil, goerr.Wrap(ErrAccessDenied, "cannot read task", goerr.V(TaskIDKey, id))
	}
	return task, nil
}

// ListByCampaign returns the campaign's tasks the principal may see
func (uc *TaskUseCase) ListByCampaign(ctx context.Context, p model.Principal, campaignID types.CampaignID) ([]*model.Task, error) {
	orgID, err := uc.campaignOrg(ctx, campaignID)
	if err != nil {
		return nil, err
	}

	all, err := uc.repo.Task().ListByCampaign(ctx, campaignID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list tasks", goerr.V(CampaignIDKey, campaignID))
	}

	visible := []*model.Task{}
	for _, task := range all {
		if authz.Can(p, types.ActionRead, authz.TaskResource(task, orgID)) {
			visible = append(visible, task)
		}
	}
	return visible, nil
}

// ListMine returns the tasks assigned directly to the principal
func (uc *TaskUseCase) ListMine(ctx context.Context, p model.Principal) ([]*model.Task, error) {
	return uc.repo.Task().ListByAssignee(ctx, p.ID)
}

// Update applies changes to a task. Allowed for the assignee or a
// manager; status transitions are recorded in the activity log.
func (uc *TaskUseCase) Update(ctx context.Context, p model.Principal, task *model.Task) (*model.Task, error) {
	existing, err := uc.repo.Task().Get(ctx, task.ID)
	if err != nil {
		return nil, err
	}
	orgID, err := uc.campaignOrg(ctx, existing.CampaignID)
	if err != nil {
		return nil, err
	}
	if !authz.Can(p, types.ActionUpdate, authz.TaskResource(existing, orgID)) {
		return nil, goerr.Wrap(ErrAccessDenied, "cannot update task", goerr.V(TaskIDKey, task.ID))
	}

	// campaign binding is immutable
	task.CampaignID = existing.CampaignID
	task.CreatedBy = existing.CreatedBy
	if err := task.Validate(); err != nil {
		return nil, err
	}

	updated, err := uc.repo.Task().Update(ctx, task)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update task", goerr.V(TaskIDKey, task.ID))
	}

	if existing.Status != updated.Status {
		action := model.ActivityUpdated
		if updated.Status == types.TaskStatusDone {
			action = model.ActivityCompleted
		}
		if _, err := uc.activity.Record(ctx, orgID, updated.CampaignID, p.ID, action,
			types.EntityTask, updated.ID.String(), map[string]any{
				"from": existing.Status.String(),
				"to":   updated.Status.String(),
			}); err != nil {
			return nil, err
		}
	}

	return updated, nil
}

func (uc *TaskUseCase) campaignOrg(ctx context.Context, campaignID types.CampaignID) (types.OrgID, error) {
	campaign, err := uc.repo.Campaign().Get(ctx, campaignID)
	if err != nil {
		return "", goerr.Wrap(err, "failed to resolve campaign", goerr.V(CampaignIDKey, campaignID))
	}
	return campaign.OrganizationID, nil
}
