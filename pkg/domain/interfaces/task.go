package interfaces

import (
	"context"

	"github.com/seoward-lab/seoward/pkg/domain/model"
	"github.com/seoward-lab/seoward/pkg/domain/types"
)

// TaskRepository defines the interface for Task data access
type TaskRepository interface {
	// Create creates a new task
	Create(ctx context.Context, task *model.Task) (*model.Task, error)

	// CreateOrMerge atomically creates the task unless an open task
	// with the same (campaign, type, assigned role, title) already
	// exists, in which case the candidate's checklist items are merged
	// into the existing task with set semantics. The check-then-act
	// sequence must hold under concurrent invocation. The returned
	// bool is true when the call merged instead of creating.
	CreateOrMerge(ctx context.Context, task *model.Task) (*model.Task, bool, error)

	// Get retrieves a task by ID
	Get(ctx context.Context, id types.TaskID) (*model.Task, error)

	// ListByCampaign retrieves all tasks of a campaign
	ListByCampaign(ctx context.Context, campaignID types.CampaignID) ([]*model.Task, error)

	// ListByAssignee retrieves all tasks assigned to a profile
	ListByAssignee(ctx context.Context, profileID types.ProfileID) ([]*model.Task, error)

	// ListOpen retrieves tasks of the campaign with status other than
	// done, filtered by type and assigned role. Feeds the duplicate
	// suppression check of the task builder.
	ListOpen(ctx context.Context, campaignID types.CampaignID, taskType types.TaskType, role types.Role) ([]*model.Task, error)

	// Update updates an existing task
	Update(ctx context.Context, task *model.Task) (*model.Task, error)

	// DetachProfile clears assignee and creator references to the
	// given profile. Profiles are referenced, not owned.
	DetachProfile(ctx context.Context, profileID types.ProfileID) error

	// DeleteByCampaign deletes all tasks of a campaign (cascade)
	DeleteByCampaign(ctx context.Context, campaignID types.CampaignID) error
}
