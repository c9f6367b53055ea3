package memory

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/seoward-lab/seoward/pkg/domain/model"
	"github.com/seoward-lab/seoward/pkg/domain/types"
)

type taskRepository struct {
	mu    sync.RWMutex
	tasks map[types.TaskID]*model.Task
}

func newTaskRepository() *taskRepository {
	return &taskRepository{
		tasks: make(map[types.TaskID]*model.Task),
	}
}

// copyTask creates a deep copy of a task
func copyTask(t *model.Task) *model.Task {
	checklist := make([]model.ChecklistItem, len(t.Checklist))
	copy(checklist, t.Checklist)

	copied := &model.Task{
		ID:           t.ID,
		CampaignID:   t.CampaignID,
		Type:         t.Type,
		Title:        t.Title,
		Description:  t.Description,
		Checklist:    checklist,
		AssignedTo:   t.AssignedTo,
		AssignedRole: t.AssignedRole,
		Status:       t.Status,
		Priority:     t.Priority,
		SOP:          t.SOP,
		CreatedBy:    t.CreatedBy,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
	if t.DueDate != nil {
		d := *t.DueDate
		copied.DueDate = &d
	}
	return copied
}

func (r *taskRepository) Create(ctx context.Context, task *model.Task) (*model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.create(task), nil
}

// create stores the task. The caller must hold the write lock.
func (r *taskRepository) create(task *model.Task) *model.Task {
	now := time.Now().UTC()
	created := copyTask(task)
	created.CreatedAt = now
	created.UpdatedAt = now

	r.tasks[created.ID] = created
	return copyTask(created)
}

func (r *taskRepository) CreateOrMerge(ctx context.Context, task *model.Task) (*model.Task, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.tasks {
		if existing.CampaignID != task.CampaignID || !existing.IsOpen() {
			continue
		}
		if existing.Type != task.Type || existing.AssignedRole != task.AssignedRole || existing.Title != task.Title {
			continue
		}

		items := make([]string, 0, len(task.Checklist))
		for _, ci := range task.Checklist {
			items = append(items, ci.Item)
		}
		if existing.MergeChecklist(items) > 0 {
			existing.UpdatedAt = time.Now().UTC()
		}
		return copyTask(existing), true, nil
	}

	return r.create(task), false, nil
}

func (r *taskRepository) Get(ctx context.Context, id types.TaskID) (*model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, exists := r.tasks[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "task not found", goerr.V("id", id))
	}
	return copyTask(t), nil
}

func (r *taskRepository) ListByCampaign(ctx context.Context, campaignID types.CampaignID) ([]*model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tasks := []*model.Task{}
	for _, t := range r.tasks {
		if t.CampaignID == campaignID {
			tasks = append(tasks, copyTask(t))
		}
	}
	return tasks, nil
}

func (r *taskRepository) ListByAssignee(ctx context.Context, profileID types.ProfileID) ([]*model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tasks := []*model.Task{}
	for _, t := range r.tasks {
		if t.AssignedTo == profileID {
			tasks = append(tasks, copyTask(t))
		}
	}
	return tasks, nil
}

func (r *taskRepository) ListOpen(ctx context.Context, campaignID types.CampaignID, taskType types.TaskType, role types.Role) ([]*model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tasks := []*model.Task{}
	for _, t := range r.tasks {
		if t.CampaignID == campaignID && t.IsOpen() && t.Type == taskType && t.AssignedRole == role {
			tasks = append(tasks, copyTask(t))
		}
	}
	return tasks, nil
}

func (r *taskRepository) Update(ctx context.Context, task *model.Task) (*model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.tasks[task.ID]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "task not found", goerr.V("id", task.ID))
	}

	updated := copyTask(task)
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	r.tasks[updated.ID] = updated
	return copyTask(updated), nil
}

func (r *taskRepository) DetachProfile(ctx context.Context, profileID types.ProfileID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, t := range r.tasks {
		if t.AssignedTo == profileID {
			t.AssignedTo = ""
		}
		if t.CreatedBy == profileID {
			t.CreatedBy = ""
		}
	}
	return nil
}

func (r *taskRepository) DeleteByCampaign(ctx context.Context, campaignID types.CampaignID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, t := range r.tasks {
		if t.CampaignID == campaignID {
			delete(r.tasks, id)
		}
	}
	return nil
}
