package firestore

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/seoward-lab/seoward/pkg/domain/model"
	"github.com/seoward-lab/seoward/pkg/domain/types"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type taskRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newTaskRepository(client *firestore.Client) *taskRepository {
	return &taskRepository{client: client}
}

func (r *taskRepository) collection() string {
	return prefixed(r.collectionPrefix, "tasks")
}

func (r *taskRepository) indexCollection() string {
	return prefixed(r.collectionPrefix, "task_index")
}

// taskIndexDoc is the pointer document behind the duplicate
// suppression key. Firestore document IDs cannot hold arbitrary task
// titles, so the key is hashed.
type taskIndexDoc struct {
	TaskID string
}

func taskIndexKey(t *model.Task) string {
	key := strings.Join([]string{
		t.CampaignID.String(),
		t.Type.String(),
		t.AssignedRole.String(),
		t.Title,
	}, "|")
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:])
}

func (r *taskRepository) Create(ctx context.Context, task *model.Task) (*model.Task, error) {
	now := time.Now().UTC()
	created := *task
	created.CreatedAt = now
	created.UpdatedAt = now

	batch := r.client.Batch()
	batch.Set(r.client.Collection(r.collection()).Doc(created.ID.String()), &created)
	batch.Set(r.client.Collection(r.indexCollection()).Doc(taskIndexKey(&created)),
		&taskIndexDoc{TaskID: created.ID.String()})

	if _, err := batch.Commit(ctx); err != nil {
		return nil, goerr.Wrap(err, "failed to create task", goerr.V("id", created.ID))
	}
	return &created, nil
}

func (r *taskRepository) CreateOrMerge(ctx context.Context, task *model.Task) (*model.Task, bool, error) {
	idxRef := r.client.Collection(r.indexCollection()).Doc(taskIndexKey(task))

	var result *model.Task
	var merged bool

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		result, merged = nil, false

		existing, err := r.openTaskByIndex(tx, idxRef, task)
		if err != nil {
			return err
		}

		if existing == nil {
			now := time.Now().UTC()
			created := *task
			created.CreatedAt = now
			created.UpdatedAt = now

			if err := tx.Set(r.client.Collection(r.collection()).Doc(created.ID.String()), &created); err != nil {
				return goerr.Wrap(err, "failed to create task", goerr.V("id", created.ID))
			}
			if err := tx.Set(idxRef, &taskIndexDoc{TaskID: created.ID.String()}); err != nil {
				return goerr.Wrap(err, "failed to write task index", goerr.V("id", created.ID))
			}
			result = &created
			return nil
		}

		items := make([]string, 0, len(task.Checklist))
		for _, ci := range task.Checklist {
			items = append(items, ci.Item)
		}
		if existing.MergeChecklist(items) > 0 {
			existing.UpdatedAt = time.Now().UTC()
		}
		if err := tx.Set(r.client.Collection(r.collection()).Doc(existing.ID.String()), existing); err != nil {
			return goerr.Wrap(err, "failed to merge task", goerr.V("id", existing.ID))
		}
		result, merged = existing, true
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return result, merged, nil
}

// openTaskByIndex resolves the duplicate suppression pointer to a live
// open task. A dangling pointer, left behind when a task is closed or
// deleted, resolves to nil so the caller creates anew.
func (r *taskRepository) openTaskByIndex(tx *firestore.Transaction, idxRef *firestore.DocumentRef, candidate *model.Task) (*model.Task, error) {
	idxSnap, err := tx.Get(idxRef)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, goerr.Wrap(err, "failed to read task index")
	}

	var idx taskIndexDoc
	if err := idxSnap.DataTo(&idx); err != nil {
		return nil, goerr.Wrap(err, "failed to decode task index")
	}

	taskSnap, err := tx.Get(r.client.Collection(r.collection()).Doc(idx.TaskID))
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, goerr.Wrap(err, "failed to read indexed task", goerr.V("task_id", idx.TaskID))
	}

	var existing model.Task
	if err := taskSnap.DataTo(&existing); err != nil {
		return nil, goerr.Wrap(err, "failed to decode indexed task", goerr.V("task_id", idx.TaskID))
	}

	if !existing.IsOpen() || existing.Title != candidate.Title {
		return nil, nil
	}
	return &existing, nil
}

func (r *taskRepository) Get(ctx context.Context, id types.TaskID) (*model.Task, error) {
	docSnap, err := r.client.Collection(r.collection()).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "task not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get task", goerr.V("id", id))
	}

	var task model.Task
	if err := docSnap.DataTo(&task); err != nil {
		return nil, goerr.Wrap(err, "failed to decode task", goerr.V("id", id))
	}
	return &task, nil
}

func (r *taskRepository) ListByCampaign(ctx context.Context, campaignID types.CampaignID) ([]*model.Task, error) {
	iter := r.client.Collection(r.collection()).Where("CampaignID", "==", campaignID.String()).Documents(ctx)
	defer iter.Stop()
	return r.collect(iter)
}

func (r *taskRepository) ListByAssignee(ctx context.Context, profileID types.ProfileID) ([]*model.Task, error) {
	iter := r.client.Collection(r.collection()).Where("AssignedTo", "==", profileID.String()).Documents(ctx)
	defer iter.Stop()
	return r.collect(iter)
}

func (r *taskRepository) ListOpen(ctx context.Context, campaignID types.CampaignID, taskType types.TaskType, role types.Role) ([]*model.Task, error) {
	iter := r.client.Collection(r.collection()).
		Where("CampaignID", "==", campaignID.String()).
		Where("Type", "==", taskType.String()).
		Where("AssignedRole", "==", role.String()).
		Documents(ctx)
	defer iter.Stop()

	all, err := r.collect(iter)
	if err != nil {
		return nil, err
	}

	// status filtered client side to avoid a not-equal composite index
	open := []*model.Task{}
	for _, t := range all {
		if t.IsOpen() {
			open = append(open, t)
		}
	}
	return open, nil
}

func (r *taskRepository) collect(iter *firestore.DocumentIterator) ([]*model.Task, error) {
	tasks := []*model.Task{}
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate tasks")
		}

		var task model.Task
		if err := docSnap.DataTo(&task); err != nil {
			return nil, goerr.Wrap(err, "failed to decode task", goerr.V("doc_id", docSnap.Ref.ID))
		}
		tasks = append(tasks, &task)
	}
	return tasks, nil
}

func (r *taskRepository) Update(ctx context.Context, task *model.Task) (*model.Task, error) {
	docRef := r.client.Collection(r.collection()).Doc(task.ID.String())

	docSnap, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "task not found", goerr.V("id", task.ID))
		}
		return nil, goerr.Wrap(err, "failed to check task existence", goerr.V("id", task.ID))
	}

	var existing model.Task
	if err := docSnap.DataTo(&existing); err != nil {
		return nil, goerr.Wrap(err, "failed to decode task", goerr.V("id", task.ID))
	}

	updated := *task
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	if _, err := docRef.Set(ctx, &updated); err != nil {
		return nil, goerr.Wrap(err, "failed to update task", goerr.V("id", task.ID))
	}
	return &updated, nil
}

func (r *taskRepository) DetachProfile(ctx context.Context, profileID types.ProfileID) error {
	for _, field := range []string{"AssignedTo", "CreatedBy"} {
		iter := r.client.Collection(r.collection()).Where(field, "==", profileID.String()).Documents(ctx)

		for {
			docSnap, err := iter.Next()
			if err == iterator.Done {
				break
			}
			if err != nil {
				iter.Stop()
				return goerr.Wrap(err, "failed to iterate tasks", goerr.V("profile_id", profileID))
			}
			if _, err := docSnap.Ref.Update(ctx, []firestore.Update{{Path: field, Value: ""}}); err != nil {
				iter.Stop()
				return goerr.Wrap(err, "failed to detach profile from task", goerr.V("doc_id", docSnap.Ref.ID))
			}
		}
		iter.Stop()
	}
	return nil
}

func (r *taskRepository) DeleteByCampaign(ctx context.Context, campaignID types.CampaignID) error {
	iter := r.client.Collection(r.collection()).Where("CampaignID", "==", campaignID.String()).Documents(ctx)
	defer iter.Stop()

	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return goerr.Wrap(err, "failed to iterate tasks", goerr.V("campaign_id", campaignID))
		}

		var task model.Task
		if err := docSnap.DataTo(&task); err != nil {
			return goerr.Wrap(err, "failed to decode task", goerr.V("doc_id", docSnap.Ref.ID))
		}

		batch := r.client.Batch()
		batch.Delete(docSnap.Ref)
		batch.Delete(r.client.Collection(r.indexCollection()).Doc(taskIndexKey(&task)))
		if _, err := batch.Commit(ctx); err != nil {
			return goerr.Wrap(err, "failed to delete task", goerr.V("doc_id", docSnap.Ref.ID))
		}
	}
	return nil
}
