package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/seoward-lab/seoward/pkg/domain/interfaces"
	"github.com/seoward-lab/seoward/pkg/domain/model"
	"github.com/seoward-lab/seoward/pkg/domain/types"
	"github.com/seoward-lab/seoward/pkg/service/authz"
	"github.com/seoward-lab/seoward/pkg/service/triage"
	"github.com/seoward-lab/seoward/pkg/utils/logging"
)

type AuditUseCase struct {
	repo     interfaces.Repository
	activity *ActivityUseCase
	sop      triage.SOPLibrary
}

func NewAuditUseCase(repo interfaces.Repository, activity *ActivityUseCase, sop triage.SOPLibrary) *AuditUseCase {
	return &AuditUseCase{repo: repo, activity: activity, sop: sop}
}

// IngestReport is the outcome of one findings ingestion: tasks created,
// tasks merged into, and issue groups that could not be classified.
type IngestReport struct {
	Created  []*model.Task
	Merged   []*model.Task
	Failures []triage.GroupFailure
}

// Start creates a pending audit for the campaign. Manager only.
func (uc *AuditUseCase) Start(ctx context.Context, p model.Principal, campaignID types.CampaignID, auditType types.AuditType, externalTaskID string) (*model.Audit, error) {
	campaign, err := uc.repo.Campaign().Get(ctx, campaignID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to resolve campaign", goerr.V(CampaignIDKey, campaignID))
	}
	if !authz.Can(p, types.ActionUpdate, authz.CampaignResource(campaign)) {
		return nil, goerr.Wrap(ErrAccessDenied, "cannot start audit", goerr.V(CampaignIDKey, campaignID))
	}

	audit := &model.Audit{
		ID:             types.NewAuditID(),
		CampaignID:     campaignID,
		Type:           auditType,
		Status:         types.AuditStatusPending,
		ExternalTaskID: externalTaskID,
		CreatedBy:      p.ID,
	}
	if err := audit.Validate(); err != nil {
		return nil, err
	}

	created, err := uc.repo.Audit().Create(ctx, audit)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create audit", goerr.V(CampaignIDKey, campaignID))
	}

	if _, err := uc.activity.Record(ctx, campaign.OrganizationID, campaignID, p.ID, model.ActivityCreated,
		types.EntityAudit, created.ID.String(), map[string]any{"type": auditType.String()}); err != nil {
		return nil, err
	}

	return created, nil
}

// Begin moves a pending audit to running, invoked when the external
// crawler picks the audit up.
func (uc *AuditUseCase) Begin(ctx context.Context, auditID types.AuditID, externalTaskID string) (*model.Audit, error) {
	audit, err := uc.repo.Audit().Get(ctx, auditID)
	if err != nil {
		return nil, err
	}
	if err := audit.Transition(types.AuditStatusRunning, time.Now()); err != nil {
		return nil, err
	}
	if externalTaskID != "" {
		audit.ExternalTaskID = externalTaskID
	}
	return uc.repo.Audit().Update(ctx, audit)
}

// Fail moves an audit to failed from any non-terminal state and records
// the failure in the activity log.
func (uc *AuditUseCase) Fail(ctx context.Context, auditID types.AuditID, actor types.ProfileID, reason string) (*model.Audit, error) {
	audit, err := uc.repo.Audit().Get(ctx, auditID)
	if err != nil {
		return nil, err
	}
	if err := audit.Transition(types.AuditStatusFailed, time.Now()); err != nil {
		return nil, err
	}

	failed, err := uc.repo.Audit().Update(ctx, audit)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update audit", goerr.V(AuditIDKey, auditID))
	}

	orgID, err := uc.campaignOrg(ctx, audit.CampaignID)
	if err != nil {
		return nil, err
	}
	if actor == "" {
		actor = systemActor
	}
	if _, err := uc.activity.Record(ctx, orgID, audit.CampaignID, actor, model.ActivityFailed,
		types.EntityAudit, auditID.String(), map[string]any{"reason": reason}); err != nil {
		return nil, err
	}

	return failed, nil
}

// Get retrieves an audit visible to the principal
func (uc *AuditUseCase) Get(ctx context.Context, p model.Principal, id types.AuditID) (*model.Audit, error) {
	audit, err := uc.repo.Audit().Get(ctx, id)
	if err != nil {
		return nil, err
	}
	orgID, err := uc.campaignOrg(ctx, audit.CampaignID)
	if err != nil {
		return nil, err
	}
	if !authz.Can(p, types.ActionRead, authz.AuditResource(audit, orgID)) {
		return nil, goerr.Wrap(ErrAccessDenied, "cannot read audit", goerr.V(AuditIDKey, id))
	}
	return audit, nil
}

// Ingest accepts the crawler's per-page findings for a running audit,
// completes the audit and derives remediation tasks: findings are
// aggregated by issue code, classified, chunked and written through the
// duplicate suppressing create-or-merge. One activity entry is recorded
// per created or merged task; an activity failure aborts the call.
func (uc *AuditUseCase) Ingest(ctx context.Context, auditID types.AuditID, pages []model.AuditPage, summary map[string]any) (*IngestReport, error) {
	audit, err := uc.repo.Audit().Get(ctx, auditID)
	if err != nil {
		return nil, err
	}

	if err := audit.Transition(types.AuditStatusCompleted, time.Now()); err != nil {
		return nil, goerr.Wrap(err, "cannot complete audit", goerr.V(AuditIDKey, auditID))
	}
	audit.Results = map[string]any{"pages": pages}
	audit.Summary = summary

	completed, err := uc.repo.Audit().Update(ctx, audit)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to store audit results", goerr.V(AuditIDKey, auditID))
	}

	if !completed.EligibleForTaskBuilding() {
		return nil, goerr.Wrap(ErrAuditNotEligible, "audit did not reach completed", goerr.V(AuditIDKey, auditID))
	}

	orgID, err := uc.campaignOrg(ctx, completed.CampaignID)
	if err != nil {
		return nil, err
	}

	actor := completed.CreatedBy
	if actor == "" {
		actor = systemActor
	}

	report, err := uc.buildTasks(ctx, completed, orgID, actor, pages)
	if err != nil {
		return nil, err
	}

	logging.From(ctx).Info("audit findings ingested",
		"audit_id", auditID,
		"pages", len(pages),
		"tasks_created", len(report.Created),
		"tasks_merged", len(report.Merged),
		"groups_failed", len(report.Failures))

	return report, nil
}

func (uc *AuditUseCase) buildTasks(ctx context.Context, audit *model.Audit, orgID types.OrgID, actor types.ProfileID, pages []model.AuditPage) (*IngestReport, error) {
	agg := triage.Aggregate(pages)

	existing, err := uc.openTasksForGroups(ctx, audit.CampaignID, agg)
	if err != nil {
		return nil, err
	}

	result := triage.BuildTasks(audit.CampaignID, agg, existing, uc.sop)

	report := &IngestReport{Failures: result.Failures}

	for _, draft := range result.Drafts {
		task := draft.Task(actor)
		stored, merged, err := uc.repo.Task().CreateOrMerge(ctx, task)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to store task",
				goerr.V(AuditIDKey, audit.ID), goerr.V("title", task.Title))
		}

		action := model.ActivityCreated
		if merged {
			action = model.ActivityMerged
			report.Merged = append(report.Merged, stored)
		} else {
			report.Created = append(report.Created, stored)
		}

		if _, err := uc.activity.Record(ctx, orgID, audit.CampaignID, actor, action,
			types.EntityTask, stored.ID.String(), map[string]any{
				"audit_id": audit.ID.String(),
				"title":    stored.Title,
			}); err != nil {
			return nil, err
		}
	}

	for _, merge := range result.Merges {
		task, err := uc.repo.Task().Get(ctx, merge.TaskID)
		if err != nil {
			return nil, goerr.Wrap(err, "merge target disappeared", goerr.V(TaskIDKey, merge.TaskID))
		}
		task.MergeChecklist(merge.Items)

		stored, err := uc.repo.Task().Update(ctx, task)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to merge task", goerr.V(TaskIDKey, merge.TaskID))
		}
		report.Merged = append(report.Merged, stored)

		if _, err := uc.activity.Record(ctx, orgID, audit.CampaignID, actor, model.ActivityMerged,
			types.EntityTask, stored.ID.String(), map[string]any{
				"audit_id":    audit.ID.String(),
				"title":       stored.Title,
				"items_added": len(merge.Items),
			}); err != nil {
			return nil, err
		}
	}

	return report, nil
}

// openTasksForGroups fetches the open tasks of every (type, role) queue
// the aggregation can route to, feeding duplicate suppression.
func (uc *AuditUseCase) openTasksForGroups(ctx context.Context, campaignID types.CampaignID, agg *triage.Aggregation) ([]*model.Task, error) {
	type queue struct {
		taskType types.TaskType
		role     types.Role
	}

	queues := map[queue]bool{}
	for _, group := range agg.Groups() {
		cls, err := triage.Classify(group.Code)
		if err != nil {
			continue
		}
		queues[queue{cls.TaskType, cls.Role}] = true
	}
	if agg.Empty() {
		queues[queue{types.TaskTypeReview, types.RoleCampaignManager}] = true
	}

	var tasks []*model.Task
	for q := range queues {
		open, err := uc.repo.Task().ListOpen(ctx, campaignID, q.taskType, q.role)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list open tasks",
				goerr.V(CampaignIDKey, campaignID), goerr.V("type", q.taskType), goerr.V("role", q.role))
		}
		tasks = append(tasks, open...)
	}
	return tasks, nil
}

func (uc *AuditUseCase) campaignOrg(ctx context.Context, campaignID types.CampaignID) (types.OrgID, error) {
	campaign, err := uc.repo.Campaign().Get(ctx, campaignID)
	if err != nil {
		return "", goerr.Wrap(err, "failed to resolve campaign", goerr.V(CampaignIDKey, campaignID))
	}
	return campaign.OrganizationID, nil
}
