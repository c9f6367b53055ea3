package triage

import (
	"fmt"

	"github.com/seoward-lab/seoward/pkg/domain/model"
	"github.com/seoward-lab/seoward/pkg/domain/types"
)

// MaxChecklistSize is the batching limit: a group affecting more pages
// than this is split into multiple tasks of contiguous chunks.
const MaxChecklistSize = 50

// AllClearTitle is the title of the sentinel task emitted when an audit
// reports zero issues.
const AllClearTitle = "All clear — review audit"

// TaskDraft is a task candidate produced by the builder, before any
// storage identity is assigned. Drafts are always routed to a role
// queue, never to an individual.
type TaskDraft struct {
	CampaignID   types.CampaignID
	Code         types.IssueCode
	Type         types.TaskType
	Title        string
	Description  string
	Checklist    []model.ChecklistItem
	AssignedRole types.Role
	Status       types.TaskStatus
	Priority     types.Priority
	SOP          string
}

// Merge is the duplicate-suppression signal: an open task with the
// same campaign, type, role and title already exists, and its
// checklist should receive the newly discovered page identifiers.
// Items holds only identifiers not already on the existing checklist.
type Merge struct {
	TaskID types.TaskID
	Title  string
	Items  []string
}

// GroupFailure records one issue-code group that could not be
// classified. Sibling groups are unaffected.
type GroupFailure struct {
	Code  types.IssueCode
	Pages int
	Err   error
}

// Result is the outcome of one build run. Failures accompany, rather
// than replace, the successful drafts and merges.
type Result struct {
	Drafts   []TaskDraft
	Merges   []Merge
	Failures []GroupFailure
}

// Task converts a draft into a model task for persistence
func (d TaskDraft) Task(createdBy types.ProfileID) *model.Task {
	return &model.Task{
		ID:           types.NewTaskID(),
		CampaignID:   d.CampaignID,
		Type:         d.Type,
		Title:        d.Title,
		Description:  d.Description,
		Checklist:    d.Checklist,
		AssignedRole: d.AssignedRole,
		Status:       d.Status,
		Priority:     d.Priority,
		SOP:          d.SOP,
		CreatedBy:    createdBy,
	}
}

// BuildTasks turns an aggregation into deduplicated, prioritized,
// role-routed task drafts for the campaign.
//
// Per group: classify the code, split the page list into contiguous
// chunks of at most MaxChecklistSize, and render one candidate per
// chunk. A candidate whose exact title matches an existing open task
// of the same type and role becomes a merge signal instead of a draft.
// An empty-but-marked aggregation yields exactly one all-clear
// sentinel draft. Classification failures are collected per group and
// never abort the run.
func BuildTasks(campaignID types.CampaignID, agg *Aggregation, existing []*model.Task, sop SOPLibrary) Result {
	var result Result

	if agg.Empty() {
		result.Drafts = append(result.Drafts, allClearDraft(campaignID))
		return result
	}

	open := openTaskIndex(campaignID, existing)

	for _, group := range agg.Groups() {
		c, err := Classify(group.Code)
		if err != nil {
			result.Failures = append(result.Failures, GroupFailure{
				Code:  group.Code,
				Pages: len(group.Pages),
				Err:   err,
			})
			continue
		}

		chunks := splitPages(group.Pages)
		for i, chunk := range chunks {
			title := renderTitle(c.Title, len(chunk), i, len(chunks))

			if task, ok := open[dedupKey(c.TaskType, c.Role, title)]; ok {
				result.Merges = append(result.Merges, Merge{
					TaskID: task.ID,
					Title:  title,
					Items:  newItems(task, chunk),
				})
				continue
			}

			checklist := make([]model.ChecklistItem, len(chunk))
			for j, url := range chunk {
				checklist[j] = model.ChecklistItem{Item: url}
			}

			result.Drafts = append(result.Drafts, TaskDraft{
				CampaignID:   campaignID,
				Code:         group.Code,
				Type:         c.TaskType,
				Title:        title,
				Description:  c.Description,
				Checklist:    checklist,
				AssignedRole: c.Role,
				Status:       types.TaskStatusPending,
				Priority:     c.Priority,
				SOP:          sop.Lookup(group.Code),
			})
		}
	}

	return result
}

func allClearDraft(campaignID types.CampaignID) TaskDraft {
	return TaskDraft{
		CampaignID:   campaignID,
		Type:         types.TaskTypeReview,
		Title:        AllClearTitle,
		Description:  "The latest audit reported no issues. Review the results and confirm.",
		AssignedRole: types.RoleCampaignManager,
		Status:       types.TaskStatusPending,
		Priority:     types.PriorityLow,
	}
}

// renderTitle renders the candidate title for one chunk. Chunked
// groups get an index suffix so every title stays unique within the
// (campaign, type, role) scope the dedup key covers.
func renderTitle(template string, n, chunk, totalChunks int) string {
	title := fmt.Sprintf("%s (%d pages)", template, n)
	if totalChunks > 1 {
		title = fmt.Sprintf("%s [%d/%d]", title, chunk+1, totalChunks)
	}
	return title
}

// splitPages splits the ordered page list into contiguous chunks of at
// most MaxChecklistSize, preserving order.
func splitPages(pages []string) [][]string {
	if len(pages) == 0 {
		return nil
	}
	chunks := make([][]string, 0, (len(pages)+MaxChecklistSize-1)/MaxChecklistSize)
	for start := 0; start < len(pages); start += MaxChecklistSize {
		end := start + MaxChecklistSize
		if end > len(pages) {
			end = len(pages)
		}
		chunks = append(chunks, pages[start:end])
	}
	return chunks
}

func dedupKey(tt types.TaskType, role types.Role, title string) string {
	return tt.String() + "\x00" + role.String() + "\x00" + title
}

// openTaskIndex indexes the campaign's open tasks by dedup key. Tasks
// of other campaigns or in done status never suppress creation.
func openTaskIndex(campaignID types.CampaignID, existing []*model.Task) map[string]*model.Task {
	index := make(map[string]*model.Task, len(existing))
	for _, task := range existing {
		if task.CampaignID != campaignID || !task.IsOpen() {
			continue
		}
		index[dedupKey(task.Type, task.AssignedRole, task.Title)] = task
	}
	return index
}

// newItems returns the chunk's page identifiers not already present on
// the existing task's checklist, preserving chunk order.
func newItems(task *model.Task, chunk []string) []string {
	present := make(map[string]bool, len(task.Checklist))
	for _, ci := range task.Checklist {
		present[ci.Item] = true
	}
	var items []string
	for _, url := range chunk {
		if !present[url] {
			items = append(items, url)
		}
	}
	return items
}
