// Package memory is the in-memory persistence backend, used by tests
// and local development. Every method returns deep copies so callers
// can never mutate stored state through a returned pointer.
package memory

import (
	"github.com/seoward-lab/seoward/pkg/domain/interfaces"
)

// Repository is an alias for Memory to match the pattern
type Repository = Memory

type Memory struct {
	organization *organizationRepository
	profile      *profileRepository
	campaign     *campaignRepository
	audit        *auditRepository
	task         *taskRepository
	keyword      *keywordRepository
	content      *contentRepository
	activity     *activityRepository
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{
		organization: newOrganizationRepository(),
		profile:      newProfileRepository(),
		campaign:     newCampaignRepository(),
		audit:        newAuditRepository(),
		task:         newTaskRepository(),
		keyword:      newKeywordRepository(),
		content:      newContentRepository(),
		activity:     newActivityRepository(),
	}
}

func (m *Memory) Organization() interfaces.OrganizationRepository {
	return m.organization
}

func (m *Memory) Profile() interfaces.ProfileRepository {
	return m.profile
}

func (m *Memory) Campaign() interfaces.CampaignRepository {
	return m.campaign
}

func (m *Memory) Audit() interfaces.AuditRepository {
	return m.audit
}

func (m *Memory) Task() interfaces.TaskRepository {
	return m.task
}

func (m *Memory) Keyword() interfaces.KeywordRepository {
	return m.keyword
}

func (m *Memory) Content() interfaces.ContentRepository {
	return m.content
}

func (m *Memory) Activity() interfaces.ActivityRepository {
	return m.activity
}

func (m *Memory) Close() error {
	return nil
}

// copyMap creates a copy of an opaque settings or payload map. Nested
// values are shared; stored entities never hand out the map itself.
func copyMap(src map[string]any) map[string]any {
	if src == nil {
		return nil
	}
	dst := make(map[string]any, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
