package triage

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/seoward-lab/seoward/pkg/domain/types"
)

// ErrUnclassifiedIssue is returned when an issue code has no routing
// entry. The caller decides whether to skip or escalate; the engine
// never drops unknown codes silently.
var ErrUnclassifiedIssue = goerr.New("unclassified issue code")

// Classification is the routing policy entry for one issue code: which
// kind of task it becomes, which role queue it lands in, how urgent it
// is, and the templates its title and description are rendered from.
type Classification struct {
	Code        types.IssueCode
	TaskType    types.TaskType
	Role        types.Role
	Priority    types.Priority
	Label       string
	Title       string
	Description string
}

// Classify maps a raw issue code to its routing policy. The switch is
// the canonical routing table; adding a code means adding a case here.
func Classify(code types.IssueCode) (Classification, error) {
	switch code {
	case types.IssueNoTitle:
		return Classification{
			Code:        code,
			TaskType:    types.TaskTypeTechnical,
			Role:        types.RoleOptimizationSpecialist,
			Priority:    types.PriorityHigh,
			Label:       "missing title tags",
			Title:       "Fix pages with missing title tags",
			Description: "These pages have no title tag, which hurts SEO and CTR.",
		}, nil

	case types.IssueNoDescription:
		return Classification{
			Code:        code,
			TaskType:    types.TaskTypeTechnical,
			Role:        types.RoleOptimizationSpecialist,
			Priority:    types.PriorityMedium,
			Label:       "missing meta descriptions",
			Title:       "Add meta descriptions",
			Description: "These pages have no meta description.",
		}, nil

	case types.IssueNoH1:
		return Classification{
			Code:        code,
			TaskType:    types.TaskTypeTechnical,
			Role:        types.RoleOptimizationSpecialist,
			Priority:    types.PriorityMedium,
			Label:       "missing H1 headings",
			Title:       "Add H1 headings",
			Description: "These pages have no H1 tag.",
		}, nil

	case types.IssueSlowLoad:
		return Classification{
			Code:        code,
			TaskType:    types.TaskTypeTechnical,
			Role:        types.RoleOptimizationSpecialist,
			Priority:    types.PriorityHigh,
			Label:       "slow load times",
			Title:       "Improve slow loading pages",
			Description: "These pages take more than 3 seconds to load.",
		}, nil

	case types.IssueRedirectChain:
		return Classification{
			Code:        code,
			TaskType:    types.TaskTypeTechnical,
			Role:        types.RoleOptimizationSpecialist,
			Priority:    types.PriorityMedium,
			Label:       "redirect chains",
			Title:       "Shorten redirect chains",
			Description: "These pages are reached through multiple chained redirects.",
		}, nil

	case types.IssueMissingSchema:
		return Classification{
			Code:        code,
			TaskType:    types.TaskTypeTechnical,
			Role:        types.RoleOptimizationSpecialist,
			Priority:    types.PriorityMedium,
			Label:       "missing structured data",
			Title:       "Add structured data markup",
			Description: "These pages have no schema.org markup.",
		}, nil

	case types.IssueBroken:
		return Classification{
			Code:        code,
			TaskType:    types.TaskTypeTechnical,
			Role:        types.RoleOptimizationSpecialist,
			Priority:    types.PriorityUrgent,
			Label:       "broken pages",
			Title:       "Fix broken pages (4xx/5xx errors)",
			Description: "These pages return error status codes.",
		}, nil

	case types.IssueLowContent:
		return Classification{
			Code:        code,
			TaskType:    types.TaskTypeContent,
			Role:        types.RoleContentCreator,
			Priority:    types.PriorityMedium,
			Label:       "thin content",
			Title:       "Expand thin content pages",
			Description: "These pages have fewer than 300 words.",
		}, nil

	case types.IssueKeywordGap:
		return Classification{
			Code:        code,
			TaskType:    types.TaskTypeContent,
			Role:        types.RoleContentStrategist,
			Priority:    types.PriorityMedium,
			Label:       "keyword gaps",
			Title:       "Cover competitor keyword gaps",
			Description: "Competitors rank for these topics while these pages do not target them.",
		}, nil

	case types.IssueLinkOpportunity:
		return Classification{
			Code:        code,
			TaskType:    types.TaskTypeLinkBuilding,
			Role:        types.RoleLinkBuilder,
			Priority:    types.PriorityMedium,
			Label:       "link opportunities",
			Title:       "Pursue link building opportunities",
			Description: "These pages are strong candidates for outreach and link placements.",
		}, nil

	default:
		return Classification{}, goerr.Wrap(ErrUnclassifiedIssue, "no routing entry for issue code",
			goerr.V("issue_code", code))
	}
}

// RoutingTable returns the classification of every known issue code, in
// the canonical order. Used by reporting surfaces; task building goes
// through Classify directly.
func RoutingTable() []Classification {
	codes := types.KnownIssueCodes()
	table := make([]Classification, 0, len(codes))
	for _, code := range codes {
		c, err := Classify(code)
		if err != nil {
			// KnownIssueCodes and Classify must stay in sync
			panic(err)
		}
		table = append(table, c)
	}
	return table
}
