package triage

import (
	"github.com/seoward-lab/seoward/pkg/domain/model"
	"github.com/seoward-lab/seoward/pkg/domain/types"
)

// Group is the set of pages affected by one issue code, in first-seen
// order. Page identifiers are unique within a group.
type Group struct {
	Code  types.IssueCode
	Pages []string
}

// Aggregation is the result of grouping an audit's page-level issues by
// code. A non-nil Aggregation with zero groups means the audit ran and
// found nothing ("empty but marked"); a nil *Aggregation means
// aggregation has not run. The distinction drives the all-clear
// sentinel task.
type Aggregation struct {
	groups []Group
	index  map[types.IssueCode]int
}

// Aggregate groups the affected page identifiers of the audit's page
// set by issue code. Both the group order and the page order within
// each group follow first appearance in the input, so repeated runs
// over the same findings produce identical checklists.
func Aggregate(pages []model.AuditPage) *Aggregation {
	agg := &Aggregation{
		index: make(map[types.IssueCode]int),
	}

	seen := make(map[types.IssueCode]map[string]bool)

	for _, page := range pages {
		for _, code := range page.Issues {
			i, ok := agg.index[code]
			if !ok {
				i = len(agg.groups)
				agg.index[code] = i
				agg.groups = append(agg.groups, Group{Code: code})
				seen[code] = make(map[string]bool)
			}
			if seen[code][page.URL] {
				continue
			}
			seen[code][page.URL] = true
			agg.groups[i].Pages = append(agg.groups[i].Pages, page.URL)
		}
	}

	return agg
}

// Groups returns the aggregated groups in first-seen order
func (a *Aggregation) Groups() []Group {
	if a == nil {
		return nil
	}
	return a.groups
}

// Empty reports whether the audit reported zero issues across all
// pages. It is false for a nil Aggregation: "not yet run" and "all
// clear" are different answers.
func (a *Aggregation) Empty() bool {
	return a != nil && len(a.groups) == 0
}
