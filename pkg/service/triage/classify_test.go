package triage_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/seoward-lab/seoward/pkg/domain/types"
	"github.com/seoward-lab/seoward/pkg/service/triage"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		code     types.IssueCode
		taskType types.TaskType
		role     types.Role
		priority types.Priority
	}{
		{types.IssueNoTitle, types.TaskTypeTechnical, types.RoleOptimizationSpecialist, types.PriorityHigh},
		{types.IssueNoDescription, types.TaskTypeTechnical, types.RoleOptimizationSpecialist, types.PriorityMedium},
		{types.IssueNoH1, types.TaskTypeTechnical, types.RoleOptimizationSpecialist, types.PriorityMedium},
		{types.IssueSlowLoad, types.TaskTypeTechnical, types.RoleOptimizationSpecialist, types.PriorityHigh},
		{types.IssueRedirectChain, types.TaskTypeTechnical, types.RoleOptimizationSpecialist, types.PriorityMedium},
		{types.IssueMissingSchema, types.TaskTypeTechnical, types.RoleOptimizationSpecialist, types.PriorityMedium},
		{types.IssueBroken, types.TaskTypeTechnical, types.RoleOptimizationSpecialist, types.PriorityUrgent},
		{types.IssueLowContent, types.TaskTypeContent, types.RoleContentCreator, types.PriorityMedium},
		{types.IssueKeywordGap, types.TaskTypeContent, types.RoleContentStrategist, types.PriorityMedium},
		{types.IssueLinkOpportunity, types.TaskTypeLinkBuilding, types.RoleLinkBuilder, types.PriorityMedium},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			c, err := triage.Classify(tt.code)
			gt.NoError(t, err).Required()
			gt.Value(t, c.Code).Equal(tt.code)
			gt.Value(t, c.TaskType).Equal(tt.taskType)
			gt.Value(t, c.Role).Equal(tt.role)
			gt.Value(t, c.Priority).Equal(tt.priority)
			gt.B(t, c.Title != "").True()
			gt.B(t, c.Description != "").True()
		})
	}
}

func TestClassify_Unknown(t *testing.T) {
	_, err := triage.Classify("unknown_xyz")
	gt.Error(t, err).Is(triage.ErrUnclassifiedIssue)
}

func TestRoutingTable(t *testing.T) {
	table := triage.RoutingTable()
	gt.Array(t, table).Length(len(types.KnownIssueCodes()))

	// first-seen order matches the canonical code list
	for i, code := range types.KnownIssueCodes() {
		gt.Value(t, table[i].Code).Equal(code)
	}
}

func TestDefaultSOPLibrary(t *testing.T) {
	lib := triage.DefaultSOPLibrary()
	for _, code := range types.KnownIssueCodes() {
		t.Run(code.String(), func(t *testing.T) {
			gt.B(t, lib.Lookup(code) != "").True()
		})
	}

	t.Run("unknown code has no text", func(t *testing.T) {
		gt.Value(t, lib.Lookup("unknown_xyz")).Equal("")
	})

	t.Run("merge overlays without mutating", func(t *testing.T) {
		merged := lib.Merge(triage.SOPLibrary{types.IssueNoTitle: "custom"})
		gt.Value(t, merged.Lookup(types.IssueNoTitle)).Equal("custom")
		gt.B(t, lib.Lookup(types.IssueNoTitle) != "custom").True()
	})
}
