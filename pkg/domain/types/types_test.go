package types_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/seoward-lab/seoward/pkg/domain/types"
)

func TestRole_IsValid(t *testing.T) {
	for _, role := range types.AllRoles() {
		t.Run(role.String(), func(t *testing.T) {
			gt.B(t, role.IsValid()).True()
		})
	}

	t.Run("unknown role", func(t *testing.T) {
		gt.B(t, types.Role("superuser").IsValid()).False()
	})

	t.Run("empty role", func(t *testing.T) {
		gt.B(t, types.Role("").IsValid()).False()
	})
}

func TestParseRole(t *testing.T) {
	t.Run("valid role", func(t *testing.T) {
		role, err := types.ParseRole("optimization_specialist")
		gt.NoError(t, err)
		gt.Value(t, role).Equal(types.RoleOptimizationSpecialist)
	})

	t.Run("unknown role is rejected", func(t *testing.T) {
		_, err := types.ParseRole("intern")
		gt.Error(t, err).Is(types.ErrInvalidRole)
	})
}

func TestRole_IsManager(t *testing.T) {
	gt.B(t, types.RoleAdmin.IsManager()).True()
	gt.B(t, types.RoleCampaignManager.IsManager()).True()
	gt.B(t, types.RoleViewer.IsManager()).False()
	gt.B(t, types.RoleContentCreator.IsManager()).False()
}

func TestTaskStatus_IsOpen(t *testing.T) {
	tests := []struct {
		name   string
		status types.TaskStatus
		want   bool
	}{
		{name: "pending is open", status: types.TaskStatusPending, want: true},
		{name: "in_progress is open", status: types.TaskStatusInProgress, want: true},
		{name: "review is open", status: types.TaskStatusReview, want: true},
		{name: "done is not open", status: types.TaskStatusDone, want: false},
		{name: "invalid is not open", status: types.TaskStatus("bogus"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.want {
				gt.B(t, tt.status.IsOpen()).True()
			} else {
				gt.B(t, tt.status.IsOpen()).False()
			}
		})
	}
}

func TestAuditStatus_CanTransition(t *testing.T) {
	tests := []struct {
		name string
		from types.AuditStatus
		to   types.AuditStatus
		want bool
	}{
		{name: "pending to running", from: types.AuditStatusPending, to: types.AuditStatusRunning, want: true},
		{name: "pending to failed", from: types.AuditStatusPending, to: types.AuditStatusFailed, want: true},
		{name: "pending to completed skips running", from: types.AuditStatusPending, to: types.AuditStatusCompleted, want: false},
		{name: "running to completed", from: types.AuditStatusRunning, to: types.AuditStatusCompleted, want: true},
		{name: "running to failed", from: types.AuditStatusRunning, to: types.AuditStatusFailed, want: true},
		{name: "completed is terminal", from: types.AuditStatusCompleted, to: types.AuditStatusFailed, want: false},
		{name: "failed is terminal", from: types.AuditStatusFailed, to: types.AuditStatusRunning, want: false},
		{name: "invalid target", from: types.AuditStatusRunning, to: types.AuditStatus("bogus"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.want {
				gt.B(t, tt.from.CanTransition(tt.to)).True()
			} else {
				gt.B(t, tt.from.CanTransition(tt.to)).False()
			}
		})
	}
}

func TestParsePriority(t *testing.T) {
	t.Run("valid levels", func(t *testing.T) {
		for n := 0; n <= 3; n++ {
			p, err := types.ParsePriority(n)
			gt.NoError(t, err)
			gt.Value(t, int(p)).Equal(n)
		}
	})

	t.Run("out of range", func(t *testing.T) {
		_, err := types.ParsePriority(4)
		gt.Error(t, err).Is(types.ErrInvalidPriority)

		_, err = types.ParsePriority(-1)
		gt.Error(t, err).Is(types.ErrInvalidPriority)
	})
}

func TestIssueCode_IsKnown(t *testing.T) {
	for _, code := range types.KnownIssueCodes() {
		t.Run(code.String(), func(t *testing.T) {
			gt.B(t, code.IsKnown()).True()
		})
	}

	t.Run("unknown code is carried, not rejected", func(t *testing.T) {
		gt.B(t, types.IssueCode("unknown_xyz").IsKnown()).False()
	})
}

func TestParseStatuses(t *testing.T) {
	t.Run("task status", func(t *testing.T) {
		_, err := types.ParseTaskStatus("archived")
		gt.Error(t, err).Is(types.ErrInvalidStatus)
	})

	t.Run("campaign status", func(t *testing.T) {
		s, err := types.ParseCampaignStatus("paused")
		gt.NoError(t, err)
		gt.Value(t, s).Equal(types.CampaignStatusPaused)
	})

	t.Run("content status", func(t *testing.T) {
		_, err := types.ParseContentStatus("retired")
		gt.Error(t, err).Is(types.ErrInvalidStatus)
	})

	t.Run("audit type", func(t *testing.T) {
		at, err := types.ParseAuditType("backlink")
		gt.NoError(t, err)
		gt.Value(t, at).Equal(types.AuditTypeBacklink)
	})

	t.Run("task type", func(t *testing.T) {
		_, err := types.ParseTaskType("maintenance")
		gt.Error(t, err).Is(types.ErrInvalidType)
	})
}
