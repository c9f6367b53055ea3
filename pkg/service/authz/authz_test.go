package authz_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/seoward-lab/seoward/pkg/domain/model"
	"github.com/seoward-lab/seoward/pkg/domain/types"
	"github.com/seoward-lab/seoward/pkg/service/authz"
)

func principal(role types.Role, orgID types.OrgID) model.Principal {
	return model.Principal{
		ID:             types.NewProfileID(),
		Role:           role,
		OrganizationID: orgID,
	}
}

func TestCan_Organization(t *testing.T) {
	orgID := types.NewOrgID()
	org := &model.Organization{ID: orgID, Name: "acme", Slug: "acme", OwnerID: types.NewProfileID()}
	r := authz.OrganizationResource(org)

	t.Run("member reads own organization", func(t *testing.T) {
		for _, role := range types.AllRoles() {
			gt.B(t, authz.Can(principal(role, orgID), types.ActionRead, r)).True()
		}
	})

	t.Run("outsider denied", func(t *testing.T) {
		p := principal(types.RoleAdmin, types.NewOrgID())
		gt.B(t, authz.Can(p, types.ActionRead, r)).False()
	})

	t.Run("direct writes denied even for admin", func(t *testing.T) {
		p := principal(types.RoleAdmin, orgID)
		gt.B(t, authz.Can(p, types.ActionCreate, r)).False()
		gt.B(t, authz.Can(p, types.ActionUpdate, r)).False()
	})
}

func TestCan_Profile(t *testing.T) {
	orgID := types.NewOrgID()
	target := &model.Profile{
		ID:             types.NewProfileID(),
		Email:          "target@example.com",
		Role:           types.RoleContentCreator,
		OrganizationID: orgID,
	}
	r := authz.ProfileResource(target)

	t.Run("same organization reads", func(t *testing.T) {
		p := principal(types.RoleViewer, orgID)
		gt.B(t, authz.Can(p, types.ActionRead, r)).True()
	})

	t.Run("other organization denied", func(t *testing.T) {
		p := principal(types.RoleAdmin, types.NewOrgID())
		gt.B(t, authz.Can(p, types.ActionRead, r)).False()
	})

	t.Run("self reads and updates, even before onboarding", func(t *testing.T) {
		unassigned := &model.Profile{ID: types.NewProfileID(), Email: "new@example.com", Role: types.RoleViewer}
		self := model.Principal{ID: unassigned.ID, Role: unassigned.Role}
		sr := authz.ProfileResource(unassigned)
		gt.B(t, authz.Can(self, types.ActionRead, sr)).True()
		gt.B(t, authz.Can(self, types.ActionUpdate, sr)).True()
	})

	t.Run("only self updates", func(t *testing.T) {
		p := principal(types.RoleAdmin, orgID)
		gt.B(t, authz.Can(p, types.ActionUpdate, r)).False()
	})

	t.Run("create is never direct", func(t *testing.T) {
		self := model.Principal{ID: target.ID, Role: target.Role, OrganizationID: orgID}
		gt.B(t, authz.Can(self, types.ActionCreate, r)).False()
	})
}

func TestCan_Campaign(t *testing.T) {
	orgID := types.NewOrgID()
	campaign := &model.Campaign{
		ID:             types.NewCampaignID(),
		OrganizationID: orgID,
		Name:           "acme site",
		Domain:         "example.com",
		Status:         types.CampaignStatusActive,
	}
	r := authz.CampaignResource(campaign)

	t.Run("any member reads", func(t *testing.T) {
		for _, role := range types.AllRoles() {
			gt.B(t, authz.Can(principal(role, orgID), types.ActionRead, r)).True()
		}
	})

	t.Run("only managers write", func(t *testing.T) {
		for _, role := range types.AllRoles() {
			p := principal(role, orgID)
			gt.Value(t, authz.Can(p, types.ActionCreate, r)).Equal(role.IsManager())
			gt.Value(t, authz.Can(p, types.ActionUpdate, r)).Equal(role.IsManager())
		}
	})

	t.Run("manager of another organization denied", func(t *testing.T) {
		p := principal(types.RoleCampaignManager, types.NewOrgID())
		gt.B(t, authz.Can(p, types.ActionRead, r)).False()
		gt.B(t, authz.Can(p, types.ActionUpdate, r)).False()
	})
}

func TestCan_Task(t *testing.T) {
	orgID := types.NewOrgID()
	assignee := types.NewProfileID()

	assigned := authz.TaskResource(&model.Task{
		ID:         types.NewTaskID(),
		CampaignID: types.NewCampaignID(),
		AssignedTo: assignee,
	}, orgID)

	queued := authz.TaskResource(&model.Task{
		ID:           types.NewTaskID(),
		CampaignID:   types.NewCampaignID(),
		AssignedRole: types.RoleLinkBuilder,
	}, orgID)

	t.Run("viewer not assigned cannot read", func(t *testing.T) {
		p := principal(types.RoleViewer, orgID)
		gt.B(t, authz.Can(p, types.ActionRead, assigned)).False()
	})

	t.Run("assignee reads and updates", func(t *testing.T) {
		p := model.Principal{ID: assignee, Role: types.RoleViewer, OrganizationID: orgID}
		gt.B(t, authz.Can(p, types.ActionRead, assigned)).True()
		gt.B(t, authz.Can(p, types.ActionUpdate, assigned)).True()
	})

	t.Run("managers read and update regardless of assignment", func(t *testing.T) {
		for _, role := range []types.Role{types.RoleAdmin, types.RoleCampaignManager} {
			p := principal(role, orgID)
			gt.B(t, authz.Can(p, types.ActionRead, assigned)).True()
			gt.B(t, authz.Can(p, types.ActionUpdate, assigned)).True()
		}
	})

	t.Run("role queue members read their queue", func(t *testing.T) {
		p := principal(types.RoleLinkBuilder, orgID)
		gt.B(t, authz.Can(p, types.ActionRead, queued)).True()
		gt.B(t, authz.Can(p, types.ActionUpdate, queued)).False()

		other := principal(types.RoleContentCreator, orgID)
		gt.B(t, authz.Can(other, types.ActionRead, queued)).False()
	})

	t.Run("only managers create", func(t *testing.T) {
		for _, role := range types.AllRoles() {
			p := principal(role, orgID)
			gt.Value(t, authz.Can(p, types.ActionCreate, assigned)).Equal(role.IsManager())
		}
	})

	t.Run("assignee in another organization denied", func(t *testing.T) {
		p := model.Principal{ID: assignee, Role: types.RoleViewer, OrganizationID: types.NewOrgID()}
		gt.B(t, authz.Can(p, types.ActionRead, assigned)).False()
	})
}

func TestCan_AuditAndKeyword(t *testing.T) {
	orgID := types.NewOrgID()
	audit := authz.AuditResource(&model.Audit{ID: types.NewAuditID()}, orgID)
	keyword := authz.KeywordResource(&model.Keyword{ID: types.NewKeywordID()}, orgID)

	for _, r := range []authz.Resource{audit, keyword} {
		t.Run(r.Kind.String(), func(t *testing.T) {
			member := principal(types.RoleViewer, orgID)
			gt.B(t, authz.Can(member, types.ActionRead, r)).True()

			outsider := principal(types.RoleAdmin, types.NewOrgID())
			gt.B(t, authz.Can(outsider, types.ActionRead, r)).False()

			// system-written, never directly writable
			admin := principal(types.RoleAdmin, orgID)
			gt.B(t, authz.Can(admin, types.ActionCreate, r)).False()
			gt.B(t, authz.Can(admin, types.ActionUpdate, r)).False()
		})
	}
}

func TestCan_Content(t *testing.T) {
	orgID := types.NewOrgID()
	assignee := types.NewProfileID()
	r := authz.ContentResource(&model.Content{
		ID:         types.NewContentID(),
		CampaignID: types.NewCampaignID(),
		Title:      "guide",
		Status:     types.ContentStatusDraft,
		AssignedTo: assignee,
	}, orgID)

	t.Run("read allowed for assignee, strategists and managers", func(t *testing.T) {
		readers := map[types.Role]bool{
			types.RoleAdmin:                  true,
			types.RoleCampaignManager:        true,
			types.RoleContentStrategist:      true,
			types.RoleContentCreator:         false,
			types.RoleOptimizationSpecialist: false,
			types.RoleLinkBuilder:            false,
			types.RoleReportingManager:       false,
			types.RoleViewer:                 false,
		}
		for role, want := range readers {
			gt.Value(t, authz.Can(principal(role, orgID), types.ActionRead, r)).Equal(want)
		}

		p := model.Principal{ID: assignee, Role: types.RoleContentCreator, OrganizationID: orgID}
		gt.B(t, authz.Can(p, types.ActionRead, r)).True()
	})

	t.Run("writes denied", func(t *testing.T) {
		p := principal(types.RoleAdmin, orgID)
		gt.B(t, authz.Can(p, types.ActionCreate, r)).False()
		gt.B(t, authz.Can(p, types.ActionUpdate, r)).False()
	})
}

func TestCan_Activity(t *testing.T) {
	orgID := types.NewOrgID()
	r := authz.ActivityResource(&model.ActivityEntry{
		ID:             types.NewActivityID(),
		OrganizationID: orgID,
	})

	t.Run("organization match reads", func(t *testing.T) {
		gt.B(t, authz.Can(principal(types.RoleViewer, orgID), types.ActionRead, r)).True()
		gt.B(t, authz.Can(principal(types.RoleAdmin, types.NewOrgID()), types.ActionRead, r)).False()
	})

	t.Run("append-only, never writable directly", func(t *testing.T) {
		p := principal(types.RoleAdmin, orgID)
		gt.B(t, authz.Can(p, types.ActionCreate, r)).False()
		gt.B(t, authz.Can(p, types.ActionUpdate, r)).False()
	})
}

func TestCan_Deterministic(t *testing.T) {
	orgID := types.NewOrgID()
	r := authz.TaskResource(&model.Task{ID: types.NewTaskID(), AssignedRole: types.RoleLinkBuilder}, orgID)

	for _, role := range types.AllRoles() {
		p := principal(role, orgID)
		for _, action := range types.AllAccessActions() {
			first := authz.Can(p, action, r)
			for i := 0; i < 3; i++ {
				gt.Value(t, authz.Can(p, action, r)).Equal(first)
			}
		}
	}
}
