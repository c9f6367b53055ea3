// Package authz is the access control evaluator: a pure decision
// function over (principal, action, resource) with no I/O, evaluated
// before every read or write the surrounding system performs.
//
// A Resource is the flattened view of one entity: its kind, its
// organization, and its assignment fields. Callers build it from no
// more information than the entity itself plus, at most, the campaign
// it belongs to. The evaluator never requires a longer join chain than
// entity to campaign to organization, which keeps every decision O(1)
// relative to data set size.
package authz

import (
	"github.com/seoward-lab/seoward/pkg/domain/model"
	"github.com/seoward-lab/seoward/pkg/domain/types"
)

// Resource is the evaluator's view of a target entity. Only the fields
// relevant for the entity's kind are set; the rest stay zero.
type Resource struct {
	Kind           types.EntityKind
	ID             string
	OrganizationID types.OrgID
	Owner          types.ProfileID
	AssignedTo     types.ProfileID
	AssignedRole   types.Role
}

// OrganizationResource builds the resource view of an organization
func OrganizationResource(org *model.Organization) Resource {
	return Resource{
		Kind:           types.EntityOrganization,
		ID:             org.ID.String(),
		OrganizationID: org.ID,
		Owner:          org.OwnerID,
	}
}

// ProfileResource builds the resource view of a profile. Owner is the
// profile itself so the self rules fall out of the generic check.
func ProfileResource(profile *model.Profile) Resource {
	return Resource{
		Kind:           types.EntityProfile,
		ID:             profile.ID.String(),
		OrganizationID: profile.OrganizationID,
		Owner:          profile.ID,
	}
}

// CampaignResource builds the resource view of a campaign
func CampaignResource(campaign *model.Campaign) Resource {
	return Resource{
		Kind:           types.EntityCampaign,
		ID:             campaign.ID.String(),
		OrganizationID: campaign.OrganizationID,
	}
}

// TaskResource builds the resource view of a task. Tasks carry no
// organization reference of their own, so the caller supplies the one
// resolved through the task's campaign.
func TaskResource(task *model.Task, orgID types.OrgID) Resource {
	return Resource{
		Kind:           types.EntityTask,
		ID:             task.ID.String(),
		OrganizationID: orgID,
		AssignedTo:     task.AssignedTo,
		AssignedRole:   task.AssignedRole,
	}
}

// AuditResource builds the resource view of an audit, with the
// organization resolved through the audit's campaign by the caller.
func AuditResource(audit *model.Audit, orgID types.OrgID) Resource {
	return Resource{
		Kind:           types.EntityAudit,
		ID:             audit.ID.String(),
		OrganizationID: orgID,
	}
}

// KeywordResource builds the resource view of a keyword, with the
// organization resolved through the keyword's campaign by the caller.
func KeywordResource(keyword *model.Keyword, orgID types.OrgID) Resource {
	return Resource{
		Kind:           types.EntityKeyword,
		ID:             keyword.ID.String(),
		OrganizationID: orgID,
	}
}

// ContentResource builds the resource view of a content piece, with the
// organization resolved through the content's campaign by the caller.
func ContentResource(content *model.Content, orgID types.OrgID) Resource {
	return Resource{
		Kind:           types.EntityContent,
		ID:             content.ID.String(),
		OrganizationID: orgID,
		AssignedTo:     content.AssignedTo,
	}
}

// ActivityResource builds the resource view of an activity entry
func ActivityResource(entry *model.ActivityEntry) Resource {
	return Resource{
		Kind:           types.EntityActivity,
		ID:             entry.ID.String(),
		OrganizationID: entry.OrganizationID,
	}
}

// Can decides whether the principal may perform the action on the
// resource. It is deterministic and side-effect free; unknown kinds
// and unknown actions deny.
func Can(p model.Principal, action types.AccessAction, r Resource) bool {
	switch action {
	case types.ActionRead:
		return canRead(p, r)
	case types.ActionCreate, types.ActionUpdate:
		return canWrite(p, action, r)
	default:
		return false
	}
}

func canRead(p model.Principal, r Resource) bool {
	if !sameOrganization(p, r) {
		// a profile may always read itself, even before onboarding
		return r.Kind == types.EntityProfile && r.Owner == p.ID
	}

	switch r.Kind {
	case types.EntityOrganization,
		types.EntityProfile,
		types.EntityCampaign,
		types.EntityAudit,
		types.EntityKeyword,
		types.EntityActivity:
		return true
	case types.EntityTask:
		return p.Role.IsManager() ||
			r.AssignedTo == p.ID ||
			(r.AssignedRole != "" && r.AssignedRole == p.Role)
	case types.EntityContent:
		return p.Role.IsManager() ||
			p.Role == types.RoleContentStrategist ||
			r.AssignedTo == p.ID
	default:
		return false
	}
}

func canWrite(p model.Principal, action types.AccessAction, r Resource) bool {
	switch r.Kind {
	case types.EntityProfile:
		// profile creation is identity-provider driven, never direct
		return action == types.ActionUpdate && r.Owner == p.ID
	case types.EntityCampaign:
		return sameOrganization(p, r) && p.Role.IsManager()
	case types.EntityTask:
		if !sameOrganization(p, r) {
			return false
		}
		if action == types.ActionCreate {
			return p.Role.IsManager()
		}
		return p.Role.IsManager() || r.AssignedTo == p.ID
	default:
		// organizations are owner-managed, audits and keywords are
		// system-written, content enforcement stops at recording, and
		// activity entries are never written directly
		return false
	}
}

func sameOrganization(p model.Principal, r Resource) bool {
	return p.OrganizationID != "" && p.OrganizationID == r.OrganizationID
}
