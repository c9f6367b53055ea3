package types

import "github.com/m-mizutani/goerr/v2"

// Role represents the role of a profile within an organization
type Role string

const (
	RoleAdmin                  Role = "admin"
	RoleCampaignManager        Role = "campaign_manager"
	RoleContentStrategist      Role = "content_strategist"
	RoleContentCreator         Role = "content_creator"
	RoleOptimizationSpecialist Role = "optimization_specialist"
	RoleLinkBuilder            Role = "link_builder"
	RoleReportingManager       Role = "reporting_manager"
	RoleViewer                 Role = "viewer"
)

// AllRoles returns all valid roles
func AllRoles() []Role {
	return []Role{
		RoleAdmin,
		RoleCampaignManager,
		RoleContentStrategist,
		RoleContentCreator,
		RoleOptimizationSpecialist,
		RoleLinkBuilder,
		RoleReportingManager,
		RoleViewer,
	}
}

// IsValid checks if the role is valid
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin,
		RoleCampaignManager,
		RoleContentStrategist,
		RoleContentCreator,
		RoleOptimizationSpecialist,
		RoleLinkBuilder,
		RoleReportingManager,
		RoleViewer:
		return true
	default:
		return false
	}
}

// IsManager reports whether the role may create campaigns and tasks and
// reassign work. Only admin and campaign_manager qualify.
func (r Role) IsManager() bool {
	return r == RoleAdmin || r == RoleCampaignManager
}

// String returns the string representation of the role
func (r Role) String() string {
	return string(r)
}

// ParseRole parses a string into a Role
func ParseRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", goerr.Wrap(ErrInvalidRole, "unknown role", goerr.V("role", s))
	}
	return role, nil
}
