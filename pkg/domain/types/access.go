package types

// AccessAction represents what a principal is attempting to do with an
// entity. Create and update are distinguished because the access rules
// differ for campaigns and tasks.
type AccessAction string

const (
	ActionRead   AccessAction = "read"
	ActionCreate AccessAction = "create"
	ActionUpdate AccessAction = "update"
)

// AllAccessActions returns all valid access actions
func AllAccessActions() []AccessAction {
	return []AccessAction{
		ActionRead,
		ActionCreate,
		ActionUpdate,
	}
}

// IsValid checks if the access action is valid
func (a AccessAction) IsValid() bool {
	switch a {
	case ActionRead, ActionCreate, ActionUpdate:
		return true
	default:
		return false
	}
}

// String returns the string representation of the access action
func (a AccessAction) String() string {
	return string(a)
}

// EntityKind identifies the kind of entity an access decision or an
// activity log entry refers to
type EntityKind string

const (
	EntityOrganization EntityKind = "organization"
	EntityProfile      EntityKind = "profile"
	EntityCampaign     EntityKind = "campaign"
	EntityAudit        EntityKind = "audit"
	EntityTask         EntityKind = "task"
	EntityKeyword      EntityKind = "keyword"
	EntityContent      EntityKind = "content"
	EntityActivity     EntityKind = "activity"
)

// AllEntityKinds returns all valid entity kinds
func AllEntityKinds() []EntityKind {
	return []EntityKind{
		EntityOrganization,
		EntityProfile,
		EntityCampaign,
		EntityAudit,
		EntityTask,
		EntityKeyword,
		EntityContent,
		EntityActivity,
	}
}

// IsValid checks if the entity kind is valid
func (k EntityKind) IsValid() bool {
	switch k {
	case EntityOrganization,
		EntityProfile,
		EntityCampaign,
		EntityAudit,
		EntityTask,
		EntityKeyword,
		EntityContent,
		EntityActivity:
		return true
	default:
		return false
	}
}

// String returns the string representation of the entity kind
func (k EntityKind) String() string {
	return string(k)
}
