package types

import (
	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

// Opaque identifiers for each entity. All are UUID strings; an empty
// value means "unset" (e.g. a profile not yet onboarded to an
// organization, or a task with no individual assignee).

type OrgID string

func NewOrgID() OrgID           { return OrgID(uuid.NewString()) }
func (id OrgID) String() string { return string(id) }
func (id OrgID) Validate() error {
	return validateID("organization ID", string(id))
}

type ProfileID string

func NewProfileID() ProfileID       { return ProfileID(uuid.NewString()) }
func (id ProfileID) String() string { return string(id) }
func (id ProfileID) Validate() error {
	return validateID("profile ID", string(id))
}

type CampaignID string

func NewCampaignID() CampaignID      { return CampaignID(uuid.NewString()) }
func (id CampaignID) String() string { return string(id) }
func (id CampaignID) Validate() error {
	return validateID("campaign ID", string(id))
}

type AuditID string

func NewAuditID() AuditID         { return AuditID(uuid.NewString()) }
func (id AuditID) String() string { return string(id) }
func (id AuditID) Validate() error {
	return validateID("audit ID", string(id))
}

type TaskID string

func NewTaskID() TaskID          { return TaskID(uuid.NewString()) }
func (id TaskID) String() string { return string(id) }
func (id TaskID) Validate() error {
	return validateID("task ID", string(id))
}

type KeywordID string

func NewKeywordID() KeywordID       { return KeywordID(uuid.NewString()) }
func (id KeywordID) String() string { return string(id) }
func (id KeywordID) Validate() error {
	return validateID("keyword ID", string(id))
}

type ContentID string

func NewContentID() ContentID       { return ContentID(uuid.NewString()) }
func (id ContentID) String() string { return string(id) }
func (id ContentID) Validate() error {
	return validateID("content ID", string(id))
}

type ActivityID string

func NewActivityID() ActivityID      { return ActivityID(uuid.NewString()) }
func (id ActivityID) String() string { return string(id) }
func (id ActivityID) Validate() error {
	return validateID("activity ID", string(id))
}

func validateID(name, v string) error {
	if v == "" {
		return goerr.New(name + " cannot be empty")
	}
	return nil
}
