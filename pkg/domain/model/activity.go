package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/seoward-lab/seoward/pkg/domain/types"
)

// ErrMalformedActivityEntry is returned when a required field of an
// activity entry is missing. Activity history is relied on for audit
// and compliance, so malformed entries fail the whole operation rather
// than being dropped.
var ErrMalformedActivityEntry = goerr.New("malformed activity entry")

// Activity action verbs recorded by the engine
const (
	ActivityCreated   = "created"
	ActivityMerged    = "merged"
	ActivityUpdated   = "updated"
	ActivityDeleted   = "deleted"
	ActivityCompleted = "completed"
	ActivityFailed    = "failed"
)

// ActivityEntry is one immutable record of a state transition. Entries
// are append-only; nothing in this codebase updates or deletes them.
type ActivityEntry struct {
	ID             types.ActivityID `json:"id"`
	OrganizationID types.OrgID      `json:"organization_id"`
	CampaignID     types.CampaignID `json:"campaign_id,omitempty"`
	ActorID        types.ProfileID  `json:"actor_id"`
	Action         string           `json:"action"`
	EntityType     types.EntityKind `json:"entity_type"`
	EntityID       string           `json:"entity_id"`
	Details        map[string]any   `json:"details,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
}

// Validate rejects entries missing a required field. CampaignID and
// Details are optional; everything else is mandatory.
func (e *ActivityEntry) Validate() error {
	if e.OrganizationID == "" {
		return goerr.Wrap(ErrMalformedActivityEntry, "organization is required")
	}
	if e.ActorID == "" {
		return goerr.Wrap(ErrMalformedActivityEntry, "actor is required",
			goerr.V("action", e.Action))
	}
	if e.Action == "" {
		return goerr.Wrap(ErrMalformedActivityEntry, "action verb is required",
			goerr.V("entity_type", e.EntityType))
	}
	if !e.EntityType.IsValid() {
		return goerr.Wrap(ErrMalformedActivityEntry, "entity type is not recognized",
			goerr.V("entity_type", e.EntityType))
	}
	if e.EntityID == "" {
		return goerr.Wrap(ErrMalformedActivityEntry, "entity ID is required",
			goerr.V("entity_type", e.EntityType))
	}
	return nil
}
