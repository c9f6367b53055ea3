package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/seoward-lab/seoward/pkg/domain/types"
)

// Organization is the tenant boundary. Every other entity traces back
// to exactly one organization, directly or via its campaign.
type Organization struct {
	ID        types.OrgID     `json:"id"`
	Name      string          `json:"name"`
	Slug      string          `json:"slug"`
	OwnerID   types.ProfileID `json:"owner_id"`
	Settings  map[string]any  `json:"settings,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Validate checks organization invariants before the write boundary
func (o *Organization) Validate() error {
	if o.Name == "" {
		return goerr.New("organization name is required")
	}
	if o.Slug == "" {
		return goerr.New("organization slug is required", goerr.V("name", o.Name))
	}
	if err := o.OwnerID.Validate(); err != nil {
		return goerr.Wrap(err, "organization owner is required", goerr.V("slug", o.Slug))
	}
	return nil
}
