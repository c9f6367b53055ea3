package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/seoward-lab/seoward/pkg/domain/types"
)

// Campaign is one managed client site within an organization. Settings
// holds third-party credentials and keys as an opaque map; it is never
// interpreted here and is redacted from logs.
type Campaign struct {
	ID             types.CampaignID     `json:"id"`
	OrganizationID types.OrgID          `json:"organization_id"`
	Name           string               `json:"name"`
	Domain         string               `json:"domain"`
	Status         types.CampaignStatus `json:"status"`
	Settings       map[string]any       `json:"settings,omitempty"`
	CreatedAt      time.Time            `json:"created_at"`
	UpdatedAt      time.Time            `json:"updated_at"`
}

// Validate checks campaign invariants before the write boundary
func (c *Campaign) Validate() error {
	if err := c.OrganizationID.Validate(); err != nil {
		return goerr.Wrap(err, "campaign must belong to an organization")
	}
	if c.Name == "" {
		return goerr.New("campaign name is required")
	}
	if c.Domain == "" {
		return goerr.New("campaign domain is required", goerr.V("name", c.Name))
	}
	if !c.Status.IsValid() {
		return goerr.Wrap(types.ErrInvalidStatus, "campaign status is not recognized",
			goerr.V("status", c.Status), goerr.V("campaign_id", c.ID))
	}
	return nil
}
