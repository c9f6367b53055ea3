package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/seoward-lab/seoward/pkg/domain/types"
)

// Content is one content piece moving through the brief → draft →
// review → published lifecycle. Transitions are recorded, not enforced,
// beyond validating the status enumeration.
type Content struct {
	ID             types.ContentID     `json:"id"`
	CampaignID     types.CampaignID    `json:"campaign_id"`
	Title          string              `json:"title"`
	Status         types.ContentStatus `json:"status"`
	Brief          map[string]any      `json:"brief,omitempty"`
	Body           string              `json:"body,omitempty"`
	TargetKeywords []string            `json:"target_keywords,omitempty"`
	WordCount      int                 `json:"word_count"`
	AssignedTo     types.ProfileID     `json:"assigned_to,omitempty"`
	PublishedURL   string              `json:"published_url,omitempty"`
	PublishedAt    *time.Time          `json:"published_at,omitempty"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

// Validate checks content invariants before the write boundary
func (c *Content) Validate() error {
	if err := c.CampaignID.Validate(); err != nil {
		return goerr.Wrap(err, "content must belong to a campaign")
	}
	if c.Title == "" {
		return goerr.New("content title is required", goerr.V("content_id", c.ID))
	}
	if !c.Status.IsValid() {
		return goerr.Wrap(types.ErrInvalidStatus, "content status is not recognized",
			goerr.V("status", c.Status), goerr.V("content_id", c.ID))
	}
	return nil
}
