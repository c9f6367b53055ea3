package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/seoward-lab/seoward/pkg/domain/types"
)

// Keyword is a tracked search term for a campaign. SearchVolume and
// Difficulty are pass-through metrics from the external data provider;
// this system never computes them.
type Keyword struct {
	ID           types.KeywordID  `json:"id"`
	CampaignID   types.CampaignID `json:"campaign_id"`
	Text         string           `json:"text"`
	SearchVolume int              `json:"search_volume"`
	Difficulty   int              `json:"difficulty"`
	CurrentRank  int              `json:"current_rank"`
	PreviousRank int              `json:"previous_rank"`
	Intent       string           `json:"intent,omitempty"`
	ClusterID    string           `json:"cluster_id,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// Validate checks keyword invariants before the write boundary
func (k *Keyword) Validate() error {
	if err := k.CampaignID.Validate(); err != nil {
		return goerr.Wrap(err, "keyword must belong to a campaign")
	}
	if k.Text == "" {
		return goerr.New("keyword text is required", goerr.V("keyword_id", k.ID))
	}
	return nil
}

// RankDelta returns the position change since the previous snapshot.
// Positive means the keyword moved up. Zero when either rank is unset.
func (k *Keyword) RankDelta() int {
	if k.CurrentRank == 0 || k.PreviousRank == 0 {
		return 0
	}
	return k.PreviousRank - k.CurrentRank
}
