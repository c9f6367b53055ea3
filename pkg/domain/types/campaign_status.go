package types

import "github.com/m-mizutani/goerr/v2"

// CampaignStatus represents the status of a campaign
type CampaignStatus string

const (
	CampaignStatusActive   CampaignStatus = "active"
	CampaignStatusPaused   CampaignStatus = "paused"
	CampaignStatusArchived CampaignStatus = "archived"
)

// AllCampaignStatuses returns all valid campaign statuses
func AllCampaignStatuses() []CampaignStatus {
	return []CampaignStatus{
		CampaignStatusActive,
		CampaignStatusPaused,
		CampaignStatusArchived,
	}
}

// IsValid checks if the campaign status is valid
func (s CampaignStatus) IsValid() bool {
	switch s {
	case CampaignStatusActive,
		CampaignStatusPaused,
		CampaignStatusArchived:
		return true
	default:
		return false
	}
}

// String returns the string representation of the campaign status
func (s CampaignStatus) String() string {
	return string(s)
}

// ParseCampaignStatus parses a string into a CampaignStatus
func ParseCampaignStatus(s string) (CampaignStatus, error) {
	status := CampaignStatus(s)
	if !status.IsValid() {
		return "", goerr.Wrap(ErrInvalidStatus, "unknown campaign status", goerr.V("status", s))
	}
	return status, nil
}
