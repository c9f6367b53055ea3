package usecase

import "errors"

// Sentinel errors for the use case layer
var (
	// Access control errors
	ErrAccessDenied = errors.New("access denied")

	// State errors
	ErrAuditNotEligible = errors.New("audit is not eligible for task building")
)

// Context keys for error values
const (
	AuditIDKey    = "audit_id"
	CampaignIDKey = "campaign_id"
	TaskIDKey     = "task_id"
	ProfileIDKey  = "profile_id"
)
