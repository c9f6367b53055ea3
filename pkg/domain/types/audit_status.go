package types

import "github.com/m-mizutani/goerr/v2"

// AuditStatus represents the status of an audit run. The lifecycle is
// linear: pending → running → completed | failed. Completed and failed
// are terminal.
type AuditStatus string

const (
	AuditStatusPending   AuditStatus = "pending"
	AuditStatusRunning   AuditStatus = "running"
	AuditStatusCompleted AuditStatus = "completed"
	AuditStatusFailed    AuditStatus = "failed"
)

// AllAuditStatuses returns all valid audit statuses
func AllAuditStatuses() []AuditStatus {
	return []AuditStatus{
		AuditStatusPending,
		AuditStatusRunning,
		AuditStatusCompleted,
		AuditStatusFailed,
	}
}

// IsValid checks if the audit status is valid
func (s AuditStatus) IsValid() bool {
	switch s {
	case AuditStatusPending,
		AuditStatusRunning,
		AuditStatusCompleted,
		AuditStatusFailed:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transitions are allowed
func (s AuditStatus) IsTerminal() bool {
	return s == AuditStatusCompleted || s == AuditStatusFailed
}

// CanTransition reports whether the status may move to the given one.
// Running audits may be failed at any time by the orchestrator.
func (s AuditStatus) CanTransition(to AuditStatus) bool {
	if !to.IsValid() {
		return false
	}
	switch s {
	case AuditStatusPending:
		return to == AuditStatusRunning || to == AuditStatusFailed
	case AuditStatusRunning:
		return to == AuditStatusCompleted || to == AuditStatusFailed
	default:
		return false
	}
}

// String returns the string representation of the audit status
func (s AuditStatus) String() string {
	return string(s)
}

// ParseAuditStatus parses a string into an AuditStatus
func ParseAuditStatus(s string) (AuditStatus, error) {
	status := AuditStatus(s)
	if !status.IsValid() {
		return "", goerr.Wrap(ErrInvalidStatus, "unknown audit status", goerr.V("status", s))
	}
	return status, nil
}
