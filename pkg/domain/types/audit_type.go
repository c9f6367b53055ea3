package types

import "github.com/m-mizutani/goerr/v2"

// AuditType represents the kind of analysis an audit performs
type AuditType string

const (
	AuditTypeTechnical  AuditType = "technical"
	AuditTypeContent    AuditType = "content"
	AuditTypeBacklink   AuditType = "backlink"
	AuditTypeCompetitor AuditType = "competitor"
)

// AllAuditTypes returns all valid audit types
func AllAuditTypes() []AuditType {
	return []AuditType{
		AuditTypeTechnical,
		AuditTypeContent,
		AuditTypeBacklink,
		AuditTypeCompetitor,
	}
}

// IsValid checks if the audit type is valid
func (t AuditType) IsValid() bool {
	switch t {
	case AuditTypeTechnical,
		AuditTypeContent,
		AuditTypeBacklink,
		AuditTypeCompetitor:
		return true
	default:
		return false
	}
}

// String returns the string representation of the audit type
func (t AuditType) String() string {
	return string(t)
}

// ParseAuditType parses a string into an AuditType
func ParseAuditType(s string) (AuditType, error) {
	at := AuditType(s)
	if !at.IsValid() {
		return "", goerr.Wrap(ErrInvalidType, "unknown audit type", goerr.V("type", s))
	}
	return at, nil
}
