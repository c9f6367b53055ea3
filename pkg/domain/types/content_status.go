package types

import "github.com/m-mizutani/goerr/v2"

// ContentStatus represents the lifecycle stage of a content piece.
// The lifecycle is linear (brief → draft → review → published); moving
// backward requires an explicit manager override which is only recorded,
// not enforced, by this package.
type ContentStatus string

const (
	ContentStatusBrief     ContentStatus = "brief"
	ContentStatusDraft     ContentStatus = "draft"
	ContentStatusReview    ContentStatus = "review"
	ContentStatusPublished ContentStatus = "published"
)

// AllContentStatuses returns all valid content statuses
func AllContentStatuses() []ContentStatus {
	return []ContentStatus{
		ContentStatusBrief,
		ContentStatusDraft,
		ContentStatusReview,
		ContentStatusPublished,
	}
}

// IsValid checks if the content status is valid
func (s ContentStatus) IsValid() bool {
	switch s {
	case ContentStatusBrief,
		ContentStatusDraft,
		ContentStatusReview,
		ContentStatusPublished:
		return true
	default:
		return false
	}
}

// String returns the string representation of the content status
func (s ContentStatus) String() string {
	return string(s)
}

// ParseContentStatus parses a string into a ContentStatus
func ParseContentStatus(s string) (ContentStatus, error) {
	status := ContentStatus(s)
	if !status.IsValid() {
		return "", goerr.Wrap(ErrInvalidStatus, "unknown content status", goerr.V("status", s))
	}
	return status, nil
}
