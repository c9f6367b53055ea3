package types

import "github.com/m-mizutani/goerr/v2"

// Priority represents the urgency of a task, from low to urgent
type Priority int

const (
	PriorityLow    Priority = 0
	PriorityMedium Priority = 1
	PriorityHigh   Priority = 2
	PriorityUrgent Priority = 3
)

// AllPriorities returns all valid priorities
func AllPriorities() []Priority {
	return []Priority{
		PriorityLow,
		PriorityMedium,
		PriorityHigh,
		PriorityUrgent,
	}
}

// IsValid checks if the priority is valid
func (p Priority) IsValid() bool {
	return p >= PriorityLow && p <= PriorityUrgent
}

// String returns a human readable label for the priority
func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "low"
	case PriorityMedium:
		return "medium"
	case PriorityHigh:
		return "high"
	case PriorityUrgent:
		return "urgent"
	default:
		return "unknown"
	}
}

// ParsePriority validates an integer priority level
func ParsePriority(n int) (Priority, error) {
	p := Priority(n)
	if !p.IsValid() {
		return 0, goerr.Wrap(ErrInvalidPriority, "priority must be between 0 and 3", goerr.V("priority", n))
	}
	return p, nil
}
