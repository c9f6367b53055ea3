package types

import "github.com/m-mizutani/goerr/v2"

// TaskType represents the category of remediation work a task carries.
// TaskTypeReview exists only for the all-clear sentinel emitted when an
// audit reports zero issues.
type TaskType string

const (
	TaskTypeTechnical    TaskType = "technical"
	TaskTypeContent      TaskType = "content"
	TaskTypeLinkBuilding TaskType = "link_building"
	TaskTypeOptimization TaskType = "optimization"
	TaskTypeReview       TaskType = "review"
)

// AllTaskTypes returns all valid task types
func AllTaskTypes() []TaskType {
	return []TaskType{
		TaskTypeTechnical,
		TaskTypeContent,
		TaskTypeLinkBuilding,
		TaskTypeOptimization,
		TaskTypeReview,
	}
}

// IsValid checks if the task type is valid
func (t TaskType) IsValid() bool {
	switch t {
	case TaskTypeTechnical,
		TaskTypeContent,
		TaskTypeLinkBuilding,
		TaskTypeOptimization,
		TaskTypeReview:
		return true
	default:
		return false
	}
}

// String returns the string representation of the task type
func (t TaskType) String() string {
	return string(t)
}

// ParseTaskType parses a string into a TaskType
func ParseTaskType(s string) (TaskType, error) {
	tt := TaskType(s)
	if !tt.IsValid() {
		return "", goerr.Wrap(ErrInvalidType, "unknown task type", goerr.V("type", s))
	}
	return tt, nil
}
