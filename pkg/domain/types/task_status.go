package types

import "github.com/m-mizutani/goerr/v2"

// TaskStatus represents the status of a task
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusReview     TaskStatus = "review"
	TaskStatusDone       TaskStatus = "done"
)

// AllTaskStatuses returns all valid task statuses
func AllTaskStatuses() []TaskStatus {
	return []TaskStatus{
		TaskStatusPending,
		TaskStatusInProgress,
		TaskStatusReview,
		TaskStatusDone,
	}
}

// IsValid checks if the task status is valid
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusPending,
		TaskStatusInProgress,
		TaskStatusReview,
		TaskStatusDone:
		return true
	default:
		return false
	}
}

// IsOpen reports whether the task still counts for duplicate suppression.
// Every status except done is open.
func (s TaskStatus) IsOpen() bool {
	return s.IsValid() && s != TaskStatusDone
}

// String returns the string representation of the task status
func (s TaskStatus) String() string {
	return string(s)
}

// ParseTaskStatus parses a string into a TaskStatus
func ParseTaskStatus(s string) (TaskStatus, error) {
	status := TaskStatus(s)
	if !status.IsValid() {
		return "", goerr.Wrap(ErrInvalidStatus, "unknown task status", goerr.V("status", s))
	}
	return status, nil
}
