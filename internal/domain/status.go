package domain

import "strings"

// Status represents the lifecycle state of a task.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

// NormalizeStatus converts a raw status token into its canonical form:
// lowercase with spaces replaced by hyphens ("In Progress" -> "in-progress").
func NormalizeStatus(raw string) Status {
	token := strings.ToLower(strings.TrimSpace(raw))
	token = strings.ReplaceAll(token, " ", "-")
	return Status(token)
}

// Valid checks if the status is one of the known lifecycle states.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Priority represents the urgency of a task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// NormalizePriority converts a raw priority token into its canonical form.
func NormalizePriority(raw string) Priority {
	token := strings.ToLower(strings.TrimSpace(raw))
	token = strings.ReplaceAll(token, " ", "-")
	return Priority(token)
}

// Valid checks if the priority is one of the known urgency levels.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Rank returns the numeric weight used when sorting by priority.
// Higher urgency sorts as a larger value.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

// ProgressForStatus derives the initial progress percentage for a task
// created with the given status.
func ProgressForStatus(s Status) int {
	switch s {
	case StatusCompleted:
		return 100
	case StatusInProgress:
		return 50
	default:
		return 0
	}
}
