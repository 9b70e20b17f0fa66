package domain

import "time"

// Task represents a task in the domain model.
// This is a pure domain model; the record coercion used at the dataset
// load boundary lives in the Mapper.
type Task struct {
	ID            string
	Title         string
	Description   string
	AssignedTo    string
	Member        Member
	Priority      Priority
	Status        Status
	DueDate       time.Time
	CreatedDate   time.Time
	CompletedDate *time.Time // present only for completed tasks
	Progress      int
	Tags          []string
}

// Member holds the display attributes of the person a task is assigned to.
type Member struct {
	Name       string
	Role       string
	Department string
	Avatar     string
}

// NewTaskFields is the raw user input for task creation, before
// validation and normalization.
type NewTaskFields struct {
	Title       string
	Description string
	AssignedTo  string
	Priority    string
	Status      string
	DueDate     string
	Tags        []string
}

// IsOverdue reports whether the task is past its due date and not completed.
// Overdue is always derived, never stored.
func (t Task) IsOverdue(now time.Time) bool {
	if t.Status == StatusCompleted {
		return false
	}
	if t.DueDate.IsZero() {
		return false
	}
	return t.DueDate.Before(now)
}

// IsValid checks if the task has the minimum required data.
func (t Task) IsValid() bool {
	return t.ID != "" && t.Title != ""
}

// String returns the task title for display purposes.
func (t Task) String() string {
	return t.Title
}
