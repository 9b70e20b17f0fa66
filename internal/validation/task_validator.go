package validation

import (
	"taskboard/internal/domain"
)

// TaskValidator provides validation for task-related operations
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(),
	}
}

// ValidateTaskForCreation validates the raw input fields for task creation.
// Title, assignee and due date are required; priority and status must
// normalize to known tokens when present.
func (tv *TaskValidator) ValidateTaskForCreation(fields domain.NewTaskFields) error {
	validationError := NewValidationError()

	if !tv.validator.IsNonEmptyString(fields.Title) {
		validationError.AddRequiredError("title")
	}

	if !tv.validator.IsNonEmptyString(fields.AssignedTo) {
		validationError.AddRequiredError("assignedTo")
	}

	if !tv.validator.IsNonEmptyString(fields.DueDate) {
		validationError.AddRequiredError("dueDate")
	} else if !tv.validator.IsValidDate(fields.DueDate) {
		validationError.AddInvalidFormatError("dueDate", fields.DueDate, domain.DateFormat)
	}

	if tv.validator.IsNonEmptyString(fields.Priority) && !tv.validator.IsValidPriority(fields.Priority) {
		validationError.AddInvalidValueError("priority", fields.Priority, "must be low, medium or high")
	}

	if tv.validator.IsNonEmptyString(fields.Status) && !tv.validator.IsValidStatus(fields.Status) {
		validationError.AddInvalidValueError("status", fields.Status, "must be pending, in-progress or completed")
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateTaskID validates a task id
func (tv *TaskValidator) ValidateTaskID(id string) error {
	if !tv.validator.IsNonEmptyString(id) {
		validationError := NewValidationError()
		validationError.AddRequiredError("id")
		return validationError
	}
	return nil
}

// ValidateStatus validates a raw status token for a status update
func (tv *TaskValidator) ValidateStatus(status string) error {
	if !tv.validator.IsValidStatus(status) {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("status", status, "must be pending, in-progress or completed")
		return validationError
	}
	return nil
}
