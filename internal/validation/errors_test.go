package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError_Error(t *testing.T) {
	t.Run("no errors", func(t *testing.T) {
		ve := NewValidationError()
		assert.Equal(t, "validation error", ve.Error())
	})

	t.Run("single error", func(t *testing.T) {
		ve := NewValidationError()
		ve.AddRequiredError("title")
		assert.Equal(t, "validation error for field 'title': title is required", ve.Error())
	})

	t.Run("multiple errors", func(t *testing.T) {
		ve := NewValidationError()
		ve.AddRequiredError("title")
		ve.AddRequiredError("dueDate")
		assert.Contains(t, ve.Error(), "multiple validation errors")
	})
}

func TestValidationError_HasErrors(t *testing.T) {
	ve := NewValidationError()
	assert.False(t, ve.HasErrors())

	ve.AddInvalidValueError("priority", "urgent", "must be low, medium or high")
	assert.True(t, ve.HasErrors())
}

func TestValidationError_MissingFields(t *testing.T) {
	ve := NewValidationError()
	ve.AddRequiredError("title")
	ve.AddInvalidFormatError("dueDate", "soon", "2006-01-02")
	ve.AddRequiredError("assignedTo")

	assert.Equal(t, []string{"title", "assignedTo"}, ve.MissingFields())
}

func TestValidationError_GetFieldErrors(t *testing.T) {
	ve := NewValidationError()
	ve.AddRequiredError("dueDate")
	ve.AddInvalidFormatError("dueDate", "soon", "2006-01-02")
	ve.AddRequiredError("title")

	fieldErrors := ve.GetFieldErrors("dueDate")
	require.Len(t, fieldErrors, 2)
	assert.Equal(t, ErrorTypeRequired, fieldErrors[0].Type)
	assert.Equal(t, ErrorTypeInvalidFormat, fieldErrors[1].Type)
}

func TestValidationError_GetUserFriendlyMessage(t *testing.T) {
	ve := NewValidationError()
	ve.AddRequiredError("title")
	assert.Equal(t, "title is required", ve.GetUserFriendlyMessage())

	ve.AddRequiredError("dueDate")
	assert.Contains(t, ve.GetUserFriendlyMessage(), "Multiple validation errors occurred")
}

func TestIsValidationError(t *testing.T) {
	assert.True(t, IsValidationError(NewValidationError()))
	assert.False(t, IsValidationError(errors.New("plain")))
}
