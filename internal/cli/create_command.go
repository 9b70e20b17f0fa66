package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"taskboard/internal/api"
	"taskboard/internal/domain"
)

// CreateCommand handles the create command
type CreateCommand struct {
	dashboard api.Dashboard
}

// NewCreateCommand creates a new create command handler
func NewCreateCommand(dashboard api.Dashboard) *CreateCommand {
	return &CreateCommand{dashboard: dashboard}
}

// Execute runs the create command
func (c *CreateCommand) Execute(ctx context.Context, cmd *cobra.Command) error {
	flags := cmd.Flags()

	title, _ := flags.GetString("title")
	description, _ := flags.GetString("description")
	assignee, _ := flags.GetString("assignee")
	priority, _ := flags.GetString("priority")
	status, _ := flags.GetString("status")
	due, _ := flags.GetString("due")
	tags, _ := flags.GetStringSlice("tags")

	task, err := c.dashboard.CreateTask(ctx, domain.NewTaskFields{
		Title:       title,
		Description: description,
		AssignedTo:  assignee,
		Priority:    priority,
		Status:      status,
		DueDate:     due,
		Tags:        tags,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Created task %s: %s\n", task.ID, task.Title)
	return nil
}
