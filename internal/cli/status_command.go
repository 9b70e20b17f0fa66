package cli

import (
	"context"
	"fmt"

	"taskboard/internal/api"
)

// StatusCommand handles the status command
type StatusCommand struct {
	dashboard api.Dashboard
}

// NewStatusCommand creates a new status command handler
func NewStatusCommand(dashboard api.Dashboard) *StatusCommand {
	return &StatusCommand{dashboard: dashboard}
}

// Execute runs the status command. args are the validated positional
// arguments: task id and new status.
func (c *StatusCommand) Execute(ctx context.Context, args []string) error {
	id, status := args[0], args[1]

	if err := c.dashboard.UpdateStatus(ctx, id, status); err != nil {
		return err
	}

	// An unknown id is a silent no-op upstream; only report when the task
	// is actually present.
	if task, err := c.dashboard.FindTask(id); err == nil {
		fmt.Printf("Task %s is now %s\n", task.ID, task.Status)
	}
	return nil
}
