package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"taskboard/internal/api"
	"taskboard/internal/domain"
	"taskboard/internal/view"
)

// ListCommand handles the list command
type ListCommand struct {
	dashboard api.Dashboard
}

// NewListCommand creates a new list command handler
func NewListCommand(dashboard api.Dashboard) *ListCommand {
	return &ListCommand{dashboard: dashboard}
}

// Execute runs the list command: it feeds the flag values into the view
// state and prints the derived visible page.
func (c *ListCommand) Execute(cmd *cobra.Command) error {
	if search, _ := cmd.Flags().GetString("search"); search != "" {
		c.dashboard.SetSearchTerm(search)
	}
	if filter, _ := cmd.Flags().GetString("filter"); filter != "" {
		if err := c.dashboard.SetFilter(filter); err != nil {
			return err
		}
	}
	if column, _ := cmd.Flags().GetString("sort"); column != "" {
		if err := c.dashboard.SetSort(column); err != nil {
			return err
		}
		if desc, _ := cmd.Flags().GetBool("desc"); desc {
			// A second toggle on the same column flips to descending.
			if err := c.dashboard.SetSort(column); err != nil {
				return err
			}
		}
	}
	if page, _ := cmd.Flags().GetInt("page"); page > 1 {
		c.dashboard.SetPage(page)
	}

	return c.printPage(c.dashboard.GetVisiblePage())
}

// printPage prints one line per task followed by a pagination footer
func (c *ListCommand) printPage(page view.Page) error {
	if len(page.Tasks) == 0 {
		fmt.Println("No tasks match the current view.")
		return nil
	}

	for _, task := range page.Tasks {
		fmt.Println(formatTaskLine(task))
	}
	fmt.Printf("\nPage %d of %d\n", page.CurrentPage, page.TotalPages)
	return nil
}

// formatTaskLine renders a task in the format:
// id [status] priority due=YYYY-MM-DD title (assignee) #tags
func formatTaskLine(task domain.Task) string {
	due := "-"
	if !task.DueDate.IsZero() {
		due = task.DueDate.Format(domain.DateFormat)
	}

	line := fmt.Sprintf("%s [%s] %s due=%s %s (%s)",
		task.ID, task.Status, task.Priority, due, task.Title, task.AssignedTo)
	if len(task.Tags) > 0 {
		line += " #" + strings.Join(task.Tags, " #")
	}
	return line
}
