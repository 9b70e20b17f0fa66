package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"taskboard/internal/api"
)

// ExportCommand handles the export command
type ExportCommand struct {
	dashboard api.Dashboard
}

// NewExportCommand creates a new export command handler
func NewExportCommand(dashboard api.Dashboard) *ExportCommand {
	return &ExportCommand{dashboard: dashboard}
}

// Execute runs the export command. The export covers the filtered (not
// paginated) task set; "-" writes to stdout, otherwise the document goes
// to the named file or the conventional tasks_<date>.csv.
func (c *ExportCommand) Execute(cmd *cobra.Command, args []string) error {
	if search, _ := cmd.Flags().GetString("search"); search != "" {
		c.dashboard.SetSearchTerm(search)
	}
	if filter, _ := cmd.Flags().GetString("filter"); filter != "" {
		if err := c.dashboard.SetFilter(filter); err != nil {
			return err
		}
	}

	target := c.dashboard.ExportFilename()
	if len(args) == 1 {
		target = args[0]
	}

	if target == "-" {
		return c.dashboard.ExportCSV(os.Stdout)
	}

	f, err := os.Create(target)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()

	if err := c.dashboard.ExportCSV(f); err != nil {
		return err
	}

	fmt.Printf("Exported to %s\n", target)
	return nil
}
