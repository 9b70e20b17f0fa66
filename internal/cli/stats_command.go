package cli

import (
	"fmt"

	"taskboard/internal/api"
)

// StatsCommand handles the stats command
type StatsCommand struct {
	dashboard api.Dashboard
}

// NewStatsCommand creates a new stats command handler
func NewStatsCommand(dashboard api.Dashboard) *StatsCommand {
	return &StatsCommand{dashboard: dashboard}
}

// Execute prints the summary counters
func (c *StatsCommand) Execute() error {
	counts := c.dashboard.GetStatistics()

	fmt.Printf("Total:       %d\n", counts.Total)
	fmt.Printf("Completed:   %d\n", counts.Completed)
	fmt.Printf("In progress: %d\n", counts.InProgress)
	fmt.Printf("Pending:     %d\n", counts.Pending)
	fmt.Printf("Overdue:     %d\n", counts.Overdue)
	return nil
}
