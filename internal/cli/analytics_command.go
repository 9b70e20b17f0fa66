package cli

import (
	"fmt"
	"strings"

	"taskboard/internal/api"
)

// AnalyticsCommand handles the analytics command
type AnalyticsCommand struct {
	dashboard api.Dashboard
}

// NewAnalyticsCommand creates a new analytics command handler
func NewAnalyticsCommand(dashboard api.Dashboard) *AnalyticsCommand {
	return &AnalyticsCommand{dashboard: dashboard}
}

// Execute prints the analytics metrics
func (c *AnalyticsCommand) Execute() error {
	analytics := c.dashboard.GetAnalytics()

	fmt.Printf("Avg completion time: %.1f days\n", analytics.AvgCompletionDays)
	fmt.Printf("On-time rate:        %d%%\n", analytics.OnTimeRate)
	fmt.Printf("Top performer:       %s\n", analytics.TopPerformer)
	fmt.Printf("Bottlenecks:         %d\n", analytics.BottleneckCount)

	weekly := make([]string, len(analytics.WeeklyCompletions))
	for i, n := range analytics.WeeklyCompletions {
		weekly[i] = fmt.Sprintf("%d", n)
	}
	fmt.Printf("Weekly completions:  %s\n", strings.Join(weekly, " "))

	if len(analytics.TeamDistribution) > 0 {
		fmt.Println("\nTasks per member:")
		for _, entry := range analytics.TeamDistribution {
			fmt.Printf("  %-24s %d\n", entry.Name, entry.Count)
		}
	}
	return nil
}
