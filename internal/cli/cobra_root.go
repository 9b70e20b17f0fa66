package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"taskboard/internal/api"
	"taskboard/internal/config"
	"taskboard/internal/errors"
)

// DashboardFactory builds a Dashboard for a dataset source once flags and
// environment have been resolved.
type DashboardFactory func(source string) api.Dashboard

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd       *cobra.Command
	factory   DashboardFactory
	dashboard api.Dashboard
	config    *config.Config
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(factory DashboardFactory, cfg *config.Config) *RootCommand {
	root := &RootCommand{
		factory: factory,
		config:  cfg,
	}

	root.cmd = &cobra.Command{
		Use:   "taskboard",
		Short: "A command-line task tracking dashboard",
		Long: `Taskboard is a command-line dashboard over a static task dataset.

FEATURES:
  • Search, filter, sort and paginate the task collection
  • Create tasks and update task status, persisted locally
  • Summary statistics and analytics metrics
  • Export the filtered task set to CSV

EXAMPLES:
  taskboard list                             # First page of all tasks
  taskboard list --filter overdue            # Overdue tasks
  taskboard list --search api --sort dueDate # Search plus due-date ordering
  taskboard create --title "Fix login" --assignee "Ana" --due 2026-09-15
  taskboard status 12 completed              # Mark task 12 completed
  taskboard stats                            # Summary counters
  taskboard analytics                        # Analytics metrics
  taskboard export                           # CSV of the filtered set

CONFIGURATION:
  Configuration follows this priority order: flags > environment variables > config file > defaults

    TASKBOARD_DATASET                        Dataset file path or URL
    TASKBOARD_DB_DIR                         Local store directory (default: ~/.taskboard)
    TASKBOARD_DB_FILENAME                    Local store filename (default: taskboard.db)
    TASKBOARD_TIMEOUT                        Dataset fetch timeout (default: 30s)
    TASKBOARD_DEBUG                          Enable debug output when set

A failed dataset load is not fatal: the dashboard starts empty and a
notice is printed.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.loadDashboard()
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("dataset", "", "Dataset file path or URL (overrides TASKBOARD_DATASET)")
	flags.Duration("timeout", 0, "Dataset fetch timeout (overrides TASKBOARD_TIMEOUT)")
	flags.Bool("verbose", false, "Enable verbose output (overrides TASKBOARD_VERBOSE)")
}

// loadDashboard seeds the task store before any command runs. A load
// failure degrades to an empty dashboard plus a notice, never an abort.
func (r *RootCommand) loadDashboard() error {
	if err := r.getConfigFromFlags(); err != nil {
		return err
	}

	r.dashboard = r.factory(r.config.Dataset.Source)

	ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
	defer cancel()

	if err := r.dashboard.Load(ctx); err != nil {
		if errors.IsErrorType(err, errors.ErrorTypeLoad) {
			fmt.Fprintln(os.Stderr, errors.GetUserMessage(err))
			return nil
		}
		return err
	}
	return nil
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the visible page of tasks",
		Long: `List the current visible page of tasks after applying search,
filter, sort and pagination.

Examples:
  taskboard list
  taskboard list --filter completed
  taskboard list --search "login" --sort priority --desc
  taskboard list --page 2`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewListCommand(r.dashboard).Execute(cmd)
		},
	}
	listCmd.Flags().String("search", "", "Case-insensitive search over title, description and assignee")
	listCmd.Flags().String("filter", "", "Category filter: all, pending, in-progress, completed, overdue")
	listCmd.Flags().String("sort", "", "Sort column: priority, dueDate, status")
	listCmd.Flags().Bool("desc", false, "Sort descending (applies the sort toggle twice)")
	listCmd.Flags().Int("page", 1, "Page number (out-of-range requests are ignored)")

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new task",
		Long: `Create a new task and persist it locally. Title, assignee and due
date are required.

Example:
  taskboard create --title "Fix login" --assignee "Ana" --due 2026-09-15 --priority high`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()
			return NewCreateCommand(r.dashboard).Execute(ctx, cmd)
		},
	}
	createCmd.Flags().String("title", "", "Task title (required)")
	createCmd.Flags().String("description", "", "Task description")
	createCmd.Flags().String("assignee", "", "Assignee display name (required)")
	createCmd.Flags().String("priority", "", "Priority: low, medium, high (default medium)")
	createCmd.Flags().String("status", "", "Initial status: pending, in-progress, completed (default pending)")
	createCmd.Flags().String("due", "", "Due date, YYYY-MM-DD (required)")
	createCmd.Flags().StringSlice("tags", nil, "Comma-separated tags")

	statusCmd := &cobra.Command{
		Use:   "status [id] [status]",
		Short: "Update a task's status",
		Long: `Update the status of a task by id and persist the override.
An unknown id is silently ignored.

Example:
  taskboard status 12 completed`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()
			return NewStatusCommand(r.dashboard).Execute(ctx, args)
		},
	}

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Show summary statistics",
		Long:  "Show the summary counters derived from the full task collection.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewStatsCommand(r.dashboard).Execute()
		},
	}

	analyticsCmd := &cobra.Command{
		Use:   "analytics",
		Short: "Show analytics metrics",
		Long:  "Show the derived analytics metrics: completion time, on-time rate, top performer, bottlenecks and team distribution.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewAnalyticsCommand(r.dashboard).Execute()
		},
	}

	exportCmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Export the filtered task set to CSV",
		Long: `Export the currently filtered (not paginated) task set as CSV.
Without an argument the document is written to the conventional
tasks_<date>.csv file in the working directory; "-" writes to stdout.

Examples:
  taskboard export
  taskboard export - > tasks.csv
  taskboard export --filter completed completed.csv`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewExportCommand(r.dashboard).Execute(cmd, args)
		},
	}
	exportCmd.Flags().String("search", "", "Case-insensitive search over title, description and assignee")
	exportCmd.Flags().String("filter", "", "Category filter: all, pending, in-progress, completed, overdue")

	r.cmd.AddCommand(
		listCmd,
		createCmd,
		statusCmd,
		statsCmd,
		analyticsCmd,
		exportCmd,
	)
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.config != nil {
		return r.config.Application.Timeout
	}
	return 30 * time.Second
}

// getConfigFromFlags updates the configuration with values from command-line flags
func (r *RootCommand) getConfigFromFlags() error {
	if r.config == nil {
		return fmt.Errorf("configuration not initialized")
	}

	flags := r.cmd.PersistentFlags()

	if source, _ := flags.GetString("dataset"); source != "" {
		r.config.Dataset.Source = source
	}
	if timeout, _ := flags.GetDuration("timeout"); timeout > 0 {
		r.config.Application.Timeout = timeout
	}
	if verbose, _ := flags.GetBool("verbose"); verbose {
		r.config.Application.Verbose = verbose
	}

	return nil
}
