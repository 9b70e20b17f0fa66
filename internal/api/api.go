package api

import (
	"context"
	"io"
	"time"

	"taskboard/internal/dataset"
	"taskboard/internal/domain"
	"taskboard/internal/errors"
	"taskboard/internal/export"
	"taskboard/internal/logging"
	"taskboard/internal/persistence"
	"taskboard/internal/repository/kv"
	"taskboard/internal/stats"
	"taskboard/internal/store"
	"taskboard/internal/validation"
	"taskboard/internal/view"
)

// Dashboard is the presentation-facing contract: everything a rendering
// layer needs to display the task board and route user interactions back
// into the core.
type Dashboard interface {
	// Lifecycle
	Load(ctx context.Context) error
	Reload(ctx context.Context) error

	// Derived views
	GetVisiblePage() view.Page
	GetStatistics() stats.Counts
	GetAnalytics() stats.Analytics
	TeamMembers() []domain.TeamMember

	// View-state mutations
	SetSearchTerm(term string)
	SetFilter(filter string) error
	SetSort(column string) error
	SetPage(n int)

	// Task mutations
	CreateTask(ctx context.Context, fields domain.NewTaskFields) (*domain.Task, error)
	UpdateStatus(ctx context.Context, id string, status string) error
	FindTask(id string) (*domain.Task, error)

	// Export
	ExportCSV(w io.Writer) error
	ExportFilename() string
}

type dashboardImpl struct {
	loader        *dataset.Loader
	adapter       *persistence.Adapter
	tasks         *store.TaskStore
	engine        *view.Engine
	aggregator    *stats.Aggregator
	exporter      *export.CSVExporter
	taskValidator *validation.TaskValidator

	teamMembers  []domain.TeamMember
	datasetStats *domain.DatasetStatistics

	// replaceable in tests for deterministic overdue and filename checks
	now func() time.Time
}

// New creates a Dashboard over the given dataset source and key-value store.
func New(source string, kvStore kv.Store) Dashboard {
	adapter := persistence.NewAdapter(kvStore)
	return &dashboardImpl{
		loader:        dataset.NewLoader(source),
		adapter:       adapter,
		tasks:         store.New(adapter),
		engine:        view.NewEngine(),
		aggregator:    stats.NewAggregator(),
		exporter:      export.NewCSVExporter(),
		taskValidator: validation.NewTaskValidator(),
		now:           time.Now,
	}
}

// Load fetches the static dataset and seeds the task store, applying
// persisted overrides and user-created tasks. A load failure is returned
// for the caller to surface but leaves the store empty rather than
// aborting the session.
func (d *dashboardImpl) Load(ctx context.Context) error {
	ds, err := d.loader.Load(ctx)
	if err != nil {
		return err
	}

	d.teamMembers = ds.TeamMembers
	d.datasetStats = ds.Statistics
	d.tasks.Load(ctx, ds.Tasks)
	return nil
}

// Reload refetches the dataset and replays the persisted state on top of
// it. The view state is kept; only the collection is rebuilt.
func (d *dashboardImpl) Reload(ctx context.Context) error {
	return d.Load(ctx)
}

// GetVisiblePage derives the current visible page from the collection.
func (d *dashboardImpl) GetVisiblePage() view.Page {
	return d.engine.VisiblePage(d.tasks.All(), d.now())
}

// GetStatistics computes the summary counters over the full collection.
func (d *dashboardImpl) GetStatistics() stats.Counts {
	return d.aggregator.BasicCounts(d.tasks.All(), d.now())
}

// GetAnalytics computes the analytics metrics over the full collection
// and the team roster.
func (d *dashboardImpl) GetAnalytics() stats.Analytics {
	return d.aggregator.Compute(d.tasks.All(), d.teamMembers, d.datasetStats, d.now())
}

// TeamMembers returns the roster loaded from the dataset.
func (d *dashboardImpl) TeamMembers() []domain.TeamMember {
	return append([]domain.TeamMember(nil), d.teamMembers...)
}

// SetSearchTerm updates the search term and resets to the first page.
func (d *dashboardImpl) SetSearchTerm(term string) {
	d.engine.SetSearch(term)
}

// SetFilter activates a category filter and resets to the first page.
func (d *dashboardImpl) SetFilter(filter string) error {
	f := domain.Filter(filter)
	if !f.Valid() {
		return errors.NewInvalidInputError("filter", filter, "must be all, pending, in-progress, completed or overdue")
	}
	d.engine.SetFilter(f)
	return nil
}

// SetSort activates sorting on a column, toggling direction when the
// column is already active. The current page is kept.
func (d *dashboardImpl) SetSort(column string) error {
	c := domain.SortColumn(column)
	if !c.Valid() {
		return errors.NewInvalidInputError("sort", column, "must be priority, dueDate or status")
	}
	d.engine.SetSort(c)
	return nil
}

// SetPage moves to page n; out-of-range requests are no-ops.
func (d *dashboardImpl) SetPage(n int) {
	d.engine.SetPage(n, d.tasks.All(), d.now())
}

// CreateTask validates the input fields, allocates the next id, derives
// the initial progress from the chosen status, inserts the task at the
// front of the collection and persists it. The view resets to page 1.
func (d *dashboardImpl) CreateTask(ctx context.Context, fields domain.NewTaskFields) (*domain.Task, error) {
	if err := d.taskValidator.ValidateTaskForCreation(fields); err != nil {
		return nil, errors.NewValidationError("invalid task input", err)
	}

	status := domain.NormalizeStatus(fields.Status)
	if fields.Status == "" {
		status = domain.StatusPending
	}
	priority := domain.NormalizePriority(fields.Priority)
	if fields.Priority == "" {
		priority = domain.PriorityMedium
	}

	due, err := time.Parse(domain.DateFormat, fields.DueDate)
	if err != nil {
		return nil, errors.NewValidationError("invalid due date", err)
	}

	now := d.now()
	task := domain.Task{
		ID:          d.tasks.NextID(),
		Title:       fields.Title,
		Description: fields.Description,
		AssignedTo:  fields.AssignedTo,
		Member:      domain.Member{Name: fields.AssignedTo},
		Priority:    priority,
		Status:      status,
		DueDate:     due,
		CreatedDate: time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
		Progress:    domain.ProgressForStatus(status),
		Tags:        append([]string(nil), fields.Tags...),
	}

	if err := d.tasks.Insert(task); err != nil {
		return nil, err
	}
	if err := d.adapter.SaveUserCreatedTask(ctx, task); err != nil {
		return nil, err
	}

	d.engine.ResetPage()
	return &task, nil
}

// UpdateStatus changes a task's status and persists the override. An
// unknown id is silently ignored rather than surfaced as an error.
func (d *dashboardImpl) UpdateStatus(ctx context.Context, id string, status string) error {
	if err := d.taskValidator.ValidateStatus(status); err != nil {
		return errors.NewValidationError("invalid status", err)
	}

	err := d.tasks.UpdateStatus(ctx, id, domain.NormalizeStatus(status))
	if errors.IsErrorType(err, errors.ErrorTypeNotFound) {
		logging.Debugf("status update for unknown task id %s ignored\n", id)
		return nil
	}
	return err
}

// FindTask returns the task with the given id from the merged collection.
func (d *dashboardImpl) FindTask(id string) (*domain.Task, error) {
	return d.tasks.FindByID(id)
}

// ExportCSV writes the currently filtered (not paginated) task set to w.
func (d *dashboardImpl) ExportCSV(w io.Writer) error {
	matches := d.engine.Matches(d.tasks.All(), d.now())
	return d.exporter.Write(w, matches)
}

// ExportFilename returns the conventional filename for today's export.
func (d *dashboardImpl) ExportFilename() string {
	return d.exporter.Filename(d.now())
}
