package domain

// Filter selects which slice of the task collection is visible.
type Filter string

const (
	FilterAll        Filter = "all"
	FilterPending    Filter = "pending"
	FilterInProgress Filter = "in-progress"
	FilterCompleted  Filter = "completed"
	FilterOverdue    Filter = "overdue"
)

// Valid checks if the filter is one of the known filter categories.
func (f Filter) Valid() bool {
	switch f {
	case FilterAll, FilterPending, FilterInProgress, FilterCompleted, FilterOverdue:
		return true
	}
	return false
}

// SortColumn identifies the column the visible set is ordered by.
type SortColumn string

const (
	SortNone     SortColumn = "none"
	SortPriority SortColumn = "priority"
	SortDueDate  SortColumn = "dueDate"
	SortStatus   SortColumn = "status"
)

// Valid checks if the sort column is one of the sortable columns.
func (c SortColumn) Valid() bool {
	switch c {
	case SortPriority, SortDueDate, SortStatus:
		return true
	}
	return false
}

// SortDirection is the ordering direction for the active sort column.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// ViewState holds the user-controlled inputs the visible page is derived
// from. It is created once per session with defaults and never persisted.
type ViewState struct {
	SearchTerm    string
	Filter        Filter
	SortColumn    SortColumn
	SortDirection SortDirection
	Page          int // 1-based
}

// NewViewState returns the session-start defaults: all tasks, no sort,
// first page.
func NewViewState() ViewState {
	return ViewState{
		Filter:        FilterAll,
		SortColumn:    SortNone,
		SortDirection: SortAsc,
		Page:          1,
	}
}
