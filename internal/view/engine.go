package view

import (
	"sort"
	"strings"
	"time"

	"taskboard/internal/domain"
)

// PageSize is the fixed number of tasks on a visible page.
const PageSize = 10

// Page is the derived visible subset handed to the presentation layer.
type Page struct {
	Tasks       []domain.Task
	TotalPages  int
	CurrentPage int
}

// Engine owns the session view state and deterministically derives the
// visible page from a task collection. The derivation pipeline order is
// part of the contract: search filter, then category filter, then stable
// sort, then pagination.
type Engine struct {
	state domain.ViewState
}

// NewEngine creates an engine with session-start defaults
func NewEngine() *Engine {
	return &Engine{
		state: domain.NewViewState(),
	}
}

// State returns a copy of the current view state
func (e *Engine) State() domain.ViewState {
	return e.state
}

// SetSearch updates the search term. Every search mutation resets the
// current page to 1.
func (e *Engine) SetSearch(term string) {
	e.state.SearchTerm = term
	e.state.Page = 1
}

// SetFilter updates the active category filter. Every filter mutation
// resets the current page to 1.
func (e *Engine) SetFilter(filter domain.Filter) {
	e.state.Filter = filter
	e.state.Page = 1
}

// SetSort activates sorting on a column. Selecting the active column again
// flips the direction; selecting a new column resets the direction to
// ascending. Sort mutations never reset the page.
func (e *Engine) SetSort(column domain.SortColumn) {
	if e.state.SortColumn == column {
		if e.state.SortDirection == domain.SortAsc {
			e.state.SortDirection = domain.SortDesc
		} else {
			e.state.SortDirection = domain.SortAsc
		}
		return
	}
	e.state.SortColumn = column
	e.state.SortDirection = domain.SortAsc
}

// ResetPage returns to the first page. Used after mutations that change
// the underlying collection, such as task creation.
func (e *Engine) ResetPage() {
	e.state.Page = 1
}

// SetPage moves to page n. Out-of-range requests are no-ops, not errors.
func (e *Engine) SetPage(n int, tasks []domain.Task, now time.Time) {
	if n < 1 {
		return
	}
	if n > totalPages(len(e.Matches(tasks, now))) {
		return
	}
	e.state.Page = n
}

// Matches returns the filtered and sorted (unpaginated) task set for the
// current view state. This is the set the CSV export operates on.
func (e *Engine) Matches(tasks []domain.Task, now time.Time) []domain.Task {
	matches := make([]domain.Task, 0, len(tasks))
	for _, task := range tasks {
		if !e.matchesSearch(task) {
			continue
		}
		if !e.matchesFilter(task, now) {
			continue
		}
		matches = append(matches, task)
	}

	e.sortTasks(matches)
	return matches
}

// VisiblePage derives the visible page from the full collection: at most
// PageSize tasks plus the total page count. An empty match set yields zero
// total pages and an empty page.
func (e *Engine) VisiblePage(tasks []domain.Task, now time.Time) Page {
	matches := e.Matches(tasks, now)
	total := totalPages(len(matches))

	start := (e.state.Page - 1) * PageSize
	if start >= len(matches) {
		return Page{Tasks: []domain.Task{}, TotalPages: total, CurrentPage: e.state.Page}
	}
	end := start + PageSize
	if end > len(matches) {
		end = len(matches)
	}

	return Page{
		Tasks:       matches[start:end],
		TotalPages:  total,
		CurrentPage: e.state.Page,
	}
}

// matchesSearch keeps a task when the search term is empty or is a
// case-insensitive substring of the title, description or assignee.
func (e *Engine) matchesSearch(task domain.Task) bool {
	term := strings.ToLower(strings.TrimSpace(e.state.SearchTerm))
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(task.Title), term) ||
		strings.Contains(strings.ToLower(task.Description), term) ||
		strings.Contains(strings.ToLower(task.AssignedTo), term)
}

// matchesFilter keeps a task per the active category filter. Overdue is a
// derived predicate; the four literal filters compare the status field.
func (e *Engine) matchesFilter(task domain.Task, now time.Time) bool {
	switch e.state.Filter {
	case domain.FilterAll, "":
		return true
	case domain.FilterOverdue:
		return task.IsOverdue(now)
	default:
		return string(task.Status) == string(e.state.Filter)
	}
}

// sortTasks orders tasks in place by the active sort column. The sort must
// be stable: equal keys retain their encounter order in both directions.
func (e *Engine) sortTasks(tasks []domain.Task) {
	if e.state.SortColumn == domain.SortNone {
		return
	}

	less := e.comparator()
	if e.state.SortDirection == domain.SortDesc {
		asc := less
		less = func(a, b domain.Task) bool { return asc(b, a) }
	}

	sort.SliceStable(tasks, func(i, j int) bool {
		return less(tasks[i], tasks[j])
	})
}

func (e *Engine) comparator() func(a, b domain.Task) bool {
	switch e.state.SortColumn {
	case domain.SortPriority:
		return func(a, b domain.Task) bool {
			return a.Priority.Rank() < b.Priority.Rank()
		}
	case domain.SortDueDate:
		return func(a, b domain.Task) bool {
			return a.DueDate.Before(b.DueDate)
		}
	case domain.SortStatus:
		return func(a, b domain.Task) bool {
			return string(a.Status) < string(b.Status)
		}
	default:
		return func(a, b domain.Task) bool { return false }
	}
}

// totalPages is ceil(matchCount / PageSize); zero when there are no matches.
func totalPages(matchCount int) int {
	if matchCount == 0 {
		return 0
	}
	return (matchCount + PageSize - 1) / PageSize
}
