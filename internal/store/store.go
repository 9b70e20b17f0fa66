package store

import (
	"context"
	"strconv"

	"taskboard/internal/domain"
	"taskboard/internal/errors"
	"taskboard/internal/persistence"
)

// TaskStore owns the merged in-memory task collection for the session:
// the static dataset overlaid with persisted status overrides and
// user-created tasks. All operations run on a single logical actor, so no
// locking is required.
type TaskStore struct {
	tasks   []domain.Task
	adapter *persistence.Adapter
}

// New creates an empty TaskStore backed by the given persistence adapter
func New(adapter *persistence.Adapter) *TaskStore {
	return &TaskStore{
		adapter: adapter,
	}
}

// Load replaces the collection with staticTasks, applies any persisted
// status overrides, then prepends persisted user-created tasks whose id is
// not already present. The most recently created task ends up first.
func (s *TaskStore) Load(ctx context.Context, staticTasks []domain.Task) {
	merged := append([]domain.Task(nil), staticTasks...)

	overrides := s.adapter.LoadStatusOverrides(ctx)
	for i := range merged {
		if status, ok := overrides[merged[i].ID]; ok {
			merged[i].Status = status
		}
	}

	seen := make(map[string]bool, len(merged))
	for _, task := range merged {
		seen[task.ID] = true
	}

	// The persisted list is in creation order; prepending each entry in
	// turn leaves the newest task at the front.
	for _, task := range s.adapter.LoadUserCreatedTasks(ctx) {
		if seen[task.ID] {
			continue
		}
		seen[task.ID] = true
		merged = append([]domain.Task{task}, merged...)
	}

	s.tasks = merged
}

// All returns a snapshot of the merged collection in display order
func (s *TaskStore) All() []domain.Task {
	return append([]domain.Task(nil), s.tasks...)
}

// Len returns the number of tasks in the collection
func (s *TaskStore) Len() int {
	return len(s.tasks)
}

// FindByID returns the task with the given id
func (s *TaskStore) FindByID(id string) (*domain.Task, error) {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			task := s.tasks[i]
			return &task, nil
		}
	}
	return nil, errors.NewNotFoundError("task", id)
}

// Insert prepends a task to the collection so the most recently created
// task appears first. Inserting a duplicate id is rejected.
func (s *TaskStore) Insert(task domain.Task) error {
	for i := range s.tasks {
		if s.tasks[i].ID == task.ID {
			return errors.NewInvalidInputError("id", task.ID, "task id already exists")
		}
	}
	s.tasks = append([]domain.Task{task}, s.tasks...)
	return nil
}

// UpdateStatus mutates the status of the task with the given id and
// records the override through the persistence adapter. Progress and
// completedDate are intentionally left untouched: the upstream behavior
// never recomputed them on a status change, and that inconsistency is
// preserved here rather than silently fixed.
func (s *TaskStore) UpdateStatus(ctx context.Context, id string, status domain.Status) error {
	for i := range s.tasks {
		if s.tasks[i].ID != id {
			continue
		}
		s.tasks[i].Status = status
		return s.adapter.SaveStatusOverride(ctx, id, status)
	}
	return errors.NewNotFoundError("task", id)
}

// NextID allocates the id for a new task: the maximum numeric id in the
// collection plus one. Non-numeric ids are ignored when computing the max.
func (s *TaskStore) NextID() string {
	max := int64(0)
	for _, task := range s.tasks {
		if n, err := strconv.ParseInt(task.ID, 10, 64); err == nil && n > max {
			max = n
		}
	}
	return strconv.FormatInt(max+1, 10)
}
