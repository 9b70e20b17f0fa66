package persistence

import (
	"context"
	"encoding/json"

	"taskboard/internal/domain"
	"taskboard/internal/errors"
	"taskboard/internal/logging"
	"taskboard/internal/repository/kv"
)

// Logical keys in the key-value store.
const (
	KeyTaskStatuses     = "taskStatuses"
	KeyUserCreatedTasks = "userCreatedTasks"
)

// Adapter persists the two durable records of the dashboard: the
// status-override map (task id -> status) and the list of user-created
// tasks. Both are stored as single JSON blobs; a read-modify-write cycle
// is not atomic across independent processes, last writer wins.
type Adapter struct {
	store  kv.Store
	mapper *domain.Mapper
}

// NewAdapter creates a new persistence adapter over the given store
func NewAdapter(store kv.Store) *Adapter {
	return &Adapter{
		store:  store,
		mapper: domain.NewMapper(),
	}
}

// LoadStatusOverrides returns the persisted status-override map.
// Missing or malformed data decodes to an empty map, never an error.
func (a *Adapter) LoadStatusOverrides(ctx context.Context) map[string]domain.Status {
	raw, ok, err := a.store.Get(ctx, KeyTaskStatuses)
	if err != nil {
		logging.Debugf("load %s: %v\n", KeyTaskStatuses, err)
		return map[string]domain.Status{}
	}
	if !ok {
		return map[string]domain.Status{}
	}

	var decoded map[string]string
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		logging.Debugf("decode %s: %v\n", KeyTaskStatuses, err)
		return map[string]domain.Status{}
	}

	overrides := make(map[string]domain.Status, len(decoded))
	for id, status := range decoded {
		overrides[id] = domain.NormalizeStatus(status)
	}
	return overrides
}

// SaveStatusOverride records a status override for a task id. The full
// map is read, updated and written back as one blob. Entries accumulate
// and are never pruned.
func (a *Adapter) SaveStatusOverride(ctx context.Context, id string, status domain.Status) error {
	overrides := a.LoadStatusOverrides(ctx)
	overrides[id] = status

	encoded := make(map[string]string, len(overrides))
	for taskID, s := range overrides {
		encoded[taskID] = string(s)
	}

	data, err := json.Marshal(encoded)
	if err != nil {
		return errors.NewPersistenceError(KeyTaskStatuses, err)
	}
	if err := a.store.Set(ctx, KeyTaskStatuses, string(data)); err != nil {
		return errors.NewPersistenceError(KeyTaskStatuses, err)
	}
	return nil
}

// LoadUserCreatedTasks returns the persisted user-created task list in
// insertion order. Missing or malformed data decodes to an empty list.
func (a *Adapter) LoadUserCreatedTasks(ctx context.Context) []domain.Task {
	raw, ok, err := a.store.Get(ctx, KeyUserCreatedTasks)
	if err != nil {
		logging.Debugf("load %s: %v\n", KeyUserCreatedTasks, err)
		return nil
	}
	if !ok {
		return nil
	}

	var records []domain.TaskRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		logging.Debugf("decode %s: %v\n", KeyUserCreatedTasks, err)
		return nil
	}

	return a.mapper.Task.FromRecordSlice(records)
}

// SaveUserCreatedTask appends a task to the persisted user-created list
// (read-modify-write over the whole blob).
func (a *Adapter) SaveUserCreatedTask(ctx context.Context, task domain.Task) error {
	tasks := a.LoadUserCreatedTasks(ctx)
	tasks = append(tasks, task)

	data, err := json.Marshal(a.mapper.Task.ToRecordSlice(tasks))
	if err != nil {
		return errors.NewPersistenceError(KeyUserCreatedTasks, err)
	}
	if err := a.store.Set(ctx, KeyUserCreatedTasks, string(data)); err != nil {
		return errors.NewPersistenceError(KeyUserCreatedTasks, err)
	}
	return nil
}
