package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/internal/domain"
	"taskboard/internal/repository/kv"
)

func TestAdapter_StatusOverrides_RoundTrip(t *testing.T) {
	adapter := NewAdapter(kv.NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, adapter.SaveStatusOverride(ctx, "3", domain.StatusCompleted))
	require.NoError(t, adapter.SaveStatusOverride(ctx, "7", domain.StatusInProgress))

	overrides := adapter.LoadStatusOverrides(ctx)
	assert.Equal(t, map[string]domain.Status{
		"3": domain.StatusCompleted,
		"7": domain.StatusInProgress,
	}, overrides)
}

func TestAdapter_StatusOverrides_Accumulate(t *testing.T) {
	adapter := NewAdapter(kv.NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, adapter.SaveStatusOverride(ctx, "1", domain.StatusInProgress))
	require.NoError(t, adapter.SaveStatusOverride(ctx, "1", domain.StatusCompleted))
	require.NoError(t, adapter.SaveStatusOverride(ctx, "2", domain.StatusPending))

	overrides := adapter.LoadStatusOverrides(ctx)
	assert.Len(t, overrides, 2, "same id overwrites, entries are never pruned")
	assert.Equal(t, domain.StatusCompleted, overrides["1"])
}

func TestAdapter_LoadStatusOverrides_Missing(t *testing.T) {
	adapter := NewAdapter(kv.NewMemoryStore())

	overrides := adapter.LoadStatusOverrides(context.Background())
	assert.NotNil(t, overrides)
	assert.Empty(t, overrides)
}

func TestAdapter_LoadStatusOverrides_Malformed(t *testing.T) {
	store := kv.NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, KeyTaskStatuses, "{not json"))

	adapter := NewAdapter(store)
	overrides := adapter.LoadStatusOverrides(ctx)
	assert.Empty(t, overrides, "malformed blob decodes to an empty map")
}

func TestAdapter_UserCreatedTasks_RoundTrip(t *testing.T) {
	adapter := NewAdapter(kv.NewMemoryStore())
	ctx := context.Background()

	first := domain.Task{
		ID:          "21",
		Title:       "Write release notes",
		AssignedTo:  "Ana",
		Priority:    domain.PriorityHigh,
		Status:      domain.StatusPending,
		DueDate:     time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		CreatedDate: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		Tags:        []string{"docs"},
	}
	second := domain.Task{
		ID:          "22",
		Title:       "Ship the build",
		Status:      domain.StatusInProgress,
		Priority:    domain.PriorityMedium,
		Progress:    50,
		DueDate:     time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC),
		CreatedDate: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
	}

	require.NoError(t, adapter.SaveUserCreatedTask(ctx, first))
	require.NoError(t, adapter.SaveUserCreatedTask(ctx, second))

	tasks := adapter.LoadUserCreatedTasks(ctx)
	require.Len(t, tasks, 2)
	assert.Equal(t, "21", tasks[0].ID, "insertion order is preserved")
	assert.Equal(t, "22", tasks[1].ID)
	assert.Equal(t, "Write release notes", tasks[0].Title)
	assert.Equal(t, domain.PriorityHigh, tasks[0].Priority)
	assert.Equal(t, []string{"docs"}, tasks[0].Tags)
	assert.Equal(t, 50, tasks[1].Progress)
}

func TestAdapter_LoadUserCreatedTasks_Malformed(t *testing.T) {
	store := kv.NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, KeyUserCreatedTasks, "[[["))

	adapter := NewAdapter(store)
	assert.Empty(t, adapter.LoadUserCreatedTasks(ctx))
}
