package dataset

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/internal/domain"
	"taskboard/internal/errors"
)

const sampleDocument = `{
  "tasks": [
    {"id": 1, "title": "Numeric id", "assignedTo": "Ana", "priority": "high", "status": "pending", "dueDate": "2026-04-01", "createdDate": "2026-03-01"},
    {"id": "2", "title": "String id", "assignedTo": "Ben", "priority": "Low", "status": "In Progress", "dueDate": "2026-04-02", "createdDate": "2026-03-02", "progress": 120}
  ],
  "teamMembers": [
    {"name": "Ana", "role": "Engineer", "productivity": 88, "tasksCompleted": 12}
  ],
  "statistics": {"weeklyCompletions": [1, 2, 3, 4, 5, 6, 7]}
}`

func TestLoader_Load_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleDocument), 0o644))

	ds, err := NewLoader(path).Load(context.Background())
	require.NoError(t, err)

	require.Len(t, ds.Tasks, 2)
	assert.Equal(t, "1", ds.Tasks[0].ID, "numeric ids are coerced to strings")
	assert.Equal(t, "2", ds.Tasks[1].ID)
	assert.Equal(t, domain.PriorityLow, ds.Tasks[1].Priority, "raw tokens are normalized")
	assert.Equal(t, domain.StatusInProgress, ds.Tasks[1].Status)
	assert.Equal(t, 100, ds.Tasks[1].Progress, "progress is clamped to the 0-100 range")

	require.Len(t, ds.TeamMembers, 1)
	assert.Equal(t, "Ana", ds.TeamMembers[0].Name)
	assert.Equal(t, 12, ds.TeamMembers[0].TasksCompleted)

	require.NotNil(t, ds.Statistics)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, ds.Statistics.WeeklyCompletions)
}

func TestLoader_Load_FromURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(sampleDocument))
	}))
	defer server.Close()

	ds, err := NewLoaderWithClient(server.URL, server.Client()).Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, ds.Tasks, 2)
}

func TestLoader_Load_URLErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer server.Close()

	_, err := NewLoaderWithClient(server.URL, server.Client()).Load(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeLoad))
}

func TestLoader_Load_MissingFile(t *testing.T) {
	_, err := NewLoader(filepath.Join(t.TempDir(), "missing.json")).Load(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeLoad))
}

func TestLoader_Load_MalformedDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewLoader(path).Load(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeLoad))
}

func TestDecode_MissingSections(t *testing.T) {
	ds, err := Decode([]byte(`{"tasks": []}`))
	require.NoError(t, err)
	assert.Empty(t, ds.Tasks)
	assert.Empty(t, ds.TeamMembers)
	assert.Nil(t, ds.Statistics)
}
