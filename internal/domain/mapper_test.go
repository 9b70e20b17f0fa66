package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoerceID(t *testing.T) {
	tests := []struct {
		name     string
		raw      any
		expected string
	}{
		{name: "string id passes through", raw: "42", expected: "42"},
		{name: "float64 id is formatted without decimals", raw: float64(7), expected: "7"},
		{name: "json.Number id keeps its text", raw: json.Number("13"), expected: "13"},
		{name: "int id is formatted", raw: 3, expected: "3"},
		{name: "nil id becomes empty", raw: nil, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CoerceID(tt.raw))
		})
	}
}

func TestTaskMapper_FromRecord(t *testing.T) {
	mapper := NewTaskMapper()

	rec := TaskRecord{
		ID:          float64(5),
		Title:       "Write report",
		Description: "Quarterly report",
		AssignedTo:  "Ana Flores",
		TeamMember: MemberRecord{
			Name:       "Ana Flores",
			Role:       "Analyst",
			Department: "Finance",
			Avatar:     "af.png",
		},
		Priority:      "High",
		Status:        "In Progress",
		DueDate:       "2026-04-01",
		CreatedDate:   "2026-03-01",
		CompletedDate: "",
		Progress:      140,
		Tags:          []string{"report", "q1"},
	}

	task := mapper.FromRecord(rec)

	assert.Equal(t, "5", task.ID)
	assert.Equal(t, PriorityHigh, task.Priority)
	assert.Equal(t, StatusInProgress, task.Status)
	assert.Equal(t, time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC), task.DueDate)
	assert.Equal(t, 100, task.Progress, "progress is clamped to 100")
	assert.Nil(t, task.CompletedDate)
	assert.Equal(t, []string{"report", "q1"}, task.Tags)
	assert.Equal(t, "Finance", task.Member.Department)
}

func TestTaskMapper_FromRecord_MalformedDates(t *testing.T) {
	mapper := NewTaskMapper()

	task := mapper.FromRecord(TaskRecord{
		ID:            "9",
		Title:         "Broken dates",
		DueDate:       "not-a-date",
		CreatedDate:   "03/01/2026",
		CompletedDate: "also bad",
	})

	assert.True(t, task.DueDate.IsZero())
	assert.True(t, task.CreatedDate.IsZero())
	assert.Nil(t, task.CompletedDate)
}

func TestTaskMapper_RoundTrip(t *testing.T) {
	mapper := NewTaskMapper()
	completed := time.Date(2026, time.February, 20, 0, 0, 0, 0, time.UTC)

	original := Task{
		ID:            "12",
		Title:         "Ship feature",
		Description:   "With \"quotes\"",
		AssignedTo:    "Ben Ochoa",
		Member:        Member{Name: "Ben Ochoa", Role: "Engineer"},
		Priority:      PriorityMedium,
		Status:        StatusCompleted,
		DueDate:       time.Date(2026, time.February, 25, 0, 0, 0, 0, time.UTC),
		CreatedDate:   time.Date(2026, time.February, 10, 0, 0, 0, 0, time.UTC),
		CompletedDate: &completed,
		Progress:      100,
		Tags:          []string{"release"},
	}

	got := mapper.FromRecord(mapper.ToRecord(original))
	assert.Equal(t, original, got)
}

func TestMapper_DatasetFromRecord(t *testing.T) {
	mapper := NewMapper()

	ds := mapper.DatasetFromRecord(DatasetRecord{
		Tasks: []TaskRecord{
			{ID: "1", Title: "A"},
			{ID: float64(2), Title: "B"},
		},
		TeamMembers: []TeamMemberRecord{
			{Name: "Ana", Productivity: 90, TasksAssigned: 4},
		},
		Statistics: &DatasetStatisticsBlock{
			WeeklyCompletions: []int{1, 2, 3, 4, 5, 6, 7},
		},
	})

	require.Len(t, ds.Tasks, 2)
	assert.Equal(t, "2", ds.Tasks[1].ID)
	require.Len(t, ds.TeamMembers, 1)
	assert.Equal(t, 90, ds.TeamMembers[0].Productivity)
	require.NotNil(t, ds.Statistics)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, ds.Statistics.WeeklyCompletions)
}
