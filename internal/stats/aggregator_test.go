package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"taskboard/internal/domain"
)

var testNow = time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

func TestAggregator_BasicCounts(t *testing.T) {
	aggregator := NewAggregator()
	tasks := []domain.Task{
		{ID: "1", Status: domain.StatusCompleted, DueDate: date(2026, 3, 1)},
		{ID: "2", Status: domain.StatusInProgress, DueDate: date(2026, 3, 1)}, // overdue
		{ID: "3", Status: domain.StatusInProgress, DueDate: date(2026, 4, 1)},
		{ID: "4", Status: domain.StatusPending, DueDate: date(2026, 3, 10)}, // overdue
		{ID: "5", Status: domain.StatusPending, DueDate: date(2026, 4, 10)},
	}

	counts := aggregator.BasicCounts(tasks, testNow)

	assert.Equal(t, 5, counts.Total)
	assert.Equal(t, 1, counts.Completed)
	assert.Equal(t, 2, counts.InProgress)
	assert.Equal(t, 2, counts.Pending)
	assert.Equal(t, 2, counts.Overdue, "completed tasks are never overdue")
}

func TestAggregator_BasicCounts_Empty(t *testing.T) {
	counts := NewAggregator().BasicCounts(nil, testNow)
	assert.Equal(t, Counts{}, counts)
}

func TestAggregator_AvgCompletionDays(t *testing.T) {
	aggregator := NewAggregator()

	tests := []struct {
		name     string
		tasks    []domain.Task
		expected float64
	}{
		{
			name:     "no completed tasks yields zero",
			tasks:    []domain.Task{{Status: domain.StatusPending}},
			expected: 0,
		},
		{
			name: "single completed task",
			tasks: []domain.Task{
				{Status: domain.StatusCompleted, CreatedDate: date(2026, 3, 1), CompletedDate: datePtr(2026, 3, 4)},
			},
			expected: 3,
		},
		{
			name: "mean rounded to one decimal",
			tasks: []domain.Task{
				{Status: domain.StatusCompleted, CreatedDate: date(2026, 3, 1), CompletedDate: datePtr(2026, 3, 3)},
				{Status: domain.StatusCompleted, CreatedDate: date(2026, 3, 1), CompletedDate: datePtr(2026, 3, 6)},
				{Status: domain.StatusCompleted, CreatedDate: date(2026, 3, 1), CompletedDate: datePtr(2026, 3, 8)},
			},
			expected: 4.7,
		},
		{
			name: "completed without completion date is skipped",
			tasks: []domain.Task{
				{Status: domain.StatusCompleted, CreatedDate: date(2026, 3, 1)},
				{Status: domain.StatusCompleted, CreatedDate: date(2026, 3, 1), CompletedDate: datePtr(2026, 3, 5)},
			},
			expected: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, aggregator.AvgCompletionDays(tt.tasks))
		})
	}
}

func TestAggregator_OnTimeRate(t *testing.T) {
	aggregator := NewAggregator()

	tests := []struct {
		name     string
		tasks    []domain.Task
		expected int
	}{
		{
			name:     "no completed tasks yields zero",
			tasks:    []domain.Task{{Status: domain.StatusInProgress, DueDate: date(2026, 3, 1)}},
			expected: 0,
		},
		{
			name: "completion on the due date counts as on time",
			tasks: []domain.Task{
				{Status: domain.StatusCompleted, DueDate: date(2026, 3, 5), CompletedDate: datePtr(2026, 3, 5)},
			},
			expected: 100,
		},
		{
			name: "rounded to the nearest integer",
			tasks: []domain.Task{
				{Status: domain.StatusCompleted, DueDate: date(2026, 3, 5), CompletedDate: datePtr(2026, 3, 4)},
				{Status: domain.StatusCompleted, DueDate: date(2026, 3, 5), CompletedDate: datePtr(2026, 3, 6)},
				{Status: domain.StatusCompleted, DueDate: date(2026, 3, 5), CompletedDate: datePtr(2026, 3, 7)},
			},
			expected: 33,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, aggregator.OnTimeRate(tt.tasks))
		})
	}
}

func TestAggregator_TopPerformer(t *testing.T) {
	aggregator := NewAggregator()

	tests := []struct {
		name     string
		members  []domain.TeamMember
		expected string
	}{
		{
			name:     "empty roster",
			members:  nil,
			expected: "N/A",
		},
		{
			name: "highest productivity wins",
			members: []domain.TeamMember{
				{Name: "Ana", Productivity: 72},
				{Name: "Ben", Productivity: 91},
				{Name: "Cara", Productivity: 85},
			},
			expected: "Ben",
		},
		{
			name: "ties go to the first encountered",
			members: []domain.TeamMember{
				{Name: "Ana", Productivity: 90},
				{Name: "Ben", Productivity: 90},
			},
			expected: "Ana",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, aggregator.TopPerformer(tt.members))
		})
	}
}

func TestAggregator_WeeklyCompletions(t *testing.T) {
	aggregator := NewAggregator()

	t.Run("fallback when dataset has no statistics", func(t *testing.T) {
		assert.Equal(t, []int{12, 19, 15, 22, 18, 25, 20}, aggregator.WeeklyCompletions(nil))
	})

	t.Run("fallback when the series is not seven entries", func(t *testing.T) {
		stats := &domain.DatasetStatistics{WeeklyCompletions: []int{1, 2, 3}}
		assert.Equal(t, []int{12, 19, 15, 22, 18, 25, 20}, aggregator.WeeklyCompletions(stats))
	})

	t.Run("dataset series is passed through", func(t *testing.T) {
		series := []int{1, 2, 3, 4, 5, 6, 7}
		stats := &domain.DatasetStatistics{WeeklyCompletions: series}

		got := aggregator.WeeklyCompletions(stats)
		assert.Equal(t, series, got)

		got[0] = 99
		assert.Equal(t, 1, stats.WeeklyCompletions[0], "returned slice is a copy")
	})
}

func TestAggregator_TeamDistribution(t *testing.T) {
	aggregator := NewAggregator()
	tasks := []domain.Task{
		{ID: "1", AssignedTo: "Ana"},
		{ID: "2", AssignedTo: "Ben"},
		{ID: "3", AssignedTo: "Ana"},
		{ID: "4", AssignedTo: ""},
		{ID: "5", AssignedTo: "Ana"},
	}

	distribution := aggregator.TeamDistribution(tasks)

	assert.Equal(t, []MemberTaskCount{
		{Name: "Ana", Count: 3},
		{Name: "Ben", Count: 1},
	}, distribution)
}

func TestAggregator_Compute(t *testing.T) {
	aggregator := NewAggregator()
	tasks := []domain.Task{
		{ID: "1", Status: domain.StatusCompleted, AssignedTo: "Ana",
			CreatedDate: date(2026, 3, 1), DueDate: date(2026, 3, 10), CompletedDate: datePtr(2026, 3, 5)},
		{ID: "2", Status: domain.StatusPending, AssignedTo: "Ben", DueDate: date(2026, 3, 1)},
	}
	members := []domain.TeamMember{{Name: "Ana", Productivity: 80}}

	analytics := aggregator.Compute(tasks, members, nil, testNow)

	assert.Equal(t, 4.0, analytics.AvgCompletionDays)
	assert.Equal(t, 100, analytics.OnTimeRate)
	assert.Equal(t, "Ana", analytics.TopPerformer)
	assert.Equal(t, 1, analytics.BottleneckCount)
	assert.Equal(t, []int{12, 19, 15, 22, 18, 25, 20}, analytics.WeeklyCompletions)
	assert.Len(t, analytics.TeamDistribution, 2)
}
