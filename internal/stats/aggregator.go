package stats

import (
	"math"
	"time"

	"taskboard/internal/domain"
)

// fallbackWeeklyCompletions is the display literal used when the dataset
// ships no statistics block. It is a passthrough, not a derivation from
// task dates.
var fallbackWeeklyCompletions = []int{12, 19, 15, 22, 18, 25, 20}

// Counts holds the summary counters shown on the dashboard header.
type Counts struct {
	Total      int
	Completed  int
	InProgress int
	Pending    int
	Overdue    int
}

// Analytics holds the derived metrics for the analytics view.
type Analytics struct {
	AvgCompletionDays float64 // mean completion span in days, one decimal
	OnTimeRate        int     // percent of completed tasks finished by their due date
	TopPerformer      string  // "N/A" when the roster is empty
	BottleneckCount   int     // currently overdue tasks
	WeeklyCompletions []int
	TeamDistribution  []MemberTaskCount
}

// MemberTaskCount is one entry of the per-member assignment distribution,
// in first-appearance order.
type MemberTaskCount struct {
	Name  string
	Count int
}

// Aggregator derives statistics from the full task collection. All
// functions are pure reads over the collection they are handed, never the
// filtered subset.
type Aggregator struct{}

// NewAggregator creates a new Aggregator instance
func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// BasicCounts computes the summary counters with a single linear scan.
func (a *Aggregator) BasicCounts(tasks []domain.Task, now time.Time) Counts {
	counts := Counts{Total: len(tasks)}
	for _, task := range tasks {
		switch task.Status {
		case domain.StatusCompleted:
			counts.Completed++
		case domain.StatusInProgress:
			counts.InProgress++
		case domain.StatusPending:
			counts.Pending++
		}
		if task.IsOverdue(now) {
			counts.Overdue++
		}
	}
	return counts
}

// AvgCompletionDays returns the mean completion span in whole days over
// completed tasks, rounded to one decimal. Zero when nothing is completed.
func (a *Aggregator) AvgCompletionDays(tasks []domain.Task) float64 {
	var totalDays float64
	var completed int
	for _, task := range tasks {
		if task.Status != domain.StatusCompleted || task.CompletedDate == nil {
			continue
		}
		totalDays += task.CompletedDate.Sub(task.CreatedDate).Hours() / 24
		completed++
	}
	if completed == 0 {
		return 0
	}
	return math.Round(totalDays/float64(completed)*10) / 10
}

// OnTimeRate returns the percentage of completed tasks finished on or
// before their due date, rounded to the nearest integer. Zero when nothing
// is completed.
func (a *Aggregator) OnTimeRate(tasks []domain.Task) int {
	var completed, onTime int
	for _, task := range tasks {
		if task.Status != domain.StatusCompleted || task.CompletedDate == nil {
			continue
		}
		completed++
		if !task.CompletedDate.After(task.DueDate) {
			onTime++
		}
	}
	if completed == 0 {
		return 0
	}
	return int(math.Round(float64(onTime) / float64(completed) * 100))
}

// TopPerformer returns the name of the team member with the highest
// productivity. Ties are broken by encounter order; an empty roster yields
// "N/A".
func (a *Aggregator) TopPerformer(members []domain.TeamMember) string {
	if len(members) == 0 {
		return "N/A"
	}
	top := members[0]
	for _, member := range members[1:] {
		if member.Productivity > top.Productivity {
			top = member
		}
	}
	return top.Name
}

// BottleneckCount returns the number of currently overdue tasks. This
// duplicates the overdue counter in BasicCounts and is kept as a separate
// metric on the analytics view.
func (a *Aggregator) BottleneckCount(tasks []domain.Task, now time.Time) int {
	var count int
	for _, task := range tasks {
		if task.IsOverdue(now) {
			count++
		}
	}
	return count
}

// WeeklyCompletions returns the dataset's precomputed 7-element series,
// or the fixed fallback literal when the dataset carries none.
func (a *Aggregator) WeeklyCompletions(stats *domain.DatasetStatistics) []int {
	if stats != nil && len(stats.WeeklyCompletions) == 7 {
		return append([]int(nil), stats.WeeklyCompletions...)
	}
	return append([]int(nil), fallbackWeeklyCompletions...)
}

// TeamDistribution maps each assignee display name to the count of tasks
// currently assigned, preserving the order of first appearance.
func (a *Aggregator) TeamDistribution(tasks []domain.Task) []MemberTaskCount {
	index := make(map[string]int)
	var distribution []MemberTaskCount
	for _, task := range tasks {
		name := task.AssignedTo
		if name == "" {
			continue
		}
		if i, ok := index[name]; ok {
			distribution[i].Count++
			continue
		}
		index[name] = len(distribution)
		distribution = append(distribution, MemberTaskCount{Name: name, Count: 1})
	}
	return distribution
}

// Compute derives the full analytics metrics struct in one call.
func (a *Aggregator) Compute(tasks []domain.Task, members []domain.TeamMember, stats *domain.DatasetStatistics, now time.Time) Analytics {
	return Analytics{
		AvgCompletionDays: a.AvgCompletionDays(tasks),
		OnTimeRate:        a.OnTimeRate(tasks),
		TopPerformer:      a.TopPerformer(members),
		BottleneckCount:   a.BottleneckCount(tasks, now),
		WeeklyCompletions: a.WeeklyCompletions(stats),
		TeamDistribution:  a.TeamDistribution(tasks),
	}
}
