package domain

// Dataset is the static document the dashboard is seeded from: the task
// collection, the team roster, and an optional precomputed statistics block.
type Dataset struct {
	Tasks       []Task
	TeamMembers []TeamMember
	Statistics  *DatasetStatistics
}

// DatasetStatistics holds display-ready series shipped inside the dataset
// itself rather than derived from the task collection.
type DatasetStatistics struct {
	WeeklyCompletions []int // one entry per day, most recent week
}
