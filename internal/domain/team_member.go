package domain

// TeamMember represents a member of the team in the analytics dataset.
// Team members have an independent lifecycle from tasks: they are loaded
// once from the static dataset and never mutated.
type TeamMember struct {
	Name           string
	Role           string
	Avatar         string
	Productivity   int // 0-100
	TasksCompleted int
	TasksAssigned  int
}
