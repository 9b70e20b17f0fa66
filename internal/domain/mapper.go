package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// DateFormat is the calendar-date layout used by the dataset document and
// the persisted task records.
const DateFormat = "2006-01-02"

// TaskRecord is the wire representation of a task as it appears in the
// dataset document and in persisted user-created task lists. The id is
// loosely typed in the source data (number or string), so records are
// coerced into domain Tasks rather than decoded directly.
type TaskRecord struct {
	ID            any          `json:"id"`
	Title         string       `json:"title"`
	Description   string       `json:"description"`
	AssignedTo    string       `json:"assignedTo"`
	TeamMember    MemberRecord `json:"teamMember"`
	Priority      string       `json:"priority"`
	Status        string       `json:"status"`
	DueDate       string       `json:"dueDate"`
	CreatedDate   string       `json:"createdDate"`
	CompletedDate string       `json:"completedDate,omitempty"`
	Progress      int          `json:"progress"`
	Tags          []string     `json:"tags"`
}

// MemberRecord is the wire representation of a task's assignee block.
type MemberRecord struct {
	Name       string `json:"name"`
	Role       string `json:"role"`
	Department string `json:"department"`
	Avatar     string `json:"avatar"`
}

// TeamMemberRecord is the wire representation of a team roster entry.
type TeamMemberRecord struct {
	Name           string `json:"name"`
	Role           string `json:"role"`
	Avatar         string `json:"avatar"`
	Productivity   int    `json:"productivity"`
	TasksCompleted int    `json:"tasksCompleted"`
	TasksAssigned  int    `json:"tasksAssigned"`
}

// DatasetRecord is the wire representation of the full dataset document.
type DatasetRecord struct {
	Tasks       []TaskRecord            `json:"tasks"`
	TeamMembers []TeamMemberRecord      `json:"teamMembers"`
	Statistics  *DatasetStatisticsBlock `json:"statistics,omitempty"`
}

// DatasetStatisticsBlock is the optional precomputed statistics section of
// the dataset document.
type DatasetStatisticsBlock struct {
	WeeklyCompletions []int `json:"weeklyCompletions"`
}

// TaskMapper handles coercion between wire task records and domain Tasks.
type TaskMapper struct{}

// NewTaskMapper creates a new TaskMapper instance.
func NewTaskMapper() *TaskMapper {
	return &TaskMapper{}
}

// FromRecord coerces a wire record into a domain Task. Ids are normalized
// to their string form, priority and status are normalized to canonical
// tokens, progress is clamped to 0-100, and malformed dates become zero
// values rather than errors.
func (m *TaskMapper) FromRecord(rec TaskRecord) Task {
	task := Task{
		ID:          CoerceID(rec.ID),
		Title:       rec.Title,
		Description: rec.Description,
		AssignedTo:  rec.AssignedTo,
		Member: Member{
			Name:       rec.TeamMember.Name,
			Role:       rec.TeamMember.Role,
			Department: rec.TeamMember.Department,
			Avatar:     rec.TeamMember.Avatar,
		},
		Priority:    NormalizePriority(rec.Priority),
		Status:      NormalizeStatus(rec.Status),
		DueDate:     parseDate(rec.DueDate),
		CreatedDate: parseDate(rec.CreatedDate),
		Progress:    clampProgress(rec.Progress),
		Tags:        append([]string(nil), rec.Tags...),
	}
	if rec.CompletedDate != "" {
		if completed := parseDate(rec.CompletedDate); !completed.IsZero() {
			task.CompletedDate = &completed
		}
	}
	return task
}

// ToRecord converts a domain Task back into its wire representation.
func (m *TaskMapper) ToRecord(task Task) TaskRecord {
	rec := TaskRecord{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		AssignedTo:  task.AssignedTo,
		TeamMember: MemberRecord{
			Name:       task.Member.Name,
			Role:       task.Member.Role,
			Department: task.Member.Department,
			Avatar:     task.Member.Avatar,
		},
		Priority: string(task.Priority),
		Status:   string(task.Status),
		Progress: task.Progress,
		Tags:     append([]string(nil), task.Tags...),
	}
	if !task.DueDate.IsZero() {
		rec.DueDate = task.DueDate.Format(DateFormat)
	}
	if !task.CreatedDate.IsZero() {
		rec.CreatedDate = task.CreatedDate.Format(DateFormat)
	}
	if task.CompletedDate != nil && !task.CompletedDate.IsZero() {
		rec.CompletedDate = task.CompletedDate.Format(DateFormat)
	}
	return rec
}

// FromRecordSlice coerces a slice of wire records into domain Tasks.
func (m *TaskMapper) FromRecordSlice(recs []TaskRecord) []Task {
	tasks := make([]Task, len(recs))
	for i, rec := range recs {
		tasks[i] = m.FromRecord(rec)
	}
	return tasks
}

// ToRecordSlice converts a slice of domain Tasks to wire records.
func (m *TaskMapper) ToRecordSlice(tasks []Task) []TaskRecord {
	recs := make([]TaskRecord, len(tasks))
	for i, task := range tasks {
		recs[i] = m.ToRecord(task)
	}
	return recs
}

// TeamMemberMapper handles coercion of team roster records.
type TeamMemberMapper struct{}

// NewTeamMemberMapper creates a new TeamMemberMapper instance.
func NewTeamMemberMapper() *TeamMemberMapper {
	return &TeamMemberMapper{}
}

// FromRecord converts a wire roster record into a domain TeamMember.
func (m *TeamMemberMapper) FromRecord(rec TeamMemberRecord) TeamMember {
	return TeamMember{
		Name:           rec.Name,
		Role:           rec.Role,
		Avatar:         rec.Avatar,
		Productivity:   rec.Productivity,
		TasksCompleted: rec.TasksCompleted,
		TasksAssigned:  rec.TasksAssigned,
	}
}

// FromRecordSlice converts a slice of roster records into domain TeamMembers.
func (m *TeamMemberMapper) FromRecordSlice(recs []TeamMemberRecord) []TeamMember {
	members := make([]TeamMember, len(recs))
	for i, rec := range recs {
		members[i] = m.FromRecord(rec)
	}
	return members
}

// Mapper provides a unified interface for all record coercion.
type Mapper struct {
	Task       *TaskMapper
	TeamMember *TeamMemberMapper
}

// NewMapper creates a new Mapper instance with all sub-mappers.
func NewMapper() *Mapper {
	return &Mapper{
		Task:       NewTaskMapper(),
		TeamMember: NewTeamMemberMapper(),
	}
}

// DatasetFromRecord coerces a full dataset document into the domain model.
func (m *Mapper) DatasetFromRecord(rec DatasetRecord) Dataset {
	ds := Dataset{
		Tasks:       m.Task.FromRecordSlice(rec.Tasks),
		TeamMembers: m.TeamMember.FromRecordSlice(rec.TeamMembers),
	}
	if rec.Statistics != nil {
		ds.Statistics = &DatasetStatistics{
			WeeklyCompletions: append([]int(nil), rec.Statistics.WeeklyCompletions...),
		}
	}
	return ds
}

// CoerceID normalizes a loosely-typed task id into its string form.
// JSON numbers arrive as float64 or json.Number depending on the decoder.
func CoerceID(raw any) string {
	switch v := raw.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatInt(int64(v), 10)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func parseDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	if t, err := time.Parse(DateFormat, s); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	return time.Time{}
}

func clampProgress(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
