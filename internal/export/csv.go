package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"taskboard/internal/domain"
)

// csvHeader is the fixed column set of the export document.
var csvHeader = []string{"ID", "Title", "Description", "Assigned To", "Priority", "Status", "Due Date", "Created Date"}

// CSVExporter renders a task set as a comma-separated document. Every
// field is double-quoted with embedded quotes doubled, so free-text
// descriptions survive a round trip through any RFC 4180 reader.
type CSVExporter struct{}

// NewCSVExporter creates a new CSVExporter instance
func NewCSVExporter() *CSVExporter {
	return &CSVExporter{}
}

// Write renders the task set to w, header row first. The input is the
// filtered (not paginated) visible set.
func (e *CSVExporter) Write(w io.Writer, tasks []domain.Task) error {
	if err := writeRow(w, csvHeader); err != nil {
		return err
	}

	for _, task := range tasks {
		row := []string{
			task.ID,
			task.Title,
			task.Description,
			task.AssignedTo,
			string(task.Priority),
			string(task.Status),
			formatDate(task.DueDate),
			formatDate(task.CreatedDate),
		}
		if err := writeRow(w, row); err != nil {
			return err
		}
	}

	return nil
}

// Render returns the document as a string.
func (e *CSVExporter) Render(tasks []domain.Task) (string, error) {
	var b strings.Builder
	if err := e.Write(&b, tasks); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Filename returns the conventional export filename for the given day,
// tasks_<ISO-date>.csv.
func (e *CSVExporter) Filename(now time.Time) string {
	return fmt.Sprintf("tasks_%s.csv", now.Format(domain.DateFormat))
}

func writeRow(w io.Writer, fields []string) error {
	quoted := make([]string, len(fields))
	for i, field := range fields {
		quoted[i] = `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
	}
	_, err := fmt.Fprintf(w, "%s\n", strings.Join(quoted, ","))
	return err
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(domain.DateFormat)
}
