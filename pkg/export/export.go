// Package export writes flat task listings for consumption by other
// tools. The Excel report stays the richer format; these are the plain
// machine-readable ones.
package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"
	"strings"

	"github.com/ganttplanner/ganttplanner/core/model"
)

const dateLayout = "2006-01-02"

// Entry is one task flattened for export.
type Entry struct {
	Project   string   `json:"project"`
	Task      string   `json:"task"`
	Label     string   `json:"label"`
	Start     string   `json:"start"`
	End       string   `json:"end"`
	Employees []string `json:"employees"`
	Hours     float64  `json:"hours"`
	Milestone bool     `json:"milestone,omitempty"`
}

// Flatten turns the built projects into export entries, one per task, in
// chart order.
func Flatten(projects []model.Project) []Entry {
	var out []Entry
	for _, p := range projects {
		for _, t := range p.Tasks {
			out = append(out, Entry{
				Project:   p.Title,
				Task:      t.ID,
				Label:     t.Label,
				Start:     t.Start.Format(dateLayout),
				End:       t.End.Format(dateLayout),
				Employees: t.Employees,
				Hours:     t.Number("hours"),
				Milestone: t.Milestone,
			})
		}
	}
	return out
}

// WriteJSON writes the task listing to w in JSON format.
func WriteJSON(w io.Writer, entries []Entry) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}

// WriteCSV writes the task listing to w as CSV.
func WriteCSV(w io.Writer, entries []Entry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"project", "task", "label", "start", "end", "employees", "hours"}); err != nil {
		return err
	}
	for _, e := range entries {
		rec := []string{
			e.Project,
			e.Task,
			e.Label,
			e.Start,
			e.End,
			strings.Join(e.Employees, ";"),
			strconv.FormatFloat(e.Hours, 'f', -1, 64),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
