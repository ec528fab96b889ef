package model

import (
	"fmt"
	"time"
)

// Scale selects the date-to-unit granularity of a chart.
type Scale string

const (
	ScaleDaily  Scale = "daily"
	ScaleWeekly Scale = "weekly"
)

// ParseScale validates a scale name from configuration. An empty string
// falls back to the daily scale.
func ParseScale(s string) (Scale, error) {
	switch Scale(s) {
	case ScaleDaily, ScaleWeekly:
		return Scale(s), nil
	case "":
		return ScaleDaily, nil
	}
	return "", &ConfigError{Field: "scale", Reason: fmt.Sprintf("unknown scale %q, pick daily or weekly", s)}
}

// VacationInterval is a closed date range during which an employee, or the
// whole organisation when Owner is empty, is unavailable.
type VacationInterval struct {
	Owner string
	Start time.Time
	End   time.Time
}

// Employee is one entry of the employee registry.
type Employee struct {
	ID        string
	Name      string
	Color     string
	Vacations []VacationInterval
}

// DisplayName returns the full name, falling back to the id.
func (e Employee) DisplayName() string {
	if e.Name != "" {
		return e.Name
	}
	return e.ID
}

// Task is a single bar (or milestone marker) on the chart. Tasks are
// immutable after construction; row assignment lives on Row, not here.
type Task struct {
	ID        string
	ProjectID string
	Label     string
	Start     time.Time
	End       time.Time
	Milestone bool
	Detail    bool
	Employees []string
	// Hours holds per-employee hour bookings when the configuration
	// provides them. A nil map means the hours attribute, if any, applies
	// to every assigned employee.
	Hours    map[string]float64
	Color    string
	Deadline *time.Time
	// OutOfWindow marks tasks whose dates fall outside the resolved
	// calendar window. They are clipped by the layout engine, never dropped.
	OutOfWindow bool
	Attrs       map[string]AttrValue
}

// AssignedTo reports whether the employee id is in the assignment set.
func (t Task) AssignedTo(id string) bool {
	for _, e := range t.Employees {
		if e == id {
			return true
		}
	}
	return false
}

// Number returns the numeric value of an attribute, 0 when the attribute is
// absent or not numeric.
func (t Task) Number(attr string) float64 {
	v, ok := t.Attrs[attr]
	if !ok || v.Kind != AttrNumber {
		return 0
	}
	return v.Number
}

// Project groups an ordered sequence of tasks under one title. Tasks of a
// project always render contiguously.
type Project struct {
	ID     string
	Title  string
	Leader string
	Color  string
	Tasks  []Task
}

// Row is one horizontal line of the chart: a task reference plus its
// computed geometry in scale units. Rows are derived per run, never stored.
type Row struct {
	Index  int
	Task   *Task
	XStart float64
	XEnd   float64
	Y      int
}

// FormatHint carries rendering hints for a summary row.
type FormatHint struct {
	Bold      bool
	AlignLeft bool
}

// SummaryEntry is a synthetic row with an aggregated value, emitted by the
// aggregation engine and appended after its group's task rows.
type SummaryEntry struct {
	GroupKey string
	Label    string
	Value    float64
	Column   string
	Format   FormatHint
}
