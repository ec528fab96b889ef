// Package aggregate sums numeric task attributes per project or per
// employee. The results feed the resources chart and the report summary
// blocks.
package aggregate

import (
	"gonum.org/v1/gonum/floats"

	"github.com/ganttplanner/ganttplanner/core/model"
	"github.com/ganttplanner/ganttplanner/core/template"
)

// Grouping axes a rule can sum over.
const (
	PerProject  = "per_project"
	PerEmployee = "per_employee"
)

// DefaultAttribute is summed when a rule names no attribute.
const DefaultAttribute = "hours"

// Rule describes one summation over the task set.
type Rule struct {
	Name      string `json:"name"`
	Attribute string `json:"attribute"`
	GroupBy   string `json:"group_by"`
	Label     string `json:"label"`
	Column    string `json:"column"`
	Bold      bool   `json:"bold"`
	AlignLeft bool   `json:"align_left"`
}

// SetDefaults fills the optional rule fields.
func (r *Rule) SetDefaults() {
	if r.Attribute == "" {
		r.Attribute = DefaultAttribute
	}
	if r.GroupBy == "" {
		r.GroupBy = PerEmployee
	}
	if r.Label == "" {
		r.Label = "{{ name }}"
	}
}

// Validate rejects rules the engine cannot evaluate.
func (r *Rule) Validate() error {
	if r.Name == "" {
		return &model.ConfigError{Field: "summations.name", Reason: "must not be empty"}
	}
	if r.GroupBy != PerProject && r.GroupBy != PerEmployee {
		return &model.ConfigError{Field: "summations." + r.Name + ".group_by", Reason: "must be per_project or per_employee"}
	}
	return nil
}

// Result holds the evaluated entries of every rule, keyed by rule name.
type Result struct {
	Entries map[string][]model.SummaryEntry
}

// Aggregate evaluates all rules over the built projects. Rules fail
// independently of the tasks; the first invalid rule or label aborts the
// whole evaluation since summaries are all-or-nothing per report.
func Aggregate(projects []model.Project, reg *model.Registry, rules []Rule) (*Result, error) {
	res := &Result{Entries: make(map[string][]model.SummaryEntry, len(rules))}
	for i := range rules {
		rule := rules[i]
		rule.SetDefaults()
		if err := rule.Validate(); err != nil {
			return nil, err
		}
		entries, err := apply(rule, projects, reg)
		if err != nil {
			return nil, err
		}
		res.Entries[rule.Name] = entries
	}
	return res, nil
}

func apply(rule Rule, projects []model.Project, reg *model.Registry) ([]model.SummaryEntry, error) {
	var keys []string
	labels := map[string]string{}
	values := map[string][]float64{}

	record := func(key, name string, v float64) {
		if _, seen := values[key]; !seen {
			keys = append(keys, key)
			labels[key] = name
		}
		values[key] = append(values[key], v)
	}

	switch rule.GroupBy {
	case PerProject:
		for _, p := range projects {
			for _, t := range p.Tasks {
				record(p.ID, p.Title, taskValue(t, rule.Attribute))
			}
		}
	case PerEmployee:
		for _, p := range projects {
			for _, t := range p.Tasks {
				for _, empID := range t.Employees {
					record(empID, employeeName(reg, empID), employeeValue(t, empID, rule.Attribute))
				}
			}
		}
	}

	entries := make([]model.SummaryEntry, 0, len(keys))
	for _, key := range keys {
		label, err := template.Substitute(rule.Label, map[string]string{
			"name": labels[key],
			"id":   key,
		})
		if err != nil {
			return nil, err
		}
		entries = append(entries, model.SummaryEntry{
			GroupKey: key,
			Label:    label,
			Value:    floats.Sum(values[key]),
			Column:   rule.Column,
			Format:   model.FormatHint{Bold: rule.Bold, AlignLeft: rule.AlignLeft},
		})
	}
	return entries, nil
}

// EmployeeTotals sums an attribute per employee over all tasks. A task
// assigned to several employees contributes its per-employee hours when it
// carries them, otherwise its full attribute value to each assignee.
func EmployeeTotals(projects []model.Project, attr string) map[string]float64 {
	totals := map[string]float64{}
	for _, p := range projects {
		for _, t := range p.Tasks {
			for _, empID := range t.Employees {
				totals[empID] += employeeValue(t, empID, attr)
			}
		}
	}
	return totals
}

// ProjectTotals sums an attribute per project over all tasks.
func ProjectTotals(projects []model.Project, attr string) map[string]float64 {
	totals := map[string]float64{}
	for _, p := range projects {
		for _, t := range p.Tasks {
			totals[p.ID] += taskValue(t, attr)
		}
	}
	return totals
}

func taskValue(t model.Task, attr string) float64 {
	return t.Number(attr)
}

func employeeValue(t model.Task, empID, attr string) float64 {
	if attr == DefaultAttribute && t.Hours != nil {
		if h, ok := t.Hours[empID]; ok {
			return h
		}
	}
	return t.Number(attr)
}

func employeeName(reg *model.Registry, id string) string {
	if reg != nil {
		if e, ok := reg.Get(id); ok {
			return e.DisplayName()
		}
	}
	return id
}
