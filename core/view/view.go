// Package view filters the laid-out rows down to the requested chart
// variant: the global chart, a per-employee sub-chart, or the collapsed
// resources chart. Filtering never reorders surviving rows.
package view

import (
	"github.com/ganttplanner/ganttplanner/core/model"
)

// Mode selects which rows a view emits.
type Mode string

const (
	ModeGlobal    Mode = "global"
	ModeEmployee  Mode = "employee"
	ModeResources Mode = "resources"
)

// Grouping selects how the resources view collapses task rows.
type Grouping string

const (
	GroupByEmployee Grouping = "per_employee"
	GroupByProject  Grouping = "per_project"
)

// Select returns the ordered subsequence of rows for the view. In employee
// mode only rows whose task is assigned to the employee survive and row
// indices are renumbered densely from 0.
func Select(rows []model.Row, mode Mode, employeeID string) ([]model.Row, error) {
	switch mode {
	case ModeGlobal:
		return rows, nil
	case ModeEmployee:
		if employeeID == "" {
			return nil, &model.ConfigError{Field: "view", Reason: "employee view needs an employee id"}
		}
		var out []model.Row
		for _, r := range rows {
			if !r.Task.AssignedTo(employeeID) {
				continue
			}
			r.Index = len(out)
			r.Y = r.Index
			out = append(out, r)
		}
		return out, nil
	case ModeResources:
		return nil, &model.ConfigError{Field: "view", Reason: "resources view is built with Resources, not Select"}
	}
	return nil, &model.ConfigError{Field: "view", Reason: "unknown view mode " + string(mode)}
}

// Resources collapses task rows into one row per employee or per project.
// The aggregated totals become the row payload via a synthetic task whose
// span covers all collapsed rows. Group order is first appearance in the
// row sequence.
func Resources(rows []model.Row, grouping Grouping, totals map[string]float64, reg *model.Registry) []model.Row {
	type group struct {
		task *model.Task
		row  *model.Row
	}
	byKey := make(map[string]*group)
	var order []string

	add := func(key, label string, r model.Row) {
		g, ok := byKey[key]
		if !ok {
			task := &model.Task{
				ID:    key,
				Label: label,
				Start: r.Task.Start,
				End:   r.Task.End,
				Attrs: map[string]model.AttrValue{"hours": model.NumberAttr(totals[key])},
			}
			row := model.Row{Task: task, XStart: r.XStart, XEnd: r.XEnd}
			byKey[key] = &group{task: task, row: &row}
			order = append(order, key)
			return
		}
		if r.XStart < g.row.XStart {
			g.row.XStart = r.XStart
			g.task.Start = r.Task.Start
		}
		if r.XEnd > g.row.XEnd {
			g.row.XEnd = r.XEnd
			g.task.End = r.Task.End
		}
	}

	for _, r := range rows {
		switch grouping {
		case GroupByProject:
			add(r.Task.ProjectID, r.Task.ProjectID, r)
		default:
			for _, empID := range r.Task.Employees {
				label := empID
				if emp, ok := reg.Get(empID); ok {
					label = emp.DisplayName()
				}
				add(empID, label, r)
			}
		}
	}

	out := make([]model.Row, 0, len(order))
	for i, key := range order {
		g := byKey[key]
		g.row.Index = i
		g.row.Y = i
		if grouping == GroupByEmployee || grouping == "" {
			g.task.Employees = []string{key}
		}
		out = append(out, *g.row)
	}
	return out
}
