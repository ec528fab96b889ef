// Package builder normalizes raw project and task entries from
// configuration into the canonical in-memory task model. Dates are resolved
// against the calendar, employee references are validated against the
// registry and label templates are substituted.
package builder

import (
	"sort"
	"strconv"
	"time"

	"github.com/ganttplanner/ganttplanner/core/calendar"
	"github.com/ganttplanner/ganttplanner/core/logger"
	"github.com/ganttplanner/ganttplanner/core/model"
	"github.com/ganttplanner/ganttplanner/core/template"
)

// Options tune how the builder interprets raw entries.
type Options struct {
	// SortByStart orders tasks within a project chronologically instead of
	// by declaration order. The sort is stable: ties keep declaration order.
	SortByStart bool
	// SkipDetails drops tasks flagged detail, for the big-picture chart.
	SkipDetails bool
	// DayFirst parses ambiguous literal dates with the day first.
	DayFirst bool
	// Variables binds {{ name }} placeholders in titles and labels.
	Variables map[string]string
}

// Build turns raw projects into the canonical ordered project sequence for
// one resolved calendar. Declared order is preserved; tasks whose dates
// fall outside the window are flagged, not dropped.
func Build(raw []RawProject, cal *calendar.ResolvedCalendar, reg *model.Registry, opts Options, log logger.Logger) ([]model.Project, error) {
	projects := make([]model.Project, 0, len(raw))
	for _, rp := range raw {
		p, err := buildProject(rp, cal, reg, opts, log)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, nil
}

func buildProject(rp RawProject, cal *calendar.ResolvedCalendar, reg *model.Registry, opts Options, log logger.Logger) (model.Project, error) {
	title := rp.Title
	if title == "" {
		title = rp.ID
	}
	title, err := template.Substitute(title, opts.Variables)
	if err != nil {
		return model.Project{}, err
	}
	if rp.Leader != "" {
		if _, ok := reg.Get(rp.Leader); !ok {
			return model.Project{}, &model.ReferenceError{Kind: "employee", Ref: rp.Leader, In: "project " + rp.ID}
		}
	}

	p := model.Project{ID: rp.ID, Title: title, Leader: rp.Leader, Color: rp.Color}
	for _, rt := range rp.Tasks {
		if rt.Detail && opts.SkipDetails {
			log.Debugf("skipping detail task %s of project %s", rt.ID, rp.ID)
			continue
		}
		t, err := buildTask(rt, rp, cal, reg, opts)
		if err != nil {
			return model.Project{}, err
		}
		p.Tasks = append(p.Tasks, t)
	}
	if opts.SortByStart {
		sort.SliceStable(p.Tasks, func(i, j int) bool {
			return p.Tasks[i].Start.Before(p.Tasks[j].Start)
		})
	}
	return p, nil
}

func buildTask(rt RawTask, rp RawProject, cal *calendar.ResolvedCalendar, reg *model.Registry, opts Options) (model.Task, error) {
	id := rt.ID
	if id == "" {
		id = rt.Label
	}
	label := rt.Label
	if label == "" {
		label = id
	}
	label, err := template.Substitute(label, opts.Variables)
	if err != nil {
		return model.Task{}, err
	}

	start, err := ResolveDate(rt.Start, cal, opts.DayFirst)
	if err != nil {
		return model.Task{}, &model.ConfigError{Field: "task " + id + ".start", Reason: err.Error()}
	}

	milestone := rt.Type == "milestone"
	var end time.Time
	switch {
	case milestone:
		if rt.End != "" {
			return model.Task{}, &model.ConfigError{
				Field:  "task " + id,
				Reason: "a milestone only takes a start date, remove the end date",
			}
		}
		end = start
	case rt.End != "":
		end, err = ResolveDate(rt.End, cal, opts.DayFirst)
		if err != nil {
			return model.Task{}, &model.ConfigError{Field: "task " + id + ".end", Reason: err.Error()}
		}
	case rt.Duration > 0:
		end = start.AddDate(0, 0, rt.Duration-1)
	default:
		return model.Task{}, &model.ConfigError{
			Field:  "task " + id,
			Reason: "either an end date or a duration is required",
		}
	}
	if end.Before(start) {
		return model.Task{}, &model.ConfigError{
			Field:  "task " + id,
			Reason: "end date " + end.Format("2006-01-02") + " is before start date " + start.Format("2006-01-02"),
		}
	}

	for _, empID := range rt.Employees {
		if _, ok := reg.Get(empID); !ok {
			return model.Task{}, &model.ReferenceError{Kind: "employee", Ref: empID, In: "task " + id}
		}
	}
	for empID := range rt.Hours {
		if !containsString(rt.Employees, empID) {
			return model.Task{}, &model.ConfigError{
				Field:  "task " + id + ".hours",
				Reason: "hours booked for " + empID + " but the employee is not assigned to the task",
			}
		}
	}

	t := model.Task{
		ID:          id,
		ProjectID:   rp.ID,
		Label:       label,
		Start:       start,
		End:         end,
		Milestone:   milestone,
		Detail:      rt.Detail,
		Employees:   append([]string{}, rt.Employees...),
		Color:       rt.Color,
		OutOfWindow: start.Before(cal.Start) || end.After(cal.End),
	}
	if t.Color == "" {
		t.Color = rp.Color
	}
	if len(rt.Hours) > 0 {
		t.Hours = make(map[string]float64, len(rt.Hours))
		total := 0.0
		for k, v := range rt.Hours {
			t.Hours[k] = v
			total += v
		}
		t.Attrs = map[string]model.AttrValue{"hours": model.NumberAttr(total)}
	}
	if rt.Deadline != "" {
		d, err := ResolveDate(rt.Deadline, cal, opts.DayFirst)
		if err != nil {
			return model.Task{}, &model.ConfigError{Field: "task " + id + ".deadline", Reason: err.Error()}
		}
		t.Deadline = &d
	}
	for k, v := range rt.Attributes {
		if t.Attrs == nil {
			t.Attrs = make(map[string]model.AttrValue, len(rt.Attributes))
		}
		t.Attrs[k] = parseAttr(v, opts.DayFirst)
	}
	return t, nil
}

// parseAttr decides the value kind of a free-form attribute: number wins
// over date, anything else stays text.
func parseAttr(v string, dayFirst bool) model.AttrValue {
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return model.NumberAttr(f)
	}
	if d, err := ParseDate(v, dayFirst); err == nil {
		return model.DateAttr(d)
	}
	return model.TextAttr(v)
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
