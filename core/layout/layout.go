// Package layout assigns chart rows and computes bar geometry in scale
// units. One task gets one row: project grouping comes from contiguous
// ordering, not from row packing, which keeps the chart stable and
// readable.
package layout

import (
	"time"

	"github.com/ganttplanner/ganttplanner/core/calendar"
	"github.com/ganttplanner/ganttplanner/core/model"
)

// Layout flattens the projects in order and emits one Row per task with
// its x-span in scale units. Out-of-window tasks are clipped to the nearest
// window boundary; the underlying task keeps its true dates.
func Layout(projects []model.Project, cal *calendar.ResolvedCalendar) ([]model.Row, error) {
	var rows []model.Row
	for pi := range projects {
		for ti := range projects[pi].Tasks {
			task := &projects[pi].Tasks[ti]
			xStart, xEnd, err := span(task, cal)
			if err != nil {
				return nil, err
			}
			idx := len(rows)
			rows = append(rows, model.Row{
				Index:  idx,
				Task:   task,
				XStart: xStart,
				XEnd:   xEnd,
				Y:      idx,
			})
		}
	}
	return rows, nil
}

func span(t *model.Task, cal *calendar.ResolvedCalendar) (float64, float64, error) {
	start, end := t.Start, t.End
	if start.Before(cal.Start) {
		start = cal.Start
	}
	if start.After(cal.End) {
		start = cal.End
	}
	if end.After(cal.End) {
		end = cal.End
	}
	if end.Before(cal.Start) {
		end = cal.Start
	}
	if end.Before(start) {
		return 0, 0, &model.LayoutError{TaskID: t.ID, Reason: "negative span after clipping"}
	}
	xStart := float64(cal.MarginLeft + Units(cal, start))
	xEnd := float64(cal.MarginLeft + Units(cal, end) + 1)
	return xStart, xEnd, nil
}

// Units maps a date to its offset from the calendar start in scale units:
// whole days on the daily scale, whole weeks on the weekly scale.
func Units(cal *calendar.ResolvedCalendar, d time.Time) int {
	days := int(d.Sub(cal.Start).Hours() / 24)
	if cal.Scale == model.ScaleWeekly {
		return days / 7
	}
	return days
}

// WindowUnits is the width of the window itself in scale units, excluding
// margins. A one-day daily window is one unit wide.
func WindowUnits(cal *calendar.ResolvedCalendar) int {
	return Units(cal, cal.End) + 1
}

// TotalUnits is the full chart width in scale units including both margins.
func TotalUnits(cal *calendar.ResolvedCalendar) int {
	return cal.MarginLeft + WindowUnits(cal) + cal.MarginRight
}
