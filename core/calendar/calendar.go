// Package calendar resolves named periods and vacation calendars into the
// concrete timeline window a chart or report run operates on.
package calendar

import (
	"fmt"
	"time"

	"github.com/ganttplanner/ganttplanner/core/model"
)

// PeriodAll selects the full planning window instead of a named override.
const PeriodAll = "all"

// General holds the planning defaults every period inherits from.
type General struct {
	PlanningStart time.Time
	PlanningEnd   time.Time
	Scale         model.Scale
	MarginLeft    int
	MarginRight   int
	ReferenceDate time.Time
}

// Period overrides a subset of the general window. Nil fields inherit from
// the general defaults.
type Period struct {
	Start           *time.Time
	End             *time.Time
	Scale           *model.Scale
	MarginLeft      *int
	MarginRight     *int
	ExportVacations bool
}

// ResolvedCalendar is the concrete window of one run: start, end, scale,
// margins and the date ranges to mark as excluded. It is immutable after
// Resolve.
type ResolvedCalendar struct {
	Start           time.Time
	End             time.Time
	Scale           model.Scale
	MarginLeft      int
	MarginRight     int
	ExportVacations bool
	ReferenceDate   time.Time
	Excluded        []model.VacationInterval
}

// Resolve merges the general defaults with a named period override and
// clips the vacation calendar to the resulting window. For period name ""
// or "all" the full planning window is kept while scale and margins may
// still be overridden. When an employee is given, their personal vacations
// are appended to the shared ones.
func Resolve(gen General, periodName string, period *Period, vacations []model.VacationInterval, emp *model.Employee) (*ResolvedCalendar, error) {
	res := &ResolvedCalendar{
		Start:         gen.PlanningStart,
		End:           gen.PlanningEnd,
		Scale:         gen.Scale,
		MarginLeft:    gen.MarginLeft,
		MarginRight:   gen.MarginRight,
		ReferenceDate: gen.ReferenceDate,
	}
	if res.Scale == "" {
		res.Scale = model.ScaleDaily
	}

	if period != nil {
		if periodName != "" && periodName != PeriodAll {
			if period.Start != nil {
				res.Start = *period.Start
			}
			if period.End != nil {
				res.End = *period.End
			}
		}
		if period.Scale != nil {
			res.Scale = *period.Scale
		}
		if period.MarginLeft != nil {
			res.MarginLeft = *period.MarginLeft
		}
		if period.MarginRight != nil {
			res.MarginRight = *period.MarginRight
		}
		res.ExportVacations = period.ExportVacations
	}

	if res.Start.After(res.End) {
		return nil, &model.ConfigError{
			Field: "period " + periodName,
			Reason: fmt.Sprintf("start %s is after end %s",
				res.Start.Format("2006-01-02"), res.End.Format("2006-01-02")),
		}
	}
	if res.MarginLeft < 0 || res.MarginRight < 0 {
		return nil, &model.ConfigError{Field: "period " + periodName, Reason: "margins must not be negative"}
	}

	all := vacations
	if emp != nil {
		all = append(append([]model.VacationInterval{}, vacations...), emp.Vacations...)
	}
	for _, v := range all {
		clipped, ok := clip(v, res.Start, res.End)
		if !ok {
			continue
		}
		res.Excluded = append(res.Excluded, clipped)
	}
	return res, nil
}

// clip restricts an interval to [start, end]. Intervals fully outside the
// window are dropped; overlaps are not merged, downstream rendering treats
// them as idempotent marks.
func clip(v model.VacationInterval, start, end time.Time) (model.VacationInterval, bool) {
	if v.End.Before(start) || v.Start.After(end) {
		return model.VacationInterval{}, false
	}
	if v.Start.Before(start) {
		v.Start = start
	}
	if v.End.After(end) {
		v.End = end
	}
	return v, true
}
