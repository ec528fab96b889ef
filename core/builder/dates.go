package builder

import (
	"fmt"
	"strings"
	"time"

	"github.com/ganttplanner/ganttplanner/core/calendar"
)

// Symbolic date expressions resolved against the calendar instead of
// parsed. Resolution is a pure lookup, no relative arithmetic.
const (
	exprToday         = "today"
	exprPlanningStart = "planning_start"
	exprPlanningEnd   = "planning_end"
)

var isoLayouts = []string{"2006-01-02", "2006/01/02"}

var dayFirstLayouts = []string{"02-01-2006", "02/01/2006"}

var monthFirstLayouts = []string{"01-02-2006", "01/02/2006"}

// ResolveDate turns a configuration date expression into a concrete date.
func ResolveDate(expr string, cal *calendar.ResolvedCalendar, dayFirst bool) (time.Time, error) {
	switch strings.ToLower(strings.TrimSpace(expr)) {
	case exprToday:
		return cal.ReferenceDate, nil
	case exprPlanningStart:
		return cal.Start, nil
	case exprPlanningEnd:
		return cal.End, nil
	}
	return ParseDate(expr, dayFirst)
}

// ParseDate parses a literal date. ISO dates always work; the dayFirst
// flag decides whether "03-04-2023" means the 3rd of April or the 4th of
// March.
func ParseDate(s string, dayFirst bool) (time.Time, error) {
	layouts := append([]string{}, isoLayouts...)
	if dayFirst {
		layouts = append(layouts, dayFirstLayouts...)
	} else {
		layouts = append(layouts, monthFirstLayouts...)
	}
	trimmed := strings.TrimSpace(s)
	for _, layout := range layouts {
		if d, err := time.Parse(layout, trimmed); err == nil {
			return d, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse %q as a date", s)
}
