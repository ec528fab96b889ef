package layout

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ganttplanner/ganttplanner/core/calendar"
	"github.com/ganttplanner/ganttplanner/core/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dailyCal(marginLeft, marginRight int) *calendar.ResolvedCalendar {
	return &calendar.ResolvedCalendar{
		Start:       date(2022, 10, 1),
		End:         date(2024, 12, 31),
		Scale:       model.ScaleDaily,
		MarginLeft:  marginLeft,
		MarginRight: marginRight,
	}
}

func task(id string, start, end time.Time, employees ...string) model.Task {
	return model.Task{ID: id, Label: id, Start: start, End: end, Employees: employees}
}

func TestLayoutOneRowPerTask(t *testing.T) {
	projects := []model.Project{
		{ID: "a", Tasks: []model.Task{
			task("a1", date(2023, 1, 1), date(2023, 1, 10)),
			task("a2", date(2023, 1, 1), date(2023, 1, 10)),
		}},
		{ID: "b", Tasks: []model.Task{
			task("b1", date(2023, 1, 1), date(2023, 1, 10)),
		}},
	}
	rows, err := Layout(projects, dailyCal(0, 0))
	require.NoError(t, err)
	require.Len(t, rows, 3)
	for i, r := range rows {
		assert.Equal(t, i, r.Index)
		assert.Equal(t, i, r.Y)
	}
	// overlapping tasks never share a row
	assert.Equal(t, "a1", rows[0].Task.ID)
	assert.Equal(t, "a2", rows[1].Task.ID)
	assert.Equal(t, "b1", rows[2].Task.ID)
}

func TestLayoutDailyGeometry(t *testing.T) {
	// reference scenario: days_since(2022-10-01, 2023-01-10) = 101
	projects := []model.Project{
		{ID: "proj_a", Tasks: []model.Task{
			task("design", date(2023, 1, 10), date(2023, 2, 1), "emp1"),
		}},
	}
	rows, err := Layout(projects, dailyCal(0, 0))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 101.0, rows[0].XStart)
	// end is exclusive: the bar covers the whole end day
	assert.Equal(t, 101.0+23.0, rows[0].XEnd)
}

func TestLayoutMarginOffset(t *testing.T) {
	projects := []model.Project{
		{ID: "p", Tasks: []model.Task{
			task("t", date(2022, 10, 1), date(2022, 10, 1)),
		}},
	}
	rows, err := Layout(projects, dailyCal(3, 2))
	require.NoError(t, err)
	assert.Equal(t, 3.0, rows[0].XStart)
	assert.Equal(t, 4.0, rows[0].XEnd)
}

func TestLayoutWindowClipping(t *testing.T) {
	cal := dailyCal(0, 0)
	over := task("over", date(2022, 1, 1), date(2025, 6, 30))
	over.OutOfWindow = true
	projects := []model.Project{{ID: "p", Tasks: []model.Task{over}}}

	rows, err := Layout(projects, cal)
	require.NoError(t, err)
	assert.Equal(t, 0.0, rows[0].XStart)
	assert.Equal(t, float64(WindowUnits(cal)), rows[0].XEnd)
	// the task keeps its true dates for labels
	assert.Equal(t, date(2022, 1, 1), rows[0].Task.Start)
}

func TestLayoutWeeklyUnits(t *testing.T) {
	cal := dailyCal(0, 0)
	cal.Scale = model.ScaleWeekly
	projects := []model.Project{
		{ID: "p", Tasks: []model.Task{
			task("t", date(2022, 10, 15), date(2022, 11, 4)),
		}},
	}
	rows, err := Layout(projects, cal)
	require.NoError(t, err)
	// 14 days = 2 whole weeks in, 34 days = week 4
	assert.Equal(t, 2.0, rows[0].XStart)
	assert.Equal(t, 5.0, rows[0].XEnd)
}

func TestLayoutIdempotent(t *testing.T) {
	projects := []model.Project{
		{ID: "p", Tasks: []model.Task{
			task("t1", date(2023, 1, 1), date(2023, 1, 10)),
			task("t2", date(2023, 2, 1), date(2023, 2, 10)),
		}},
	}
	first, err := Layout(projects, dailyCal(1, 1))
	require.NoError(t, err)
	second, err := Layout(projects, dailyCal(1, 1))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestWindowUnits(t *testing.T) {
	cal := &calendar.ResolvedCalendar{
		Start: date(2023, 10, 1),
		End:   date(2023, 10, 10),
		Scale: model.ScaleDaily,
	}
	assert.Equal(t, 10, WindowUnits(cal))
	cal.MarginLeft, cal.MarginRight = 2, 3
	assert.Equal(t, 15, TotalUnits(cal))
}
