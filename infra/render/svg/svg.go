// Package svg draws the resolved rows of one view as an SVG chart. All
// horizontal positions come in as layout units; this package only turns
// units into pixels.
package svg

import (
	"fmt"
	"io"
	"time"

	svgo "github.com/ajstarks/svgo"

	"github.com/ganttplanner/ganttplanner/core/calendar"
	"github.com/ganttplanner/ganttplanner/core/layout"
	"github.com/ganttplanner/ganttplanner/core/model"
)

// Options tune the chart geometry. Zero values are replaced by SetDefaults.
type Options struct {
	Title      string `json:"title"`
	UnitWidth  int    `json:"unit_width"`
	RowHeight  int    `json:"row_height"`
	LabelWidth int    `json:"label_width"`
	ShowToday  bool   `json:"show_today"`
	BarColor   string `json:"bar_color"`
}

// SetDefaults fills the optional geometry fields.
func (o *Options) SetDefaults() {
	if o.UnitWidth == 0 {
		o.UnitWidth = 8
	}
	if o.RowHeight == 0 {
		o.RowHeight = 22
	}
	if o.LabelWidth == 0 {
		o.LabelWidth = 180
	}
	if o.BarColor == "" {
		o.BarColor = "#4C78A8"
	}
}

const (
	headerHeight = 40
	footerHeight = 16
	barPadding   = 4
)

// WriteChart renders one chart. Rows must already be filtered and laid out
// for the calendar window they are drawn against.
func WriteChart(w io.Writer, rows []model.Row, cal *calendar.ResolvedCalendar, opts Options) error {
	opts.SetDefaults()

	ew := &errWriter{w: w}
	canvas := svgo.New(ew)

	chartW := layout.TotalUnits(cal) * opts.UnitWidth
	width := opts.LabelWidth + chartW + footerHeight
	height := headerHeight + len(rows)*opts.RowHeight + footerHeight

	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:white")
	if opts.Title != "" {
		canvas.Text(opts.LabelWidth, headerHeight/2, opts.Title,
			"font-family:sans-serif;font-size:14px;font-weight:bold;fill:#333333")
	}

	drawExcluded(canvas, cal, len(rows), opts)
	drawGrid(canvas, cal, len(rows), opts)

	for _, r := range rows {
		drawRow(canvas, r, opts)
	}

	if opts.ShowToday {
		drawTodayLine(canvas, cal, len(rows), opts)
	}

	canvas.End()
	return ew.err
}

func drawGrid(canvas *svgo.SVG, cal *calendar.ResolvedCalendar, rowCount int, opts Options) {
	top := headerHeight
	bottom := headerHeight + rowCount*opts.RowHeight
	step := 1
	if cal.Scale == model.ScaleDaily {
		// one line per week keeps daily charts readable
		step = 7
	}
	for u := cal.MarginLeft; u <= cal.MarginLeft+layout.WindowUnits(cal); u += step {
		x := opts.LabelWidth + u*opts.UnitWidth
		canvas.Line(x, top, x, bottom, "stroke:#DDDDDD;stroke-width:1")
	}
	canvas.Line(opts.LabelWidth, bottom, opts.LabelWidth+layout.TotalUnits(cal)*opts.UnitWidth, bottom,
		"stroke:#999999;stroke-width:1")
}

func drawExcluded(canvas *svgo.SVG, cal *calendar.ResolvedCalendar, rowCount int, opts Options) {
	top := headerHeight
	h := rowCount * opts.RowHeight
	for _, vac := range cal.Excluded {
		from := cal.MarginLeft + layout.Units(cal, vac.Start)
		to := cal.MarginLeft + layout.Units(cal, vac.End) + 1
		x := opts.LabelWidth + from*opts.UnitWidth
		canvas.Rect(x, top, (to-from)*opts.UnitWidth, h, "fill:#EEEEEE")
	}
}

func drawRow(canvas *svgo.SVG, r model.Row, opts Options) {
	y := headerHeight + r.Y*opts.RowHeight
	canvas.Text(4, y+opts.RowHeight-barPadding-2, r.Task.Label,
		"font-family:sans-serif;font-size:11px;fill:#333333")

	color := r.Task.Color
	if color == "" {
		color = opts.BarColor
	}

	if r.Task.Milestone {
		drawMilestone(canvas, r, y, color, opts)
	} else {
		x := opts.LabelWidth + int(r.XStart*float64(opts.UnitWidth))
		w := int((r.XEnd - r.XStart) * float64(opts.UnitWidth))
		if w < 1 {
			w = 1
		}
		canvas.Roundrect(x, y+barPadding, w, opts.RowHeight-2*barPadding, 2, 2,
			fmt.Sprintf("fill:%s;stroke:#666666;stroke-width:0.5", color))
	}

	if r.Task.Deadline != nil {
		drawDeadline(canvas, r, y, opts)
	}
}

func drawMilestone(canvas *svgo.SVG, r model.Row, y int, color string, opts Options) {
	cx := opts.LabelWidth + int(r.XStart*float64(opts.UnitWidth)) + opts.UnitWidth/2
	cy := y + opts.RowHeight/2
	d := opts.RowHeight/2 - barPadding/2
	xs := []int{cx, cx + d, cx, cx - d}
	ys := []int{cy - d, cy, cy + d, cy}
	canvas.Polygon(xs, ys, fmt.Sprintf("fill:%s;stroke:#666666;stroke-width:0.5", color))
}

func drawDeadline(canvas *svgo.SVG, r model.Row, y int, opts Options) {
	x := opts.LabelWidth + int(r.XEnd*float64(opts.UnitWidth))
	canvas.Line(x, y+1, x, y+opts.RowHeight-1, "stroke:#CC0000;stroke-width:2")
}

func drawTodayLine(canvas *svgo.SVG, cal *calendar.ResolvedCalendar, rowCount int, opts Options) {
	today := cal.ReferenceDate
	if today.IsZero() {
		return
	}
	if cal.Scale == model.ScaleWeekly {
		today = nearestSaturday(today)
	}
	if today.Before(cal.Start) || today.After(cal.End) {
		return
	}
	x := opts.LabelWidth + (cal.MarginLeft+layout.Units(cal, today))*opts.UnitWidth
	canvas.Line(x, headerHeight, x, headerHeight+rowCount*opts.RowHeight,
		"stroke:#2A7F2A;stroke-width:1;stroke-dasharray:4 2")
}

// nearestSaturday snaps a date to the closest Saturday so the today line
// lands on a week boundary of the weekly grid.
func nearestSaturday(d time.Time) time.Time {
	diff := (int(d.Weekday()) - int(time.Saturday) + 7) % 7
	if diff > 3 {
		return d.AddDate(0, 0, 7-diff)
	}
	return d.AddDate(0, 0, -diff)
}

type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}
