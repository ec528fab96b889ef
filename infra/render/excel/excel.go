package excel

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/ganttplanner/ganttplanner/core/aggregate"
	"github.com/ganttplanner/ganttplanner/core/model"
)

const dateLayout = "2006-01-02"

// WriteWorkbook renders the report workbook for the built projects, one
// sheet per configured variant. The summary rules are evaluated here so
// the workbook and the charts cannot drift apart.
func WriteWorkbook(w io.Writer, projects []model.Project, reg *model.Registry, variants []ReportConfig) error {
	if len(variants) == 0 {
		return &model.ConfigError{Field: "excel", Reason: "needs at least one report variant"}
	}

	f := excelize.NewFile()
	defer f.Close()
	for i := range variants {
		cfg := variants[i]
		cfg.SetDefaults()
		if err := cfg.Validate(); err != nil {
			return err
		}
		if err := cfg.ValidateColumns(projects); err != nil {
			return err
		}
		if i == 0 {
			if err := f.SetSheetName("Sheet1", cfg.SheetName); err != nil {
				return fmt.Errorf("excel: rename sheet: %w", err)
			}
		} else {
			if _, err := f.NewSheet(cfg.SheetName); err != nil {
				return fmt.Errorf("excel: new sheet: %w", err)
			}
		}
		if err := writeSheet(f, projects, reg, cfg); err != nil {
			return err
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("excel: write workbook: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, projects []model.Project, reg *model.Registry, cfg ReportConfig) error {
	sheet := cfg.SheetName
	cols := cfg.columns()
	if err := writeHeader(f, sheet, cfg); err != nil {
		return err
	}
	if err := applyColumnWidths(f, sheet, cfg, cols); err != nil {
		return err
	}

	var res *aggregate.Result
	if len(cfg.Summations) > 0 {
		var err error
		res, err = aggregate.Aggregate(projects, reg, cfg.Summations)
		if err != nil {
			return err
		}
	}

	row := 3
	switch cfg.Type {
	case TypeLeaders:
		for _, p := range projects {
			for c, col := range cols {
				if err := setCell(f, sheet, c+1, row, projectCell(p, reg, col.Key)); err != nil {
					return err
				}
			}
			row++
			next, err := writeProjectSummations(f, sheet, p, cfg, cols, res, row)
			if err != nil {
				return err
			}
			row = next
		}
	case TypeContributors:
		for _, p := range projects {
			for _, t := range p.Tasks {
				for c, col := range cols {
					if err := setCell(f, sheet, c+1, row, taskCell(t, p, reg, col.Key)); err != nil {
						return err
					}
				}
				row++
			}
			next, err := writeProjectSummations(f, sheet, p, cfg, cols, res, row)
			if err != nil {
				return err
			}
			row = next
		}
	}

	if res != nil {
		if err := writeTrailingSummations(f, sheet, cfg, cols, res, row+1); err != nil {
			return err
		}
	}
	return nil
}

func writeHeader(f *excelize.File, sheet string, cfg ReportConfig) error {
	titleStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return fmt.Errorf("excel: header style: %w", err)
	}

	col := 1
	for _, section := range cfg.Header {
		from, err := excelize.CoordinatesToCellName(col, 1)
		if err != nil {
			return fmt.Errorf("excel: header cell: %w", err)
		}
		to, err := excelize.CoordinatesToCellName(col+len(section.Columns)-1, 1)
		if err != nil {
			return fmt.Errorf("excel: header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, from, section.Title); err != nil {
			return fmt.Errorf("excel: header title: %w", err)
		}
		if from != to {
			if err := f.MergeCell(sheet, from, to); err != nil {
				return fmt.Errorf("excel: merge header: %w", err)
			}
		}
		style := titleStyle
		if section.Color != "" {
			style, err = f.NewStyle(&excelize.Style{
				Font:      &excelize.Font{Bold: true},
				Alignment: &excelize.Alignment{Horizontal: "center"},
				Fill: excelize.Fill{
					Type:    "pattern",
					Pattern: 1,
					Color:   []string{strings.TrimPrefix(section.Color, "#")},
				},
			})
			if err != nil {
				return fmt.Errorf("excel: section style: %w", err)
			}
		}
		if err := f.SetCellStyle(sheet, from, to, style); err != nil {
			return fmt.Errorf("excel: header style: %w", err)
		}

		for _, c := range section.Columns {
			if err := setCell(f, sheet, col, 2, c.Title); err != nil {
				return err
			}
			cell, _ := excelize.CoordinatesToCellName(col, 2)
			if err := f.SetCellStyle(sheet, cell, cell, titleStyle); err != nil {
				return fmt.Errorf("excel: column style: %w", err)
			}
			col++
		}
	}
	return nil
}

func applyColumnWidths(f *excelize.File, sheet string, cfg ReportConfig, cols []Column) error {
	for i, col := range cols {
		width, ok := cfg.ColumnWidths[col.Key]
		if !ok {
			continue
		}
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("excel: column name: %w", err)
		}
		if err := f.SetColWidth(sheet, name, name, width); err != nil {
			return fmt.Errorf("excel: column width: %w", err)
		}
	}
	return nil
}

// writeProjectSummations emits, right below a project's rows, the entries of
// every per_project rule that aggregated over that project. It returns the
// next free row.
func writeProjectSummations(f *excelize.File, sheet string, p model.Project, cfg ReportConfig, cols []Column, res *aggregate.Result, row int) (int, error) {
	if res == nil {
		return row, nil
	}
	for _, rule := range cfg.Summations {
		if rule.GroupBy != aggregate.PerProject {
			continue
		}
		for _, entry := range res.Entries[rule.Name] {
			if entry.GroupKey != p.ID {
				continue
			}
			if err := writeEntry(f, sheet, valueColumn(cols, rule), row, entry); err != nil {
				return row, err
			}
			row++
		}
	}
	return row, nil
}

// writeTrailingSummations writes the remaining (non per_project) rules as a
// block after the data, one blank row between rules.
func writeTrailingSummations(f *excelize.File, sheet string, cfg ReportConfig, cols []Column, res *aggregate.Result, startRow int) error {
	row := startRow
	for _, rule := range cfg.Summations {
		if rule.GroupBy == aggregate.PerProject {
			continue
		}
		for _, entry := range res.Entries[rule.Name] {
			if err := writeEntry(f, sheet, valueColumn(cols, rule), row, entry); err != nil {
				return err
			}
			row++
		}
		row++
	}
	return nil
}

func valueColumn(cols []Column, rule aggregate.Rule) int {
	for i, c := range cols {
		if c.Key == rule.Column {
			return i + 1
		}
	}
	return len(cols)
}

func writeEntry(f *excelize.File, sheet string, valueCol, row int, entry model.SummaryEntry) error {
	if err := setCell(f, sheet, 1, row, entry.Label); err != nil {
		return err
	}
	if err := setCell(f, sheet, valueCol, row, entry.Value); err != nil {
		return err
	}
	if entry.Format.Bold || entry.Format.AlignLeft {
		if err := styleEntry(f, sheet, valueCol, row, entry.Format); err != nil {
			return err
		}
	}
	return nil
}

func styleEntry(f *excelize.File, sheet string, col, row int, hint model.FormatHint) error {
	st := &excelize.Style{Font: &excelize.Font{Bold: hint.Bold}}
	if hint.AlignLeft {
		st.Alignment = &excelize.Alignment{Horizontal: "left"}
	}
	style, err := f.NewStyle(st)
	if err != nil {
		return fmt.Errorf("excel: summary style: %w", err)
	}
	from, _ := excelize.CoordinatesToCellName(1, row)
	to, _ := excelize.CoordinatesToCellName(col, row)
	if err := f.SetCellStyle(sheet, from, to, style); err != nil {
		return fmt.Errorf("excel: summary style: %w", err)
	}
	return nil
}

func setCell(f *excelize.File, sheet string, col, row int, v any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("excel: cell name: %w", err)
	}
	if err := f.SetCellValue(sheet, cell, v); err != nil {
		return fmt.Errorf("excel: set cell %s: %w", cell, err)
	}
	return nil
}

func projectCell(p model.Project, reg *model.Registry, key string) any {
	switch key {
	case "project", "label":
		return p.Title
	case "leader":
		return employeeName(reg, p.Leader)
	case "start":
		if d, ok := projectStart(p); ok {
			return d.Format(dateLayout)
		}
		return ""
	case "end":
		if d, ok := projectEnd(p); ok {
			return d.Format(dateLayout)
		}
		return ""
	case "employees":
		return strings.Join(projectEmployees(p, reg), ", ")
	default:
		var total float64
		for _, t := range p.Tasks {
			total += t.Number(key)
		}
		return total
	}
}

func taskCell(t model.Task, p model.Project, reg *model.Registry, key string) any {
	switch key {
	case "label":
		return t.Label
	case "start":
		return t.Start.Format(dateLayout)
	case "end":
		return t.End.Format(dateLayout)
	case "project":
		return p.Title
	case "leader":
		return employeeName(reg, p.Leader)
	case "employees":
		names := make([]string, 0, len(t.Employees))
		for _, id := range t.Employees {
			names = append(names, employeeName(reg, id))
		}
		return strings.Join(names, ", ")
	default:
		attr, ok := t.Attrs[key]
		if !ok {
			return ""
		}
		switch attr.Kind {
		case model.AttrNumber:
			return attr.Number
		case model.AttrDate:
			return attr.Date.Format(dateLayout)
		default:
			return attr.Text
		}
	}
}

func projectStart(p model.Project) (time.Time, bool) {
	var min time.Time
	for _, t := range p.Tasks {
		if min.IsZero() || t.Start.Before(min) {
			min = t.Start
		}
	}
	return min, !min.IsZero()
}

func projectEnd(p model.Project) (time.Time, bool) {
	var max time.Time
	for _, t := range p.Tasks {
		if t.End.After(max) {
			max = t.End
		}
	}
	return max, !max.IsZero()
}

func projectEmployees(p model.Project, reg *model.Registry) []string {
	seen := map[string]struct{}{}
	var names []string
	for _, t := range p.Tasks {
		for _, id := range t.Employees {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			names = append(names, employeeName(reg, id))
		}
	}
	return names
}

func employeeName(reg *model.Registry, id string) string {
	if id == "" {
		return ""
	}
	if reg != nil {
		if e, ok := reg.Get(id); ok {
			return e.DisplayName()
		}
	}
	return id
}
