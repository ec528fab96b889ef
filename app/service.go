// Package app wires configuration, the planning engine and the renderers
// into runnable chart and report generation.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/ganttplanner/ganttplanner/config"
	"github.com/ganttplanner/ganttplanner/core/aggregate"
	"github.com/ganttplanner/ganttplanner/core/builder"
	"github.com/ganttplanner/ganttplanner/core/calendar"
	"github.com/ganttplanner/ganttplanner/core/colorname"
	"github.com/ganttplanner/ganttplanner/core/layout"
	"github.com/ganttplanner/ganttplanner/core/model"
	"github.com/ganttplanner/ganttplanner/core/view"
	"github.com/ganttplanner/ganttplanner/infra/logger"
	"github.com/ganttplanner/ganttplanner/infra/render/excel"
	svgrender "github.com/ganttplanner/ganttplanner/infra/render/svg"
)

// Service holds the resolved planning inputs of one configuration.
type Service struct {
	cfg       *config.Config
	colors    *colorname.Table
	registry  *model.Registry
	general   calendar.General
	vacations []model.VacationInterval
	raw       []builder.RawProject
	log       logger.Logger
}

// RunOptions select what one invocation produces.
type RunOptions struct {
	Periods    []string
	Employees  []string
	Resources  bool
	Export     bool
	Scale      string
	NoDetails  bool
	OutputDir  string
	OutputBase string
}

// New resolves the configuration into a runnable service. Project files
// with relative paths are read relative to baseDir.
func New(cfg *config.Config, baseDir string) (*Service, error) {
	colors, err := colorname.New(cfg.CustomColors)
	if err != nil {
		return nil, err
	}
	reg, err := cfg.Registry(colors)
	if err != nil {
		return nil, err
	}
	gen, err := cfg.General.Window()
	if err != nil {
		return nil, err
	}
	vacations, err := cfg.GlobalVacations()
	if err != nil {
		return nil, err
	}

	svc := &Service{
		cfg:       cfg,
		colors:    colors,
		registry:  reg,
		general:   gen,
		vacations: vacations,
		log:       logger.New("app"),
	}
	if err := svc.loadProjects(baseDir); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *Service) loadProjects(baseDir string) error {
	for _, ref := range s.cfg.ProjectFiles {
		path := ref.Path
		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, path)
		}
		pf, err := config.LoadProjectFile(path)
		if err != nil {
			return fmt.Errorf("project file %s: %w", ref.Name, err)
		}
		for _, rp := range pf.Projects {
			if rp.Color == "" {
				rp.Color = pf.Color
			}
			hex, err := s.colors.Hex(rp.Color)
			if err != nil {
				return err
			}
			rp.Color = hex
			s.raw = append(s.raw, rp)
		}
	}
	return nil
}

// Registry exposes the employees known to the service.
func (s *Service) Registry() *model.Registry { return s.registry }

// Projects builds the task model against the full planning window.
func (s *Service) Projects() ([]model.Project, error) {
	cal, err := calendar.Resolve(s.general, calendar.PeriodAll, nil, s.vacations, nil)
	if err != nil {
		return nil, err
	}
	return s.build(cal, RunOptions{})
}

// Run produces the requested charts or the report workbook. Each view is
// generated independently; a failing view is logged and reported but does
// not stop the remaining ones.
func (s *Service) Run(ctx context.Context, opts RunOptions) error {
	periods, err := s.selectPeriods(opts.Periods)
	if err != nil {
		return err
	}
	if err := s.checkEmployees(opts.Employees); err != nil {
		return err
	}
	general := s.general
	if opts.Scale != "" {
		scale, err := model.ParseScale(opts.Scale)
		if err != nil {
			return err
		}
		general.Scale = scale
	}
	if opts.OutputBase == "" {
		opts.OutputBase = "planning"
	}
	if opts.OutputDir != "" {
		if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
			return fmt.Errorf("output dir: %w", err)
		}
	}

	var errs []error
	for _, name := range periods {
		if ctx.Err() != nil {
			errs = append(errs, ctx.Err())
			break
		}
		if err := s.runPeriod(general, name, opts); err != nil {
			s.log.Errorf("period %s failed: %v", name, err)
			errs = append(errs, fmt.Errorf("period %s: %w", name, err))
		}
	}
	return errors.Join(errs...)
}

func (s *Service) selectPeriods(requested []string) ([]string, error) {
	if len(requested) == 0 {
		return []string{calendar.PeriodAll}, nil
	}
	for _, name := range requested {
		if name == calendar.PeriodAll {
			continue
		}
		if _, ok := s.cfg.Periods[name]; !ok {
			return nil, &model.ReferenceError{Kind: "period", Ref: name, In: "command line"}
		}
	}
	return requested, nil
}

func (s *Service) checkEmployees(requested []string) error {
	for _, id := range requested {
		if _, ok := s.registry.Get(id); !ok {
			return &model.ReferenceError{Kind: "employee", Ref: id, In: "command line"}
		}
	}
	return nil
}

func (s *Service) periodConfig(name string) (*calendar.Period, error) {
	pc, ok := s.cfg.Periods[name]
	if !ok {
		return nil, nil
	}
	return pc.Period(s.cfg.General.DayFirst)
}

func (s *Service) runPeriod(general calendar.General, name string, opts RunOptions) error {
	period, err := s.periodConfig(name)
	if err != nil {
		return err
	}
	cal, err := calendar.Resolve(general, name, period, s.vacations, nil)
	if err != nil {
		return err
	}
	projects, err := s.build(cal, opts)
	if err != nil {
		return err
	}

	if opts.Export {
		return s.writeWorkbook(projects, name, opts)
	}

	var errs []error
	run := func(kind string, fn func() error) {
		id := uuid.NewString()
		s.log.Debugf("run %s: rendering %s view of period %s", id, kind, name)
		if err := fn(); err != nil {
			s.log.Errorf("run %s: %s view failed: %v", id, kind, err)
			errs = append(errs, fmt.Errorf("%s view: %w", kind, err))
		}
	}

	run("global", func() error {
		return s.writeGlobalChart(projects, cal, name, opts)
	})
	for _, empID := range opts.Employees {
		run("employee "+empID, func() error {
			return s.writeEmployeeChart(general, name, period, empID, opts)
		})
	}
	if opts.Resources {
		run("resources", func() error {
			return s.writeResourcesChart(projects, cal, name, opts)
		})
	}
	if cal.ExportVacations {
		run("vacations", func() error {
			return s.writeVacationsChart(general, name, period, opts)
		})
	}
	return errors.Join(errs...)
}

func (s *Service) build(cal *calendar.ResolvedCalendar, opts RunOptions) ([]model.Project, error) {
	return builder.Build(s.raw, cal, s.registry, builder.Options{
		SortByStart: s.cfg.General.SortByStart,
		SkipDetails: opts.NoDetails || s.cfg.General.NoDetails,
		DayFirst:    s.cfg.General.DayFirst,
		Variables:   s.cfg.Variables,
	}, s.log)
}

func (s *Service) writeGlobalChart(projects []model.Project, cal *calendar.ResolvedCalendar, period string, opts RunOptions) error {
	rows, err := layout.Layout(projects, cal)
	if err != nil {
		return err
	}
	rows, err = view.Select(rows, view.ModeGlobal, "")
	if err != nil {
		return err
	}
	return s.writeChart(rows, cal, s.chartOptions(period), s.outPath(opts, period, "", ""))
}

func (s *Service) writeEmployeeChart(general calendar.General, period string, pc *calendar.Period, empID string, opts RunOptions) error {
	emp, _ := s.registry.Get(empID)
	cal, err := calendar.Resolve(general, period, pc, s.vacations, emp)
	if err != nil {
		return err
	}
	projects, err := s.build(cal, opts)
	if err != nil {
		return err
	}
	rows, err := layout.Layout(projects, cal)
	if err != nil {
		return err
	}
	rows, err = view.Select(rows, view.ModeEmployee, empID)
	if err != nil {
		return err
	}
	title := fmt.Sprintf("%s (%s)", s.chartTitle(period), emp.DisplayName())
	chartOpts := s.chartOptions(period)
	chartOpts.Title = title
	return s.writeChart(rows, cal, chartOpts, s.outPath(opts, period, empID, ""))
}

func (s *Service) writeResourcesChart(projects []model.Project, cal *calendar.ResolvedCalendar, period string, opts RunOptions) error {
	rows, err := layout.Layout(projects, cal)
	if err != nil {
		return err
	}
	totals := aggregate.EmployeeTotals(projects, aggregate.DefaultAttribute)
	rows = view.Resources(rows, view.GroupByEmployee, totals, s.registry)
	chartOpts := s.chartOptions(period)
	chartOpts.Title = s.chartTitle(period) + " resources"
	return s.writeChart(rows, cal, chartOpts, s.outPath(opts, period, "", "resources"))
}

// writeVacationsChart renders one bar per employee vacation inside the
// period window.
func (s *Service) writeVacationsChart(general calendar.General, period string, pc *calendar.Period, opts RunOptions) error {
	cal, err := calendar.Resolve(general, period, pc, nil, nil)
	if err != nil {
		return err
	}
	project := model.Project{ID: "vacations", Title: "Vacations"}
	for _, id := range s.registry.IDs() {
		emp, _ := s.registry.Get(id)
		for i, vac := range emp.Vacations {
			if vac.End.Before(cal.Start) || vac.Start.After(cal.End) {
				continue
			}
			project.Tasks = append(project.Tasks, model.Task{
				ID:        fmt.Sprintf("%s-vacation-%d", id, i),
				ProjectID: project.ID,
				Label:     emp.DisplayName(),
				Start:     vac.Start,
				End:       vac.End,
				Employees: []string{id},
				Color:     emp.Color,
			})
		}
	}
	rows, err := layout.Layout([]model.Project{project}, cal)
	if err != nil {
		return err
	}
	chartOpts := s.chartOptions(period)
	chartOpts.Title = s.chartTitle(period) + " vacations"
	return s.writeChart(rows, cal, chartOpts, s.outPath(opts, period, "", "vacations"))
}

func (s *Service) writeWorkbook(projects []model.Project, period string, opts RunOptions) error {
	if len(s.cfg.Excel) == 0 {
		return &model.ConfigError{Field: "excel", Reason: "export requested but no excel section configured"}
	}
	path := s.outPathExt(opts, period, "", "", ".xlsx")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := excel.WriteWorkbook(f, projects, s.registry, s.cfg.Excel); err != nil {
		return err
	}
	s.log.Infof("wrote %s", path)
	return nil
}

func (s *Service) writeChart(rows []model.Row, cal *calendar.ResolvedCalendar, chartOpts svgrender.Options, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := svgrender.WriteChart(f, rows, cal, chartOpts); err != nil {
		return err
	}
	s.log.Infof("wrote %s", path)
	return nil
}

func (s *Service) chartOptions(period string) svgrender.Options {
	chartOpts := s.cfg.Chart
	if chartOpts.Title == "" {
		chartOpts.Title = s.chartTitle(period)
	}
	return chartOpts
}

func (s *Service) chartTitle(period string) string {
	if period == calendar.PeriodAll {
		return "Planning"
	}
	return "Planning " + period
}

func (s *Service) outPath(opts RunOptions, period, employee, kind string) string {
	return s.outPathExt(opts, period, employee, kind, ".svg")
}

func (s *Service) outPathExt(opts RunOptions, period, employee, kind, ext string) string {
	name := opts.OutputBase
	if period != "" && period != calendar.PeriodAll {
		name += "_" + period
	}
	if employee != "" {
		name += "_" + employee
	}
	if kind != "" {
		name += "_" + kind
	}
	return filepath.Join(opts.OutputDir, name+ext)
}
