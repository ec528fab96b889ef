package config

import (
	"fmt"
	"time"

	"github.com/ganttplanner/ganttplanner/core/builder"
	"github.com/ganttplanner/ganttplanner/core/calendar"
	"github.com/ganttplanner/ganttplanner/core/colorname"
	"github.com/ganttplanner/ganttplanner/core/model"
)

// GeneralConfig holds the planning window defaults.
type GeneralConfig struct {
	PlanningStart string `json:"planning_start"`
	PlanningEnd   string `json:"planning_end"`
	Scale         string `json:"scale"`
	MarginLeft    int    `json:"margin_left"`
	MarginRight   int    `json:"margin_right"`
	ReferenceDate string `json:"reference_date"`
	DayFirst      bool   `json:"dayfirst"`
	SortByStart   bool   `json:"sort_by_start"`
	NoDetails     bool   `json:"no_details"`
}

// SetDefaults applies sane defaults.
func (c *GeneralConfig) SetDefaults() {
	if c.Scale == "" {
		c.Scale = string(model.ScaleDaily)
	}
}

// Validate checks mandatory fields.
func (c GeneralConfig) Validate() error {
	if c.PlanningStart == "" || c.PlanningEnd == "" {
		return &model.ConfigError{Field: "general", Reason: "planning_start and planning_end are required"}
	}
	if _, err := model.ParseScale(c.Scale); err != nil {
		return err
	}
	return nil
}

// Window converts the section into the resolver's general calendar.
func (c GeneralConfig) Window() (calendar.General, error) {
	var gen calendar.General
	var err error
	if gen.PlanningStart, err = builder.ParseDate(c.PlanningStart, c.DayFirst); err != nil {
		return gen, &model.ConfigError{Field: "general.planning_start", Reason: err.Error()}
	}
	if gen.PlanningEnd, err = builder.ParseDate(c.PlanningEnd, c.DayFirst); err != nil {
		return gen, &model.ConfigError{Field: "general.planning_end", Reason: err.Error()}
	}
	if gen.Scale, err = model.ParseScale(c.Scale); err != nil {
		return gen, err
	}
	gen.MarginLeft = c.MarginLeft
	gen.MarginRight = c.MarginRight
	gen.ReferenceDate = time.Now().UTC().Truncate(24 * time.Hour)
	if c.ReferenceDate != "" {
		if gen.ReferenceDate, err = builder.ParseDate(c.ReferenceDate, c.DayFirst); err != nil {
			return gen, &model.ConfigError{Field: "general.reference_date", Reason: err.Error()}
		}
	}
	return gen, nil
}

// PeriodConfig overrides a subset of the general window. Empty fields
// inherit.
type PeriodConfig struct {
	Start           string `json:"start"`
	End             string `json:"end"`
	Scale           string `json:"scale"`
	MarginLeft      *int   `json:"margin_left"`
	MarginRight     *int   `json:"margin_right"`
	ExportVacations bool   `json:"export_vacations"`
}

// Period converts the section into a resolver override.
func (c PeriodConfig) Period(dayFirst bool) (*calendar.Period, error) {
	p := &calendar.Period{
		MarginLeft:      c.MarginLeft,
		MarginRight:     c.MarginRight,
		ExportVacations: c.ExportVacations,
	}
	if c.Start != "" {
		d, err := builder.ParseDate(c.Start, dayFirst)
		if err != nil {
			return nil, &model.ConfigError{Field: "period.start", Reason: err.Error()}
		}
		p.Start = &d
	}
	if c.End != "" {
		d, err := builder.ParseDate(c.End, dayFirst)
		if err != nil {
			return nil, &model.ConfigError{Field: "period.end", Reason: err.Error()}
		}
		p.End = &d
	}
	if c.Scale != "" {
		s, err := model.ParseScale(c.Scale)
		if err != nil {
			return nil, err
		}
		p.Scale = &s
	}
	return p, nil
}

// VacationConfig is one closed date range. End defaults to Start for
// single-day entries.
type VacationConfig struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

func (c VacationConfig) interval(owner string, dayFirst bool) (model.VacationInterval, error) {
	var v model.VacationInterval
	v.Owner = owner
	start, err := builder.ParseDate(c.Start, dayFirst)
	if err != nil {
		return v, &model.ConfigError{Field: "vacations.start", Reason: err.Error()}
	}
	v.Start = start
	v.End = start
	if c.End != "" {
		end, err := builder.ParseDate(c.End, dayFirst)
		if err != nil {
			return v, &model.ConfigError{Field: "vacations.end", Reason: err.Error()}
		}
		v.End = end
	}
	if v.End.Before(v.Start) {
		return v, &model.ConfigError{
			Field:  "vacations",
			Reason: fmt.Sprintf("range %s..%s ends before it starts", c.Start, c.End),
		}
	}
	return v, nil
}

// GlobalVacations converts the shared vacation list.
func (c *Config) GlobalVacations() ([]model.VacationInterval, error) {
	out := make([]model.VacationInterval, 0, len(c.Vacations))
	for _, vc := range c.Vacations {
		v, err := vc.interval("", c.General.DayFirst)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// EmployeeConfig declares one employee and their personal vacations.
type EmployeeConfig struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Color     string           `json:"color"`
	Vacations []VacationConfig `json:"vacations"`
}

// Registry builds the employee registry with colors resolved against the
// color table.
func (c *Config) Registry(colors *colorname.Table) (*model.Registry, error) {
	reg := model.NewRegistry()
	for _, ec := range c.Employees {
		if ec.ID == "" {
			return nil, &model.ConfigError{Field: "employees.id", Reason: "must not be empty"}
		}
		hex, err := colors.Hex(ec.Color)
		if err != nil {
			return nil, err
		}
		emp := model.Employee{ID: ec.ID, Name: ec.Name, Color: hex}
		for _, vc := range ec.Vacations {
			v, err := vc.interval(ec.ID, c.General.DayFirst)
			if err != nil {
				return nil, err
			}
			emp.Vacations = append(emp.Vacations, v)
		}
		if err := reg.Add(emp); err != nil {
			return nil, err
		}
	}
	return reg, nil
}
