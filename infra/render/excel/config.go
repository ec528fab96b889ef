// Package excel writes the tabular project reports. Layout and content of
// a workbook are fully configuration driven.
package excel

import (
	"github.com/ganttplanner/ganttplanner/core/aggregate"
	"github.com/ganttplanner/ganttplanner/core/model"
)

// Report variants. Leaders reports carry one row per project, contributors
// reports one row per task.
const (
	TypeLeaders      = "leaders"
	TypeContributors = "contributors"
)

// Builtin column keys every report can reference. Any other key must match
// a custom task attribute.
var builtinColumns = map[string]struct{}{
	"label":     {},
	"start":     {},
	"end":       {},
	"project":   {},
	"leader":    {},
	"employees": {},
	"hours":     {},
}

// Column maps one workbook column to a builtin key or task attribute.
type Column struct {
	Key   string `json:"key"`
	Title string `json:"title"`
}

// HeaderSection groups adjacent columns under one merged, colored title
// cell.
type HeaderSection struct {
	Title   string   `json:"title"`
	Color   string   `json:"color"`
	Columns []Column `json:"columns"`
}

// ReportConfig describes one workbook.
type ReportConfig struct {
	Type         string             `json:"type"`
	SheetName    string             `json:"sheet_name"`
	ColumnWidths map[string]float64 `json:"column_widths"`
	Header       []HeaderSection    `json:"header"`
	Summations   []aggregate.Rule   `json:"summations"`
}

// SetDefaults fills the optional report fields.
func (c *ReportConfig) SetDefaults() {
	if c.Type == "" {
		c.Type = TypeContributors
	}
	if c.SheetName == "" {
		c.SheetName = "Planning"
	}
	for i := range c.Summations {
		c.Summations[i].SetDefaults()
	}
}

// Validate rejects reports the writer cannot produce.
func (c *ReportConfig) Validate() error {
	if c.Type != TypeLeaders && c.Type != TypeContributors {
		return &model.ConfigError{Field: "excel.type", Reason: "must be leaders or contributors"}
	}
	if len(c.Header) == 0 {
		return &model.ConfigError{Field: "excel.header", Reason: "needs at least one section"}
	}
	for _, s := range c.Header {
		if len(s.Columns) == 0 {
			return &model.ConfigError{Field: "excel.header." + s.Title, Reason: "section has no columns"}
		}
	}
	keys := map[string]struct{}{}
	for _, col := range c.columns() {
		keys[col.Key] = struct{}{}
	}
	for i := range c.Summations {
		rule := &c.Summations[i]
		if err := rule.Validate(); err != nil {
			return err
		}
		if rule.Column == "" {
			continue
		}
		if _, ok := keys[rule.Column]; !ok {
			return &model.ReferenceError{Kind: "column", Ref: rule.Column, In: "summation rule " + rule.Name}
		}
	}
	return nil
}

// ValidateColumns checks every configured column key against the builtin
// keys and the attributes actually present on the tasks.
func (c *ReportConfig) ValidateColumns(projects []model.Project) error {
	attrs := map[string]struct{}{}
	for _, p := range projects {
		for _, t := range p.Tasks {
			for k := range t.Attrs {
				attrs[k] = struct{}{}
			}
		}
	}
	for _, s := range c.Header {
		for _, col := range s.Columns {
			if _, ok := builtinColumns[col.Key]; ok {
				continue
			}
			if _, ok := attrs[col.Key]; ok {
				continue
			}
			return &model.ReferenceError{Kind: "column", Ref: col.Key, In: "excel header section " + s.Title}
		}
	}
	return nil
}

// columns returns the flat column list across all header sections.
func (c *ReportConfig) columns() []Column {
	var out []Column
	for _, s := range c.Header {
		out = append(out, s.Columns...)
	}
	return out
}
