package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, data string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yaml", `general:
  planning_start: "2023-01-01"
  planning_end: "2023-12-31"
  scale: "weekly"
  margin_left: 2
  reference_date: "2023-06-15"
project_files:
  - name: "design"
    path: "design.yaml"
periods:
  q1:
    start: "2023-01-01"
    end: "2023-03-31"
    scale: "daily"
    export_vacations: true
vacations:
  - start: "2023-07-01"
    end: "2023-07-14"
employees:
  - id: "e1"
    name: "Ada"
    color: "teal"
    vacations:
      - start: "2023-08-01"
custom_colors:
  corporate: "#112233"
variables:
  client: "ACME"
chart:
  unit_width: 10
excel:
  - type: "contributors"
    header:
      - title: "Task"
        columns:
          - key: "label"
            title: "Label"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	checks := []struct {
		name string
		got  any
		want any
	}{
		{"planning_start", cfg.General.PlanningStart, "2023-01-01"},
		{"scale", cfg.General.Scale, "weekly"},
		{"margin_left", cfg.General.MarginLeft, 2},
		{"project_file", cfg.ProjectFiles[0].Path, "design.yaml"},
		{"period.start", cfg.Periods["q1"].Start, "2023-01-01"},
		{"period.scale", cfg.Periods["q1"].Scale, "daily"},
		{"period.export_vacations", cfg.Periods["q1"].ExportVacations, true},
		{"vacation.end", cfg.Vacations[0].End, "2023-07-14"},
		{"employee.id", cfg.Employees[0].ID, "e1"},
		{"employee.color", cfg.Employees[0].Color, "teal"},
		{"employee.vacation", cfg.Employees[0].Vacations[0].Start, "2023-08-01"},
		{"custom_color", cfg.CustomColors["corporate"], "#112233"},
		{"variable", cfg.Variables["client"], "ACME"},
		{"chart.unit_width", cfg.Chart.UnitWidth, 10},
		{"excel.type", cfg.Excel[0].Type, "contributors"},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s mismatch: %v", c.name, c.got)
		}
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yaml", `general:
  planning_start: "2023-01-01"
  planning_end: "2023-12-31"
`)
	t.Setenv("GP_GENERAL__SCALE", "weekly")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if cfg.General.Scale != "weekly" {
		t.Errorf("scale mismatch: %v", cfg.General.Scale)
	}
}

func TestLoadRejectsMissingWindow(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yaml", `general:
  planning_start: "2023-01-01"
`)
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for missing planning_end")
	}
}

func TestLoadRejectsUnknownFormat(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.toml", `x = 1`)
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestLoadProjectFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "design.yaml", `title: "Design"
color: "#AABBCC"
projects:
  - id: "p1"
    title: "Survey"
    leader: "e1"
    tasks:
      - id: "t1"
        label: "interviews"
        start: "2023-01-02"
        end: "2023-01-13"
        employees: ["e1"]
        hours:
          e1: 16
`)

	pf, err := LoadProjectFile(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if pf.Title != "Design" {
		t.Errorf("title mismatch: %v", pf.Title)
	}
	if len(pf.Projects) != 1 || len(pf.Projects[0].Tasks) != 1 {
		t.Fatalf("unexpected shape: %+v", pf.Projects)
	}
	task := pf.Projects[0].Tasks[0]
	if task.Label != "interviews" || task.Hours["e1"] != 16 {
		t.Errorf("task mismatch: %+v", task)
	}
}

func TestGeneralWindowConversion(t *testing.T) {
	gc := GeneralConfig{
		PlanningStart: "01-06-2023",
		PlanningEnd:   "31-12-2023",
		Scale:         "daily",
		DayFirst:      true,
	}
	gc.SetDefaults()
	gen, err := gc.Window()
	if err != nil {
		t.Fatalf("window error: %v", err)
	}
	if gen.PlanningStart.Month() != 6 {
		t.Errorf("dayfirst not honored: %v", gen.PlanningStart)
	}
}

func TestVacationRangeValidation(t *testing.T) {
	cfg := &Config{Vacations: []VacationConfig{{Start: "2023-02-10", End: "2023-02-01"}}}
	if _, err := cfg.GlobalVacations(); err == nil {
		t.Fatal("expected error for inverted vacation range")
	}
}
