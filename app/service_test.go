package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ganttplanner/ganttplanner/config"
	"github.com/ganttplanner/ganttplanner/core/model"
)

const testConfig = `general:
  planning_start: "2023-01-01"
  planning_end: "2023-06-30"
  scale: "daily"
  reference_date: "2023-03-01"
project_files:
  - name: "design"
    path: "design.yaml"
periods:
  q1:
    start: "2023-01-01"
    end: "2023-03-31"
    export_vacations: true
vacations:
  - start: "2023-02-20"
    end: "2023-02-24"
employees:
  - id: "e1"
    name: "Ada"
    color: "teal"
    vacations:
      - start: "2023-03-06"
        end: "2023-03-10"
  - id: "e2"
    name: "Ben"
excel:
  - type: "contributors"
    header:
      - title: "Task"
        columns:
          - key: "label"
            title: "Label"
          - key: "hours"
            title: "Hours"
`

const testProjects = `title: "Design"
color: "#AABBCC"
projects:
  - id: "p1"
    title: "Survey"
    leader: "e1"
    tasks:
      - id: "t1"
        label: "interviews"
        start: "2023-01-09"
        end: "2023-01-27"
        employees: ["e1"]
        hours:
          e1: 24
      - id: "t2"
        label: "analysis"
        start: "2023-02-06"
        end: "2023-02-24"
        employees: ["e1", "e2"]
`

func newService(t *testing.T) (*Service, string) {
	t.Helper()
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(testConfig), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "design.yaml"), []byte(testProjects), 0o644))

	cfg, err := config.Load(cfgPath)
	require.NoError(t, err)
	svc, err := New(cfg, dir)
	require.NoError(t, err)
	return svc, dir
}

func TestRunWritesGlobalChart(t *testing.T) {
	svc, dir := newService(t)
	out := filepath.Join(dir, "out")

	err := svc.Run(context.Background(), RunOptions{OutputDir: out})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(out, "planning.svg"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
	assert.Contains(t, string(data), "interviews")
}

func TestRunPeriodAndEmployeeCharts(t *testing.T) {
	svc, dir := newService(t)
	out := filepath.Join(dir, "out")

	err := svc.Run(context.Background(), RunOptions{
		Periods:   []string{"q1"},
		Employees: []string{"e1"},
		Resources: true,
		OutputDir: out,
	})
	require.NoError(t, err)

	for _, name := range []string{
		"planning_q1.svg",
		"planning_q1_e1.svg",
		"planning_q1_resources.svg",
		"planning_q1_vacations.svg",
	} {
		_, err := os.Stat(filepath.Join(out, name))
		assert.NoError(t, err, name)
	}
}

func TestRunEmployeeChartOnlyShowsTheirTasks(t *testing.T) {
	svc, dir := newService(t)
	out := filepath.Join(dir, "out")

	err := svc.Run(context.Background(), RunOptions{Employees: []string{"e2"}, OutputDir: out})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(out, "planning_e2.svg"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "analysis")
	assert.NotContains(t, string(data), "interviews")
}

func TestRunExportWritesWorkbookInsteadOfCharts(t *testing.T) {
	svc, dir := newService(t)
	out := filepath.Join(dir, "out")

	err := svc.Run(context.Background(), RunOptions{Export: true, OutputDir: out})
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(out, "planning.xlsx"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(out, "planning.svg"))
	assert.True(t, os.IsNotExist(err))
}

func TestRunRejectsUnknownPeriod(t *testing.T) {
	svc, dir := newService(t)

	err := svc.Run(context.Background(), RunOptions{Periods: []string{"q9"}, OutputDir: dir})

	var refErr *model.ReferenceError
	require.True(t, errors.As(err, &refErr))
	assert.Equal(t, "period", refErr.Kind)
}

func TestRunRejectsUnknownEmployee(t *testing.T) {
	svc, dir := newService(t)

	err := svc.Run(context.Background(), RunOptions{Employees: []string{"e9"}, OutputDir: dir})

	var refErr *model.ReferenceError
	require.True(t, errors.As(err, &refErr))
}

func TestRunScaleOverride(t *testing.T) {
	svc, dir := newService(t)

	err := svc.Run(context.Background(), RunOptions{Scale: "hourly", OutputDir: dir})

	var cfgErr *model.ConfigError
	require.True(t, errors.As(err, &cfgErr))
}

func TestNewRejectsUnknownProjectColor(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(testConfig), 0o644))
	bad := `projects:
  - id: "p1"
    color: "glitter"
    tasks:
      - id: "t1"
        label: "x"
        start: "2023-01-02"
        end: "2023-01-03"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "design.yaml"), []byte(bad), 0o644))

	cfg, err := config.Load(cfgPath)
	require.NoError(t, err)
	_, err = New(cfg, dir)

	var cfgErr *model.ConfigError
	require.True(t, errors.As(err, &cfgErr))
}
