package export

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ganttplanner/ganttplanner/core/model"
)

func testProjects() []model.Project {
	return []model.Project{{
		ID: "p1", Title: "Design",
		Tasks: []model.Task{
			{
				ID:        "t1",
				Label:     "interviews",
				Start:     time.Date(2023, 1, 9, 0, 0, 0, 0, time.UTC),
				End:       time.Date(2023, 1, 27, 0, 0, 0, 0, time.UTC),
				Employees: []string{"e1", "e2"},
				Attrs:     map[string]model.AttrValue{"hours": model.NumberAttr(24)},
			},
			{
				ID:        "m1",
				Label:     "kickoff",
				Start:     time.Date(2023, 1, 9, 0, 0, 0, 0, time.UTC),
				End:       time.Date(2023, 1, 9, 0, 0, 0, 0, time.UTC),
				Milestone: true,
			},
		},
	}}
}

func TestFlatten(t *testing.T) {
	entries := Flatten(testProjects())

	require.Len(t, entries, 2)
	assert.Equal(t, "Design", entries[0].Project)
	assert.Equal(t, "2023-01-09", entries[0].Start)
	assert.Equal(t, 24.0, entries[0].Hours)
	assert.True(t, entries[1].Milestone)
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, Flatten(testProjects())))

	var decoded []Entry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "interviews", decoded[0].Label)
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, Flatten(testProjects())))

	out := buf.String()
	assert.Contains(t, out, "project,task,label,start,end,employees,hours")
	assert.Contains(t, out, "Design,t1,interviews,2023-01-09,2023-01-27,e1;e2,24")
}
