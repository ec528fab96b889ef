package builder

// RawProject is a project entry as declared in a project settings file.
// Field names match the configuration keys; the builder turns these into
// validated model.Project values.
type RawProject struct {
	ID     string    `json:"id"`
	Title  string    `json:"title"`
	Leader string    `json:"leader"`
	Color  string    `json:"color"`
	Tasks  []RawTask `json:"tasks"`
}

// RawTask is a task or milestone entry as declared in configuration. Date
// fields accept a literal date, "today", "planning_start" or
// "planning_end". End and Duration are alternatives; milestones need
// neither.
type RawTask struct {
	ID        string   `json:"id"`
	Label     string   `json:"label"`
	Type      string   `json:"type"`
	Start     string   `json:"start"`
	End       string   `json:"end"`
	Duration  int      `json:"duration"`
	Employees []string `json:"employees"`
	// Hours books hours per employee; keys must appear in Employees.
	Hours    map[string]float64 `json:"hours"`
	Color    string             `json:"color"`
	Deadline string             `json:"deadline"`
	Detail   bool               `json:"detail"`
	// Attributes carries free-form columns for the spreadsheet export.
	Attributes map[string]string `json:"attributes"`
}
