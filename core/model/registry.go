package model

// Registry owns all employees of a run. Entries keep their insertion order;
// tasks reference employees by id and never duplicate them.
type Registry struct {
	byID map[string]*Employee
	ids  []string
}

// NewRegistry returns an empty employee registry.
func NewRegistry() *Registry {
	return &Registry{byID: make(map[string]*Employee)}
}

// Add inserts an employee. Duplicate ids are a configuration error.
func (r *Registry) Add(e Employee) error {
	if _, ok := r.byID[e.ID]; ok {
		return &ConfigError{Field: "employees", Reason: "duplicate employee id " + e.ID}
	}
	cp := e
	r.byID[e.ID] = &cp
	r.ids = append(r.ids, e.ID)
	return nil
}

// Get looks an employee up by id.
func (r *Registry) Get(id string) (*Employee, bool) {
	e, ok := r.byID[id]
	return e, ok
}

// IDs returns the employee ids in insertion order.
func (r *Registry) IDs() []string {
	out := make([]string, len(r.ids))
	copy(out, r.ids)
	return out
}

// Len returns the number of registered employees.
func (r *Registry) Len() int { return len(r.ids) }
