package model

import "fmt"

// ConfigError reports malformed or contradictory configuration, such as a
// period whose start falls after its end.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("config: %s", e.Reason)
	}
	return fmt.Sprintf("config: %s: %s", e.Field, e.Reason)
}

// ReferenceError reports a reference to an id that is not present in the
// corresponding registry. In names the referencing entity so the
// configuration can be fixed.
type ReferenceError struct {
	Kind string
	Ref  string
	In   string
}

func (e *ReferenceError) Error() string {
	if e.In == "" {
		return fmt.Sprintf("unknown %s %q", e.Kind, e.Ref)
	}
	return fmt.Sprintf("unknown %s %q referenced by %s", e.Kind, e.Ref, e.In)
}

// LayoutError reports geometry that cannot be computed.
type LayoutError struct {
	TaskID string
	Reason string
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("layout: task %q: %s", e.TaskID, e.Reason)
}

// TemplateError reports a label template referencing an unbound variable.
type TemplateError struct {
	Variable string
	Template string
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("template %q: variable %q is not bound", e.Template, e.Variable)
}
