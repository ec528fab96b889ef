// Package template implements the strict {{ variable }} substitution used
// for labels of tasks, projects and summary rows.
package template

import (
	"regexp"

	"github.com/ganttplanner/ganttplanner/core/model"
)

var placeholderRe = regexp.MustCompile(`\{\{\s*([A-Za-z_][A-Za-z0-9_]*)\s*\}\}`)

// Substitute replaces every {{ name }} placeholder in s with the bound
// value. An unbound placeholder is a TemplateError, never a silent
// pass-through of the literal placeholder.
func Substitute(s string, vars map[string]string) (string, error) {
	for _, m := range placeholderRe.FindAllStringSubmatch(s, -1) {
		if _, ok := vars[m[1]]; !ok {
			return "", &model.TemplateError{Variable: m[1], Template: s}
		}
	}
	return placeholderRe.ReplaceAllStringFunc(s, func(p string) string {
		name := placeholderRe.FindStringSubmatch(p)[1]
		return vars[name]
	}), nil
}
