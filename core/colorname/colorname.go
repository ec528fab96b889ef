// Package colorname resolves color names and hex triplets to normalized
// hex codes. The lookup table is built once per run from the standard web
// color names merged with custom names from configuration, and is read-only
// afterwards.
package colorname

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ganttplanner/ganttplanner/core/model"
)

// webColors holds the CSS3 color names understood without configuration.
var webColors = map[string]string{
	"aliceblue":      "#F0F8FF",
	"aqua":           "#00FFFF",
	"beige":          "#F5F5DC",
	"black":          "#000000",
	"blue":           "#0000FF",
	"brown":          "#A52A2A",
	"chocolate":      "#D2691E",
	"coral":          "#FF7F50",
	"cornflowerblue": "#6495ED",
	"crimson":        "#DC143C",
	"cyan":           "#00FFFF",
	"darkblue":       "#00008B",
	"darkgray":       "#A9A9A9",
	"darkgreen":      "#006400",
	"darkorange":     "#FF8C00",
	"darkred":        "#8B0000",
	"darkviolet":     "#9400D3",
	"forestgreen":    "#228B22",
	"fuchsia":        "#FF00FF",
	"gold":           "#FFD700",
	"gray":           "#808080",
	"green":          "#008000",
	"indigo":         "#4B0082",
	"ivory":          "#FFFFF0",
	"khaki":          "#F0E68C",
	"lavender":       "#E6E6FA",
	"lightblue":      "#ADD8E6",
	"lightgray":      "#D3D3D3",
	"lightgreen":     "#90EE90",
	"lightyellow":    "#FFFFE0",
	"lime":           "#00FF00",
	"magenta":        "#FF00FF",
	"maroon":         "#800000",
	"navy":           "#000080",
	"olive":          "#808000",
	"orange":         "#FFA500",
	"orchid":         "#DA70D6",
	"pink":           "#FFC0CB",
	"purple":         "#800080",
	"red":            "#FF0000",
	"royalblue":      "#4169E1",
	"salmon":         "#FA8072",
	"seagreen":       "#2E8B57",
	"silver":         "#C0C0C0",
	"skyblue":        "#87CEEB",
	"slategray":      "#708090",
	"steelblue":      "#4682B4",
	"tan":            "#D2B48C",
	"teal":           "#008080",
	"tomato":         "#FF6347",
	"violet":         "#EE82EE",
	"wheat":          "#F5DEB3",
	"white":          "#FFFFFF",
	"yellow":         "#FFFF00",
	"yellowgreen":    "#9ACD32",
}

// Table is a read-only color lookup built once per run.
type Table struct {
	byName map[string]string
}

// New builds a table from the web colors merged with custom names from
// configuration. Custom entries win on name collision. Custom values must
// be valid hex triplets.
func New(custom map[string]string) (*Table, error) {
	t := &Table{byName: make(map[string]string, len(webColors)+len(custom))}
	for name, hex := range webColors {
		t.byName[name] = hex
	}
	for name, value := range custom {
		hex, err := NormalizeHex(value)
		if err != nil {
			return nil, &model.ConfigError{
				Field:  "custom_colors." + name,
				Reason: err.Error(),
			}
		}
		t.byName[strings.ToLower(name)] = hex
	}
	return t, nil
}

// Hex resolves a color field to a "#RRGGBB" code. The input is either a
// known name or a hex triplet with or without the leading hash. The empty
// string resolves to the empty string so callers can apply their own
// default.
func (t *Table) Hex(color string) (string, error) {
	if color == "" {
		return "", nil
	}
	if hex, ok := t.byName[strings.ToLower(color)]; ok {
		return hex, nil
	}
	hex, err := NormalizeHex(color)
	if err != nil {
		return "", &model.ConfigError{
			Field:  "color",
			Reason: fmt.Sprintf("%q is neither a known color name nor a hex triplet", color),
		}
	}
	return hex, nil
}

// Names returns all known color names, sorted.
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.byName))
	for n := range t.byName {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// NormalizeHex validates a hex triplet and returns it as "#RRGGBB".
// Three-digit shorthand is expanded, so "abc" becomes "#AABBCC".
func NormalizeHex(s string) (string, error) {
	v := strings.ToUpper(strings.TrimPrefix(s, "#"))
	if len(v) == 3 {
		v = string([]byte{v[0], v[0], v[1], v[1], v[2], v[2]})
	}
	if len(v) != 6 {
		return "", fmt.Errorf("hex color %q must have 3 or 6 digits", s)
	}
	for i := 0; i < len(v); i++ {
		c := v[i]
		if (c < '0' || c > '9') && (c < 'A' || c > 'F') {
			return "", fmt.Errorf("hex color %q contains invalid digit %q", s, c)
		}
	}
	return "#" + v, nil
}
