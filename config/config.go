package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/ganttplanner/ganttplanner/infra/render/excel"
	svgrender "github.com/ganttplanner/ganttplanner/infra/render/svg"
)

// Config is the root planning configuration. Project definitions live in
// separate files referenced by ProjectFiles; everything else is inline.
type Config struct {
	General      GeneralConfig           `json:"general"`
	ProjectFiles []ProjectFileRef        `json:"project_files"`
	Periods      map[string]PeriodConfig `json:"periods"`
	Vacations    []VacationConfig        `json:"vacations"`
	Employees    []EmployeeConfig        `json:"employees"`
	CustomColors map[string]string       `json:"custom_colors"`
	Variables    map[string]string       `json:"variables"`
	Chart        svgrender.Options       `json:"chart"`
	Excel        []excel.ReportConfig    `json:"excel"`
}

// ProjectFileRef names one project definition file. Files are loaded in
// declaration order; relative paths resolve against the config file.
type ProjectFileRef struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

func Load(path string) (*Config, error) {
	k := koanf.New(".")
	parser, err := parserFor(path)
	if err != nil {
		return nil, err
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	// Optional environment overrides
	if err := k.Load(env.Provider("GP_", ".", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "gp_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.General.SetDefaults()
	if err := cfg.General.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.validateRefs(); err != nil {
		return nil, err
	}
	for i := range cfg.Excel {
		cfg.Excel[i].SetDefaults()
		if err := cfg.Excel[i].Validate(); err != nil {
			return nil, err
		}
	}
	return &cfg, nil
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	case ".json":
		return json.Parser(), nil
	default:
		return nil, fmt.Errorf("unsupported config format: %s", filepath.Ext(path))
	}
}

func (c *Config) validateRefs() error {
	seen := map[string]struct{}{}
	for _, ref := range c.ProjectFiles {
		if ref.Name == "" || ref.Path == "" {
			return fmt.Errorf("project_files entries need a name and a path")
		}
		if _, dup := seen[ref.Name]; dup {
			return fmt.Errorf("duplicate project file name %q", ref.Name)
		}
		seen[ref.Name] = struct{}{}
	}
	return nil
}
