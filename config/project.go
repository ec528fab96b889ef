package config

import (
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/ganttplanner/ganttplanner/core/builder"
)

// ProjectFile is one project definition file. Projects and tasks are lists
// so their declaration order survives parsing.
type ProjectFile struct {
	Title    string               `json:"title"`
	Color    string               `json:"color"`
	Projects []builder.RawProject `json:"projects"`
}

// LoadProjectFile reads one project definition file. The same formats as
// the root configuration are accepted.
func LoadProjectFile(path string) (*ProjectFile, error) {
	k := koanf.New(".")
	parser, err := parserFor(path)
	if err != nil {
		return nil, err
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	var pf ProjectFile
	if err := k.UnmarshalWithConf("", &pf, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	return &pf, nil
}
