package registry

import (
	"fmt"
	"path/filepath"

	"github.com/Masterminds/semver/v3"
	"github.com/spf13/afero"
	"go.yaml.in/yaml/v3"
)

type fileDoc struct {
	Plugins []filePlugin `yaml:"plugins"`
}

type filePlugin struct {
	Name      string `yaml:"name"`
	BaseClass string `yaml:"baseClass"`
	Path      string `yaml:"path"`
	Version   string `yaml:"version"`
}

// LoadFile reads a YAML registry file, validates it and returns the
// registry it describes. Relative plugin paths resolve against baseDir.
func LoadFile(fsys afero.Fs, path, baseDir string) (*Registry, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("reading plugin registry %s: %w", path, err)
	}
	return Parse(data, path, baseDir)
}

// Parse decodes registry YAML. name is used in error messages only.
func Parse(data []byte, name, baseDir string) (*Registry, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing plugin registry %s: %w", name, err)
	}

	issues, err := validate(raw)
	if err != nil {
		return nil, err
	}
	if len(issues) > 0 {
		return nil, &InvalidFileError{File: name, Issues: issues}
	}

	var doc fileDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding plugin registry %s: %w", name, err)
	}

	entries := make([]Entry, 0, len(doc.Plugins))
	for i, p := range doc.Plugins {
		e := Entry{
			Name:      p.Name,
			BaseClass: p.BaseClass,
			Path:      p.Path,
		}
		if !filepath.IsAbs(e.Path) {
			e.Path = filepath.Join(baseDir, e.Path)
		}
		if p.Version != "" {
			v, err := semver.NewVersion(p.Version)
			if err != nil {
				return nil, &InvalidFileError{File: name, Issues: []Issue{{
					Path:    fmt.Sprintf("/plugins/%d/version", i),
					Message: fmt.Sprintf("%q is not a semantic version", p.Version),
				}}}
			}
			e.Version = v
		}
		entries = append(entries, e)
	}

	return New(entries), nil
}
