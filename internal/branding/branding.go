// Package branding holds the product identity compiled into the binary:
// the command name, the settings directory under $HOME and the prefix of
// its environment variables. The values come from branding.yaml, embedded
// at build time, so renaming the tool means editing that file only.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

// Identity is the decoded branding.yaml.
type Identity struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	HomeDir     string `yaml:"home_dir"`
	EnvPrefix   string `yaml:"env_prefix"`
}

var fallback = Identity{
	CLIName:     "cmsgen",
	DisplayName: "CMS Generator",
	Description: "Scaffolds CMS element boilerplate into shop plugins",
	HomeDir:     ".cmsgen",
	EnvPrefix:   "CMSGEN",
}

// Current returns the embedded identity. Fields missing from the file keep
// their fallback values.
var Current = sync.OnceValue(func() Identity {
	id, err := parse(rawBranding)
	if err != nil {
		return fallback
	}
	return id
})

func parse(data []byte) (Identity, error) {
	id := fallback
	if err := yaml.Unmarshal(data, &id); err != nil {
		return fallback, err
	}
	return id, nil
}

// CLIName returns the root command name.
func CLIName() string { return Current().CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { return Current().DisplayName }

// Description returns the one-line product description.
func Description() string { return Current().Description }

// HomeDir returns the settings directory name under $HOME.
func HomeDir() string { return Current().HomeDir }

// EnvPrefix returns the environment variable prefix.
func EnvPrefix() string { return Current().EnvPrefix }

// EnvVar returns the environment variable for a settings key, e.g.
// EnvVar("project_dir") is "CMSGEN_PROJECT_DIR".
func EnvVar(key string) string {
	return Current().EnvPrefix + "_" + strings.ToUpper(key)
}
