package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sas-labs/cmsgen/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Recognised configuration keys.
const (
	KeyProjectDir   = "project_dir"
	KeyPluginsDir   = "plugins_dir"
	KeyRegistryFile = "registry_file"
	KeyStubsDir     = "stubs_dir"
	KeyLogLevel     = "log_level"
)

// DefaultPluginsDir is where plugins live relative to the project directory.
const DefaultPluginsDir = "custom/plugins"

// Keys lists every key understood by Current, in display order.
var Keys = []string{KeyProjectDir, KeyPluginsDir, KeyRegistryFile, KeyStubsDir, KeyLogLevel}

// Settings is the resolved configuration for one invocation.
type Settings struct {
	ProjectDir   string // root of the shop installation
	PluginsDir   string // plugin directory, relative to ProjectDir unless absolute
	RegistryFile string // optional YAML plugin registry; empty means discovery
	StubsDir     string // optional stub directory replacing the bundled stubs
	LogLevel     string // hclog level name
}

// Dir returns the path to the config directory (~/.cmsgen/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.cmsgen/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
// An empty path selects the default file, which may be absent. An explicit
// path must exist.
func Load(path string) error {
	explicit := path != ""
	if !explicit {
		path = FilePath()
	}

	viper.SetConfigFile(path)
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	viper.SetDefault(KeyProjectDir, ".")
	viper.SetDefault(KeyPluginsDir, DefaultPluginsDir)
	viper.SetDefault(KeyLogLevel, "warn")

	if err := viper.ReadInConfig(); err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return nil
		}
		var notFound viper.ConfigFileNotFoundError
		if !explicit && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("reading config file %s: %w", path, err)
	}
	return nil
}

// Current returns the settings resolved from defaults, config file,
// environment and any bound flags.
func Current() Settings {
	return Settings{
		ProjectDir:   viper.GetString(KeyProjectDir),
		PluginsDir:   viper.GetString(KeyPluginsDir),
		RegistryFile: viper.GetString(KeyRegistryFile),
		StubsDir:     viper.GetString(KeyStubsDir),
		LogLevel:     viper.GetString(KeyLogLevel),
	}
}

// Resolve returns path unchanged when absolute and joined onto ProjectDir
// otherwise. Empty stays empty.
func (s Settings) Resolve(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(s.ProjectDir, path)
}

// PluginsPath returns the plugin directory resolved against ProjectDir.
func (s Settings) PluginsPath() string {
	return s.Resolve(s.PluginsDir)
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// IsKnownKey reports whether key is one of Keys.
func IsKnownKey(key string) bool {
	for _, k := range Keys {
		if k == key {
			return true
		}
	}
	return false
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if !IsKnownKey(key) {
		return fmt.Errorf("unknown config key %q", key)
	}
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		configFile = FilePath()
	}

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
