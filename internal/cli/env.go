package cli

import (
	"io/fs"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/sas-labs/cmsgen/internal/config"
	"github.com/sas-labs/cmsgen/internal/logging"
	"github.com/sas-labs/cmsgen/internal/registry"
	"github.com/sas-labs/cmsgen/internal/scaffold"
	"github.com/spf13/afero"
)

// targetFS is the file system plugins are read from and written to.
var targetFS afero.Fs = afero.NewOsFs()

// newLogger builds the run's logger; --verbose forces debug.
func newLogger(s config.Settings) hclog.Logger {
	level := s.LogLevel
	if verbose {
		level = "debug"
	}
	return logging.New(level, os.Stderr)
}

// openRegistry loads the plugin registry file when one is configured and
// otherwise discovers plugins in the plugin directory.
func openRegistry(s config.Settings, log hclog.Logger) (*registry.Registry, error) {
	if s.RegistryFile != "" {
		path := s.Resolve(s.RegistryFile)
		log.Debug("loading plugin registry", "file", path)
		return registry.LoadFile(targetFS, path, s.ProjectDir)
	}
	log.Debug("discovering plugins", "dir", s.PluginsPath())
	return registry.Discover(targetFS, s.PluginsPath(), log)
}

// stubSet returns the configured stub directory, resolved against the
// project directory, or the bundled stubs.
func stubSet(s config.Settings) fs.FS {
	if s.StubsDir == "" {
		return scaffold.DefaultStubs()
	}
	return afero.NewIOFS(afero.NewBasePathFs(targetFS, s.Resolve(s.StubsDir)))
}
