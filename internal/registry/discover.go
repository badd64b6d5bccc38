package registry

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/afero"
)

const (
	composerFile     = "composer.json"
	pluginClassKey   = "shopware-plugin-class"
	defaultSourceDir = "src"
)

type composerManifest struct {
	Name     string `json:"name"`
	Version  string `json:"version"`
	Autoload struct {
		PSR4 map[string]json.RawMessage `json:"psr-4"`
	} `json:"autoload"`
	Extra map[string]json.RawMessage `json:"extra"`
}

// Discover scans pluginsDir for plugin directories carrying a composer.json
// with a plugin class and returns them sorted by name. Directories that are
// not plugins are skipped.
func Discover(fsys afero.Fs, pluginsDir string, log hclog.Logger) (*Registry, error) {
	if log == nil {
		log = hclog.NewNullLogger()
	}

	dirEntries, err := afero.ReadDir(fsys, pluginsDir)
	if err != nil {
		return nil, fmt.Errorf("reading plugin directory %s: %w", pluginsDir, err)
	}

	var entries []Entry
	seen := make(map[string]bool)
	for _, de := range dirEntries {
		if !de.IsDir() {
			continue
		}
		dir := filepath.Join(pluginsDir, de.Name())

		e, ok, err := readPlugin(fsys, dir, log)
		if err != nil {
			log.Warn("skipping plugin directory", "dir", dir, "error", err)
			continue
		}
		if !ok {
			continue
		}
		if seen[e.Name] {
			log.Warn("duplicate plugin name, keeping first", "plugin", e.Name, "dir", dir)
			continue
		}
		seen[e.Name] = true
		entries = append(entries, e)
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	log.Debug("discovered plugins", "dir", pluginsDir, "count", len(entries))
	return New(entries), nil
}

// readPlugin builds an entry from dir/composer.json. ok is false when the
// directory is not a plugin.
func readPlugin(fsys afero.Fs, dir string, log hclog.Logger) (Entry, bool, error) {
	data, err := afero.ReadFile(fsys, filepath.Join(dir, composerFile))
	if err != nil {
		log.Debug("no composer.json", "dir", dir)
		return Entry{}, false, nil
	}

	var m composerManifest
	if err := json.Unmarshal(data, &m); err != nil {
		return Entry{}, false, fmt.Errorf("parsing %s: %w", composerFile, err)
	}

	var class string
	if raw, ok := m.Extra[pluginClassKey]; ok {
		if err := json.Unmarshal(raw, &class); err != nil {
			return Entry{}, false, fmt.Errorf("extra.%s must be a string: %w", pluginClassKey, err)
		}
	}
	if class == "" {
		log.Debug("composer.json has no plugin class", "dir", dir, "package", m.Name)
		return Entry{}, false, nil
	}

	e := Entry{
		Name:      className(class),
		BaseClass: class,
		Path:      filepath.Join(dir, classFile(m.Autoload.PSR4, class)),
	}

	if m.Version != "" {
		v, err := semver.NewVersion(m.Version)
		if err != nil {
			log.Debug("ignoring unparsable version", "plugin", e.Name, "version", m.Version)
		} else {
			e.Version = v
		}
	}

	return e, true, nil
}

// className returns the unqualified name of a namespaced class.
func className(class string) string {
	class = strings.TrimRight(class, `\`)
	if i := strings.LastIndex(class, `\`); i >= 0 {
		return class[i+1:]
	}
	return class
}

// classFile maps class to its source file, relative to the plugin
// directory, through the psr-4 entry with the longest matching namespace
// prefix. Without a match the class is assumed to live in src/.
func classFile(psr4 map[string]json.RawMessage, class string) string {
	best, bestPrefix := "", ""
	bestLen := -1
	for prefix, raw := range psr4 {
		if !strings.HasPrefix(class, prefix) || len(prefix) <= bestLen {
			continue
		}
		if dir := firstPath(raw); dir != "" {
			best, bestPrefix, bestLen = dir, prefix, len(prefix)
		}
	}

	rel := strings.TrimPrefix(class, bestPrefix)
	if best == "" {
		best, rel = defaultSourceDir, className(class)
	}
	rel = strings.ReplaceAll(strings.Trim(rel, `\`), `\`, "/")
	return filepath.Join(filepath.Clean(best), filepath.FromSlash(rel)+".php")
}

// firstPath decodes a psr-4 value, which is a string or a list of strings.
func firstPath(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil && len(list) > 0 {
		return list[0]
	}
	return ""
}
