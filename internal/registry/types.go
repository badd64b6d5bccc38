package registry

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Entry is one known plugin.
type Entry struct {
	Name      string          // unique key, e.g. "ExamplePlugin"
	BaseClass string          // e.g. `Example\ExamplePlugin`
	Path      string          // locator; its parent directory is the plugin root
	Version   *semver.Version // nil when unknown
}

// Root returns the directory generated files are written under: the parent
// of Path. Discovered plugins locate their base class file, so the root is
// the directory holding it (usually src/). Registry files list a source
// directory, whose parent is the root.
func (e Entry) Root() string {
	return filepath.Dir(filepath.Clean(e.Path))
}

// VersionString returns the version or "-" when unknown.
func (e Entry) VersionString() string {
	if e.Version == nil {
		return "-"
	}
	return e.Version.String()
}

// NotFoundError reports a plugin name with no registry entry.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("cannot find plugin by name %q", e.Name)
}

// Issue is a single problem found in a registry file.
type Issue struct {
	Path    string // instance location, e.g. "/plugins/0/name"
	Message string
}

// InvalidFileError reports a registry file that failed validation.
type InvalidFileError struct {
	File   string
	Issues []Issue
}

func (e *InvalidFileError) Error() string {
	msgs := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		if issue.Path != "" {
			msgs = append(msgs, issue.Path+": "+issue.Message)
		} else {
			msgs = append(msgs, issue.Message)
		}
	}
	return fmt.Sprintf("invalid plugin registry %s: %s", e.File, strings.Join(msgs, "; "))
}
