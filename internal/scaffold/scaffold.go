package scaffold

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/afero"
)

// Directories, relative to the plugin root, that receive generated files.
const (
	AdminElementsDir   = "Resources/app/administration/src/module/sw-cms/elements"
	StorefrontElements = "Resources/views/storefront/element"
)

const (
	dirMode  = 0755
	fileMode = 0644
)

// Resolver maps a plugin name to the plugin's root directory.
type Resolver interface {
	Root(pluginName string) (string, error)
}

// Result holds the outcome of a scaffold generation.
type Result struct {
	Element    string
	PluginRoot string
	Files      []string // every path written, in write order
}

// Scaffolder writes element boilerplate into plugins.
type Scaffolder struct {
	fs      afero.Fs
	stubs   fs.FS
	plugins Resolver
	log     hclog.Logger
}

// Option configures a Scaffolder.
type Option func(*Scaffolder)

// WithLogger sets the logger used for per-file debug output.
func WithLogger(l hclog.Logger) Option {
	return func(s *Scaffolder) {
		if l != nil {
			s.log = l
		}
	}
}

// New returns a Scaffolder writing to target, reading stubs from stubs and
// resolving plugin roots through plugins.
func New(target afero.Fs, stubs fs.FS, plugins Resolver, opts ...Option) *Scaffolder {
	s := &Scaffolder{
		fs:      target,
		stubs:   stubs,
		plugins: plugins,
		log:     hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generate scaffolds elementName into the plugin named pluginName. The
// first error aborts the run; files already written stay on disk.
func (s *Scaffolder) Generate(elementName, pluginName string) (*Result, error) {
	root, err := s.plugins.Root(pluginName)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Element:    elementName,
		PluginRoot: root,
	}
	names := NewNames(elementName)
	s.log.Debug("scaffolding element", "element", names.Name, "block", names.Block, "label", names.Label, "root", root)

	if err := s.buildAdministration(root, names, result); err != nil {
		return result, err
	}
	if err := s.buildStorefront(root, names, result); err != nil {
		return result, err
	}

	return result, nil
}

// buildAdministration writes the sw-cms element tree from the element stubs.
func (s *Scaffolder) buildAdministration(root string, names Names, result *Result) error {
	elementDir := filepath.Join(root, filepath.FromSlash(AdminElementsDir), names.Name)
	if err := s.mkdir(elementDir); err != nil {
		return err
	}

	stubs, err := ListStubs(s.stubs)
	if err != nil {
		return fmt.Errorf("listing stubs: %w", err)
	}

	for _, stubPath := range stubs {
		raw, err := fs.ReadFile(s.stubs, stubPath)
		if err != nil {
			return fmt.Errorf("reading stub %s: %w", stubPath, err)
		}
		content := []byte(Apply(string(raw), names))
		filename := path.Base(stubPath)

		if isBaseStub(filename) {
			s.log.Debug("routing stub", "stub", filename, "as", "base")
			if err := s.write(filepath.Join(elementDir, "index.js"), content, result); err != nil {
				return err
			}
		}

		variant := variantOf(filename)
		if variant == "" {
			continue
		}
		s.log.Debug("routing stub", "stub", filename, "as", variant)

		variantDir := filepath.Join(elementDir, variant)
		if err := s.mkdir(variantDir); err != nil {
			return err
		}
		for _, name := range variantFiles(filename, variant, names.Name) {
			if err := s.write(filepath.Join(variantDir, name), content, result); err != nil {
				return err
			}
		}
	}

	return nil
}

// buildStorefront writes the storefront template for the element.
func (s *Scaffolder) buildStorefront(root string, names Names, result *Result) error {
	raw, err := fs.ReadFile(s.stubs, StorefrontStub)
	if err != nil {
		return fmt.Errorf("reading stub %s: %w", StorefrontStub, err)
	}
	content := []byte(applyStorefront(string(raw), names))

	dir := filepath.Join(root, filepath.FromSlash(StorefrontElements))
	if err := s.mkdir(dir); err != nil {
		return err
	}
	return s.write(filepath.Join(dir, "cms-element-"+names.Name+".html.twig"), content, result)
}

func (s *Scaffolder) mkdir(dir string) error {
	if err := s.fs.MkdirAll(dir, dirMode); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}
	return nil
}

func (s *Scaffolder) write(file string, content []byte, result *Result) error {
	if err := afero.WriteFile(s.fs, file, content, fileMode); err != nil {
		return fmt.Errorf("writing %s: %w", file, err)
	}
	s.log.Debug("wrote file", "path", file, "bytes", len(content))
	result.Files = append(result.Files, file)
	return nil
}
