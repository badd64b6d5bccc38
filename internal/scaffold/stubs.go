package scaffold

import (
	"embed"
	"io/fs"
)

//go:embed stubs
var embeddedStubs embed.FS

// Stub locations inside a stub file system.
const (
	ElementStubDir = "element"
	StorefrontStub = "element/element.storefront.stub"
)

// DefaultStubs returns the stub set bundled with the binary.
func DefaultStubs() fs.FS {
	sub, err := fs.Sub(embeddedStubs, "stubs")
	if err != nil {
		// The embed pattern above guarantees the directory exists.
		panic(err)
	}
	return sub
}

// ListStubs returns the paths of every stub file under element/, in
// lexical order.
func ListStubs(stubs fs.FS) ([]string, error) {
	var paths []string
	err := fs.WalkDir(stubs, ElementStubDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paths, nil
}
