package registry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	reg := New([]Entry{
		{Name: "ExamplePlugin", Path: "/plugins/ExamplePlugin/src"},
		{Name: "OtherPlugin", Path: "/plugins/OtherPlugin/src"},
	})

	tests := []struct {
		name        string
		query       string
		wantPath    string
		description string
	}{
		{"exact match", "ExamplePlugin", "/plugins/ExamplePlugin/src", "exact name resolves"},
		{"second entry", "OtherPlugin", "/plugins/OtherPlugin/src", "later entries are scanned"},
		{"wrong case", "exampleplugin", "", "matching is case sensitive"},
		{"prefix only", "Example", "", "no partial matches"},
		{"empty", "", "", "empty name never matches"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := reg.Lookup(tt.query)
			if tt.wantPath == "" {
				require.Error(t, err, tt.description)
				var nf *NotFoundError
				require.True(t, errors.As(err, &nf), "error should be a NotFoundError")
				assert.Equal(t, tt.query, nf.Name)
				return
			}
			require.NoError(t, err, tt.description)
			assert.Equal(t, tt.wantPath, e.Path)
		})
	}
}

func TestLookupFirstMatchWins(t *testing.T) {
	reg := New([]Entry{
		{Name: "Dup", Path: "/a/src"},
		{Name: "Dup", Path: "/b/src"},
	})
	root, err := reg.Root("Dup")
	require.NoError(t, err)
	assert.Equal(t, "/a", root)
}

func TestRootIsParentOfSourceDir(t *testing.T) {
	reg := New([]Entry{{Name: "ExamplePlugin", Path: "/plugins/ExamplePlugin/src/"}})
	root, err := reg.Root("ExamplePlugin")
	require.NoError(t, err)
	assert.Equal(t, "/plugins/ExamplePlugin", root)
}

func TestNotFoundErrorMessage(t *testing.T) {
	err := &NotFoundError{Name: "Missing"}
	assert.Equal(t, `cannot find plugin by name "Missing"`, err.Error())
}

func TestNewCopiesEntries(t *testing.T) {
	entries := []Entry{{Name: "A", Path: "/a/src"}}
	reg := New(entries)
	entries[0].Name = "B"

	_, err := reg.Lookup("A")
	assert.NoError(t, err, "registry must not alias the caller's slice")
	assert.Equal(t, 1, reg.Len())
}

func TestVersionString(t *testing.T) {
	assert.Equal(t, "-", Entry{}.VersionString())
}
