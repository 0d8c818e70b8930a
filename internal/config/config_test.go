package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestDiscoverWalksUp(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".autobind.toml"), "mode = \"callsite\"\njobs = 3\nexclude = [\"vendor\"]\n")
	nested := filepath.Join(root, "src", "components")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	f, err := Discover(nested)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(root, ".autobind.toml"), f.Path)
	assert.Equal(t, root, f.Root)
	assert.Equal(t, "callsite", f.Config.Mode)
	assert.Equal(t, 3, f.Config.Jobs)
	assert.Equal(t, []string{"vendor"}, f.Config.Exclude)
	// Keys the file leaves out keep their defaults.
	assert.Equal(t, Default().Extensions, f.Config.Extensions)
	assert.True(t, f.Config.Cache)
}

func TestDiscoverFromFile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".autobind.yaml"), "verify: true\n")
	file := filepath.Join(root, "a.js")
	writeFile(t, file, "class A {}\n")

	f, err := Discover(file)
	require.NoError(t, err)
	assert.True(t, f.Config.Verify)
}

func TestDiscoverWithoutFile(t *testing.T) {
	dir := t.TempDir()

	f, err := Discover(dir)
	require.NoError(t, err)
	assert.Empty(t, f.Path)
	assert.Equal(t, Default(), f.Config)
}

func TestTOMLPreferredOverYAML(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".autobind.toml"), "jobs = 1\n")
	writeFile(t, filepath.Join(root, ".autobind.yaml"), "jobs: 2\n")

	path, ok, err := Find(root)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, ".autobind.toml", filepath.Base(path))
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".autobind.yml")
	writeFile(t, path, `
mode: constructor
extensions: [".js", ".jsx"]
indent: "\t"
reprint: true
cache: false
cache_dir: /tmp/autobind
`)

	f, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Config{
		Mode:       "constructor",
		Extensions: []string{".js", ".jsx"},
		Exclude:    Default().Exclude,
		Indent:     "\t",
		Reprint:    true,
		CacheDir:   "/tmp/autobind",
	}, f.Config)
}

func TestLoadEmptyYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".autobind.yaml")
	writeFile(t, path, "")

	f, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), f.Config)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"unknown toml key", ".autobind.toml", "colour = true\n"},
		{"unknown yaml key", ".autobind.yaml", "colour: true\n"},
		{"bad toml", ".autobind.toml", "mode = \n"},
		{"bad mode", ".autobind.toml", "mode = \"lexical\"\n"},
		{"negative jobs", ".autobind.yaml", "jobs: -1\n"},
		{"bad indent", ".autobind.toml", "indent = \"x\"\n"},
		{"bad extension", ".autobind.toml", "extensions = [\"js\"]\n"},
		{"empty extensions", ".autobind.toml", "extensions = []\n"},
		{"bad pattern", ".autobind.yaml", "exclude: [\"[\"]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			writeFile(t, path, tt.content)

			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestExcluded(t *testing.T) {
	c := Config{Exclude: []string{"node_modules", "*.min.js", "legacy/*"}}

	assert.True(t, c.Excluded("node_modules/react/index.js"))
	assert.True(t, c.Excluded("src/node_modules/x.js"))
	assert.True(t, c.Excluded("dist/app.min.js"))
	assert.True(t, c.Excluded("legacy/a.js"))
	assert.False(t, c.Excluded("src/legacy.js"))
	assert.False(t, c.Excluded("src/app.js"))
}

func TestHasExtension(t *testing.T) {
	c := Default()

	assert.True(t, c.HasExtension("a.js"))
	assert.True(t, c.HasExtension("b.JSX"))
	assert.False(t, c.HasExtension("c.ts"))
	assert.False(t, c.HasExtension("Makefile"))
}
