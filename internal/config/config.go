// Package config loads the .autobind.toml or .autobind.yaml file that
// applies to a directory.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/t14raptor/autobind/transform/autobind"
)

// FileNames are the config file names looked up, in order of preference.
var FileNames = []string{".autobind.toml", ".autobind.yaml", ".autobind.yml"}

var ErrInvalid = errors.New("invalid config")

// Config holds the settings of a run. Command line flags override it.
type Config struct {
	// Mode is "constructor" or "callsite". Empty means the command decides.
	Mode string `toml:"mode" yaml:"mode"`
	// Extensions are the file extensions collected from directories.
	Extensions []string `toml:"extensions" yaml:"extensions"`
	// Exclude holds glob patterns matched against slash-separated paths
	// relative to the config root and against each path element.
	Exclude []string `toml:"exclude" yaml:"exclude"`
	// Jobs limits the files processed at once. Zero means GOMAXPROCS.
	Jobs int `toml:"jobs" yaml:"jobs"`
	// Indent overrides the indentation detected from each file.
	Indent string `toml:"indent" yaml:"indent"`
	// Reprint prints whole files from the syntax tree.
	Reprint bool `toml:"reprint" yaml:"reprint"`
	// Verify re-parses every rewritten file before it is written.
	Verify bool `toml:"verify" yaml:"verify"`
	// Cache enables the on-disk result cache.
	Cache bool `toml:"cache" yaml:"cache"`
	// CacheDir overrides the cache location.
	CacheDir string `toml:"cache_dir" yaml:"cache_dir"`
}

// Default returns the settings used when no config file exists.
func Default() Config {
	return Config{
		Extensions: []string{".js", ".jsx", ".mjs", ".cjs"},
		Exclude:    []string{"node_modules", ".git"},
		Cache:      true,
	}
}

// File is a loaded config file.
type File struct {
	Path string
	// Root is the directory holding the file.
	Root   string
	Config Config
}

// Find walks up from startDir and returns the first config file found.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	if info, err := os.Stat(dir); err == nil && !info.IsDir() {
		dir = filepath.Dir(dir)
	}
	for {
		for _, name := range FileNames {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, true, nil
			} else if !errors.Is(err, os.ErrNotExist) {
				return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Discover finds and loads the config file that applies to startDir. When
// there is none it returns the defaults rooted at startDir.
func Discover(startDir string) (*File, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return nil, err
	}
	if !ok {
		root, err := filepath.Abs(startDir)
		if err != nil {
			return nil, err
		}
		return &File{Root: root, Config: Default()}, nil
	}
	return Load(path)
}

// Load reads the config file at path. The format follows the extension.
// Keys missing from the file keep their default values.
func Load(path string) (*File, error) {
	cfg := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := decodeTOML(path, &cfg); err != nil {
			return nil, err
		}
	case ".yaml", ".yml":
		if err := decodeYAML(path, &cfg); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%s: %w: unsupported format", path, ErrInvalid)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	return &File{Path: abs, Root: filepath.Dir(abs), Config: cfg}, nil
}

func decodeTOML(path string, cfg *Config) error {
	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if keys := meta.Undecoded(); len(keys) > 0 {
		return fmt.Errorf("%s: %w: unknown key %q", path, ErrInvalid, keys[0].String())
	}
	if meta.IsDefined("extensions") && len(cfg.Extensions) == 0 {
		return fmt.Errorf("%s: %w: extensions is empty", path, ErrInvalid)
	}
	return nil
}

func decodeYAML(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

// Validate checks values that decoding cannot.
func (c *Config) Validate() error {
	if c.Mode != "" {
		if _, err := autobind.ParseMode(c.Mode); err != nil {
			return fmt.Errorf("%w: mode: %w", ErrInvalid, err)
		}
	}
	if c.Jobs < 0 {
		return fmt.Errorf("%w: jobs must not be negative", ErrInvalid)
	}
	if strings.Trim(c.Indent, " \t") != "" {
		return fmt.Errorf("%w: indent must be spaces or tabs", ErrInvalid)
	}
	for _, ext := range c.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("%w: extension %q must start with a dot", ErrInvalid, ext)
		}
	}
	for _, pattern := range c.Exclude {
		if _, err := filepath.Match(pattern, ""); err != nil {
			return fmt.Errorf("%w: exclude pattern %q: %w", ErrInvalid, pattern, err)
		}
	}
	return nil
}

// Excluded reports whether rel, a path relative to the config root, matches
// an exclude pattern.
func (c *Config) Excluded(rel string) bool {
	rel = filepath.ToSlash(rel)
	elems := strings.Split(rel, "/")
	for _, pattern := range c.Exclude {
		if ok, _ := filepath.Match(pattern, rel); ok {
			return true
		}
		for _, elem := range elems {
			if ok, _ := filepath.Match(pattern, elem); ok {
				return true
			}
		}
	}
	return false
}

// HasExtension reports whether path ends in one of the configured
// extensions.
func (c *Config) HasExtension(path string) bool {
	ext := filepath.Ext(path)
	for _, e := range c.Extensions {
		if strings.EqualFold(e, ext) {
			return true
		}
	}
	return false
}
