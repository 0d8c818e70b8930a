package driver

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/t14raptor/autobind/internal/config"
)

// CollectFiles expands paths into a sorted list of source files. Files named
// directly are always kept. Directories are walked recursively; there only
// files with a configured extension count, and paths matching an exclude
// pattern relative to root are skipped.
func CollectFiles(ctx context.Context, paths []string, cfg *config.Config, root string) ([]string, error) {
	var files []string
	seen := make(map[string]struct{})
	addFile := func(path string) {
		path = filepath.Clean(path)
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		files = append(files, path)
	}
	excluded := func(path string) bool {
		rel, err := filepath.Rel(root, path)
		if err != nil {
			rel = path
		}
		return cfg.Excluded(rel)
	}

	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			addFile(p)
			continue
		}
		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			abs, absErr := filepath.Abs(path)
			if absErr != nil {
				abs = path
			}
			if d.IsDir() {
				if path != p && excluded(abs) {
					return filepath.SkipDir
				}
				return nil
			}
			if cfg.HasExtension(path) && !excluded(abs) {
				addFile(path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	sort.Strings(files)
	return files, nil
}
