// Package watch re-runs a callback when source files change.
package watch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/t14raptor/autobind/internal/config"
)

// DefaultDebounce is how long the watcher waits for a burst of events to
// settle.
const DefaultDebounce = 200 * time.Millisecond

// Options configure a Watcher.
type Options struct {
	Config *config.Config
	// Root is the directory exclude patterns are relative to.
	Root     string
	Debounce time.Duration
	Logger   *slog.Logger
}

// Handler receives the files changed since the previous call, sorted.
type Handler func(ctx context.Context, files []string)

// Watcher watches directory trees for changes to matching files.
type Watcher struct {
	fs       *fsnotify.Watcher
	cfg      *config.Config
	root     string
	debounce time.Duration
	logger   *slog.Logger
	// files holds single files watched through their parent directory.
	files map[string]struct{}
	// dirs holds directories watched as trees.
	dirs map[string]struct{}
}

// New starts watching paths. Directories are watched recursively, skipping
// excluded ones.
func New(paths []string, opts Options) (*Watcher, error) {
	if opts.Config == nil {
		cfg := config.Default()
		opts.Config = &cfg
	}
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	root, err := filepath.Abs(opts.Root)
	if err != nil {
		return nil, err
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	w := &Watcher{
		fs:       fw,
		cfg:      opts.Config,
		root:     root,
		debounce: opts.Debounce,
		logger:   opts.Logger,
		files:    make(map[string]struct{}),
		dirs:     make(map[string]struct{}),
	}
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			fw.Close()
			return nil, err
		}
		info, err := os.Stat(abs)
		if err != nil {
			fw.Close()
			return nil, err
		}
		if !info.IsDir() {
			w.files[abs] = struct{}{}
			if err := fw.Add(filepath.Dir(abs)); err != nil {
				fw.Close()
				return nil, fmt.Errorf("failed to watch %q: %w", abs, err)
			}
			continue
		}
		if err := w.addTree(abs); err != nil {
			fw.Close()
			return nil, err
		}
	}
	return w, nil
}

// WatchList returns the directories currently watched.
func (w *Watcher) WatchList() []string {
	list := w.fs.WatchList()
	sort.Strings(list)
	return list
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.fs.Close()
}

// Run delivers batches of changed files to fn until ctx is done. fn is
// never called concurrently with itself.
func (w *Watcher) Run(ctx context.Context, fn Handler) error {
	pending := make(map[string]struct{})
	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()

		case ev, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if path, ok := w.handle(ev); ok {
				pending[path] = struct{}{}
				timer.Reset(w.debounce)
				fire = timer.C
			}

		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			if errors.Is(err, fsnotify.ErrEventOverflow) {
				w.logger.Warn("watch events dropped", "err", err)
				continue
			}
			return fmt.Errorf("watch: %w", err)

		case <-fire:
			fire = nil
			batch := make([]string, 0, len(pending))
			for p := range pending {
				if _, err := os.Stat(p); err == nil {
					batch = append(batch, p)
				}
			}
			clear(pending)
			if len(batch) == 0 {
				continue
			}
			sort.Strings(batch)
			w.logger.Debug("files changed", "count", len(batch))
			fn(ctx, batch)
		}
	}
}

// handle updates the watch list for ev and reports the file it concerns,
// if that file should trigger a run.
func (w *Watcher) handle(ev fsnotify.Event) (string, bool) {
	if ev.Has(fsnotify.Chmod) && !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
		return "", false
	}
	path := filepath.Clean(ev.Name)

	if _, ok := w.files[path]; ok {
		return path, ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)
	}
	if !w.inTree(path) || w.excluded(path) {
		return "", false
	}
	if ev.Has(fsnotify.Create) {
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			if err := w.addTree(path); err != nil {
				w.logger.Warn("failed to watch new directory", "dir", path, "err", err)
			}
			return "", false
		}
	}
	if ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename) {
		return "", false
	}
	if !w.cfg.HasExtension(path) {
		return "", false
	}
	return path, true
}

func (w *Watcher) inTree(path string) bool {
	for dir := filepath.Dir(path); ; dir = filepath.Dir(dir) {
		if _, ok := w.dirs[dir]; ok {
			return true
		}
		if parent := filepath.Dir(dir); parent == dir {
			return false
		}
	}
}

func (w *Watcher) excluded(path string) bool {
	rel, err := filepath.Rel(w.root, path)
	if err != nil {
		rel = path
	}
	return w.cfg.Excluded(rel)
}

func (w *Watcher) addTree(top string) error {
	return filepath.WalkDir(top, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != top && w.excluded(path) {
			return filepath.SkipDir
		}
		if err := w.fs.Add(path); err != nil {
			return fmt.Errorf("failed to watch %q: %w", path, err)
		}
		w.dirs[path] = struct{}{}
		return nil
	})
}
