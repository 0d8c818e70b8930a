// Package driver runs a rewrite over many files in parallel.
package driver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/t14raptor/autobind/internal/cache"
	"github.com/t14raptor/autobind/internal/config"
	"github.com/t14raptor/autobind/internal/diffutil"
	"github.com/t14raptor/autobind/internal/verify"
	"github.com/t14raptor/autobind/parser"
	"github.com/t14raptor/autobind/transform/autobind"
)

// cacheSalt changes whenever the rewrite output for a given input may
// change.
const cacheSalt = "autobind/2"

var ErrVerify = errors.New("rewritten code failed verification")

// Options configure a run.
type Options struct {
	Mode   autobind.Mode
	Config config.Config
	// Root is the directory exclude patterns are relative to.
	Root string
	// Write replaces changed files on disk.
	Write bool
	// Diff fills FileResult.Diff for changed files.
	Diff bool
	// Verify re-parses rewritten code with tree-sitter.
	Verify bool
	// Cache may be nil.
	Cache  *cache.Cache
	Logger *slog.Logger
}

// FileResult is the outcome for one file.
type FileResult struct {
	Path    string
	Changed bool
	Written bool
	Cached  bool
	// Err is set when the file could not be read, parsed, verified or
	// written. Source holds the input in that case so callers can point
	// into it.
	Err    error
	Source string
	// Code is the rewritten text.
	Code      string
	Diff      string
	Added     int
	Removed   int
	Converted []string
	// Report is nil for cache hits.
	Report     *autobind.Report
	Rejections int
	Warnings   int
}

// Summary aggregates a run.
type Summary struct {
	RunID      string
	Files      int
	Changed    int
	Written    int
	Cached     int
	Failed     int
	Converted  int
	Rejections int
	Warnings   int
	Elapsed    time.Duration
}

// HasFailures reports whether any file failed.
func (s *Summary) HasFailures() bool { return s.Failed > 0 }

// Run collects the files under paths and rewrites them with up to
// Config.Jobs workers. Per-file failures are reported in the results; the
// returned error is only set when the run itself could not proceed.
func Run(ctx context.Context, paths []string, opts Options) ([]FileResult, *Summary, error) {
	start := time.Now()
	if opts.Mode != autobind.ModeConstructor && opts.Mode != autobind.ModeCallSite {
		return nil, nil, fmt.Errorf("%w %v", autobind.ErrUnknownMode, opts.Mode)
	}
	if opts.Root == "" {
		opts.Root = "."
	}
	root, err := filepath.Abs(opts.Root)
	if err != nil {
		return nil, nil, err
	}
	opts.Root = root

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	runID := uuid.New().String()
	logger = logger.With("run_id", runID, "mode", opts.Mode.String())

	files, err := CollectFiles(ctx, paths, &opts.Config, opts.Root)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("collected files", "count", len(files), "root", opts.Root)

	results, err := ProcessFiles(ctx, files, opts, logger)
	if err != nil {
		return nil, nil, err
	}

	sum := Summarize(results)
	sum.RunID = runID
	sum.Elapsed = time.Since(start)
	logger.Info("run finished",
		"files", sum.Files,
		"changed", sum.Changed,
		"cached", sum.Cached,
		"failed", sum.Failed,
		"elapsed", sum.Elapsed,
	)
	return results, sum, nil
}

// ProcessFiles rewrites files in parallel. Results keep the order of files.
func ProcessFiles(ctx context.Context, files []string, opts Options, logger *slog.Logger) ([]FileResult, error) {
	results := make([]FileResult, len(files))
	if len(files) == 0 {
		return results, nil
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	jobs := opts.Config.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = processFile(gctx, path, opts, logger)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Summarize counts results.
func Summarize(results []FileResult) *Summary {
	sum := &Summary{Files: len(results)}
	for i := range results {
		r := &results[i]
		if r.Err != nil {
			sum.Failed++
			continue
		}
		if r.Changed {
			sum.Changed++
		}
		if r.Written {
			sum.Written++
		}
		if r.Cached {
			sum.Cached++
		}
		sum.Converted += len(r.Converted)
		sum.Rejections += r.Rejections
		sum.Warnings += r.Warnings
	}
	return sum
}

func processFile(ctx context.Context, path string, opts Options, logger *slog.Logger) FileResult {
	res := FileResult{Path: path}
	log := logger.With("file", path)

	data, err := os.ReadFile(path)
	if err != nil {
		res.Err = fmt.Errorf("failed to read %q: %w", path, err)
		return res
	}
	src := string(data)

	key := cache.Key(data, cacheSalt, opts.Mode.String(), opts.Config.Indent, strconv.FormatBool(opts.Config.Reprint))
	entry, hit, err := opts.Cache.Get(key)
	if err != nil {
		log.Warn("ignoring unreadable cache entry", "key", key.String(), "err", err)
		hit = false
	}

	if hit {
		res.Cached = true
		res.Code = entry.Code
		res.Changed = entry.Changed
		res.Converted = entry.Converted
		res.Rejections = entry.Rejections
		res.Warnings = entry.Warnings
		log.Debug("cache hit", "changed", entry.Changed)
	} else {
		out, err := autobind.Transform(src, opts.Mode, autobind.Options{
			Indent:  opts.Config.Indent,
			Reprint: opts.Config.Reprint,
		})
		if err != nil {
			res.Err = fmt.Errorf("%s: %w", path, err)
			res.Source = src
			return res
		}
		res.Code = out.Code
		res.Changed = out.Changed
		res.Report = out.Report
		res.Converted = out.Report.ConvertedNames()
		res.Rejections = len(out.Report.Rejections)
		res.Warnings = len(out.Report.Warnings)
		logReport(log, src, out.Report)
	}

	if res.Changed && opts.Verify {
		if err := verify.Check(ctx, []byte(res.Code)); err != nil {
			res.Err = fmt.Errorf("%s: %w: %w", path, ErrVerify, err)
			res.Source = res.Code
			return res
		}
	}

	if !hit {
		if err := opts.Cache.Put(key, &cache.Entry{
			Code:       res.Code,
			Changed:    res.Changed,
			Converted:  res.Converted,
			Rejections: res.Rejections,
			Warnings:   res.Warnings,
		}); err != nil {
			log.Warn("failed to write cache entry", "err", err)
		}
	}

	if !res.Changed {
		return res
	}
	res.Added, res.Removed = diffutil.Stat(src, res.Code)

	if opts.Diff {
		name := path
		if rel, err := filepath.Rel(opts.Root, absPath(path)); err == nil {
			name = filepath.ToSlash(rel)
		}
		d, err := diffutil.Unified(name, src, res.Code)
		if err != nil {
			res.Err = fmt.Errorf("%s: failed to build diff: %w", path, err)
			return res
		}
		res.Diff = d
	}

	if opts.Write {
		if err := writeFile(path, res.Code); err != nil {
			res.Err = fmt.Errorf("failed to write %q: %w", path, err)
			return res
		}
		res.Written = true
		log.Debug("file written", "added", res.Added, "removed", res.Removed)
	}
	return res
}

// writeFile replaces path keeping its permission bits.
func writeFile(path, content string) error {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	return os.WriteFile(path, []byte(content), mode)
}

func logReport(log *slog.Logger, src string, r *autobind.Report) {
	for _, rej := range r.Rejections {
		line, col := parser.Position(src, rej.Pos)
		log.Debug("bind left in place",
			"class", rej.Class,
			"name", rej.Name,
			"reason", string(rej.Reason),
			"line", line,
			"column", col,
		)
	}
	for _, w := range r.Warnings {
		line, col := parser.Position(src, w.Pos)
		log.Warn(w.Message,
			"class", w.Class,
			"name", w.Name,
			"line", line,
			"column", col,
		)
	}
	if len(r.Converted) > 0 {
		log.Debug("methods converted",
			"count", len(r.Converted),
			"removed_binds", r.RemovedBinds,
			"stripped_calls", r.StrippedCalls,
		)
	}
}

func absPath(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}
