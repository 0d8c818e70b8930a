package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/t14raptor/autobind/internal/driver"
	"github.com/t14raptor/autobind/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch [flags] <file|directory>...",
	Short: "Rewrite files again whenever they change",
	Long: `Run a rewrite over the given paths, then keep watching them and
rewrite every file that changes until interrupted.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().String("mode", "", "bind idiom to rewrite (constructor|callsite; default from config, else constructor)")
	watchCmd.Flags().Duration("debounce", watch.DefaultDebounce, "wait this long for changes to settle")
	addRewriteFlags(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	write, err := cmd.Flags().GetBool("write")
	if err != nil {
		return err
	}
	showDiff, err := cmd.Flags().GetBool("diff")
	if err != nil {
		return err
	}
	debounce, err := cmd.Flags().GetDuration("debounce")
	if err != nil {
		return err
	}

	s, err := loadSettings(cmd, args)
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	mode, err := s.mode(cmd)
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	opts := s.driverOptions(mode)
	opts.Write = write
	opts.Diff = showDiff

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	p := newPrinter(s.quiet)
	results, sum, err := driver.Run(ctx, args, opts)
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	p.results(results, write)
	p.summary(sum)

	w, err := watch.New(args, watch.Options{
		Config:   &s.cfg,
		Root:     s.file.Root,
		Debounce: debounce,
		Logger:   s.logger,
	})
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer w.Close()

	s.logger.Info("watching", "paths", args, "mode", mode.String())
	err = w.Run(ctx, func(ctx context.Context, files []string) {
		start := time.Now()
		results, err := driver.ProcessFiles(ctx, files, opts, s.logger)
		if err != nil {
			if !errors.Is(err, context.Canceled) {
				s.logger.Error("rewrite failed", "err", err)
			}
			return
		}
		p.results(results, write)
		if sum := driver.Summarize(results); sum.Changed > 0 || sum.Failed > 0 {
			sum.Elapsed = time.Since(start)
			p.summary(sum)
		}
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	return nil
}
