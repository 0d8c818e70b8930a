package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/t14raptor/autobind/internal/driver"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <file|directory>...",
	Short: "Report files that still bind methods by hand",
	Long: `List the files a rewrite would change without touching them. The
command fails when any file would change or cannot be parsed.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().String("mode", "", "bind idiom to look for (constructor|callsite; default from config, else constructor)")
	checkCmd.Flags().BoolP("diff", "d", false, "print a unified diff of every pending change")
}

func runCheck(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	showDiff, err := cmd.Flags().GetBool("diff")
	if err != nil {
		return err
	}
	s, err := loadSettings(cmd, args)
	if err != nil {
		return fmt.Errorf("check: %w", err)
	}
	mode, err := s.mode(cmd)
	if err != nil {
		return fmt.Errorf("check: %w", err)
	}

	opts := s.driverOptions(mode)
	opts.Diff = showDiff
	results, sum, err := driver.Run(cmd.Context(), args, opts)
	if err != nil {
		return fmt.Errorf("check: %w", err)
	}

	p := newPrinter(s.quiet)
	p.results(results, false)
	p.summary(sum)
	if sum.HasFailures() || sum.Changed > 0 {
		return errReported
	}
	return nil
}
