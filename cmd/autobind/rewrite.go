package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/t14raptor/autobind/internal/driver"
	"github.com/t14raptor/autobind/transform/autobind"
)

func addRewriteFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP("write", "w", false, "write the result back to the files")
	cmd.Flags().BoolP("diff", "d", false, "print a unified diff of every change")
}

// runRewrite is the body of the constructor and callsite commands.
func runRewrite(cmd *cobra.Command, args []string, mode autobind.Mode) error {
	cmd.SilenceUsage = true

	write, err := cmd.Flags().GetBool("write")
	if err != nil {
		return err
	}
	showDiff, err := cmd.Flags().GetBool("diff")
	if err != nil {
		return err
	}

	s, err := loadSettings(cmd, args)
	if err != nil {
		return fmt.Errorf("%s: %w", mode, err)
	}
	opts := s.driverOptions(mode)
	opts.Write = write
	opts.Diff = showDiff

	results, sum, err := driver.Run(cmd.Context(), args, opts)
	if err != nil {
		return fmt.Errorf("%s: %w", mode, err)
	}

	p := newPrinter(s.quiet)
	p.results(results, write)
	p.summary(sum)
	if sum.HasFailures() {
		return errReported
	}
	return nil
}
