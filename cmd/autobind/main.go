package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// version can be overridden at build time via -ldflags.
var version = "0.1.0-dev"

var rootCmd = &cobra.Command{
	Use:   "autobind",
	Short: "Turn bound class methods into arrow-function fields",
	Long: `autobind rewrites React-style classes that bind methods by hand,
either in the constructor or at each call site, so that the methods become
arrow-function class fields and the binds disappear.`,
	SilenceErrors: true,
}

// errReported is returned when the failure has already been printed.
var errReported = errors.New("failures reported")

func main() {
	rootCmd.Version = version

	rootCmd.AddCommand(constructorCmd)
	rootCmd.AddCommand(callsiteCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(watchCmd)

	rootCmd.PersistentFlags().String("config", "", "path to a config file (default: search upwards from the first path)")
	rootCmd.PersistentFlags().String("log-format", "text", "log format (text|json)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log debug details such as rejected binds")
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "only print errors and the summary")
	rootCmd.PersistentFlags().IntP("jobs", "j", 0, "files processed at once (0 = GOMAXPROCS)")
	rootCmd.PersistentFlags().Bool("no-cache", false, "disable the result cache")
	rootCmd.PersistentFlags().Bool("verify", false, "re-parse rewritten files before accepting them")

	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(os.Stderr, "%s %v\n", color.New(color.FgRed, color.Bold).Sprint("error:"), err)
		}
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
