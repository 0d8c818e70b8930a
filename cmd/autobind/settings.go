package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/t14raptor/autobind/internal/cache"
	"github.com/t14raptor/autobind/internal/config"
	"github.com/t14raptor/autobind/internal/driver"
	"github.com/t14raptor/autobind/transform/autobind"
)

// settings is what every command derives from its flags and the config
// file.
type settings struct {
	file   *config.File
	cfg    config.Config
	logger *slog.Logger
	cache  *cache.Cache
	quiet  bool
}

func loadSettings(cmd *cobra.Command, paths []string) (*settings, error) {
	flags := cmd.Root().PersistentFlags()

	colorFlag, err := flags.GetString("color")
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(colorFlag) {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	case "auto", "":
		color.NoColor = !isTerminal(os.Stdout)
	default:
		return nil, fmt.Errorf("invalid --color value %q (expected auto|on|off)", colorFlag)
	}

	logger, err := newLogger(cmd)
	if err != nil {
		return nil, err
	}

	configPath, err := flags.GetString("config")
	if err != nil {
		return nil, err
	}
	var file *config.File
	if configPath != "" {
		file, err = config.Load(configPath)
	} else {
		start := "."
		if len(paths) > 0 {
			start = paths[0]
		}
		file, err = config.Discover(start)
	}
	if err != nil {
		return nil, err
	}
	if file.Path != "" {
		logger.Debug("config loaded", "path", file.Path)
	}

	s := &settings{file: file, cfg: file.Config, logger: logger}
	if s.quiet, err = flags.GetBool("quiet"); err != nil {
		return nil, err
	}
	if flags.Changed("jobs") {
		if s.cfg.Jobs, err = flags.GetInt("jobs"); err != nil {
			return nil, err
		}
		if s.cfg.Jobs < 0 {
			return nil, fmt.Errorf("--jobs must not be negative")
		}
	}
	if flags.Changed("verify") {
		if s.cfg.Verify, err = flags.GetBool("verify"); err != nil {
			return nil, err
		}
	}
	noCache, err := flags.GetBool("no-cache")
	if err != nil {
		return nil, err
	}
	if s.cfg.Cache && !noCache {
		c, err := cache.Open(s.cfg.CacheDir)
		if err != nil {
			logger.Warn("cache disabled", "err", err)
		} else {
			s.cache = c
		}
	}
	return s, nil
}

func newLogger(cmd *cobra.Command) (*slog.Logger, error) {
	flags := cmd.Root().PersistentFlags()
	format, err := flags.GetString("log-format")
	if err != nil {
		return nil, err
	}
	verbose, err := flags.GetBool("verbose")
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: slog.LevelWarn}
	if verbose {
		opts.Level = slog.LevelDebug
	}
	switch format {
	case "text", "":
		return slog.New(slog.NewTextHandler(os.Stderr, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(os.Stderr, opts)), nil
	}
	return nil, fmt.Errorf("invalid --log-format value %q (expected text|json)", format)
}

// mode resolves the --mode flag of commands that take one, falling back to
// the config file and then to the constructor form.
func (s *settings) mode(cmd *cobra.Command) (autobind.Mode, error) {
	value := s.cfg.Mode
	if cmd.Flags().Changed("mode") {
		v, err := cmd.Flags().GetString("mode")
		if err != nil {
			return 0, err
		}
		value = v
	}
	if value == "" {
		return autobind.ModeConstructor, nil
	}
	return autobind.ParseMode(value)
}

func (s *settings) driverOptions(mode autobind.Mode) driver.Options {
	return driver.Options{
		Mode:   mode,
		Config: s.cfg,
		Root:   s.file.Root,
		Verify: s.cfg.Verify,
		Cache:  s.cache,
		Logger: s.logger,
	}
}
