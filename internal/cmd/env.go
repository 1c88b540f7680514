package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harrison/staffdir/internal/config"
	"github.com/harrison/staffdir/internal/directory"
	"github.com/harrison/staffdir/internal/logger"
	"github.com/harrison/staffdir/internal/report"
)

// runEnv bundles the configuration and loggers shared by subcommands.
type runEnv struct {
	cfg  *config.Config
	log  logger.Logger
	file *logger.FileLogger
}

// setupEnv loads configuration, applies global flags and builds loggers.
// CLI flags take precedence over config file settings.
func setupEnv(cmd *cobra.Command) (*runEnv, error) {
	configPath, _ := cmd.Flags().GetString("config")

	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.LoadConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
		}
	} else {
		home, err := config.GetHome()
		if err != nil {
			return nil, fmt.Errorf("failed to locate staffdir home: %w", err)
		}
		cfg, err = config.LoadConfigFromDir(home)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", home, err)
		}
	}

	var logLevelPtr *string
	if cmd.Flags().Changed("log-level") {
		logLevel, _ := cmd.Flags().GetString("log-level")
		logLevelPtr = &logLevel
	}
	var logDirPtr *string
	if cmd.Flags().Changed("log-dir") {
		logDir, _ := cmd.Flags().GetString("log-dir")
		logDirPtr = &logDir
	}
	var noColorPtr *bool
	if cmd.Flags().Changed("no-color") {
		noColor, _ := cmd.Flags().GetBool("no-color")
		noColorPtr = &noColor
	}
	cfg.MergeWithFlags(logLevelPtr, logDirPtr, noColorPtr)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if !cfg.Color {
		color.NoColor = true
	}

	env := &runEnv{cfg: cfg}
	console := logger.NewConsoleLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	if cfg.FileLogging {
		// the file log is the full record, so it always runs at debug
		env.file, err = logger.NewFileLoggerWithDirAndLevel(cfg.LogDir, "debug")
		if err != nil {
			return nil, fmt.Errorf("failed to create file logger: %w", err)
		}
		env.log = logger.NewMultiLogger(console, env.file)
		env.log.LogDebug(fmt.Sprintf("Session log: %s", env.file.Path()))
	} else {
		env.log = console
	}

	return env, nil
}

// Close flushes and closes the file logger if one was opened.
func (e *runEnv) Close() error {
	if e.file == nil {
		return nil
	}
	return e.file.Close()
}

// colorEnabled reports whether colored output should be used.
func (e *runEnv) colorEnabled() bool {
	return e.cfg.Color && !color.NoColor
}

// writeReport exports dir to path (resolved against report_dir) if path is set.
func (e *runEnv) writeReport(path string, dir *directory.Directory, meta report.Meta) error {
	if path == "" {
		return nil
	}

	resolved := e.cfg.ResolveReportPath(path)
	if err := report.Write(resolved, dir, meta); err != nil {
		return err
	}

	e.log.LogInfo(fmt.Sprintf("Report written to %s", resolved))
	return nil
}
