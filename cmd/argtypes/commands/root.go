// Package commands implements the CLI commands for argtypes.
package commands

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/argtypes/cmd"
	"github.com/thoreinstein/argtypes/internal/config"
	"github.com/thoreinstein/argtypes/internal/errors"
	"github.com/thoreinstein/argtypes/internal/logging"
	"github.com/thoreinstein/argtypes/pkg/argtypes"
)

// debugEnv raises the log level when no -v flag is given.
const debugEnv = "ARGTYPES_DEBUG"

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// configFlag holds the --config file, validated as it is parsed.
var configFlag = argtypes.NewPathValue(argtypes.ExistingFile(), "file")

// loadedConfig is the configuration read by initConfig.
var loadedConfig *config.Config

// configLoadErr holds any error that occurred during config loading.
var configLoadErr error

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv, -vvv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "",
		"log format: text, json (default from config, else text)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")
	rootCmd.PersistentFlags().Var(configFlag, "config",
		"config file (default: ./config.yaml, then $XDG_CONFIG_HOME/argtypes/config.yaml)")

	rootCmd.Version = cmd.Version
	rootCmd.SetVersionTemplate("argtypes version {{.Version}}\n")

	// Silence errors and usage so main controls error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	loadedConfig, configLoadErr = config.Load(configFlag.String())
}

// currentConfig returns the loaded configuration, or the defaults when
// loading has not happened or failed.
func currentConfig() *config.Config {
	if loadedConfig == nil {
		return config.Default()
	}
	return loadedConfig
}

var rootCmd = &cobra.Command{
	Use:   "argtypes",
	Short: "Validate paths and load structured data files",
	Long: `argtypes checks command-line path arguments against filesystem kinds
(regular files, directories, mount points, FIFOs, devices, sockets, symbolic
links, empty directories) and loads YAML, JSON, TOML and HCL files.

The same validators are available as a Go library for cobra and pflag
programs in github.com/thoreinstein/argtypes/pkg/argtypes.`,
	Example: `  # Check that every argument is a regular file
  argtypes check file go.mod go.sum

  # Load a YAML file and print it as JSON
  argtypes load config.yaml

  # Convert HCL to TOML in place
  argtypes load --to toml --output vars.toml vars.hcl

  See Also: argtypes kinds, argtypes formats, argtypes config`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := setupLogging(cmd); err != nil {
			return err
		}
		return checkConfig(cmd)
	},
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(errors.New("cannot use --quiet and --verbose together"), "")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity

		// CLI flags take precedence, but if not set, check env var
		if v == 0 {
			if val, ok := os.LookupEnv(debugEnv); ok {
				switch val {
				case "1", "true":
					v = 2
				case "2":
					v = 3
				}
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	format := logFormat
	if format == "" {
		format = currentConfig().LogFormat
	}
	if _, ok := logging.ParseFormat(format); !ok {
		return errors.NewUserError(errors.Newf("invalid log format %q", format), "Use --log-format text or --log-format json")
	}

	handlers := []slog.Handler{
		logging.NewFormatHandler(logging.Config{
			Level:  level,
			Format: logging.Format(format),
			Output: cmd.ErrOrStderr(),
		}),
	}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return errors.NewUserError(errors.Wrap(err, "opening log file"), "")
		}
		// File output uses JSON format
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level}))
	}

	var handler slog.Handler
	if len(handlers) > 1 {
		handler = logging.NewMultiHandler(handlers...)
	} else {
		handler = handlers[0]
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// checkConfig reports a config load failure, except for commands that must
// work without a valid configuration.
func checkConfig(cmd *cobra.Command) error {
	switch cmd {
	case versionCmd, configCmd, configGetCmd, configEditCmd:
		return nil
	}
	if cmd.Name() == "help" {
		return nil
	}
	if configLoadErr != nil {
		return errors.NewConfigError(configLoadErr)
	}
	if used := config.Used(); used != "" {
		logging.FromContext(cmd.Context()).Debug("loaded config", "path", used)
	}
	return nil
}

// loaderOptions builds content loader options from the configuration.
func loaderOptions(cmd *cobra.Command) []argtypes.Option {
	cfg := currentConfig()
	opts := []argtypes.Option{
		argtypes.WithMaxSize(cfg.MaxFileSize),
		argtypes.WithLogger(logging.FromContext(cmd.Context())),
	}
	return append(opts, yamlOptions(cfg.YAMLLoader)...)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
