package commands

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/argtypes/internal/config"
	"github.com/thoreinstein/argtypes/internal/editor"
	"github.com/thoreinstein/argtypes/internal/errors"
	"github.com/thoreinstein/argtypes/internal/paths"
	"github.com/thoreinstein/argtypes/pkg/fileutil"
)

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configEditCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Show the effective argtypes configuration in YAML format.

Values come from, in order of precedence: ARGTYPES_* environment variables,
the --config file or the first config.yaml found in the current directory or
$XDG_CONFIG_HOME/argtypes, and the built-in defaults.`,
	Example: `  # Show all configuration
  argtypes config

  # Get a single value
  argtypes config get output_format

See Also: argtypes load`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runConfigListWithWriter(cmd.OutOrStdout())
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Long:  `Get a single configuration value by key. Run 'argtypes config' to see all keys.`,
	Example: `  # Get the default output encoding
  argtypes config get output_format

See Also: argtypes config`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: config.Keys(),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConfigGetWithWriter(cmd.OutOrStdout(), args[0])
	},
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the configuration file in $EDITOR",
	Long: `Open the configuration file in your editor.

Edits the file in use, or $XDG_CONFIG_HOME/argtypes/config.yaml when there is
none; a missing file is first created with the defaults. The editor comes from
$EDITOR, then $VISUAL, then nano or vi.`,
	Example: `  # Edit with the default editor
  argtypes config edit

  # Edit with a specific editor
  EDITOR=nano argtypes config edit

See Also: argtypes config`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		path, err := ensureConfigFile()
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Location: %s\n", path)
		return editor.Open(cmd.Context(), path, editor.StdStreams())
	},
}

// ensureConfigFile returns the config file to edit, writing the defaults to
// the XDG location first when no file exists.
func ensureConfigFile() (string, error) {
	if used := config.Used(); used != "" {
		return used, nil
	}

	path := paths.ConfigFile()
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	if err := paths.EnsureDir(paths.ConfigDir(), paths.DefaultDirPerm); err != nil {
		return "", errors.NewSystemError(errors.Wrap(err, "creating config directory"), "")
	}
	if err := fileutil.AtomicWriteValue(path, config.Default(), fileutil.EncodingYAML, 0o600); err != nil {
		return "", errors.NewSystemError(errors.Wrap(err, "writing default config"), "")
	}
	return path, nil
}

// runConfigListWithWriter allows injecting a writer for testing.
func runConfigListWithWriter(w io.Writer) error {
	if configLoadErr != nil {
		return errors.NewConfigError(configLoadErr)
	}

	if used := config.Used(); used != "" {
		fmt.Fprintf(w, "# %s\n", used)
	} else {
		fmt.Fprintln(w, "# defaults (no config file found)")
	}

	data, err := yaml.Marshal(currentConfig())
	if err != nil {
		return errors.Wrap(err, "marshaling config")
	}
	_, err = w.Write(data)
	return err
}

// runConfigGetWithWriter allows injecting a writer for testing.
func runConfigGetWithWriter(w io.Writer, key string) error {
	key = strings.ToLower(key)
	if !slices.Contains(config.Keys(), key) {
		err := errors.Wrapf(errors.ErrNotFound, "config key %q", key)
		return errors.NewUserError(err, "Valid keys: "+strings.Join(config.Keys(), ", "))
	}

	fmt.Fprintln(w, viper.GetString(key))
	return nil
}
