package commands

import (
	"io"
	"log/slog"
	"path/filepath"
	"slices"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/argtypes/internal/errors"
	"github.com/thoreinstein/argtypes/internal/logging"
	"github.com/thoreinstein/argtypes/pkg/argtypes"
	"github.com/thoreinstein/argtypes/pkg/fileutil"
)

// formatAuto picks the loader from the file extension.
const formatAuto = "auto"

var (
	loadFormat string
	loadTo     string
	loadOutput string
)

func init() {
	loadCmd.Flags().StringVarP(&loadFormat, "format", "f", formatAuto,
		"input format: auto or a name from 'argtypes formats'")
	loadCmd.Flags().StringVarP(&loadTo, "to", "t", "",
		"output encoding: json, yaml, toml (default from config)")
	loadCmd.Flags().StringVarP(&loadOutput, "output", "o", "",
		"write to this file atomically instead of stdout; its directory must exist")

	_ = loadCmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		names := []string{formatAuto}
		for _, f := range argtypes.Formats() {
			names = append(names, f.Name)
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})
	_ = loadCmd.RegisterFlagCompletionFunc("to", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		var names []string
		for _, enc := range fileutil.Encodings() {
			names = append(names, string(enc))
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(loadCmd)
}

var loadCmd = &cobra.Command{
	Use:   "load <file>",
	Short: "Load a structured data file and print it",
	Long: `Load a YAML, JSON, TOML or HCL file and print its contents re-encoded.

With --format auto the loader is chosen from the file extension. The output
encoding defaults to the output_format setting. With --output the result is
written atomically; the destination directory must already exist.`,
	Example: `  # Print a YAML file as JSON
  argtypes load config.yaml

  # Force the JSON loader regardless of extension
  argtypes load --format json data.txt

  # Convert HCL to a TOML file
  argtypes load --to toml --output vars.toml vars.hcl

See Also: argtypes formats, argtypes config`,
	Args: cobra.ExactArgs(1),
	RunE: runLoad,
}

// loadRequest carries the resolved load flags.
type loadRequest struct {
	Path   string
	Format string
	To     fileutil.Encoding
	Output string
}

func runLoad(cmd *cobra.Command, args []string) error {
	to := loadTo
	if to == "" {
		to = currentConfig().OutputFormat
	}
	req := loadRequest{
		Path:   args[0],
		Format: loadFormat,
		To:     fileutil.Encoding(to),
		Output: loadOutput,
	}
	return runLoadWithWriter(cmd.OutOrStdout(), logging.FromContext(cmd.Context()), req, loaderOptions(cmd))
}

// runLoadWithWriter allows injecting a writer for testing.
func runLoadWithWriter(w io.Writer, logger *slog.Logger, req loadRequest, opts []argtypes.Option) error {
	h, err := loaderFor(req.Format, opts)
	if err != nil {
		return err
	}
	if !slices.Contains(fileutil.Encodings(), req.To) {
		return errors.NewUserError(errors.Wrapf(errors.ErrUnknownFormat, "output encoding %q", string(req.To)),
			"Use --to json, --to yaml or --to toml")
	}

	// Validate the destination before doing any work.
	if req.Output != "" {
		if _, err := argtypes.ExistingDirectory()(filepath.Dir(req.Output)); err != nil {
			return errors.NewUserError(err, "")
		}
	}

	data, err := h(req.Path)
	if err != nil {
		return errors.NewUserError(err, "")
	}

	if req.Output != "" {
		if err := fileutil.AtomicWriteValue(req.Output, data, req.To, 0o644); err != nil {
			return errors.NewSystemError(errors.Wrapf(err, "writing %s", req.Output), "")
		}
		logger.Info("wrote output", "path", req.Output, "encoding", string(req.To))
		return nil
	}

	out, err := fileutil.Marshal(data, req.To)
	if err != nil {
		return errors.NewUserError(err, "")
	}
	_, err = w.Write(out)
	return err
}

// loaderFor returns the handler for a --format value.
func loaderFor(format string, opts []argtypes.Option) (argtypes.Handler[any], error) {
	if format == "" || format == formatAuto {
		return argtypes.ConfigFile(opts...), nil
	}
	f, ok := argtypes.LookupFormat(format)
	if !ok {
		return nil, errors.NewUserError(errors.Wrapf(errors.ErrUnknownFormat, "%q", format), "Run: argtypes formats")
	}
	return f.New(opts...), nil
}
