package commands

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/argtypes/internal/errors"
	"github.com/thoreinstein/argtypes/internal/logging"
	"github.com/thoreinstein/argtypes/internal/report"
	"github.com/thoreinstein/argtypes/pkg/argtypes"
)

var (
	checkKeepGoing bool
	checkReport    string
)

func init() {
	checkCmd.Flags().BoolVarP(&checkKeepGoing, "keep-going", "k", false,
		"check every path and report all rejections")
	checkCmd.Flags().StringVar(&checkReport, "report", string(report.FormatText),
		"report format with --keep-going: text, json")
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check <kind> <path>...",
	Short: "Validate paths against a filesystem kind",
	Long: `Validate each path against a filesystem kind and print it, normalized,
one per line. Stops at the first path that does not match.

With --keep-going every path is checked and a report of accepted and
rejected paths is printed instead.

Run 'argtypes kinds' to see the available kinds.`,
	Example: `  # Every argument must be a regular file
  argtypes check file go.mod go.sum

  # The output directory must be missing or empty
  argtypes check empty-dir ./out

  # Dangling symbolic links are accepted
  argtypes check symlink ./current

  # Report every socket that is missing, as JSON
  argtypes check socket -k --report json /run/*.sock

See Also: argtypes kinds`,
	Args:              cobra.MinimumNArgs(2),
	ValidArgsFunction: completeKinds,
	RunE:              runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	logger := logging.FromContext(cmd.Context())
	if checkKeepGoing {
		format, ok := report.ParseFormat(checkReport)
		if !ok {
			return errors.NewUserError(errors.Newf("invalid report format %q", checkReport), "Use --report text or --report json")
		}
		return runCheckAllWithWriter(cmd.OutOrStdout(), logger, format, args[0], args[1:])
	}
	return runCheckWithWriter(cmd.OutOrStdout(), logger, args[0], args[1:])
}

// runCheckWithWriter allows injecting a writer for testing.
func runCheckWithWriter(w io.Writer, logger *slog.Logger, kind string, paths []string) error {
	c, ok := argtypes.LookupPathCheck(kind)
	if !ok {
		return errors.NewUserError(errors.Wrapf(errors.ErrUnknownCheck, "%q", kind), "Run: argtypes kinds")
	}

	h := c.New()
	for _, arg := range paths {
		p, err := h(arg)
		if err != nil {
			return errors.NewUserError(err, "")
		}
		logger.Debug("path accepted", "kind", c.Name, "path", p.String())
		fmt.Fprintln(w, p)
	}
	return nil
}

// runCheckAllWithWriter checks every path and writes a report. It fails
// after reporting if any path was rejected.
func runCheckAllWithWriter(w io.Writer, logger *slog.Logger, format report.Format, kind string, paths []string) error {
	c, ok := argtypes.LookupPathCheck(kind)
	if !ok {
		return errors.NewUserError(errors.Wrapf(errors.ErrUnknownCheck, "%q", kind), "Run: argtypes kinds")
	}

	h := c.New()
	result := &report.Result{}
	for _, arg := range paths {
		p, err := h(arg)
		if err != nil {
			logger.Debug("path rejected", "kind", c.Name, "arg", arg, "error", err)
			result.Reject(c.Name, arg, err)
			continue
		}
		result.Accept(c.Name, arg, p.String())
	}

	if err := report.NewReporter(w, format).Report(result); err != nil {
		return errors.NewSystemError(err, "")
	}
	if n := len(result.Rejected()); n > 0 {
		return errors.NewUserError(errors.Newf("%d of %d paths rejected", n, len(paths)), "")
	}
	return nil
}

// completeKinds completes the first argument with path check names and
// falls back to file completion for the rest.
func completeKinds(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveDefault
	}
	checks := argtypes.PathChecks()
	names := make([]string, len(checks))
	for i, c := range checks {
		names[i] = c.Name + "\t" + c.Description
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
