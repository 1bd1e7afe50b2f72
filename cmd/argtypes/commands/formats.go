package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/argtypes/pkg/argtypes"
)

var formatsJSON bool

func init() {
	formatsCmd.Flags().BoolVar(&formatsJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(formatsCmd)
}

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List the data formats 'argtypes load' can read",
	Long: `List the data formats compiled into this build and the file extensions
used to pick one automatically.

YAML support can be left out at build time with -tags argtypes_noyaml.`,
	Example: `  # List formats
  argtypes formats

See Also: argtypes load`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runFormatsWithWriter(cmd.OutOrStdout(), formatsJSON)
	},
}

// formatInfoJSON represents a loader in JSON output format.
type formatInfoJSON struct {
	Name       string   `json:"name"`
	Extensions []string `json:"extensions"`
}

// runFormatsWithWriter allows injecting a writer for testing.
func runFormatsWithWriter(w io.Writer, asJSON bool) error {
	formats := argtypes.Formats()

	if asJSON {
		out := make([]formatInfoJSON, len(formats))
		for i, f := range formats {
			out[i] = formatInfoJSON{Name: f.Name, Extensions: f.Extensions}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	bold := color.New(color.Bold).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\n", bold("FORMAT"), bold("EXTENSIONS"))
	for _, f := range formats {
		fmt.Fprintf(tw, "%s\t%s\n", green(f.Name), strings.Join(f.Extensions, ", "))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if !argtypes.YAMLAvailable() {
		fmt.Fprintln(w)
		fmt.Fprintln(w, color.New(color.Faint).Sprint("yaml: not compiled into this build"))
	}
	return nil
}
