package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/argtypes/pkg/argtypes"
)

var kindsJSON bool

func init() {
	kindsCmd.Flags().BoolVar(&kindsJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(kindsCmd)
}

var kindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "List the path kinds accepted by 'argtypes check'",
	Example: `  # List kinds
  argtypes kinds

  # Output as JSON
  argtypes kinds --json

See Also: argtypes check`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runKindsWithWriter(cmd.OutOrStdout(), kindsJSON)
	},
}

// kindInfoJSON represents a path kind in JSON output format.
type kindInfoJSON struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// runKindsWithWriter allows injecting a writer for testing.
func runKindsWithWriter(w io.Writer, asJSON bool) error {
	checks := argtypes.PathChecks()

	if asJSON {
		out := make([]kindInfoJSON, len(checks))
		for i, c := range checks {
			out[i] = kindInfoJSON{Name: c.Name, Description: c.Description}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	bold := color.New(color.Bold).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\n", bold("KIND"), bold("ACCEPTS"))
	for _, c := range checks {
		fmt.Fprintf(tw, "%s\t%s\n", green(c.Name), c.Description)
	}
	return tw.Flush()
}
