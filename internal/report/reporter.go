package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
)

// Format specifies the output format for reports.
type Format string

const (
	// FormatText produces human-readable text output.
	FormatText Format = "text"
	// FormatJSON produces machine-readable JSON output.
	FormatJSON Format = "json"
)

// ParseFormat validates a --report value.
func ParseFormat(s string) (Format, bool) {
	switch Format(s) {
	case FormatText, FormatJSON:
		return Format(s), true
	default:
		return "", false
	}
}

// Reporter formats and writes results.
type Reporter struct {
	out    io.Writer
	format Format
}

// NewReporter creates a new Reporter.
func NewReporter(out io.Writer, format Format) *Reporter {
	return &Reporter{
		out:    out,
		format: format,
	}
}

// Report writes the result to the output.
func (r *Reporter) Report(result *Result) error {
	if result == nil {
		return nil
	}

	switch r.format {
	case FormatJSON:
		return r.reportJSON(result)
	default:
		return r.reportText(result)
	}
}

// jsonReport adds summary counts to the entries.
type jsonReport struct {
	Checked  int `json:"checked"`
	Rejected int `json:"rejected"`
	*Result
}

func (r *Reporter) reportJSON(result *Result) error {
	encoder := json.NewEncoder(r.out)
	encoder.SetIndent("", "  ")
	out := jsonReport{
		Checked:  len(result.Entries),
		Rejected: len(result.Rejected()),
		Result:   result,
	}
	return errors.Wrap(encoder.Encode(out), "encoding JSON report")
}

func (r *Reporter) reportText(result *Result) error {
	ok := color.New(color.FgGreen).SprintFunc()
	bad := color.New(color.FgRed).SprintFunc()
	dim := color.New(color.FgHiBlack).SprintFunc()

	for _, e := range result.Entries {
		switch e.Status {
		case StatusAccepted:
			fmt.Fprintf(r.out, "%s %s\n", ok("✓"), e.Path)
		default:
			fmt.Fprintf(r.out, "%s %s %s\n", bad("✗"), e.Message, dim("["+e.Kind+"]"))
		}
	}

	rejected := len(result.Rejected())
	if rejected == 0 {
		fmt.Fprintln(r.out, ok(fmt.Sprintf("%d checked, all accepted", len(result.Entries))))
		return nil
	}
	fmt.Fprintln(r.out, bad(fmt.Sprintf("%d checked, %d rejected", len(result.Entries), rejected)))
	return nil
}
