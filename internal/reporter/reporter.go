package reporter

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/psanodiya94/doxygen-comment-generator/internal/processor"
)

// Reporter formats and outputs processing results
type Reporter struct {
	output io.Writer
	json   bool
}

// NewReporter creates a new reporter
func NewReporter(output io.Writer, jsonOutput bool) *Reporter {
	return &Reporter{
		output: output,
		json:   jsonOutput,
	}
}

// Report outputs the processing results
func (r *Reporter) Report(results []processor.Result) error {
	if r.json {
		return r.reportJSON(results)
	}
	return r.reportConsole(results)
}

func (r *Reporter) reportConsole(results []processor.Result) error {
	if len(results) == 0 {
		fmt.Fprintln(r.output, "No files processed.")
		return nil
	}

	sorted := make([]processor.Result, len(results))
	copy(sorted, results)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].File < sorted[j].File
	})

	for _, res := range sorted {
		icon := "[OK]   "
		if !res.OK {
			icon = "[ERROR]"
		}
		fmt.Fprintf(r.output, "%s %s", icon, res.File)
		if res.TestFile {
			fmt.Fprintf(r.output, " (test file: %s)", res.Framework.DisplayName())
		}
		if res.Message != "" {
			fmt.Fprintf(r.output, ": %s", res.Message)
		}
		fmt.Fprintln(r.output)
	}

	summary := summarize(results)
	fmt.Fprintf(r.output, "\nSummary: %d file(s) processed, %d test file(s), %d failure(s)\n",
		summary.Processed, summary.TestFiles, summary.Failures)
	return nil
}

func (r *Reporter) reportJSON(results []processor.Result) error {
	output := struct {
		Results []processor.Result `json:"results"`
		Summary Summary            `json:"summary"`
	}{
		Results: results,
		Summary: summarize(results),
	}

	if output.Results == nil {
		output.Results = []processor.Result{}
	}

	encoder := json.NewEncoder(r.output)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// Summary holds aggregate information about a processing run
type Summary struct {
	Processed int `json:"processed"`
	TestFiles int `json:"test_files"`
	Failures  int `json:"failures"`
}

func summarize(results []processor.Result) Summary {
	s := Summary{}
	for _, res := range results {
		if res.OK {
			s.Processed++
		} else {
			s.Failures++
		}
		if res.TestFile {
			s.TestFiles++
		}
	}
	return s
}
