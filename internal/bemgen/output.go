package bemgen

import (
	"io"
)

// DetermineOutputFormat selects the output format from the flag value, falling
// back to fallback for empty or unknown values
func DetermineOutputFormat(formatFlag string, quiet bool, fallback OutputFormat) OutputFormat {
	// Quiet output is suppressed by the caller; keep the cheapest format
	if quiet {
		return OutputIssues
	}

	switch formatFlag {
	case "issues":
		return OutputIssues
	case "text":
		return OutputText
	case "json":
		return OutputJSON
	}
	return fallback
}

// WriteRenderOutput writes the render result in the specified format
func WriteRenderOutput(w io.Writer, result *RenderResult, format OutputFormat, opts ReportOptions) error {
	switch format {
	case OutputJSON:
		return WriteJSON(w, buildRenderJSON(result))

	case OutputIssues:
		reporter := NewReporter(w, opts)
		reporter.PrintIssues(result.Issues)
		if len(result.Issues) > 0 {
			reporter.PrintSummary(result.Issues)
		}

	default:
		reporter := NewReporter(w, opts)
		reporter.PrintBlocks(result.Blocks)
		if len(result.Issues) > 0 {
			io.WriteString(w, "\n")
			reporter.PrintIssues(result.Issues)
			reporter.PrintSummary(result.Issues)
		}
	}
	return nil
}

// WriteCheckOutput writes the check result in the specified format
func WriteCheckOutput(w io.Writer, result *CheckResult, format OutputFormat, opts ReportOptions) error {
	if format == OutputJSON {
		return WriteJSON(w, buildCheckJSON(result))
	}

	reporter := NewReporter(w, opts)
	reporter.PrintIssues(result.Issues)
	reporter.PrintSummary(result.Issues)
	return nil
}
