package bemgen

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// ReportOptions controls terminal output
type ReportOptions struct {
	UseColors        bool // Force color output
	PrintIssuedLines bool // Show source lines with issues
	PrintLinterName  bool // Show (bemcheck) suffix
}

// Reporter handles formatting and outputting results
type Reporter struct {
	w               io.Writer
	useColors       bool
	printLines      bool
	printLinterName bool
}

// NewReporter creates a new reporter with the given options
func NewReporter(w io.Writer, opts ReportOptions) *Reporter {
	return &Reporter{
		w:               w,
		useColors:       shouldUseColors(opts),
		printLines:      opts.PrintIssuedLines,
		printLinterName: opts.PrintLinterName,
	}
}

// shouldUseColors determines if colors should be enabled
func shouldUseColors(opts ReportOptions) bool {
	// Explicit flag wins
	if opts.UseColors {
		return true
	}

	// Check for FORCE_COLOR environment variable (GitHub Actions, etc.)
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	// GitHub Actions supports colors
	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}

	// Auto-detect TTY
	if fileInfo, err := os.Stdout.Stat(); err == nil && (fileInfo.Mode()&os.ModeCharDevice) != 0 {
		return true
	}

	return false
}

// PrintIssues outputs issues in golangci-lint format, sorted by position
func (r *Reporter) PrintIssues(issues []Issue) {
	sorted := make([]Issue, len(issues))
	copy(sorted, issues)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Pos.Filename != sorted[j].Pos.Filename {
			return sorted[i].Pos.Filename < sorted[j].Pos.Filename
		}
		if sorted[i].Pos.Line != sorted[j].Pos.Line {
			return sorted[i].Pos.Line < sorted[j].Pos.Line
		}
		return sorted[i].Pos.Column < sorted[j].Pos.Column
	})

	for _, issue := range sorted {
		r.printIssue(issue)
	}
}

// printIssue formats a single issue in golangci-lint style
func (r *Reporter) printIssue(issue Issue) {
	// Format: file:line:col: message (linter)
	location := fmt.Sprintf("%s:%d:%d:", issue.Pos.Filename, issue.Pos.Line, issue.Pos.Column)

	linterSuffix := ""
	if r.printLinterName {
		linterSuffix = fmt.Sprintf(" (%s)", issue.FromLinter)
	}

	fmt.Fprintf(r.w, "%s %s%s\n",
		RenderStyle(StyleCyan, location, r.useColors),
		issue.Text,
		RenderStyle(StyleGray, linterSuffix, r.useColors))

	if r.printLines && len(issue.SourceLines) > 0 {
		for _, line := range issue.SourceLines {
			fmt.Fprintf(r.w, "\t%s\n", line)
		}

		caret := r.buildCaretIndicator(issue.SourceLines[0], issue.Pos.Column)
		fmt.Fprintf(r.w, "\t%s\n", RenderStyle(StyleYellow, caret, r.useColors))
	}
}

// buildCaretIndicator creates the "^" indicator aligned with the column.
// Tabs in the prefix are kept so the caret lines up under tab-indented YAML.
func (r *Reporter) buildCaretIndicator(sourceLine string, column int) string {
	if column <= 0 {
		return "^"
	}

	prefixLen := column - 1
	if prefixLen > len(sourceLine) {
		prefixLen = len(sourceLine)
	}

	var padding strings.Builder
	for _, ch := range sourceLine[:prefixLen] {
		if ch == '\t' {
			padding.WriteRune('\t')
		} else {
			padding.WriteRune(' ')
		}
	}

	return padding.String() + "^"
}

// PrintSummary outputs the issue count summary
func (r *Reporter) PrintSummary(issues []Issue) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintf(r.w, "%s:\n", pluralizeCount(len(issues), "issue", "issues"))

	linterCounts := make(map[string]int)
	for _, issue := range issues {
		linterCounts[issue.FromLinter]++
	}

	linters := make([]string, 0, len(linterCounts))
	for linter := range linterCounts {
		linters = append(linters, linter)
	}
	sort.Strings(linters)
	for _, linter := range linters {
		fmt.Fprintf(r.w, "* %s: %d\n", linter, linterCounts[linter])
	}
}

// PrintBlocks lists rendered class names per definition file
func (r *Reporter) PrintBlocks(blocks []Rendered) {
	for _, b := range blocks {
		fmt.Fprintf(r.w, "%s %s\n",
			RenderStyle(StyleCyan, b.File+":", r.useColors),
			RenderStyle(StyleGreen, b.Classes.Render(), r.useColors))

		for _, el := range b.Elements {
			fmt.Fprintf(r.w, "  %s %s\n",
				RenderStyle(StyleGray, "__"+el.Name, r.useColors),
				el.Class)
		}
		for _, ext := range b.Extends {
			fmt.Fprintf(r.w, "  %s %s\n",
				RenderStyle(StyleGray, "-"+ext.Extension, r.useColors),
				ext.Classes.Render())
		}
	}
}

// pluralizeCount returns a formatted string with count and singular/plural form
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}

// UseColors returns whether colors are enabled
func (r *Reporter) UseColors() bool {
	return r.useColors
}
