package bemgen

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yacobolo/bem"
)

func TestBuildCaretIndicator(t *testing.T) {
	reporter := &Reporter{}

	tests := []struct {
		name       string
		sourceLine string
		column     int
		want       string
	}{
		{
			name:       "spaces only",
			sourceLine: "  bad--one: true",
			column:     3,
			want:       "  ^",
		},
		{
			name:       "tabs and spaces",
			sourceLine: "\t\tx__y",
			column:     3,
			want:       "\t\t^",
		},
		{
			name:       "start of line",
			sourceLine: "block: \"\"",
			column:     1,
			want:       "^",
		},
		{
			name:       "column 0 fallback",
			sourceLine: "some line",
			column:     0,
			want:       "^",
		},
		{
			name:       "column beyond line length",
			sourceLine: "short",
			column:     100,
			want:       "     ^", // Pads to line length only
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := reporter.buildCaretIndicator(tt.sourceLine, tt.column)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestReporter_PrintIssues(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewReporter(&buf, ReportOptions{PrintIssuedLines: true, PrintLinterName: true})
	reporter.useColors = false

	issues := []Issue{
		{
			FromLinter:  LinterName,
			Text:        "the element must not be empty",
			Severity:    SeverityError,
			SourceLines: []string{"elements: [\"\"]"},
			Pos:         IssuePos{Filename: "b.bem.yaml", Line: 2, Column: 12},
		},
		{
			FromLinter:  LinterName,
			Text:        "the block must not be empty",
			Severity:    SeverityError,
			SourceLines: []string{"block: \"\""},
			Pos:         IssuePos{Filename: "a.bem.yaml", Line: 1, Column: 8},
		},
	}
	reporter.PrintIssues(issues)
	reporter.PrintSummary(issues)

	want := "a.bem.yaml:1:8: the block must not be empty (bemcheck)\n" +
		"\tblock: \"\"\n" +
		"\t       ^\n" +
		"b.bem.yaml:2:12: the element must not be empty (bemcheck)\n" +
		"\telements: [\"\"]\n" +
		"\t           ^\n" +
		"\n" +
		"2 issues:\n" +
		"* bemcheck: 2\n"
	assert.Equal(t, want, buf.String())

	// Input order is left untouched
	assert.Equal(t, "b.bem.yaml", issues[0].Pos.Filename)
}

func TestReporter_PrintBlocks(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewReporter(&buf, ReportOptions{})
	reporter.useColors = false

	card := bem.MustBlock("card", "featured")
	header, err := card.Extend("header")
	require.NoError(t, err)

	reporter.PrintBlocks([]Rendered{{
		File:     "card.bem.yaml",
		Classes:  card,
		Elements: []RenderedElement{{Name: "title", Class: "card__title"}},
		Extends:  []RenderedExtension{{Extension: "header", Classes: header}},
	}})

	want := "card.bem.yaml: card card--featured\n" +
		"  __title card__title\n" +
		"  -header card-header\n"
	assert.Equal(t, want, buf.String())
}

func TestDetermineOutputFormat(t *testing.T) {
	tests := []struct {
		flag     string
		quiet    bool
		fallback OutputFormat
		want     OutputFormat
	}{
		{"", false, OutputText, OutputText},
		{"json", false, OutputText, OutputJSON},
		{"issues", false, OutputText, OutputIssues},
		{"text", false, OutputIssues, OutputText},
		{"bogus", false, OutputIssues, OutputIssues},
		{"json", true, OutputText, OutputIssues},
	}

	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			assert.Equal(t, tt.want, DetermineOutputFormat(tt.flag, tt.quiet, tt.fallback))
		})
	}
}

func TestPluralizeCount(t *testing.T) {
	assert.Equal(t, "1 issue", pluralizeCount(1, "issue", "issues"))
	assert.Equal(t, "0 issues", pluralizeCount(0, "issue", "issues"))
}
