package bemgen

import (
	"encoding/json"
	"io"
	"time"
)

// JSONOutput represents the structured JSON export schema
type JSONOutput struct {
	Version   string      `json:"version"`
	Timestamp string      `json:"timestamp"`
	Summary   JSONSummary `json:"summary"`
	Blocks    []JSONBlock `json:"blocks,omitempty"`
	Issues    []JSONIssue `json:"issues"`
}

// JSONSummary contains high-level counts
type JSONSummary struct {
	TotalIssues   int `json:"total_issues"`
	Errors        int `json:"errors"`
	FilesScanned  int `json:"files_scanned"`
	FilesSkipped  int `json:"files_skipped"`
	BlocksChecked int `json:"blocks_checked,omitempty"`
}

// JSONBlock is a rendered block with its structured parts
type JSONBlock struct {
	File      string        `json:"file,omitempty"`
	Block     string        `json:"block"`
	Modifiers []string      `json:"modifiers"`
	Classes   string        `json:"classes"`
	Elements  []JSONElement `json:"elements,omitempty"`
	Extends   []JSONBlock   `json:"extends,omitempty"`
}

// JSONElement is a rendered element class
type JSONElement struct {
	Name  string `json:"name"`
	Class string `json:"class"`
}

// JSONIssue represents a single validation issue
type JSONIssue struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Linter   string `json:"linter"`
	Source   string `json:"source,omitempty"` // Optional source line
}

// WriteJSON writes output as indented JSON
func WriteJSON(w io.Writer, output JSONOutput) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

func buildRenderJSON(result *RenderResult) JSONOutput {
	blocks := make([]JSONBlock, 0, len(result.Blocks))
	for _, b := range result.Blocks {
		block := JSONBlock{
			File:      b.File,
			Block:     b.Classes.BlockName(),
			Modifiers: b.Classes.Modifiers(),
			Classes:   b.Classes.Render(),
		}
		for _, el := range b.Elements {
			block.Elements = append(block.Elements, JSONElement{Name: el.Name, Class: el.Class})
		}
		for _, ext := range b.Extends {
			block.Extends = append(block.Extends, JSONBlock{
				Block:     ext.Classes.BlockName(),
				Modifiers: ext.Classes.Modifiers(),
				Classes:   ext.Classes.Render(),
			})
		}
		blocks = append(blocks, block)
	}

	return JSONOutput{
		Version:   "1.0",
		Timestamp: time.Now().Format(time.RFC3339),
		Summary: JSONSummary{
			TotalIssues:  len(result.Issues),
			Errors:       result.ErrorCount,
			FilesScanned: result.FilesScanned,
			FilesSkipped: result.FilesSkipped,
		},
		Blocks: blocks,
		Issues: buildJSONIssues(result.Issues),
	}
}

func buildCheckJSON(result *CheckResult) JSONOutput {
	return JSONOutput{
		Version:   "1.0",
		Timestamp: time.Now().Format(time.RFC3339),
		Summary: JSONSummary{
			TotalIssues:   len(result.Issues),
			Errors:        result.ErrorCount,
			FilesScanned:  result.FilesScanned,
			FilesSkipped:  result.FilesSkipped,
			BlocksChecked: result.BlocksChecked,
		},
		Issues: buildJSONIssues(result.Issues),
	}
}

func buildJSONIssues(issues []Issue) []JSONIssue {
	jsonIssues := make([]JSONIssue, len(issues))
	for i, issue := range issues {
		source := ""
		if len(issue.SourceLines) > 0 {
			source = issue.SourceLines[0]
		}
		jsonIssues[i] = JSONIssue{
			File:     issue.Pos.Filename,
			Line:     issue.Pos.Line,
			Column:   issue.Pos.Column,
			Severity: issue.Severity,
			Message:  issue.Text,
			Linter:   issue.FromLinter,
			Source:   source,
		}
	}
	return jsonIssues
}
