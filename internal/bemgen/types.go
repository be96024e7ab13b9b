package bemgen

import (
	"github.com/charmbracelet/log"
	"github.com/yacobolo/bem"
)

// Config holds render/check configuration
type Config struct {
	SourceDir        string      // "web/components"
	Includes         []string    // ["**/*.bem.yaml"]
	RespectGitignore bool        // Skip files matched by SourceDir/.gitignore
	Logger           *log.Logger // Debug logging; nil disables logging
}

// Rendered is the evaluation of one block definition file
type Rendered struct {
	File     string
	Classes  bem.ClassNames
	Elements []RenderedElement
	Extends  []RenderedExtension
}

// RenderedElement is one element class of a block
type RenderedElement struct {
	Name  string // "title"
	Class string // "card__title"
}

// RenderedExtension is a block derived with Extend
type RenderedExtension struct {
	Extension string
	Classes   bem.ClassNames
}

// RenderResult contains every successfully rendered block plus the issues of
// the files that failed
type RenderResult struct {
	FilesDiscovered int
	FilesScanned    int
	FilesSkipped    int
	Blocks          []Rendered
	Issues          []Issue
	ErrorCount      int
}

// CheckResult contains validation issues for all scanned definitions
type CheckResult struct {
	FilesScanned  int
	FilesSkipped  int
	BlocksChecked int
	Issues        []Issue
	ErrorCount    int
}

// OutputFormat represents the CLI output format
type OutputFormat string

const (
	// OutputIssues shows only errors in golangci-lint format (CI-friendly)
	OutputIssues OutputFormat = "issues"
	// OutputText lists rendered class names per file
	OutputText OutputFormat = "text"
	// OutputJSON exports structured data in JSON format (tooling integration)
	OutputJSON OutputFormat = "json"
)
