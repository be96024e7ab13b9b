// Package bemgen renders and checks BEM block definition files.
package bemgen

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/yacobolo/bem/internal/blockfile"
)

// fileResult is the outcome of processing one definition file
type fileResult struct {
	file  string
	eval  *blockfile.Evaluation
	issue *Issue
}

// Render is the main entry point for `bem render`.
// Files that fail to decode or validate are reported as issues; the run continues.
func Render(ctx context.Context, config Config) (*RenderResult, error) {
	results, stats, err := process(ctx, config)
	if err != nil {
		return nil, err
	}

	result := &RenderResult{
		FilesDiscovered: stats.FilesDiscovered,
		FilesScanned:    len(results),
		FilesSkipped:    stats.FilesSkipped,
	}

	for _, r := range results {
		if r.issue != nil {
			result.Issues = append(result.Issues, *r.issue)
			result.ErrorCount++
			continue
		}
		result.Blocks = append(result.Blocks, toRendered(r.file, r.eval))
	}

	return result, nil
}

// Check validates every definition and reports only the failures.
func Check(ctx context.Context, config Config) (*CheckResult, error) {
	results, stats, err := process(ctx, config)
	if err != nil {
		return nil, err
	}

	result := &CheckResult{
		FilesScanned: len(results),
		FilesSkipped: stats.FilesSkipped,
	}

	for _, r := range results {
		if r.issue != nil {
			result.Issues = append(result.Issues, *r.issue)
			result.ErrorCount++
			continue
		}
		result.BlocksChecked += 1 + len(r.eval.Extends)
	}

	return result, nil
}

// process discovers, decodes and evaluates definitions in discovery order
func process(ctx context.Context, config Config) ([]fileResult, blockfile.DiscoverStats, error) {
	logger := config.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	files, stats, err := blockfile.Discover(config.SourceDir, config.Includes, config.RespectGitignore)
	if err != nil {
		return nil, stats, fmt.Errorf("discover failed: %w", err)
	}
	logger.Debug("discovered block definitions", "dir", config.SourceDir, "files", len(files), "skipped", stats.FilesSkipped)

	results := make([]fileResult, 0, len(files))
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, stats, err
		}

		logger.Debug("evaluating", "file", file)
		r := processFile(file)
		if r.issue != nil {
			logger.Debug("definition rejected", "file", file, "err", r.issue.Text)
		}
		results = append(results, r)
	}

	return results, stats, nil
}

func processFile(file string) fileResult {
	r := fileResult{file: file}

	// #nosec G304 - path comes from discovery under the configured source dir
	content, err := os.ReadFile(file)
	if err != nil {
		r.issue = newIssue(IssuePos{Filename: file}, fmt.Sprintf("read file: %v", err), nil)
		return r
	}
	lines := strings.Split(string(content), "\n")

	def, err := blockfile.Parse(file, content)
	if err != nil {
		r.issue = issueFromError(file, err, lines)
		return r
	}

	eval, err := def.Evaluate()
	if err != nil {
		r.issue = issueFromError(file, err, lines)
		return r
	}
	r.eval = eval

	return r
}

func issueFromError(file string, err error, lines []string) *Issue {
	var decodeErr *blockfile.DecodeError
	if errors.As(err, &decodeErr) {
		return newIssue(issuePos(decodeErr.Pos), decodeErr.Msg, lines)
	}
	var evalErr *blockfile.EvalError
	if errors.As(err, &evalErr) {
		return newIssue(issuePos(evalErr.Pos), evalErr.Err.Error(), lines)
	}
	return newIssue(IssuePos{Filename: file}, err.Error(), lines)
}

func issuePos(p blockfile.Position) IssuePos {
	return IssuePos{Filename: p.Filename, Line: p.Line, Column: p.Column}
}

func newIssue(pos IssuePos, text string, lines []string) *Issue {
	issue := &Issue{
		FromLinter: LinterName,
		Text:       text,
		Severity:   SeverityError,
		Pos:        pos,
	}
	if pos.Line >= 1 && pos.Line <= len(lines) {
		issue.SourceLines = []string{lines[pos.Line-1]}
	}
	return issue
}

func toRendered(file string, eval *blockfile.Evaluation) Rendered {
	r := Rendered{
		File:     file,
		Classes:  eval.Classes,
		Elements: make([]RenderedElement, 0, len(eval.Elements)),
		Extends:  make([]RenderedExtension, 0, len(eval.Extends)),
	}
	for _, el := range eval.Elements {
		r.Elements = append(r.Elements, RenderedElement{Name: el.Name, Class: el.Class})
	}
	for _, ext := range eval.Extends {
		r.Extends = append(r.Extends, RenderedExtension{Extension: ext.Extension, Classes: ext.Classes})
	}
	return r
}
