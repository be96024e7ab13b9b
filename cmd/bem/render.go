package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yacobolo/bem/internal/bemgen"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render class names from block definition files",
	Long: `Evaluate every block definition (*.bem.yaml) below the source directory
and print the resulting class names, element classes and extended blocks.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runRender,
}

func init() {
	addSourceFlags(renderCmd)
	renderCmd.Flags().String("output-format", "", "Output format: text|issues|json (default: text)")
}

// addSourceFlags registers the discovery flags shared by render and check
func addSourceFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("source", ".", "Directory to search for block definitions")
	f.StringSlice("include", nil, "Glob patterns for definition files (default: **/*.bem.yaml, **/*.bem.yml)")
	f.Bool("gitignore", true, "Skip files matched by the source directory's .gitignore")
}

func runRender(cmd *cobra.Command, _ []string) error {
	config := buildConfig()

	result, err := bemgen.Render(cmd.Context(), config)
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	quiet := getBool("quiet", false)
	if !quiet {
		format := bemgen.DetermineOutputFormat(getString("render.format", ""), quiet, bemgen.OutputText)
		if err := bemgen.WriteRenderOutput(cmd.OutOrStdout(), result, format, buildReportOptions()); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	}

	if result.ErrorCount > 0 {
		return errIssuesFound
	}
	return nil
}
