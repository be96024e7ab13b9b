package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yacobolo/bem/internal/bemgen"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check block definition files for invalid names",
	Long: `Validate every block definition below the source directory.
Empty blocks, modifiers containing "--" and elements containing "__" are
reported golangci-lint style; any issue makes the command exit 1.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runCheck,
}

func init() {
	addSourceFlags(checkCmd)
	f := checkCmd.Flags()
	f.String("output-format", "", "Output format: issues|json (default: issues)")
	f.Bool("print-lines", true, "Show source lines with issues")
	f.Bool("print-linter-name", true, "Show (bemcheck) suffix on issues")
}

func runCheck(cmd *cobra.Command, _ []string) error {
	config := buildConfig()

	result, err := bemgen.Check(cmd.Context(), config)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	quiet := getBool("quiet", false)
	if !quiet {
		format := bemgen.DetermineOutputFormat(getString("check.format", ""), quiet, bemgen.OutputIssues)
		if err := bemgen.WriteCheckOutput(cmd.OutOrStdout(), result, format, buildReportOptions()); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	}

	config.Logger.Debug("check finished", "files", result.FilesScanned, "blocks", result.BlocksChecked, "errors", result.ErrorCount)

	if result.ErrorCount > 0 {
		return errIssuesFound
	}
	return nil
}
