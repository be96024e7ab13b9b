package main

import (
	"errors"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// errIssuesFound makes the CLI exit 1 after issues have been printed
var errIssuesFound = errors.New("block definitions have errors")

var rootCmd = &cobra.Command{
	Use:   "bem",
	Short: "BEM class name renderer and checker",
	Long: `Render BEM class names ("block block--modifier", "block__element")
from declarative block definitions and check them for naming errors.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress all output (exit code only)")
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")
	rootCmd.PersistentFlags().String("config", ".bem.yaml", "Config file path")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(blockCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}

// newLogger returns the stderr logger, at debug level when verbose is set
func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "bem",
		Level:  log.WarnLevel,
	})
	if getBool("verbose", false) {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

func useColors() bool {
	return getBool("color", false)
}
