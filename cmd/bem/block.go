package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yacobolo/bem"
)

var blockCmd = &cobra.Command{
	Use:   "block NAME [MODIFIER...]",
	Short: "Render the class names of a single block",
	Long: `Render a block and its modifiers without a definition file.

  bem block card featured             # card card--featured
  bem block card --element title      # card__title
  bem block card --extend header wide # card-header card-header--wide`,
	Args: cobra.MinimumNArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runBlock,
}

func init() {
	f := blockCmd.Flags()
	f.String("extend", "", "Derive block-EXTENSION; modifiers apply to the derived block")
	f.StringSlice("element", nil, "Print element classes instead of the block classes")
}

func runBlock(cmd *cobra.Command, args []string) error {
	extension, _ := cmd.Flags().GetString("extend")
	elements, _ := cmd.Flags().GetStringSlice("element")

	classes, err := buildBlock(args[0], args[1:], extension)
	if err != nil {
		return err
	}

	out := classes.Render()
	if len(elements) > 0 {
		if out, err = classes.Element(elements...); err != nil {
			return err
		}
	}

	if !getBool("quiet", false) {
		fmt.Fprintln(cmd.OutOrStdout(), out)
	}
	return nil
}

// buildBlock applies modifiers to the block, or to block-extension when set
func buildBlock(block string, modifiers []string, extension string) (bem.ClassNames, error) {
	if extension == "" {
		return bem.Block(block, modifiers...)
	}
	base, err := bem.Block(block)
	if err != nil {
		return bem.ClassNames{}, err
	}
	return base.Extend(extension, modifiers...)
}
