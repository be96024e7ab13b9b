// Package main provides the bem CLI for rendering and checking BEM block definitions.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/yacobolo/bem/internal/bemgen"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Issues were already reported; only the exit code is left to set
		if !errors.Is(err, errIssuesFound) {
			fmt.Fprintln(os.Stderr, bemgen.RenderStyle(bemgen.StyleRed, "Error: "+err.Error(), useColors()))
		}
		os.Exit(1)
	}
}
