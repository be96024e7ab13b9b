package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/yacobolo/bem/internal/bemgen"
	"github.com/yacobolo/bem/internal/blockfile"
)

var k = koanf.New(".")

// Flags whose config key differs from the flag name
var flagKeys = map[string]map[string]string{
	"render": {
		"output-format": "render.format",
	},
	"check": {
		"output-format":     "check.format",
		"print-lines":       "check.print-lines",
		"print-linter-name": "check.print-linter-name",
	},
}

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = ".bem.yaml"
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags (highest precedence, only flags that were explicitly set)
	keys := flagKeys[cmd.Name()]
	provider := posflag.ProviderWithFlag(cmd.Flags(), ".", k, func(f *pflag.Flag) (string, interface{}) {
		if !f.Changed {
			return "", nil
		}
		key := f.Name
		if mapped, ok := keys[f.Name]; ok {
			key = mapped
		}
		return key, posflag.FlagVal(cmd.Flags(), f)
	})
	if err := k.Load(provider, nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (BEM_* prefix)
	if err := k.Load(env.Provider("BEM_", ".", func(s string) string {
		// BEM_SOURCE -> source
		// BEM_RENDER_FORMAT -> render.format
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "BEM_")),
			"_", ".",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// buildConfig constructs the orchestration Config from koanf state.
func buildConfig() bemgen.Config {
	config := bemgen.Config{
		SourceDir:        getString("source", "."),
		RespectGitignore: getBool("gitignore", true),
		Logger:           newLogger(),
	}

	if includes := k.Strings("include"); len(includes) > 0 {
		config.Includes = includes
	} else {
		config.Includes = blockfile.DefaultIncludes
	}

	return config
}

// buildReportOptions constructs reporter options from koanf state.
func buildReportOptions() bemgen.ReportOptions {
	return bemgen.ReportOptions{
		UseColors:        useColors(),
		PrintIssuedLines: getBool("check.print-lines", true),
		PrintLinterName:  getBool("check.print-linter-name", true),
	}
}

// getString returns the koanf value for key, or defaultVal when unset or empty.
func getString(key, defaultVal string) string {
	if v := k.String(key); v != "" {
		return v
	}
	return defaultVal
}

// getBool returns the koanf value for key, or defaultVal when unset.
func getBool(key string, defaultVal bool) bool {
	if k.Exists(key) {
		return k.Bool(key)
	}
	return defaultVal
}
