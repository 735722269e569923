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
	"github.com/yacobolo/sassvars"
)

const defaultConfigPath = ".sassvars.yaml"

var k = koanf.New(".")

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags (highest precedence — only flags that were explicitly set)
	flags := cmd.Flags()
	provider := posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
		if !f.Changed {
			return "", nil
		}
		return f.Name, posflag.FlagVal(flags, f)
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

	// 2. Environment variables (SASSVARS_* prefix)
	if err := k.Load(env.Provider("SASSVARS_", ".", envKey), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// envKey maps an environment variable to a config key.
// The first word selects a section when it names one:
//
//	SASSVARS_SCAN_COUNT_MODE -> scan.count-mode
//	SASSVARS_OUTPUT_FORMAT -> output.format
//	SASSVARS_VERBOSE -> verbose
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, "SASSVARS_"))
	for _, section := range []string{"scan", "output"} {
		if rest, ok := strings.CutPrefix(key, section+"_"); ok {
			return section + "." + strings.ReplaceAll(rest, "_", "-")
		}
	}
	return strings.ReplaceAll(key, "_", "-")
}

// buildScanConfig constructs the library's Config struct from koanf state.
func buildScanConfig() sassvars.Config {
	config := sassvars.Config{
		RespectGitignore: getBoolWithFallback("respect-gitignore", "scan.respect-gitignore", false),
		CountMode:        sassvars.ParseCountMode(getStringWithFallback("count-mode", "scan.count-mode", string(sassvars.CountLiteral))),
		Verbose:          getBoolWithFallback("verbose", "verbose", false),
	}

	// Handle includes: check flag key first, then config key
	if includes := k.Strings("include"); len(includes) > 0 {
		config.Includes = includes
	} else if includes := k.Strings("scan.include"); len(includes) > 0 {
		config.Includes = includes
	} else {
		config.Includes = []string{sassvars.DefaultInclude}
	}

	return config
}

// buildOutputConfig constructs the library's OutputConfig struct from koanf state.
func buildOutputConfig() sassvars.OutputConfig {
	return sassvars.OutputConfig{
		Format:           sassvars.DetermineOutputFormat(getStringWithFallback("output-format", "output.format", "text")),
		UseColors:        getBoolWithFallback("color", "color", false),
		PrintIssuedLines: getBoolWithFallback("print-lines", "output.print-lines", true),
		PrintLinterName:  getBoolWithFallback("print-linter-name", "output.print-linter-name", true),
	}
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}
