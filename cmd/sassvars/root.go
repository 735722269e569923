package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/yacobolo/sassvars"
)

var (
	errUsage           = errors.New("wrong arguments\nUsage: sassvars <dir> [dir...]")
	errUnusedVariables = errors.New("unused variables found")
)

var rootCmd = &cobra.Command{
	Use:   "sassvars <dir> [dir...]",
	Short: "Find Sass variables that are declared but never used",
	Long: `Scan every .scss file under each directory and report variables
whose name occurs only once, i.e. in their own declaration.
Exits 1 when any unused variable is found.`,
	Args: func(_ *cobra.Command, args []string) error {
		if len(args) < 1 {
			return errUsage
		}
		return nil
	},
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if getBoolWithFallback("quiet", "quiet", false) {
			out = io.Discard
		}
		return runScan(out, args)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress all output (exit code only)")
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")
	rootCmd.PersistentFlags().String("config", defaultConfigPath, "Config file path")

	f := rootCmd.Flags()
	f.StringSlice("include", nil, "Glob patterns for stylesheet files, relative to each directory (default **/*.scss)")
	f.String("count-mode", "", "Occurrence counting: literal|token (default literal)")
	f.Bool("respect-gitignore", false, "Skip files matched by the directory's .gitignore")
	f.String("output-format", "", "Output format: text|issues|json (default text)")
	f.Bool("print-lines", true, "Show source lines with issues")
	f.Bool("print-linter-name", true, "Show (sassvars) suffix on issues")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}

// runScan analyzes every directory and writes the report to w.
// It returns errUnusedVariables when any variable is only used once.
func runScan(w io.Writer, dirs []string) error {
	config := buildScanConfig()
	output := buildOutputConfig()

	printer := sassvars.NewPrinter(w, output)
	result, err := sassvars.Run(dirs, config, printer)
	if err != nil {
		return err
	}

	if result.Dirty {
		return errUnusedVariables
	}
	return nil
}

// reportError prints err unless it only signals unused variables,
// which the report has already shown. It returns the process exit code.
func reportError(w io.Writer, err error) int {
	if err == nil {
		return 0
	}
	var notDir *sassvars.NotADirectoryError
	switch {
	case errors.Is(err, errUnusedVariables):
	case errors.As(err, &notDir):
		fmt.Fprintf(w, "%q: Not a valid directory!\n", notDir.Dir)
	default:
		fmt.Fprintln(w, capitalize(err.Error()))
	}
	return 1
}

func capitalize(s string) string {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
