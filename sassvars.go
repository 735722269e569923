// Package sassvars finds Sass variables that are declared but never used.
//
// Every `.scss` file under a directory is concatenated into one corpus. Lines
// starting with `$name` are treated as declarations, and a declaration whose name
// occurs exactly once in the corpus (the declaration itself) is flagged.
//
// # Usage
//
//	result, err := sassvars.Run([]string{"scss", "site/assets/scss"}, sassvars.Config{}, nil)
//	if err != nil {
//		// a directory was missing or unreadable
//	}
//	if result.Dirty {
//		// at least one variable is only used once
//	}
//
// # Counting
//
// The default literal mode counts raw substring occurrences with no word
// boundaries, so `$gray` is also counted inside `$gray-100`. The token mode
// uses a CSS lexer and only counts whole `$name` tokens outside comments and strings.
//
// # CLI Tool
//
//	go install github.com/yacobolo/sassvars/cmd/sassvars@latest
package sassvars

import (
	"github.com/yacobolo/sassvars/internal/scan"
)

type (
	// Config holds scanner configuration
	Config = scan.Config
	// Result accumulates directory reports for a whole run
	Result = scan.Result
	// DirReport is the outcome of analyzing one directory
	DirReport = scan.DirReport
	// Printer writes results as directories are analyzed
	Printer = scan.Printer
	// OutputConfig controls how results are written
	OutputConfig = scan.OutputConfig
	// CountMode selects how variable occurrences are counted
	CountMode = scan.CountMode
	// NotADirectoryError reports the directory that failed the check
	NotADirectoryError = scan.NotADirectoryError
)

// Include default, count modes and output formats
const (
	DefaultInclude = scan.DefaultInclude

	CountLiteral = scan.CountLiteral
	CountToken   = scan.CountToken

	OutputText   = scan.OutputText
	OutputIssues = scan.OutputIssues
	OutputJSON   = scan.OutputJSON
)

var (
	// NewPrinter creates a printer for the given configuration
	NewPrinter = scan.NewPrinter
	// DetermineOutputFormat maps a format flag to an output format
	DetermineOutputFormat = scan.DetermineOutputFormat
	// ParseCountMode maps a config value to a count mode
	ParseCountMode = scan.ParseCountMode
)

// ErrNotADirectory is returned when a scan target is missing or is not a directory.
var ErrNotADirectory = scan.ErrNotADirectory

// Run analyzes each directory in order and returns the accumulated result.
// It stops at the first directory that cannot be loaded. When printer is not
// nil, each directory is reported as soon as it has been analyzed.
func Run(dirs []string, config Config, printer *Printer) (Result, error) {
	var result Result
	for _, dir := range dirs {
		if err := scan.CheckDir(dir); err != nil {
			return result, err
		}
		if printer != nil {
			printer.Start(dir)
		}

		report, err := scan.AnalyzeDir(dir, config)
		if err != nil {
			return result, err
		}

		if printer != nil {
			printer.Directory(report)
		}
		result = result.Add(report)
	}

	if printer != nil {
		if err := printer.Finish(result); err != nil {
			return result, err
		}
	}
	return result, nil
}
