package scan

import (
	"fmt"
	"io"
)

// OutputFormat represents the report output format
type OutputFormat string

const (
	// OutputText prints progress and result lines per directory (default)
	OutputText OutputFormat = "text"
	// OutputIssues prints flagged variables in golangci-lint format (CI-friendly)
	OutputIssues OutputFormat = "issues"
	// OutputJSON exports structured data in JSON format (tooling integration)
	OutputJSON OutputFormat = "json"
)

// OutputConfig controls how results are written
type OutputConfig struct {
	Format           OutputFormat
	Writer           io.Writer // Destination; used for TTY color detection
	UseColors        bool
	PrintIssuedLines bool
	PrintLinterName  bool
}

// DetermineOutputFormat maps a format flag to an OutputFormat.
// Unknown or empty values fall back to the text format.
func DetermineOutputFormat(formatFlag string) OutputFormat {
	switch formatFlag {
	case "issues":
		return OutputIssues
	case "json":
		return OutputJSON
	default:
		return OutputText
	}
}

// Printer writes results as directories are analyzed. Text output is streamed per
// directory; issues and JSON output are written once the run is finished.
type Printer struct {
	w        io.Writer
	format   OutputFormat
	reporter *Reporter
}

// NewPrinter creates a printer for the given configuration
func NewPrinter(w io.Writer, config OutputConfig) *Printer {
	if config.Writer == nil {
		config.Writer = w
	}
	return &Printer{
		w:        w,
		format:   config.Format,
		reporter: NewReporter(w, config),
	}
}

// Start is called before a directory is loaded
func (p *Printer) Start(dir string) {
	if p.format == OutputText {
		p.reporter.PrintStart(dir)
	}
}

// Directory is called after a directory has been analyzed
func (p *Printer) Directory(report DirReport) {
	if p.format == OutputText {
		p.reporter.PrintDirectory(report)
	}
}

// Finish is called once every directory has been analyzed
func (p *Printer) Finish(result Result) error {
	switch p.format {
	case OutputIssues:
		p.reporter.PrintIssues(result.Issues())
		p.reporter.PrintSummary(result)
	case OutputJSON:
		if err := WriteJSON(p.w, result); err != nil {
			return fmt.Errorf("writing JSON: %w", err)
		}
	}
	return nil
}
