package scan

import (
	"encoding/json"
	"io"
)

// JSONOutput represents the structured JSON export schema
type JSONOutput struct {
	Version     string          `json:"version"`
	Success     bool            `json:"success"`
	Summary     JSONSummary     `json:"summary"`
	Directories []JSONDirectory `json:"directories"`
	Issues      []JSONIssue     `json:"issues"`
}

// JSONSummary contains run-wide counts
type JSONSummary struct {
	Directories     int `json:"directories"`
	FilesScanned    int `json:"files_scanned"`
	TotalVariables  int `json:"total_variables"`
	UnusedVariables int `json:"unused_variables"`
}

// JSONDirectory contains the result for one scanned directory
type JSONDirectory struct {
	Path      string   `json:"path"`
	Files     int      `json:"files"`
	Variables int      `json:"variables"`
	Unused    []string `json:"unused"`
}

// JSONIssue represents a single flagged variable
type JSONIssue struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Linter   string `json:"linter"`
	Source   string `json:"source,omitempty"` // Optional source line
}

// WriteJSON writes the scan result as JSON
func WriteJSON(w io.Writer, result Result) error {
	output := buildJSONOutput(result)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// buildJSONOutput converts Result to JSONOutput
func buildJSONOutput(result Result) JSONOutput {
	output := JSONOutput{
		Version:     "1.0",
		Success:     !result.Dirty,
		Directories: make([]JSONDirectory, 0, len(result.Dirs)),
	}

	for _, d := range result.Dirs {
		unused := make([]string, len(d.Unused))
		for i, v := range d.Unused {
			unused[i] = v.Name
		}
		output.Directories = append(output.Directories, JSONDirectory{
			Path:      d.Dir,
			Files:     d.Files,
			Variables: len(d.Variables),
			Unused:    unused,
		})
		output.Summary.FilesScanned += d.Files
		output.Summary.TotalVariables += len(d.Variables)
	}
	output.Summary.Directories = len(result.Dirs)
	output.Summary.UnusedVariables = result.UnusedCount()

	issues := result.Issues()
	output.Issues = make([]JSONIssue, len(issues))
	for i, issue := range issues {
		source := ""
		if len(issue.SourceLines) > 0 {
			source = issue.SourceLines[0]
		}
		output.Issues[i] = JSONIssue{
			File:     issue.Pos.Filename,
			Line:     issue.Pos.Line,
			Column:   issue.Pos.Column,
			Severity: issue.Severity,
			Message:  issue.Text,
			Linter:   issue.FromLinter,
			Source:   source,
		}
	}

	return output
}
