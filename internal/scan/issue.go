package scan

import "fmt"

// LinterName is the suffix shown on issues and the linter field in JSON output
const LinterName = "sassvars"

// Issue represents a single unused variable in golangci-lint format
type Issue struct {
	FromLinter  string   `json:"FromLinter"`  // "sassvars"
	Text        string   `json:"Text"`        // "variable \"$brand\" is only used once"
	Severity    string   `json:"Severity"`    // "error"
	SourceLines []string `json:"SourceLines"` // Declaration line
	Pos         IssuePos `json:"Pos"`         // File location
}

// IssuePos specifies the exact location of an issue
type IssuePos struct {
	Filename string `json:"Filename"` // "scss/_variables.scss"
	Line     int    `json:"Line"`     // 12
	Column   int    `json:"Column"`   // 1
}

// SeverityError is the severity of every unused variable issue
const SeverityError = "error"

// IssueUnusedVariable is the message template for a flagged variable
const IssueUnusedVariable = "variable %q is only used once"

// NewIssue converts a flagged variable into an Issue
func NewIssue(v Variable) Issue {
	issue := Issue{
		FromLinter: LinterName,
		Text:       fmt.Sprintf(IssueUnusedVariable, v.Name),
		Severity:   SeverityError,
		Pos: IssuePos{
			Filename: v.Location.File,
			Line:     v.Location.Line,
			Column:   v.Location.Column,
		},
	}
	if v.Location.Text != "" {
		issue.SourceLines = []string{v.Location.Text}
	}
	return issue
}

// Issues collects an Issue for every flagged variable in the result
func (r Result) Issues() []Issue {
	issues := make([]Issue, 0, r.UnusedCount())
	for _, d := range r.Dirs {
		for _, v := range d.Unused {
			issues = append(issues, NewIssue(v))
		}
	}
	return issues
}
