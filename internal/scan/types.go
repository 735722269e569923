// Package scan finds Sass variables that are declared but never referenced.
package scan

import (
	"errors"
	"fmt"
)

// ErrNotADirectory is returned when a scan target is missing or is not a directory.
var ErrNotADirectory = errors.New("not a valid directory")

// NotADirectoryError reports the directory that failed the check.
// It matches ErrNotADirectory with errors.Is.
type NotADirectoryError struct {
	Dir string
}

func (e *NotADirectoryError) Error() string {
	return fmt.Sprintf("%q: %v", e.Dir, ErrNotADirectory)
}

func (e *NotADirectoryError) Unwrap() error {
	return ErrNotADirectory
}

// DefaultInclude is the pattern used when no include patterns are configured.
const DefaultInclude = "**/*.scss"

// CountMode selects how variable occurrences are counted
type CountMode string

const (
	// CountLiteral counts raw substring occurrences of the variable name
	CountLiteral CountMode = "literal"
	// CountToken counts only `$name` tokens produced by the CSS lexer
	CountToken CountMode = "token"
)

// ParseCountMode maps a config value to a CountMode. Unknown values fall back to literal.
func ParseCountMode(s string) CountMode {
	if CountMode(s) == CountToken {
		return CountToken
	}
	return CountLiteral
}

// Config holds scanner configuration
type Config struct {
	Includes         []string  // ["**/*.scss"]
	RespectGitignore bool      // Skip files matched by <dir>/.gitignore
	CountMode        CountMode // "literal" (default) or "token"
	Verbose          bool      // Print loader diagnostics to stderr
}

func (c Config) includes() []string {
	if len(c.Includes) == 0 {
		return []string{DefaultInclude}
	}
	return c.Includes
}

// Location is where a variable declaration starts
type Location struct {
	File   string
	Line   int
	Column int
	Text   string // Full line content for source display
}

// Variable is one extracted declaration with its usage count
type Variable struct {
	Name     string
	Count    int
	Location Location
}

// Unused reports whether the declaration is the only occurrence of the name.
func (v Variable) Unused() bool {
	return v.Count == 1
}

// DirReport is the outcome of analyzing one directory
type DirReport struct {
	Dir       string
	Files     int
	Variables []Variable // Every extracted declaration, corpus order
	Unused    []Variable // Subset of Variables with Count == 1
}

// Clean reports whether the directory had no unused variables.
func (r DirReport) Clean() bool {
	return len(r.Unused) == 0
}

// Result accumulates directory reports for a whole run.
// The zero value is a clean, empty result.
type Result struct {
	Dirs  []DirReport
	Dirty bool
}

// Add returns a copy of r with report appended. Once dirty, a result stays dirty.
func (r Result) Add(report DirReport) Result {
	dirs := make([]DirReport, len(r.Dirs), len(r.Dirs)+1)
	copy(dirs, r.Dirs)
	return Result{
		Dirs:  append(dirs, report),
		Dirty: r.Dirty || !report.Clean(),
	}
}

// UnusedCount returns the number of flagged variables across all directories.
func (r Result) UnusedCount() int {
	n := 0
	for _, d := range r.Dirs {
		n += len(d.Unused)
	}
	return n
}
