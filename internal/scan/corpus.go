package scan

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// SourceFile is one stylesheet inside a corpus
type SourceFile struct {
	Path   string // Path joined with the scanned directory
	Offset int    // Byte offset of the file's first byte within Corpus.Text
	Size   int
}

// Corpus is the concatenated content of every matched stylesheet under a directory
type Corpus struct {
	Dir     string
	Files   []SourceFile
	Text    string
	Skipped int // Files dropped by .gitignore
}

// LoadCorpus collects every file under dir matching the configured include patterns
// and concatenates their contents, with no separator, in traversal order.
func LoadCorpus(dir string, config Config) (*Corpus, error) {
	if err := CheckDir(dir); err != nil {
		return nil, err
	}

	paths, skipped, err := matchFiles(dir, config)
	if err != nil {
		return nil, err
	}

	corpus := &Corpus{Dir: dir, Skipped: skipped}
	var text strings.Builder
	for _, rel := range paths {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		// #nosec G304 - path comes from a glob rooted at the scanned directory
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read file: %w", err)
		}
		corpus.Files = append(corpus.Files, SourceFile{
			Path:   path,
			Offset: text.Len(),
			Size:   len(content),
		})
		text.Write(content)
	}
	corpus.Text = text.String()

	if config.Verbose {
		fmt.Fprintf(os.Stderr, "✓ Loaded %d files from %s (skipped %d ignored files)\n",
			len(corpus.Files), dir, corpus.Skipped)
	}

	return corpus, nil
}

// CheckDir returns ErrNotADirectory when dir does not exist or is not a directory.
func CheckDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return &NotADirectoryError{Dir: dir}
	}
	return nil
}

// matchFiles expands the include patterns relative to dir.
// Returned paths are slash-separated and relative to dir.
func matchFiles(dir string, config Config) ([]string, int, error) {
	fsys := os.DirFS(dir)
	gi := loadGitIgnore(dir, config.RespectGitignore)

	var files []string
	seen := make(map[string]bool)
	skipped := 0

	for _, pattern := range config.includes() {
		matches, err := doublestar.Glob(fsys, pattern)
		if err != nil {
			return nil, 0, fmt.Errorf("expand pattern %q: %w", pattern, err)
		}
		sort.Strings(matches)

		for _, match := range matches {
			if seen[match] {
				continue
			}
			seen[match] = true

			info, err := fs.Stat(fsys, match)
			if err != nil {
				return nil, 0, fmt.Errorf("stat %s: %w", match, err)
			}
			if info.IsDir() {
				continue
			}
			if gi != nil && gi.MatchesPath(match) {
				skipped++
				continue
			}
			files = append(files, match)
		}
	}

	return files, skipped, nil
}

// loadGitIgnore compiles <dir>/.gitignore when enabled.
// A missing .gitignore disables filtering.
func loadGitIgnore(dir string, enabled bool) *ignore.GitIgnore {
	if !enabled {
		return nil
	}
	gi, err := ignore.CompileIgnoreFile(filepath.Join(dir, ".gitignore"))
	if err != nil {
		return nil
	}
	return gi
}

// Position maps a byte offset in the corpus text back to a source location.
// Line and column are 1-based.
func (c *Corpus) Position(offset int) Location {
	if offset < 0 || offset > len(c.Text) {
		return Location{}
	}

	lineStart := strings.LastIndexByte(c.Text[:offset], '\n') + 1
	lineEnd := strings.IndexByte(c.Text[offset:], '\n')
	if lineEnd < 0 {
		lineEnd = len(c.Text)
	} else {
		lineEnd += offset
	}
	loc := Location{
		Line:   1,
		Column: offset - lineStart + 1,
		Text:   strings.TrimRight(c.Text[lineStart:lineEnd], "\r"),
	}

	for _, f := range c.Files {
		if offset >= f.Offset && offset < f.Offset+f.Size {
			loc.File = f.Path
			loc.Line = strings.Count(c.Text[f.Offset:offset], "\n") + 1
			// A line may begin in a previous file when that file lacks a trailing newline
			if lineStart < f.Offset {
				loc.Column = offset - f.Offset + 1
			}
			return loc
		}
	}

	return loc
}
