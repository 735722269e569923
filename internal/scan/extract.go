package scan

import (
	"regexp"
	"strings"
)

// declarationPattern matches a line starting with the `$` sigil and an identifier
// character. The declaration name runs up to the first colon on the line.
var declarationPattern = regexp.MustCompile(`(?m)^\$[a-zA-Z0-9_-][^:\n]*`)

// ExtractVariables returns the declared variable names found at the start of lines
// in corpus order. Duplicates are kept.
//
// Matching is a line-prefix check with no understanding of nesting, comments or
// interpolation, so `$` lines that are not declarations are matched too and
// declarations that do not start a line are missed.
func ExtractVariables(corpus string) []string {
	matches := declarationPattern.FindAllString(corpus, -1)
	if len(matches) == 0 {
		return nil
	}

	// Only the ends of the joined set are trimmed, inner names keep their whitespace
	joined := strings.TrimSpace(strings.Join(matches, "\n"))
	if joined == "" {
		return nil
	}
	return strings.Split(joined, "\n")
}

// declarationOffsets returns the corpus offset of every extracted declaration,
// parallel to ExtractVariables.
func declarationOffsets(corpus string) []int {
	idx := declarationPattern.FindAllStringIndex(corpus, -1)
	offsets := make([]int, len(idx))
	for i, m := range idx {
		offsets[i] = m[0]
	}
	return offsets
}
