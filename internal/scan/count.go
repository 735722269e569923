package scan

import (
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// CountUsages counts non-overlapping, case-sensitive literal occurrences of name in
// corpus. Names are never interpreted as patterns, so metacharacters and bytes that
// are not valid UTF-8 match as-is. There is no word-boundary anchoring: `$a` is
// also counted inside `$ab`.
func CountUsages(corpus, name string) int {
	if name == "" {
		return 0
	}
	return strings.Count(corpus, name)
}

// CountTokens counts `$name` references using the CSS lexer. Only a `$` delimiter
// immediately followed by a token whose text equals the rest of name is counted, so
// block comments, quoted strings and longer identifiers sharing the prefix are ignored.
func CountTokens(corpus, name string) int {
	if len(name) < 2 || name[0] != '$' {
		return 0
	}
	want := name[1:]

	lexer := css.NewLexer(parse.NewInputString(corpus))
	count := 0
	afterSigil := false
	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			// ErrorToken at EOF is normal
			break
		}
		if afterSigil && string(text) == want {
			count++
		}
		afterSigil = tt == css.DelimToken && len(text) == 1 && text[0] == '$'
	}
	return count
}

// count dispatches on the configured CountMode.
func count(mode CountMode, corpus, name string) int {
	if mode == CountToken {
		return CountTokens(corpus, name)
	}
	return CountUsages(corpus, name)
}
