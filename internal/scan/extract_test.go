package scan

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractVariables(t *testing.T) {
	tests := []struct {
		name   string
		corpus string
		want   []string
	}{
		{
			name:   "declaration and use",
			corpus: "$a: 1;\n.x { color: $a; }",
			want:   []string{"$a"},
		},
		{
			name:   "bootstrap style declarations",
			corpus: "$enable-shadows:   false !default;\n$theme-colors: map-merge((\"primary\": $blue), $theme-colors);\n",
			want:   []string{"$enable-shadows", "$theme-colors"},
		},
		{
			name:   "duplicates are kept in order",
			corpus: "$a: 1;\n$b: 2;\n$a: 3;\n",
			want:   []string{"$a", "$b", "$a"},
		},
		{
			name:   "identifier characters",
			corpus: "$_private: 1;\n$1col: 2;\n$-neg: 3;\n",
			want:   []string{"$_private", "$1col", "$-neg"},
		},
		{
			name:   "indented declarations are missed",
			corpus: ".x {\n  $local: 1;\n}\n",
			want:   nil,
		},
		{
			name:   "interpolation at line start is not an identifier",
			corpus: "$#{$prefix}: 1;\n",
			want:   nil,
		},
		{
			name:   "line without colon keeps the whole line",
			corpus: "$a: 1;\n$map-get($m, k)\n",
			want:   []string{"$a", "$map-get($m, k)"},
		},
		{
			name:   "inner names keep whitespace before the colon",
			corpus: "$b : 1;\n$c: 2;\n",
			want:   []string{"$b ", "$c"},
		},
		{
			name:   "last name is trimmed",
			corpus: "$c: 2;\n$b : 1;\n",
			want:   []string{"$c", "$b"},
		},
		{
			name:   "crlf line endings",
			corpus: "$a: 1;\r\n$b\r\n",
			want:   []string{"$a", "$b"},
		},
		{
			name:   "no declarations",
			corpus: ".x { color: red; }\n",
			want:   nil,
		},
		{
			name:   "empty corpus",
			corpus: "",
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractVariables(tt.corpus)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestDeclarationOffsetsParallelExtraction(t *testing.T) {
	corpus := ".x {}\n$a: 1;\n$bb: 2;\n"

	names := ExtractVariables(corpus)
	offsets := declarationOffsets(corpus)

	require.Len(t, offsets, len(names))
	require.Equal(t, []int{6, 13}, offsets)
	for i, name := range names {
		require.Equal(t, name, corpus[offsets[i]:offsets[i]+len(name)])
	}
}
