package scan

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeDir(t *testing.T) {
	tests := []struct {
		name       string
		files      map[string]string
		mode       CountMode
		wantVars   int
		wantUnused []string
	}{
		{
			name:       "declared and used",
			files:      map[string]string{"a.scss": "$a: 1;\n.x { color: $a; }"},
			wantVars:   1,
			wantUnused: nil,
		},
		{
			name:       "declared only",
			files:      map[string]string{"a.scss": "$unused: red;\n.y { color: blue; }"},
			wantVars:   1,
			wantUnused: []string{"$unused"},
		},
		{
			name:       "no stylesheets",
			files:      map[string]string{"readme.md": "$not-scss: 1;\n"},
			wantVars:   0,
			wantUnused: nil,
		},
		{
			name: "use in another file",
			files: map[string]string{
				"_variables.scss": "$primary: blue;\n$secondary: gray;\n",
				"buttons.scss":    ".btn { color: $primary; }\n",
			},
			wantVars:   2,
			wantUnused: []string{"$secondary"},
		},
		{
			name:       "declared twice counts both declarations",
			files:      map[string]string{"a.scss": "$a: 1;\n$a: 2 !default;\n"},
			wantVars:   2,
			wantUnused: nil,
		},
		{
			// $gray only appears inside $gray-dark, yet literal counting sees it twice
			name:       "prefix inflation hides an unused variable",
			files:      map[string]string{"a.scss": "$gray: #ccc;\n$gray-dark: #333;\n.x { color: $gray-dark; }\n"},
			wantVars:   2,
			wantUnused: nil,
		},
		{
			name:       "latin-1 declaration used",
			files:      map[string]string{"a.scss": "$caf\xe9: 1;\n.x { color: $caf\xe9; }\n"},
			wantVars:   1,
			wantUnused: nil,
		},
		{
			name:       "latin-1 declaration unused",
			files:      map[string]string{"a.scss": "$caf\xe9: 1;\n$na\xefve: 2;\n.x { color: $na\xefve; }\n"},
			wantVars:   2,
			wantUnused: []string{"$caf\xe9"},
		},
		{
			name:       "token mode sees through prefix inflation",
			files:      map[string]string{"a.scss": "$gray: #ccc;\n$gray-dark: #333;\n.x { color: $gray-dark; }\n"},
			mode:       CountToken,
			wantVars:   2,
			wantUnused: []string{"$gray"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFiles(t, dir, tt.files)

			report, err := AnalyzeDir(dir, Config{CountMode: tt.mode})
			require.NoError(t, err)

			require.Equal(t, dir, report.Dir)
			require.Len(t, report.Variables, tt.wantVars)

			var unused []string
			for _, v := range report.Unused {
				unused = append(unused, v.Name)
			}
			require.Equal(t, tt.wantUnused, unused)
			require.Equal(t, len(tt.wantUnused) == 0, report.Clean())
		})
	}
}

func TestAnalyzeDir_LocatesUnusedDeclaration(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"a.scss":       ".x { color: $used; }\n",
		"b/_vars.scss": "$used: red;\n$orphan: blue;\n",
	})

	report, err := AnalyzeDir(dir, Config{})
	require.NoError(t, err)
	require.Len(t, report.Unused, 1)

	v := report.Unused[0]
	assert.Equal(t, "$orphan", v.Name)
	assert.Equal(t, 1, v.Count)
	assert.Equal(t, filepath.Join(dir, "b", "_vars.scss"), v.Location.File)
	assert.Equal(t, 2, v.Location.Line)
	assert.Equal(t, 1, v.Location.Column)
	assert.Equal(t, "$orphan: blue;", v.Location.Text)
}

func TestAnalyzeDir_NotADirectory(t *testing.T) {
	_, err := AnalyzeDir(filepath.Join(t.TempDir(), "nope"), Config{})
	require.ErrorIs(t, err, ErrNotADirectory)
}

func TestAnalyzeDir_Idempotent(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"a.scss": "$a: 1;\n$b: 2;\n.x { margin: $a; }\n",
		"c.scss": "$c: 3;\n",
	})

	first, err := AnalyzeDir(dir, Config{})
	require.NoError(t, err)
	second, err := AnalyzeDir(dir, Config{})
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestResultAdd(t *testing.T) {
	clean := DirReport{Dir: "clean", Variables: []Variable{{Name: "$a", Count: 2}}}
	dirty := DirReport{
		Dir:       "dirty",
		Variables: []Variable{{Name: "$b", Count: 1}},
		Unused:    []Variable{{Name: "$b", Count: 1}},
	}

	var result Result
	require.False(t, result.Dirty)

	result = result.Add(clean)
	require.False(t, result.Dirty)

	result = result.Add(dirty)
	require.True(t, result.Dirty)

	// Once dirty, stays dirty
	result = result.Add(clean)
	require.True(t, result.Dirty)
	require.Len(t, result.Dirs, 3)
	require.Equal(t, 1, result.UnusedCount())
}

func TestResultAddDoesNotShareBacking(t *testing.T) {
	base := Result{}.Add(DirReport{Dir: "a"})
	left := base.Add(DirReport{Dir: "b"})
	right := base.Add(DirReport{Dir: "c"})

	require.Equal(t, "b", left.Dirs[1].Dir)
	require.Equal(t, "c", right.Dirs[1].Dir)
	require.Len(t, base.Dirs, 1)
}
