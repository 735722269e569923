package scan

// AnalyzeDir loads the corpus under dir and counts every extracted declaration.
// A variable is flagged when its count is exactly one.
func AnalyzeDir(dir string, config Config) (DirReport, error) {
	corpus, err := LoadCorpus(dir, config)
	if err != nil {
		return DirReport{}, err
	}
	return Analyze(corpus, config.CountMode), nil
}

// Analyze runs extraction and counting over an already loaded corpus.
func Analyze(corpus *Corpus, mode CountMode) DirReport {
	report := DirReport{
		Dir:   corpus.Dir,
		Files: len(corpus.Files),
	}

	names := ExtractVariables(corpus.Text)
	offsets := declarationOffsets(corpus.Text)

	report.Variables = make([]Variable, 0, len(names))
	for i, name := range names {
		v := Variable{
			Name:  name,
			Count: count(mode, corpus.Text, name),
		}
		if i < len(offsets) {
			v.Location = corpus.Position(offsets[i])
		}
		report.Variables = append(report.Variables, v)
		if v.Unused() {
			report.Unused = append(report.Unused, v)
		}
	}

	return report
}
