package indentscore

// MaxBlanks bounds the number of consecutive blank lines MeasureSplit looks
// at in either direction.
const MaxBlanks = 20

// MeasureSplit measures a hypothetical split directly above lines[split].
// split must be within [0, len(lines)]; len(lines) is the end of file.
//
// When a run of MaxBlanks blank lines is reached the scan stops and the
// neighbouring indent is reported as 0, not -1.
func MeasureSplit(lines []string, split int) Measurement {
	m := Measurement{}
	if split >= len(lines) {
		m.EndOfFile = true
		m.Indent = -1
	} else {
		m.Indent = IndentOf(lines[split])
	}

	m.PreIndent = -1
	for i := split - 1; i >= 0; i-- {
		m.PreIndent = IndentOf(lines[i])
		if m.PreIndent != -1 {
			break
		}
		m.PreBlank++
		if m.PreBlank == MaxBlanks {
			m.PreIndent = 0
			break
		}
	}

	m.PostIndent = -1
	for i := split + 1; i < len(lines); i++ {
		m.PostIndent = IndentOf(lines[i])
		if m.PostIndent != -1 {
			break
		}
		m.PostBlank++
		if m.PostBlank == MaxBlanks {
			m.PostIndent = 0
			break
		}
	}
	return m
}
