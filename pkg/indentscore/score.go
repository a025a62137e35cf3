// Package indentscore scores where a diff hunk should start and end, based on
// the blank lines and indentation around each boundary. Among several
// equivalent placements of a hunk, the one with the lowest score reads most
// naturally.
package indentscore

import "cmp"

// Weights for Score.Add. Larger values make a split less favourable. Only the
// relative sizes matter; they were tuned against a corpus of human-rated
// diffs and must not be changed.
const (
	startOfFilePenalty = 1  // no non-blank lines before the split
	endOfFilePenalty   = 21 // no non-blank lines after the split
	totalBlankWeight   = -30
	postBlankWeight    = 6

	relativeIndentPenalty          = -4 // indented more than the predecessor
	relativeIndentWithBlankPenalty = 10

	relativeOutdentPenalty          = 24 // indented less than predecessor and successor
	relativeOutdentWithBlankPenalty = 17

	relativeDedentPenalty          = 23 // indented less than predecessor, not less than successor
	relativeDedentWithBlankPenalty = 17
)

// indentWeight scales the sign of the effective indent difference in Compare.
const indentWeight = 60

// Add folds the measurement m into s and returns the result.
func (s Score) Add(m Measurement) Score {
	if m.PreIndent == -1 && m.PreBlank == 0 {
		s.Penalty += startOfFilePenalty
	}
	if m.EndOfFile {
		s.Penalty += endOfFilePenalty
	}

	// Blank lines after the split, counting the line right after it.
	postBlank := 0
	if m.Indent == -1 {
		postBlank = 1 + m.PostBlank
	}
	totalBlank := m.PreBlank + postBlank

	s.Penalty += totalBlankWeight * totalBlank
	s.Penalty += postBlankWeight * postBlank

	indent := m.Indent
	if indent == -1 {
		indent = m.PostIndent
	}
	anyBlanks := totalBlank != 0

	// -1 at the end of the file.
	s.EffectiveIndent += indent

	switch {
	case indent == -1, m.PreIndent == -1:
	case indent > m.PreIndent:
		s.Penalty += pick(anyBlanks, relativeIndentWithBlankPenalty, relativeIndentPenalty)
	case indent == m.PreIndent:
	case m.PostIndent != -1 && m.PostIndent > indent:
		// Less indented than the line above but the next one is indented
		// again: probably the start of a block, like an else branch.
		s.Penalty += pick(anyBlanks, relativeOutdentWithBlankPenalty, relativeOutdentPenalty)
	default:
		// Probably the end of a block.
		s.Penalty += pick(anyBlanks, relativeDedentWithBlankPenalty, relativeDedentPenalty)
	}
	return s
}

func pick(cond bool, a, b int) int {
	if cond {
		return a
	}
	return b
}

// ScoreHunk scores a hunk whose boundaries lie directly above lines[start]
// and lines[end]. Both must be within [0, len(lines)].
func ScoreHunk(lines []string, start, end int) Score {
	return Score{}.
		Add(MeasureSplit(lines, end)).
		Add(MeasureSplit(lines, start))
}

// Compare returns a negative number if a is a better split than b, zero if
// they are equally good and a positive number if b is better. Effective
// indents only contribute by the sign of their difference.
func Compare(a, b Score) int {
	return indentWeight*cmp.Compare(a.EffectiveIndent, b.EffectiveIndent) + a.Penalty - b.Penalty
}

// Better reports whether s is strictly better than other.
func (s Score) Better(other Score) bool {
	return Compare(s, other) < 0
}
