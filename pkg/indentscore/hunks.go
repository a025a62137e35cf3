package indentscore

import (
	"log"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// SplitLines splits text into lines without their terminators. A final
// newline does not start an extra empty line, and a trailing "\r" is dropped
// so CRLF text measures like LF text.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// LineHunks computes a line-level diff of oldText and newText and returns
// its deletion and insertion runs in the order they appear.
func LineHunks(oldText, newText string) []Hunk {
	dmp := diffmatchpatch.New()
	chars1, chars2, lineArray := dmp.DiffLinesToChars(oldText, newText)
	diffs := dmp.DiffMain(chars1, chars2, false)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)
	return hunksFromDiffs(diffs)
}

// hunksFromDiffs walks line diffs keeping a running line number on each
// side. Adjacent ops of the same type are merged into a single hunk.
func hunksFromDiffs(diffs []diffmatchpatch.Diff) []Hunk {
	var hunks []Hunk
	oldLine, newLine := 0, 0
	for _, diff := range diffs {
		n := len(SplitLines(diff.Text))
		switch diff.Type {
		case diffmatchpatch.DiffEqual:
			oldLine += n
			newLine += n
		case diffmatchpatch.DiffDelete:
			hunks = appendHunk(hunks, Hunk{Op: OpDelete, Start: oldLine, End: oldLine + n})
			oldLine += n
		case diffmatchpatch.DiffInsert:
			hunks = appendHunk(hunks, Hunk{Op: OpInsert, Start: newLine, End: newLine + n})
			newLine += n
		}
	}
	log.Printf("DEBUG: Line hunks: %+v", hunks)
	return hunks
}

func appendHunk(hunks []Hunk, h Hunk) []Hunk {
	if h.Start == h.End {
		return hunks
	}
	for i := len(hunks) - 1; i >= 0; i-- {
		if hunks[i].Op != h.Op {
			continue
		}
		if hunks[i].End == h.Start {
			hunks[i].End = h.End
			return hunks
		}
		break
	}
	return append(hunks, h)
}

// AnalyzeHunks diffs oldText against newText and scores every hunk where it
// currently sits: deletions against the old lines, insertions against the
// new lines.
func AnalyzeHunks(oldText, newText string) []HunkReport {
	oldLines, newLines := SplitLines(oldText), SplitLines(newText)
	hunks := LineHunks(oldText, newText)

	reports := make([]HunkReport, 0, len(hunks))
	for _, h := range hunks {
		lines := oldLines
		if h.Op == OpInsert {
			lines = newLines
		}
		if h.Start < 0 || h.End > len(lines) || h.Start > h.End {
			log.Printf("WARN: Skipping hunk outside of %d lines: %+v", len(lines), h)
			continue
		}
		reports = append(reports, HunkReport{
			Hunk:         h,
			Score:        ScoreHunk(lines, h.Start, h.End),
			StartMeasure: MeasureSplit(lines, h.Start),
			EndMeasure:   MeasureSplit(lines, h.End),
		})
	}
	log.Printf("DEBUG: Scored %d hunks", len(reports))
	return reports
}
