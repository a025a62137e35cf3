package indentscore

import (
	"fmt"
	"log"
	"sort"
	"strings"
)

// ANSI color codes
const (
	red   = "\033[31m"
	green = "\033[32m"
	dim   = "\033[2m"
	reset = "\033[0m"
)

// VisualizeHunks renders lines with the lines of each hunk marked and a
// summary of the hunk's score after its last line. All reports must refer to
// lines (the old text for deletions, the new text for insertions).
func VisualizeHunks(lines []string, reports []HunkReport, color bool) string {
	sorted := make([]HunkReport, len(reports))
	copy(sorted, reports)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start
	})

	var builder strings.Builder
	width := len(fmt.Sprint(len(lines)))
	next := 0

	writeLine := func(i int, marker string, paint string) {
		text := fmt.Sprintf("%*d %s %s", width, i+1, marker, lines[i])
		if color && paint != "" {
			text = paint + text + reset
		}
		builder.WriteString(text)
		builder.WriteByte('\n')
	}

	for _, r := range sorted {
		if r.Start < next {
			log.Printf("WARN: Skipping overlapping hunk: %+v", r.Hunk)
			continue
		}
		if r.End > len(lines) || r.Start > r.End {
			log.Printf("WARN: Skipping hunk out of bounds (end %d > len %d): %+v", r.End, len(lines), r.Hunk)
			continue
		}

		for ; next < r.Start; next++ {
			writeLine(next, " ", "")
		}

		marker, paint := "-", red
		if r.Op == OpInsert {
			marker, paint = "+", green
		}
		for ; next < r.End; next++ {
			writeLine(next, marker, paint)
		}

		summary := fmt.Sprintf("%*s   ^ %s %d-%d effective_indent=%d penalty=%d",
			width, "", r.Op, r.Start+1, r.End, r.Score.EffectiveIndent, r.Score.Penalty)
		if color {
			summary = dim + summary + reset
		}
		builder.WriteString(summary)
		builder.WriteByte('\n')
	}

	for ; next < len(lines); next++ {
		writeLine(next, " ", "")
	}
	return builder.String()
}
