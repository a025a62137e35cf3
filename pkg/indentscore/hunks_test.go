package indentscore

import (
	"strings"
	"testing"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"Empty text", "", nil},
		{"Single line without newline", "a", []string{"a"}},
		{"Single line with newline", "a\n", []string{"a"}},
		{"Only a newline", "\n", []string{""}},
		{"Blank line in the middle", "a\n\nb\n", []string{"a", "", "b"}},
		{"CRLF", "a\r\n  b\r\n", []string{"a", "  b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitLines(tt.text))
		})
	}
}

func TestLineHunks(t *testing.T) {
	tests := []struct {
		name    string
		oldText string
		newText string
		want    []Hunk
	}{
		{
			name:    "No changes",
			oldText: "a\nb\nc\n",
			newText: "a\nb\nc\n",
			want:    nil,
		},
		{
			name:    "Remove line",
			oldText: "a\nb\nc\n",
			newText: "a\nc\n",
			want:    []Hunk{{Op: OpDelete, Start: 1, End: 2}},
		},
		{
			name:    "Add line",
			oldText: "a\nc\n",
			newText: "a\nb\nc\n",
			want:    []Hunk{{Op: OpInsert, Start: 1, End: 2}},
		},
		{
			name:    "Replace line",
			oldText: "a\nb\nc\n",
			newText: "a\nx\nc\n",
			want:    []Hunk{{Op: OpDelete, Start: 1, End: 2}, {Op: OpInsert, Start: 1, End: 2}},
		},
		{
			name:    "Replace last line without newline",
			oldText: "a\nb",
			newText: "a\nc",
			want:    []Hunk{{Op: OpDelete, Start: 1, End: 2}, {Op: OpInsert, Start: 1, End: 2}},
		},
		{
			name:    "Insert function",
			oldText: strings.Join(append(append([]string{}, inserted[:4]...), inserted[8:]...), "\n") + "\n",
			newText: strings.Join(inserted, "\n") + "\n",
			want:    []Hunk{{Op: OpInsert, Start: 4, End: 8}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LineHunks(tt.oldText, tt.newText))
		})
	}
}

func TestHunksFromDiffsMergesAdjacentRuns(t *testing.T) {
	diffs := []diffmatchpatch.Diff{
		{Type: diffmatchpatch.DiffEqual, Text: "a\n"},
		{Type: diffmatchpatch.DiffDelete, Text: "b\n"},
		{Type: diffmatchpatch.DiffInsert, Text: "x\ny\n"},
		{Type: diffmatchpatch.DiffDelete, Text: "c\n"},
		{Type: diffmatchpatch.DiffEqual, Text: "d\n"},
		{Type: diffmatchpatch.DiffInsert, Text: "z"},
	}

	want := []Hunk{
		{Op: OpDelete, Start: 1, End: 3},
		{Op: OpInsert, Start: 1, End: 3},
		{Op: OpInsert, Start: 4, End: 5},
	}
	assert.Equal(t, want, hunksFromDiffs(diffs))
}

func TestAnalyzeHunks(t *testing.T) {
	oldText := strings.Join(append(append([]string{}, inserted[:4]...), inserted[8:]...), "\n") + "\n"
	newText := strings.Join(inserted, "\n") + "\n"

	reports := AnalyzeHunks(oldText, newText)
	require.Len(t, reports, 1)

	blockStart := Measurement{Indent: 0, PreBlank: 1, PreIndent: 0, PostIndent: 2}
	assert.Equal(t, HunkReport{
		Hunk:         Hunk{Op: OpInsert, Start: 4, End: 8},
		Score:        Score{EffectiveIndent: 0, Penalty: -60},
		StartMeasure: blockStart,
		EndMeasure:   blockStart,
	}, reports[0])
}

func TestAnalyzeHunksDeletion(t *testing.T) {
	reports := AnalyzeHunks("a\nb\nc\n", "a\nc\n")
	require.Len(t, reports, 1)
	assert.Equal(t, Hunk{Op: OpDelete, Start: 1, End: 2}, reports[0].Hunk)
	assert.Equal(t, ScoreHunk([]string{"a", "b", "c"}, 1, 2), reports[0].Score)
}

func TestAnalyzeHunksNoChanges(t *testing.T) {
	assert.Empty(t, AnalyzeHunks("a\nb\n", "a\nb\n"))
}
