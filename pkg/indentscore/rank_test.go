package indentscore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// inserted holds a new function "c" inserted between "a" and "b". The
// inserted block can sit at [3, 7) (blank line first) or [4, 8) (blank line
// last).
var inserted = []string{
	"func a() {",
	"  x",
	"}",
	"",
	"func c() {",
	"  z",
	"}",
	"",
	"func b() {",
	"  y",
	"}",
}

func TestBest(t *testing.T) {
	tests := []struct {
		name       string
		lines      []string
		candidates []Candidate
		want       Ranked
	}{
		{
			name:       "Block boundaries after blank lines",
			lines:      inserted,
			candidates: []Candidate{{3, 7}, {4, 8}},
			want:       Ranked{Candidate: Candidate{4, 8}, Score: Score{0, -60}},
		},
		{
			name:       "Order of candidates does not matter",
			lines:      inserted,
			candidates: []Candidate{{4, 8}, {3, 7}},
			want:       Ranked{Candidate: Candidate{4, 8}, Score: Score{0, -60}},
		},
		{
			name:       "Tie goes to the later candidate",
			lines:      []string{"a", "b", "c", "d"},
			candidates: []Candidate{{1, 2}, {2, 3}},
			want:       Ranked{Candidate: Candidate{2, 3}, Score: Score{0, 0}},
		},
		{
			name:       "Single candidate",
			lines:      funcLines,
			candidates: []Candidate{{1, 1}},
			want:       Ranked{Candidate: Candidate{1, 1}, Score: Score{4, -28}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Best(tt.lines, tt.candidates)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBestEmpty(t *testing.T) {
	_, ok := Best(inserted, nil)
	assert.False(t, ok)
}

func TestScoreCandidates(t *testing.T) {
	var candidates []Candidate
	for start := 0; start <= len(inserted); start++ {
		for end := start; end <= len(inserted); end++ {
			candidates = append(candidates, Candidate{start, end})
		}
	}

	for _, workers := range []int{0, 1, 4} {
		got, err := ScoreCandidates(context.Background(), inserted, candidates, workers)
		require.NoError(t, err)
		require.Len(t, got, len(candidates))
		for i, c := range candidates {
			assert.Equal(t, c, got[i].Candidate)
			assert.Equal(t, ScoreHunk(inserted, c.Start, c.End), got[i].Score, "workers=%d %+v", workers, c)
		}
	}
}

func TestScoreCandidatesCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got, err := ScoreCandidates(ctx, inserted, []Candidate{{3, 7}, {4, 8}}, 1)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, got)
}
