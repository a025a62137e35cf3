package indentscore

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// MaxSliding is the furthest callers should slide a hunk when building
// candidates. Nothing in this package enforces it.
const MaxSliding = 100

// Best scores every candidate against lines and returns the best one. On a
// tie the candidate listed later wins. It returns false if candidates is
// empty.
func Best(lines []string, candidates []Candidate) (Ranked, bool) {
	var best Ranked
	found := false
	for _, c := range candidates {
		score := ScoreHunk(lines, c.Start, c.End)
		if !found || Compare(score, best.Score) <= 0 {
			best = Ranked{Candidate: c, Score: score}
			found = true
		}
	}
	return best, found
}

// ScoreCandidates scores candidates concurrently using at most workers
// goroutines (one per candidate if workers <= 0). Results are in the same
// order as candidates. The only error returned is the context's.
func ScoreCandidates(ctx context.Context, lines []string, candidates []Candidate, workers int) ([]Ranked, error) {
	ranked := make([]Ranked, len(candidates))
	g, gctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, c := range candidates {
		if err := gctx.Err(); err != nil {
			break
		}
		i, c := i, c // per-iteration copies; go.mod targets go1.21 loop semantics
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			ranked[i] = Ranked{Candidate: c, Score: ScoreHunk(lines, c.Start, c.End)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return ranked, nil
}
