package storage

import (
	"gonum.org/v1/gonum/stat"
)

// Stats summarizes a set of leaderboard entries.
type Stats struct {
	Count  int
	Best   int
	Mean   float64
	StdDev float64
}

// Summarize computes count, best score, mean and sample standard deviation.
// A single entry has zero deviation.
func Summarize(entries []Entry) Stats {
	if len(entries) == 0 {
		return Stats{}
	}

	scores := make([]float64, len(entries))
	best := entries[0].Score
	for i, e := range entries {
		scores[i] = float64(e.Score)
		best = max(best, e.Score)
	}

	s := Stats{Count: len(entries), Best: best}
	if len(scores) == 1 {
		s.Mean = scores[0]
		return s
	}
	s.Mean, s.StdDev = stat.MeanStdDev(scores, nil)
	return s
}
